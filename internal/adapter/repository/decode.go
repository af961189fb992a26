package repository

import (
	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/spf13/cast"
)

// Field readers tolerate whatever shape a backend hands back: float64 from
// JSON, int64 from BSON, []any for every array.

func str(f core.Fields, key string) string {
	return cast.ToString(f[key])
}

func num(f core.Fields, key string) int {
	return cast.ToInt(f[key])
}

func strs(f core.Fields, key string) []string {
	out := cast.ToStringSlice(f[key])
	if out == nil {
		return []string{}
	}
	return out
}

func sub(f core.Fields, key string) core.Fields {
	m, err := cast.ToStringMapE(f[key])
	if err != nil {
		return core.Fields{}
	}
	return core.Fields(m)
}

// list copies s so encoded documents never alias caller slices.
func list(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
