package store

import (
	"strings"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/spf13/cast"
)

// compareValues orders two loosely typed field values: numbers numerically,
// times chronologically, everything else by string form. nil sorts first.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if at, ok := a.(time.Time); ok {
		bt := cast.ToTime(b)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	}

	if isNumber(a) && isNumber(b) {
		af, bf := cast.ToFloat64(a), cast.ToFloat64(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}

	return strings.Compare(cast.ToString(a), cast.ToString(b))
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// stripTimestamps drops client supplied timestamp fields; backends assign them.
func stripTimestamps(fields core.Fields) core.Fields {
	out := make(core.Fields, len(fields))
	for k, v := range fields {
		if k == core.FieldCreatedAt || k == core.FieldUpdatedAt {
			continue
		}
		out[k] = v
	}
	return out
}
