package app

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/media"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

var iconGlyphs = map[string]string{
	"activity":    "\U0001F3C3",
	"bone":        "\U0001F9B4",
	"brain":       "\U0001F9E0",
	"dumbbell":    "\U0001F3CB",
	"heart":       "❤",
	"hand":        "✋",
	"footprints":  "\U0001F463",
	"stethoscope": "\U0001FA7A",
	"baby":        "\U0001F476",
	"user":        "\U0001F464",
}

// FuncMap is shared by every template set.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"substr": func(start, length int, s string) string {
			r := []rune(s)
			if start < 0 {
				start = 0
			}
			if start >= len(r) {
				return ""
			}
			end := start + length
			if end >= len(r) {
				return string(r[start:])
			}
			return string(r[start:end]) + "..."
		},
		"seq": func(n interface{}) []int {
			out := make([]int, 0, cast.ToInt(n))
			for i := 1; i <= cast.ToInt(n); i++ {
				out = append(out, i)
			}
			return out
		},
		"join": strings.Join,
		"has":  core.Contains,
		"timeAgo": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return humanize.Time(t)
		},
		"ibytes": func(n interface{}) string {
			return humanize.IBytes(cast.ToUint64(n))
		},
		"maxImageBytes": func() int { return media.MaxImageBytes },
		"iconGlyph": func(name string) string {
			if g, ok := iconGlyphs[name]; ok {
				return g
			}
			return iconGlyphs["activity"]
		},
		// Image fields hold data URIs, which html/template would otherwise
		// replace with #ZgotmplZ.
		"dataURL": func(s string) template.URL {
			if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "/") {
				return template.URL(s)
			}
			return ""
		},
		// Blog content is authored by admins and rendered as-is.
		"trustedHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}

// InitTemplates parses the layouts and shared components. Pages are parsed
// per request on a clone, so every page can define its own "content".
func InitTemplates(fsys fs.FS) (*template.Template, error) {
	t := template.New("").Funcs(FuncMap())

	for _, pattern := range []string{"layouts/*.html", "components/*.html"} {
		if _, err := t.ParseFS(fsys, pattern); err != nil {
			return nil, fmt.Errorf("parse %s: %w", pattern, err)
		}
	}
	return t, nil
}
