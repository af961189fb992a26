package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		testimonials := core.NewBaseCollection("testimonials")

		testimonials.Fields.Add(&core.TextField{Name: "name"})
		testimonials.Fields.Add(&core.TextField{Name: "role"})
		testimonials.Fields.Add(&core.TextField{Name: "content", Max: 5000})
		// 1-5 is enforced by the admin form only.
		testimonials.Fields.Add(&core.NumberField{Name: "rating", OnlyInt: true})
		addTimestamps(testimonials)

		return createIfMissing(app, testimonials)
	}, func(app core.App) error {
		return dropIfExists(app, "testimonials")
	})
}
