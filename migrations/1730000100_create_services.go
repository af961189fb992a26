package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		services := core.NewBaseCollection("services")

		services.Fields.Add(&core.TextField{Name: "title"})
		services.Fields.Add(&core.TextField{Name: "slug"})
		services.Fields.Add(&core.TextField{Name: "shortDescription", Max: 1000})
		services.Fields.Add(&core.TextField{Name: "fullDescription", Max: 20000})
		services.Fields.Add(&core.TextField{Name: "whoIsItFor", Max: 5000})
		services.Fields.Add(&core.JSONField{Name: "benefits"})
		services.Fields.Add(&core.TextField{Name: "iconName"})
		services.Fields.Add(&core.NumberField{Name: "order", OnlyInt: true})
		services.Fields.Add(&core.TextField{Name: "imageUrl", Max: imageURLMaxChars})
		addTimestamps(services)

		// Slugs are looked up, not enforced unique.
		services.AddIndex("idx_services_slug", false, "slug", "")

		return createIfMissing(app, services)
	}, func(app core.App) error {
		return dropIfExists(app, "services")
	})
}
