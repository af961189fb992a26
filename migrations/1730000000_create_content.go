package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		// ----------------------------------------------------
		// CONTENT COLLECTION (singletons: "about", "settings")
		// ----------------------------------------------------
		content := core.NewBaseCollection("content")

		// Allow the short well-known ids.
		if id, ok := content.Fields.GetByName("id").(*core.TextField); ok {
			id.Min = 1
		}

		// --- about ---
		content.Fields.Add(&core.TextField{Name: "name"})
		content.Fields.Add(&core.TextField{Name: "title"})
		content.Fields.Add(&core.TextField{Name: "experience"})
		content.Fields.Add(&core.TextField{Name: "bio", Max: 20000})
		content.Fields.Add(&core.JSONField{Name: "qualifications"})
		content.Fields.Add(&core.TextField{Name: "mission", Max: 5000})
		content.Fields.Add(&core.TextField{Name: "vision", Max: 5000})
		content.Fields.Add(&core.TextField{Name: "imageUrl", Max: imageURLMaxChars})

		// --- settings ---
		content.Fields.Add(&core.TextField{Name: "clinicName"})
		content.Fields.Add(&core.TextField{Name: "tagline"})
		content.Fields.Add(&core.TextField{Name: "phone"})
		content.Fields.Add(&core.TextField{Name: "email"})
		content.Fields.Add(&core.TextField{Name: "address"})
		content.Fields.Add(&core.JSONField{Name: "workingHours"})
		content.Fields.Add(&core.JSONField{Name: "socialMedia"})

		addTimestamps(content)

		// Superusers only; the app reads and writes through the server.
		return createIfMissing(app, content)
	}, func(app core.App) error {
		return dropIfExists(app, "content")
	})
}
