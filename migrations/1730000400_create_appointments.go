package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		appointments := core.NewBaseCollection("appointments")

		appointments.Fields.Add(&core.TextField{Name: "name"})
		appointments.Fields.Add(&core.TextField{Name: "email"})
		appointments.Fields.Add(&core.TextField{Name: "phone"})
		appointments.Fields.Add(&core.TextField{Name: "service"})
		appointments.Fields.Add(&core.TextField{Name: "date"}) // YYYY-MM-DD
		appointments.Fields.Add(&core.TextField{Name: "time"}) // HH:MM
		appointments.Fields.Add(&core.TextField{Name: "message", Max: 5000})
		// pending | confirmed | completed | cancelled, checked by the admin handler
		appointments.Fields.Add(&core.TextField{Name: "status"})
		addTimestamps(appointments)

		appointments.AddIndex("idx_appointments_created", false, "createdAt", "")

		return createIfMissing(app, appointments)
	}, func(app core.App) error {
		return dropIfExists(app, "appointments")
	})
}
