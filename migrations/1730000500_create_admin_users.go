package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		// Plain base collection: accounts are checked by the app, not by
		// PocketBase auth. Passwords are stored as entered.
		users := core.NewBaseCollection("adminUsers")

		users.Fields.Add(&core.TextField{Name: "email"})
		users.Fields.Add(&core.TextField{Name: "password"})
		users.Fields.Add(&core.TextField{Name: "name"})
		users.Fields.Add(&core.TextField{Name: "role"})
		users.Fields.Add(&core.JSONField{Name: "allowedPages"})
		addTimestamps(users)

		users.AddIndex("idx_admin_users_email", false, "email", "")

		return createIfMissing(app, users)
	}, func(app core.App) error {
		return dropIfExists(app, "adminUsers")
	})
}
