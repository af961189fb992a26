package migrations

import (
	"github.com/pocketbase/pocketbase/core"
)

// Data URIs of a 700KB image plus base64 overhead.
const imageURLMaxChars = 1_000_000

// addTimestamps adds the createdAt/updatedAt autodate fields every collection carries.
func addTimestamps(c *core.Collection) {
	c.Fields.Add(&core.AutodateField{Name: "createdAt", OnCreate: true})
	c.Fields.Add(&core.AutodateField{Name: "updatedAt", OnCreate: true, OnUpdate: true})
}

// createIfMissing saves c unless a collection with the same name already exists.
func createIfMissing(app core.App, c *core.Collection) error {
	if _, err := app.FindCollectionByNameOrId(c.Name); err == nil {
		return nil
	}
	return app.Save(c)
}

func dropIfExists(app core.App, name string) error {
	c, err := app.FindCollectionByNameOrId(name)
	if err != nil {
		return nil
	}
	return app.Delete(c)
}
