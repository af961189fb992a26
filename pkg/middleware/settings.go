package middleware

import (
	"strings"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/pocketbase/pocketbase/core"
)

// SettingsMiddleware loads the clinic settings (live document or built-in
// defaults) into the request for the header and footer of every page.
func SettingsMiddleware(catalog domain.CatalogService) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		path := e.Request.URL.Path
		if strings.HasPrefix(path, "/assets/") || strings.HasPrefix(path, "/_/") || strings.HasPrefix(path, "/api/") {
			return e.Next()
		}

		e.Set("Settings", catalog.Settings(e.Request.Context()))
		return e.Next()
	}
}
