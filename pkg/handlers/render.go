package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/pkg/logger"
	"github.com/aminafridi/PhysioCare-sub000/views"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// Layout template names, as defined in views/layouts.
const (
	LayoutBase  = "layouts/base.html"
	LayoutAdmin = "layouts/admin.html"
	LayoutAuth  = "layouts/auth.html"
)

// Flash carries one-shot messages passed through the redirect query string.
type Flash struct {
	Error   string
	Warning string
	Success string
}

// Renderer renders a page into its layout. Shared data (settings, session,
// flash messages) is filled in from the request.
type Renderer struct {
	Templates *template.Template
	Logger    *zap.Logger
}

func (r *Renderer) Render(e *core.RequestEvent, layout, page string, data map[string]any) error {
	return r.RenderStatus(e, http.StatusOK, layout, page, data)
}

// RenderStatus detects HTMX navigation and renders only the content block.
func (r *Renderer) RenderStatus(e *core.RequestEvent, status int, layout, page string, data map[string]any) error {
	tmpl, err := r.Templates.Clone()
	if err != nil {
		reqLog(e, r.Logger).Error("Template clone failed", zap.Error(err))
		return e.String(http.StatusInternalServerError, "Template error")
	}

	pagePath := path.Join("pages", page)
	if _, err := tmpl.ParseFS(views.FS, pagePath); err != nil {
		reqLog(e, r.Logger).Error("Page parse failed", zap.String("page", pagePath), zap.Error(err))
		return e.String(http.StatusInternalServerError, "Page not found")
	}

	data = withDefaults(e, data)

	name := layout
	if e.Request.Header.Get("HX-Request") == "true" && e.Request.Header.Get("HX-Target") == "main-content" {
		name = "content"
	}

	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	e.Response.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(e.Response, name, data); err != nil {
		// Headers are gone; the partial page is all the client gets.
		reqLog(e, r.Logger).Error("Render failed", zap.String("page", pagePath), zap.Error(err))
	}
	return nil
}

func withDefaults(e *core.RequestEvent, data map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}

	if _, ok := data["Settings"]; !ok {
		settings, ok := e.Get("Settings").(domain.Settings)
		if !ok {
			settings = domain.DefaultSettings()
		}
		data["Settings"] = settings
	}
	if _, ok := data["Session"]; !ok {
		sess, _ := e.Get("Session").(*domain.Session)
		data["Session"] = sess
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = domain.ValidationErrors{}
	}
	if _, ok := data["Flash"]; !ok {
		q := e.Request.URL.Query()
		data["Flash"] = Flash{
			Error:   q.Get("error"),
			Warning: q.Get("warning"),
			Success: q.Get("success"),
		}
	}
	data["Year"] = time.Now().Year()
	return data
}

// redirectWith appends a flash message to target and redirects with 303.
func redirectWith(e *core.RequestEvent, target, kind, msg string) error {
	if msg != "" {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + url.Values{kind: {msg}}.Encode()
	}
	return e.Redirect(http.StatusSeeOther, target)
}

// reqLog returns the request-scoped logger set up by the request middleware.
func reqLog(e *core.RequestEvent, fallback *zap.Logger) *zap.Logger {
	return logger.FromContext(e.Request.Context(), fallback)
}
