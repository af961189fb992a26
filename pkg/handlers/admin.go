package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/service"
	"github.com/aminafridi/PhysioCare-sub000/internal/session"
	"github.com/aminafridi/PhysioCare-sub000/pkg/broker"
	"github.com/aminafridi/PhysioCare-sub000/pkg/middleware"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

type AdminHandler struct {
	*Renderer
	Sessions  session.Store
	Auth      *service.AuthService
	Broker    *broker.SegmentedBroker
	Catalog   domain.CatalogService
	Dashboard *service.DashboardService
	Booking   *service.BookingService
	Import    *service.ImportService
	Export    *service.ExportService

	Services     domain.ServiceRepository
	Posts        domain.BlogRepository
	Testimonials domain.TestimonialRepository
	Users        domain.AdminUserRepository
	About        domain.AboutRepository
	Settings     domain.SettingsRepository

	Logger *zap.Logger
}

// page renders an admin page inside the sidebar layout.
func (h *AdminHandler) page(e *core.RequestEvent, status int, page, tmpl string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	sess := middleware.SessionFrom(e)
	data["Page"] = page
	data["Nav"] = middleware.Nav(sess)
	return h.RenderStatus(e, status, LayoutAdmin, tmpl, data)
}

func (h *AdminHandler) ShowLogin(e *core.RequestEvent) error {
	if _, err := h.Sessions.Load(e.Request); err == nil {
		return e.Redirect(http.StatusSeeOther, "/admin")
	}
	return h.Render(e, LayoutAuth, "admin/login.html", nil)
}

func (h *AdminHandler) ProcessLogin(e *core.RequestEvent) error {
	email := trimmed(e, "email")
	password := e.Request.FormValue("password")

	sess, err := h.Auth.Login(e.Request.Context(), email, password)
	if err != nil {
		return h.RenderStatus(e, http.StatusUnauthorized, LayoutAuth, "admin/login.html", map[string]any{
			"Email":      email,
			"LoginError": "Invalid email or password",
		})
	}

	if err := h.Sessions.Save(e.Response, sess); err != nil {
		reqLog(e, h.Logger).Error("Failed to write session cookie", zap.Error(err))
		return e.String(http.StatusInternalServerError, "Could not sign in")
	}

	home := middleware.HomePage(sess)
	if home == "" {
		return e.Redirect(http.StatusSeeOther, "/admin/forbidden")
	}
	return e.Redirect(http.StatusSeeOther, middleware.PagePath(home))
}

func (h *AdminHandler) Logout(e *core.RequestEvent) error {
	h.Sessions.Clear(e.Response)
	return e.Redirect(http.StatusSeeOther, "/login")
}

// Landing sends /admin to the first page the session may open.
func (h *AdminHandler) Landing(e *core.RequestEvent) error {
	home := middleware.HomePage(middleware.SessionFrom(e))
	if home == "" {
		return e.Redirect(http.StatusSeeOther, "/admin/forbidden")
	}
	return e.Redirect(http.StatusSeeOther, middleware.PagePath(home))
}

func (h *AdminHandler) Forbidden(e *core.RequestEvent) error {
	return h.page(e, http.StatusForbidden, "", "admin/forbidden.html", nil)
}

func (h *AdminHandler) ShowDashboard(e *core.RequestEvent) error {
	data := map[string]any{}

	stats, err := h.Dashboard.Stats(e.Request.Context())
	if err != nil {
		reqLog(e, h.Logger).Error("Dashboard stats failed", zap.Error(err))
		stats = &domain.DashboardStats{}
		data["Flash"] = Flash{Error: "Some figures could not be loaded."}
	}
	data["Stats"] = stats

	return h.page(e, http.StatusOK, domain.PageDashboard, "admin/dashboard.html", data)
}

// Stream pushes broker events to an open admin tab: everything on the admin
// channel plus this account's own session updates.
func (h *AdminHandler) Stream(e *core.RequestEvent) error {
	sess := middleware.SessionFrom(e)
	if sess == nil {
		return e.String(http.StatusUnauthorized, "Unauthorized")
	}

	flusher, ok := e.Response.(http.Flusher)
	if !ok {
		return e.String(http.StatusInternalServerError, "Streaming unsupported")
	}

	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	adminChan := h.Broker.Subscribe(broker.ChannelAdmin, "")
	defer h.Broker.Unsubscribe(broker.ChannelAdmin, "", adminChan)

	userChan := h.Broker.Subscribe(broker.ChannelUser, sess.ID)
	defer h.Broker.Unsubscribe(broker.ChannelUser, sess.ID, userChan)

	writeEvent := func(event broker.Event) {
		eventJSON, err := json.Marshal(event)
		if err != nil {
			return
		}
		fmt.Fprintf(e.Response, "data: %s\n\n", eventJSON)
		flusher.Flush()
	}

	writeEvent(broker.Event{
		Type:      "connection.established",
		Timestamp: time.Now().Unix(),
		Data:      map[string]any{"user_id": sess.ID},
	})

	for {
		select {
		case event := <-adminChan:
			writeEvent(event)
		case event := <-userChan:
			writeEvent(event)
		case <-e.Request.Context().Done():
			return nil
		}
	}
}

func (h *AdminHandler) ShowAccount(e *core.RequestEvent) error {
	sess := middleware.SessionFrom(e)
	return h.page(e, http.StatusOK, "", "admin/account.html", map[string]any{
		"ReadOnly": sess.ID == service.DefaultAdminID,
	})
}

func (h *AdminHandler) UpdateAccount(e *core.RequestEvent) error {
	sess := middleware.SessionFrom(e)

	err := h.Auth.ChangePassword(e.Request.Context(), sess,
		e.Request.FormValue("currentPassword"),
		e.Request.FormValue("newPassword"),
		e.Request.FormValue("confirmPassword"),
	)

	var verrs domain.ValidationErrors
	switch {
	case err == nil:
		return redirectWith(e, "/admin/account", "success", "Password updated")
	case errors.Is(err, domain.ErrDefaultAccountReadOnly):
		return h.page(e, http.StatusForbidden, "", "admin/account.html", map[string]any{
			"ReadOnly": true,
		})
	case errors.As(err, &verrs):
		return h.page(e, http.StatusUnprocessableEntity, "", "admin/account.html", map[string]any{
			"Errors": verrs,
		})
	default:
		reqLog(e, h.Logger).Error("Password change failed", zap.String("user_id", sess.ID), zap.Error(err))
		return redirectWith(e, "/admin/account", "error", "Could not update the password. Please try again.")
	}
}
