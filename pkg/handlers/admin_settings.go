package handlers

import (
	"fmt"
	"net/http"
	"time"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/service"
	"github.com/aminafridi/PhysioCare-sub000/pkg/broker"
	"github.com/aminafridi/PhysioCare-sub000/pkg/middleware"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// ---------------------------------------------------------
// Clinic settings
// ---------------------------------------------------------

func (h *AdminHandler) ShowSettings(e *core.RequestEvent) error {
	return h.page(e, http.StatusOK, domain.PageSettings, "admin/settings.html", map[string]any{
		"Form": h.Catalog.Settings(e.Request.Context()),
	})
}

func (h *AdminHandler) SaveSettings(e *core.RequestEvent) error {
	s := domain.Settings{
		ClinicName: trimmed(e, "clinicName"),
		Tagline:    trimmed(e, "tagline"),
		Phone:      trimmed(e, "phone"),
		Email:      trimmed(e, "email"),
		Address:    trimmed(e, "address"),
		WorkingHours: domain.WorkingHours{
			Weekdays: trimmed(e, "weekdays"),
			Saturday: trimmed(e, "saturday"),
			Sunday:   trimmed(e, "sunday"),
		},
		SocialMedia: domain.SocialMedia{
			Facebook:  trimmed(e, "facebook"),
			Twitter:   trimmed(e, "twitter"),
			Instagram: trimmed(e, "instagram"),
			LinkedIn:  trimmed(e, "linkedin"),
		},
	}

	if err := service.ValidateSettings(&s); err != nil {
		return h.page(e, http.StatusUnprocessableEntity, domain.PageSettings, "admin/settings.html", map[string]any{
			"Form":   s,
			"Errors": validationErrors(err, nil),
		})
	}

	if err := h.Settings.Save(e.Request.Context(), s); err != nil {
		reqLog(e, h.Logger).Error("Failed to save settings", zap.Error(err))
		return redirectWith(e, "/admin/settings", "error", saveFailed)
	}
	return redirectWith(e, "/admin/settings", "success", "Settings saved")
}

// ---------------------------------------------------------
// Admin users
// ---------------------------------------------------------

func (h *AdminHandler) UsersList(e *core.RequestEvent) error {
	return h.page(e, http.StatusOK, domain.PageUsers, "admin/users.html", map[string]any{
		"Users": h.Users.GetAll(e.Request.Context()),
	})
}

func (h *AdminHandler) NewUser(e *core.RequestEvent) error {
	return h.userForm(e, http.StatusOK, "", domain.AdminUser{
		Role:         domain.RoleEditor,
		AllowedPages: []string{domain.PageDashboard},
	}, nil)
}

func (h *AdminHandler) EditUser(e *core.RequestEvent) error {
	u := h.Users.GetByID(e.Request.Context(), e.Request.PathValue("id"))
	if u == nil {
		return redirectWith(e, "/admin/users", "error", "User not found")
	}
	u.Password = ""
	return h.userForm(e, http.StatusOK, u.ID, *u, nil)
}

func (h *AdminHandler) SaveUser(e *core.RequestEvent) error {
	ctx := e.Request.Context()
	id := e.Request.PathValue("id")

	if id != "" && h.Users.GetByID(ctx, id) == nil {
		return redirectWith(e, "/admin/users", "error", "User not found")
	}

	u := domain.AdminUser{
		Email:        trimmed(e, "email"),
		Name:         trimmed(e, "name"),
		Role:         trimmed(e, "role"),
		Password:     e.Request.FormValue("password"),
		AllowedPages: formList(e, "allowedPages"),
	}

	if err := service.ValidateAdminUser(&u, id == ""); err != nil {
		u.Password = ""
		return h.userForm(e, http.StatusUnprocessableEntity, id, u, validationErrors(err, nil))
	}

	warning := ""
	if other := h.Users.GetByEmail(ctx, u.Email); other != nil && other.ID != id {
		warning = fmt.Sprintf("%s is already used by another account; only the oldest one can sign in.", u.Email)
	}

	var err error
	if id == "" {
		_, err = h.Users.Add(ctx, u)
	} else {
		patch := domain.Fields{
			"email":        u.Email,
			"name":         u.Name,
			"role":         u.Role,
			"allowedPages": u.AllowedPages,
		}
		if u.Password != "" {
			patch["password"] = u.Password
		}
		err = h.Users.Update(ctx, id, patch)
	}
	if err != nil {
		reqLog(e, h.Logger).Error("Failed to save admin user", zap.String("id", id), zap.Error(err))
		return redirectWith(e, "/admin/users", "error", saveFailed)
	}

	if id != "" && h.Broker != nil {
		h.Broker.Publish(broker.ChannelUser, id, broker.Event{
			Type:      broker.EventSessionUpdated,
			Timestamp: time.Now().Unix(),
		})
	}

	if warning != "" {
		return redirectWith(e, "/admin/users", "warning", warning)
	}
	return redirectWith(e, "/admin/users", "success", "User saved")
}

func (h *AdminHandler) DeleteUser(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	if sess := middleware.SessionFrom(e); sess != nil && sess.ID == id {
		return redirectWith(e, "/admin/users", "error", "You cannot delete your own account")
	}

	if err := h.Users.Remove(e.Request.Context(), id); err != nil {
		reqLog(e, h.Logger).Error("Failed to delete admin user", zap.String("id", id), zap.Error(err))
		return redirectWith(e, "/admin/users", "error", "Could not delete the user")
	}
	return redirectWith(e, "/admin/users", "success", "User deleted")
}

func (h *AdminHandler) userForm(e *core.RequestEvent, status int, id string, u domain.AdminUser, verrs domain.ValidationErrors) error {
	action := "/admin/users"
	if id != "" {
		action = "/admin/users/" + id
	}
	if verrs == nil {
		verrs = domain.ValidationErrors{}
	}
	return h.page(e, status, domain.PageUsers, "admin/user_form.html", map[string]any{
		"IsNew":  id == "",
		"Action": action,
		"User":   u,
		"Roles":  domain.AdminRoles,
		"Pages":  domain.AllPages,
		"Errors": verrs,
	})
}
