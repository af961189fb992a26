package handlers

import (
	"errors"
	"fmt"
	"net/http"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

func (h *AdminHandler) AppointmentsList(e *core.RequestEvent) error {
	all := h.Booking.Appointments(e.Request.Context())
	filter := e.Request.URL.Query().Get("status")
	if !domain.Contains(domain.AppointmentStatuses, filter) {
		filter = ""
	}

	counts := make(map[string]int, len(domain.AppointmentStatuses))
	shown := make([]domain.Appointment, 0, len(all))
	for _, a := range all {
		counts[a.Status]++
		if filter == "" || a.Status == filter {
			shown = append(shown, a)
		}
	}

	return h.page(e, http.StatusOK, domain.PageAppointments, "admin/appointments.html", map[string]any{
		"All":          all,
		"Appointments": shown,
		"Statuses":     domain.AppointmentStatuses,
		"Filter":       filter,
		"Counts":       counts,
	})
}

func (h *AdminHandler) UpdateAppointmentStatus(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	status := trimmed(e, "status")

	back := "/admin/appointments"
	if f := e.Request.URL.Query().Get("status"); domain.Contains(domain.AppointmentStatuses, f) {
		back += "?status=" + f
	}

	err := h.Booking.SetStatus(e.Request.Context(), id, status)
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return redirectWith(e, back, "error", "Unknown appointment status")
	case errors.Is(err, domain.ErrNotFound):
		return redirectWith(e, back, "error", "Appointment not found")
	case err != nil:
		reqLog(e, h.Logger).Error("Failed to update appointment", zap.String("id", id), zap.Error(err))
		return redirectWith(e, back, "error", "Could not update the appointment")
	}
	return redirectWith(e, back, "success", fmt.Sprintf("Appointment marked %s", status))
}

func (h *AdminHandler) DeleteAppointment(e *core.RequestEvent) error {
	if err := h.Booking.Remove(e.Request.Context(), e.Request.PathValue("id")); err != nil {
		reqLog(e, h.Logger).Error("Failed to delete appointment", zap.Error(err))
		return redirectWith(e, "/admin/appointments", "error", "Could not delete the appointment")
	}
	return redirectWith(e, "/admin/appointments", "success", "Appointment deleted")
}

// ExportAppointments streams every appointment as an xlsx workbook.
func (h *AdminHandler) ExportAppointments(e *core.RequestEvent) error {
	name := fmt.Sprintf("appointments-%s.xlsx", timeNow().Format("20060102"))

	header := e.Response.Header()
	header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if err := h.Export.WriteAppointments(e.Request.Context(), e.Response); err != nil {
		reqLog(e, h.Logger).Error("Appointment export failed", zap.Error(err))
		header.Del("Content-Disposition")
		return redirectWith(e, "/admin/appointments", "error", "Export failed")
	}
	return nil
}
