package repository

import (
	"context"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

type AppointmentRepo struct {
	*Repo[core.Appointment]
}

func NewAppointmentRepo(store core.DocumentStore, logger *zap.Logger) core.AppointmentRepository {
	return &AppointmentRepo{NewRepo(store, appointmentConfig, logger)}
}

// UpdateStatus sets any of the four statuses regardless of the current one.
func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.Update(ctx, id, core.Fields{"status": status})
}

var appointmentConfig = EntityConfig[core.Appointment]{
	Collection: core.CollectionAppointments,
	Order:      core.OrderBy(core.FieldCreatedAt, true),
	Decode: func(doc core.Document) core.Appointment {
		f := doc.Fields
		return core.Appointment{
			ID:      doc.ID,
			Name:    str(f, "name"),
			Email:   str(f, "email"),
			Phone:   str(f, "phone"),
			Service: str(f, "service"),
			Date:    str(f, "date"),
			Time:    str(f, "time"),
			Message: str(f, "message"),
			Status:  str(f, "status"),
			Created: doc.CreatedAt,
			Updated: doc.UpdatedAt,
		}
	},
	Encode: func(a core.Appointment) core.Fields {
		return core.Fields{
			"name":    a.Name,
			"email":   a.Email,
			"phone":   a.Phone,
			"service": a.Service,
			"date":    a.Date,
			"time":    a.Time,
			"message": a.Message,
			"status":  a.Status,
		}
	},
}
