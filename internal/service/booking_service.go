package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/pkg/broker"

	"go.uber.org/zap"
)

type BookingService struct {
	appointments  core.AppointmentRepository
	notifications core.NotificationService // optional
	broker        *broker.SegmentedBroker  // optional
	logger        *zap.Logger
}

func NewBookingService(
	appointments core.AppointmentRepository,
	notifications core.NotificationService,
	eventBroker *broker.SegmentedBroker,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		appointments:  appointments,
		notifications: notifications,
		broker:        eventBroker,
		logger:        logger,
	}
}

// Book validates a public booking request and stores it as pending.
func (s *BookingService) Book(ctx context.Context, in core.Appointment) (*core.Appointment, error) {
	if err := ValidateAppointment(&in); err != nil {
		return nil, err
	}

	appt := in
	appt.ID = ""
	appt.Status = core.StatusPending

	id, err := s.appointments.Add(ctx, appt)
	if err != nil {
		return nil, err
	}
	appt.ID = id
	appt.Created = time.Now()

	s.logger.Info("Appointment booked",
		zap.String("appointment_id", id),
		zap.String("service", appt.Service),
		zap.String("date", appt.Date),
	)

	if s.broker != nil {
		s.broker.Publish(broker.ChannelAdmin, "", broker.Event{
			Type:      broker.EventAppointmentCreated,
			Timestamp: time.Now().Unix(),
			Data: map[string]any{
				"id":      appt.ID,
				"name":    appt.Name,
				"phone":   appt.Phone,
				"service": appt.Service,
				"date":    appt.Date,
				"time":    appt.Time,
				"status":  appt.Status,
			},
		})
	}

	if s.notifications != nil {
		notifyCtx := context.WithoutCancel(ctx)
		go func(a core.Appointment) {
			if err := s.notifications.NotifyNewAppointment(notifyCtx, &a); err != nil {
				s.logger.Warn("Appointment push notification failed",
					zap.String("appointment_id", a.ID),
					zap.Error(err),
				)
			}
		}(appt)
	}

	return &appt, nil
}

func (s *BookingService) Appointments(ctx context.Context) []core.Appointment {
	return s.appointments.GetAll(ctx)
}

func (s *BookingService) Appointment(ctx context.Context, id string) *core.Appointment {
	return s.appointments.GetByID(ctx, id)
}

// SetStatus accepts a move between any two of the four statuses.
func (s *BookingService) SetStatus(ctx context.Context, id, status string) error {
	if !core.Contains(core.AppointmentStatuses, status) {
		return core.ValidationErrors{"status": fmt.Sprintf("unknown status %q", status)}
	}
	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if s.broker != nil {
		s.broker.Publish(broker.ChannelAdmin, "", broker.Event{
			Type:      broker.EventAppointmentUpdated,
			Timestamp: time.Now().Unix(),
			Data:      map[string]any{"id": id, "status": status},
		})
	}
	return nil
}

func (s *BookingService) Remove(ctx context.Context, id string) error {
	return s.appointments.Remove(ctx, id)
}
