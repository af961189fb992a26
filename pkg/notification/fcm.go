package notification

import (
	"context"
	"fmt"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Sender is the part of the messaging client FCMService uses.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMService pushes new-appointment alerts to the admin topic.
type FCMService struct {
	client Sender
	topic  string
	link   string
	logger *zap.Logger
}

// NewFCMService creates a messaging client from a service account file.
func NewFCMService(ctx context.Context, credentialsPath, topic, link string, logger *zap.Logger) (*FCMService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return NewFCMServiceWithSender(client, topic, link, logger), nil
}

func NewFCMServiceWithSender(client Sender, topic, link string, logger *zap.Logger) *FCMService {
	return &FCMService{client: client, topic: topic, link: link, logger: logger}
}

// NotifyNewAppointment sends one topic message per appointment.
func (s *FCMService) NotifyNewAppointment(ctx context.Context, appt *core.Appointment) error {
	title := "New appointment request"
	body := fmt.Sprintf("%s booked %s on %s at %s", appt.Name, appt.Service, appt.Date, appt.Time)

	message := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"type":          "appointment.created",
			"appointmentId": appt.ID,
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: title,
				Body:  body,
			},
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: s.link,
			},
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	response, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}

	s.logger.Info("Sent appointment notification",
		zap.String("topic", s.topic),
		zap.String("message_id", response),
		zap.String("appointment_id", appt.ID),
	)
	return nil
}
