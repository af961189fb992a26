package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// ContactMessage is the public contact form. It is never stored.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

var contactMessages = messages{
	"name":           "Please enter your name",
	"email.required": "Please enter your email",
	"email":          "Please enter a valid email address",
	"message":        "Please enter a message",
}

type ContactService struct {
	logger *zap.Logger
}

func NewContactService(logger *zap.Logger) *ContactService {
	return &ContactService{logger: logger}
}

// Submit validates the message and reports success without delivering it.
func (s *ContactService) Submit(_ context.Context, msg ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := check(&msg, contactMessages).Err(); err != nil {
		return err
	}

	s.logger.Info("Contact form submitted",
		zap.String("subject", msg.Subject),
		zap.Int("message_length", len(msg.Message)),
	)
	return nil
}
