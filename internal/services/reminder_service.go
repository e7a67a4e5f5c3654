package services

import (
	"fmt"

	"github.com/isaidspaghetti/stream-sms/internal/twilio"
	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"go.uber.org/zap"
)

// ReminderService sends one-off SMS reminders straight through the gateway,
// independent of the channel relay
type ReminderService struct {
	sms twilio.Sender
}

// NewReminderService creates a new reminder service
func NewReminderService(sms twilio.Sender) *ReminderService {
	return &ReminderService{sms: sms}
}

// SendReminder delivers a single SMS to the given number. No chat-service
// interaction and nothing is stored.
func (s *ReminderService) SendReminder(phoneNumber, messageText string) error {
	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if messageText == "" {
		return fmt.Errorf("message text is required")
	}

	if err := s.sms.Send(phoneNumber, messageText); err != nil {
		return fmt.Errorf("reminder send failed: %w", err)
	}

	logger.Info("Reminder sent", zap.String("phone_number", phoneNumber))
	return nil
}
