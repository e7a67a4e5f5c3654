package handlers

import (
	"github.com/isaidspaghetti/stream-sms/internal/models"
)

// BootstrapServiceInterface defines the contract for admin bootstrap operations
// This interface is used for dependency injection and testing
type BootstrapServiceInterface interface {
	BootstrapAdmin(rawAdminID string) (*models.AdminSession, error)
}

// RelayServiceInterface defines the contract for the SMS-chat relay operations
// This interface is used for dependency injection and testing
type RelayServiceInterface interface {
	RelayInboundSMS(fromNumber, body string) error
	RelayOutboundEvent(event *models.StreamEvent) (bool, error)
}

// ReminderServiceInterface defines the contract for direct reminder sends
// This interface is used for dependency injection and testing
type ReminderServiceInterface interface {
	SendReminder(phoneNumber, messageText string) error
}
