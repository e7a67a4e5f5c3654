package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/isaidspaghetti/stream-sms/internal/models"
	"github.com/isaidspaghetti/stream-sms/internal/stream"
	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"go.uber.org/zap"
)

const (
	adminRole        = "admin"
	adminChannelType = "messaging"
	adminChannelID   = "livechat"
	adminChannelName = "Default Admin Channel"
)

var whitespacePattern = regexp.MustCompile(`\s`)

// NormalizeAdminName canonicalizes a raw admin identifier: every whitespace
// character becomes an underscore and the result is lowercased. The mapping
// is lossy on purpose; "Dr Smith" and "dr smith" are the same admin.
func NormalizeAdminName(rawAdminID string) string {
	return strings.ToLower(whitespacePattern.ReplaceAllString(rawAdminID, "_"))
}

// BootstrapService provisions admin sessions on the chat service
type BootstrapService struct {
	chat   stream.ChatAPI
	apiKey string
}

// NewBootstrapService creates a new bootstrap service. apiKey is the public
// chat API key handed to the browser for client-side session establishment.
func NewBootstrapService(chat stream.ChatAPI, apiKey string) *BootstrapService {
	return &BootstrapService{chat: chat, apiKey: apiKey}
}

// BootstrapAdmin normalizes the admin identity, mints a chat credential for
// it, upserts the admin user, and ensures the default admin channel exists
// with the admin as a member. The four steps run strictly in order; any
// failure aborts the whole operation. Steps already applied are not rolled
// back — a token minted before a later step fails is simply never used.
func (s *BootstrapService) BootstrapAdmin(rawAdminID string) (*models.AdminSession, error) {
	if strings.TrimSpace(rawAdminID) == "" {
		return nil, fmt.Errorf("admin ID is required")
	}

	adminName := NormalizeAdminName(rawAdminID)

	token, err := s.chat.CreateToken(adminName)
	if err != nil {
		return nil, fmt.Errorf("failed to mint admin credential: %w", err)
	}

	if err := s.chat.UpsertUser(&stream.User{ID: adminName, Role: adminRole}); err != nil {
		return nil, fmt.Errorf("failed to provision admin user: %w", err)
	}

	// Channel creation is idempotent upstream, so no existence check is made
	if _, err := s.chat.CreateChannel(adminChannelType, adminChannelID, adminName, &stream.ChannelData{
		Name: adminChannelName,
	}); err != nil {
		return nil, fmt.Errorf("failed to ensure admin channel: %w", err)
	}

	if err := s.chat.AddMembers(adminChannelType, adminChannelID, adminName); err != nil {
		return nil, fmt.Errorf("failed to join admin channel: %w", err)
	}

	logger.Info("Admin bootstrapped",
		zap.String("admin_name", adminName),
		zap.String("channel_id", adminChannelID),
	)

	return &models.AdminSession{
		AdminName:    adminName,
		Token:        token,
		StreamAPIKey: s.apiKey,
	}, nil
}
