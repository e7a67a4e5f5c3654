package services

import (
	"fmt"
	"strings"

	"github.com/isaidspaghetti/stream-sms/internal/models"
	"github.com/isaidspaghetti/stream-sms/internal/stream"
	"github.com/isaidspaghetti/stream-sms/internal/twilio"
	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"go.uber.org/zap"
)

const (
	smsChannelType = "sms"
	adminUserID    = "admin"
	patientName    = "Patient"
)

// PhoneKey canonicalizes a gateway phone number into the shared join key:
// the digits with the leading "+" stripped. The key doubles as the SMS
// channel ID and the chat-side member identity, so the same derivation must
// be used everywhere or the two systems desynchronize.
func PhoneKey(gatewayNumber string) string {
	return strings.TrimPrefix(gatewayNumber, "+")
}

// outboundRule is one predicate of the outbound relay's ignore-vs-act
// decision. An event must pass every rule before an SMS is sent.
type outboundRule struct {
	name    string
	matches func(event *models.StreamEvent) bool
}

var outboundRules = []outboundRule{
	{"new message event", func(e *models.StreamEvent) bool {
		return e.Type == "message.new"
	}},
	{"sms channel", func(e *models.StreamEvent) bool {
		return e.ChannelType == smsChannelType
	}},
	{"admin author", func(e *models.StreamEvent) bool {
		return e.User != nil && e.User.Role == adminRole
	}},
	{"message present", func(e *models.StreamEvent) bool {
		return e.Message != nil
	}},
}

// RelayService maps inbound SMS to chat messages and outbound admin chat
// messages to SMS sends
type RelayService struct {
	chat stream.ChatAPI
	sms  twilio.Sender
}

// NewRelayService creates a new relay service
func NewRelayService(chat stream.ChatAPI, sms twilio.Sender) *RelayService {
	return &RelayService{chat: chat, sms: sms}
}

// RelayInboundSMS forwards an inbound SMS into the chat channel keyed by the
// sender's phone number, creating the patient user and the channel on first
// contact. Redelivered webhooks produce duplicate chat messages (no dedup
// key is used), and two concurrent first messages can race on creation.
func (s *RelayService) RelayInboundSMS(fromNumber, body string) error {
	key := PhoneKey(fromNumber)
	if key == "" {
		return fmt.Errorf("sender number is required")
	}

	filter := map[string]interface{}{
		"type":    smsChannelType,
		"members": map[string]interface{}{"$in": []string{key}},
	}
	channels, err := s.chat.QueryChannels(filter, stream.SortByLastMessageAtDesc())
	if err != nil {
		return fmt.Errorf("channel lookup for %s failed: %w", key, err)
	}

	// An exact ID match is required; membership alone could select an
	// unrelated channel that happens to share a member.
	for _, channel := range channels {
		if channel.ID == key {
			logger.Debug("Relaying inbound SMS to existing channel",
				zap.String("phone_key", key),
			)
			return s.chat.SendMessage(smsChannelType, key, key, body)
		}
	}

	logger.Info("Creating SMS channel for new number", zap.String("phone_key", key))

	if err := s.chat.UpsertUser(&stream.User{ID: key, Name: patientName}); err != nil {
		return fmt.Errorf("failed to provision user %s: %w", key, err)
	}

	if _, err := s.chat.CreateChannel(smsChannelType, key, adminUserID, &stream.ChannelData{
		Name:    "Chat with " + key,
		Members: []string{key, adminUserID},
	}); err != nil {
		return fmt.Errorf("failed to create channel %s: %w", key, err)
	}

	return s.chat.SendMessage(smsChannelType, key, key, body)
}

// RelayOutboundEvent sends an admin's chat message out as an SMS when the
// event passes every outbound rule. Non-qualifying events are a no-op, not
// an error; the boolean reports whether an SMS was sent.
func (s *RelayService) RelayOutboundEvent(event *models.StreamEvent) (bool, error) {
	for _, rule := range outboundRules {
		if !rule.matches(event) {
			logger.Debug("Outbound event ignored",
				zap.String("failed_rule", rule.name),
				zap.String("event_type", event.Type),
			)
			return false, nil
		}
	}

	// The channel ID is the phone key; the gateway wants the leading "+" back
	destination := "+" + event.ChannelID
	if err := s.sms.Send(destination, event.Message.Text); err != nil {
		return false, fmt.Errorf("outbound relay to %s failed: %w", destination, err)
	}

	logger.Info("Relayed chat message as SMS", zap.String("channel_id", event.ChannelID))
	return true, nil
}
