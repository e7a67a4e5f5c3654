// Package twilio wraps the SMS gateway's SDK behind a small sender
// interface so the relay and reminder services can be tested without
// touching the network.
package twilio

import (
	"errors"
	"fmt"

	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Sender sends an SMS to a destination number from the configured origin
// number. The concrete *MessageSender implements it; tests substitute mocks.
type Sender interface {
	Send(to, body string) error
}

// MessageSender sends SMS through the gateway's REST API
type MessageSender struct {
	client *twilio.RestClient
	from   string
}

// NewMessageSender creates a sender bound to one account and origin number
func NewMessageSender(accountSID, authToken, fromNumber string) *MessageSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &MessageSender{client: client, from: fromNumber}
}

// Send delivers one SMS. Failures are terminal; the gateway is never retried.
func (s *MessageSender) Send(to, body string) error {
	if to == "" {
		return errors.New("destination number is required")
	}

	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("sms send to %s failed: %w", to, err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	logger.Debug("SMS accepted by gateway",
		zap.String("to", to),
		zap.String("sid", sid),
	)
	return nil
}
