package twilio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageSender(t *testing.T) {
	sender := NewMessageSender("AC123", "token", "+14752566269")

	require.NotNil(t, sender)
	assert.Equal(t, "+14752566269", sender.from)
	assert.NotNil(t, sender.client)
}

func TestSendRequiresDestination(t *testing.T) {
	sender := NewMessageSender("AC123", "token", "+14752566269")

	err := sender.Send("", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination")
}
