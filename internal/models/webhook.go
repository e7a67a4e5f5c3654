package models

// InboundSMSWebhook is the payload the SMS gateway posts when a message
// arrives. Twilio delivers it form-encoded; JSON tags are kept so the
// endpoint also accepts JSON replays from tooling.
type InboundSMSWebhook struct {
	From       string `form:"From" json:"From" binding:"required"`
	Body       string `form:"Body" json:"Body"`
	MessageSID string `form:"MessageSid" json:"MessageSid"`
}

// StreamEvent is the chat service's webhook payload. Only the fields the
// outbound relay inspects are modeled.
type StreamEvent struct {
	Type        string        `json:"type"`
	ChannelType string        `json:"channel_type"`
	ChannelID   string        `json:"channel_id"`
	User        *EventUser    `json:"user"`
	Message     *EventMessage `json:"message"`
}

// EventUser is the authoring user attached to a chat event
type EventUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// EventMessage is the message attached to a chat event
type EventMessage struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
