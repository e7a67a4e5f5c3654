package stream

import "time"

// User is a chat-service user record
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// Channel is the client's view of a chat channel
type Channel struct {
	ID            string
	Type          string
	Name          string
	Members       []string
	LastMessageAt time.Time
}

// ChannelData carries the optional attributes set when a channel is created
type ChannelData struct {
	Name    string
	Members []string
}

// SortOption orders query results; Direction is -1 for descending, 1 for
// ascending, matching the chat service's wire format
type SortOption struct {
	Field     string `json:"field"`
	Direction int    `json:"direction"`
}

// SortByLastMessageAtDesc orders channels by most recent activity first
func SortByLastMessageAtDesc() *SortOption {
	return &SortOption{Field: "last_message_at", Direction: -1}
}

// APIError is an error response from the chat service
type APIError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"StatusCode"`
}

func (e *APIError) Error() string {
	return e.Message
}

// wire representations

type upsertUsersRequest struct {
	Users map[string]*User `json:"users"`
}

type createChannelRequest struct {
	Data channelDataPayload `json:"data"`
}

type channelDataPayload struct {
	Name      string   `json:"name,omitempty"`
	CreatedBy *User    `json:"created_by,omitempty"`
	Members   []string `json:"members,omitempty"`
}

type queryChannelsPayload struct {
	FilterConditions map[string]interface{} `json:"filter_conditions"`
	Sort             []*SortOption          `json:"sort,omitempty"`
	State            bool                   `json:"state"`
}

type addMembersRequest struct {
	AddMembers []string `json:"add_members"`
}

type sendMessageRequest struct {
	Message messagePayload `json:"message"`
}

type messagePayload struct {
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}

type channelState struct {
	Channel struct {
		ID            string    `json:"id"`
		Type          string    `json:"type"`
		Name          string    `json:"name"`
		LastMessageAt time.Time `json:"last_message_at"`
	} `json:"channel"`
	Members []struct {
		UserID string `json:"user_id"`
	} `json:"members"`
}

type queryChannelsResponse struct {
	Channels []channelState `json:"channels"`
}

func (cs *channelState) toChannel() *Channel {
	ch := &Channel{
		ID:            cs.Channel.ID,
		Type:          cs.Channel.Type,
		Name:          cs.Channel.Name,
		LastMessageAt: cs.Channel.LastMessageAt,
	}
	for _, m := range cs.Members {
		ch.Members = append(ch.Members, m.UserID)
	}
	return ch
}
