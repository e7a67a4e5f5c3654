// Package stream is a server-side client for the hosted chat service's REST
// API. Server-to-server calls authenticate with a JWT signed by the API
// secret; user credentials minted for the browser are JWTs carrying a
// user_id claim.
package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

const defaultBaseURL = "https://chat.stream-io-api.com"

// ChatAPI is the surface of the chat service this relay depends on. The
// concrete *Client implements it; tests substitute mocks.
type ChatAPI interface {
	CreateToken(userID string) (string, error)
	UpsertUser(user *User) error
	CreateChannel(channelType, channelID, createdByID string, data *ChannelData) (*Channel, error)
	AddMembers(channelType, channelID string, userIDs ...string) error
	QueryChannels(filter map[string]interface{}, sort ...*SortOption) ([]*Channel, error)
	SendMessage(channelType, channelID, userID, text string) error
}

// Client talks to the chat service with server-side credentials
type Client struct {
	apiKey    string
	apiSecret []byte
	http      *resty.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at a different API host, used by tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds each API call
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// NewClient creates a chat service client. The server token is minted once
// and reused for every call.
func NewClient(apiKey, apiSecret string, opts ...Option) (*Client, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, errors.New("api key and secret are required")
	}

	c := &Client{
		apiKey:    apiKey,
		apiSecret: []byte(apiSecret),
		http:      resty.New().SetBaseURL(defaultBaseURL).SetTimeout(10 * time.Second),
	}

	serverToken, err := c.signClaims(jwt.MapClaims{"server": true})
	if err != nil {
		return nil, fmt.Errorf("failed to mint server token: %w", err)
	}

	c.http.
		SetHeader("Stream-Auth-Type", "jwt").
		SetHeader("Authorization", serverToken).
		SetQueryParam("api_key", apiKey)

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) signClaims(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.apiSecret)
}

// CreateToken mints a session credential for the given user. The token has
// no expiry; session lifetime is left to the chat service.
func (c *Client) CreateToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}
	return c.signClaims(jwt.MapClaims{"user_id": userID})
}

// UpsertUser creates or updates a user record on the chat service
func (c *Client) UpsertUser(user *User) error {
	if user == nil || user.ID == "" {
		return errors.New("user ID is required")
	}

	body := upsertUsersRequest{Users: map[string]*User{user.ID: user}}
	resp, err := c.http.R().
		SetBody(body).
		SetError(&APIError{}).
		Post("/users")
	return c.checkResponse(resp, err, "upsert user")
}

// CreateChannel creates the channel if it does not exist and returns its
// current state; the call is idempotent on the service side
func (c *Client) CreateChannel(channelType, channelID, createdByID string, data *ChannelData) (*Channel, error) {
	if channelType == "" || channelID == "" {
		return nil, errors.New("channel type and ID are required")
	}

	payload := createChannelRequest{}
	payload.Data.CreatedBy = &User{ID: createdByID}
	if data != nil {
		payload.Data.Name = data.Name
		payload.Data.Members = data.Members
	}

	var state channelState
	resp, err := c.http.R().
		SetBody(payload).
		SetResult(&state).
		SetError(&APIError{}).
		Post(fmt.Sprintf("/channels/%s/%s/query", channelType, channelID))
	if err := c.checkResponse(resp, err, "create channel"); err != nil {
		return nil, err
	}
	return state.toChannel(), nil
}

// AddMembers adds the given users to an existing channel
func (c *Client) AddMembers(channelType, channelID string, userIDs ...string) error {
	if len(userIDs) == 0 {
		return errors.New("at least one user ID is required")
	}

	resp, err := c.http.R().
		SetBody(addMembersRequest{AddMembers: userIDs}).
		SetError(&APIError{}).
		Post(fmt.Sprintf("/channels/%s/%s", channelType, channelID))
	return c.checkResponse(resp, err, "add members")
}

// QueryChannels returns the channels matching the filter conditions, in the
// requested sort order. The payload travels as a JSON query parameter, which
// is the service's wire format for channel queries.
func (c *Client) QueryChannels(filter map[string]interface{}, sort ...*SortOption) ([]*Channel, error) {
	payload, err := json.Marshal(queryChannelsPayload{
		FilterConditions: filter,
		Sort:             sort,
		State:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode channel query: %w", err)
	}

	var result queryChannelsResponse
	resp, err := c.http.R().
		SetQueryParam("payload", string(payload)).
		SetResult(&result).
		SetError(&APIError{}).
		Get("/channels")
	if err := c.checkResponse(resp, err, "query channels"); err != nil {
		return nil, err
	}

	channels := make([]*Channel, 0, len(result.Channels))
	for i := range result.Channels {
		channels = append(channels, result.Channels[i].toChannel())
	}
	return channels, nil
}

// SendMessage appends a message to a channel, authored by the given user
func (c *Client) SendMessage(channelType, channelID, userID, text string) error {
	if userID == "" {
		return errors.New("authoring user ID is required")
	}

	resp, err := c.http.R().
		SetBody(sendMessageRequest{Message: messagePayload{Text: text, UserID: userID}}).
		SetError(&APIError{}).
		Post(fmt.Sprintf("/channels/%s/%s/message", channelType, channelID))
	return c.checkResponse(resp, err, "send message")
}

func (c *Client) checkResponse(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("chat service %s failed: %w", op, err)
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*APIError); ok && apiErr.Message != "" {
			return fmt.Errorf("chat service %s failed: %w", op, apiErr)
		}
		return fmt.Errorf("chat service %s failed: %s", op, resp.Status())
	}
	return nil
}
