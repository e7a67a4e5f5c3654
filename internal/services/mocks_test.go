package services

import (
	"github.com/isaidspaghetti/stream-sms/internal/stream"

	"github.com/stretchr/testify/mock"
)

// MockChatAPI is a mock implementation of stream.ChatAPI for testing
type MockChatAPI struct {
	mock.Mock
}

func (m *MockChatAPI) CreateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockChatAPI) UpsertUser(user *stream.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockChatAPI) CreateChannel(channelType, channelID, createdByID string, data *stream.ChannelData) (*stream.Channel, error) {
	args := m.Called(channelType, channelID, createdByID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stream.Channel), args.Error(1)
}

func (m *MockChatAPI) AddMembers(channelType, channelID string, userIDs ...string) error {
	args := m.Called(channelType, channelID, userIDs)
	return args.Error(0)
}

func (m *MockChatAPI) QueryChannels(filter map[string]interface{}, sort ...*stream.SortOption) ([]*stream.Channel, error) {
	args := m.Called(filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stream.Channel), args.Error(1)
}

func (m *MockChatAPI) SendMessage(channelType, channelID, userID, text string) error {
	args := m.Called(channelType, channelID, userID, text)
	return args.Error(0)
}

// MockSender is a mock implementation of twilio.Sender for testing
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to, body string) error {
	args := m.Called(to, body)
	return args.Error(0)
}
