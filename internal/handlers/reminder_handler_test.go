package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isaidspaghetti/stream-sms/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReminderService is a mock implementation of ReminderServiceInterface for testing
type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) SendReminder(phoneNumber, messageText string) error {
	args := m.Called(phoneNumber, messageText)
	return args.Error(0)
}

func TestReminderHandlerSend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockReminderService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "successful send",
			requestBody: models.ReminderRequest{
				PhoneNumber: "+15551234567",
				MessageText: "appointment at 3pm",
			},
			mockSetup: func(m *MockReminderService) {
				m.On("SendReminder", "+15551234567", "appointment at 3pm").Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, true, resp["sent"])
			},
		},
		{
			name:           "missing phone number",
			requestBody:    map[string]interface{}{"messageText": "hello"},
			mockSetup:      func(m *MockReminderService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Contains(t, resp["error"], "phoneNumber")
				assert.NotContains(t, resp, "sent")
			},
		},
		{
			name:           "missing message text",
			requestBody:    map[string]interface{}{"phoneNumber": "+15551234567"},
			mockSetup:      func(m *MockReminderService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Contains(t, resp["error"], "messageText")
			},
		},
		{
			name: "gateway failure yields a structured error, never sent true",
			requestBody: models.ReminderRequest{
				PhoneNumber: "+15551234567",
				MessageText: "hello",
			},
			mockSetup: func(m *MockReminderService) {
				m.On("SendReminder", "+15551234567", "hello").
					Return(errors.New("gateway down"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Contains(t, resp["error"], "gateway down")
				assert.NotContains(t, resp, "sent")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockReminderService)
			tt.mockSetup(mockService)
			handler := NewReminderHandler(mockService)

			router := gin.New()
			router.POST("/send-reminder", handler.Send)

			payload, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/send-reminder", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			tt.checkResponse(t, resp)
			mockService.AssertExpectations(t)
		})
	}
}
