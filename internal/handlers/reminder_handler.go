package handlers

import (
	"net/http"

	"github.com/isaidspaghetti/stream-sms/internal/models"
	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler handles direct one-off SMS sends from the admin UI
type ReminderHandler struct {
	reminderService ReminderServiceInterface
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService ReminderServiceInterface) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// Send handles the reminder send endpoint
func (h *ReminderHandler) Send(c *gin.Context) {
	logger.Info("Reminder send endpoint called")

	var req models.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid reminder request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "phoneNumber and messageText are required"})
		return
	}

	if err := h.reminderService.SendReminder(req.PhoneNumber, req.MessageText); err != nil {
		logger.Error("Reminder send failed",
			zap.String("phone_number", req.PhoneNumber),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
