package handlers

import (
	"net/http"

	"github.com/isaidspaghetti/stream-sms/internal/models"
	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler handles admin session bootstrap requests
type AdminHandler struct {
	bootstrapService BootstrapServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(bootstrapService BootstrapServiceInterface) *AdminHandler {
	return &AdminHandler{bootstrapService: bootstrapService}
}

// Login handles admin login: it provisions the admin on the chat service and
// returns the session credential the browser uses to connect
func (h *AdminHandler) Login(c *gin.Context) {
	logger.Info("Admin login endpoint called")

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid admin login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "adminId is required"})
		return
	}

	session, err := h.bootstrapService.BootstrapAdmin(req.AdminID)
	if err != nil {
		logger.Error("Admin bootstrap failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}
