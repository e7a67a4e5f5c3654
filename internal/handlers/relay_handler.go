package handlers

import (
	"net/http"

	"github.com/isaidspaghetti/stream-sms/internal/models"
	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RelayHandler handles the webhook endpoints of the bidirectional relay
type RelayHandler struct {
	relayService RelayServiceInterface
}

// NewRelayHandler creates a new relay handler
func NewRelayHandler(relayService RelayServiceInterface) *RelayHandler {
	return &RelayHandler{relayService: relayService}
}

// ReceiveSMS handles the SMS gateway's inbound-message webhook. The gateway
// posts form-encoded bodies; ShouldBind also accepts JSON replays.
func (h *RelayHandler) ReceiveSMS(c *gin.Context) {
	logger.Info("Inbound SMS webhook called")

	var webhook models.InboundSMSWebhook
	if err := c.ShouldBind(&webhook); err != nil {
		logger.Warn("Invalid inbound SMS webhook", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "From is required"})
		return
	}

	if err := h.relayService.RelayInboundSMS(webhook.From, webhook.Body); err != nil {
		logger.Error("Inbound relay failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// StreamOutgoing handles the chat service's event webhook. Events that do
// not qualify for SMS relay are acknowledged without action; the response
// always reports whether a send happened.
func (h *RelayHandler) StreamOutgoing(c *gin.Context) {
	logger.Info("Chat event webhook called")

	var event models.StreamEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.Warn("Invalid chat event payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload"})
		return
	}

	relayed, err := h.relayService.RelayOutboundEvent(&event)
	if err != nil {
		logger.Error("Outbound relay failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"relayed": relayed})
}

// TwilioError is the gateway's error callback sink: the payload is logged
// and acknowledged so the gateway stops redelivering it
func (h *RelayHandler) TwilioError(c *gin.Context) {
	logger.Warn("SMS gateway error callback",
		zap.String("content_type", c.ContentType()),
	)
	c.Status(http.StatusOK)
}
