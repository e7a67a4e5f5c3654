package router

import (
	"net/http"
	"time"

	"github.com/isaidspaghetti/stream-sms/internal/handlers"
	"github.com/isaidspaghetti/stream-sms/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

// requests larger than this are rejected; SMS payloads are tiny
const maxRequestBody = 64 * 1024

// Router wires the relay endpoints, the admin endpoints and the middleware
// chain onto a gin engine
type Router struct {
	engine          *gin.Engine
	adminHandler    *handlers.AdminHandler
	relayHandler    *handlers.RelayHandler
	reminderHandler *handlers.ReminderHandler
}

// NewRouter creates a fully configured router
func NewRouter(
	adminHandler *handlers.AdminHandler,
	relayHandler *handlers.RelayHandler,
	reminderHandler *handlers.ReminderHandler,
) *Router {
	if adminHandler == nil || relayHandler == nil || reminderHandler == nil {
		panic("all handlers are required")
	}

	r := &Router{
		engine:          gin.New(),
		adminHandler:    adminHandler,
		relayHandler:    relayHandler,
		reminderHandler: reminderHandler,
	}

	r.engine.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.SecurityHeadersMiddleware(),
		middleware.CORSMiddleware(),
		middleware.RequestSizeLimitMiddleware(maxRequestBody),
		middleware.AuditLogMiddleware(),
	)

	r.engine.HandleMethodNotAllowed = true
	r.engine.NoRoute(r.handleNotFound)
	r.engine.NoMethod(r.handleMethodNotAllowed)

	r.engine.GET("/health", r.handleHealth)

	// Admin UI endpoints
	r.engine.POST("/admin-login", r.adminHandler.Login)
	r.engine.POST("/send-reminder", r.reminderHandler.Send)

	// Webhook endpoints
	r.engine.POST("/receive-sms", r.relayHandler.ReceiveSMS)
	r.engine.POST("/stream-outgoing-sms", r.relayHandler.StreamOutgoing)
	r.engine.POST("/twilio-error", r.relayHandler.TwilioError)

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

func (r *Router) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC(),
		"version": version,
		"service": "stream-sms",
	})
}

func (r *Router) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

func (r *Router) handleMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
