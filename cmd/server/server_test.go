package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/isaidspaghetti/stream-sms/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Stream.APIKey = "test-key"
	cfg.Stream.APISecret = "test-secret"
	cfg.Twilio.AccountSID = "AC123"
	cfg.Twilio.AuthToken = "token"
	cfg.Twilio.FromNumber = "+14752566269"
	return cfg
}

func TestSetupServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid configuration", func(t *testing.T) {
		srv, err := SetupServer(testConfig())
		require.NoError(t, err)
		require.NotNil(t, srv)

		assert.Equal(t, ":8080", srv.Addr)
		assert.Equal(t, 15*time.Second, srv.ReadTimeout)
		assert.Equal(t, 5*time.Second, srv.ReadHeaderTimeout)
		assert.NotNil(t, srv.Handler)
	})

	t.Run("nil configuration", func(t *testing.T) {
		srv, err := SetupServer(nil)
		assert.Error(t, err)
		assert.Nil(t, srv)
	})

	t.Run("missing stream credentials", func(t *testing.T) {
		cfg := testConfig()
		cfg.Stream.APISecret = ""

		_, err := SetupServer(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("missing twilio credentials", func(t *testing.T) {
		cfg := testConfig()
		cfg.Twilio.AuthToken = ""

		_, err := SetupServer(cfg)
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := testConfig()
		cfg.Server.Port = 0

		_, err := SetupServer(cfg)
		assert.Error(t, err)
	})
}

func TestServerHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv, err := SetupServer(testConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stream-sms")
}

func TestStartServerWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cfg.Server.Port = 18217 // unlikely to collide

	srv, err := SetupServer(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- StartServerWithContext(ctx, srv)
	}()

	// Give the listener a moment, then trigger shutdown
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
