package main

import (
	"os"

	"github.com/isaidspaghetti/stream-sms/internal/config"
	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration: a JSON file when STREAM_SMS_CONFIG points at one,
	// defaults plus the environment overlay otherwise
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		panic(err)
	}
	defer logger.Info("Server shutting down")

	// Setup and start server
	srv, err := SetupServer(cfg)
	if err != nil {
		logger.Fatal("Failed to setup server", zap.Error(err))
	}

	if err := StartServer(srv); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("STREAM_SMS_CONFIG"); path != "" {
		return config.LoadConfig(path)
	}

	cfg := config.DefaultConfig()
	if err := config.LoadFromEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
