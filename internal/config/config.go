package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/isaidspaghetti/stream-sms/pkg/logger"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Config holds all configuration settings. Secrets are normally supplied
// through STREAM_SMS_* environment variables rather than the config file.
type Config struct {
	Server struct {
		Port int    `json:"port" env:"STREAM_SMS_SERVER_PORT"`
		Host string `json:"host" env:"STREAM_SMS_SERVER_HOST"`
	} `json:"server"`
	Stream struct {
		APIKey    string `json:"api_key" env:"STREAM_SMS_STREAM_API_KEY"`
		APISecret string `json:"api_secret" env:"STREAM_SMS_STREAM_API_SECRET"`
		BaseURL   string `json:"base_url" env:"STREAM_SMS_STREAM_BASE_URL"`
	} `json:"stream"`
	Twilio struct {
		AccountSID string `json:"account_sid" env:"STREAM_SMS_TWILIO_ACCOUNT_SID"`
		AuthToken  string `json:"auth_token" env:"STREAM_SMS_TWILIO_AUTH_TOKEN"`
		FromNumber string `json:"from_number" env:"STREAM_SMS_TWILIO_FROM_NUMBER"`
	} `json:"twilio"`
	Logging struct {
		Level string `json:"level" env:"STREAM_SMS_LOG_LEVEL"`
		Path  string `json:"path" env:"STREAM_SMS_LOG_PATH"`
	} `json:"logging"`
}

// LoadConfig loads configuration from a JSON file and applies the
// environment overlay on top of it
func LoadConfig(path string) (*Config, error) {
	// Validate path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return nil, fmt.Errorf("config path must be absolute")
	}

	// Check if file exists and is a regular file
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config file error: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close config file", zap.Error(closeErr))
		}
	}()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}

	if err := LoadFromEnv(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadFromEnv overlays STREAM_SMS_* environment variables onto config
func LoadFromEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("environment overlay failed: %w", err)
	}
	return nil
}

// Validate checks that the credentials needed to reach the two external
// services are present
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("invalid server port")
	}
	if c.Stream.APIKey == "" || c.Stream.APISecret == "" {
		return errors.New("stream api key and secret are required")
	}
	if c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" {
		return errors.New("twilio account sid and auth token are required")
	}
	if c.Twilio.FromNumber == "" {
		return errors.New("twilio origin number is required")
	}
	return nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Server.Port = 8080
	config.Server.Host = "localhost"
	config.Stream.BaseURL = "https://chat.stream-io-api.com"
	config.Logging.Level = "info"
	config.Logging.Path = "server.log"
	return config
}
