package config

import (
	"os"
	"strconv"
	"time"

	"contract-summarizer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	MaxFileSize     int64
	LogLevel        string
	AnthropicAPIKey string
	AnthropicModel  string
	UpstreamTimeout time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:     getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		AnthropicAPIKey: getEnvOrDefault("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-7-sonnet-latest"),
		UpstreamTimeout: time.Duration(getEnvInt64OrDefault("ANTHROPIC_TIMEOUT_SECONDS", 120)) * time.Second,
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAnthropicAPIKey returns the Anthropic API key
func (c *AppConfig) GetAnthropicAPIKey() string {
	return c.AnthropicAPIKey
}

// GetAnthropicModel returns the Anthropic model identifier
func (c *AppConfig) GetAnthropicModel() string {
	return c.AnthropicModel
}

// GetUpstreamTimeout returns the per-request timeout for the Anthropic API
func (c *AppConfig) GetUpstreamTimeout() time.Duration {
	return c.UpstreamTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
