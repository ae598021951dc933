package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Backend API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Circuit breaker for the dashboard feed
	BreakerMaxRequests      uint32
	BreakerInterval         time.Duration
	BreakerTimeout          time.Duration
	BreakerFailureThreshold uint32

	// Session persistence
	SessionDriver string // "file" or "sqlite"
	SessionPath   string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		APIBaseURL:  getEnv("STRATUS_API_URL", "http://localhost:5000"),
		HTTPTimeout: getDurationEnv("STRATUS_HTTP_TIMEOUT", 15*time.Second),

		BreakerMaxRequests:      uint32(getIntEnv("STRATUS_BREAKER_MAX_REQUESTS", 3)),
		BreakerInterval:         getDurationEnv("STRATUS_BREAKER_INTERVAL", 10*time.Second),
		BreakerTimeout:          getDurationEnv("STRATUS_BREAKER_TIMEOUT", 30*time.Second),
		BreakerFailureThreshold: uint32(getIntEnv("STRATUS_BREAKER_FAILURES", 5)),

		SessionDriver: getEnv("STRATUS_SESSION_DRIVER", "file"),
		SessionPath:   getEnv("STRATUS_SESSION_PATH", getDefaultSessionPath()),
	}

	if cfg.SessionDriver != "file" && cfg.SessionDriver != "sqlite" {
		return nil, fmt.Errorf("unknown session driver %q (expected \"file\" or \"sqlite\")", cfg.SessionDriver)
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getDefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stratus/session.json"
	}
	return filepath.Join(home, ".stratus", "session.json")
}
