package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars clears all Stratus-related environment variables.
func clearEnvVars() {
	envVars := []string{
		"APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
		"STRATUS_API_URL", "STRATUS_HTTP_TIMEOUT",
		"STRATUS_BREAKER_MAX_REQUESTS", "STRATUS_BREAKER_INTERVAL",
		"STRATUS_BREAKER_TIMEOUT", "STRATUS_BREAKER_FAILURES",
		"STRATUS_SESSION_DRIVER", "STRATUS_SESSION_PATH",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Application defaults
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	// Backend defaults
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)

	// Breaker defaults
	assert.Equal(t, uint32(3), cfg.BreakerMaxRequests)
	assert.Equal(t, 10*time.Second, cfg.BreakerInterval)
	assert.Equal(t, 30*time.Second, cfg.BreakerTimeout)
	assert.Equal(t, uint32(5), cfg.BreakerFailureThreshold)

	// Session defaults
	assert.Equal(t, "file", cfg.SessionDriver)
	assert.Contains(t, cfg.SessionPath, ".stratus/session.json")
}

func TestLoad_WithCustomEnvVars(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("STRATUS_API_URL", "https://api.example.com")
	os.Setenv("STRATUS_HTTP_TIMEOUT", "30s")
	os.Setenv("STRATUS_BREAKER_FAILURES", "10")
	os.Setenv("STRATUS_SESSION_DRIVER", "sqlite")
	os.Setenv("STRATUS_SESSION_PATH", "/tmp/stratus-session.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, uint32(10), cfg.BreakerFailureThreshold)
	assert.Equal(t, "sqlite", cfg.SessionDriver)
	assert.Equal(t, "/tmp/stratus-session.db", cfg.SessionPath)
}

func TestLoad_RejectsUnknownSessionDriver(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	os.Setenv("STRATUS_SESSION_DRIVER", "redis")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "session driver")
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		appEnv   string
		expected bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
		{"test", false},
	}

	for _, tt := range tests {
		t.Run(tt.appEnv, func(t *testing.T) {
			cfg := &Config{AppEnv: tt.appEnv}
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		appEnv   string
		expected bool
	}{
		{"development", false},
		{"production", true},
		{"staging", false},
		{"test", false},
	}

	for _, tt := range tests {
		t.Run(tt.appEnv, func(t *testing.T) {
			cfg := &Config{AppEnv: tt.appEnv}
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

func TestGetEnv(t *testing.T) {
	// Test default value
	value := getEnv("NON_EXISTENT_VAR", "default")
	assert.Equal(t, "default", value)

	// Test with set value
	os.Setenv("TEST_VAR", "custom")
	defer os.Unsetenv("TEST_VAR")
	value = getEnv("TEST_VAR", "default")
	assert.Equal(t, "custom", value)

	// Test with empty string (should use default)
	os.Setenv("TEST_EMPTY", "")
	defer os.Unsetenv("TEST_EMPTY")
	value = getEnv("TEST_EMPTY", "default")
	assert.Equal(t, "default", value)
}

func TestGetIntEnv(t *testing.T) {
	// Test default value
	value := getIntEnv("NON_EXISTENT_INT", 42)
	assert.Equal(t, 42, value)

	// Test with valid int
	os.Setenv("TEST_INT", "100")
	defer os.Unsetenv("TEST_INT")
	value = getIntEnv("TEST_INT", 42)
	assert.Equal(t, 100, value)

	// Test with invalid int (should use default)
	os.Setenv("TEST_INVALID_INT", "not-a-number")
	defer os.Unsetenv("TEST_INVALID_INT")
	value = getIntEnv("TEST_INVALID_INT", 42)
	assert.Equal(t, 42, value)
}

func TestGetDurationEnv(t *testing.T) {
	// Test default value
	value := getDurationEnv("NON_EXISTENT_DUR", 5*time.Second)
	assert.Equal(t, 5*time.Second, value)

	// Test with valid duration
	os.Setenv("TEST_DUR", "10m")
	defer os.Unsetenv("TEST_DUR")
	value = getDurationEnv("TEST_DUR", 5*time.Second)
	assert.Equal(t, 10*time.Minute, value)

	// Test with invalid duration (should use default)
	os.Setenv("TEST_INVALID_DUR", "not-a-duration")
	defer os.Unsetenv("TEST_INVALID_DUR")
	value = getDurationEnv("TEST_INVALID_DUR", 5*time.Second)
	assert.Equal(t, 5*time.Second, value)
}

func TestGetDefaultSessionPath(t *testing.T) {
	path := getDefaultSessionPath()
	assert.Contains(t, path, ".stratus/session.json")
}
