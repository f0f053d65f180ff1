package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "FLASK_ENV", "PORT", "LOG_LEVEL", "LOG_FORMAT", "METRICS_ENABLED",
		"SERVICE_NAME", "SERVICE_VERSION", "CORS_ALLOWED_ORIGINS", "SECRET_KEY",
		"SHUTDOWN_TIMEOUT", "RATE_LIMIT_REDIS_ADDR", "RATE_LIMIT_REDIS_PASSWORD",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Equal(t, Development, cfg.Environment)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "calculator-service", cfg.ServiceName)
	assert.Equal(t, "1.0.0", cfg.ServiceVersion)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.RateLimit.Enabled())
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Environments(t *testing.T) {
	tests := []struct {
		name      string
		appEnv    string
		flaskEnv  string
		logLevel  string
		wantEnv   Environment
		wantLevel string
		wantDebug bool
	}{
		{name: "production honours LOG_LEVEL", appEnv: "production", logLevel: "error", wantEnv: Production, wantLevel: "ERROR"},
		{name: "production default level", appEnv: "production", wantEnv: Production, wantLevel: "INFO"},
		{name: "development pins DEBUG", appEnv: "development", logLevel: "ERROR", wantEnv: Development, wantLevel: "DEBUG", wantDebug: true},
		{name: "testing pins WARNING", appEnv: "testing", logLevel: "DEBUG", wantEnv: Testing, wantLevel: "WARNING"},
		{name: "FLASK_ENV fallback", flaskEnv: "production", wantEnv: Production, wantLevel: "INFO"},
		{name: "APP_ENV wins over FLASK_ENV", appEnv: "testing", flaskEnv: "production", wantEnv: Testing, wantLevel: "WARNING"},
		{name: "unknown falls back to development", appEnv: "staging", wantEnv: Development, wantLevel: "DEBUG", wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", tt.appEnv)
			t.Setenv("FLASK_ENV", tt.flaskEnv)
			t.Setenv("LOG_LEVEL", tt.logLevel)

			cfg := FromEnv()
			assert.Equal(t, tt.wantEnv, cfg.Environment)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
			assert.Equal(t, tt.wantDebug, cfg.Debug)
		})
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("RATE_LIMIT_REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "10")

	cfg := FromEnv()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.RateLimit.Enabled())
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerWindow)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_InvalidValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := FromEnv()

	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.MetricsEnabled)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	cfg.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = FromEnv()
	cfg.RateLimit.RedisAddr = "localhost:6379"
	cfg.RateLimit.RequestsPerWindow = 0
	assert.Error(t, cfg.Validate())
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"off", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, getEnvBool("TEST_BOOL", !tt.want))
		})
	}
}
