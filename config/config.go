// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment selects a set of configuration defaults.
type Environment string

// Supported environments.
const (
	Development Environment = "development"
	Production  Environment = "production"
	Testing     Environment = "testing"
)

// ParseEnvironment maps a name to an Environment. Unknown or empty names
// fall back to Development.
func ParseEnvironment(name string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(name))) {
	case Production:
		return Production
	case Testing:
		return Testing
	default:
		return Development
	}
}

// Config holds the service configuration.
type Config struct {
	Environment     Environment
	Debug           bool
	Port            int
	ServiceName     string
	ServiceVersion  string
	LogLevel        string
	LogFormat       string
	MetricsEnabled  bool
	CORSOrigins     string
	SecretKey       string
	ShutdownTimeout time.Duration
	RateLimit       RateLimitConfig
}

// RateLimitConfig configures the optional Redis-backed rate limiter.
type RateLimitConfig struct {
	RedisAddr         string
	RedisPassword     string
	RequestsPerWindow int
	Window            time.Duration
}

// Enabled reports whether rate limiting should be wired.
func (c RateLimitConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	env := ParseEnvironment(getEnv("APP_ENV", getEnv("FLASK_ENV", string(Development))))

	cfg := &Config{
		Environment:     env,
		Debug:           env == Development,
		Port:            getEnvInt("PORT", 8080),
		ServiceName:     getEnv("SERVICE_NAME", "calculator-service"),
		ServiceVersion:  getEnv("SERVICE_VERSION", "1.0.0"),
		LogLevel:        strings.ToUpper(getEnv("LOG_LEVEL", defaultLogLevel(env))),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "json")),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "*"),
		SecretKey:       getEnv("SECRET_KEY", "dev-secret-key-change-in-production"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 30)) * time.Second,
		RateLimit: RateLimitConfig{
			RedisAddr:         getEnv("RATE_LIMIT_REDIS_ADDR", ""),
			RedisPassword:     getEnv("RATE_LIMIT_REDIS_PASSWORD", ""),
			RequestsPerWindow: getEnvInt("RATE_LIMIT_REQUESTS", 100),
			Window:            time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}

	// Development and testing pin the log level regardless of LOG_LEVEL.
	switch env {
	case Development:
		cfg.LogLevel = "DEBUG"
	case Testing:
		cfg.LogLevel = "WARNING"
	}

	return cfg
}

// Validate checks value ranges that the environment helpers cannot.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.RateLimit.Enabled() {
		if c.RateLimit.RequestsPerWindow < 1 {
			return fmt.Errorf("rate limit requests must be positive, got %d", c.RateLimit.RequestsPerWindow)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate limit window must be positive, got %s", c.RateLimit.Window)
		}
	}
	return nil
}

func defaultLogLevel(env Environment) string {
	switch env {
	case Development:
		return "DEBUG"
	case Testing:
		return "WARNING"
	default:
		return "INFO"
	}
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default value.
// Logs a warning if the value cannot be parsed as an integer.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
		log.Printf("Warning: invalid integer value for %s: %q, using default %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default value.
// Accepts the spellings strconv.ParseBool does plus "yes"/"no".
func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return defaultValue
	}
	switch value {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	if result, err := strconv.ParseBool(value); err == nil {
		return result
	}
	log.Printf("Warning: invalid boolean value for %s: %q, using default %t", key, value, defaultValue)
	return defaultValue
}
