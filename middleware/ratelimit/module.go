package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/redis/go-redis/v9"
)

// ModuleName is the rate limiter module name.
const ModuleName = "rate-limiter"

// Module owns the Redis connection backing the rate limiter.
type Module struct {
	addr     string
	password string
	config   Config
	client   *redis.Client
	limiter  *SlidingWindowLimiter
	logger   types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates a new rate limiting module.
func NewModule(addr, password string, config Config, logger types.Logger) *Module {
	return &Module{
		addr:     addr,
		password: password,
		config:   config,
		logger:   logger.WithModule(ModuleName),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return ModuleName
}

// Start connects to Redis and builds the limiter.
func (m *Module) Start(ctx context.Context) error {
	m.client = redis.NewClient(&redis.Options{
		Addr:         m.addr,
		Password:     m.password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := m.client.Ping(ctx).Err(); err != nil {
		_ = m.client.Close()
		m.client = nil
		return fmt.Errorf("failed to connect to Redis at %s: %w", m.addr, err)
	}

	m.limiter = NewSlidingWindowLimiter(m.client, m.config, "calculator:ratelimit:ip:")
	m.logger.Info("Rate limiter started",
		"redis", m.addr,
		"requests_per_window", m.config.RequestsPerWindow,
		"window", m.config.WindowSize.String())
	return nil
}

// Stop closes the Redis connection.
func (m *Module) Stop(_ context.Context) error {
	if m.client != nil {
		if err := m.client.Close(); err != nil {
			m.logger.Error("Error closing Redis connection", "error", err)
		}
	}
	m.logger.Info("Rate limiter stopped")
	return nil
}

// Health reports whether Redis answers a ping.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.client == nil {
		return mono.HealthStatus{Healthy: false, Message: "Redis client not initialized"}
	}
	if err := m.client.Ping(ctx).Err(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "Redis unreachable",
			Details: map[string]any{"error": err.Error()},
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{"redis": m.addr},
	}
}

// Limiter returns the limiter. It is nil until Start succeeds.
func (m *Module) Limiter() Limiter {
	if m.limiter == nil {
		return nil
	}
	return m.limiter
}
