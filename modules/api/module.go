// Package api serves the calculator over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/example/calculator-service/middleware/metrics"
	"github.com/example/calculator-service/middleware/ratelimit"
	"github.com/example/calculator-service/modules/calculator"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options configures the API module.
type Options struct {
	Port           int
	ServiceName    string
	ServiceVersion string
	MetricsEnabled bool
	CORSOrigins    string
}

// LimiterProvider supplies a rate limiter once its backing store is ready.
type LimiterProvider interface {
	Limiter() ratelimit.Limiter
}

// APIModule is the driving adapter that exposes the calculator over HTTP.
type APIModule struct {
	opts        Options
	app         *fiber.App
	calculator  calculator.CalculatorPort
	collector   *metrics.Collector
	rateLimiter LimiterProvider
	logger      types.Logger
	httpLogger  *slog.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*APIModule)(nil)
	_ mono.DependentModule       = (*APIModule)(nil)
	_ mono.HealthCheckableModule = (*APIModule)(nil)
)

// NewModule creates a new APIModule. httpLogger receives per-request logs.
func NewModule(opts Options, logger types.Logger, httpLogger *slog.Logger) *APIModule {
	if httpLogger == nil {
		httpLogger = slog.Default()
	}
	return &APIModule{
		opts:       opts,
		logger:     logger.WithModule("api"),
		httpLogger: httpLogger,
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies. The rate limiter is
// a dependency only when one is configured, so it starts first.
func (m *APIModule) Dependencies() []string {
	deps := []string{calculator.ModuleName}
	if m.rateLimiter != nil {
		deps = append(deps, ratelimit.ModuleName)
	}
	return deps
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case calculator.ModuleName:
		m.calculator = calculator.NewCalculatorAdapter(container)
	}
}

// SetRateLimiter enables rate limiting of /api routes. It must be called
// before the module is registered; provider must be the module named
// ratelimit.ModuleName.
func (m *APIModule) SetRateLimiter(provider LimiterProvider) {
	m.rateLimiter = provider
}

// Start builds the Fiber app and starts listening.
func (m *APIModule) Start(ctx context.Context) error {
	if m.calculator == nil {
		return fmt.Errorf("calculator dependency not set")
	}

	var limiter ratelimit.Limiter
	if m.rateLimiter != nil {
		if limiter = m.rateLimiter.Limiter(); limiter == nil {
			return fmt.Errorf("rate limiter configured but not started")
		}
	}

	if m.opts.MetricsEnabled {
		m.collector = metrics.NewCollector("calculator")
	}
	m.app = m.newApp(limiter)

	addr := fmt.Sprintf(":%d", m.opts.Port)

	// Start server in a goroutine with error channel for startup failures
	errChan := make(chan error, 1)
	go func() {
		if err := m.app.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start HTTP server: %w", err)
	case <-time.After(100 * time.Millisecond):
		m.logger.Info("HTTP server started", "addr", addr)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop shuts down the HTTP server, waiting for in-flight requests.
func (m *APIModule) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server...")
	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	m.logger.Info("HTTP server stopped")
	return nil
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	if m.app == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "HTTP server not initialized",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"port":            m.opts.Port,
			"metrics_enabled": m.collector != nil,
			"rate_limited":    m.rateLimiter != nil,
		},
	}
}

// newApp assembles middleware and routes. limiter may be nil.
func (m *APIModule) newApp(limiter ratelimit.Limiter) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               m.opts.ServiceName,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(m.httpLogger),
	})

	app.Use(recover.New())
	app.Use(requestIDMiddleware())
	app.Use(accessLogMiddleware(m.httpLogger))
	if m.collector != nil {
		app.Use(m.collector.Middleware())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: m.opts.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + requestIDHeader,
	}))

	h := NewHandlers(m.calculator, m.collector, m.httpLogger, m.opts.ServiceName, m.opts.ServiceVersion)

	app.Get("/", h.Index).Name("index")
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(staticFS),
		MaxAge: 3600,
	})).Name("static")
	app.Get("/health", h.Health).Name("health")

	if m.collector != nil {
		app.Get("/metrics", h.Metrics).Name("metrics")
		app.Get("/metrics/prometheus", adaptor.HTTPHandler(m.collector.Handler())).Name("prometheus")
	}

	api := app.Group("/api")
	if limiter != nil {
		api.Use(ratelimit.Middleware(limiter, m.httpLogger))
	}
	api.Post("/calculate", h.Calculate).Name("calculate")
	api.Post("/evaluate", h.Evaluate).Name("evaluate")

	return app
}
