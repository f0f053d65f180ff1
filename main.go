// Calculator Service - arithmetic and scientific calculations over HTTP.
//
// This application wires:
// - A calculator module exposing calculate/evaluate as request-reply services
// - A Fiber API module serving the web calculator, health and metrics
// - An optional Redis-backed sliding window rate limiter for /api routes
package main

import (
	"context"
	"log"
	"os"

	"github.com/example/calculator-service/config"
	"github.com/example/calculator-service/logging"
	"github.com/example/calculator-service/middleware/ratelimit"
	"github.com/example/calculator-service/modules/api"
	"github.com/example/calculator-service/modules/calculator"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

func main() {
	log.Println("=== Calculator Service ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	httpLogger := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	log.Printf("Configuration:")
	log.Printf("  Environment: %s", cfg.Environment)
	log.Printf("  HTTP Port: %d", cfg.Port)
	log.Printf("  Log Level: %s (%s)", cfg.LogLevel, cfg.LogFormat)
	log.Printf("  Metrics: %t", cfg.MetricsEnabled)
	if cfg.RateLimit.Enabled() {
		log.Printf("  Rate Limit: %d requests per %s (redis %s)",
			cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window, cfg.RateLimit.RedisAddr)
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Create modules
	calculatorModule := calculator.NewModule(app.Logger())
	apiModule := api.NewModule(api.Options{
		Port:           cfg.Port,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		MetricsEnabled: cfg.MetricsEnabled,
		CORSOrigins:    cfg.CORSOrigins,
	}, app.Logger(), httpLogger)

	// Register modules (start order follows api's declared dependencies)
	if cfg.RateLimit.Enabled() {
		rateLimitModule := ratelimit.NewModule(
			cfg.RateLimit.RedisAddr,
			cfg.RateLimit.RedisPassword,
			ratelimit.Config{
				RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
				WindowSize:        cfg.RateLimit.Window,
			},
			app.Logger(),
		)
		apiModule.SetRateLimiter(rateLimitModule)
		app.Register(rateLimitModule)
	}
	app.Register(calculatorModule)
	app.Register(apiModule)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(cfg *config.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("HTTP Endpoints (http://localhost:%d):", cfg.Port)
	log.Println("  GET  /               - Web calculator")
	log.Println("  GET  /health         - Health check")
	if cfg.MetricsEnabled {
		log.Println("  GET  /metrics        - Request metrics (JSON)")
		log.Println("  GET  /metrics/prometheus - Request metrics (Prometheus)")
	}
	log.Println("  POST /api/calculate  - {\"operation\": \"+\", \"a\": 1, \"b\": 2}")
	log.Println("  POST /api/evaluate   - {\"expression\": \"2 + 3\"}")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
