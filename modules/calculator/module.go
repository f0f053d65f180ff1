// Package calculator exposes the evaluator as request-reply services.
package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/example/calculator-service/domain/calculation"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// ModuleName is the name other modules use to depend on the calculator.
const ModuleName = "calculator"

// CalculatorModule provides calculation services via RequestReplyService.
type CalculatorModule struct {
	logger  types.Logger
	started atomic.Bool
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*CalculatorModule)(nil)
	_ mono.ServiceProviderModule = (*CalculatorModule)(nil)
	_ mono.HealthCheckableModule = (*CalculatorModule)(nil)
)

// NewModule creates a new CalculatorModule.
func NewModule(logger types.Logger) *CalculatorModule {
	return &CalculatorModule{
		logger: logger.WithModule(ModuleName),
	}
}

// Name returns the module name.
func (m *CalculatorModule) Name() string {
	return ModuleName
}

// RegisterServices registers request-reply services in the service container.
// Service names are prefixed by the framework, so "calculate" is reachable
// as "services.calculator.calculate".
func (m *CalculatorModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "calculate", json.Unmarshal, json.Marshal, m.calculate,
	); err != nil {
		return fmt.Errorf("failed to register calculate service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "evaluate", json.Unmarshal, json.Marshal, m.evaluate,
	); err != nil {
		return fmt.Errorf("failed to register evaluate service: %w", err)
	}

	m.logger.Info("Registered services", "services", []string{"calculate", "evaluate"})
	return nil
}

// Start starts the module.
func (m *CalculatorModule) Start(_ context.Context) error {
	m.started.Store(true)
	m.logger.Info("Module started")
	return nil
}

// Stop stops the module.
func (m *CalculatorModule) Stop(_ context.Context) error {
	m.started.Store(false)
	m.logger.Info("Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *CalculatorModule) Health(_ context.Context) mono.HealthStatus {
	ops := calculation.Operations()
	tokens := make([]string, 0, len(ops))
	for _, op := range ops {
		tokens = append(tokens, op.String())
	}

	message := "operational"
	healthy := m.started.Load()
	if !healthy {
		message = "not started"
	}
	return mono.HealthStatus{
		Healthy: healthy,
		Message: message,
		Details: map[string]any{
			"operations": tokens,
		},
	}
}
