package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/calculator-service/domain/calculation"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CalculatorPort defines the interface for calculations from other modules.
// Evaluator failures are returned as *calculation.Error; any other error
// means the call itself failed.
type CalculatorPort interface {
	Calculate(ctx context.Context, operation string, a float64, b *float64) (float64, error)
	Evaluate(ctx context.Context, expression string) (float64, error)
}

// calculatorAdapter wraps ServiceContainer for type-safe cross-module communication.
type calculatorAdapter struct {
	container mono.ServiceContainer
}

// NewCalculatorAdapter creates a new adapter for calculator services.
func NewCalculatorAdapter(container mono.ServiceContainer) CalculatorPort {
	if container == nil {
		panic("calculator adapter requires non-nil ServiceContainer")
	}
	return &calculatorAdapter{container: container}
}

// Calculate computes a single operation via the calculate service.
func (a *calculatorAdapter) Calculate(ctx context.Context, operation string, x float64, y *float64) (float64, error) {
	req := CalculateRequest{
		Operation: operation,
		A:         calculation.Number(x),
	}
	if y != nil {
		b := calculation.Number(*y)
		req.B = &b
	}

	var resp CalculateResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"calculate",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return 0, fmt.Errorf("calculate service call failed: %w", err)
	}
	if resp.Error != nil {
		return 0, resp.Error.Err()
	}
	return resp.Result.Float64(), nil
}

// Evaluate evaluates an infix expression via the evaluate service.
func (a *calculatorAdapter) Evaluate(ctx context.Context, expression string) (float64, error) {
	req := EvaluateRequest{Expression: expression}

	var resp EvaluateResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"evaluate",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return 0, fmt.Errorf("evaluate service call failed: %w", err)
	}
	if resp.Error != nil {
		return 0, resp.Error.Err()
	}
	return resp.Result.Float64(), nil
}
