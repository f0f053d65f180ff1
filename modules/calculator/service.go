package calculator

import (
	"context"

	"github.com/example/calculator-service/domain/calculation"
	"github.com/go-monolith/mono"
)

// calculate handles the calculator.calculate service request.
func (m *CalculatorModule) calculate(_ context.Context, req CalculateRequest, _ *mono.Msg) (CalculateResponse, error) {
	var b *float64
	if req.B != nil {
		v := req.B.Float64()
		b = &v
	}

	result, err := calculation.ComputeToken(req.Operation, req.A.Float64(), b)
	if err != nil {
		m.logger.Debug("Calculation rejected",
			"operation", req.Operation,
			"error", err.Error())
		return CalculateResponse{
			Operation: req.Operation,
			Error:     newErrorDetail(err),
		}, nil // Return error in response, not as Go error
	}

	return CalculateResponse{
		Result:    calculation.Number(result),
		Operation: req.Operation,
	}, nil
}

// evaluate handles the calculator.evaluate service request.
func (m *CalculatorModule) evaluate(_ context.Context, req EvaluateRequest, _ *mono.Msg) (EvaluateResponse, error) {
	result, err := calculation.EvaluateExpression(req.Expression)
	if err != nil {
		m.logger.Debug("Expression rejected",
			"expression", req.Expression,
			"error", err.Error())
		return EvaluateResponse{
			Expression: req.Expression,
			Error:      newErrorDetail(err),
		}, nil
	}

	return EvaluateResponse{
		Result:     calculation.Number(result),
		Expression: req.Expression,
	}, nil
}
