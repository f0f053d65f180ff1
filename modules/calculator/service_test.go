package calculator

import (
	"context"
	"math"
	"testing"

	"github.com/example/calculator-service/domain/calculation"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)         {}
func (m *mockLogger) Info(msg string, args ...any)          {}
func (m *mockLogger) Warn(msg string, args ...any)          {}
func (m *mockLogger) Error(msg string, args ...any)         {}
func (m *mockLogger) With(args ...any) types.Logger         { return m }
func (m *mockLogger) WithError(err error) types.Logger      { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

func num(f float64) *calculation.Number {
	n := calculation.Number(f)
	return &n
}

func TestCalculate(t *testing.T) {
	m := NewModule(&mockLogger{})

	tests := []struct {
		name      string
		req       CalculateRequest
		want      float64
		wantKind  string
		wantError string
	}{
		{
			name: "add",
			req:  CalculateRequest{Operation: "+", A: 5, B: num(3)},
			want: 8,
		},
		{
			name: "multiply by name",
			req:  CalculateRequest{Operation: "multiply", A: 2.5, B: num(4)},
			want: 10,
		},
		{
			name: "sqrt without b",
			req:  CalculateRequest{Operation: "sqrt", A: 81},
			want: 9,
		},
		{
			name:      "divide by zero",
			req:       CalculateRequest{Operation: "/", A: 10, B: num(0)},
			wantKind:  "division_by_zero",
			wantError: "Division by zero",
		},
		{
			name:      "missing operand",
			req:       CalculateRequest{Operation: "-", A: 10},
			wantKind:  "missing_operand",
			wantError: "Operation - requires two operands",
		},
		{
			name:      "unknown operation",
			req:       CalculateRequest{Operation: "pow", A: 2, B: num(3)},
			wantKind:  "unknown_operation",
			wantError: "Unknown operation: pow",
		},
		{
			name:      "negative sqrt",
			req:       CalculateRequest{Operation: "sqrt", A: -4},
			wantKind:  "domain_error",
			wantError: "Cannot calculate square root of negative number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := m.calculate(context.Background(), tt.req, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.req.Operation, resp.Operation)

			if tt.wantKind != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantKind, resp.Error.Kind)
				assert.Equal(t, tt.wantError, resp.Error.Message)
				return
			}

			assert.Nil(t, resp.Error)
			assert.InDelta(t, tt.want, resp.Result.Float64(), 1e-9)
		})
	}
}

func TestCalculate_InfiniteResult(t *testing.T) {
	m := NewModule(&mockLogger{})

	resp, err := m.calculate(context.Background(), CalculateRequest{Operation: "*", A: 1e308, B: num(10)}, nil)
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.True(t, math.IsInf(resp.Result.Float64(), 1))
}

func TestEvaluate(t *testing.T) {
	m := NewModule(&mockLogger{})

	resp, err := m.evaluate(context.Background(), EvaluateRequest{Expression: "5 + 3"}, nil)
	require.NoError(t, err)
	assert.Nil(t, resp.Error)
	assert.Equal(t, 8.0, resp.Result.Float64())
	assert.Equal(t, "5 + 3", resp.Expression)
}

func TestEvaluate_Errors(t *testing.T) {
	m := NewModule(&mockLogger{})

	resp, err := m.evaluate(context.Background(), EvaluateRequest{Expression: "2 + + 3"}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_expression_format", resp.Error.Kind)

	resp, err = m.evaluate(context.Background(), EvaluateRequest{Expression: "8 / 0"}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_expression", resp.Error.Kind)
	assert.Equal(t, "Invalid expression: Division by zero", resp.Error.Message)
	assert.Equal(t, "division_by_zero", resp.Error.CauseKind)
}

func TestErrorDetail_Err(t *testing.T) {
	detail := &ErrorDetail{
		Kind:         "invalid_expression",
		Message:      "Invalid expression: Division by zero",
		CauseKind:    "division_by_zero",
		CauseMessage: "Division by zero",
	}

	err := detail.Err()
	assert.ErrorIs(t, err, calculation.ErrInvalidExpression)
	assert.ErrorIs(t, err, calculation.ErrDivisionByZero)
	assert.EqualError(t, err, "Invalid expression: Division by zero")

	var nilDetail *ErrorDetail
	assert.NoError(t, nilDetail.Err())

	var se *ServiceError
	assert.ErrorAs(t, (&ErrorDetail{Kind: "internal", Message: "boom"}).Err(), &se)
}
