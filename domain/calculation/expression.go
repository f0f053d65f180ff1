package calculation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// expressionPattern accepts exactly "number operator number" with optional
// whitespace around the operator. Numbers are optionally negative decimals.
var expressionPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*([+\-*/])\s*(-?\d+(?:\.\d+)?)$`)

const invalidFormatMessage = "Invalid expression format. Expected: 'number operator number'"

// Expression is a parsed two-operand infix expression.
type Expression struct {
	Left     float64
	Operator Operation
	Right    float64
}

// ParseExpression trims text and parses it as "number operator number".
// There is no precedence and no chaining: "2 + 3 * 4" is rejected.
func ParseExpression(text string) (Expression, error) {
	m := expressionPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Expression{}, newError(ErrInvalidExpressionFormat, invalidFormatMessage, nil)
	}

	left, err := parseOperand(m[1])
	if err != nil {
		return Expression{}, newError(ErrInvalidExpression, "Invalid expression: "+err.Error(), err)
	}
	right, err := parseOperand(m[3])
	if err != nil {
		return Expression{}, newError(ErrInvalidExpression, "Invalid expression: "+err.Error(), err)
	}
	op, err := ParseOperation(m[2])
	if err != nil {
		return Expression{}, newError(ErrInvalidExpression, "Invalid expression: "+err.Error(), err)
	}

	return Expression{Left: left, Operator: op, Right: right}, nil
}

// EvaluateExpression parses text and computes it. Compute failures are
// reported as ErrInvalidExpression wrapping the underlying error.
func EvaluateExpression(text string) (float64, error) {
	expr, err := ParseExpression(text)
	if err != nil {
		return 0, err
	}
	return expr.Evaluate()
}

// Evaluate computes the expression.
func (e Expression) Evaluate() (float64, error) {
	right := e.Right
	result, err := Compute(e.Operator, e.Left, &right)
	if err != nil {
		return 0, newError(ErrInvalidExpression, "Invalid expression: "+err.Error(), err)
	}
	return result, nil
}

// parseOperand converts a matched literal. Literals too large for float64
// become ±Inf rather than failing.
func parseOperand(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}
