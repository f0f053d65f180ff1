package calculation

import (
	"fmt"
	"math"
)

// Compute applies op to a and, for binary operations, b. b is ignored by
// unary operations.
func Compute(op Operation, a float64, b *float64) (float64, error) {
	if !op.Valid() {
		return 0, newError(ErrUnknownOperation, fmt.Sprintf("Unknown operation: %d", int(op)), nil)
	}
	return compute(op, op.String(), a, b)
}

// ComputeToken resolves token and computes the result. Error messages
// quote the token as given.
func ComputeToken(token string, a float64, b *float64) (float64, error) {
	op, err := ParseOperation(token)
	if err != nil {
		return 0, err
	}
	return compute(op, token, a, b)
}

func compute(op Operation, token string, a float64, b *float64) (float64, error) {
	if op.Arity() == Unary {
		return computeUnary(op, a)
	}

	if b == nil {
		return 0, newError(ErrMissingOperand, fmt.Sprintf("Operation %s requires two operands", token), nil)
	}
	return computeBinary(op, a, *b)
}

func computeUnary(op Operation, a float64) (float64, error) {
	switch op {
	case OpSqrt:
		if a < 0 {
			return 0, newError(ErrDomain, "Cannot calculate square root of negative number", nil)
		}
		return math.Sqrt(a), nil
	case OpLog10, OpLn:
		if a <= 0 {
			return 0, newError(ErrDomain, "Cannot calculate logarithm of non-positive number", nil)
		}
		if op == OpLog10 {
			return math.Log10(a), nil
		}
		return math.Log(a), nil
	case OpSin, OpCos, OpTan:
		if math.IsInf(a, 0) {
			return 0, newError(ErrDomain, "math domain error", nil)
		}
		switch op {
		case OpSin:
			return math.Sin(a), nil
		case OpCos:
			return math.Cos(a), nil
		default:
			return math.Tan(a), nil
		}
	}
	return 0, newError(ErrUnknownOperation, "Unknown operation: "+op.String(), nil)
}

func computeBinary(op Operation, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, newError(ErrDivisionByZero, "Division by zero", nil)
		}
		return a / b, nil
	}
	return 0, newError(ErrUnknownOperation, "Unknown operation: "+op.String(), nil)
}
