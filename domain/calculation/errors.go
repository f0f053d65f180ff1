package calculation

import "errors"

// Sentinel errors for calculation operations.
var (
	// ErrUnknownOperation is returned when the operation token is not supported.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrDomain is returned when an operand is outside a function's domain.
	ErrDomain = errors.New("math domain error")

	// ErrMissingOperand is returned when a binary operation has no second operand.
	ErrMissingOperand = errors.New("missing operand")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidExpressionFormat is returned when an expression is not "number operator number".
	ErrInvalidExpressionFormat = errors.New("invalid expression format")

	// ErrInvalidExpression is returned when a well-formed expression fails to evaluate.
	ErrInvalidExpression = errors.New("invalid expression")
)

// Error is a classified evaluator failure. Message is safe to return to
// clients; errors.Is matches both Kind and Cause.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

var kindNames = map[error]string{
	ErrUnknownOperation:        "unknown_operation",
	ErrDomain:                  "domain_error",
	ErrMissingOperand:          "missing_operand",
	ErrDivisionByZero:          "division_by_zero",
	ErrInvalidExpressionFormat: "invalid_expression_format",
	ErrInvalidExpression:       "invalid_expression",
}

// KindName returns the stable wire name of a sentinel kind, or "" if kind
// is not one of the package sentinels.
func KindName(kind error) string {
	return kindNames[kind]
}

// KindFromName is the inverse of KindName. It returns nil for unknown names.
func KindFromName(name string) error {
	for kind, n := range kindNames {
		if n == name {
			return kind
		}
	}
	return nil
}

// Rebuild reconstructs a classified error from its wire form. causeKind
// may be empty. It returns nil when kind is not a known name.
func Rebuild(kind, message, causeKind, causeMessage string) *Error {
	k := KindFromName(kind)
	if k == nil {
		return nil
	}
	var cause error
	if ck := KindFromName(causeKind); ck != nil {
		cause = newError(ck, causeMessage, nil)
	}
	return newError(k, message, cause)
}

// AsError extracts the outermost *Error from err.
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
