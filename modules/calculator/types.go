package calculator

import "github.com/example/calculator-service/domain/calculation"

// CalculateRequest is the request for the calculate service.
type CalculateRequest struct {
	Operation string              `json:"operation"`
	A         calculation.Number  `json:"a"`
	B         *calculation.Number `json:"b,omitempty"` // Absent for unary operations
}

// CalculateResponse is the response from the calculate service.
type CalculateResponse struct {
	Result    calculation.Number `json:"result"`
	Operation string             `json:"operation"`
	Error     *ErrorDetail       `json:"error,omitempty"`
}

// EvaluateRequest is the request for the evaluate service.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the response from the evaluate service.
type EvaluateResponse struct {
	Result     calculation.Number `json:"result"`
	Expression string             `json:"expression"`
	Error      *ErrorDetail       `json:"error,omitempty"`
}

// ErrorDetail carries a classified evaluator failure across the
// request-reply boundary.
type ErrorDetail struct {
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	CauseKind    string `json:"cause_kind,omitempty"`
	CauseMessage string `json:"cause_message,omitempty"`
}

func newErrorDetail(err error) *ErrorDetail {
	ce, ok := calculation.AsError(err)
	if !ok {
		return &ErrorDetail{Kind: "internal", Message: err.Error()}
	}
	detail := &ErrorDetail{
		Kind:    calculation.KindName(ce.Kind),
		Message: ce.Message,
	}
	if cause, ok := calculation.AsError(ce.Cause); ok {
		detail.CauseKind = calculation.KindName(cause.Kind)
		detail.CauseMessage = cause.Message
	}
	return detail
}

// Err converts the detail back into an error. Classified kinds become a
// *calculation.Error; anything else is returned as a plain error.
func (d *ErrorDetail) Err() error {
	if d == nil {
		return nil
	}
	if ce := calculation.Rebuild(d.Kind, d.Message, d.CauseKind, d.CauseMessage); ce != nil {
		return ce
	}
	return &ServiceError{Kind: d.Kind, Message: d.Message}
}

// ServiceError is an unclassified failure reported by the calculator module.
type ServiceError struct {
	Kind    string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Kind + ": " + e.Message
}
