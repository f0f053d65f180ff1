package api

import (
	"errors"

	"github.com/example/calculator-service/domain/calculation"
	"github.com/example/calculator-service/middleware/metrics"
)

// Client-facing messages for request-shape failures.
const (
	msgNoData             = "No data provided"
	msgMissingParameters  = "Missing required parameters"
	msgInvalidNumber      = "Invalid number format"
	msgNoExpression       = "No expression provided"
	msgExpressionNotText  = "Expression must be a string"
	msgInternalError      = "Internal server error"
	metricsNote           = "Prometheus exposition format is served at /metrics/prometheus"
	healthyStatus         = "healthy"
	metricsResponseStatus = "ok"
)

// ErrInputDecoding is the kind of every request-shape failure.
var ErrInputDecoding = errors.New("input decoding error")

// InputError is a request body that could not be turned into evaluator input.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return ErrInputDecoding
}

// CalculateResponse is the successful response of POST /api/calculate.
type CalculateResponse struct {
	Result    calculation.Number  `json:"result"`
	Operation string              `json:"operation"`
	A         calculation.Number  `json:"a"`
	B         *calculation.Number `json:"b"`
}

// EvaluateResponse is the successful response of POST /api/evaluate.
type EvaluateResponse struct {
	Result     calculation.Number `json:"result"`
	Expression string             `json:"expression"`
}

// HealthResponse is the response of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// MetricsResponse is the response of GET /metrics.
type MetricsResponse struct {
	Status  string        `json:"status"`
	Metrics metrics.Stats `json:"metrics"`
	Note    string        `json:"note"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
