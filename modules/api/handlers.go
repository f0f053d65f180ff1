package api

import (
	"errors"
	"log/slog"

	"github.com/example/calculator-service/domain/calculation"
	"github.com/example/calculator-service/middleware/metrics"
	"github.com/example/calculator-service/modules/calculator"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	calculator calculator.CalculatorPort
	collector  *metrics.Collector
	logger     *slog.Logger
	service    string
	version    string
}

// NewHandlers creates a new Handlers instance. collector may be nil when
// metrics are disabled.
func NewHandlers(calc calculator.CalculatorPort, collector *metrics.Collector, logger *slog.Logger, service, version string) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		calculator: calc,
		collector:  collector,
		logger:     logger,
		service:    service,
		version:    version,
	}
}

// Index serves the calculator homepage.
func (h *Handlers) Index(c *fiber.Ctx) error {
	requestLogger(c, h.logger).Debug("Serving calculator homepage")
	c.Type("html", "utf-8")
	return c.Send(indexHTML)
}

// Health returns the liveness payload.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  healthyStatus,
		Service: h.service,
		Version: h.version,
	})
}

// Metrics returns the request counters.
func (h *Handlers) Metrics(c *fiber.Ctx) error {
	return c.JSON(MetricsResponse{
		Status:  metricsResponseStatus,
		Metrics: h.collector.Stats(),
		Note:    metricsNote,
	})
}

// Calculate handles POST /api/calculate.
func (h *Handlers) Calculate(c *fiber.Ctx) error {
	log := requestLogger(c, h.logger)

	in, err := decodeCalculate(c.Body())
	if err != nil {
		return h.respondError(c, log, err)
	}

	var b any
	if in.B != nil {
		b = *in.B
	}
	log.Info("Calculating", "operation", in.Operation, "a", in.A, "b", b)

	result, err := h.calculator.Calculate(c.UserContext(), in.Operation, in.A, in.B)
	if err != nil {
		return h.respondError(c, log, err)
	}

	log.Info("Calculation successful", "result", result)

	resp := CalculateResponse{
		Result:    calculation.Number(result),
		Operation: in.Operation,
		A:         calculation.Number(in.A),
	}
	if in.B != nil {
		b := calculation.Number(*in.B)
		resp.B = &b
	}
	return c.JSON(resp)
}

// Evaluate handles POST /api/evaluate.
func (h *Handlers) Evaluate(c *fiber.Ctx) error {
	log := requestLogger(c, h.logger)

	expression, err := decodeEvaluate(c.Body())
	if err != nil {
		return h.respondError(c, log, err)
	}

	log.Info("Evaluating expression", "expression", expression)

	result, err := h.calculator.Evaluate(c.UserContext(), expression)
	if err != nil {
		return h.respondError(c, log, err)
	}

	log.Info("Evaluation successful", "result", result)

	return c.JSON(EvaluateResponse{
		Result:     calculation.Number(result),
		Expression: expression,
	})
}

// respondError maps client faults to 400 with their message and anything
// else to a generic 500.
func (h *Handlers) respondError(c *fiber.Ctx, log *slog.Logger, err error) error {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		log.Warn("Invalid request", "error", inputErr.Message)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: inputErr.Message})
	}

	if ce, ok := calculation.AsError(err); ok {
		log.Warn("Calculation error", "error", ce.Message, "kind", calculation.KindName(ce.Kind))
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ce.Message})
	}

	log.Error("Unexpected error", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msgInternalError})
}
