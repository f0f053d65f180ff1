package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/example/calculator-service/middleware/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestid"
)

// requestIDMiddleware honours an incoming X-Request-ID and generates one
// otherwise. The id is echoed in the response header.
func requestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     requestIDHeader,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})
}

// requestLogger returns logger annotated with the request context fields.
func requestLogger(c *fiber.Ctx, logger *slog.Logger) *slog.Logger {
	requestID, _ := c.Locals(requestIDKey).(string)
	if requestID == "" {
		requestID = "no-request-id"
	}
	return logger.With(
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"remote_addr", c.IP(),
	)
}

// accessLogMiddleware logs one line per completed request.
func accessLogMiddleware(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := metrics.ResponseStatus(c, err)
		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		requestLogger(c, logger).Log(c.UserContext(), level, "Request completed",
			"status", status,
			"latency", time.Since(start).String())
		return err
	}
}

// errorHandler renders errors that escaped the handlers. Server-side
// failures never expose their detail.
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := msgInternalError

		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			requestLogger(c, logger).Error("Unhandled error", "error", err)
		}

		return c.Status(code).JSON(ErrorResponse{Error: message})
	}
}
