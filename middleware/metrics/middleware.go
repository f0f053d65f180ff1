package metrics

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// UnknownEndpoint labels requests that matched no named route.
const UnknownEndpoint = "unknown"

// Middleware returns a Fiber handler that records every request passing
// through it. Endpoints are labelled by route name.
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		duration := time.Since(start)

		// Method is backed by the request buffer, which fasthttp reuses.
		c.Track(utils.CopyString(ctx.Method()), endpointName(ctx), ResponseStatus(ctx, err), duration)
		return err
	}
}

func endpointName(ctx *fiber.Ctx) string {
	if route := ctx.Route(); route != nil && route.Name != "" {
		return route.Name
	}
	return UnknownEndpoint
}

// ResponseStatus reports the status the client will see. Errors returned up
// the chain have not been written yet and are resolved the way Fiber's
// error handler resolves them.
func ResponseStatus(ctx *fiber.Ctx, err error) int {
	if err == nil {
		return ctx.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
