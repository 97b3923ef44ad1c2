package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an id, carried in the user context so
// pipeline log lines can be correlated, and logs its completion.
func (s *implServer) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals("requestid", requestID)
		c.Set(requestIDHeader, requestID)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), requestID))

		err := c.Next()

		ctx := c.UserContext()
		latency := time.Since(start)
		statusCode := c.Response().StatusCode()

		switch {
		case err != nil:
			s.deps.Logger.Error(ctx, "%s %s failed after %dms: %v", c.Method(), c.OriginalURL(), latency.Milliseconds(), err)
		case statusCode >= 500:
			s.deps.Logger.Error(ctx, "%s %s -> %d (%dms)", c.Method(), c.OriginalURL(), statusCode, latency.Milliseconds())
		case statusCode >= 400:
			s.deps.Logger.Warn(ctx, "%s %s -> %d (%dms)", c.Method(), c.OriginalURL(), statusCode, latency.Milliseconds())
		default:
			s.deps.Logger.Info(ctx, "%s %s -> %d (%dms)", c.Method(), c.OriginalURL(), statusCode, latency.Milliseconds())
		}

		return err
	}
}
