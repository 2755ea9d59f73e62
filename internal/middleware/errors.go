package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ordis/cephalon/internal/logger"
)

// ErrorHandler is the app-level Fiber error handler. Handlers map domain
// failures themselves; anything reaching this point is unexpected.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", code).
		Msg("HTTP error")

	return c.Status(code).JSON(fiber.Map{
		"error": http.StatusText(code),
	})
}
