package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ordis/cephalon/internal/bot"
	"github.com/ordis/cephalon/internal/fetch"
	"github.com/ordis/cephalon/internal/logger"
	"github.com/ordis/cephalon/internal/market"
)

// Handlers exposes the chat command surface over HTTP. Every endpoint
// dispatches through the command router and returns the reply string the
// chat layer would post.
type Handlers struct {
	router *bot.Router
}

func NewHandlers(router *bot.Router) *Handlers {
	return &Handlers{router: router}
}

// HealthCheck handles the /health endpoint
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"commands": h.router.Commands(),
		"time":     time.Now().Format(time.RFC3339),
	})
}

// command returns a handler dispatching a no-argument chat command.
func (h *Handlers) command(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reply, err := h.router.Dispatch(c.Context(), name, "")
		if err != nil {
			return replyError(c, err)
		}
		return c.JSON(fiber.Map{"reply": reply})
	}
}

// PriceCheck handles GET /api/v1/price?item=...
func (h *Handlers) PriceCheck(c *fiber.Ctx) error {
	item := c.Query("item")
	if item == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter \"item\" is required",
		})
	}

	reply, err := h.router.Dispatch(c.Context(), "price", item)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(fiber.Map{"reply": reply})
}

// replyError maps domain failures to user-facing responses.
func replyError(c *fiber.Ctx, err error) error {
	logger.Get().Error().
		Err(err).
		Str("path", c.Path()).
		Msg("command failed")

	var unknown *market.UnknownItemError
	var nobody *market.NoOnlineSellersError
	var fetchErr *fetch.Error
	switch {
	case errors.As(err, &unknown):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "That item isn't in the trade list.",
		})
	case errors.As(err, &nobody):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Nobody's selling that right now.",
		})
	case errors.As(err, &fetchErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong.",
		})
	}
}
