package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ordis/cephalon/internal/bot"
	"github.com/ordis/cephalon/internal/config"
	"github.com/ordis/cephalon/internal/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, router *bot.Router, cfg *config.Config) {
	handlers := NewHandlers(router)

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	// API group with versioning
	api := app.Group("/api/v1")

	api.Get("/health", handlers.HealthCheck)

	// Chat commands, one route each
	api.Get("/news", handlers.command("news"))
	api.Get("/invasions", handlers.command("invasion"))
	api.Get("/fissures", handlers.command("fissures"))
	api.Get("/deals", handlers.command("deals"))
	api.Get("/price", handlers.PriceCheck)

	// Admin endpoints (protected in production)
	admin := api.Group("/admin", middleware.AdminOnly(cfg.AdminAPIKey))
	admin.Post("/refreshtrades", handlers.command("refreshtrades"))

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
