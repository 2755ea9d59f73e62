package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ordis/cephalon/internal/api"
	"github.com/ordis/cephalon/internal/bot"
	"github.com/ordis/cephalon/internal/config"
	"github.com/ordis/cephalon/internal/fetch"
	"github.com/ordis/cephalon/internal/logger"
	"github.com/ordis/cephalon/internal/market"
	"github.com/ordis/cephalon/internal/middleware"
	"github.com/ordis/cephalon/internal/worldstate"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	output := "stdout"
	if cfg.LogFile != "" {
		output = cfg.LogFile
	}
	initErr := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: output,
		Pretty: cfg.Env == "development",
	})

	log := logger.Get()
	if initErr != nil {
		// Init falls back to stdout, so the logger is still usable.
		log.Warn().Err(initErr).Msg("Log file unavailable, logging to stdout")
	}
	log.Info().Msg("Starting cephalon...")

	// Wire the upstream clients
	httpClient := fetch.NewClient(cfg.HTTPTimeout)
	world := worldstate.New(httpClient, cfg.WorldstateURL)
	marketClient := market.NewClient(httpClient, cfg.MarketURL)
	catalog := market.NewCatalog(marketClient)
	aggregator := market.NewAggregator(marketClient, catalog)

	// Load the tradable-item directory up front. A failure here is not
	// fatal: the refreshtrades command can repair it later.
	reloadCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	if err := catalog.Reload(reloadCtx); err != nil {
		log.Warn().Err(err).Msg("Initial trade item reload failed")
	} else {
		log.Info().Int("items", catalog.Len()).Msg("Trade items loaded")
	}
	cancel()

	service := bot.NewService(world, catalog, aggregator, cfg.NewsLimit)

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Setup API routes
	api.SetupRoutes(app, service.Router(), cfg)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
