package server

import (
	"net/http"
	"strings"
	"time"

	"rickorty/internal/config"
	"rickorty/internal/handlers"
	"rickorty/internal/services"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// New builds the Fiber app: API routes first, static files last so they never shadow them.
func New(cfg *config.Config, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Rickorty Dev Server",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: cfg.CharSnapTimeout + 10*time.Second, // must outlive the upstream call
		IdleTimeout:  120 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
	}))

	// Prometheus metrics middleware
	prom := fiberprometheus.NewWithRegistry(reg, "rickorty", "http", "", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	metrics := services.NewMetrics(reg)

	// Services
	providerService := services.NewProviderService(cfg)
	charSnapService := services.NewCharSnapService(cfg, metrics)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	configHandler := handlers.NewConfigHandler(providerService)
	charSnapHandler := handlers.NewCharSnapHandler(charSnapService)

	// Routes
	app.Get("/health", healthHandler.Handle)

	api := app.Group("/api")
	{
		// Browser preflight for the JSON POST; handlers set the wildcard origin themselves
		api.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept",
		}))

		api.Get("/config", configHandler.GetConfig)
		api.Post("/charsnap", charSnapHandler.Proxy)
	}

	// Static game files, opened from disk on every request.
	// A missing file falls through to the default 404.
	app.Use(filesystem.New(filesystem.Config{
		Root:  http.Dir(cfg.StaticDir),
		Index: "/" + strings.TrimPrefix(cfg.IndexFile, "/"),
	}))

	return app
}
