package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	slogfiber "github.com/samber/slog-fiber"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Delivery interface {
	HealthChecker

	AddHandlers(router fiber.Router)
}

type FiberApp struct {
	app    *fiber.App
	config WebConfig
}

// NewFiberApp assembles the web application: access log, request statistics
// middleware, a health endpoint and the handlers of every delivery.
func NewFiberApp(config WebConfig, statisticsMW fiber.Handler, logger *slog.Logger, deliveries ...Delivery) *FiberApp {
	app := fiber.New(fiber.Config{
		AppName:               "inventario-api",
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(logger),
	})

	app.Use(slogfiber.New(logger))
	if statisticsMW != nil {
		app.Use(statisticsMW)
	}

	app.Get("/health", func(ctx *fiber.Ctx) error {
		for _, d := range deliveries {
			if err := d.HealthCheck(ctx.Context()); err != nil {
				return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
			}
		}
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	for _, d := range deliveries {
		d.AddHandlers(app)
	}

	return &FiberApp{
		app:    app,
		config: config,
	}
}

func (a *FiberApp) Start() error {
	return a.app.Listen(a.config.Host + ":" + a.config.Port)
}

func (a *FiberApp) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}

// newErrorHandler converts any error escaping a handler into the generic
// internal-error body.
func newErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		logger.Error("error interno del servidor", slog.Any("error", err))

		body := struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Error   string `json:"error"`
		}{
			Message: "Error interno del servidor",
			Error:   err.Error(),
		}

		payload, merr := json.MarshalIndent(body, "", "  ")
		if merr != nil {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}

		ctx.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
		return ctx.Status(fiber.StatusInternalServerError).Send(payload)
	}
}
