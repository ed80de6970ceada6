package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ofarias/inventario-api/internal/requests/repository"
)

// Delivery exposes the recorded request log of the statistics service.
type Delivery struct {
	repo   *repository.SqlxRepository
	logger *slog.Logger
}

func New(repo *repository.SqlxRepository, logger *slog.Logger) *Delivery {
	return &Delivery{
		repo:   repo,
		logger: logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.repo.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(router fiber.Router) {
	router.Get("/requests", d.list)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	reqs, err := d.repo.GetRequests(ctx.Context())
	if err != nil {
		d.logger.Error("no se pudo leer el registro de peticiones", slog.Any("error", err))
		return err
	}

	return ctx.JSON(fiber.Map{
		"count": len(reqs),
		"data":  reqs,
	})
}
