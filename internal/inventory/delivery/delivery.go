package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/ofarias/inventario-api/internal/inventory/usecase"
	pkgErrors "github.com/ofarias/inventario-api/internal/pkg/errors"
)

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(router fiber.Router) {
	router.All("/inventory", d.handle)
}

func (d *Delivery) handle(ctx *fiber.Ctx) error {
	switch ctx.Method() {
	case fiber.MethodPost:
		return d.handlePost(ctx)
	case fiber.MethodGet:
		return d.handleGet(ctx)
	default:
		d.logger.Warn("método no soportado", slog.String("method", ctx.Method()))
		return ctx.Status(fiber.StatusMethodNotAllowed).JSON(ErrorResponse{
			Error: fmt.Sprintf("Método '%s' no soportado.", ctx.Method()),
		})
	}
}

func (d *Delivery) handlePost(ctx *fiber.Ctx) error {
	raw := bytes.TrimSpace(ctx.Body())

	var dto CreateItemDTO
	if len(raw) == 0 || json.Unmarshal(raw, &dto) != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "El cuerpo de la solicitud no está presente o es inválido.",
		})
	}

	if dto.ID == "" || dto.Name == "" || dto.Quantity == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Faltan campos obligatorios (id, name o quantity).",
		})
	}

	item, err := d.useCase.Create(ctx.Context(), usecase.CreateParams{
		ID:       dto.ID,
		Name:     dto.Name,
		Quantity: *dto.Quantity,
	})
	if err != nil {
		return d.internalError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(CreatedResponse{
		Message: "Item agregado",
		ItemID:  item.ID,
	})
}

func (d *Delivery) handleGet(ctx *fiber.Ctx) error {
	id := ctx.Query("id")
	if id == "" {
		items, err := d.useCase.List(ctx.Context())
		if err != nil {
			return d.internalError(ctx, err)
		}

		dtos := make([]ItemDTO, 0, len(items))
		for _, item := range items {
			dtos = append(dtos, NewItemDTO(item))
		}

		return ctx.Status(fiber.StatusOK).JSON(dtos)
	}

	item, err := d.useCase.GetByID(ctx.Context(), id)
	if errors.Is(err, pkgErrors.ErrItemNotFound) {
		d.logger.Warn("item no encontrado", slog.String("id", id))
		return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: fmt.Sprintf("El item con id '%s' no existe.", id),
		})
	} else if err != nil {
		return d.internalError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(NewItemDTO(item))
}

func (d *Delivery) internalError(ctx *fiber.Ctx, err error) error {
	d.logger.Error("error interno", slog.Any("error", err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "Error interno",
		Details: err.Error(),
	})
}
