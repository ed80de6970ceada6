package delivery

import (
	"context"

	"github.com/ofarias/inventario-api/internal/inventory/usecase"
	"github.com/ofarias/inventario-api/internal/models"
	"github.com/ofarias/inventario-api/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateParams) (models.InventoryItem, error)
	GetByID(ctx context.Context, id string) (models.InventoryItem, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
}
