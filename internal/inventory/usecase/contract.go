package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ofarias/inventario-api/internal/models"
)

type CreateParams struct {
	ID       string
	Name     string
	Quantity decimal.Decimal
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Get(ctx context.Context, id string) (models.InventoryItem, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
	Put(ctx context.Context, item models.InventoryItem) error
}
