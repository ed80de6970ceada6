package usecase

import (
	"context"
	"log/slog"

	"github.com/ofarias/inventario-api/internal/models"
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Create upserts the item: reusing an existing id overwrites the record.
func (u *UseCase) Create(ctx context.Context, params CreateParams) (models.InventoryItem, error) {
	item := models.InventoryItem{
		ID:       params.ID,
		Name:     params.Name,
		Quantity: params.Quantity,
	}

	if err := u.repo.Put(ctx, item); err != nil {
		return models.InventoryItem{}, err
	}

	u.logger.Info("item agregado", slog.String("id", item.ID), slog.String("quantity", item.Quantity.String()))

	return item, nil
}

func (u *UseCase) GetByID(ctx context.Context, id string) (models.InventoryItem, error) {
	return u.repo.Get(ctx, id)
}

// List returns the items in whatever order the store scan yields.
func (u *UseCase) List(ctx context.Context) ([]models.InventoryItem, error) {
	return u.repo.List(ctx)
}
