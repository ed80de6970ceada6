package usecase

import (
	"context"

	"github.com/ofarias/inventario-api/internal/models"
)

type CreateParams struct {
	Name  string
	Email string
	Role  string
}

// UpdateParams marks absent fields with nil so a partial update only touches
// what the caller actually sent.
type UpdateParams struct {
	Name  *string
	Email *string
	Role  *string
}

type UpdateChanges struct {
	Name  *string
	Email *string
	Role  *models.Role
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Get(ctx context.Context, id int) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Put(ctx context.Context, user models.User) error
	Update(ctx context.Context, id int, changes UpdateChanges) (models.User, error)
	Delete(ctx context.Context, id int) error
}
