package delivery

import (
	"context"

	"github.com/ofarias/inventario-api/internal/models"
	"github.com/ofarias/inventario-api/internal/pkg/app"
	"github.com/ofarias/inventario-api/internal/user/usecase"
)

type UseCase interface {
	app.HealthChecker

	GetByID(ctx context.Context, id int) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, params usecase.CreateParams) (models.User, error)
	Update(ctx context.Context, id int, params usecase.UpdateParams) (models.User, error)
	Delete(ctx context.Context, id int) (models.User, error)
}
