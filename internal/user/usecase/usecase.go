package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ofarias/inventario-api/internal/models"
	pkgErrors "github.com/ofarias/inventario-api/internal/pkg/errors"
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

func (u *UseCase) GetByID(ctx context.Context, id int) (models.User, error) {
	return u.repo.Get(ctx, id)
}

// List returns every user sorted ascending by id.
func (u *UseCase) List(ctx context.Context) ([]models.User, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

// Create validates every field before touching the store, enforces email
// uniqueness by scan and assigns id = max existing id + 1. An unknown role is
// silently replaced by "user". The scan-then-put sequence carries no guard
// against concurrent writers.
func (u *UseCase) Create(ctx context.Context, params CreateParams) (models.User, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	role := models.Role(strings.TrimSpace(params.Role))

	var merr *multierror.Error

	if name == "" {
		merr = multierror.Append(merr, errors.New("El nombre es obligatorio"))
	} else if utf8.RuneCountInString(name) < 2 {
		merr = multierror.Append(merr, errors.New("El nombre debe tener al menos 2 caracteres"))
	}

	if email == "" {
		merr = multierror.Append(merr, errors.New("El email es obligatorio"))
	} else if !isValidEmail(email) {
		merr = multierror.Append(merr, errors.New("El formato del email es inválido"))
	}

	if err := pkgErrors.FromMultierror(merr); err != nil {
		return models.User{}, err
	}

	users, err := u.repo.List(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, other := range users {
		if other.Email == email {
			u.logger.Warn("email duplicado", slog.String("email", email))
			return models.User{}, pkgErrors.ErrEmailExists
		}
	}

	maxID := 0
	for _, other := range users {
		if other.ID > maxID {
			maxID = other.ID
		}
	}

	if !models.ValidRole(role) {
		role = models.RoleUser
	}

	user := models.User{
		ID:    maxID + 1,
		Name:  name,
		Email: email,
		Role:  role,
	}

	if err = u.repo.Put(ctx, user); err != nil {
		return models.User{}, err
	}

	u.logger.Info("usuario creado", slog.Int("id", user.ID), slog.String("name", user.Name))

	return user, nil
}

// Update applies a partial update. Each supplied field is validated
// independently and every violation is reported; unlike Create, an unknown
// role here is an error. Email uniqueness excludes the record's own id.
func (u *UseCase) Update(ctx context.Context, id int, params UpdateParams) (models.User, error) {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return models.User{}, err
	}

	var (
		merr    *multierror.Error
		changes UpdateChanges
	)

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		switch {
		case name == "":
			merr = multierror.Append(merr, errors.New("El nombre no puede estar vacío"))
		case utf8.RuneCountInString(name) < 2:
			merr = multierror.Append(merr, errors.New("El nombre debe tener al menos 2 caracteres"))
		default:
			changes.Name = &name
		}
	}

	if params.Email != nil {
		email := strings.TrimSpace(*params.Email)
		switch {
		case email == "":
			merr = multierror.Append(merr, errors.New("El email no puede estar vacío"))
		case !isValidEmail(email):
			merr = multierror.Append(merr, errors.New("Formato de email inválido"))
		default:
			taken, err := u.emailTaken(ctx, email, id)
			if err != nil {
				return models.User{}, err
			}
			if taken {
				merr = multierror.Append(merr, errors.New("Ya existe otro usuario con ese email"))
			} else {
				changes.Email = &email
			}
		}
	}

	if params.Role != nil {
		role := models.Role(strings.TrimSpace(*params.Role))
		if models.ValidRole(role) {
			changes.Role = &role
		} else {
			merr = multierror.Append(merr, errors.New("Rol inválido. Valores permitidos: admin, user, moderator"))
		}
	}

	if err := pkgErrors.FromMultierror(merr); err != nil {
		return models.User{}, err
	}

	if changes.Name == nil && changes.Email == nil && changes.Role == nil {
		return models.User{}, pkgErrors.ErrNoFieldsToUpdate
	}

	user, err := u.repo.Update(ctx, id, changes)
	if err != nil {
		return models.User{}, err
	}

	u.logger.Info("usuario actualizado", slog.Int("id", user.ID))

	return user, nil
}

// Delete removes the user and returns the record as it was before deletion.
func (u *UseCase) Delete(ctx context.Context, id int) (models.User, error) {
	user, err := u.repo.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if err = u.repo.Delete(ctx, id); err != nil {
		return models.User{}, err
	}

	u.logger.Info("usuario eliminado", slog.Int("id", user.ID), slog.String("name", user.Name))

	return user, nil
}

func (u *UseCase) emailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return false, err
	}

	for _, other := range users {
		if other.Email == email && other.ID != excludeID {
			return true, nil
		}
	}

	return false, nil
}

// isValidEmail is deliberately permissive: '@', '.' and more than 5 chars.
func isValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".") && len(email) > 5
}
