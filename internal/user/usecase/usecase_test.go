package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofarias/inventario-api/internal/models"
	pkgErrors "github.com/ofarias/inventario-api/internal/pkg/errors"
	"github.com/ofarias/inventario-api/internal/user/usecase"
	"github.com/ofarias/inventario-api/internal/user/usecase/mocks"
)

func newUseCase(t *testing.T) (*usecase.UseCase, *mocks.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return usecase.New(repo, logger), repo
}

func TestCreate_AssignsNextID(t *testing.T) {
	uc, repo := newUseCase(t)

	existing := []models.User{
		{ID: 3, Name: "Carlos", Email: "carlos@mail.com", Role: models.RoleAdmin},
		{ID: 1, Name: "Ana", Email: "ana@mail.com", Role: models.RoleUser},
	}
	repo.EXPECT().List(gomock.Any()).Return(existing, nil)
	repo.EXPECT().Put(gomock.Any(), models.User{
		ID:    4,
		Name:  "Lucía",
		Email: "lucia@mail.com",
		Role:  models.RoleUser,
	}).Return(nil)

	user, err := uc.Create(context.Background(), usecase.CreateParams{
		Name:  "  Lucía  ",
		Email: " lucia@mail.com ",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, user.ID)
	assert.Equal(t, "Lucía", user.Name)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestCreate_FirstUserGetsIDOne(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().List(gomock.Any()).Return([]models.User{}, nil)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	user, err := uc.Create(context.Background(), usecase.CreateParams{Name: "Al", Email: "a@b.co"})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestCreate_CoercesUnknownRole(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().List(gomock.Any()).Return(nil, nil)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	user, err := uc.Create(context.Background(), usecase.CreateParams{
		Name:  "Pedro",
		Email: "pedro@mail.com",
		Role:  "superadmin",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestCreate_AccumulatesEveryValidationError(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Create(context.Background(), usecase.CreateParams{Name: "A", Email: "no-es-email"})

	var verr *pkgErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"El nombre debe tener al menos 2 caracteres",
		"El formato del email es inválido",
	}, verr.Errors)
}

func TestCreate_MissingFields(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Create(context.Background(), usecase.CreateParams{})

	var verr *pkgErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"El nombre es obligatorio",
		"El email es obligatorio",
	}, verr.Errors)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: 1, Name: "Ana", Email: "ana@mail.com", Role: models.RoleUser},
	}, nil)

	_, err := uc.Create(context.Background(), usecase.CreateParams{Name: "Otra", Email: "ana@mail.com"})

	assert.ErrorIs(t, err, pkgErrors.ErrEmailExists)
}

func TestCreate_EmailTooShort(t *testing.T) {
	uc, _ := newUseCase(t)

	// '@', '.' present but too short.
	_, err := uc.Create(context.Background(), usecase.CreateParams{Name: "Ana", Email: "a@.c"})

	var verr *pkgErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"El formato del email es inválido"}, verr.Errors)
}

func TestList_SortedByID(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: 3}, {ID: 1}, {ID: 2},
	}, nil)

	users, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, 2, users[1].ID)
	assert.Equal(t, 3, users[2].ID)
}

func TestUpdate_UnknownRoleIsAnError(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().Get(gomock.Any(), 1).Return(models.User{ID: 1, Name: "Ana"}, nil)

	role := "superadmin"
	_, err := uc.Update(context.Background(), 1, usecase.UpdateParams{Role: &role})

	var verr *pkgErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Rol inválido. Valores permitidos: admin, user, moderator"}, verr.Errors)
}

func TestUpdate_NotFound(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().Get(gomock.Any(), 42).Return(models.User{}, pkgErrors.ErrUserNotFound)

	name := "Nuevo"
	_, err := uc.Update(context.Background(), 42, usecase.UpdateParams{Name: &name})

	assert.ErrorIs(t, err, pkgErrors.ErrUserNotFound)
}

func TestUpdate_NoValidFields(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().Get(gomock.Any(), 1).Return(models.User{ID: 1}, nil)

	_, err := uc.Update(context.Background(), 1, usecase.UpdateParams{})

	assert.ErrorIs(t, err, pkgErrors.ErrNoFieldsToUpdate)
}

func TestUpdate_EmailUniquenessExcludesSelf(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().Get(gomock.Any(), 1).Return(models.User{ID: 1, Email: "ana@mail.com"}, nil)
	repo.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: 1, Email: "ana@mail.com"},
		{ID: 2, Email: "otra@mail.com"},
	}, nil)
	repo.EXPECT().Update(gomock.Any(), 1, gomock.Any()).
		Return(models.User{ID: 1, Name: "Ana", Email: "ana@mail.com", Role: models.RoleUser}, nil)

	email := "ana@mail.com"
	user, err := uc.Update(context.Background(), 1, usecase.UpdateParams{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "ana@mail.com", user.Email)
}

func TestUpdate_EmailTakenByOther(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().Get(gomock.Any(), 1).Return(models.User{ID: 1, Email: "ana@mail.com"}, nil)
	repo.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: 2, Email: "otra@mail.com"},
	}, nil)

	email := "otra@mail.com"
	_, err := uc.Update(context.Background(), 1, usecase.UpdateParams{Email: &email})

	var verr *pkgErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Ya existe otro usuario con ese email"}, verr.Errors)
}

func TestUpdate_AccumulatesAcrossFields(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().Get(gomock.Any(), 1).Return(models.User{ID: 1}, nil)

	name := "X"
	email := "malo"
	_, err := uc.Update(context.Background(), 1, usecase.UpdateParams{Name: &name, Email: &email})

	var verr *pkgErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"El nombre debe tener al menos 2 caracteres",
		"Formato de email inválido",
	}, verr.Errors)
}

func TestDelete_ReturnsDeletedRecord(t *testing.T) {
	uc, repo := newUseCase(t)

	user := models.User{ID: 5, Name: "Ana", Email: "ana@mail.com", Role: models.RoleAdmin}
	repo.EXPECT().Get(gomock.Any(), 5).Return(user, nil)
	repo.EXPECT().Delete(gomock.Any(), 5).Return(nil)

	deleted, err := uc.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, user, deleted)
}

func TestDelete_NotFound(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().Get(gomock.Any(), 9).Return(models.User{}, pkgErrors.ErrUserNotFound)

	_, err := uc.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, pkgErrors.ErrUserNotFound)
}

func TestCreate_StoreFaultPropagates(t *testing.T) {
	uc, repo := newUseCase(t)

	boom := errors.New("conexión rechazada")
	repo.EXPECT().List(gomock.Any()).Return(nil, boom)

	_, err := uc.Create(context.Background(), usecase.CreateParams{Name: "Ana", Email: "ana@mail.com"})

	assert.ErrorIs(t, err, boom)
}
