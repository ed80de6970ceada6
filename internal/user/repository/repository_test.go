package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofarias/inventario-api/internal/models"
	pkgErrors "github.com/ofarias/inventario-api/internal/pkg/errors"
	"github.com/ofarias/inventario-api/internal/user/repository"
	"github.com/ofarias/inventario-api/internal/user/usecase"
)

func newRepository(t *testing.T) *repository.RedisRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return repository.NewRedisRepository(client, logger)
}

func TestPutGet(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	user := models.User{ID: 1, Name: "Ana", Email: "ana@mail.com", Role: models.RoleAdmin}
	require.NoError(t, repo.Put(ctx, user))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestGetMissing(t *testing.T) {
	repo := newRepository(t)

	_, err := repo.Get(context.Background(), 42)

	assert.ErrorIs(t, err, pkgErrors.ErrUserNotFound)
}

func TestListScansEveryRecord(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.User{ID: 1, Name: "Ana", Email: "ana@mail.com", Role: models.RoleUser}))
	require.NoError(t, repo.Put(ctx, models.User{ID: 2, Name: "Beto", Email: "beto@mail.com", Role: models.RoleUser}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateIsPartial(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.User{ID: 1, Name: "Ana", Email: "ana@mail.com", Role: models.RoleUser}))

	role := models.RoleModerator
	updated, err := repo.Update(ctx, 1, usecase.UpdateChanges{Role: &role})
	require.NoError(t, err)

	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "ana@mail.com", updated.Email)
	assert.Equal(t, models.RoleModerator, updated.Role)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateMissing(t *testing.T) {
	repo := newRepository(t)

	name := "Nuevo"
	_, err := repo.Update(context.Background(), 9, usecase.UpdateChanges{Name: &name})

	assert.ErrorIs(t, err, pkgErrors.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.User{ID: 1, Name: "Ana", Email: "ana@mail.com", Role: models.RoleUser}))
	require.NoError(t, repo.Delete(ctx, 1))

	_, err := repo.Get(ctx, 1)
	assert.ErrorIs(t, err, pkgErrors.ErrUserNotFound)
}
