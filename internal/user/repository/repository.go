package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/ofarias/inventario-api/internal/models"
	pkgErrors "github.com/ofarias/inventario-api/internal/pkg/errors"
	"github.com/ofarias/inventario-api/internal/user/usecase"
)

// Users live in a single hash: field = id, value = JSON record. HGETALL is the
// table scan, HSET the upsert.
const usersKey = "users"

type RedisRepository struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisRepository(client *redis.Client, logger *slog.Logger) *RedisRepository {
	return &RedisRepository{
		client: client,
		logger: logger,
	}
}

func (r *RedisRepository) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Get(ctx context.Context, id int) (models.User, error) {
	raw, err := r.client.HGet(ctx, usersKey, strconv.Itoa(id)).Result()
	if errors.Is(err, redis.Nil) {
		return models.User{}, pkgErrors.ErrUserNotFound
	} else if err != nil {
		return models.User{}, errors.Wrap(err, "get user")
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		r.logger.Error("registro de usuario corrupto", slog.Int("id", id), slog.Any("error", err))
		return models.User{}, errors.Wrap(err, "decode user")
	}

	return user, nil
}

func (r *RedisRepository) List(ctx context.Context) ([]models.User, error) {
	vals, err := r.client.HVals(ctx, usersKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "scan users")
	}

	users := make([]models.User, 0, len(vals))
	for _, raw := range vals {
		var user models.User
		if err = json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, errors.Wrap(err, "decode user")
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *RedisRepository) Put(ctx context.Context, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode user")
	}

	if err = r.client.HSet(ctx, usersKey, strconv.Itoa(user.ID), payload).Err(); err != nil {
		return errors.Wrap(err, "put user")
	}

	return nil
}

// Update reads the current record, overlays the supplied changes and writes it
// back, returning the updated record.
func (r *RedisRepository) Update(ctx context.Context, id int, changes usecase.UpdateChanges) (models.User, error) {
	user, err := r.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if changes.Name != nil {
		user.Name = *changes.Name
	}
	if changes.Email != nil {
		user.Email = *changes.Email
	}
	if changes.Role != nil {
		user.Role = *changes.Role
	}

	if err = r.Put(ctx, user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *RedisRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.HDel(ctx, usersKey, strconv.Itoa(id)).Err(); err != nil {
		return errors.Wrap(err, "delete user")
	}

	return nil
}
