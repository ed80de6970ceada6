package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/ofarias/inventario-api/internal/models"
	pkgErrors "github.com/ofarias/inventario-api/internal/pkg/errors"
)

const inventoryKey = "inventarios"

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

func (r *RedisRepository) Get(ctx context.Context, id string) (models.InventoryItem, error) {
	raw, err := r.client.HGet(ctx, inventoryKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return models.InventoryItem{}, pkgErrors.ErrItemNotFound
	} else if err != nil {
		return models.InventoryItem{}, errors.Wrap(err, "get item")
	}

	var item models.InventoryItem
	if err = json.Unmarshal([]byte(raw), &item); err != nil {
		r.logger.Error("registro de item corrupto", slog.String("id", id), slog.Any("error", err))
		return models.InventoryItem{}, errors.Wrap(err, "decode item")
	}

	return item, nil
}

func (r *RedisRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	vals, err := r.client.HVals(ctx, inventoryKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "scan items")
	}

	items := make([]models.InventoryItem, 0, len(vals))
	for _, raw := range vals {
		var item models.InventoryItem
		if err = json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, errors.Wrap(err, "decode item")
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *RedisRepository) Put(ctx context.Context, item models.InventoryItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return errors.Wrap(err, "encode item")
	}

	if err = r.client.HSet(ctx, inventoryKey, item.ID, payload).Err(); err != nil {
		return errors.Wrap(err, "put item")
	}

	return nil
}
