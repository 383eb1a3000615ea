package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"shareit/internal/logger"
	"shareit/internal/models"
)

// ItemSearchCacheRepository caches item search results in Redis, keyed
// by the normalized search text.
type ItemSearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewItemSearchCacheRepository(client *redis.Client, expiration time.Duration) *ItemSearchCacheRepository {
	return &ItemSearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func searchKey(text string) string {
	return fmt.Sprintf("item_search:%s", strings.ToLower(strings.TrimSpace(text)))
}

// GetSearch returns the cached result set for a search text, or nil on
// a cache miss.
func (r *ItemSearchCacheRepository) GetSearch(ctx context.Context, text string) ([]models.ItemDB, error) {
	key := searchKey(text)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", len(val),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var items []models.ItemDB
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetSearch caches a result set for a search text with the configured TTL.
func (r *ItemSearchCacheRepository) SetSearch(ctx context.Context, text string, items []models.ItemDB) error {
	key := searchKey(text)

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"items", len(items),
		"result", "ok",
		"error", err,
	)

	return err
}
