package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fricoach/internal/config"
	"fricoach/internal/model"
)

const keyPrefix = "fri:"

// redisCache is a Redis-backed FRICache. Snapshots are stored as JSON with a
// fixed TTL so stale scores age out without explicit invalidation.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed FRI cache and verifies connectivity.
func NewRedis(cfg config.RedisConfig) (FRICache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := time.Duration(cfg.TTLSec) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &redisCache{client: client, ttl: ttl}, nil
}

func (c *redisCache) Get(ctx context.Context, customerID string) (*model.FRIResult, error) {
	raw, err := c.client.Get(ctx, keyPrefix+customerID).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	var res model.FRIResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode cached fri: %w", err)
	}
	return &res, nil
}

func (c *redisCache) Set(ctx context.Context, customerID string, result *model.FRIResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode fri: %w", err)
	}
	return c.client.Set(ctx, keyPrefix+customerID, raw, c.ttl).Err()
}
