package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tprstore/storefront/internal/logging"
)

func InitRedis(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}
	return rdb, nil
}

// ProductCache caches the product-detail payload by slug. All methods
// are safe on a nil cache and on backend failures the callers fall
// through to the database.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{rdb: rdb, ttl: ttl}
}

func key(slug string) string {
	return "product:" + slug
}

func (c *ProductCache) Get(ctx context.Context, slug string, out any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key(slug)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.FromContext(ctx).Warn("cache_get_failed", "slug", slug, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logging.FromContext(ctx).Warn("cache_decode_failed", "slug", slug, "error", err)
		return false
	}
	return true
}

func (c *ProductCache) Set(ctx context.Context, slug string, v any) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(slug), data, c.ttl).Err(); err != nil {
		logging.FromContext(ctx).Warn("cache_set_failed", "slug", slug, "error", err)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, slug string) {
	if c == nil || c.rdb == nil || slug == "" {
		return
	}
	if err := c.rdb.Del(ctx, key(slug)).Err(); err != nil {
		logging.FromContext(ctx).Warn("cache_del_failed", "slug", slug, "error", err)
	}
}
