package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheNamespace = "caixaflow:cache:"

// Cache is the Redis-backed memo store for replayed balances.
type Cache struct {
	client *redis.Client
	prefix string
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, prefix: cacheNamespace}
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, c.key(key)).Result()
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(key), value, ttl).Err()
}

// SetNX writes only when the key is absent.
func (c *Cache) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, c.key(key), value, ttl).Result()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}
