package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestCacheRoundTripUnderNamespace(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "balance:acc-1:2024-01-05:v3", "1300", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "balance:acc-1:2024-01-05:v3")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != "1300" {
		t.Fatalf("expected 1300, got %s", val)
	}

	// The raw key carries the project namespace so other tenants of the
	// same Redis never collide with it.
	raw, err := client.Get(ctx, cacheNamespace+"balance:acc-1:2024-01-05:v3").Result()
	if err != nil || raw != "1300" {
		t.Fatalf("expected namespaced key, got val=%s err=%v", raw, err)
	}
}

func TestCacheSetNXKeepsFirstWriter(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	set, err := cache.SetNX(ctx, "balance:acc-1:2024-01-05:v3", "1300", time.Minute)
	if err != nil || !set {
		t.Fatalf("expected first SetNX to win, got set=%v err=%v", set, err)
	}

	set, err = cache.SetNX(ctx, "balance:acc-1:2024-01-05:v3", "9999", time.Minute)
	if err != nil {
		t.Fatalf("SetNX failed: %v", err)
	}
	if set {
		t.Fatalf("expected second SetNX to lose to the existing key")
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "balance:acc-1:2024-01-05:v3", "1300", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "balance:acc-1:2024-01-05:v3"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "balance:acc-1:2024-01-05:v3"); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil for deleted key, got %v", err)
	}
}
