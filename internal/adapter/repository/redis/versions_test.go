package redis

import (
	"context"
	"testing"
)

func TestVersionStoreStartsAtZero(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewVersionStore(client)

	v, err := store.Current(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected version 0, got %d", v)
	}
}

func TestVersionStoreBumpAdvances(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewVersionStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Bump(ctx, "acc-1"); err != nil {
			t.Fatalf("bump failed: %v", err)
		}
	}

	v, err := store.Current(ctx, "acc-1")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if v != 3 {
		t.Fatalf("expected version 3, got %d", v)
	}

	other, err := store.Current(ctx, "acc-2")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if other != 0 {
		t.Fatalf("expected independent counter, got %d", other)
	}
}
