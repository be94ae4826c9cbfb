package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyNamespace = "caixaflow:idem:"

	// idempotencyPlaceholder marks a key whose first request is still in
	// flight. The HTTP middleware compares against this exact value, so it
	// must stay in sync with it.
	idempotencyPlaceholder = "processing"
)

// IdempotencyStore keeps replay bodies for mutating API requests.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client, prefix: idempotencyNamespace}
}

// CheckAndSet reports whether key was already claimed, returning the stored
// body when it was. An unclaimed key is locked with a placeholder so
// concurrent retries of the same request collapse into one writer.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	full := s.prefix + key

	existing, err := s.client.Get(ctx, full).Bytes()
	if err == nil {
		return true, existing, nil
	}
	if !errors.Is(err, redis.Nil) {
		return false, nil, err
	}

	if response != nil {
		if err := s.client.Set(ctx, full, response, ttl).Err(); err != nil {
			return false, nil, err
		}

		return false, nil, nil
	}

	claimed, err := s.client.SetNX(ctx, full, idempotencyPlaceholder, ttl).Result()
	if err != nil {
		return false, nil, err
	}

	if !claimed {
		// Lost the race; surface whatever the winner has written so far.
		existing, err := s.client.Get(ctx, full).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return false, nil, err
		}

		return true, existing, nil
	}

	return false, nil, nil
}

// Update replaces the placeholder with the final response body.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
