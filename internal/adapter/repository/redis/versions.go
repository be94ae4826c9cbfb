package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// VersionStore implements usecase.VersionStore with one Redis counter per
// account. Every ledger mutation bumps the counter, so memoized balances
// keyed on the old version are simply never read again.
type VersionStore struct {
	client *redis.Client
	prefix string
}

// NewVersionStore creates a new VersionStore.
func NewVersionStore(client *redis.Client) *VersionStore {
	return &VersionStore{
		client: client,
		prefix: "ledgerver:",
	}
}

// Current returns the account's ledger version, zero when never bumped.
func (s *VersionStore) Current(ctx context.Context, accountID string) (int64, error) {
	v, err := s.client.Get(ctx, s.prefix+accountID).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return v, nil
}

// Bump advances the account's ledger version.
func (s *VersionStore) Bump(ctx context.Context, accountID string) error {
	return s.client.IncrBy(ctx, s.prefix+accountID, 1).Err()
}
