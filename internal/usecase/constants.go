package usecase

import "time"

const (
	// balanceCacheTTL bounds staleness of memoized balances; versions make
	// stale entries unreachable anyway, the TTL just caps redis growth.
	balanceCacheTTL = 15 * time.Minute

	defaultPageSize = 50
	maxPageSize     = 500
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
