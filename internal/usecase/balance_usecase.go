package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/infrastructure/metrics"
)

// BalanceUseCase computes account balances by deterministic replay: initial
// balance plus the signed effect of every movement dated on or before the
// requested day. Balances are never stored; only the memo cache holds them,
// keyed by the account's ledger version so mutations invalidate implicitly.
type BalanceUseCase struct {
	accountRepo  AccountRepository
	movementRepo MovementRepository
	categoryRepo CategoryRepository
	cache        Cache
	versions     VersionStore
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewBalanceUseCase creates a new BalanceUseCase. cache, versions and metrics
// may be nil, in which case every call replays from storage uninstrumented.
func NewBalanceUseCase(
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	categoryRepo CategoryRepository,
	cache Cache,
	versions VersionStore,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		versions:     versions,
		metrics:      m,
		logger:       logger,
	}
}

// BalanceAsOf returns the account's balance at end of day. Cache failures are
// logged and degraded to a plain replay, never surfaced to the caller.
func (uc *BalanceUseCase) BalanceAsOf(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error) {
	day := domain.DateOnly(date)

	key := uc.cacheKey(ctx, accountID, day)
	if key != "" {
		if cached, err := uc.cache.Get(ctx, key); err == nil && cached != "" {
			if balance, err := decimal.NewFromString(cached); err == nil {
				if uc.metrics != nil {
					uc.metrics.BalanceCacheHits.Inc()
				}

				return balance, nil
			}
		}

		if uc.metrics != nil {
			uc.metrics.BalanceCacheMiss.Inc()
		}
	}

	start := time.Now()

	balance, err := uc.replay(ctx, accountID, day)
	if err != nil {
		return decimal.Zero, err
	}

	if uc.metrics != nil {
		uc.metrics.BalanceReplays.Inc()
		uc.metrics.BalanceReplayTime.Observe(time.Since(start).Seconds())
	}

	if key != "" {
		if err := uc.cache.Set(ctx, key, balance.String(), balanceCacheTTL); err != nil {
			uc.logger.Debug().Err(err).Str("account_id", accountID).Msg("balance cache write failed")
		}
	}

	return balance, nil
}

func (uc *BalanceUseCase) replay(ctx context.Context, accountID string, day time.Time) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	movements, err := uc.movementRepo.ListByAccountUpTo(ctx, accountID, day)
	if err != nil {
		return decimal.Zero, err
	}

	natures, err := uc.natureByCode(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	balance := account.InitialBalance
	for _, m := range movements {
		balance = balance.Add(m.BalanceEffect(natures[m.CategoryCode]))
	}

	return balance, nil
}

func (uc *BalanceUseCase) natureByCode(ctx context.Context) (map[string]domain.Nature, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	natures := make(map[string]domain.Nature, len(categories))
	for _, c := range categories {
		natures[c.Code] = c.Nature
	}

	return natures, nil
}

// cacheKey returns "" when memoization is unavailable for this call.
func (uc *BalanceUseCase) cacheKey(ctx context.Context, accountID string, day time.Time) string {
	if uc.cache == nil || uc.versions == nil {
		return ""
	}

	version, err := uc.versions.Current(ctx, accountID)
	if err != nil {
		uc.logger.Debug().Err(err).Str("account_id", accountID).Msg("ledger version read failed")
		return ""
	}

	return fmt.Sprintf("balance:%s:%s:v%d", accountID, domain.FormatDate(day), version)
}
