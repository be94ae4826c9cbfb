package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
)

// AccountRepository defines data access for bank/cash accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	UpdateInitialBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines data access for chart-of-accounts nodes.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	CreateBatch(ctx context.Context, categories []*domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByCode(ctx context.Context, code string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Count(ctx context.Context) (int64, error)
	SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// MovementFilter narrows movement listings.
type MovementFilter struct {
	AccountID string
	Kind      domain.MovementKind
	Start     time.Time
	End       time.Time
	Limit     int
	Offset    int
}

// MovementRepository defines data access for ledger movements.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) error
	Update(ctx context.Context, tx Transaction, movement *domain.Movement) error
	Delete(ctx context.Context, tx Transaction, id string) error
	GetByID(ctx context.Context, id string) (*domain.Movement, error)
	GetByTransfer(ctx context.Context, transferID string) ([]*domain.Movement, error)
	// ListByAccountUpTo returns every movement of an account dated on or
	// before the given day, ordered date-ascending then insertion order.
	ListByAccountUpTo(ctx context.Context, accountID string, upTo time.Time) ([]*domain.Movement, error)
	// ListForPeriod returns movements within [start, end]; accountID empty
	// means all accounts.
	ListForPeriod(ctx context.Context, start, end time.Time, accountID string) ([]*domain.Movement, error)
	// ListBefore returns movements dated strictly before the given day.
	ListBefore(ctx context.Context, before time.Time, accountID string) ([]*domain.Movement, error)
	List(ctx context.Context, filter MovementFilter) ([]*domain.Movement, error)
	ExistsForAccount(ctx context.Context, accountID string) (bool, error)
}

// ReconciliationFilter narrows reconciliation history listings.
type ReconciliationFilter struct {
	AccountID string
	Start     time.Time
	End       time.Time
	Limit     int
	Offset    int
}

// ReconciliationRepository defines data access for reconciliation records.
type ReconciliationRepository interface {
	// Upsert writes the record for its (date, account) pair, superseding any
	// earlier record for the same pair.
	Upsert(ctx context.Context, record *domain.Reconciliation) error
	GetByDateAccount(ctx context.Context, date time.Time, accountID string) (*domain.Reconciliation, error)
	// List returns records sorted date-descending, then account name
	// ascending for ties.
	List(ctx context.Context, filter ReconciliationFilter) ([]*domain.Reconciliation, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Reconciliation, error)
}

// SettingsRepository stores the single closing watermark.
type SettingsRepository interface {
	GetClosingDate(ctx context.Context) (*time.Time, error)
	SetClosingDate(ctx context.Context, date *time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// PeriodGate guards mutations against the closing watermark.
type PeriodGate interface {
	CheckDate(date time.Time) error
}

// BalanceService computes an account's system balance as of a date.
type BalanceService interface {
	BalanceAsOf(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error)
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// VersionStore tracks a monotonic ledger version per account, bumped on every
// mutation, used to key balance memoization.
type VersionStore interface {
	Current(ctx context.Context, accountID string) (int64, error)
	Bump(ctx context.Context, accountID string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
