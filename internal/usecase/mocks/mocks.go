package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// MockAccountRepository is an in-memory AccountRepository. Every method can be
// overridden per test through its Func field.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc               func(ctx context.Context, account *domain.Account) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.Account, error)
	ListFunc                 func(ctx context.Context) ([]*domain.Account, error)
	UpdateFunc               func(ctx context.Context, account *domain.Account) error
	UpdateInitialBalanceFunc func(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error
	DeleteFunc               func(ctx context.Context, id string) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	return accounts, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) UpdateInitialBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateInitialBalanceFunc != nil {
		return m.UpdateInitialBalanceFunc(ctx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.InitialBalance = balance
	acc.UpdatedAt = updatedAt
	return nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.accounts, id)
	return nil
}

// MockCategoryRepository is an in-memory CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories []*domain.Category

	CreateFunc      func(ctx context.Context, category *domain.Category) error
	CreateBatchFunc func(ctx context.Context, categories []*domain.Category) error
	UpdateFunc      func(ctx context.Context, category *domain.Category) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Category, error)
	GetByCodeFunc   func(ctx context.Context, code string) (*domain.Category, error)
	ListFunc        func(ctx context.Context) ([]*domain.Category, error)
	CountFunc       func(ctx context.Context) (int64, error)
	SetActiveFunc   func(ctx context.Context, id string, active bool, updatedAt time.Time) error
	DeleteFunc      func(ctx context.Context, id string) error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, category)
	return nil
}

func (m *MockCategoryRepository) CreateBatch(ctx context.Context, categories []*domain.Category) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, categories)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, categories...)
	return nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.categories {
		if c.ID == category.ID {
			m.categories[i] = category
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) GetByCode(ctx context.Context, code string) (*domain.Category, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.categories {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.categories)), nil
}

func (m *MockCategoryRepository) SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.ID == id {
			c.Active = active
			c.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.categories {
		if c.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

// MockMovementRepository is an in-memory MovementRepository. It reproduces the
// store's ordering contract: date ascending, insertion order for ties.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements []*domain.Movement
	nextSeq   int64

	CreateFunc            func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error
	UpdateFunc            func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error
	DeleteFunc            func(ctx context.Context, tx usecase.Transaction, id string) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Movement, error)
	GetByTransferFunc     func(ctx context.Context, transferID string) ([]*domain.Movement, error)
	ListByAccountUpToFunc func(ctx context.Context, accountID string, upTo time.Time) ([]*domain.Movement, error)
	ListForPeriodFunc     func(ctx context.Context, start, end time.Time, accountID string) ([]*domain.Movement, error)
	ListBeforeFunc        func(ctx context.Context, before time.Time, accountID string) ([]*domain.Movement, error)
	ListFunc              func(ctx context.Context, filter usecase.MovementFilter) ([]*domain.Movement, error)
	ExistsForAccountFunc  func(ctx context.Context, accountID string) (bool, error)
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{}
}

func (m *MockMovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.movements {
		if existing.ID == movement.ID {
			return nil
		}
	}
	m.nextSeq++
	movement.Seq = m.nextSeq
	m.movements = append(m.movements, movement)
	return nil
}

func (m *MockMovementRepository) Update(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.movements {
		if existing.ID == movement.ID {
			movement.Seq = existing.Seq
			m.movements[i] = movement
			return nil
		}
	}
	return domain.ErrMovementNotFound
}

func (m *MockMovementRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.movements {
		if existing.ID == id {
			m.movements = append(m.movements[:i], m.movements[i+1:]...)
			return nil
		}
	}
	return domain.ErrMovementNotFound
}

func (m *MockMovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, existing := range m.movements {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, domain.ErrMovementNotFound
}

func (m *MockMovementRepository) GetByTransfer(ctx context.Context, transferID string) ([]*domain.Movement, error) {
	if m.GetByTransferFunc != nil {
		return m.GetByTransferFunc(ctx, transferID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var legs []*domain.Movement
	for _, existing := range m.movements {
		if existing.TransferID == transferID && transferID != "" {
			legs = append(legs, existing)
		}
	}
	sortMovements(legs)
	return legs, nil
}

func (m *MockMovementRepository) ListByAccountUpTo(ctx context.Context, accountID string, upTo time.Time) ([]*domain.Movement, error) {
	if m.ListByAccountUpToFunc != nil {
		return m.ListByAccountUpToFunc(ctx, accountID, upTo)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Movement
	for _, existing := range m.movements {
		if existing.AccountID == accountID && !existing.Date.After(upTo) {
			out = append(out, existing)
		}
	}
	sortMovements(out)
	return out, nil
}

func (m *MockMovementRepository) ListForPeriod(ctx context.Context, start, end time.Time, accountID string) ([]*domain.Movement, error) {
	if m.ListForPeriodFunc != nil {
		return m.ListForPeriodFunc(ctx, start, end, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Movement
	for _, existing := range m.movements {
		if existing.Date.Before(start) || existing.Date.After(end) {
			continue
		}
		if accountID != "" && existing.AccountID != accountID {
			continue
		}
		out = append(out, existing)
	}
	sortMovements(out)
	return out, nil
}

func (m *MockMovementRepository) ListBefore(ctx context.Context, before time.Time, accountID string) ([]*domain.Movement, error) {
	if m.ListBeforeFunc != nil {
		return m.ListBeforeFunc(ctx, before, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Movement
	for _, existing := range m.movements {
		if !existing.Date.Before(before) {
			continue
		}
		if accountID != "" && existing.AccountID != accountID {
			continue
		}
		out = append(out, existing)
	}
	sortMovements(out)
	return out, nil
}

func (m *MockMovementRepository) List(ctx context.Context, filter usecase.MovementFilter) ([]*domain.Movement, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Movement
	for _, existing := range m.movements {
		if filter.AccountID != "" && existing.AccountID != filter.AccountID {
			continue
		}
		if filter.Kind != "" && existing.Kind != filter.Kind {
			continue
		}
		if !filter.Start.IsZero() && existing.Date.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && existing.Date.After(filter.End) {
			continue
		}
		out = append(out, existing)
	}
	sortMovements(out)
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *MockMovementRepository) ExistsForAccount(ctx context.Context, accountID string) (bool, error) {
	if m.ExistsForAccountFunc != nil {
		return m.ExistsForAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, existing := range m.movements {
		if existing.AccountID == accountID {
			return true, nil
		}
	}
	return false, nil
}

func sortMovements(movements []*domain.Movement) {
	sort.SliceStable(movements, func(i, j int) bool {
		if !movements[i].Date.Equal(movements[j].Date) {
			return movements[i].Date.Before(movements[j].Date)
		}
		return movements[i].Seq < movements[j].Seq
	})
}

// MockReconciliationRepository is an in-memory ReconciliationRepository keyed
// by (date, account).
type MockReconciliationRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Reconciliation

	UpsertFunc           func(ctx context.Context, record *domain.Reconciliation) error
	GetByDateAccountFunc func(ctx context.Context, date time.Time, accountID string) (*domain.Reconciliation, error)
	ListFunc             func(ctx context.Context, filter usecase.ReconciliationFilter) ([]*domain.Reconciliation, error)
	ListByDateFunc       func(ctx context.Context, date time.Time) ([]*domain.Reconciliation, error)
}

func NewMockReconciliationRepository() *MockReconciliationRepository {
	return &MockReconciliationRepository{records: make(map[string]*domain.Reconciliation)}
}

func reconKey(date time.Time, accountID string) string {
	return fmt.Sprintf("%s|%s", domain.FormatDate(date), accountID)
}

func (m *MockReconciliationRepository) Upsert(ctx context.Context, record *domain.Reconciliation) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[reconKey(record.Date, record.AccountID)] = record
	return nil
}

func (m *MockReconciliationRepository) GetByDateAccount(ctx context.Context, date time.Time, accountID string) (*domain.Reconciliation, error) {
	if m.GetByDateAccountFunc != nil {
		return m.GetByDateAccountFunc(ctx, date, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if record, ok := m.records[reconKey(date, accountID)]; ok {
		return record, nil
	}
	return nil, domain.ErrReconciliationNotFound
}

func (m *MockReconciliationRepository) List(ctx context.Context, filter usecase.ReconciliationFilter) ([]*domain.Reconciliation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Reconciliation
	for _, record := range m.records {
		if filter.AccountID != "" && record.AccountID != filter.AccountID {
			continue
		}
		if !filter.Start.IsZero() && record.Date.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && record.Date.After(filter.End) {
			continue
		}
		out = append(out, record)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return strings.Compare(out[i].AccountID, out[j].AccountID) < 0
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *MockReconciliationRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Reconciliation, error) {
	if m.ListByDateFunc != nil {
		return m.ListByDateFunc(ctx, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Reconciliation
	for _, record := range m.records {
		if record.Date.Equal(date) {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.Compare(out[i].AccountID, out[j].AccountID) < 0
	})
	return out, nil
}

// MockSettingsRepository is an in-memory SettingsRepository.
type MockSettingsRepository struct {
	mu          sync.RWMutex
	closingDate *time.Time

	GetClosingDateFunc func(ctx context.Context) (*time.Time, error)
	SetClosingDateFunc func(ctx context.Context, date *time.Time) error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) GetClosingDate(ctx context.Context) (*time.Time, error) {
	if m.GetClosingDateFunc != nil {
		return m.GetClosingDateFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closingDate == nil {
		return nil, nil
	}
	d := *m.closingDate
	return &d, nil
}

func (m *MockSettingsRepository) SetClosingDate(ctx context.Context, date *time.Time) error {
	if m.SetClosingDateFunc != nil {
		return m.SetClosingDateFunc(ctx, date)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closingDate = date
	return nil
}

// MockTransaction is a no-op Transaction that records its outcome.
type MockTransaction struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RolledBack = true
	return nil
}

// MockTransactionManager hands out MockTransactions and keeps them for
// inspection.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockIDGenerator returns deterministic sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	Prefix  string
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{Prefix: "id"}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("%s-%d", m.Prefix, m.counter)
}

// MockCache is an in-memory Cache. TTLs are ignored.
type MockCache struct {
	mu    sync.RWMutex
	items map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// MockVersionStore is an in-memory VersionStore.
type MockVersionStore struct {
	mu       sync.Mutex
	versions map[string]int64

	CurrentFunc func(ctx context.Context, accountID string) (int64, error)
	BumpFunc    func(ctx context.Context, accountID string) error
}

func NewMockVersionStore() *MockVersionStore {
	return &MockVersionStore{versions: make(map[string]int64)}
}

func (m *MockVersionStore) Current(ctx context.Context, accountID string) (int64, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, accountID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.versions[accountID], nil
}

func (m *MockVersionStore) Bump(ctx context.Context, accountID string) error {
	if m.BumpFunc != nil {
		return m.BumpFunc(ctx, accountID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.versions[accountID]++
	return nil
}

// MockPeriodGate is a PeriodGate that allows everything unless overridden.
type MockPeriodGate struct {
	CheckDateFunc func(date time.Time) error
}

func (m *MockPeriodGate) CheckDate(date time.Time) error {
	if m.CheckDateFunc != nil {
		return m.CheckDateFunc(date)
	}
	return nil
}

// MockBalanceService is a BalanceService returning zero unless overridden.
type MockBalanceService struct {
	BalanceAsOfFunc func(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error)
}

func (m *MockBalanceService) BalanceAsOf(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error) {
	if m.BalanceAsOfFunc != nil {
		return m.BalanceAsOfFunc(ctx, accountID, date)
	}
	return decimal.Zero, nil
}

// MockRetrier runs the operation exactly once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIdempotencyStore is an in-memory IdempotencyStore.
type MockIdempotencyStore struct {
	mu    sync.Mutex
	items map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{items: make(map[string][]byte)}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.items[key]; ok {
		return true, existing, nil
	}
	m.items[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = response
	return nil
}
