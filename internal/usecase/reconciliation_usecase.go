package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/infrastructure/metrics"
)

// ReconciliationUseCase certifies bank-reported balances against replayed
// system balances. One record per (date, account) pair; recording again for
// the same pair supersedes the earlier snapshot.
type ReconciliationUseCase struct {
	reconRepo   ReconciliationRepository
	accountRepo AccountRepository
	balances    BalanceService
	gate        PeriodGate
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewReconciliationUseCase creates a new ReconciliationUseCase. metrics may
// be nil.
func NewReconciliationUseCase(
	reconRepo ReconciliationRepository,
	accountRepo AccountRepository,
	balances BalanceService,
	gate PeriodGate,
	idGen IDGenerator,
	m *metrics.Metrics,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		reconRepo:   reconRepo,
		accountRepo: accountRepo,
		balances:    balances,
		gate:        gate,
		idGen:       idGen,
		metrics:     m,
	}
}

// RecordReconciliationInput represents input for certifying one account on one
// day against the bank statement.
type RecordReconciliationInput struct {
	Date        time.Time
	AccountID   string
	BankBalance decimal.Decimal
	Notes       string
}

// Record freezes the system balance at call time, compares it with the bank
// balance and stores the signed difference. Difference is bank minus system.
func (uc *ReconciliationUseCase) Record(ctx context.Context, input RecordReconciliationInput) (*domain.Reconciliation, error) {
	if input.Date.IsZero() {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "date", Message: "date is required"},
		}}
	}

	day := domain.DateOnly(input.Date)

	if err := uc.gate.CheckDate(day); err != nil {
		if uc.metrics != nil {
			uc.metrics.PeriodLockDenials.Inc()
		}
		return nil, err
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	systemBalance, err := uc.balances.BalanceAsOf(ctx, input.AccountID, day)
	if err != nil {
		return nil, err
	}

	difference := input.BankBalance.Sub(systemBalance)

	now := time.Now().UTC()
	record := &domain.Reconciliation{
		ID:            uc.idGen.Generate(),
		Date:          day,
		AccountID:     input.AccountID,
		SystemBalance: systemBalance,
		BankBalance:   input.BankBalance,
		Difference:    difference,
		Status:        domain.ClassifyDifference(difference),
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	existing, err := uc.reconRepo.GetByDateAccount(ctx, day, input.AccountID)
	if err != nil && !errors.Is(err, domain.ErrReconciliationNotFound) {
		return nil, err
	}

	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}

	if err := uc.reconRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ReconciliationsRecorded.WithLabelValues(string(record.Status)).Inc()
	}

	return record, nil
}

// Get retrieves the record for one (date, account) pair.
func (uc *ReconciliationUseCase) Get(ctx context.Context, date time.Time, accountID string) (*domain.Reconciliation, error) {
	return uc.reconRepo.GetByDateAccount(ctx, domain.DateOnly(date), accountID)
}

// ReconciliationView pairs a frozen record with the live system balance for
// the same (date, account), so drift introduced by ledger edits after the
// certification is visible without rewriting the record.
type ReconciliationView struct {
	*domain.Reconciliation
	CurrentSystemBalance decimal.Decimal
}

// History lists stored records, newest day first.
func (uc *ReconciliationUseCase) History(ctx context.Context, filter ReconciliationFilter) ([]*domain.Reconciliation, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset)

	return uc.reconRepo.List(ctx, filter)
}

// HistoryWithCurrent lists stored records alongside a fresh replay of each
// record's (date, account) balance.
func (uc *ReconciliationUseCase) HistoryWithCurrent(ctx context.Context, filter ReconciliationFilter) ([]*ReconciliationView, error) {
	records, err := uc.History(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*ReconciliationView, 0, len(records))
	for _, record := range records {
		current, err := uc.balances.BalanceAsOf(ctx, record.AccountID, record.Date)
		if err != nil {
			return nil, err
		}

		views = append(views, &ReconciliationView{Reconciliation: record, CurrentSystemBalance: current})
	}

	return views, nil
}

// DayAccountStatus is one account's standing in a day summary.
type DayAccountStatus struct {
	Account       *domain.Account
	SystemBalance decimal.Decimal
	Record        *domain.Reconciliation
}

// DaySummary is the reconciliation standing of every account on one day.
// AllConciliated reports whether each account carries a matching record, the
// usual check before closing the period through that day. RecordedCount and
// PendingCount tally accounts with an input and those still pending;
// TotalDifference sums the signed differences of the recorded accounts.
type DaySummary struct {
	Date            time.Time
	Accounts        []*DayAccountStatus
	RecordedCount   int
	PendingCount    int
	TotalDifference decimal.Decimal
	AllConciliated  bool
}

// SummarizeDay builds the per-account standing for one day.
func (uc *ReconciliationUseCase) SummarizeDay(ctx context.Context, date time.Time) (*DaySummary, error) {
	day := domain.DateOnly(date)

	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := uc.reconRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	byAccount := make(map[string]*domain.Reconciliation, len(records))
	for _, record := range records {
		byAccount[record.AccountID] = record
	}

	summary := &DaySummary{Date: day, AllConciliated: len(accounts) > 0}
	for _, account := range accounts {
		balance, err := uc.balances.BalanceAsOf(ctx, account.ID, day)
		if err != nil {
			return nil, err
		}

		record := byAccount[account.ID]
		if record == nil || record.Status != domain.StatusConciliated {
			summary.AllConciliated = false
		}
		if record != nil {
			summary.RecordedCount++
			summary.TotalDifference = summary.TotalDifference.Add(record.Difference)
			if record.Status == domain.StatusPending {
				summary.PendingCount++
			}
		}

		summary.Accounts = append(summary.Accounts, &DayAccountStatus{
			Account:       account,
			SystemBalance: balance,
			Record:        record,
		})
	}

	return summary, nil
}
