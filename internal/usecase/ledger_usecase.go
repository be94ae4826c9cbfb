package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/infrastructure/metrics"
)

// LedgerUseCase handles every mutation of the movement log. All writes are
// gated by the period lock and serialized through storage transactions; the
// transfer pair is the one multi-row write and is all-or-nothing.
type LedgerUseCase struct {
	txManager    TransactionManager
	movementRepo MovementRepository
	accountRepo  AccountRepository
	categoryRepo CategoryRepository
	gate         PeriodGate
	versions     VersionStore
	idGen        IDGenerator
	retrier      Retrier
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase. versions, retrier and metrics
// may be nil: balances then simply go uncached, transient storage errors are
// not retried and nothing is instrumented.
func NewLedgerUseCase(
	txManager TransactionManager,
	movementRepo MovementRepository,
	accountRepo AccountRepository,
	categoryRepo CategoryRepository,
	gate PeriodGate,
	versions VersionStore,
	idGen IDGenerator,
	retrier Retrier,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:    txManager,
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		gate:         gate,
		versions:     versions,
		idGen:        idGen,
		retrier:      retrier,
		metrics:      m,
		logger:       logger,
	}
}

// CreateMovementInput represents input for appending an income or expense
// movement. ID may carry a caller-supplied stable id: replaying the same id
// returns the stored movement instead of double-counting.
type CreateMovementInput struct {
	ID            string
	Date          time.Time
	Kind          domain.MovementKind
	CategoryCode  string
	AccountID     string
	Description   string
	PaymentMethod string
	Amount        decimal.Decimal
}

// CreateMovement appends a movement to the ledger.
func (uc *LedgerUseCase) CreateMovement(ctx context.Context, input CreateMovementInput) (*domain.Movement, error) {
	if input.Kind == domain.MovementTransfer {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "type", Message: "transfers are written through the transfer operation"},
		}}
	}

	movement := &domain.Movement{
		ID:            input.ID,
		Date:          domain.DateOnly(input.Date),
		Kind:          input.Kind,
		CategoryCode:  input.CategoryCode,
		AccountID:     input.AccountID,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		Amount:        input.Amount,
	}

	if err := movement.Validate(); err != nil {
		return nil, err
	}

	if err := uc.checkDate(movement.Date); err != nil {
		return nil, err
	}

	if input.ID != "" {
		existing, err := uc.movementRepo.GetByID(ctx, input.ID)
		if err == nil {
			return existing, nil
		}

		if !errors.Is(err, domain.ErrMovementNotFound) {
			return nil, err
		}
	}

	if _, err := uc.accountRepo.GetByID(ctx, movement.AccountID); err != nil {
		return nil, err
	}

	chart, err := uc.loadChart(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateEntryCategory(chart, movement.Kind, movement.CategoryCode); err != nil {
		return nil, err
	}

	if movement.ID == "" {
		movement.ID = uc.idGen.Generate()
	}

	now := time.Now().UTC()
	movement.CreatedAt = now
	movement.UpdatedAt = now

	err = uc.inTx(ctx, func(tx Transaction) error {
		return uc.movementRepo.Create(ctx, tx, movement)
	})
	if err != nil {
		return nil, err
	}

	uc.bumpVersions(ctx, movement.AccountID)

	if uc.metrics != nil {
		uc.metrics.MovementsCreated.WithLabelValues(string(movement.Kind)).Inc()
	}

	return movement, nil
}

// UpdateMovementInput represents input for editing a movement.
type UpdateMovementInput struct {
	ID            string
	Date          time.Time
	Kind          domain.MovementKind
	CategoryCode  string
	AccountID     string
	Description   string
	PaymentMethod string
	Amount        decimal.Decimal
}

// UpdateMovement edits a movement. Both the original and the new date must be
// outside the closed period, so entries can neither leave nor enter it.
func (uc *LedgerUseCase) UpdateMovement(ctx context.Context, input UpdateMovementInput) (*domain.Movement, error) {
	original, err := uc.movementRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if original.TransferID != "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "id", Message: "transfer legs cannot be edited individually"},
		}}
	}

	if input.Kind == domain.MovementTransfer {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "type", Message: "transfers are written through the transfer operation"},
		}}
	}

	updated := &domain.Movement{
		ID:            original.ID,
		Date:          domain.DateOnly(input.Date),
		Kind:          input.Kind,
		CategoryCode:  input.CategoryCode,
		AccountID:     input.AccountID,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		Amount:        input.Amount,
		Seq:           original.Seq,
		CreatedAt:     original.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := uc.checkDate(original.Date); err != nil {
		return nil, err
	}

	if err := uc.checkDate(updated.Date); err != nil {
		return nil, err
	}

	if _, err := uc.accountRepo.GetByID(ctx, updated.AccountID); err != nil {
		return nil, err
	}

	chart, err := uc.loadChart(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateEntryCategory(chart, updated.Kind, updated.CategoryCode); err != nil {
		return nil, err
	}

	err = uc.inTx(ctx, func(tx Transaction) error {
		return uc.movementRepo.Update(ctx, tx, updated)
	})
	if err != nil {
		return nil, err
	}

	uc.bumpVersions(ctx, original.AccountID, updated.AccountID)

	return updated, nil
}

// DeleteMovement removes a movement. Deleting a transfer leg removes both
// legs so the pair count stays 0 or 2.
func (uc *LedgerUseCase) DeleteMovement(ctx context.Context, id string) error {
	original, err := uc.movementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if original.TransferID != "" {
		return uc.DeleteTransfer(ctx, original.TransferID)
	}

	if err := uc.checkDate(original.Date); err != nil {
		return err
	}

	err = uc.inTx(ctx, func(tx Transaction) error {
		return uc.movementRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	uc.bumpVersions(ctx, original.AccountID)

	if uc.metrics != nil {
		uc.metrics.MovementsDeleted.Inc()
	}

	return nil
}

// CreateTransferInput represents input for a transfer between two accounts.
// ID may carry a stable id for idempotent replay.
type CreateTransferInput struct {
	ID            string
	Date          time.Time
	FromAccountID string
	ToAccountID   string
	Description   string
	PaymentMethod string
	Amount        decimal.Decimal
}

// CreateTransfer writes the two movements of a transfer atomically: a debit
// leg on the source account and a credit leg on the destination, both against
// the reserved transfer categories.
func (uc *LedgerUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) ([]*domain.Movement, error) {
	if input.FromAccountID == input.ToAccountID {
		return nil, domain.ErrSameAccount
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	date := domain.DateOnly(input.Date)
	if err := uc.checkDate(date); err != nil {
		return nil, err
	}

	transferID := input.ID
	if transferID != "" {
		legs, err := uc.movementRepo.GetByTransfer(ctx, transferID)
		if err != nil {
			return nil, err
		}

		if len(legs) == 2 {
			return legs, nil
		}

		// A lone leg is rollback-failure residue. Writing a fresh pair under
		// the same transfer id would leave three legs, so stop here.
		if len(legs) == 1 {
			return nil, fmt.Errorf("transfer %s holds a single leg and needs manual repair", transferID)
		}
	} else {
		transferID = uc.idGen.Generate()
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.FromAccountID); err != nil {
		return nil, err
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.ToAccountID); err != nil {
		return nil, err
	}

	chart, err := uc.loadChart(ctx)
	if err != nil {
		return nil, err
	}

	debitLeaf := chart.TransferLeaf(domain.NatureDebit)
	creditLeaf := chart.TransferLeaf(domain.NatureCredit)
	if debitLeaf == nil || creditLeaf == nil {
		return nil, fmt.Errorf("%w: chart has no active transfer categories", domain.ErrInvalidCategoryForMovement)
	}

	description := input.Description
	if description == "" {
		description = "Transferência entre contas"
	}

	now := time.Now().UTC()

	debitLeg := &domain.Movement{
		ID:            uc.idGen.Generate(),
		Date:          date,
		Kind:          domain.MovementTransfer,
		CategoryCode:  debitLeaf.Code,
		AccountID:     input.FromAccountID,
		Description:   description,
		PaymentMethod: input.PaymentMethod,
		Amount:        input.Amount,
		TransferID:    transferID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	creditLeg := &domain.Movement{
		ID:            uc.idGen.Generate(),
		Date:          date,
		Kind:          domain.MovementTransfer,
		CategoryCode:  creditLeaf.Code,
		AccountID:     input.ToAccountID,
		Description:   description,
		PaymentMethod: input.PaymentMethod,
		Amount:        input.Amount,
		TransferID:    transferID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.inTx(ctx, func(tx Transaction) error {
		if err := uc.movementRepo.Create(ctx, tx, debitLeg); err != nil {
			return err
		}

		return uc.movementRepo.Create(ctx, tx, creditLeg)
	})
	if err != nil {
		return nil, err
	}

	uc.bumpVersions(ctx, input.FromAccountID, input.ToAccountID)

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
	}

	return []*domain.Movement{debitLeg, creditLeg}, nil
}

// DeleteTransfer removes both legs of a transfer atomically.
func (uc *LedgerUseCase) DeleteTransfer(ctx context.Context, transferID string) error {
	legs, err := uc.movementRepo.GetByTransfer(ctx, transferID)
	if err != nil {
		return err
	}

	if len(legs) == 0 {
		return domain.ErrMovementNotFound
	}

	for _, leg := range legs {
		if err := uc.checkDate(leg.Date); err != nil {
			return err
		}
	}

	err = uc.inTx(ctx, func(tx Transaction) error {
		for _, leg := range legs {
			if err := uc.movementRepo.Delete(ctx, tx, leg.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	accounts := make([]string, 0, len(legs))
	for _, leg := range legs {
		accounts = append(accounts, leg.AccountID)
	}
	uc.bumpVersions(ctx, accounts...)

	if uc.metrics != nil {
		uc.metrics.MovementsDeleted.Add(float64(len(legs)))
	}

	return nil
}

// GetMovement retrieves a movement by ID.
func (uc *LedgerUseCase) GetMovement(ctx context.Context, id string) (*domain.Movement, error) {
	return uc.movementRepo.GetByID(ctx, id)
}

// GetTransfer retrieves both legs of a transfer.
func (uc *LedgerUseCase) GetTransfer(ctx context.Context, transferID string) ([]*domain.Movement, error) {
	legs, err := uc.movementRepo.GetByTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}

	if len(legs) == 0 {
		return nil, domain.ErrMovementNotFound
	}

	return legs, nil
}

// ListMovements lists movements with optional filters.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, filter MovementFilter) ([]*domain.Movement, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset)

	return uc.movementRepo.List(ctx, filter)
}

// EntriesFor returns an account's movements dated on or before a day, in
// replay order: date-ascending, insertion order for ties.
func (uc *LedgerUseCase) EntriesFor(ctx context.Context, accountID string, upTo time.Time) ([]*domain.Movement, error) {
	return uc.movementRepo.ListByAccountUpTo(ctx, accountID, domain.DateOnly(upTo))
}

// checkDate runs the date through the period lock and counts rejections.
func (uc *LedgerUseCase) checkDate(date time.Time) error {
	err := uc.gate.CheckDate(date)
	if err != nil && uc.metrics != nil {
		uc.metrics.PeriodLockDenials.Inc()
	}

	return err
}

func (uc *LedgerUseCase) loadChart(ctx context.Context) (*domain.Chart, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewChart(categories)
}

// inTx runs fn inside one storage transaction, retrying transient failures
// when a retrier is configured. A rollback failure after a failed write is
// the one condition that can leave a half-written transfer behind, so it is
// logged as its own event rather than folded into the returned error.
func (uc *LedgerUseCase) inTx(ctx context.Context, fn func(tx Transaction) error) error {
	run := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}

		if err := fn(tx); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				uc.logger.Error().
					Err(rbErr).
					AnErr("cause", err).
					Msg("ledger rollback failed, stored state requires manual reconciliation")
			}

			return err
		}

		if err := tx.Commit(ctx); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				uc.logger.Error().
					Err(rbErr).
					AnErr("cause", err).
					Msg("ledger rollback failed, stored state requires manual reconciliation")
			}

			return err
		}

		return nil
	}

	if uc.retrier != nil {
		return uc.retrier.Retry(ctx, run)
	}

	return run()
}

// bumpVersions advances the per-account ledger version so memoized balances
// become unreachable. Best-effort: a failed bump only delays cache refresh
// until the TTL.
func (uc *LedgerUseCase) bumpVersions(ctx context.Context, accountIDs ...string) {
	if uc.versions == nil {
		return
	}

	seen := make(map[string]bool, len(accountIDs))
	for _, id := range accountIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		if err := uc.versions.Bump(ctx, id); err != nil {
			uc.logger.Debug().Err(err).Str("account_id", id).Msg("ledger version bump failed")
		}
	}
}

// validateEntryCategory enforces that an entry references an active
// analytical category whose type matches the movement kind.
func validateEntryCategory(chart *domain.Chart, kind domain.MovementKind, code string) error {
	category := chart.Resolve(code)
	if category == nil {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidCategoryForMovement, code)
	}

	if !category.Active {
		return fmt.Errorf("%w: category %q is inactive", domain.ErrInvalidCategoryForMovement, code)
	}

	if !chart.IsLeaf(code) {
		return fmt.Errorf("%w: category %q is synthetic", domain.ErrInvalidCategoryForMovement, code)
	}

	switch kind {
	case domain.MovementIncome:
		if category.Type != domain.CategoryIncome {
			return fmt.Errorf("%w: category %q is not income", domain.ErrInvalidCategoryForMovement, code)
		}
	case domain.MovementExpense:
		if category.Type != domain.CategoryExpense {
			return fmt.Errorf("%w: category %q is not expense", domain.ErrInvalidCategoryForMovement, code)
		}
	case domain.MovementTransfer:
		if category.Class != domain.ClassOperacaoPermutativa {
			return fmt.Errorf("%w: category %q is not a transfer category", domain.ErrInvalidCategoryForMovement, code)
		}
	}

	return nil
}
