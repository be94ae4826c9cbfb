package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
	"github.com/caixaflow/caixaflow/internal/usecase/mocks"
)

type ledgerFixture struct {
	uc           *usecase.LedgerUseCase
	txManager    *mocks.MockTransactionManager
	movementRepo *mocks.MockMovementRepository
	accountRepo  *mocks.MockAccountRepository
	categoryRepo *mocks.MockCategoryRepository
	gate         *mocks.MockPeriodGate
	versions     *mocks.MockVersionStore
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	ctx := context.Background()

	f := &ledgerFixture{
		txManager:    mocks.NewMockTransactionManager(),
		movementRepo: mocks.NewMockMovementRepository(),
		accountRepo:  mocks.NewMockAccountRepository(),
		categoryRepo: mocks.NewMockCategoryRepository(),
		gate:         &mocks.MockPeriodGate{},
		versions:     mocks.NewMockVersionStore(),
	}

	require.NoError(t, f.categoryRepo.CreateBatch(ctx, domain.DefaultChart()))

	for _, id := range []string{"acc-1", "acc-2"} {
		require.NoError(t, f.accountRepo.Create(ctx, &domain.Account{
			ID:             id,
			Name:           id,
			InitialBalance: decimal.Zero,
		}))
	}

	f.uc = usecase.NewLedgerUseCase(
		f.txManager,
		f.movementRepo,
		f.accountRepo,
		f.categoryRepo,
		f.gate,
		f.versions,
		mocks.NewMockIDGenerator(),
		nil,
		nil,
		zerolog.Nop(),
	)

	return f
}

func incomeInput() usecase.CreateMovementInput {
	return usecase.CreateMovementInput{
		Date:         day("2024-01-05"),
		Kind:         domain.MovementIncome,
		CategoryCode: "1.1.01.001",
		AccountID:    "acc-1",
		Description:  "venda do dia",
		Amount:       decimal.RequireFromString("500.00"),
	}
}

func TestCreateMovement(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	movement, err := f.uc.CreateMovement(ctx, incomeInput())
	require.NoError(t, err)
	require.NotEmpty(t, movement.ID)
	require.True(t, movement.Date.Equal(day("2024-01-05")))

	stored, err := f.movementRepo.GetByID(ctx, movement.ID)
	require.NoError(t, err)
	require.True(t, stored.Amount.Equal(decimal.RequireFromString("500.00")))

	require.Len(t, f.txManager.Transactions, 1)
	require.True(t, f.txManager.Transactions[0].Committed)

	version, err := f.versions.Current(ctx, "acc-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), version)
}

func TestCreateMovementStableIDReplay(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	input := incomeInput()
	input.ID = "mov-stable"

	first, err := f.uc.CreateMovement(ctx, input)
	require.NoError(t, err)

	// Replaying the same id must return the stored movement, not write a
	// second one.
	input.Amount = decimal.RequireFromString("999.00")
	second, err := f.uc.CreateMovement(ctx, input)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.True(t, second.Amount.Equal(decimal.RequireFromString("500.00")))

	all, err := f.movementRepo.List(ctx, usecase.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCreateMovementRejectsTransferKind(t *testing.T) {
	f := newLedgerFixture(t)

	input := incomeInput()
	input.Kind = domain.MovementTransfer
	input.CategoryCode = "9.2.01.001"

	_, err := f.uc.CreateMovement(context.Background(), input)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCreateMovementInsideClosedPeriod(t *testing.T) {
	f := newLedgerFixture(t)
	f.gate.CheckDateFunc = func(date time.Time) error {
		if !date.After(day("2024-01-10")) {
			return domain.NewPeriodClosedError(date)
		}

		return nil
	}

	_, err := f.uc.CreateMovement(context.Background(), incomeInput())
	require.ErrorIs(t, err, domain.ErrPeriodClosed)

	// A day past the watermark is still writable.
	open := incomeInput()
	open.Date = day("2024-01-11")
	_, err = f.uc.CreateMovement(context.Background(), open)
	require.NoError(t, err)
}

func TestCreateMovementCategoryRules(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"unknown category", "1.1.99.999"},
		{"synthetic category", "1.1"},
		{"type mismatch", "3.1.02.008"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLedgerFixture(t)

			input := incomeInput()
			input.CategoryCode = tt.code

			_, err := f.uc.CreateMovement(context.Background(), input)
			require.ErrorIs(t, err, domain.ErrInvalidCategoryForMovement)
		})
	}
}

func TestCreateMovementRejectsInactiveCategory(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	stored, err := f.categoryRepo.GetByCode(ctx, "1.1.01.001")
	require.NoError(t, err)
	require.NoError(t, f.categoryRepo.SetActive(ctx, stored.ID, false, time.Now().UTC()))

	_, err = f.uc.CreateMovement(ctx, incomeInput())
	require.ErrorIs(t, err, domain.ErrInvalidCategoryForMovement)
}

func TestUpdateMovementBlockedByOriginalDate(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	movement, err := f.uc.CreateMovement(ctx, incomeInput())
	require.NoError(t, err)

	// Close through the entry's own day: it can no longer be pulled out of
	// the closed period.
	f.gate.CheckDateFunc = func(date time.Time) error {
		if !date.After(day("2024-01-10")) {
			return domain.NewPeriodClosedError(date)
		}

		return nil
	}

	_, err = f.uc.UpdateMovement(ctx, usecase.UpdateMovementInput{
		ID:           movement.ID,
		Date:         day("2024-01-15"),
		Kind:         domain.MovementIncome,
		CategoryCode: "1.1.01.001",
		AccountID:    "acc-1",
		Amount:       decimal.RequireFromString("100.00"),
	})
	require.ErrorIs(t, err, domain.ErrPeriodClosed)
}

func TestUpdateMovementCannotMoveIntoClosedPeriod(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	input := incomeInput()
	input.Date = day("2024-01-15")
	movement, err := f.uc.CreateMovement(ctx, input)
	require.NoError(t, err)

	f.gate.CheckDateFunc = func(date time.Time) error {
		if !date.After(day("2024-01-10")) {
			return domain.NewPeriodClosedError(date)
		}

		return nil
	}

	_, err = f.uc.UpdateMovement(ctx, usecase.UpdateMovementInput{
		ID:           movement.ID,
		Date:         day("2024-01-05"),
		Kind:         domain.MovementIncome,
		CategoryCode: "1.1.01.001",
		AccountID:    "acc-1",
		Amount:       movement.Amount,
	})
	require.ErrorIs(t, err, domain.ErrPeriodClosed)
}

func TestUpdateMovementRewrites(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	movement, err := f.uc.CreateMovement(ctx, incomeInput())
	require.NoError(t, err)

	updated, err := f.uc.UpdateMovement(ctx, usecase.UpdateMovementInput{
		ID:           movement.ID,
		Date:         day("2024-01-06"),
		Kind:         domain.MovementExpense,
		CategoryCode: "3.1.02.008",
		AccountID:    "acc-2",
		Amount:       decimal.RequireFromString("80.00"),
	})
	require.NoError(t, err)
	require.Equal(t, movement.Seq, updated.Seq)
	require.Equal(t, domain.MovementExpense, updated.Kind)

	// Both the old and the new account lose their memoized balances.
	v1, err := f.versions.Current(ctx, "acc-1")
	require.NoError(t, err)
	require.Equal(t, int64(2), v1)

	v2, err := f.versions.Current(ctx, "acc-2")
	require.NoError(t, err)
	require.Equal(t, int64(1), v2)
}

func TestDeleteMovementInsideClosedPeriod(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	movement, err := f.uc.CreateMovement(ctx, incomeInput())
	require.NoError(t, err)

	f.gate.CheckDateFunc = func(date time.Time) error {
		return domain.NewPeriodClosedError(date)
	}

	err = f.uc.DeleteMovement(ctx, movement.ID)
	require.ErrorIs(t, err, domain.ErrPeriodClosed)

	_, err = f.movementRepo.GetByID(ctx, movement.ID)
	require.NoError(t, err)
}

func transferInput() usecase.CreateTransferInput {
	return usecase.CreateTransferInput{
		Date:          day("2024-01-08"),
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.RequireFromString("300.00"),
	}
}

func TestCreateTransferWritesBothLegs(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	legs, err := f.uc.CreateTransfer(ctx, transferInput())
	require.NoError(t, err)
	require.Len(t, legs, 2)

	debit, credit := legs[0], legs[1]
	require.Equal(t, "acc-1", debit.AccountID)
	require.Equal(t, "9.2.01.002", debit.CategoryCode)
	require.Equal(t, "acc-2", credit.AccountID)
	require.Equal(t, "9.2.01.001", credit.CategoryCode)

	require.NotEmpty(t, debit.TransferID)
	require.Equal(t, debit.TransferID, credit.TransferID)
	require.True(t, debit.Amount.Equal(credit.Amount))

	require.Len(t, f.txManager.Transactions, 1)
	require.True(t, f.txManager.Transactions[0].Committed)
}

func TestCreateTransferRejectsSameAccount(t *testing.T) {
	f := newLedgerFixture(t)

	input := transferInput()
	input.ToAccountID = input.FromAccountID

	_, err := f.uc.CreateTransfer(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrSameAccount)
}

func TestCreateTransferRejectsNonPositiveAmount(t *testing.T) {
	f := newLedgerFixture(t)

	for _, amount := range []string{"0", "-10.00"} {
		input := transferInput()
		input.Amount = decimal.RequireFromString(amount)

		_, err := f.uc.CreateTransfer(context.Background(), input)
		require.ErrorIs(t, err, domain.ErrInvalidAmount, amount)
	}
}

func TestCreateTransferIdempotentReplay(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	input := transferInput()
	input.ID = "tr-stable"

	first, err := f.uc.CreateTransfer(ctx, input)
	require.NoError(t, err)

	second, err := f.uc.CreateTransfer(ctx, input)
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Equal(t, first[0].ID, second[0].ID)

	all, err := f.movementRepo.List(ctx, usecase.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestCreateTransferReplayRejectsSingleLegResidue(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	// A lone leg under a transfer id is what a failed rollback leaves behind.
	require.NoError(t, f.movementRepo.Create(ctx, nil, &domain.Movement{
		ID:           "mov-orphan",
		Date:         day("2024-01-08"),
		Kind:         domain.MovementTransfer,
		CategoryCode: "9.2.01.002",
		AccountID:    "acc-1",
		Amount:       decimal.RequireFromString("300.00"),
		TransferID:   "tr-orphan",
	}))

	input := transferInput()
	input.ID = "tr-orphan"

	_, err := f.uc.CreateTransfer(ctx, input)
	require.Error(t, err)

	// No further legs may be written under the damaged id.
	legs, err := f.movementRepo.GetByTransfer(ctx, "tr-orphan")
	require.NoError(t, err)
	require.Len(t, legs, 1)
}

func TestCreateTransferRollsBackOnSecondLegFailure(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	calls := 0
	f.movementRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
		calls++
		if calls == 2 {
			return errors.New("constraint violation")
		}

		return nil
	}

	_, err := f.uc.CreateTransfer(ctx, transferInput())
	require.Error(t, err)

	require.Len(t, f.txManager.Transactions, 1)
	require.True(t, f.txManager.Transactions[0].RolledBack)
	require.False(t, f.txManager.Transactions[0].Committed)

	f.movementRepo.CreateFunc = nil
	all, err := f.movementRepo.List(ctx, usecase.MovementFilter{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestCreateTransferWithoutTransferCategories(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	for _, code := range []string{"9.2.01.001", "9.2.01.002"} {
		stored, err := f.categoryRepo.GetByCode(ctx, code)
		require.NoError(t, err)
		require.NoError(t, f.categoryRepo.SetActive(ctx, stored.ID, false, time.Now().UTC()))
	}

	_, err := f.uc.CreateTransfer(ctx, transferInput())
	require.ErrorIs(t, err, domain.ErrInvalidCategoryForMovement)
}

func TestTransferLegsNotIndividuallyEditable(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	legs, err := f.uc.CreateTransfer(ctx, transferInput())
	require.NoError(t, err)

	_, err = f.uc.UpdateMovement(ctx, usecase.UpdateMovementInput{
		ID:           legs[0].ID,
		Date:         legs[0].Date,
		Kind:         domain.MovementIncome,
		CategoryCode: "1.1.01.001",
		AccountID:    legs[0].AccountID,
		Amount:       legs[0].Amount,
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestDeleteMovementRemovesTransferPair(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	legs, err := f.uc.CreateTransfer(ctx, transferInput())
	require.NoError(t, err)

	// Deleting one leg through the generic delete removes the whole pair:
	// the ledger never holds a lone transfer leg.
	require.NoError(t, f.uc.DeleteMovement(ctx, legs[1].ID))

	all, err := f.movementRepo.List(ctx, usecase.MovementFilter{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestDeleteTransferBlockedByLockedLeg(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	legs, err := f.uc.CreateTransfer(ctx, transferInput())
	require.NoError(t, err)

	f.gate.CheckDateFunc = func(date time.Time) error {
		return domain.NewPeriodClosedError(date)
	}

	err = f.uc.DeleteTransfer(ctx, legs[0].TransferID)
	require.ErrorIs(t, err, domain.ErrPeriodClosed)

	remaining, err := f.movementRepo.List(ctx, usecase.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 2)
}

func TestGetTransferNotFound(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.uc.GetTransfer(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrMovementNotFound)
}

func TestListMovementsFilters(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	_, err := f.uc.CreateMovement(ctx, incomeInput())
	require.NoError(t, err)

	expense := usecase.CreateMovementInput{
		Date:         day("2024-01-07"),
		Kind:         domain.MovementExpense,
		CategoryCode: "3.1.02.008",
		AccountID:    "acc-2",
		Amount:       decimal.RequireFromString("75.00"),
	}
	_, err = f.uc.CreateMovement(ctx, expense)
	require.NoError(t, err)

	byAccount, err := f.uc.ListMovements(ctx, usecase.MovementFilter{AccountID: "acc-2"})
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	require.Equal(t, domain.MovementExpense, byAccount[0].Kind)

	byKind, err := f.uc.ListMovements(ctx, usecase.MovementFilter{Kind: domain.MovementIncome})
	require.NoError(t, err)
	require.Len(t, byKind, 1)
}

func TestEntriesForReplayOrder(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t)

	second := incomeInput()
	second.Date = day("2024-01-09")
	_, err := f.uc.CreateMovement(ctx, second)
	require.NoError(t, err)

	first := incomeInput()
	first.Date = day("2024-01-03")
	_, err = f.uc.CreateMovement(ctx, first)
	require.NoError(t, err)

	entries, err := f.uc.EntriesFor(ctx, "acc-1", day("2024-01-09"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.True(t, entries[0].Date.Before(entries[1].Date))

	upTo, err := f.uc.EntriesFor(ctx, "acc-1", day("2024-01-05"))
	require.NoError(t, err)
	require.Len(t, upTo, 1)
}
