package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validMovement() *Movement {
	return &Movement{
		ID:           "m1",
		Date:         time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Kind:         MovementIncome,
		CategoryCode: "1.1.01.001",
		AccountID:    "acc-1",
		Amount:       decimal.RequireFromString("500.00"),
	}
}

func TestMovementValidate(t *testing.T) {
	if err := validMovement().Validate(); err != nil {
		t.Fatalf("expected valid movement, got %v", err)
	}
}

func TestMovementValidateCollectsFieldErrors(t *testing.T) {
	m := &Movement{Kind: MovementKind("BOGUS"), Amount: decimal.Zero}

	err := m.Validate()
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	fields := map[string]bool{}
	for _, f := range ve.Fields {
		fields[f.Field] = true
	}

	for _, want := range []string{"accountId", "categoryCode", "type", "date", "amount"} {
		if !fields[want] {
			t.Fatalf("expected field error for %q, got %v", want, ve.Fields)
		}
	}
}

func TestMovementValidateRejectsNonPositiveAmount(t *testing.T) {
	m := validMovement()
	m.Amount = decimal.RequireFromString("-1")

	if err := m.Validate(); err == nil {
		t.Fatalf("expected negative amount to fail validation")
	}

	m.Amount = decimal.Zero
	if err := m.Validate(); err == nil {
		t.Fatalf("expected zero amount to fail validation")
	}
}

func TestBalanceEffect(t *testing.T) {
	amount := decimal.RequireFromString("300.00")

	income := &Movement{Kind: MovementIncome, Amount: amount}
	if !income.BalanceEffect(NatureCredit).Equal(amount) {
		t.Fatalf("expected income to add to balance")
	}

	expense := &Movement{Kind: MovementExpense, Amount: amount}
	if !expense.BalanceEffect(NatureDebit).Equal(amount.Neg()) {
		t.Fatalf("expected expense to subtract from balance")
	}

	creditLeg := &Movement{Kind: MovementTransfer, Amount: amount}
	if !creditLeg.BalanceEffect(NatureCredit).Equal(amount) {
		t.Fatalf("expected credit transfer leg to add")
	}

	debitLeg := &Movement{Kind: MovementTransfer, Amount: amount}
	if !debitLeg.BalanceEffect(NatureDebit).Equal(amount.Neg()) {
		t.Fatalf("expected debit transfer leg to subtract")
	}
}

func TestStatementEffectExcludesTransfers(t *testing.T) {
	amount := decimal.RequireFromString("100.00")

	if !(&Movement{Kind: MovementIncome, Amount: amount}).StatementEffect().Equal(amount) {
		t.Fatalf("expected income to count positively")
	}

	if !(&Movement{Kind: MovementExpense, Amount: amount}).StatementEffect().Equal(amount.Neg()) {
		t.Fatalf("expected expense to count negatively")
	}

	if !(&Movement{Kind: MovementTransfer, Amount: amount}).StatementEffect().IsZero() {
		t.Fatalf("expected transfer legs to be excluded from the statement")
	}
}
