package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind is the kind of a dated monetary movement.
type MovementKind string

const (
	MovementIncome   MovementKind = "INCOME"
	MovementExpense  MovementKind = "EXPENSE"
	MovementTransfer MovementKind = "TRANSFER"
)

// Movement is a single ledger entry: one dated amount against one account and
// one analytical category. Amount is a positive magnitude; the sign is implied
// by the kind and, for transfer legs, by the category nature.
//
// A transfer between accounts is persisted as two movements sharing a
// TransferID: a debit leg on the source account and a credit leg on the
// destination account.
type Movement struct {
	ID            string
	Date          time.Time
	Kind          MovementKind
	CategoryCode  string
	AccountID     string
	Description   string
	PaymentMethod string
	Amount        decimal.Decimal
	TransferID    string
	Seq           int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the invariants that hold for every movement regardless of
// chart state.
func (m *Movement) Validate() error {
	var fields []FieldError

	if m.AccountID == "" {
		fields = append(fields, FieldError{Field: "accountId", Message: "account is required"})
	}

	if m.CategoryCode == "" {
		fields = append(fields, FieldError{Field: "categoryCode", Message: "category is required"})
	}

	switch m.Kind {
	case MovementIncome, MovementExpense, MovementTransfer:
	default:
		fields = append(fields, FieldError{Field: "type", Message: "unknown movement type"})
	}

	if m.Date.IsZero() {
		fields = append(fields, FieldError{Field: "date", Message: "date is required"})
	}

	if m.Amount.LessThanOrEqual(decimal.Zero) {
		fields = append(fields, FieldError{Field: "amount", Message: "amount must be positive"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

// BalanceEffect is the signed contribution of this movement to its account's
// balance. Transfers resolve through the category nature: credit legs add,
// debit legs subtract.
func (m *Movement) BalanceEffect(nature Nature) decimal.Decimal {
	switch m.Kind {
	case MovementIncome:
		return m.Amount
	case MovementExpense:
		return m.Amount.Neg()
	case MovementTransfer:
		if nature == NatureCredit {
			return m.Amount
		}
		return m.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// StatementEffect is the signed contribution to the cash-flow statement:
// income positive, expense negative, transfer legs excluded (they net to zero
// across the business).
func (m *Movement) StatementEffect() decimal.Decimal {
	switch m.Kind {
	case MovementIncome:
		return m.Amount
	case MovementExpense:
		return m.Amount.Neg()
	default:
		return decimal.Zero
	}
}
