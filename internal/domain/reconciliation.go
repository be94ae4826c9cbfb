package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus is the frozen outcome of one balance check.
type ReconciliationStatus string

const (
	StatusConciliated ReconciliationStatus = "CONCILIATED"
	StatusPending     ReconciliationStatus = "PENDING"
)

// ReconciliationEpsilon is the tolerance under which a recorded bank balance
// counts as matching the system balance (0.01 currency units).
var ReconciliationEpsilon = decimal.New(1, -2)

// Reconciliation certifies a bank-reported balance against the system balance
// for one (date, account) pair. SystemBalance and Status are write-time
// snapshots; later ledger edits do not rewrite them. Difference keeps its
// sign: positive means the bank reports more than the system.
type Reconciliation struct {
	ID            string
	Date          time.Time
	AccountID     string
	SystemBalance decimal.Decimal
	BankBalance   decimal.Decimal
	Difference    decimal.Decimal
	Status        ReconciliationStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ClassifyDifference maps a signed divergence to a status.
func ClassifyDifference(diff decimal.Decimal) ReconciliationStatus {
	if diff.Abs().LessThanOrEqual(ReconciliationEpsilon) {
		return StatusConciliated
	}

	return StatusPending
}
