package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank or cash account whose balance the ledger tracks. The
// initial balance is the replay seed; it changes only through an explicit
// administrative update, never through ledger replay.
type Account struct {
	ID             string
	Name           string
	InitialBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
