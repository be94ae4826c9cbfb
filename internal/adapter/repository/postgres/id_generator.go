package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator mints the identifiers for accounts, categories, movements
// and reconciliation entries. ULIDs sort by creation time, which keeps
// index pages append-mostly.
type ULIDGenerator struct{}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
