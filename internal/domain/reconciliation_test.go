package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyDifference(t *testing.T) {
	tests := []struct {
		diff string
		want ReconciliationStatus
	}{
		{"0", StatusConciliated},
		{"0.01", StatusConciliated},
		{"-0.01", StatusConciliated},
		{"0.011", StatusPending},
		{"0.02", StatusPending},
		{"-5.00", StatusPending},
		{"125.40", StatusPending},
	}

	for _, tt := range tests {
		diff := decimal.RequireFromString(tt.diff)
		if got := ClassifyDifference(diff); got != tt.want {
			t.Fatalf("ClassifyDifference(%s) = %s, want %s", tt.diff, got, tt.want)
		}
	}
}
