package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.01", "-125.40", "1300.00", "99999999.99"} {
		d := decimal.RequireFromString(s)

		got := numericToDecimal(decimalToNumeric(d))
		if !got.Equal(d) {
			t.Fatalf("round trip of %s gave %s", s, got)
		}
	}
}

func TestNumericToDecimalInvalid(t *testing.T) {
	got := numericToDecimal(decimalToNumeric(decimal.Zero))
	if !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
}

func TestDateConversionNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	instant := time.Date(2024, 1, 5, 22, 30, 0, 0, loc)

	d := dateToPgDate(instant)
	if !d.Valid {
		t.Fatalf("expected valid date")
	}

	back := pgDateToTime(d)
	if back.Hour() != 0 || back.Location() != time.UTC {
		t.Fatalf("expected midnight UTC, got %v", back)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("expected unique violation to match")
	}

	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation must not match")
	}

	if isUniqueViolation(errors.New("plain error")) {
		t.Fatalf("plain error must not match")
	}
}
