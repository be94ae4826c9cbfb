package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("expected %v, got %v", want, day)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "05/01/2024", "2024-13-01", "not-a-date"} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected invalid date error for %q, got %v", s, err)
		}
	}
}

func TestDateOnlyStripsTime(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	instant := time.Date(2024, 1, 5, 22, 30, 0, 0, loc)

	day := DateOnly(instant)
	if day.Hour() != 0 || day.Minute() != 0 || day.Location() != time.UTC {
		t.Fatalf("expected midnight UTC, got %v", day)
	}

	// 22:30 UTC-3 is already the next UTC day.
	if FormatDate(day) != "2024-01-06" {
		t.Fatalf("expected UTC calendar day 2024-01-06, got %s", FormatDate(day))
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 5, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Fatalf("expected same UTC day")
	}

	if SameDay(a, c) {
		t.Fatalf("expected different UTC days")
	}
}
