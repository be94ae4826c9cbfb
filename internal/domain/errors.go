package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// Lookup errors
	ErrAccountNotFound        = errors.New("account not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrMovementNotFound       = errors.New("movement not found")
	ErrReconciliationNotFound = errors.New("reconciliation record not found")

	// Chart errors
	ErrDuplicateCode                = errors.New("duplicate category code")
	ErrInvalidCodeFormat            = errors.New("invalid category code format")
	ErrSystemAccountLocked          = errors.New("system category cannot be edited")
	ErrSystemAccountDeleteForbidden = errors.New("system category cannot be deleted")

	// Ledger errors
	ErrInvalidCategoryForMovement = errors.New("category cannot receive this movement")
	ErrAccountHasTransactions     = errors.New("account has movements and cannot be deleted")
	ErrInvalidAmount              = errors.New("amount must be positive")
	ErrSameAccount                = errors.New("cannot transfer to same account")
	ErrInvalidDate                = errors.New("invalid date")

	// Period lock errors
	ErrPeriodClosed       = errors.New("period is closed")
	ErrClosingDateMissing = errors.New("closing date is required")
)

// PeriodClosedError reports a mutation against a date on or before the
// closing watermark.
type PeriodClosedError struct {
	Date time.Time
}

func (e *PeriodClosedError) Error() string {
	return fmt.Sprintf("period is closed for %s", FormatDate(e.Date))
}

func (e *PeriodClosedError) Unwrap() error {
	return ErrPeriodClosed
}

// NewPeriodClosedError creates a PeriodClosedError for a date.
func NewPeriodClosedError(date time.Time) *PeriodClosedError {
	return &PeriodClosedError{Date: DateOnly(date)}
}

// FieldError carries a per-input-field validation failure, suitable for
// surfacing next to a form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates field-level failures for one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Stable error codes exposed to API consumers.
const (
	CodePeriodClosed                 = "PeriodClosed"
	CodeDuplicateCode                = "DuplicateCode"
	CodeInvalidCodeFormat            = "InvalidCodeFormat"
	CodeSystemAccountLocked          = "SystemAccountLocked"
	CodeSystemAccountDeleteForbidden = "SystemAccountDeleteForbidden"
	CodeInvalidCategoryForMovement   = "InvalidCategoryForMovement"
	CodeAccountHasTransactions       = "AccountHasTransactions"
	CodeNotFound                     = "NotFound"
	CodeValidationFailed             = "ValidationFailed"
	CodeInternal                     = "Internal"
)

// ErrorCode maps an error to its stable wire code.
func ErrorCode(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return CodeValidationFailed
	}

	switch {
	case errors.Is(err, ErrPeriodClosed):
		return CodePeriodClosed
	case errors.Is(err, ErrDuplicateCode):
		return CodeDuplicateCode
	case errors.Is(err, ErrInvalidCodeFormat):
		return CodeInvalidCodeFormat
	case errors.Is(err, ErrSystemAccountLocked):
		return CodeSystemAccountLocked
	case errors.Is(err, ErrSystemAccountDeleteForbidden):
		return CodeSystemAccountDeleteForbidden
	case errors.Is(err, ErrInvalidCategoryForMovement):
		return CodeInvalidCategoryForMovement
	case errors.Is(err, ErrAccountHasTransactions):
		return CodeAccountHasTransactions
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrMovementNotFound),
		errors.Is(err, ErrReconciliationNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrSameAccount),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrClosingDateMissing):
		return CodeValidationFailed
	default:
		return CodeInternal
	}
}
