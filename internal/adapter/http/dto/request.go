package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:           r.Name,
		InitialBalance: r.InitialBalance,
	}
}

// UpdateAccountRequest represents a request to rename an account.
type UpdateAccountRequest struct {
	Name string `json:"name"`
}

// SetInitialBalanceRequest represents the administrative request to rewrite an
// account's replay seed.
type SetInitialBalanceRequest struct {
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// CreateCategoryRequest represents a request to add a chart node.
type CreateCategoryRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active *bool  `json:"active,omitempty"`
}

// ToUseCaseInput converts to use case input. Activation defaults to true.
func (r *CreateCategoryRequest) ToUseCaseInput() usecase.CreateCategoryInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return usecase.CreateCategoryInput{
		Code:   r.Code,
		Name:   r.Name,
		Type:   domain.CategoryType(r.Type),
		Active: active,
	}
}

// UpdateCategoryRequest represents a request to edit a chart node.
type UpdateCategoryRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// SetCategoryActiveRequest represents the activation toggle.
type SetCategoryActiveRequest struct {
	Active bool `json:"active"`
}

// CreateMovementRequest represents a request to append a ledger movement. ID
// is optional: a caller-supplied stable id makes the write replayable.
type CreateMovementRequest struct {
	ID            string          `json:"id,omitempty"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	CategoryCode  string          `json:"category_code"`
	AccountID     string          `json:"account_id"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMovementRequest) ToUseCaseInput() (usecase.CreateMovementInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.CreateMovementInput{}, err
	}

	return usecase.CreateMovementInput{
		ID:            r.ID,
		Date:          date,
		Kind:          domain.MovementKind(r.Type),
		CategoryCode:  r.CategoryCode,
		AccountID:     r.AccountID,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
	}, nil
}

// UpdateMovementRequest represents a request to edit a ledger movement.
type UpdateMovementRequest struct {
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	CategoryCode  string          `json:"category_code"`
	AccountID     string          `json:"account_id"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateMovementRequest) ToUseCaseInput(id string) (usecase.UpdateMovementInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.UpdateMovementInput{}, err
	}

	return usecase.UpdateMovementInput{
		ID:            id,
		Date:          date,
		Kind:          domain.MovementKind(r.Type),
		CategoryCode:  r.CategoryCode,
		AccountID:     r.AccountID,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
	}, nil
}

// CreateTransferRequest represents a request to move money between accounts.
type CreateTransferRequest struct {
	ID            string          `json:"id,omitempty"`
	Date          string          `json:"date"`
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() (usecase.CreateTransferInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.CreateTransferInput{}, err
	}

	return usecase.CreateTransferInput{
		ID:            r.ID,
		Date:          date,
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
	}, nil
}

// RecordReconciliationRequest represents a request to certify one account's
// balance against the bank statement.
type RecordReconciliationRequest struct {
	Date        string          `json:"date"`
	AccountID   string          `json:"account_id"`
	BankBalance decimal.Decimal `json:"bank_balance"`
	Notes       string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordReconciliationRequest) ToUseCaseInput() (usecase.RecordReconciliationInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return usecase.RecordReconciliationInput{}, err
	}

	return usecase.RecordReconciliationInput{
		Date:        date,
		AccountID:   r.AccountID,
		BankBalance: r.BankBalance,
		Notes:       r.Notes,
	}, nil
}

// CloseRequest represents a request to close the period through a date.
type CloseRequest struct {
	ClosingDate string `json:"closing_date"`
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "date", Message: "date is required"},
		}}
	}

	return domain.ParseDate(value)
}
