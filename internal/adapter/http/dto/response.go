package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		InitialBalance: a.InitialBalance,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// BalanceResponse is a replayed balance for one account and day.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Date      string          `json:"date"`
	Balance   decimal.Decimal `json:"balance"`
}

// CategoryResponse represents a chart node in API responses.
type CategoryResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Nature     string          `json:"nature"`
	Side       string          `json:"side"`
	Class      string          `json:"class"`
	Level      int             `json:"level"`
	ParentCode string          `json:"parent_code,omitempty"`
	SortKey    int32           `json:"sort_key"`
	Active     bool            `json:"active"`
	IsSystem   bool            `json:"is_system"`
	IsEditable bool            `json:"is_editable"`
	CanDelete  bool            `json:"can_delete"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CategoryFromDomain converts a domain category to a response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:         c.ID,
		Code:       c.Code,
		Name:       c.Name,
		Type:       string(c.Type),
		Nature:     string(c.Nature),
		Side:       c.Side,
		Class:      string(c.Class),
		Level:      c.Level,
		ParentCode: c.ParentCode,
		SortKey:    c.SortKey,
		Active:     c.Active,
		IsSystem:   c.IsSystem,
		IsEditable: c.IsEditable,
		CanDelete:  c.CanDelete,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// MovementResponse represents a ledger movement in API responses.
type MovementResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	CategoryCode  string          `json:"category_code"`
	AccountID     string          `json:"account_id"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	TransferID    string          `json:"transfer_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:            m.ID,
		Date:          domain.FormatDate(m.Date),
		Type:          string(m.Kind),
		CategoryCode:  m.CategoryCode,
		AccountID:     m.AccountID,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		Amount:        m.Amount,
		TransferID:    m.TransferID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// TransferResponse represents the two legs of a transfer.
type TransferResponse struct {
	TransferID string              `json:"transfer_id"`
	Legs       []*MovementResponse `json:"legs"`
}

// TransferFromLegs builds a transfer response from its legs.
func TransferFromLegs(legs []*domain.Movement) *TransferResponse {
	resp := &TransferResponse{Legs: MovementsFromDomain(legs)}
	if len(legs) > 0 {
		resp.TransferID = legs[0].TransferID
	}
	return resp
}

// ReconciliationResponse represents a reconciliation record. The frozen
// system balance stays as written; current_system_balance carries the live
// replay when the caller asked for it.
type ReconciliationResponse struct {
	ID                   string           `json:"id"`
	Date                 string           `json:"date"`
	AccountID            string           `json:"account_id"`
	SystemBalance        decimal.Decimal  `json:"system_balance"`
	BankBalance          decimal.Decimal  `json:"bank_balance"`
	Difference           decimal.Decimal  `json:"difference"`
	Status               string           `json:"status"`
	Notes                string           `json:"notes,omitempty"`
	CurrentSystemBalance *decimal.Decimal `json:"current_system_balance,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// ReconciliationFromDomain converts a domain record to a response.
func ReconciliationFromDomain(r *domain.Reconciliation) *ReconciliationResponse {
	return &ReconciliationResponse{
		ID:            r.ID,
		Date:          domain.FormatDate(r.Date),
		AccountID:     r.AccountID,
		SystemBalance: r.SystemBalance,
		BankBalance:   r.BankBalance,
		Difference:    r.Difference,
		Status:        string(r.Status),
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ReconciliationsFromDomain converts domain records to responses.
func ReconciliationsFromDomain(records []*domain.Reconciliation) []*ReconciliationResponse {
	result := make([]*ReconciliationResponse, len(records))
	for i, r := range records {
		result[i] = ReconciliationFromDomain(r)
	}
	return result
}

// ReconciliationViewsFromUseCase converts record+live-balance views.
func ReconciliationViewsFromUseCase(views []*usecase.ReconciliationView) []*ReconciliationResponse {
	result := make([]*ReconciliationResponse, len(views))
	for i, v := range views {
		resp := ReconciliationFromDomain(v.Reconciliation)
		current := v.CurrentSystemBalance
		resp.CurrentSystemBalance = &current
		result[i] = resp
	}
	return result
}

// DayAccountStatusResponse is one account's standing in a day summary.
type DayAccountStatusResponse struct {
	Account       *AccountResponse        `json:"account"`
	SystemBalance decimal.Decimal         `json:"system_balance"`
	Record        *ReconciliationResponse `json:"record,omitempty"`
}

// DaySummaryResponse is the reconciliation standing of one day.
type DaySummaryResponse struct {
	Date            string                      `json:"date"`
	Accounts        []*DayAccountStatusResponse `json:"accounts"`
	RecordedCount   int                         `json:"recorded_count"`
	PendingCount    int                         `json:"pending_count"`
	TotalDifference decimal.Decimal             `json:"total_difference"`
	AllConciliated  bool                        `json:"all_conciliated"`
}

// DaySummaryFromUseCase converts a day summary.
func DaySummaryFromUseCase(s *usecase.DaySummary) *DaySummaryResponse {
	resp := &DaySummaryResponse{
		Date:            domain.FormatDate(s.Date),
		RecordedCount:   s.RecordedCount,
		PendingCount:    s.PendingCount,
		TotalDifference: s.TotalDifference,
		AllConciliated:  s.AllConciliated,
	}

	for _, row := range s.Accounts {
		item := &DayAccountStatusResponse{
			Account:       AccountFromDomain(row.Account),
			SystemBalance: row.SystemBalance,
		}
		if row.Record != nil {
			item.Record = ReconciliationFromDomain(row.Record)
		}
		resp.Accounts = append(resp.Accounts, item)
	}

	return resp
}

// StatementLineResponse is one chart node's rolled-up total.
type StatementLineResponse struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Class   string          `json:"class"`
	Level   int             `json:"level"`
	IsGroup bool            `json:"is_group"`
	Total   decimal.Decimal `json:"total"`
}

// StatementResponse is the hierarchical cash-flow statement.
type StatementResponse struct {
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	AccountID string                   `json:"account_id,omitempty"`
	Lines     []*StatementLineResponse `json:"lines"`
	Result    decimal.Decimal          `json:"result"`
}

// StatementFromUseCase converts a statement.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	resp := &StatementResponse{
		StartDate: domain.FormatDate(s.Start),
		EndDate:   domain.FormatDate(s.End),
		AccountID: s.AccountID,
		Result:    s.Result,
	}

	for _, line := range s.Lines {
		resp.Lines = append(resp.Lines, &StatementLineResponse{
			Code:    line.Code,
			Name:    line.Name,
			Type:    string(line.Type),
			Class:   string(line.Class),
			Level:   line.Level,
			IsGroup: line.IsGroup,
			Total:   line.Total,
		})
	}

	return resp
}

// PeriodSummaryResponse is the opening/inflow/outflow/closing view.
type PeriodSummaryResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	AccountID string          `json:"account_id,omitempty"`
	Opening   decimal.Decimal `json:"opening"`
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Net       decimal.Decimal `json:"net"`
	Closing   decimal.Decimal `json:"closing"`
}

// PeriodSummaryFromUseCase converts a period summary.
func PeriodSummaryFromUseCase(s *usecase.PeriodSummary) *PeriodSummaryResponse {
	return &PeriodSummaryResponse{
		StartDate: domain.FormatDate(s.Start),
		EndDate:   domain.FormatDate(s.End),
		AccountID: s.AccountID,
		Opening:   s.Opening,
		Income:    s.Income,
		Expense:   s.Expense,
		Net:       s.Net,
		Closing:   s.Closing,
	}
}

// ClosingStatusResponse reports the period-lock watermark.
type ClosingStatusResponse struct {
	Closed      bool   `json:"closed"`
	ClosingDate string `json:"closing_date,omitempty"`
}

// FieldErrorResponse is one field-level validation failure.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents an error in API responses. Error carries the
// stable machine-readable code, Message the human-readable detail.
type ErrorResponse struct {
	Error   string               `json:"error"`
	Message string               `json:"message,omitempty"`
	Fields  []FieldErrorResponse `json:"fields,omitempty"`
}
