package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/adapter/http/dto"
	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	UpdateAccount(ctx context.Context, input usecase.UpdateAccountInput) (*domain.Account, error)
	SetInitialBalance(ctx context.Context, id string, balance decimal.Decimal) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

// BalanceReader computes replayed balances for the balance endpoint.
type BalanceReader interface {
	BalanceAsOf(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
	balances  BalanceReader
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService, balances BalanceReader) *AccountHandler {
	return &AccountHandler{accountUC: accountUC, balances: balances}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountUC.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAccounts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// Update renames an account.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	account, err := h.accountUC.UpdateAccount(r.Context(), usecase.UpdateAccountInput{
		ID:   chi.URLParam(r, "id"),
		Name: req.Name,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// SetInitialBalance rewrites the account's replay seed.
func (h *AccountHandler) SetInitialBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.SetInitialBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	account, err := h.accountUC.SetInitialBalance(r.Context(), chi.URLParam(r, "id"), req.InitialBalance)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Delete removes an account without movements.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.accountUC.DeleteAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Balance returns the replayed balance at end of a day. The date defaults to
// today.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	date, err := parseDateQuery(r, "date")
	if err != nil {
		respondError(w, err)
		return
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}

	balance, err := h.balances.BalanceAsOf(r.Context(), id, date)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID: id,
		Date:      domain.FormatDate(domain.DateOnly(date)),
		Balance:   balance,
	})
}
