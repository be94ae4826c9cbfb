package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caixaflow/caixaflow/internal/adapter/http/dto"
	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// LedgerService defines the behavior needed by MovementHandler and
// TransferHandler.
type LedgerService interface {
	CreateMovement(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error)
	UpdateMovement(ctx context.Context, input usecase.UpdateMovementInput) (*domain.Movement, error)
	DeleteMovement(ctx context.Context, id string) error
	GetMovement(ctx context.Context, id string) (*domain.Movement, error)
	ListMovements(ctx context.Context, filter usecase.MovementFilter) ([]*domain.Movement, error)
	CreateTransfer(ctx context.Context, input usecase.CreateTransferInput) ([]*domain.Movement, error)
	GetTransfer(ctx context.Context, transferID string) ([]*domain.Movement, error)
	DeleteTransfer(ctx context.Context, transferID string) error
}

// MovementHandler handles ledger movement HTTP requests.
type MovementHandler struct {
	ledgerUC LedgerService
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(ledgerUC LedgerService) *MovementHandler {
	return &MovementHandler{ledgerUC: ledgerUC}
}

// Create appends a movement to the ledger.
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		respondError(w, err)
		return
	}

	movement, err := h.ledgerUC.CreateMovement(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// Get retrieves a movement by ID.
func (h *MovementHandler) Get(w http.ResponseWriter, r *http.Request) {
	movement, err := h.ledgerUC.GetMovement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromDomain(movement))
}

// List lists movements with optional filters.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	start, err := parseDateQuery(r, "start_date")
	if err != nil {
		respondError(w, err)
		return
	}

	end, err := parseDateQuery(r, "end_date")
	if err != nil {
		respondError(w, err)
		return
	}

	movements, err := h.ledgerUC.ListMovements(r.Context(), usecase.MovementFilter{
		AccountID: r.URL.Query().Get("account_id"),
		Kind:      domain.MovementKind(r.URL.Query().Get("type")),
		Start:     start,
		End:       end,
		Limit:     parseIntQuery(r, "limit", 0),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}

// Update edits a movement.
func (h *MovementHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	movement, err := h.ledgerUC.UpdateMovement(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromDomain(movement))
}

// Delete removes a movement, or the whole pair when it is a transfer leg.
func (h *MovementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerUC.DeleteMovement(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
