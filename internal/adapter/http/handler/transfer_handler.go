package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caixaflow/caixaflow/internal/adapter/http/dto"
	"github.com/caixaflow/caixaflow/internal/domain"
)

// TransferHandler handles transfer HTTP requests.
type TransferHandler struct {
	ledgerUC LedgerService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledgerUC LedgerService) *TransferHandler {
	return &TransferHandler{ledgerUC: ledgerUC}
}

// Create writes both legs of a transfer atomically.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		respondError(w, err)
		return
	}

	legs, err := h.ledgerUC.CreateTransfer(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromLegs(legs))
}

// Get retrieves both legs of a transfer.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	legs, err := h.ledgerUC.GetTransfer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransferFromLegs(legs))
}

// Delete removes both legs of a transfer.
func (h *TransferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerUC.DeleteTransfer(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
