package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/caixaflow/caixaflow/internal/adapter/http/dto"
	"github.com/caixaflow/caixaflow/internal/domain"
)

// ClosingService defines the behavior needed by ClosingHandler.
type ClosingService interface {
	Close(ctx context.Context, date time.Time) error
	Reopen(ctx context.Context) error
	ClosingDate() *time.Time
}

// ClosingHandler handles period-lock HTTP requests.
type ClosingHandler struct {
	lockUC ClosingService
}

// NewClosingHandler creates a new ClosingHandler.
func NewClosingHandler(lockUC ClosingService) *ClosingHandler {
	return &ClosingHandler{lockUC: lockUC}
}

// Status reports the current watermark.
func (h *ClosingHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.statusResponse())
}

// Close moves the watermark forward: every entry dated on or before the
// closing date becomes immutable.
func (h *ClosingHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req dto.CloseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	if req.ClosingDate == "" {
		respondError(w, domain.ErrClosingDateMissing)
		return
	}

	date, err := domain.ParseDate(req.ClosingDate)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.lockUC.Close(r.Context(), date); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.statusResponse())
}

// Reopen clears the watermark.
func (h *ClosingHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	if err := h.lockUC.Reopen(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.statusResponse())
}

func (h *ClosingHandler) statusResponse() dto.ClosingStatusResponse {
	resp := dto.ClosingStatusResponse{}
	if date := h.lockUC.ClosingDate(); date != nil {
		resp.Closed = true
		resp.ClosingDate = domain.FormatDate(*date)
	}

	return resp
}
