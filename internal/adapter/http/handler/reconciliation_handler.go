package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/caixaflow/caixaflow/internal/adapter/http/dto"
	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// ReconciliationService defines the behavior needed by ReconciliationHandler.
type ReconciliationService interface {
	Record(ctx context.Context, input usecase.RecordReconciliationInput) (*domain.Reconciliation, error)
	History(ctx context.Context, filter usecase.ReconciliationFilter) ([]*domain.Reconciliation, error)
	HistoryWithCurrent(ctx context.Context, filter usecase.ReconciliationFilter) ([]*usecase.ReconciliationView, error)
	SummarizeDay(ctx context.Context, date time.Time) (*usecase.DaySummary, error)
}

// ReconciliationHandler handles reconciliation HTTP requests.
type ReconciliationHandler struct {
	reconUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconUC: reconUC}
}

// Record certifies one account's balance for one day.
func (h *ReconciliationHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordReconciliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		respondError(w, err)
		return
	}

	record, err := h.reconUC.Record(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReconciliationFromDomain(record))
}

// History lists stored records, newest day first. With current=true each
// record also carries a fresh replay of its system balance.
func (h *ReconciliationHandler) History(w http.ResponseWriter, r *http.Request) {
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

	filter := usecase.ReconciliationFilter{
		AccountID: r.URL.Query().Get("account_id"),
		Start:     start,
		End:       end,
		Limit:     parseIntQuery(r, "limit", 0),
		Offset:    parseIntQuery(r, "offset", 0),
	}

	if r.URL.Query().Get("current") == "true" {
		views, err := h.reconUC.HistoryWithCurrent(r.Context(), filter)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dto.ReconciliationViewsFromUseCase(views))

		return
	}

	records, err := h.reconUC.History(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationsFromDomain(records))
}

// DaySummary returns the per-account standing for one day.
func (h *ReconciliationHandler) DaySummary(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		respondError(w, err)
		return
	}

	summary, err := h.reconUC.SummarizeDay(r.Context(), date)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DaySummaryFromUseCase(summary))
}
