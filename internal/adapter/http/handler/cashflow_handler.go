package handler

import (
	"context"
	"net/http"

	"github.com/caixaflow/caixaflow/internal/adapter/http/dto"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// CashFlowService defines the behavior needed by CashFlowHandler.
type CashFlowService interface {
	BuildStatement(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error)
	SummarizePeriod(ctx context.Context, input usecase.PeriodSummaryInput) (*usecase.PeriodSummary, error)
}

// CashFlowHandler handles cash-flow reporting HTTP requests.
type CashFlowHandler struct {
	cashFlowUC CashFlowService
}

// NewCashFlowHandler creates a new CashFlowHandler.
func NewCashFlowHandler(cashFlowUC CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{cashFlowUC: cashFlowUC}
}

// Statement returns the hierarchical cash-flow statement for a period.
func (h *CashFlowHandler) Statement(w http.ResponseWriter, r *http.Request) {
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

	statement, err := h.cashFlowUC.BuildStatement(r.Context(), usecase.StatementInput{
		Start:     start,
		End:       end,
		AccountID: r.URL.Query().Get("account_id"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

// Summary returns the opening/inflow/outflow/closing view for a period.
func (h *CashFlowHandler) Summary(w http.ResponseWriter, r *http.Request) {
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

	summary, err := h.cashFlowUC.SummarizePeriod(r.Context(), usecase.PeriodSummaryInput{
		Start:     start,
		End:       end,
		AccountID: r.URL.Query().Get("account_id"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodSummaryFromUseCase(summary))
}
