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

// ChartService defines the behavior needed by CategoryHandler.
type ChartService interface {
	LoadChart(ctx context.Context) (*domain.Chart, error)
	CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, input usecase.UpdateCategoryInput) (*domain.Category, error)
	SetCategoryActive(ctx context.Context, id string, active bool) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryHandler handles chart-of-accounts HTTP requests.
type CategoryHandler struct {
	chartUC ChartService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(chartUC ChartService) *CategoryHandler {
	return &CategoryHandler{chartUC: chartUC}
}

// List returns the whole chart in hierarchical order.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	chart, err := h.chartUC.LoadChart(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(chart.Categories()))
}

// GetByCode resolves one chart node by its code.
func (h *CategoryHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	chart, err := h.chartUC.LoadChart(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	category := chart.Resolve(chi.URLParam(r, "code"))
	if category == nil {
		respondError(w, domain.ErrCategoryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryFromDomain(category))
}

// Create adds a user-defined chart node.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	category, err := h.chartUC.CreateCategory(r.Context(), req.ToUseCaseInput())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CategoryFromDomain(category))
}

// Update edits a chart node.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	category, err := h.chartUC.UpdateCategory(r.Context(), usecase.UpdateCategoryInput{
		ID:     chi.URLParam(r, "id"),
		Name:   req.Name,
		Type:   domain.CategoryType(req.Type),
		Active: req.Active,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryFromDomain(category))
}

// SetActive toggles a node's activation, the one edit allowed on system
// nodes.
func (h *CategoryHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req dto.SetCategoryActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeValidationFailed, "invalid request body")
		return
	}

	category, err := h.chartUC.SetCategoryActive(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryFromDomain(category))
}

// Delete removes a user-defined chart node.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.chartUC.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
