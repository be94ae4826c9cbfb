package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/caixaflow/caixaflow/internal/adapter/http/dto"
	"github.com/caixaflow/caixaflow/internal/adapter/http/handler"
	"github.com/caixaflow/caixaflow/internal/adapter/http/handler/mocks"
	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

func categoryRouter(chart handler.ChartService) http.Handler {
	h := handler.NewCategoryHandler(chart)

	r := chi.NewRouter()
	r.Post("/categories", h.Create)
	r.Get("/categories", h.List)
	r.Get("/categories/code/{code}", h.GetByCode)
	r.Put("/categories/{id}", h.Update)
	r.Put("/categories/{id}/active", h.SetActive)
	r.Delete("/categories/{id}", h.Delete)

	return r
}

func seededChart(t *testing.T) *domain.Chart {
	t.Helper()

	chart, err := domain.NewChart(domain.DefaultChart())
	if err != nil {
		t.Fatalf("build default chart: %v", err)
	}

	return chart
}

func TestCategoryListHierarchicalOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := mocks.NewMockChartService(ctrl)
	chart.EXPECT().LoadChart(gomock.Any()).Return(seededChart(t), nil)

	rec := doRequest(t, categoryRouter(chart), http.MethodGet, "/categories", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody[[]*dto.CategoryResponse](t, rec)
	if len(resp) == 0 {
		t.Fatalf("expected the seeded chart")
	}

	for i := 1; i < len(resp); i++ {
		if resp[i-1].SortKey > resp[i].SortKey {
			t.Fatalf("chart out of order at %d: %s before %s", i, resp[i-1].Code, resp[i].Code)
		}
	}
}

func TestCategoryGetByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := mocks.NewMockChartService(ctrl)
	chart.EXPECT().LoadChart(gomock.Any()).Return(seededChart(t), nil)

	rec := doRequest(t, categoryRouter(chart), http.MethodGet, "/categories/code/3.1.02.008", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody[dto.CategoryResponse](t, rec)
	if resp.Code != "3.1.02.008" || resp.Class != "DESPESA_OPERACIONAL" || resp.Level != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCategoryGetByCodeNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := mocks.NewMockChartService(ctrl)
	chart.EXPECT().LoadChart(gomock.Any()).Return(seededChart(t), nil)

	rec := doRequest(t, categoryRouter(chart), http.MethodGet, "/categories/code/7.7.77.777", nil)
	assertErrorCode(t, rec, http.StatusNotFound, domain.CodeNotFound)
}

func TestCategoryCreateDefaultsActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := mocks.NewMockChartService(ctrl)

	chart.EXPECT().
		CreateCategory(gomock.Any(), usecase.CreateCategoryInput{
			Code:   "3.1.05.001",
			Name:   "Marketing",
			Type:   domain.CategoryExpense,
			Active: true,
		}).
		Return(&domain.Category{ID: "cat-1", Code: "3.1.05.001", Name: "Marketing"}, nil)

	rec := doRequest(t, categoryRouter(chart), http.MethodPost, "/categories", dto.CreateCategoryRequest{
		Code: "3.1.05.001",
		Name: "Marketing",
		Type: "EXPENSE",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCategoryCreateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := mocks.NewMockChartService(ctrl)
	chart.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateCode)

	rec := doRequest(t, categoryRouter(chart), http.MethodPost, "/categories", dto.CreateCategoryRequest{
		Code: "1.1.01.001",
		Name: "Vendas",
		Type: "INCOME",
	})

	assertErrorCode(t, rec, http.StatusConflict, domain.CodeDuplicateCode)
}

func TestCategoryUpdateSystemLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := mocks.NewMockChartService(ctrl)
	chart.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Return(nil, domain.ErrSystemAccountLocked)

	rec := doRequest(t, categoryRouter(chart), http.MethodPut, "/categories/cat-1", dto.UpdateCategoryRequest{
		Name: "Outro nome",
		Type: "EXPENSE",
	})

	assertErrorCode(t, rec, http.StatusForbidden, domain.CodeSystemAccountLocked)
}

func TestCategorySetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := mocks.NewMockChartService(ctrl)

	chart.EXPECT().
		SetCategoryActive(gomock.Any(), "cat-1", false).
		Return(&domain.Category{ID: "cat-1", Active: false}, nil)

	rec := doRequest(t, categoryRouter(chart), http.MethodPut, "/categories/cat-1/active", dto.SetCategoryActiveRequest{
		Active: false,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCategoryDeleteSystemForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	chart := mocks.NewMockChartService(ctrl)
	chart.EXPECT().DeleteCategory(gomock.Any(), "cat-1").Return(domain.ErrSystemAccountDeleteForbidden)

	rec := doRequest(t, categoryRouter(chart), http.MethodDelete, "/categories/cat-1", nil)
	assertErrorCode(t, rec, http.StatusForbidden, domain.CodeSystemAccountDeleteForbidden)
}
