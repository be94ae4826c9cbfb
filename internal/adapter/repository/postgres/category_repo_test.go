package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"

	"github.com/caixaflow/caixaflow/internal/domain"
)

func sampleCategory() *domain.Category {
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	c := &domain.Category{
		ID:         "cat-1",
		Code:       "3.1.02.008",
		Name:       "UNIFORMES",
		Type:       domain.CategoryExpense,
		Active:     true,
		IsEditable: true,
		CanDelete:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	c.Enrich()

	return c
}

func TestCategoryCreateBindsIntegerSortKey(t *testing.T) {
	mockPool := newMockPool(t)

	c := sampleCategory()
	mockPool.ExpectExec("INSERT INTO categories").
		WithArgs(
			c.ID, c.Code, c.Name, string(c.Type), string(c.Nature), c.Side,
			string(c.Class), c.Level, c.ParentCode, c.SortKey, c.Active,
			c.IsSystem, c.IsEditable, c.CanDelete,
			timeToPgTimestamptz(c.CreatedAt), timeToPgTimestamptz(c.UpdatedAt),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := newCategoryRepositoryWithPool(mockPool)
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.SortKey != int32(3010208) {
		t.Fatalf("expected sort key 3010208, got %d", c.SortKey)
	}

	assertExpectations(t, mockPool)
}

func TestCategoryCreateDuplicateCode(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectExec("INSERT INTO categories").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := newCategoryRepositoryWithPool(mockPool)
	err := repo.Create(context.Background(), sampleCategory())
	if !errors.Is(err, domain.ErrDuplicateCode) {
		t.Fatalf("expected duplicate code, got %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestCategoryListScansIntegerSortKey(t *testing.T) {
	mockPool := newMockPool(t)

	c := sampleCategory()
	rows := pgxmock.NewRows([]string{
		"id", "code", "name", "type", "nature", "side", "class", "level",
		"parent_code", "sort_key", "active", "is_system", "is_editable",
		"can_delete", "created_at", "updated_at",
	}).AddRow(
		c.ID, c.Code, c.Name, string(c.Type), string(c.Nature), c.Side,
		string(c.Class), c.Level, c.ParentCode, c.SortKey, c.Active,
		c.IsSystem, c.IsEditable, c.CanDelete,
		timeToPgTimestamptz(c.CreatedAt), timeToPgTimestamptz(c.UpdatedAt),
	)

	mockPool.ExpectQuery("ORDER BY sort_key, code").WillReturnRows(rows)

	repo := newCategoryRepositoryWithPool(mockPool)
	categories, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(categories) != 1 || categories[0].SortKey != int32(3010208) {
		t.Fatalf("unexpected categories: %+v", categories)
	}

	if categories[0].Class != domain.ClassDespesaOperacional {
		t.Fatalf("unexpected class: %s", categories[0].Class)
	}

	assertExpectations(t, mockPool)
}

func TestCategoryUpdateNotFound(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectExec("UPDATE categories").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := newCategoryRepositoryWithPool(mockPool)
	err := repo.Update(context.Background(), sampleCategory())
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	assertExpectations(t, mockPool)
}
