package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
)

func sampleMovement() *domain.Movement {
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	return &domain.Movement{
		ID:           "mov-1",
		Date:         time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Kind:         domain.MovementIncome,
		CategoryCode: "1.1.01.001",
		AccountID:    "acc-1",
		Amount:       decimal.RequireFromString("500.00"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func beginTx(t *testing.T, pool pgxmock.PgxPoolIface) *Tx {
	t.Helper()

	tx, err := newTxManagerWithPool(pool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	return tx.(*Tx)
}

func TestMovementCreateReadsBackSeq(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectQuery("INSERT INTO movements").
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(7)))

	repo := NewMovementRepository(nil)
	tx := beginTx(t, mockPool)

	movement := sampleMovement()
	if err := repo.Create(context.Background(), tx, movement); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if movement.Seq != 7 {
		t.Fatalf("expected seq 7, got %d", movement.Seq)
	}

	assertExpectations(t, mockPool)
}

func TestMovementCreateReplayKeepsExistingRow(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()

	// ON CONFLICT DO NOTHING yields no row; the stored seq is read back so a
	// replayed insert behaves like the original one.
	mockPool.ExpectQuery("INSERT INTO movements").
		WillReturnError(pgx.ErrNoRows)
	mockPool.ExpectQuery("SELECT seq FROM movements").
		WithArgs("mov-1").
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(3)))

	repo := NewMovementRepository(nil)
	tx := beginTx(t, mockPool)

	movement := sampleMovement()
	if err := repo.Create(context.Background(), tx, movement); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if movement.Seq != 3 {
		t.Fatalf("expected stored seq 3, got %d", movement.Seq)
	}

	assertExpectations(t, mockPool)
}

func TestMovementUpdateNotFound(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("UPDATE movements").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewMovementRepository(nil)
	tx := beginTx(t, mockPool)

	err := repo.Update(context.Background(), tx, sampleMovement())
	if !errors.Is(err, domain.ErrMovementNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestMovementDeleteNotFound(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("DELETE FROM movements").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewMovementRepository(nil)
	tx := beginTx(t, mockPool)

	err := repo.Delete(context.Background(), tx, "missing")
	if !errors.Is(err, domain.ErrMovementNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestMovementDelete(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("DELETE FROM movements").
		WithArgs("mov-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mockPool.ExpectCommit()

	repo := NewMovementRepository(nil)
	tx := beginTx(t, mockPool)

	if err := repo.Delete(context.Background(), tx, "mov-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}
