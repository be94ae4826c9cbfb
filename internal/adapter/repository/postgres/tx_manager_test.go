package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

func TestTxManagerCommitFlow(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectCommit()

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestTxManagerPropagatesBeginError(t *testing.T) {
	mockPool := newMockPool(t)
	poolErr := errors.New("pool exhausted")
	mockPool.ExpectBegin().WillReturnError(poolErr)

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if !errors.Is(err, poolErr) {
		t.Fatalf("expected pool error, got err=%v tx=%v", err, tx)
	}
}

func TestTxManagerRollbackFlow(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectRollback()

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	if err := tx.Rollback(context.Background()); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestTxExposesUnderlyingPgxTx(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectRollback()

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	defer tx.Rollback(context.Background()) //nolint:errcheck

	pgTx, ok := tx.(*Tx)
	if !ok {
		t.Fatalf("expected *Tx, got %T", tx)
	}

	// Repositories run their statements on the raw pgx.Tx.
	if pgTx.PgxTx() == nil {
		t.Fatalf("expected the wrapped pgx.Tx to be reachable")
	}
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func assertExpectations(t *testing.T, pool pgxmock.PgxPoolIface) {
	t.Helper()

	if err := pool.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}
