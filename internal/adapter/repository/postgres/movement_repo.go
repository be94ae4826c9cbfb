package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
)

// MovementRepository implements usecase.MovementRepository. The seq column is
// a bigserial: within one day it preserves insertion order, which is the tie
// break for deterministic replay.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

const movementColumns = `id, date, kind, category_code, account_id, description,
	payment_method, amount, transfer_id, seq, created_at, updated_at`

// Create appends a movement. Inserting an id that already exists is a no-op,
// so a replayed write never produces a second row.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	err := pgxTx.QueryRow(ctx, `
		INSERT INTO movements (id, date, kind, category_code, account_id,
			description, payment_method, amount, transfer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
		RETURNING seq`,
		movement.ID,
		dateToPgDate(movement.Date),
		string(movement.Kind),
		movement.CategoryCode,
		movement.AccountID,
		movement.Description,
		movement.PaymentMethod,
		decimalToNumeric(movement.Amount),
		movement.TransferID,
		timeToPgTimestamptz(movement.CreatedAt),
		timeToPgTimestamptz(movement.UpdatedAt),
	).Scan(&movement.Seq)

	if errors.Is(err, pgx.ErrNoRows) {
		return pgxTx.QueryRow(ctx, `SELECT seq FROM movements WHERE id = $1`, movement.ID).
			Scan(&movement.Seq)
	}

	return err
}

// Update rewrites a movement in place, keeping its seq.
func (r *MovementRepository) Update(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE movements
		SET date = $2, kind = $3, category_code = $4, account_id = $5,
			description = $6, payment_method = $7, amount = $8, updated_at = $9
		WHERE id = $1`,
		movement.ID,
		dateToPgDate(movement.Date),
		string(movement.Kind),
		movement.CategoryCode,
		movement.AccountID,
		movement.Description,
		movement.PaymentMethod,
		decimalToNumeric(movement.Amount),
		timeToPgTimestamptz(movement.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

// Delete removes a movement.
func (r *MovementRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

// GetByID retrieves a movement by ID.
func (r *MovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		WHERE id = $1`, id)

	movement, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}

		return nil, err
	}

	return movement, nil
}

// GetByTransfer retrieves the legs sharing a transfer id, debit leg first.
func (r *MovementRepository) GetByTransfer(ctx context.Context, transferID string) ([]*domain.Movement, error) {
	if transferID == "" {
		return nil, nil
	}

	return r.query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		WHERE transfer_id = $1
		ORDER BY seq`, transferID)
}

// ListByAccountUpTo returns an account's movements dated on or before a day
// in replay order.
func (r *MovementRepository) ListByAccountUpTo(ctx context.Context, accountID string, upTo time.Time) ([]*domain.Movement, error) {
	return r.query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		WHERE account_id = $1 AND date <= $2
		ORDER BY date, seq`, accountID, dateToPgDate(upTo))
}

// ListForPeriod returns movements within [start, end], optionally scoped to
// one account.
func (r *MovementRepository) ListForPeriod(ctx context.Context, start, end time.Time, accountID string) ([]*domain.Movement, error) {
	if accountID != "" {
		return r.query(ctx, `
			SELECT `+movementColumns+`
			FROM movements
			WHERE date >= $1 AND date <= $2 AND account_id = $3
			ORDER BY date, seq`, dateToPgDate(start), dateToPgDate(end), accountID)
	}

	return r.query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		WHERE date >= $1 AND date <= $2
		ORDER BY date, seq`, dateToPgDate(start), dateToPgDate(end))
}

// ListBefore returns movements dated strictly before a day.
func (r *MovementRepository) ListBefore(ctx context.Context, before time.Time, accountID string) ([]*domain.Movement, error) {
	if accountID != "" {
		return r.query(ctx, `
			SELECT `+movementColumns+`
			FROM movements
			WHERE date < $1 AND account_id = $2
			ORDER BY date, seq`, dateToPgDate(before), accountID)
	}

	return r.query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		WHERE date < $1
		ORDER BY date, seq`, dateToPgDate(before))
}

// List returns filtered movements with pagination, newest day first.
func (r *MovementRepository) List(ctx context.Context, filter usecase.MovementFilter) ([]*domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE 1=1`

	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.AccountID != "" {
		query += ` AND account_id = ` + arg(filter.AccountID)
	}

	if filter.Kind != "" {
		query += ` AND kind = ` + arg(string(filter.Kind))
	}

	if !filter.Start.IsZero() {
		query += ` AND date >= ` + arg(dateToPgDate(filter.Start))
	}

	if !filter.End.IsZero() {
		query += ` AND date <= ` + arg(dateToPgDate(filter.End))
	}

	query += ` ORDER BY date DESC, seq DESC`
	query += ` LIMIT ` + arg(filter.Limit)
	query += ` OFFSET ` + arg(filter.Offset)

	return r.query(ctx, query, args...)
}

// ExistsForAccount reports whether any movement references the account.
func (r *MovementRepository) ExistsForAccount(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM movements WHERE account_id = $1)`, accountID).
		Scan(&exists)

	return exists, err
}

func (r *MovementRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*domain.Movement
	for rows.Next() {
		movement, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}

		movements = append(movements, movement)
	}

	return movements, rows.Err()
}

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var (
		movement  domain.Movement
		date      pgtype.Date
		kind      string
		amount    pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&movement.ID,
		&date,
		&kind,
		&movement.CategoryCode,
		&movement.AccountID,
		&movement.Description,
		&movement.PaymentMethod,
		&amount,
		&movement.TransferID,
		&movement.Seq,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	movement.Date = pgDateToTime(date)
	movement.Kind = domain.MovementKind(kind)
	movement.Amount = numericToDecimal(amount)
	movement.CreatedAt = createdAt.Time
	movement.UpdatedAt = updatedAt.Time

	return &movement, nil
}
