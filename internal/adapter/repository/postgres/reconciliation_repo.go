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

// ReconciliationRepository implements usecase.ReconciliationRepository. The
// (date, account_id) pair is unique; Upsert supersedes in place.
type ReconciliationRepository struct {
	pool *pgxpool.Pool
}

// NewReconciliationRepository creates a new ReconciliationRepository.
func NewReconciliationRepository(pool *pgxpool.Pool) *ReconciliationRepository {
	return &ReconciliationRepository{pool: pool}
}

const reconciliationColumns = `r.id, r.date, r.account_id, r.system_balance,
	r.bank_balance, r.difference, r.status, r.notes, r.created_at, r.updated_at`

// Upsert writes the record for its (date, account) pair.
func (r *ReconciliationRepository) Upsert(ctx context.Context, record *domain.Reconciliation) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reconciliations (id, date, account_id, system_balance,
			bank_balance, difference, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (date, account_id) DO UPDATE SET
			system_balance = EXCLUDED.system_balance,
			bank_balance = EXCLUDED.bank_balance,
			difference = EXCLUDED.difference,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at`,
		record.ID,
		dateToPgDate(record.Date),
		record.AccountID,
		decimalToNumeric(record.SystemBalance),
		decimalToNumeric(record.BankBalance),
		decimalToNumeric(record.Difference),
		string(record.Status),
		record.Notes,
		timeToPgTimestamptz(record.CreatedAt),
		timeToPgTimestamptz(record.UpdatedAt),
	)

	return err
}

// GetByDateAccount retrieves the record for one (date, account) pair.
func (r *ReconciliationRepository) GetByDateAccount(ctx context.Context, date time.Time, accountID string) (*domain.Reconciliation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+reconciliationColumns+`
		FROM reconciliations r
		WHERE r.date = $1 AND r.account_id = $2`,
		dateToPgDate(date), accountID)

	record, err := scanReconciliation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReconciliationNotFound
		}

		return nil, err
	}

	return record, nil
}

// List returns records newest day first, account name breaking ties.
func (r *ReconciliationRepository) List(ctx context.Context, filter usecase.ReconciliationFilter) ([]*domain.Reconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + `
		FROM reconciliations r
		JOIN accounts a ON a.id = r.account_id
		WHERE 1=1`

	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.AccountID != "" {
		query += ` AND r.account_id = ` + arg(filter.AccountID)
	}

	if !filter.Start.IsZero() {
		query += ` AND r.date >= ` + arg(dateToPgDate(filter.Start))
	}

	if !filter.End.IsZero() {
		query += ` AND r.date <= ` + arg(dateToPgDate(filter.End))
	}

	query += ` ORDER BY r.date DESC, a.name, r.account_id`
	query += ` LIMIT ` + arg(filter.Limit)
	query += ` OFFSET ` + arg(filter.Offset)

	return r.query(ctx, query, args...)
}

// ListByDate returns every record for one day.
func (r *ReconciliationRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Reconciliation, error) {
	return r.query(ctx, `
		SELECT `+reconciliationColumns+`
		FROM reconciliations r
		JOIN accounts a ON a.id = r.account_id
		WHERE r.date = $1
		ORDER BY a.name, r.account_id`, dateToPgDate(date))
}

func (r *ReconciliationRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.Reconciliation, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.Reconciliation
	for rows.Next() {
		record, err := scanReconciliation(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func scanReconciliation(row pgx.Row) (*domain.Reconciliation, error) {
	var (
		record        domain.Reconciliation
		date          pgtype.Date
		systemBalance pgtype.Numeric
		bankBalance   pgtype.Numeric
		difference    pgtype.Numeric
		status        string
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(
		&record.ID,
		&date,
		&record.AccountID,
		&systemBalance,
		&bankBalance,
		&difference,
		&status,
		&record.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Date = pgDateToTime(date)
	record.SystemBalance = numericToDecimal(systemBalance)
	record.BankBalance = numericToDecimal(bankBalance)
	record.Difference = numericToDecimal(difference)
	record.Status = domain.ReconciliationStatus(status)
	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}
