package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository implements usecase.SettingsRepository over a singleton
// row. The closing watermark is business-wide, so there is exactly one.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// GetClosingDate reads the watermark; nil when the ledger is fully open.
func (r *SettingsRepository) GetClosingDate(ctx context.Context) (*time.Time, error) {
	var date pgtype.Date

	err := r.pool.QueryRow(ctx, `SELECT closing_date FROM settings WHERE id = 1`).Scan(&date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	if !date.Valid {
		return nil, nil
	}

	d := pgDateToTime(date)

	return &d, nil
}

// SetClosingDate writes the watermark; nil reopens the ledger.
func (r *SettingsRepository) SetClosingDate(ctx context.Context, date *time.Time) error {
	var value pgtype.Date
	if date != nil {
		value = dateToPgDate(*date)
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO settings (id, closing_date, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			closing_date = EXCLUDED.closing_date,
			updated_at = EXCLUDED.updated_at`,
		value,
		timeToPgTimestamptz(time.Now().UTC()),
	)

	return err
}
