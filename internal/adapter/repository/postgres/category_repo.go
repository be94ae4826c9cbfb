package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caixaflow/caixaflow/internal/domain"
)

type categoryPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	pool categoryPool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return newCategoryRepositoryWithPool(pool)
}

func newCategoryRepositoryWithPool(pool categoryPool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, code, name, type, nature, side, class, level,
	parent_code, sort_key, active, is_system, is_editable, can_delete,
	created_at, updated_at`

// Create creates a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (id, code, name, type, nature, side, class, level,
			parent_code, sort_key, active, is_system, is_editable, can_delete,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		category.ID,
		category.Code,
		category.Name,
		string(category.Type),
		string(category.Nature),
		category.Side,
		string(category.Class),
		category.Level,
		category.ParentCode,
		category.SortKey,
		category.Active,
		category.IsSystem,
		category.IsEditable,
		category.CanDelete,
		timeToPgTimestamptz(category.CreatedAt),
		timeToPgTimestamptz(category.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateCode
	}

	return err
}

// CreateBatch inserts a category set in one round trip. Used by chart seeding.
func (r *CategoryRepository) CreateBatch(ctx context.Context, categories []*domain.Category) error {
	batch := &pgx.Batch{}
	for _, category := range categories {
		batch.Queue(`
			INSERT INTO categories (id, code, name, type, nature, side, class, level,
				parent_code, sort_key, active, is_system, is_editable, can_delete,
				created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			category.ID,
			category.Code,
			category.Name,
			string(category.Type),
			string(category.Nature),
			category.Side,
			string(category.Class),
			category.Level,
			category.ParentCode,
			category.SortKey,
			category.Active,
			category.IsSystem,
			category.IsEditable,
			category.CanDelete,
			timeToPgTimestamptz(category.CreatedAt),
			timeToPgTimestamptz(category.UpdatedAt),
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range categories {
		if _, err := results.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateCode
			}

			return err
		}
	}

	return nil
}

// Update rewrites a category's mutable and derived fields.
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET name = $2, type = $3, nature = $4, side = $5, class = $6,
			level = $7, parent_code = $8, sort_key = $9, active = $10,
			updated_at = $11
		WHERE id = $1`,
		category.ID,
		category.Name,
		string(category.Type),
		string(category.Nature),
		category.Side,
		string(category.Class),
		category.Level,
		category.ParentCode,
		category.SortKey,
		category.Active,
		timeToPgTimestamptz(category.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE id = $1`, id)

	return r.scanOne(row)
}

// GetByCode retrieves a category by its hierarchical code.
func (r *CategoryRepository) GetByCode(ctx context.Context, code string) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE code = $1`, code)

	return r.scanOne(row)
}

// List returns the whole chart in positional order.
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		ORDER BY sort_key, code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// Count returns the number of categories.
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)

	return count, err
}

// SetActive toggles a category's activation flag.
func (r *CategoryRepository) SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET active = $2, updated_at = $3
		WHERE id = $1`,
		id,
		active,
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepository) scanOne(row pgx.Row) (*domain.Category, error) {
	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return category, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		category  domain.Category
		typ       string
		nature    string
		class     string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&category.ID,
		&category.Code,
		&category.Name,
		&typ,
		&nature,
		&category.Side,
		&class,
		&category.Level,
		&category.ParentCode,
		&category.SortKey,
		&category.Active,
		&category.IsSystem,
		&category.IsEditable,
		&category.CanDelete,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	category.Type = domain.CategoryType(typ)
	category.Nature = domain.Nature(nature)
	category.Class = domain.AccountClass(class)
	category.CreatedAt = createdAt.Time
	category.UpdatedAt = updatedAt.Time

	return &category, nil
}
