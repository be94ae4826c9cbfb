package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/caixaflow/caixaflow/internal/domain"
)

// ChartUseCase handles chart-of-accounts operations.
type ChartUseCase struct {
	categoryRepo CategoryRepository
	idGen        IDGenerator
}

// NewChartUseCase creates a new ChartUseCase.
func NewChartUseCase(categoryRepo CategoryRepository, idGen IDGenerator) *ChartUseCase {
	return &ChartUseCase{
		categoryRepo: categoryRepo,
		idGen:        idGen,
	}
}

// LoadChart reads the flat category set and validates it into a tree.
func (uc *ChartUseCase) LoadChart(ctx context.Context) (*domain.Chart, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewChart(categories)
}

// CreateCategoryInput represents input for creating a chart node.
type CreateCategoryInput struct {
	Code   string
	Name   string
	Type   domain.CategoryType
	Active bool
}

// CreateCategory adds a user-defined node to the chart.
func (uc *ChartUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := domain.ValidateCode(input.Code); err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "name", Message: "name is required"},
		}}
	}

	existing, err := uc.categoryRepo.GetByCode(ctx, input.Code)
	if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:         uc.idGen.Generate(),
		Code:       input.Code,
		Name:       input.Name,
		Type:       input.Type,
		Active:     input.Active,
		IsEditable: true,
		CanDelete:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	category.Enrich()

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategoryInput represents input for editing a chart node.
type UpdateCategoryInput struct {
	ID     string
	Name   string
	Type   domain.CategoryType
	Active bool
}

// UpdateCategory edits a node's name, type and activation. System-protected
// nodes reject everything except the activation toggle.
func (uc *ChartUseCase) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !category.IsEditable {
		if input.Name == category.Name && input.Type == category.Type {
			return uc.setActive(ctx, category, input.Active)
		}

		return nil, domain.ErrSystemAccountLocked
	}

	category.Name = input.Name
	category.Type = input.Type
	category.Active = input.Active
	category.UpdatedAt = time.Now().UTC()
	category.Enrich()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// SetCategoryActive toggles activation. Allowed on every node, including
// system-protected ones.
func (uc *ChartUseCase) SetCategoryActive(ctx context.Context, id string, active bool) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.setActive(ctx, category, active)
}

func (uc *ChartUseCase) setActive(ctx context.Context, category *domain.Category, active bool) (*domain.Category, error) {
	now := time.Now().UTC()

	if err := uc.categoryRepo.SetActive(ctx, category.ID, active, now); err != nil {
		return nil, err
	}

	category.Active = active
	category.UpdatedAt = now

	return category, nil
}

// DeleteCategory removes a user-defined node.
func (uc *ChartUseCase) DeleteCategory(ctx context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !category.CanDelete {
		return domain.ErrSystemAccountDeleteForbidden
	}

	return uc.categoryRepo.Delete(ctx, id)
}

// Seed installs the default statutory chart when the category store is
// empty. Idempotent: skipped entirely when any category already exists.
func (uc *ChartUseCase) Seed(ctx context.Context) (bool, error) {
	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()

	categories := domain.DefaultChart()
	for _, c := range categories {
		c.ID = uc.idGen.Generate()
		c.CreatedAt = now
		c.UpdatedAt = now
	}

	if err := uc.categoryRepo.CreateBatch(ctx, categories); err != nil {
		return false, err
	}

	return true, nil
}
