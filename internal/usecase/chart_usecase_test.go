package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caixaflow/caixaflow/internal/domain"
	"github.com/caixaflow/caixaflow/internal/usecase"
	"github.com/caixaflow/caixaflow/internal/usecase/mocks"
)

type chartFixture struct {
	uc           *usecase.ChartUseCase
	categoryRepo *mocks.MockCategoryRepository
}

func newChartFixture(t *testing.T, seeded bool) *chartFixture {
	t.Helper()

	f := &chartFixture{categoryRepo: mocks.NewMockCategoryRepository()}
	f.uc = usecase.NewChartUseCase(f.categoryRepo, mocks.NewMockIDGenerator())

	if seeded {
		_, err := f.uc.Seed(context.Background())
		require.NoError(t, err)
	}

	return f
}

func TestSeedInstallsDefaultChartOnce(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, false)

	seeded, err := f.uc.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	count, err := f.categoryRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(len(domain.DefaultChart())), count)

	// Second run is a no-op even though it would generate fresh ids.
	seeded, err = f.uc.Seed(ctx)
	require.NoError(t, err)
	require.False(t, seeded)

	again, err := f.categoryRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, count, again)
}

func TestLoadChartValidatesTree(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, true)

	chart, err := f.uc.LoadChart(ctx)
	require.NoError(t, err)
	require.NotNil(t, chart.Resolve("3.1.02.008"))
}

func TestCreateCategoryEnrichesDerivedFields(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, true)

	category, err := f.uc.CreateCategory(ctx, usecase.CreateCategoryInput{
		Code:   "3.1.05.001",
		Name:   "Marketing digital",
		Type:   domain.CategoryExpense,
		Active: true,
	})
	require.NoError(t, err)

	require.Equal(t, 4, category.Level)
	require.Equal(t, domain.ClassDespesaOperacional, category.Class)
	require.Equal(t, domain.NatureDebit, category.Nature)
	require.True(t, category.IsEditable)
	require.True(t, category.CanDelete)
	require.False(t, category.IsSystem)
}

func TestCreateCategoryRejectsDuplicates(t *testing.T) {
	f := newChartFixture(t, true)

	_, err := f.uc.CreateCategory(context.Background(), usecase.CreateCategoryInput{
		Code: "1.1.01.001",
		Name: "Vendas",
		Type: domain.CategoryIncome,
	})
	require.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestCreateCategoryValidation(t *testing.T) {
	f := newChartFixture(t, true)

	_, err := f.uc.CreateCategory(context.Background(), usecase.CreateCategoryInput{
		Code: "1..01",
		Name: "x",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCodeFormat)

	_, err = f.uc.CreateCategory(context.Background(), usecase.CreateCategoryInput{
		Code: "3.1.05.001",
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUpdateCategorySystemNodeLocked(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, true)

	stored, err := f.categoryRepo.GetByCode(ctx, "3.1.02.008")
	require.NoError(t, err)

	_, err = f.uc.UpdateCategory(ctx, usecase.UpdateCategoryInput{
		ID:     stored.ID,
		Name:   "Outro nome",
		Type:   stored.Type,
		Active: true,
	})
	require.ErrorIs(t, err, domain.ErrSystemAccountLocked)
}

func TestUpdateCategorySystemNodeAllowsActivationToggle(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, true)

	stored, err := f.categoryRepo.GetByCode(ctx, "3.1.02.008")
	require.NoError(t, err)

	updated, err := f.uc.UpdateCategory(ctx, usecase.UpdateCategoryInput{
		ID:     stored.ID,
		Name:   stored.Name,
		Type:   stored.Type,
		Active: false,
	})
	require.NoError(t, err)
	require.False(t, updated.Active)
}

func TestUpdateCategoryUserNode(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, true)

	category, err := f.uc.CreateCategory(ctx, usecase.CreateCategoryInput{
		Code:   "3.1.05.001",
		Name:   "Marketing",
		Type:   domain.CategoryExpense,
		Active: true,
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateCategory(ctx, usecase.UpdateCategoryInput{
		ID:     category.ID,
		Name:   "Marketing e anúncios",
		Type:   domain.CategoryExpense,
		Active: true,
	})
	require.NoError(t, err)
	require.Equal(t, "Marketing e anúncios", updated.Name)
}

func TestSetCategoryActive(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, true)

	stored, err := f.categoryRepo.GetByCode(ctx, "1.1.01.001")
	require.NoError(t, err)

	toggled, err := f.uc.SetCategoryActive(ctx, stored.ID, false)
	require.NoError(t, err)
	require.False(t, toggled.Active)
}

func TestDeleteCategorySystemNodeForbidden(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, true)

	stored, err := f.categoryRepo.GetByCode(ctx, "1.1.01.001")
	require.NoError(t, err)

	err = f.uc.DeleteCategory(ctx, stored.ID)
	require.ErrorIs(t, err, domain.ErrSystemAccountDeleteForbidden)
}

func TestDeleteCategoryUserNode(t *testing.T) {
	ctx := context.Background()
	f := newChartFixture(t, true)

	category, err := f.uc.CreateCategory(ctx, usecase.CreateCategoryInput{
		Code:   "3.1.05.001",
		Name:   "Marketing",
		Type:   domain.CategoryExpense,
		Active: true,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteCategory(ctx, category.ID))

	_, err = f.categoryRepo.GetByID(ctx, category.ID)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
