package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
)

// CashFlowUseCase aggregates the ledger into the hierarchical cash-flow
// statement and period summaries. Both are pure reads computed on demand.
type CashFlowUseCase struct {
	movementRepo MovementRepository
	accountRepo  AccountRepository
	categoryRepo CategoryRepository
}

// NewCashFlowUseCase creates a new CashFlowUseCase.
func NewCashFlowUseCase(
	movementRepo MovementRepository,
	accountRepo AccountRepository,
	categoryRepo CategoryRepository,
) *CashFlowUseCase {
	return &CashFlowUseCase{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

// StatementLine is one chart node with the sum of every entry posted to it or
// to any of its descendants.
type StatementLine struct {
	Code    string
	Name    string
	Type    domain.CategoryType
	Class   domain.AccountClass
	Level   int
	IsGroup bool
	Total   decimal.Decimal
}

// Statement is the cash-flow statement for a period: one line per chart node
// in chart order, income positive and expense negative, transfers excluded.
// Result is the period's net operating result.
type Statement struct {
	Start     time.Time
	End       time.Time
	AccountID string
	Lines     []*StatementLine
	Result    decimal.Decimal
}

// StatementInput represents input for building a cash-flow statement.
// AccountID empty means the whole business.
type StatementInput struct {
	Start     time.Time
	End       time.Time
	AccountID string
}

// BuildStatement aggregates the period's entries onto the chart. Synthetic
// nodes roll up their whole subtree, so a parent's total is always the sum of
// its children's.
func (uc *CashFlowUseCase) BuildStatement(ctx context.Context, input StatementInput) (*Statement, error) {
	start, end, err := normalizePeriod(input.Start, input.End)
	if err != nil {
		return nil, err
	}

	chart, err := uc.loadChart(ctx)
	if err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.ListForPeriod(ctx, start, end, input.AccountID)
	if err != nil {
		return nil, err
	}

	statement := &Statement{
		Start:     start,
		End:       end,
		AccountID: input.AccountID,
		Result:    decimal.Zero,
	}

	for _, m := range movements {
		statement.Result = statement.Result.Add(m.StatementEffect())
	}

	for _, category := range chart.Categories() {
		total := decimal.Zero
		prefix := category.Code + "."
		for _, m := range movements {
			if m.CategoryCode == category.Code || strings.HasPrefix(m.CategoryCode, prefix) {
				total = total.Add(m.StatementEffect())
			}
		}

		// Deactivated nodes stay on the statement while they still carry
		// amounts, so the root lines always add up to Result.
		if !category.Active && total.IsZero() {
			continue
		}

		statement.Lines = append(statement.Lines, &StatementLine{
			Code:    category.Code,
			Name:    category.Name,
			Type:    category.Type,
			Class:   category.Class,
			Level:   category.Level,
			IsGroup: !chart.IsLeaf(category.Code),
			Total:   total,
		})
	}

	return statement, nil
}

// PeriodSummary is the opening/inflow/outflow/closing view of a period.
//
// Transfer legs count as inflow and outflow only when the summary is scoped
// to one account; across the whole business the two legs cancel and are left
// out entirely.
type PeriodSummary struct {
	Start     time.Time
	End       time.Time
	AccountID string
	Opening   decimal.Decimal
	Income    decimal.Decimal
	Expense   decimal.Decimal
	Net       decimal.Decimal
	Closing   decimal.Decimal
}

// PeriodSummaryInput represents input for a period summary. AccountID empty
// means the whole business.
type PeriodSummaryInput struct {
	Start     time.Time
	End       time.Time
	AccountID string
}

// SummarizePeriod computes the summary by replay: opening is the balance the
// day before the period starts, closing is opening plus the period's net.
func (uc *CashFlowUseCase) SummarizePeriod(ctx context.Context, input PeriodSummaryInput) (*PeriodSummary, error) {
	start, end, err := normalizePeriod(input.Start, input.End)
	if err != nil {
		return nil, err
	}

	natures, err := uc.natureByCode(ctx)
	if err != nil {
		return nil, err
	}

	opening, err := uc.openingBalance(ctx, input.AccountID, start, natures)
	if err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.ListForPeriod(ctx, start, end, input.AccountID)
	if err != nil {
		return nil, err
	}

	singleAccount := input.AccountID != ""

	income := decimal.Zero
	expense := decimal.Zero
	for _, m := range movements {
		switch m.Kind {
		case domain.MovementIncome:
			income = income.Add(m.Amount)
		case domain.MovementExpense:
			expense = expense.Add(m.Amount)
		case domain.MovementTransfer:
			if !singleAccount {
				continue
			}

			if natures[m.CategoryCode] == domain.NatureCredit {
				income = income.Add(m.Amount)
			} else {
				expense = expense.Add(m.Amount)
			}
		}
	}

	net := income.Sub(expense)

	return &PeriodSummary{
		Start:     start,
		End:       end,
		AccountID: input.AccountID,
		Opening:   opening,
		Income:    income,
		Expense:   expense,
		Net:       net,
		Closing:   opening.Add(net),
	}, nil
}

// openingBalance replays everything dated strictly before start. Scoped to
// one account it includes that account's transfer legs; across all accounts
// the legs cancel pairwise, so summing every effect is still correct.
func (uc *CashFlowUseCase) openingBalance(ctx context.Context, accountID string, start time.Time, natures map[string]domain.Nature) (decimal.Decimal, error) {
	opening := decimal.Zero

	if accountID != "" {
		account, err := uc.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return decimal.Zero, err
		}

		opening = account.InitialBalance
	} else {
		accounts, err := uc.accountRepo.List(ctx)
		if err != nil {
			return decimal.Zero, err
		}

		for _, account := range accounts {
			opening = opening.Add(account.InitialBalance)
		}
	}

	movements, err := uc.movementRepo.ListBefore(ctx, start, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	for _, m := range movements {
		opening = opening.Add(m.BalanceEffect(natures[m.CategoryCode]))
	}

	return opening, nil
}

func (uc *CashFlowUseCase) loadChart(ctx context.Context) (*domain.Chart, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewChart(categories)
}

func (uc *CashFlowUseCase) natureByCode(ctx context.Context) (map[string]domain.Nature, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	natures := make(map[string]domain.Nature, len(categories))
	for _, c := range categories {
		natures[c.Code] = c.Nature
	}

	return natures, nil
}

func normalizePeriod(start, end time.Time) (time.Time, time.Time, error) {
	var fields []domain.FieldError

	if start.IsZero() {
		fields = append(fields, domain.FieldError{Field: "startDate", Message: "start date is required"})
	}

	if end.IsZero() {
		fields = append(fields, domain.FieldError{Field: "endDate", Message: "end date is required"})
	}

	if len(fields) > 0 {
		return time.Time{}, time.Time{}, &domain.ValidationError{Fields: fields}
	}

	start = domain.DateOnly(start)
	end = domain.DateOnly(end)

	if end.Before(start) {
		return time.Time{}, time.Time{}, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "endDate", Message: "end date precedes start date"},
		}}
	}

	return start, end, nil
}
