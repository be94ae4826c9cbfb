package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/caixaflow/internal/domain"
)

// AccountUseCase handles bank/cash account operations.
type AccountUseCase struct {
	accountRepo  AccountRepository
	movementRepo MovementRepository
	idGen        IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, movementRepo MovementRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		idGen:        idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name           string
	InitialBalance decimal.Decimal
}

// CreateAccount creates a new account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if input.Name == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "name", Message: "name is required"},
		}}
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:             uc.idGen.Generate(),
		Name:           input.Name,
		InitialBalance: input.InitialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts lists all accounts.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}

// UpdateAccountInput represents input for renaming an account.
type UpdateAccountInput struct {
	ID   string
	Name string
}

// UpdateAccount renames an account.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "name", Message: "name is required"},
		}}
	}

	account.Name = input.Name
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// SetInitialBalance is the administrative operation that rewrites the replay
// seed. Ledger replay itself never touches it.
func (uc *AccountUseCase) SetInitialBalance(ctx context.Context, id string, balance decimal.Decimal) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.accountRepo.UpdateInitialBalance(ctx, id, balance, now); err != nil {
		return nil, err
	}

	account.InitialBalance = balance
	account.UpdatedAt = now

	return account, nil
}

// DeleteAccount removes an account. Rejected while any movement still
// references it.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id string) error {
	if _, err := uc.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}

	has, err := uc.movementRepo.ExistsForAccount(ctx, id)
	if err != nil {
		return err
	}

	if has {
		return domain.ErrAccountHasTransactions
	}

	return uc.accountRepo.Delete(ctx, id)
}
