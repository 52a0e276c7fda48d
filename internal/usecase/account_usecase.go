package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/infrastructure/metrics"
)

// AccountUseCase handles account lifecycle: opening, updates, and logical
// deletion. Balance mutation is owned by the movement engine.
type AccountUseCase struct {
	accountRepo AccountRepository
	customers   CustomerClient
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. metrics may be nil.
func NewAccountUseCase(accountRepo AccountRepository, customers CustomerClient, logger zerolog.Logger, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		customers:   customers,
		logger:      logger,
		metrics:     m,
	}
}

// CreateAccountInput represents input for opening an account.
type CreateAccountInput struct {
	AccountNumber  string
	AccountType    domain.AccountType
	InitialBalance decimal.Decimal
	CustomerID     int64
}

// CreateAccount opens a new account after checking that the account number
// is unused and the owning customer exists in the customer service.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountNumber(input.AccountNumber); err != nil {
		return nil, err
	}

	if input.InitialBalance.IsNegative() {
		return nil, domain.ErrInsufficientBalance
	}

	_, err := uc.accountRepo.GetByNumber(ctx, input.AccountNumber)
	if err == nil {
		return nil, domain.ErrDuplicateAccountNumber
	}

	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	if _, err := uc.customers.FindCustomerByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		AccountNumber: input.AccountNumber,
		AccountType:   input.AccountType,
		Balance:       input.InitialBalance,
		Active:        true,
		CustomerID:    input.CustomerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := uc.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	account.ID = id

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	uc.logger.Info().
		Int64("account_id", id).
		Str("account_number", account.AccountNumber).
		Int64("customer_id", account.CustomerID).
		Msg("account created")

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetAccountByNumber retrieves an account by its natural key.
func (uc *AccountUseCase) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, number)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	input.Limit, input.Offset = clampPagination(input.Limit, input.Offset)

	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// ListAccountsByCustomer lists all accounts owned by a customer.
func (uc *AccountUseCase) ListAccountsByCustomer(ctx context.Context, customerID int64) ([]*domain.Account, error) {
	return uc.accountRepo.ListByCustomer(ctx, customerID)
}

// UpdateAccountInput represents input for updating an account.
type UpdateAccountInput struct {
	AccountNumber string
	AccountType   domain.AccountType
	Active        bool
}

// UpdateAccount updates the mutable attributes of an account. The balance
// is never touched here. A changed account number is re-validated for
// uniqueness against other accounts.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id int64, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AccountNumber != account.AccountNumber {
		if err := domain.ValidateAccountNumber(input.AccountNumber); err != nil {
			return nil, err
		}

		_, err := uc.accountRepo.GetByNumberExcluding(ctx, input.AccountNumber, id)
		if err == nil {
			return nil, domain.ErrDuplicateAccountNumber
		}

		if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
	}

	account.AccountNumber = input.AccountNumber
	account.AccountType = input.AccountType
	account.Active = input.Active
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeactivateAccount flips an account to inactive. Accounts are never
// physically deleted.
func (uc *AccountUseCase) DeactivateAccount(ctx context.Context, id int64) error {
	if _, err := uc.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}

	uc.logger.Info().Int64("account_id", id).Msg("deactivating account")

	if err := uc.accountRepo.UpdateStatus(ctx, id, false, time.Now().UTC()); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsDeactivated.Inc()
	}

	return nil
}
