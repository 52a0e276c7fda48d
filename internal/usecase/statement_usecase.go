package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/infrastructure/metrics"
)

// StatementUseCase reconstructs account statements for a date range by
// replaying ledger entries. The live account balance is consulted only
// when no entries fall in the window.
type StatementUseCase struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
	customers   CustomerClient
	idGen       ReportIDGenerator
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewStatementUseCase creates a new StatementUseCase. metrics may be nil.
func NewStatementUseCase(
	accountRepo AccountRepository,
	ledgerRepo LedgerRepository,
	customers CustomerClient,
	idGen ReportIDGenerator,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *StatementUseCase {
	return &StatementUseCase{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		customers:   customers,
		idGen:       idGen,
		logger:      logger,
		metrics:     m,
	}
}

// BuildStatementInput represents input for building a statement. Either
// CustomerID or AccountNumber must be provided; an explicit account number
// wins and the customer is inferred from the account.
type BuildStatementInput struct {
	CustomerID    *int64
	AccountNumber string
	StartDate     time.Time
	EndDate       time.Time
}

// BuildStatement resolves the target account set and derives per-account
// opening/closing balances and movement history from ledger entries.
func (uc *StatementUseCase) BuildStatement(ctx context.Context, input BuildStatementInput) (*domain.Statement, error) {
	if input.StartDate.After(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	start := time.Now()

	accounts, customerID, err := uc.resolveAccounts(ctx, input)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customers.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, domain.ErrSubjectNotFound
		}

		return nil, err
	}

	statement := &domain.Statement{
		ReportID:   uc.idGen.Generate(),
		ClientName: customer.Name,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	if len(accounts) == 0 {
		uc.logger.Warn().
			Int64("customer_id", customerID).
			Msg("no accounts found for statement, returning empty report")

		uc.observeBuilt(start)

		return statement, nil
	}

	accountIDs := make([]int64, len(accounts))
	for i, a := range accounts {
		accountIDs[i] = a.ID
	}

	entries, err := uc.ledgerRepo.GetByAccountsAndDateRange(ctx, accountIDs, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	entriesByAccount := make(map[int64][]*domain.LedgerEntry)
	for _, e := range entries {
		entriesByAccount[e.AccountID] = append(entriesByAccount[e.AccountID], e)
	}

	statement.Accounts = make([]domain.AccountDetail, 0, len(accounts))
	for _, account := range accounts {
		statement.Accounts = append(statement.Accounts,
			buildAccountDetail(account, entriesByAccount[account.ID]))
	}

	uc.logger.Info().
		Str("report_id", statement.ReportID).
		Int("accounts", len(statement.Accounts)).
		Int("entries", len(entries)).
		Msg("statement built")

	uc.observeBuilt(start)

	return statement, nil
}

func (uc *StatementUseCase) observeBuilt(start time.Time) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.StatementsBuilt.Inc()
	uc.metrics.StatementDuration.Observe(time.Since(start).Seconds())
}

// resolveAccounts determines the account set and the owning customer from
// either an explicit account number or a customer id.
func (uc *StatementUseCase) resolveAccounts(ctx context.Context, input BuildStatementInput) ([]*domain.Account, int64, error) {
	if input.AccountNumber != "" {
		account, err := uc.accountRepo.GetByNumber(ctx, input.AccountNumber)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return nil, 0, domain.ErrSubjectNotFound
			}

			return nil, 0, err
		}

		return []*domain.Account{account}, account.CustomerID, nil
	}

	if input.CustomerID == nil {
		return nil, 0, domain.ErrSubjectNotFound
	}

	accounts, err := uc.accountRepo.ListByCustomer(ctx, *input.CustomerID)
	if err != nil {
		return nil, 0, err
	}

	return accounts, *input.CustomerID, nil
}

// buildAccountDetail derives one account's section of the statement purely
// from its in-range ledger entries. With no entries, the stored balance is
// used for both opening and closing.
func buildAccountDetail(account *domain.Account, entries []*domain.LedgerEntry) domain.AccountDetail {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	detail := domain.AccountDetail{
		AccountNumber:  account.AccountNumber,
		AccountType:    account.AccountType,
		OpeningBalance: account.Balance,
		ClosingBalance: account.Balance,
		Movements:      make([]domain.MovementLine, 0, len(entries)),
	}

	if len(entries) > 0 {
		detail.OpeningBalance = entries[0].BalanceBefore
		detail.ClosingBalance = entries[len(entries)-1].BalanceAfter
	}

	for _, e := range entries {
		detail.Movements = append(detail.Movements, domain.LineFromEntry(e))
	}

	return detail
}
