package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/infrastructure/metrics"
)

var (
	// ErrInconsistentLedger is returned when an account's ledger chain is broken.
	ErrInconsistentLedger = errors.New("ledger is inconsistent")
)

// LedgerUseCase exposes the read side of the audit trail.
type LedgerUseCase struct {
	ledgerRepo  LedgerRepository
	accountRepo AccountRepository
	metrics     *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. metrics may be nil.
func NewLedgerUseCase(ledgerRepo LedgerRepository, accountRepo AccountRepository, m *metrics.Metrics) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		metrics:     m,
	}
}

// GetAccountLedgerInput represents input for listing ledger entries.
type GetAccountLedgerInput struct {
	AccountID int64
	Limit     int
	Offset    int
}

// GetAccountLedger lists ledger entries for an account, newest first.
func (uc *LedgerUseCase) GetAccountLedger(ctx context.Context, input GetAccountLedgerInput) ([]*domain.LedgerEntry, error) {
	input.Limit, input.Offset = clampPagination(input.Limit, input.Offset)

	return uc.ledgerRepo.GetByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

// GetAccountLedgerByDateRange lists an account's entries inside a window,
// oldest first.
func (uc *LedgerUseCase) GetAccountLedgerByDateRange(ctx context.Context, accountID int64, start, end time.Time) ([]*domain.LedgerEntry, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}

	return uc.ledgerRepo.GetByAccountsAndDateRange(ctx, []int64{accountID}, start, end)
}

// GetEntriesByMovement retrieves the ledger entries recorded for a movement.
func (uc *LedgerUseCase) GetEntriesByMovement(ctx context.Context, movementID int64) ([]*domain.LedgerEntry, error) {
	return uc.ledgerRepo.GetByMovement(ctx, movementID)
}

// CountAccountEntries returns the total number of entries for an account.
func (uc *LedgerUseCase) CountAccountEntries(ctx context.Context, accountID int64) (int64, error) {
	return uc.ledgerRepo.CountByAccount(ctx, accountID)
}

// VerifyAccountChain checks that an account's ledger is balance-consistent:
// every entry's arithmetic holds, consecutive entries chain balanceAfter ->
// balanceBefore, and the stored account balance equals the last entry's
// balanceAfter. Returns nil when the chain is intact.
func (uc *LedgerUseCase) VerifyAccountChain(ctx context.Context, accountID int64) error {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	entries, err := uc.ledgerRepo.GetAllByAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if err := domain.VerifyChain(entries); err != nil {
		uc.observeVerification(false)

		return fmt.Errorf("%w: %v", ErrInconsistentLedger, err)
	}

	if len(entries) > 0 {
		last := entries[len(entries)-1]
		if !account.Balance.Equal(last.BalanceAfter) {
			uc.observeVerification(false)

			return fmt.Errorf("%w: account balance %s does not match last entry balance %s",
				ErrInconsistentLedger, account.Balance, last.BalanceAfter)
		}
	}

	uc.observeVerification(true)

	return nil
}

func (uc *LedgerUseCase) observeVerification(consistent bool) {
	if uc.metrics == nil {
		return
	}

	result := "consistent"
	if !consistent {
		result = "inconsistent"
	}

	uc.metrics.ChainVerifications.WithLabelValues(result).Inc()
}
