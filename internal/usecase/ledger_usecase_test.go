package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
	"github.com/corebank/accounts/internal/usecase/mocks"
)

func TestLedgerUseCase_VerifyAccountChain(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	ledRepo := mocks.NewMockLedgerRepository()

	accRepo.Seed(&domain.Account{ID: 1, AccountNumber: "478758", Balance: decimal.NewFromInt(850)})

	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	ledRepo.Seed(&domain.LedgerEntry{Timestamp: base, AccountID: 1, EntryType: domain.Credit,
		Amount: decimal.NewFromInt(1000), BalanceBefore: decimal.Zero, BalanceAfter: decimal.NewFromInt(1000)})
	ledRepo.Seed(&domain.LedgerEntry{Timestamp: base.Add(time.Hour), AccountID: 1, EntryType: domain.Debit,
		Amount: decimal.NewFromInt(150), BalanceBefore: decimal.NewFromInt(1000), BalanceAfter: decimal.NewFromInt(850)})

	uc := usecase.NewLedgerUseCase(ledRepo, accRepo, nil)

	require.NoError(t, uc.VerifyAccountChain(context.Background(), 1))
}

func TestLedgerUseCase_VerifyAccountChain_Broken(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	ledRepo := mocks.NewMockLedgerRepository()

	accRepo.Seed(&domain.Account{ID: 1, AccountNumber: "478758", Balance: decimal.NewFromInt(700)})

	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	ledRepo.Seed(&domain.LedgerEntry{Timestamp: base, AccountID: 1, EntryType: domain.Credit,
		Amount: decimal.NewFromInt(1000), BalanceBefore: decimal.Zero, BalanceAfter: decimal.NewFromInt(1000)})
	// Chain break: balanceBefore does not match the previous balanceAfter.
	ledRepo.Seed(&domain.LedgerEntry{Timestamp: base.Add(time.Hour), AccountID: 1, EntryType: domain.Debit,
		Amount: decimal.NewFromInt(200), BalanceBefore: decimal.NewFromInt(900), BalanceAfter: decimal.NewFromInt(700)})

	uc := usecase.NewLedgerUseCase(ledRepo, accRepo, nil)

	err := uc.VerifyAccountChain(context.Background(), 1)
	require.ErrorIs(t, err, usecase.ErrInconsistentLedger)
}

func TestLedgerUseCase_VerifyAccountChain_BalanceDrift(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	ledRepo := mocks.NewMockLedgerRepository()

	// Stored balance disagrees with the last entry's balanceAfter.
	accRepo.Seed(&domain.Account{ID: 1, AccountNumber: "478758", Balance: decimal.NewFromInt(999)})

	ledRepo.Seed(&domain.LedgerEntry{Timestamp: time.Now(), AccountID: 1, EntryType: domain.Credit,
		Amount: decimal.NewFromInt(1000), BalanceBefore: decimal.Zero, BalanceAfter: decimal.NewFromInt(1000)})

	uc := usecase.NewLedgerUseCase(ledRepo, accRepo, nil)

	err := uc.VerifyAccountChain(context.Background(), 1)
	require.ErrorIs(t, err, usecase.ErrInconsistentLedger)
}

func TestLedgerUseCase_GetAccountLedgerByDateRange(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	ledRepo := mocks.NewMockLedgerRepository()

	uc := usecase.NewLedgerUseCase(ledRepo, accRepo, nil)

	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.GetAccountLedgerByDateRange(context.Background(), 1, start, start.AddDate(0, 0, -5))
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	ledRepo.Seed(&domain.LedgerEntry{Timestamp: start.Add(time.Hour), AccountID: 1, EntryType: domain.Credit,
		Amount: decimal.NewFromInt(10), BalanceBefore: decimal.Zero, BalanceAfter: decimal.NewFromInt(10)})

	entries, err := uc.GetAccountLedgerByDateRange(context.Background(), 1, start, start.AddDate(0, 0, 5))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLedgerUseCase_CountAccountEntries(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	ledRepo := mocks.NewMockLedgerRepository()

	ledRepo.Seed(&domain.LedgerEntry{Timestamp: time.Now(), AccountID: 1, EntryType: domain.Credit,
		Amount: decimal.NewFromInt(10), BalanceBefore: decimal.Zero, BalanceAfter: decimal.NewFromInt(10)})
	ledRepo.Seed(&domain.LedgerEntry{Timestamp: time.Now(), AccountID: 2, EntryType: domain.Credit,
		Amount: decimal.NewFromInt(10), BalanceBefore: decimal.Zero, BalanceAfter: decimal.NewFromInt(10)})

	uc := usecase.NewLedgerUseCase(ledRepo, accRepo, nil)

	count, err := uc.CountAccountEntries(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
