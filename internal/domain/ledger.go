package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the immutable audit record of one settled movement.
// Entries are append-only: created once, never updated or deleted. Amount
// is the non-negative magnitude regardless of the movement's sign.
type LedgerEntry struct {
	ID            int64
	Timestamp     time.Time
	MovementID    int64
	AccountID     int64
	EntryType     Direction
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Description   string
	InitiatedBy   string
}

// Validate checks the entry's internal arithmetic: the balance delta must
// equal the amount applied in the entry's direction, the amount must be
// positive, and the resulting balance may never be negative.
func (e *LedgerEntry) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("ledger entry amount must be positive, got %s", e.Amount)
	}

	if e.BalanceAfter.IsNegative() {
		return fmt.Errorf("ledger entry balance_after is negative: %s", e.BalanceAfter)
	}

	want := e.BalanceBefore.Add(e.Amount.Mul(decimal.NewFromInt(int64(e.EntryType.Sign()))))
	if !e.BalanceAfter.Equal(want) {
		return fmt.Errorf("ledger entry balance mismatch: before=%s after=%s amount=%s type=%s",
			e.BalanceBefore, e.BalanceAfter, e.Amount, e.EntryType)
	}

	return nil
}

// VerifyChain checks balance continuity of an account's ledger: entries
// ordered by timestamp must satisfy entry[i].BalanceAfter ==
// entry[i+1].BalanceBefore, and each entry must pass Validate.
func VerifyChain(entries []*LedgerEntry) error {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", e.ID, err)
		}

		if i > 0 && !entries[i-1].BalanceAfter.Equal(e.BalanceBefore) {
			return fmt.Errorf("chain broken between entries %d and %d: after=%s before=%s",
				entries[i-1].ID, e.ID, entries[i-1].BalanceAfter, e.BalanceBefore)
		}
	}

	return nil
}
