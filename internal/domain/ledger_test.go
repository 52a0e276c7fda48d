package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func entry(id int64, typ Direction, amount, before, after float64, at time.Time) *LedgerEntry {
	return &LedgerEntry{
		ID:            id,
		Timestamp:     at,
		EntryType:     typ,
		Amount:        decimal.NewFromFloat(amount),
		BalanceBefore: decimal.NewFromFloat(before),
		BalanceAfter:  decimal.NewFromFloat(after),
	}
}

func TestLedgerEntryValidate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		entry   *LedgerEntry
		wantErr bool
	}{
		{"valid debit", entry(1, Debit, 200, 1000, 800, now), false},
		{"valid credit", entry(2, Credit, 500, 800, 1300, now), false},
		{"arithmetic mismatch", entry(3, Debit, 200, 1000, 900, now), true},
		{"negative after balance", entry(4, Debit, 200, 100, -100, now), true},
		{"zero amount", entry(5, Credit, 0, 100, 100, now), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyChain(t *testing.T) {
	now := time.Now()

	valid := []*LedgerEntry{
		entry(1, Credit, 1000, 0, 1000, now),
		entry(2, Debit, 200, 1000, 800, now.Add(time.Hour)),
		entry(3, Credit, 50, 800, 850, now.Add(2*time.Hour)),
	}
	if err := VerifyChain(valid); err != nil {
		t.Errorf("expected valid chain, got %v", err)
	}

	broken := []*LedgerEntry{
		entry(1, Credit, 1000, 0, 1000, now),
		entry(2, Debit, 200, 900, 700, now.Add(time.Hour)),
	}
	if err := VerifyChain(broken); err == nil {
		t.Error("expected broken chain to be rejected")
	}

	if err := VerifyChain(nil); err != nil {
		t.Errorf("empty chain should be valid, got %v", err)
	}
}

func TestLineFromEntry(t *testing.T) {
	now := time.Now()

	debit := LineFromEntry(entry(1, Debit, 50, 1000, 950, now))
	if !debit.Amount.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("debit line should be negative, got %s", debit.Amount)
	}
	if !debit.BalanceAfter.Equal(decimal.NewFromInt(950)) {
		t.Errorf("balance after should carry through, got %s", debit.BalanceAfter)
	}

	credit := LineFromEntry(entry(2, Credit, 75, 950, 1025, now))
	if !credit.Amount.Equal(decimal.NewFromInt(75)) {
		t.Errorf("credit line should be positive, got %s", credit.Amount)
	}
}
