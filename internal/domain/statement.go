package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is the derived report of balances and movement history for a
// customer's accounts over a date range, built solely from ledger entries.
type Statement struct {
	ReportID   string
	ClientName string
	StartDate  time.Time
	EndDate    time.Time
	Accounts   []AccountDetail
}

// AccountDetail holds per-account balances and movement lines.
type AccountDetail struct {
	AccountNumber  string
	AccountType    AccountType
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Movements      []MovementLine
}

// MovementLine is one customer-facing line of a statement. Debits render
// as negative amounts.
type MovementLine struct {
	Date         time.Time
	Direction    Direction
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// LineFromEntry converts a ledger entry into a statement line.
func LineFromEntry(e *LedgerEntry) MovementLine {
	amount := e.Amount
	if e.EntryType == Debit {
		amount = amount.Neg()
	}

	return MovementLine{
		Date:         e.Timestamp,
		Direction:    e.EntryType,
		Amount:       amount,
		BalanceAfter: e.BalanceAfter,
	}
}
