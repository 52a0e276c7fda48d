package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a single credit or debit requested against an account.
// The amount is signed: negative debits the account, positive credits it.
// ResultingBalance snapshots the account balance after settlement.
type Movement struct {
	ID               int64
	AccountID        int64
	Amount           decimal.Decimal
	ResultingBalance decimal.Decimal
	OccurredAt       time.Time
	Direction        Direction
}
