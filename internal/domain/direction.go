package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction classifies a balance mutation. The same tagged value is used
// for a Movement and for its LedgerEntry, so the two can never disagree.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// DirectionOf derives the direction from a signed movement amount.
// A negative amount debits the account; zero and positive amounts credit it.
func DirectionOf(amount decimal.Decimal) Direction {
	if amount.IsNegative() {
		return Debit
	}
	return Credit
}

// ParseDirection parses the wire representation of a direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Debit, Credit:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Sign returns -1 for debits and 1 for credits.
func (d Direction) Sign() int {
	if d == Debit {
		return -1
	}
	return 1
}
