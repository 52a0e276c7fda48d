package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates the supported account products.
type AccountType string

const (
	Savings       AccountType = "SAVINGS"
	Checking      AccountType = "CHECKING"
	CreditAccount AccountType = "CREDIT"
)

// ParseAccountType parses the wire representation of an account type.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Savings, Checking, CreditAccount:
		return AccountType(s), nil
	}
	return "", ErrInvalidAccountType
}

// Account is a customer-owned account holding a balance. The balance is
// mutated only by the movement engine; accounts are deactivated, never
// physically deleted.
type Account struct {
	ID            int64
	AccountNumber string
	AccountType   AccountType
	Balance       decimal.Decimal
	Active        bool
	CustomerID    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CandidateBalance returns the balance that would result from applying
// the signed movement amount.
func (a *Account) CandidateBalance(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// ValidateMovement checks whether the signed amount can be applied.
// Inactive accounts accept no movements, zero amounts are rejected
// outright, and debits may not drive the balance below zero.
func (a *Account) ValidateMovement(amount decimal.Decimal) error {
	if !a.Active {
		return ErrAccountInactive
	}
	if amount.IsZero() {
		return ErrInvalidAmount
	}
	if amount.IsNegative() && a.CandidateBalance(amount).IsNegative() {
		return ErrInsufficientBalance
	}
	return nil
}
