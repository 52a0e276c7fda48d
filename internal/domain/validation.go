package domain

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrAmountTooLarge       = errors.New("amount exceeds maximum allowed")
)

const (
	// MaxMovementAmount bounds the magnitude of a single movement.
	MaxMovementAmount = "1000000000"
)

// Account numbers are numeric, 6 to 12 digits.
var accountNumberRegex = regexp.MustCompile(`^[0-9]{6,12}$`)

// ValidateAccountNumber validates the natural key format of an account.
func ValidateAccountNumber(number string) error {
	if !accountNumberRegex.MatchString(number) {
		return fmt.Errorf("%w: %q must be 6-12 digits", ErrInvalidAccountNumber, number)
	}
	return nil
}

// ValidateMovementAmount bounds a signed movement amount. Zero is rejected
// by the engine itself; this only guards the magnitude.
func ValidateMovementAmount(amount decimal.Decimal) error {
	maxAmount, _ := decimal.NewFromString(MaxMovementAmount)
	if amount.Abs().GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum magnitude is %s", ErrAmountTooLarge, MaxMovementAmount)
	}
	return nil
}
