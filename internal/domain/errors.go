package domain

import "errors"

var (
	// Movement errors
	ErrInvalidAmount       = errors.New("movement amount cannot be zero")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrMovementNotFound    = errors.New("movement not found")

	// Account errors
	ErrAccountInactive        = errors.New("account is inactive")
	ErrAccountNotFound        = errors.New("account not found")
	ErrDuplicateAccountNumber = errors.New("account number already exists")
	ErrInvalidAccountType     = errors.New("unknown account type")

	// Statement errors
	ErrSubjectNotFound  = errors.New("no customer or account matches the given parameters")
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// Customer service errors
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerUnavailable = errors.New("customer service unavailable")

	// Store errors
	ErrPersistenceFailure = errors.New("persistence failure")
)

// CodeOf maps a domain error to its stable machine-readable code. API and
// CLI layers render these codes without reinterpreting the error chain.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, ErrInsufficientBalance):
		return "INSUFFICIENT_BALANCE"
	case errors.Is(err, ErrAccountInactive):
		return "ACCOUNT_INACTIVE"
	case errors.Is(err, ErrAccountNotFound):
		return "ACCOUNT_NOT_FOUND"
	case errors.Is(err, ErrMovementNotFound):
		return "MOVEMENT_NOT_FOUND"
	case errors.Is(err, ErrSubjectNotFound):
		return "SUBJECT_NOT_FOUND"
	case errors.Is(err, ErrInvalidDateRange):
		return "INVALID_DATE_RANGE"
	case errors.Is(err, ErrDuplicateAccountNumber):
		return "DUPLICATE_ACCOUNT_NUMBER"
	case errors.Is(err, ErrInvalidAccountType):
		return "INVALID_ACCOUNT_TYPE"
	case errors.Is(err, ErrInvalidAccountNumber):
		return "INVALID_ACCOUNT_NUMBER"
	case errors.Is(err, ErrAmountTooLarge):
		return "AMOUNT_TOO_LARGE"
	case errors.Is(err, ErrCustomerNotFound):
		return "CUSTOMER_NOT_FOUND"
	case errors.Is(err, ErrCustomerUnavailable):
		return "CUSTOMER_UNAVAILABLE"
	default:
		return "PERSISTENCE_FAILURE"
	}
}
