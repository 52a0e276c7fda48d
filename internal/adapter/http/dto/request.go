package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Expose decimal.Decimal to the validator as a plain float so numeric
	// rules apply to it.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// CreateAccountRequest represents a request to open an account.
type CreateAccountRequest struct {
	AccountNumber  string          `json:"account_number" validate:"required,numeric,min=6,max=12"`
	AccountType    string          `json:"account_type" validate:"required,oneof=SAVINGS CHECKING CREDIT"`
	InitialBalance decimal.Decimal `json:"initial_balance" validate:"gte=0"`
	CustomerID     int64           `json:"customer_id" validate:"required,gt=0"`
}

// Validate validates the request payload.
func (r *CreateAccountRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() (usecase.CreateAccountInput, error) {
	accountType, err := domain.ParseAccountType(r.AccountType)
	if err != nil {
		return usecase.CreateAccountInput{}, err
	}

	return usecase.CreateAccountInput{
		AccountNumber:  r.AccountNumber,
		AccountType:    accountType,
		InitialBalance: r.InitialBalance,
		CustomerID:     r.CustomerID,
	}, nil
}

// UpdateAccountRequest represents a request to update an account.
type UpdateAccountRequest struct {
	AccountNumber string `json:"account_number" validate:"required,numeric,min=6,max=12"`
	AccountType   string `json:"account_type" validate:"required,oneof=SAVINGS CHECKING CREDIT"`
	Active        bool   `json:"active"`
}

// Validate validates the request payload.
func (r *UpdateAccountRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() (usecase.UpdateAccountInput, error) {
	accountType, err := domain.ParseAccountType(r.AccountType)
	if err != nil {
		return usecase.UpdateAccountInput{}, err
	}

	return usecase.UpdateAccountInput{
		AccountNumber: r.AccountNumber,
		AccountType:   accountType,
		Active:        r.Active,
	}, nil
}

// RegisterMovementRequest represents a request to register a movement.
// A negative amount debits the account, a positive amount credits it.
type RegisterMovementRequest struct {
	AccountID int64           `json:"account_id" validate:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
}

// Validate validates the request payload. The amount itself is judged by
// the movement engine; only structural rules live here.
func (r *RegisterMovementRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *RegisterMovementRequest) ToUseCaseInput() usecase.RegisterMovementInput {
	return usecase.RegisterMovementInput{
		AccountID: r.AccountID,
		Amount:    r.Amount,
	}
}
