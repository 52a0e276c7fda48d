package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts/internal/domain"
)

func TestCreateAccountRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		req     CreateAccountRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: CreateAccountRequest{
				AccountNumber:  "478758",
				AccountType:    "SAVINGS",
				InitialBalance: decimal.NewFromInt(2000),
				CustomerID:     7,
			},
		},
		{
			name: "non-numeric account number",
			req: CreateAccountRequest{
				AccountNumber: "ABC123",
				AccountType:   "SAVINGS",
				CustomerID:    7,
			},
			wantErr: true,
		},
		{
			name: "account number too short",
			req: CreateAccountRequest{
				AccountNumber: "123",
				AccountType:   "SAVINGS",
				CustomerID:    7,
			},
			wantErr: true,
		},
		{
			name: "unknown account type",
			req: CreateAccountRequest{
				AccountNumber: "478758",
				AccountType:   "LOAN",
				CustomerID:    7,
			},
			wantErr: true,
		},
		{
			name: "negative initial balance",
			req: CreateAccountRequest{
				AccountNumber:  "478758",
				AccountType:    "SAVINGS",
				InitialBalance: decimal.NewFromInt(-1),
				CustomerID:     7,
			},
			wantErr: true,
		},
		{
			name: "missing customer",
			req: CreateAccountRequest{
				AccountNumber: "478758",
				AccountType:   "SAVINGS",
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestCreateAccountRequestToUseCaseInput(t *testing.T) {
	req := CreateAccountRequest{
		AccountNumber:  "478758",
		AccountType:    "CHECKING",
		InitialBalance: decimal.NewFromInt(100),
		CustomerID:     7,
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.AccountType != domain.Checking {
		t.Fatalf("expected CHECKING, got %s", input.AccountType)
	}
}

func TestRegisterMovementRequestValidate(t *testing.T) {
	valid := RegisterMovementRequest{AccountID: 1, Amount: decimal.NewFromInt(-50)}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	missing := RegisterMovementRequest{Amount: decimal.NewFromInt(-50)}
	if err := missing.Validate(); err == nil {
		t.Fatal("expected error for missing account id")
	}
}
