package dto

import (
	"time"

	"github.com/corebank/accounts/internal/domain"
)

const dateLayout = "2006-01-02"

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            int64     `json:"id"`
	AccountNumber string    `json:"account_number"`
	AccountType   string    `json:"account_type"`
	Balance       string    `json:"balance"`
	Active        bool      `json:"active"`
	CustomerID    int64     `json:"customer_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		AccountType:   string(a.AccountType),
		Balance:       a.Balance.StringFixed(2),
		Active:        a.Active,
		CustomerID:    a.CustomerID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// MovementResponse represents a movement in API responses.
type MovementResponse struct {
	ID               int64     `json:"id"`
	AccountID        int64     `json:"account_id"`
	Amount           string    `json:"amount"`
	ResultingBalance string    `json:"resulting_balance"`
	Direction        string    `json:"direction"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:               m.ID,
		AccountID:        m.AccountID,
		Amount:           m.Amount.StringFixed(2),
		ResultingBalance: m.ResultingBalance.StringFixed(2),
		Direction:        string(m.Direction),
		OccurredAt:       m.OccurredAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// ListMovementsResponse wraps a page of movements.
type ListMovementsResponse struct {
	Movements []*MovementResponse `json:"movements"`
	Total     int64               `json:"total"`
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	ID            int64     `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	MovementID    int64     `json:"movement_id"`
	AccountID     int64     `json:"account_id"`
	EntryType     string    `json:"entry_type"`
	Amount        string    `json:"amount"`
	BalanceBefore string    `json:"balance_before"`
	BalanceAfter  string    `json:"balance_after"`
	Description   string    `json:"description"`
	InitiatedBy   string    `json:"initiated_by"`
}

// LedgerEntryFromDomain converts a domain ledger entry to a response.
func LedgerEntryFromDomain(e *domain.LedgerEntry) *LedgerEntryResponse {
	return &LedgerEntryResponse{
		ID:            e.ID,
		Timestamp:     e.Timestamp,
		MovementID:    e.MovementID,
		AccountID:     e.AccountID,
		EntryType:     string(e.EntryType),
		Amount:        e.Amount.StringFixed(2),
		BalanceBefore: e.BalanceBefore.StringFixed(2),
		BalanceAfter:  e.BalanceAfter.StringFixed(2),
		Description:   e.Description,
		InitiatedBy:   e.InitiatedBy,
	}
}

// LedgerEntriesFromDomain converts domain ledger entries to responses.
func LedgerEntriesFromDomain(entries []*domain.LedgerEntry) []*LedgerEntryResponse {
	result := make([]*LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = LedgerEntryFromDomain(e)
	}
	return result
}

// ListLedgerEntriesResponse wraps a page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries []*LedgerEntryResponse `json:"entries"`
	Total   int64                  `json:"total"`
}

// StatementLineResponse represents a single statement line.
type StatementLineResponse struct {
	Date         time.Time `json:"date"`
	Direction    string    `json:"direction"`
	Amount       string    `json:"amount"`
	BalanceAfter string    `json:"balance_after"`
}

// StatementAccountResponse represents one account section in a statement.
type StatementAccountResponse struct {
	AccountNumber  string                  `json:"account_number"`
	AccountType    string                  `json:"account_type"`
	OpeningBalance string                  `json:"opening_balance"`
	ClosingBalance string                  `json:"closing_balance"`
	Movements      []StatementLineResponse `json:"movements"`
}

// StatementResponse represents a statement report in API responses.
type StatementResponse struct {
	ReportID   string                     `json:"report_id"`
	ClientName string                     `json:"client_name"`
	StartDate  string                     `json:"start_date"`
	EndDate    string                     `json:"end_date"`
	Accounts   []StatementAccountResponse `json:"accounts"`
}

// StatementFromDomain converts a domain statement to a response.
func StatementFromDomain(s *domain.Statement) *StatementResponse {
	accounts := make([]StatementAccountResponse, len(s.Accounts))
	for i, detail := range s.Accounts {
		lines := make([]StatementLineResponse, len(detail.Movements))
		for j, line := range detail.Movements {
			lines[j] = StatementLineResponse{
				Date:         line.Date,
				Direction:    string(line.Direction),
				Amount:       line.Amount.StringFixed(2),
				BalanceAfter: line.BalanceAfter.StringFixed(2),
			}
		}

		accounts[i] = StatementAccountResponse{
			AccountNumber:  detail.AccountNumber,
			AccountType:    string(detail.AccountType),
			OpeningBalance: detail.OpeningBalance.StringFixed(2),
			ClosingBalance: detail.ClosingBalance.StringFixed(2),
			Movements:      lines,
		}
	}

	return &StatementResponse{
		ReportID:   s.ReportID,
		ClientName: s.ClientName,
		StartDate:  s.StartDate.Format(dateLayout),
		EndDate:    s.EndDate.Format(dateLayout),
		Accounts:   accounts,
	}
}

// ChainVerificationResponse reports the outcome of a ledger chain check.
type ChainVerificationResponse struct {
	AccountID  int64 `json:"account_id"`
	Consistent bool  `json:"consistent"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
