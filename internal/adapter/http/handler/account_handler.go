package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/corebank/accounts/internal/adapter/http/dto"
	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
	ListAccountsByCustomer(ctx context.Context, customerID int64) ([]*domain.Account, error)
	UpdateAccount(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, id int64) error
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Create opens a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid account payload", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, err, "invalid account payload")
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), input)
	if err != nil {
		writeDomainError(w, err, "failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", "")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get account")
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts. A customer_id or account_number query parameter
// narrows the result.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	if number := r.URL.Query().Get("account_number"); number != "" {
		account, err := h.accountUC.GetAccountByNumber(r.Context(), number)
		if err != nil {
			writeDomainError(w, err, "failed to get account")
			return
		}

		writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
			Accounts: dto.AccountsFromDomain([]*domain.Account{account}),
			Total:    1,
		})

		return
	}

	if customerID := parseIntQuery(r, "customer_id", 0); customerID > 0 {
		accounts, err := h.accountUC.ListAccountsByCustomer(r.Context(), int64(customerID))
		if err != nil {
			writeDomainError(w, err, "failed to list accounts")
			return
		}

		writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
			Accounts: dto.AccountsFromDomain(accounts),
			Total:    int64(len(accounts)),
		})

		return
	}

	accounts, err := h.accountUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, err, "failed to list accounts")
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// Update updates an account's mutable attributes.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", "")
		return
	}

	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid account payload", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, err, "invalid account payload")
		return
	}

	account, err := h.accountUC.UpdateAccount(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, err, "failed to update account")
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Deactivate flips an account to inactive.
func (h *AccountHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", "")
		return
	}

	if err := h.accountUC.DeactivateAccount(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to deactivate account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
