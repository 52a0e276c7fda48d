package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts/internal/adapter/http/dto"
	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/tests/testutil"
)

func TestAccountLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestServer(t, testDB, map[int64]string{
		7:  "Ada Lovelace",
		12: "Grace Hopper",
	})

	t.Run("create account with valid data", func(t *testing.T) {
		req := dto.CreateAccountRequest{
			AccountNumber:  "478758",
			AccountType:    "SAVINGS",
			InitialBalance: decimal.NewFromInt(2000),
			CustomerID:     7,
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.AccountResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.AccountNumber != req.AccountNumber {
			t.Errorf("expected account number %q, got %q", req.AccountNumber, resp.AccountNumber)
		}
		if resp.Balance != "2000.00" {
			t.Errorf("expected balance 2000.00, got %s", resp.Balance)
		}
		if !resp.Active {
			t.Error("expected new account to be active")
		}
	})

	t.Run("duplicate account number returns 409", func(t *testing.T) {
		req := dto.CreateAccountRequest{
			AccountNumber:  "478758",
			AccountType:    "CHECKING",
			InitialBalance: decimal.Zero,
			CustomerID:     12,
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusConflict {
			t.Errorf("expected status %d, got %d: %s", http.StatusConflict, w.Code, w.Body.String())
		}
	})

	t.Run("unknown customer returns 404", func(t *testing.T) {
		req := dto.CreateAccountRequest{
			AccountNumber:  "555001",
			AccountType:    "SAVINGS",
			InitialBalance: decimal.Zero,
			CustomerID:     9999,
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d: %s", http.StatusNotFound, w.Code, w.Body.String())
		}
	})

	t.Run("get account by ID", func(t *testing.T) {
		account := testDB.CreateTestAccount(ctx, "600100", domain.Checking, decimal.NewFromInt(150), 12)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+strconv.FormatInt(account.ID, 10), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.AccountResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.ID != account.ID {
			t.Errorf("expected ID %d, got %d", account.ID, resp.ID)
		}
	})

	t.Run("get non-existent account returns 404", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/999999", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})

	t.Run("list accounts by customer", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, "700001", domain.Savings, decimal.Zero, 7)
		testDB.CreateTestAccount(ctx, "700002", domain.Checking, decimal.Zero, 7)
		testDB.CreateTestAccount(ctx, "700003", domain.Savings, decimal.Zero, 12)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts?customer_id=7", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.ListAccountsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if len(resp.Accounts) != 2 {
			t.Errorf("expected 2 accounts, got %d", len(resp.Accounts))
		}
	})

	t.Run("deactivate account", func(t *testing.T) {
		account := testDB.CreateTestAccount(ctx, "710001", domain.Savings, decimal.Zero, 7)
		id := strconv.FormatInt(account.ID, 10)

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/"+id, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, w.Code, w.Body.String())
		}

		r = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+id, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, r)

		var resp dto.AccountResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Active {
			t.Error("expected account to be inactive after deactivation")
		}
	})
}
