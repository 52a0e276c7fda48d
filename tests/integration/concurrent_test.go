package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts/internal/adapter/http/dto"
	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/tests/testutil"
)

// TestConcurrentMovements fires movements at one account from many
// goroutines. The row lock must serialize them so the final balance and
// the ledger chain come out exact.
func TestConcurrentMovements(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestServer(t, testDB, map[int64]string{7: "Ada Lovelace"})

	account := testDB.CreateTestAccount(ctx, "478758", domain.Savings, decimal.NewFromInt(10000), 7)

	const (
		workers    = 10
		perWorker  = 5
		creditEach = "25.00"
		debitEach  = "-10.00"
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				amount := creditEach
				if worker%2 == 1 {
					amount = debitEach
				}

				w := registerMovement(t, router, account.ID, amount)
				if w.Code != http.StatusCreated {
					t.Errorf("worker %d: expected status %d, got %d: %s",
						worker, http.StatusCreated, w.Code, w.Body.String())
				}
			}
		}(i)
	}
	wg.Wait()

	// 5 crediting workers and 5 debiting workers, 5 movements each.
	expected := decimal.NewFromInt(10000).
		Add(decimal.RequireFromString("25.00").Mul(decimal.NewFromInt(25))).
		Add(decimal.RequireFromString("-10.00").Mul(decimal.NewFromInt(25)))

	if balance := testDB.AccountBalance(ctx, account.ID); !balance.Equal(expected) {
		t.Errorf("expected final balance %s, got %s", expected, balance)
	}

	if n := testDB.CountRows(ctx, "movements"); n != workers*perWorker {
		t.Errorf("expected %d movements, got %d", workers*perWorker, n)
	}
	if n := testDB.CountRows(ctx, "ledger_entries"); n != workers*perWorker {
		t.Errorf("expected %d ledger entries, got %d", workers*perWorker, n)
	}

	r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/ledger/verify", account.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var verification dto.ChainVerificationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &verification); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if !verification.Consistent {
		t.Error("expected ledger chain to be consistent after concurrent movements")
	}
}
