package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/corebank/accounts/internal/adapter/client"
	adaptershttp "github.com/corebank/accounts/internal/adapter/http"
	"github.com/corebank/accounts/internal/adapter/http/handler"
	"github.com/corebank/accounts/internal/adapter/repository/postgres"
	redisrepo "github.com/corebank/accounts/internal/adapter/repository/redis"
	"github.com/corebank/accounts/internal/usecase"
	"github.com/corebank/accounts/tests/testutil"
)

// newTestServer wires the full HTTP stack against a real database, an
// in-process redis, and a stubbed customer service.
func newTestServer(t *testing.T, db *testutil.TestDB, customers map[int64]string) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	customerStub := testutil.NewCustomerServiceStub(t, customers)

	log := zerolog.Nop()

	pool := db.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	retrier := postgres.NewRetrier(log)
	idGen := postgres.NewULIDGenerator()

	customerClient := client.NewCustomerClient(customerStub.URL, nil, time.Minute, log, nil)

	accountUC := usecase.NewAccountUseCase(accountRepo, customerClient, log, nil)
	movementUC := usecase.NewMovementUseCase(txManager, accountRepo, movementRepo, ledgerRepo, retrier, log, nil)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, accountRepo, nil)
	statementUC := usecase.NewStatementUseCase(accountRepo, ledgerRepo, customerClient, idGen, log, nil)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		MovementHandler:  handler.NewMovementHandler(movementUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC),
		StatementHandler: handler.NewStatementHandler(statementUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
		Logger:           log,
	})
}
