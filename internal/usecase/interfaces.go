package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Account, error)
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	GetByNumberExcluding(ctx context.Context, number string, excludeID int64) (*domain.Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	Update(ctx context.Context, account *domain.Account) error
	UpdateStatus(ctx context.Context, id int64, active bool, updatedAt time.Time) error
}

// MovementRepository defines data access for movements.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Movement, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Movement, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Movement, error)
	Delete(ctx context.Context, id int64) error
}

// LedgerRepository defines data access for ledger entries. Create is the
// only write operation; entries are never updated or deleted.
type LedgerRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) (int64, error)
	GetByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.LedgerEntry, error)
	GetAllByAccount(ctx context.Context, accountID int64) ([]*domain.LedgerEntry, error)
	GetByAccountsAndDateRange(ctx context.Context, accountIDs []int64, start, end time.Time) ([]*domain.LedgerEntry, error)
	GetByMovement(ctx context.Context, movementID int64) ([]*domain.LedgerEntry, error)
	CountByAccount(ctx context.Context, accountID int64) (int64, error)
}

// CustomerClient looks up customers owned by the customer service.
type CustomerClient interface {
	FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient store conflicts. Business
// errors are never retried.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// ReportIDGenerator generates unique statement report IDs.
type ReportIDGenerator interface {
	Generate() string
}

// ErrCacheMiss is returned by Cache.Get when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
