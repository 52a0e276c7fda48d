// Package mocks provides hand-written fakes for the usecase interfaces.
// Each mock keeps simple in-memory state and lets a test override any
// method through the corresponding Func field.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	nextID   int64

	CreateFunc              func(ctx context.Context, account *domain.Account) (int64, error)
	GetByIDFunc             func(ctx context.Context, id int64) (*domain.Account, error)
	GetByIDForUpdateFunc    func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Account, error)
	GetByNumberFunc         func(ctx context.Context, number string) (*domain.Account, error)
	ListByCustomerFunc      func(ctx context.Context, customerID int64) ([]*domain.Account, error)
	UpdateBalanceFunc       func(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	UpdateFunc              func(ctx context.Context, account *domain.Account) error
	UpdateStatusFunc        func(ctx context.Context, id int64, active bool, updatedAt time.Time) error
	ListFunc                func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	GetByNumberExcludingFn  func(ctx context.Context, number string, excludeID int64) (*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]*domain.Account),
		nextID:   1,
	}
}

// Seed inserts an account directly, assigning an id if missing.
func (m *MockAccountRepository) Seed(account *domain.Account) *domain.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	if account.ID == 0 {
		account.ID = m.nextID
	}
	if account.ID >= m.nextID {
		m.nextID = account.ID + 1
	}
	m.accounts[account.ID] = account
	return account
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = m.nextID
	m.nextID++
	m.accounts[account.ID] = account
	return account.ID, nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.AccountNumber == number {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByNumberExcluding(ctx context.Context, number string, excludeID int64) (*domain.Account, error) {
	if m.GetByNumberExcludingFn != nil {
		return m.GetByNumberExcludingFn(ctx, number, excludeID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.AccountNumber == number && acc.ID != excludeID {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Account, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.CustomerID == customerID {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Balance = balance
	acc.UpdatedAt = updatedAt
	return nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) UpdateStatus(ctx context.Context, id int64, active bool, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, active, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Active = active
	acc.UpdatedAt = updatedAt
	return nil
}

// MockMovementRepository is a mock implementation of MovementRepository.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements map[int64]*domain.Movement
	nextID    int64

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) (int64, error)
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Movement, error)
	ListByAccountFunc func(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Movement, error)
	ListFunc          func(ctx context.Context, limit, offset int) ([]*domain.Movement, error)
	DeleteFunc        func(ctx context.Context, id int64) error
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{
		movements: make(map[int64]*domain.Movement),
		nextID:    1,
	}
}

func (m *MockMovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	stored := *movement
	stored.ID = id
	m.movements[id] = &stored
	return id, nil
}

func (m *MockMovementRepository) GetByID(ctx context.Context, id int64) (*domain.Movement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mv, ok := m.movements[id]; ok {
		return mv, nil
	}
	return nil, domain.ErrMovementNotFound
}

func (m *MockMovementRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Movement, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var movements []*domain.Movement
	for _, mv := range m.movements {
		if mv.AccountID == accountID {
			movements = append(movements, mv)
		}
	}
	sort.Slice(movements, func(i, j int) bool { return movements[i].ID < movements[j].ID })
	return movements, nil
}

func (m *MockMovementRepository) List(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var movements []*domain.Movement
	for _, mv := range m.movements {
		movements = append(movements, mv)
	}
	sort.Slice(movements, func(i, j int) bool { return movements[i].ID < movements[j].ID })
	return movements, nil
}

func (m *MockMovementRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.movements[id]; !ok {
		return domain.ErrMovementNotFound
	}
	delete(m.movements, id)
	return nil
}

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	mu      sync.RWMutex
	entries []*domain.LedgerEntry
	nextID  int64

	CreateFunc                    func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) (int64, error)
	GetByAccountFunc              func(ctx context.Context, accountID int64, limit, offset int) ([]*domain.LedgerEntry, error)
	GetAllByAccountFunc           func(ctx context.Context, accountID int64) ([]*domain.LedgerEntry, error)
	GetByAccountsAndDateRangeFunc func(ctx context.Context, accountIDs []int64, start, end time.Time) ([]*domain.LedgerEntry, error)
	GetByMovementFunc             func(ctx context.Context, movementID int64) ([]*domain.LedgerEntry, error)
	CountByAccountFunc            func(ctx context.Context, accountID int64) (int64, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{nextID: 1}
}

// Seed appends an entry directly, assigning an id if missing.
func (m *MockLedgerRepository) Seed(entry *domain.LedgerEntry) *domain.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry.ID == 0 {
		entry.ID = m.nextID
	}
	if entry.ID >= m.nextID {
		m.nextID = entry.ID + 1
	}
	m.entries = append(m.entries, entry)
	return entry
}

// Entries returns a copy of all stored entries.
func (m *MockLedgerRepository) Entries() []*domain.LedgerEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.LedgerEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MockLedgerRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	stored := *entry
	stored.ID = id
	m.entries = append(m.entries, &stored)
	return id, nil
}

func (m *MockLedgerRepository) GetByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.LedgerEntry, error) {
	if m.GetByAccountFunc != nil {
		return m.GetByAccountFunc(ctx, accountID, limit, offset)
	}
	entries, _ := m.GetAllByAccount(ctx, accountID)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp.After(entries[j].Timestamp) })
	return entries, nil
}

func (m *MockLedgerRepository) GetAllByAccount(ctx context.Context, accountID int64) ([]*domain.LedgerEntry, error) {
	if m.GetAllByAccountFunc != nil {
		return m.GetAllByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.AccountID == accountID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp.Before(entries[j].Timestamp) })
	return entries, nil
}

func (m *MockLedgerRepository) GetByAccountsAndDateRange(ctx context.Context, accountIDs []int64, start, end time.Time) ([]*domain.LedgerEntry, error) {
	if m.GetByAccountsAndDateRangeFunc != nil {
		return m.GetByAccountsAndDateRangeFunc(ctx, accountIDs, start, end)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	wanted := make(map[int64]bool, len(accountIDs))
	for _, id := range accountIDs {
		wanted[id] = true
	}
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if wanted[e.AccountID] && !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp.Before(entries[j].Timestamp) })
	return entries, nil
}

func (m *MockLedgerRepository) GetByMovement(ctx context.Context, movementID int64) ([]*domain.LedgerEntry, error) {
	if m.GetByMovementFunc != nil {
		return m.GetByMovementFunc(ctx, movementID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.MovementID == movementID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockLedgerRepository) CountByAccount(ctx context.Context, accountID int64) (int64, error) {
	if m.CountByAccountFunc != nil {
		return m.CountByAccountFunc(ctx, accountID)
	}
	entries, _ := m.GetAllByAccount(ctx, accountID)
	return int64(len(entries)), nil
}

// MockTransaction is a no-op transaction that records its outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockCustomerClient is a mock implementation of CustomerClient.
type MockCustomerClient struct {
	mu        sync.RWMutex
	customers map[int64]*domain.Customer

	FindCustomerByIDFunc func(ctx context.Context, id int64) (*domain.Customer, error)
}

func NewMockCustomerClient() *MockCustomerClient {
	return &MockCustomerClient{customers: make(map[int64]*domain.Customer)}
}

// Seed registers a known customer.
func (m *MockCustomerClient) Seed(customer *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
}

func (m *MockCustomerClient) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if m.FindCustomerByIDFunc != nil {
		return m.FindCustomerByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

// PassthroughRetrier runs the operation once with no retry.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockReportIDGenerator returns deterministic sequential report ids.
type MockReportIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func (m *MockReportIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("report-%d", m.counter)
}
