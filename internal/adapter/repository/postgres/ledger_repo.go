package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
)

const ledgerColumns = `id, entry_timestamp, movement_id, account_id, entry_type, amount, balance_before, balance_after, description, initiated_by`

// LedgerRepository implements usecase.LedgerRepository. The ledger is
// append-only: Create is the only statement that writes to it.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// Create appends a ledger entry inside a transaction and returns its ID.
func (r *LedgerRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO ledger_entries (entry_timestamp, movement_id, account_id, entry_type, amount, balance_before, balance_after, description, initiated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := pgxTx.QueryRow(ctx, query,
		timeToPgTimestamptz(entry.Timestamp),
		entry.MovementID,
		entry.AccountID,
		string(entry.EntryType),
		decimalToNumeric(entry.Amount),
		decimalToNumeric(entry.BalanceBefore),
		decimalToNumeric(entry.BalanceAfter),
		entry.Description,
		entry.InitiatedBy,
	).Scan(&id)

	return id, err
}

// GetByAccount lists entries for an account, newest first, with pagination.
func (r *LedgerRepository) GetByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY entry_timestamp DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectEntries(rows)
}

// GetAllByAccount retrieves the full entry history for an account in
// chronological order. Used for chain verification.
func (r *LedgerRepository) GetAllByAccount(ctx context.Context, accountID int64) ([]*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY entry_timestamp ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectEntries(rows)
}

// GetByAccountsAndDateRange retrieves entries for a set of accounts whose
// timestamps fall inside [start, end], in chronological order.
func (r *LedgerRepository) GetByAccountsAndDateRange(ctx context.Context, accountIDs []int64, start, end time.Time) ([]*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE account_id = ANY($1) AND entry_timestamp >= $2 AND entry_timestamp <= $3
		ORDER BY entry_timestamp ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, accountIDs, timeToPgTimestamptz(start), timeToPgTimestamptz(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectEntries(rows)
}

// GetByMovement retrieves the entries written for a movement.
func (r *LedgerRepository) GetByMovement(ctx context.Context, movementID int64) ([]*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE movement_id = $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, movementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectEntries(rows)
}

// CountByAccount counts the entries recorded for an account.
func (r *LedgerRepository) CountByAccount(ctx context.Context, accountID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM ledger_entries WHERE account_id = $1`

	var count int64
	err := r.pool.QueryRow(ctx, query, accountID).Scan(&count)

	return count, err
}

func (r *LedgerRepository) scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var (
		entry         domain.LedgerEntry
		timestamp     pgtype.Timestamptz
		entryType     string
		amount        pgtype.Numeric
		balanceBefore pgtype.Numeric
		balanceAfter  pgtype.Numeric
	)

	err := row.Scan(
		&entry.ID,
		&timestamp,
		&entry.MovementID,
		&entry.AccountID,
		&entryType,
		&amount,
		&balanceBefore,
		&balanceAfter,
		&entry.Description,
		&entry.InitiatedBy,
	)
	if err != nil {
		return nil, err
	}

	entry.Timestamp = timestamp.Time
	entry.EntryType = domain.Direction(entryType)
	entry.Amount = numericToDecimal(amount)
	entry.BalanceBefore = numericToDecimal(balanceBefore)
	entry.BalanceAfter = numericToDecimal(balanceAfter)

	return &entry, nil
}

func (r *LedgerRepository) collectEntries(rows pgx.Rows) ([]*domain.LedgerEntry, error) {
	entries := make([]*domain.LedgerEntry, 0)

	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
