package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
)

const movementColumns = `id, account_id, amount, resulting_balance, occurred_at, direction`

// MovementRepository implements usecase.MovementRepository.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// Create inserts a movement inside a transaction and returns its assigned ID.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO movements (account_id, amount, resulting_balance, occurred_at, direction)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := pgxTx.QueryRow(ctx, query,
		movement.AccountID,
		decimalToNumeric(movement.Amount),
		decimalToNumeric(movement.ResultingBalance),
		timeToPgTimestamptz(movement.OccurredAt),
		string(movement.Direction),
	).Scan(&id)

	return id, err
}

// GetByID retrieves a movement by ID.
func (r *MovementRepository) GetByID(ctx context.Context, id int64) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`

	return r.scanMovement(r.pool.QueryRow(ctx, query, id))
}

// ListByAccount lists movements for an account, newest first.
func (r *MovementRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE account_id = $1
		ORDER BY occurred_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectMovements(rows)
}

// List lists movements across all accounts with pagination.
func (r *MovementRepository) List(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectMovements(rows)
}

// Delete removes a movement row. The ledger entry written alongside it is
// not touched here.
func (r *MovementRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movements WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}

	return nil
}

func (r *MovementRepository) scanMovement(row pgx.Row) (*domain.Movement, error) {
	var (
		movement         domain.Movement
		amount           pgtype.Numeric
		resultingBalance pgtype.Numeric
		occurredAt       pgtype.Timestamptz
		direction        string
	)

	err := row.Scan(
		&movement.ID,
		&movement.AccountID,
		&amount,
		&resultingBalance,
		&occurredAt,
		&direction,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}

		return nil, err
	}

	movement.Amount = numericToDecimal(amount)
	movement.ResultingBalance = numericToDecimal(resultingBalance)
	movement.OccurredAt = occurredAt.Time
	movement.Direction = domain.Direction(direction)

	return &movement, nil
}

func (r *MovementRepository) collectMovements(rows pgx.Rows) ([]*domain.Movement, error) {
	movements := make([]*domain.Movement, 0)

	for rows.Next() {
		movement, err := r.scanMovement(rows)
		if err != nil {
			return nil, err
		}

		movements = append(movements, movement)
	}

	return movements, rows.Err()
}
