package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/infrastructure/metrics"
)

// MovementUseCase is the movement-ledger transaction engine. It mutates an
// account balance in response to a movement and guarantees the balance
// update, the movement row, and the ledger entry commit together.
type MovementUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	movementRepo MovementRepository
	ledgerRepo   LedgerRepository
	retrier      Retrier
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

// NewMovementUseCase creates a new MovementUseCase. metrics may be nil.
func NewMovementUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	ledgerRepo LedgerRepository,
	retrier Retrier,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		ledgerRepo:   ledgerRepo,
		retrier:      retrier,
		logger:       logger,
		metrics:      m,
	}
}

// RegisterMovementInput represents input for registering a movement.
type RegisterMovementInput struct {
	AccountID int64
	Amount    decimal.Decimal
}

// RegisterMovement settles one movement against an account. Validation
// failures leave state untouched; the three writes (balance, movement,
// ledger entry) happen inside a single transaction with the account row
// locked, so concurrent calls against the same account serialize on the
// row lock. Transient serialization conflicts are retried; business
// errors are returned as-is.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, input RegisterMovementInput) (*domain.Movement, error) {
	if input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	if err := domain.ValidateMovementAmount(input.Amount); err != nil {
		return nil, err
	}

	start := time.Now()

	var movement *domain.Movement

	err := uc.retrier.Retry(ctx, func() error {
		m, err := uc.settle(ctx, input)
		if err != nil {
			return err
		}

		movement = m

		return nil
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.MovementErrors.WithLabelValues(domain.CodeOf(err)).Inc()
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MovementsRegistered.WithLabelValues(string(movement.Direction)).Inc()
		uc.metrics.MovementDuration.Observe(time.Since(start).Seconds())
		uc.metrics.MovementAmount.Observe(movement.Amount.Abs().InexactFloat64())
		uc.metrics.LedgerEntriesWritten.Inc()
	}

	uc.logger.Info().
		Int64("movement_id", movement.ID).
		Int64("account_id", movement.AccountID).
		Str("amount", movement.Amount.String()).
		Str("resulting_balance", movement.ResultingBalance.String()).
		Msg("movement registered")

	return movement, nil
}

func (uc *MovementUseCase) settle(ctx context.Context, input RegisterMovementInput) (*domain.Movement, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Row lock serializes concurrent movements against the same account.
	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateMovement(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	balanceBefore := account.Balance
	candidate := account.CandidateBalance(input.Amount)
	direction := domain.DirectionOf(input.Amount)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, candidate, now); err != nil {
		return nil, err
	}

	movement := &domain.Movement{
		AccountID:        account.ID,
		Amount:           input.Amount,
		ResultingBalance: candidate,
		OccurredAt:       now,
		Direction:        direction,
	}

	movementID, err := uc.movementRepo.Create(ctx, tx, movement)
	if err != nil {
		return nil, err
	}

	movement.ID = movementID

	entry := &domain.LedgerEntry{
		Timestamp:     now,
		MovementID:    movementID,
		AccountID:     account.ID,
		EntryType:     direction,
		Amount:        input.Amount.Abs(),
		BalanceBefore: balanceBefore,
		BalanceAfter:  candidate,
		Description: fmt.Sprintf("%s of %s on account %s",
			direction, input.Amount.Abs(), account.AccountNumber),
		InitiatedBy: InitiatedBySystem,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.ledgerRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return movement, nil
}

// GetMovement retrieves a movement by ID.
func (uc *MovementUseCase) GetMovement(ctx context.Context, id int64) (*domain.Movement, error) {
	return uc.movementRepo.GetByID(ctx, id)
}

// ListMovementsInput represents input for listing movements.
type ListMovementsInput struct {
	AccountID int64
	Limit     int
	Offset    int
}

// ListMovementsByAccount lists movements for an account.
func (uc *MovementUseCase) ListMovementsByAccount(ctx context.Context, input ListMovementsInput) ([]*domain.Movement, error) {
	input.Limit, input.Offset = clampPagination(input.Limit, input.Offset)

	return uc.movementRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

// ListMovements lists all movements.
func (uc *MovementUseCase) ListMovements(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	limit, offset = clampPagination(limit, offset)

	return uc.movementRepo.List(ctx, limit, offset)
}

// DeleteMovement hard-deletes a movement row. This is a corrective,
// administrative operation: the corresponding ledger entry stays in place
// as the audit trail and no balance is reconciled.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id int64) error {
	if _, err := uc.movementRepo.GetByID(ctx, id); err != nil {
		return err
	}

	uc.logger.Warn().
		Int64("movement_id", id).
		Msg("deleting movement; its ledger entry is kept and balances are not reconciled")

	if err := uc.movementRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.MovementsDeleted.Inc()
	}

	return nil
}

func clampPagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}

	if limit > 100 {
		limit = 100
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
