package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/corebank/accounts/internal/adapter/http/dto"
	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
)

// MovementService defines the behavior needed by MovementHandler.
type MovementService interface {
	RegisterMovement(ctx context.Context, input usecase.RegisterMovementInput) (*domain.Movement, error)
	GetMovement(ctx context.Context, id int64) (*domain.Movement, error)
	ListMovementsByAccount(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error)
	ListMovements(ctx context.Context, limit, offset int) ([]*domain.Movement, error)
	DeleteMovement(ctx context.Context, id int64) error
}

// MovementHandler handles movement-related HTTP requests.
type MovementHandler struct {
	movementUC MovementService
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(movementUC MovementService) *MovementHandler {
	return &MovementHandler{movementUC: movementUC}
}

// Register registers a movement against an account.
func (h *MovementHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement payload", err.Error())
		return
	}

	movement, err := h.movementUC.RegisterMovement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to register movement")
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// Get retrieves a movement by ID.
func (h *MovementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement ID", "")
		return
	}

	movement, err := h.movementUC.GetMovement(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get movement")
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementFromDomain(movement))
}

// List lists movements, optionally narrowed to a single account.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	var (
		movements []*domain.Movement
		err       error
	)

	if accountID := parseIntQuery(r, "account_id", 0); accountID > 0 {
		movements, err = h.movementUC.ListMovementsByAccount(r.Context(), usecase.ListMovementsInput{
			AccountID: int64(accountID),
			Limit:     limit,
			Offset:    offset,
		})
	} else {
		movements, err = h.movementUC.ListMovements(r.Context(), limit, offset)
	}

	if err != nil {
		writeDomainError(w, err, "failed to list movements")
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMovementsResponse{
		Movements: dto.MovementsFromDomain(movements),
		Total:     int64(len(movements)),
	})
}

// ListByAccount lists movements for the account in the URL.
func (h *MovementHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", "")
		return
	}

	movements, err := h.movementUC.ListMovementsByAccount(r.Context(), usecase.ListMovementsInput{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, err, "failed to list movements")
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMovementsResponse{
		Movements: dto.MovementsFromDomain(movements),
		Total:     int64(len(movements)),
	})
}

// Delete removes a movement row. The ledger entry recorded for it stays.
func (h *MovementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement ID", "")
		return
	}

	if err := h.movementUC.DeleteMovement(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete movement")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
