package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/corebank/accounts/internal/adapter/http/dto"
	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	GetAccountLedger(ctx context.Context, input usecase.GetAccountLedgerInput) ([]*domain.LedgerEntry, error)
	GetAccountLedgerByDateRange(ctx context.Context, accountID int64, start, end time.Time) ([]*domain.LedgerEntry, error)
	GetEntriesByMovement(ctx context.Context, movementID int64) ([]*domain.LedgerEntry, error)
	CountAccountEntries(ctx context.Context, accountID int64) (int64, error)
	VerifyAccountChain(ctx context.Context, accountID int64) error
}

// LedgerHandler handles ledger query HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// ListByAccount lists ledger entries for an account. When from/to query
// parameters are given the listing switches to a date range.
func (h *LedgerHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", "")
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	var entries []*domain.LedgerEntry

	if from != "" || to != "" {
		start, end, err := parseDateRange(from, to)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date range", err.Error())
			return
		}

		entries, err = h.ledgerUC.GetAccountLedgerByDateRange(r.Context(), accountID, start, end)
		if err != nil {
			writeDomainError(w, err, "failed to list ledger entries")
			return
		}
	} else {
		entries, err = h.ledgerUC.GetAccountLedger(r.Context(), usecase.GetAccountLedgerInput{
			AccountID: accountID,
			Limit:     parseIntQuery(r, "limit", 20),
			Offset:    parseIntQuery(r, "offset", 0),
		})
		if err != nil {
			writeDomainError(w, err, "failed to list ledger entries")
			return
		}
	}

	total, err := h.ledgerUC.CountAccountEntries(r.Context(), accountID)
	if err != nil {
		writeDomainError(w, err, "failed to count ledger entries")
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLedgerEntriesResponse{
		Entries: dto.LedgerEntriesFromDomain(entries),
		Total:   total,
	})
}

// ListByMovement lists the ledger entries recorded for a movement.
func (h *LedgerHandler) ListByMovement(w http.ResponseWriter, r *http.Request) {
	movementID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movement ID", "")
		return
	}

	entries, err := h.ledgerUC.GetEntriesByMovement(r.Context(), movementID)
	if err != nil {
		writeDomainError(w, err, "failed to list ledger entries")
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLedgerEntriesResponse{
		Entries: dto.LedgerEntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}

// VerifyChain checks the balance chain of an account's ledger.
func (h *LedgerHandler) VerifyChain(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", "")
		return
	}

	err = h.ledgerUC.VerifyAccountChain(r.Context(), accountID)
	if err != nil && !errors.Is(err, usecase.ErrInconsistentLedger) {
		writeDomainError(w, err, "failed to verify ledger chain")
		return
	}

	writeJSON(w, http.StatusOK, dto.ChainVerificationResponse{
		AccountID:  accountID,
		Consistent: err == nil,
	})
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	// End of day, inclusive.
	end = end.Add(24*time.Hour - time.Nanosecond)

	return start, end, nil
}
