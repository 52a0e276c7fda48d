package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/corebank/accounts/internal/adapter/http/dto"
	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	BuildStatement(ctx context.Context, input usecase.BuildStatementInput) (*domain.Statement, error)
}

// StatementHandler handles statement report HTTP requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Generate builds a statement report for a customer or a single account
// over a date range. Query parameters: customer_id or account_number,
// plus start and end dates.
func (h *StatementHandler) Generate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, end, err := parseDateRange(query.Get("start"), query.Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	input := usecase.BuildStatementInput{
		AccountNumber: query.Get("account_number"),
		StartDate:     start,
		EndDate:       end,
	}

	if raw := query.Get("customer_id"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid customer ID", "")
			return
		}

		input.CustomerID = &customerID
	}

	statement, err := h.statementUC.BuildStatement(r.Context(), input)
	if err != nil {
		writeDomainError(w, err, "failed to build statement")
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}
