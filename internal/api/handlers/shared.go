package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/apperrors"
)

// respondJSON is shorthand for response.RespondJSON.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}

// parseJSON decodes a request body into the given request type.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

// respondTradeError maps ledger errors onto HTTP statuses: malformed input
// to 400, business-rule rejections to 422, unknown instruments and records
// to 404, anything else to 500.
func respondTradeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidQuantity),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInvalidTradeSide):
		response.RespondError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrInsufficientHoldings):
		response.RespondError(w, http.StatusUnprocessableEntity, err.Error(), "")
	case errors.Is(err, apperrors.ErrInstrumentNotFound),
		errors.Is(err, apperrors.ErrFundNotFound),
		errors.Is(err, apperrors.ErrHoldingNotFound),
		errors.Is(err, apperrors.ErrSavingsPlanNotFound):
		response.RespondError(w, http.StatusNotFound, err.Error(), "")
	default:
		response.RespondError(w, http.StatusInternalServerError, "trade failed", err.Error())
	}
}
