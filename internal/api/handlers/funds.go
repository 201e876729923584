package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/market"
	"github.com/papertrade/dashboard-backend/internal/service"
	"github.com/papertrade/dashboard-backend/internal/validation"
)

// FundHandler handles HTTP requests for the mutual fund catalog and fund trades.
type FundHandler struct {
	portfolioService *service.PortfolioService
	market           *market.Market
}

// NewFundHandler creates a new FundHandler with the provided dependencies.
func NewFundHandler(portfolioService *service.PortfolioService, m *market.Market) *FundHandler {
	return &FundHandler{
		portfolioService: portfolioService,
		market:           m,
	}
}

// Funds handles GET requests for the fund catalog with latest NAVs.
//
// Endpoint: GET /api/funds
// Response: 200 OK with array of MutualFund
func (h *FundHandler) Funds(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.market.Funds())
}

// Invest handles POST requests to invest a monetary amount into a fund at
// its current NAV.
//
// Endpoint: POST /api/funds/invest
// Request Body: FundInvestRequest (fundId, amount)
// Response: 201 Created with the executed FundTransaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the fund is not in the catalog
// Error: 422 Unprocessable Entity on insufficient funds
func (h *FundHandler) Invest(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.FundInvestRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateFundInvest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	txn, err := h.portfolioService.InvestInFund(req.FundID, req.Amount)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, txn)
}

// Sell handles POST requests to liquidate an entire fund holding at the
// current NAV. Partial redemption is not supported.
//
// Endpoint: POST /api/funds/{fundId}/sell
// Response: 201 Created with the executed FundTransaction
// Error: 404 Not Found if the fund or its holding does not exist
func (h *FundHandler) Sell(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	txn, err := h.portfolioService.SellFund(fundID)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, txn)
}
