package handlers

import (
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/market"
	"github.com/papertrade/dashboard-backend/internal/service"
	"github.com/papertrade/dashboard-backend/internal/validation"
)

// GoldHandler handles HTTP requests for the gold balance and gold trades.
type GoldHandler struct {
	portfolioService *service.PortfolioService
	market           *market.Market
}

// NewGoldHandler creates a new GoldHandler with the provided dependencies.
func NewGoldHandler(portfolioService *service.PortfolioService, m *market.Market) *GoldHandler {
	return &GoldHandler{
		portfolioService: portfolioService,
		market:           m,
	}
}

// GoldResponse is the current gold position and price.
type GoldResponse struct {
	Grams        float64 `json:"grams"`
	PricePerGram float64 `json:"pricePerGram"`
}

// Balance handles GET requests for the gold balance and current price.
//
// Endpoint: GET /api/gold
func (h *GoldHandler) Balance(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, GoldResponse{
		Grams:        h.portfolioService.Snapshot().GoldGrams,
		PricePerGram: h.market.GoldPricePerGram(),
	})
}

// Transact handles POST requests to buy or sell grams of gold at the
// current price per gram.
//
// Endpoint: POST /api/gold
// Request Body: GoldTradeRequest (grams, side)
// Response: 201 Created with the executed GoldTransaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 422 Unprocessable Entity on insufficient funds or gold balance
func (h *GoldHandler) Transact(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.GoldTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateGoldTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	txn, err := h.portfolioService.TransactGold(req.Grams, req.Side)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, txn)
}
