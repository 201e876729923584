package handlers

import (
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/service"
	"github.com/papertrade/dashboard-backend/internal/validation"
)

// TradeHandler handles HTTP requests for stock and crypto trades.
type TradeHandler struct {
	portfolioService *service.PortfolioService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependency.
func NewTradeHandler(portfolioService *service.PortfolioService) *TradeHandler {
	return &TradeHandler{
		portfolioService: portfolioService,
	}
}

// TradeStock handles POST requests to buy or sell shares of a stock at its
// current simulated price.
//
// Endpoint: POST /api/trade/stock
// Request Body: TradeRequest (symbol, quantity, side)
// Response: 201 Created with the executed EquityTransaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the symbol is not in the catalog
// Error: 422 Unprocessable Entity on insufficient funds or holdings
func (h *TradeHandler) TradeStock(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	txn, err := h.portfolioService.TradeStock(req.Symbol, req.Quantity, req.Side)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, txn)
}

// TradeCrypto handles POST requests to buy or sell an amount of a
// cryptocurrency at its current simulated price.
//
// Endpoint: POST /api/trade/crypto
// Request Body: TradeRequest (symbol, quantity, side)
// Response: 201 Created with the executed CryptoTransaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the symbol is not in the catalog
// Error: 422 Unprocessable Entity on insufficient funds or holdings
func (h *TradeHandler) TradeCrypto(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.TradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	txn, err := h.portfolioService.TradeCrypto(req.Symbol, req.Quantity, req.Side)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, txn)
}
