package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/papertrade/dashboard-backend/internal/apperrors"
	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/market"
)

// MarketHandler handles HTTP requests for market data served from the
// simulated exchange catalog.
type MarketHandler struct {
	market *market.Market
}

// NewMarketHandler creates a new MarketHandler with the provided market dependency.
func NewMarketHandler(m *market.Market) *MarketHandler {
	return &MarketHandler{
		market: m,
	}
}

// Stocks handles GET requests for the full listed-stock catalog with
// current prices and intraday history.
//
// Endpoint: GET /api/market/stocks
func (h *MarketHandler) Stocks(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.market.Stocks())
}

// Stock handles GET requests for a single listed stock by symbol.
//
// Endpoint: GET /api/market/stocks/{symbol}
// Response: 200 OK with the stock, 404 if the symbol is not listed
func (h *MarketHandler) Stock(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	stock, err := h.market.Stock(symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrInstrumentNotFound) {
			response.RespondError(w, http.StatusNotFound, "Stock not found", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Error retrieving stock", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, stock)
}

// Cryptos handles GET requests for the cryptocurrency catalog.
//
// Endpoint: GET /api/market/cryptos
func (h *MarketHandler) Cryptos(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.market.Cryptos())
}

// Crypto handles GET requests for a single cryptocurrency by symbol.
//
// Endpoint: GET /api/market/cryptos/{symbol}
func (h *MarketHandler) Crypto(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	crypto, err := h.market.Crypto(symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrInstrumentNotFound) {
			response.RespondError(w, http.StatusNotFound, "Cryptocurrency not found", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Error retrieving cryptocurrency", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, crypto)
}

// GoldPrice handles GET requests for the current gold price per gram.
//
// Endpoint: GET /api/market/gold
func (h *MarketHandler) GoldPrice(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]float64{"pricePerGram": h.market.GoldPricePerGram()})
}
