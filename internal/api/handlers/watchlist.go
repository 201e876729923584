package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/papertrade/dashboard-backend/internal/service"
)

// WatchlistHandler handles HTTP requests for the user's stock watchlist.
type WatchlistHandler struct {
	portfolioService *service.PortfolioService
}

// NewWatchlistHandler creates a new WatchlistHandler with the provided service dependency.
func NewWatchlistHandler(portfolioService *service.PortfolioService) *WatchlistHandler {
	return &WatchlistHandler{
		portfolioService: portfolioService,
	}
}

// Watchlist handles GET requests for the tracked symbol list.
//
// Endpoint: GET /api/watchlist
func (h *WatchlistHandler) Watchlist(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Watchlist())
}

// Add handles POST requests to add a symbol to the watchlist.
// Adding a symbol that is already tracked is a no-op.
//
// Endpoint: POST /api/watchlist/{symbol}
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	h.portfolioService.AddToWatchlist(symbol)
	respondJSON(w, http.StatusOK, h.portfolioService.Watchlist())
}

// Remove handles DELETE requests to drop a symbol from the watchlist.
//
// Endpoint: DELETE /api/watchlist/{symbol}
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	h.portfolioService.RemoveFromWatchlist(symbol)
	respondJSON(w, http.StatusOK, h.portfolioService.Watchlist())
}
