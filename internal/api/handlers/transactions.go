package handlers

import (
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/service"
)

// TransactionHandler handles HTTP requests for transaction history.
// Per-asset-class logs are served as stored; the unified feed is a derived
// projection recomputed on every request.
type TransactionHandler struct {
	portfolioService *service.PortfolioService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(portfolioService *service.PortfolioService) *TransactionHandler {
	return &TransactionHandler{
		portfolioService: portfolioService,
	}
}

// AllTransactions handles GET requests for the unified transaction feed
// across all asset classes, sorted newest first.
//
// Endpoint: GET /api/transactions
// Response: 200 OK with array of UnifiedTransaction
func (h *TransactionHandler) AllTransactions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.AllTransactions())
}

// StockTransactions handles GET requests for the equity trade log.
//
// Endpoint: GET /api/transactions/stock
func (h *TransactionHandler) StockTransactions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Snapshot().EquityTransactions)
}

// CryptoTransactions handles GET requests for the crypto trade log.
//
// Endpoint: GET /api/transactions/crypto
func (h *TransactionHandler) CryptoTransactions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Snapshot().CryptoTransactions)
}

// FundTransactions handles GET requests for the fund trade log.
//
// Endpoint: GET /api/transactions/fund
func (h *TransactionHandler) FundTransactions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Snapshot().FundTransactions)
}

// GoldTransactions handles GET requests for the gold trade log.
//
// Endpoint: GET /api/transactions/gold
func (h *TransactionHandler) GoldTransactions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Snapshot().GoldTransactions)
}
