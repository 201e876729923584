package handlers

import (
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/model"
	"github.com/papertrade/dashboard-backend/internal/service"
	"github.com/papertrade/dashboard-backend/internal/validation"
)

// WalletHandler handles HTTP requests for the wallet balance and deposits.
type WalletHandler struct {
	portfolioService *service.PortfolioService
}

// NewWalletHandler creates a new WalletHandler with the provided service dependency.
func NewWalletHandler(portfolioService *service.PortfolioService) *WalletHandler {
	return &WalletHandler{
		portfolioService: portfolioService,
	}
}

// WalletResponse is the wallet balance and its movement log.
type WalletResponse struct {
	Balance      float64                   `json:"balance"`
	Transactions []model.WalletTransaction `json:"transactions"`
}

// Wallet handles GET requests for the wallet balance and deposit history.
//
// Endpoint: GET /api/wallet
func (h *WalletHandler) Wallet(w http.ResponseWriter, _ *http.Request) {
	state := h.portfolioService.Snapshot()
	respondJSON(w, http.StatusOK, WalletResponse{
		Balance:      state.Balance,
		Transactions: state.WalletTransactions,
	})
}

// Deposit handles POST requests to add funds to the wallet.
//
// Endpoint: POST /api/wallet/deposit
// Request Body: DepositRequest (amount)
// Response: 201 Created with the WalletTransaction
// Error: 400 Bad Request if the amount is not a positive number
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.DepositRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateDeposit(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	txn, err := h.portfolioService.Deposit(req.Amount)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, txn)
}
