package handlers

import (
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/model"
	"github.com/papertrade/dashboard-backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio state and valuation.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolioService.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// HoldingsResponse is the read model of all open positions.
type HoldingsResponse struct {
	Equities     []model.EquityHolding `json:"equities"`
	Cryptos      []model.CryptoHolding `json:"cryptos"`
	Funds        []model.FundHolding   `json:"funds"`
	GoldGrams    float64               `json:"goldGrams"`
	SavingsPlans []model.SavingsPlan   `json:"savingsPlans"`
}

// Holdings handles GET requests for the current portfolio snapshot.
//
// Endpoint: GET /api/portfolio
// Response: 200 OK with HoldingsResponse
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, _ *http.Request) {
	state := h.portfolioService.Snapshot()

	respondJSON(w, http.StatusOK, HoldingsResponse{
		Equities:     state.Equities,
		Cryptos:      state.Cryptos,
		Funds:        state.Funds,
		GoldGrams:    state.GoldGrams,
		SavingsPlans: state.SavingsPlans,
	})
}

// Valuation handles GET requests for the mark-to-market portfolio view,
// derived on demand from the latest oracle quotes.
//
// Endpoint: GET /api/portfolio/valuation
// Response: 200 OK with PortfolioValuation
func (h *PortfolioHandler) Valuation(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Valuation())
}
