package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/service"
	"github.com/papertrade/dashboard-backend/internal/validation"
)

// SavingsPlanHandler handles HTTP requests for savings plans.
type SavingsPlanHandler struct {
	portfolioService *service.PortfolioService
}

// NewSavingsPlanHandler creates a new SavingsPlanHandler with the provided service dependency.
func NewSavingsPlanHandler(portfolioService *service.PortfolioService) *SavingsPlanHandler {
	return &SavingsPlanHandler{
		portfolioService: portfolioService,
	}
}

// Plans handles GET requests for all savings plan records.
//
// Endpoint: GET /api/savings-plans
func (h *SavingsPlanHandler) Plans(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Snapshot().SavingsPlans)
}

// Create handles POST requests to create a savings plan. The plan's amount
// is invested immediately as an equity buy at the stock's current price;
// the plan record exists only if that trade succeeded.
//
// Endpoint: POST /api/savings-plans
// Request Body: SavingsPlanRequest (name, stockSymbol, amount)
// Response: 201 Created with the SavingsPlan
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the stock symbol is not in the catalog
// Error: 422 Unprocessable Entity on insufficient funds
func (h *SavingsPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SavingsPlanRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSavingsPlan(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	plan, err := h.portfolioService.CreateSavingsPlan(req.Name, req.StockSymbol, req.Amount)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, plan)
}

// Delete handles DELETE requests to remove a savings plan record. The
// position bought at creation is kept and sold through the stock endpoints.
//
// Endpoint: DELETE /api/savings-plans/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the plan ID is invalid (validated by middleware)
// Error: 404 Not Found if the plan does not exist
func (h *SavingsPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	if err := h.portfolioService.RemoveSavingsPlan(planID); err != nil {
		respondTradeError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
