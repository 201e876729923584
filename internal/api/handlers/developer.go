package handlers

import (
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/service"
)

// DeveloperHandler handles HTTP requests for developer endpoints. These sit
// behind the API-key middleware and are not part of the public surface.
type DeveloperHandler struct {
	portfolioService *service.PortfolioService
}

// NewDeveloperHandler creates a new DeveloperHandler with the provided service dependency.
func NewDeveloperHandler(portfolioService *service.PortfolioService) *DeveloperHandler {
	return &DeveloperHandler{
		portfolioService: portfolioService,
	}
}

// ResetState handles POST requests to wipe all persisted ledger state and
// restore the seeded defaults.
//
// Endpoint: POST /api/developer/state/reset
// Response: 200 OK with the reseeded snapshot
// Error: 500 Internal Server Error if the stored state cannot be cleared
func (h *DeveloperHandler) ResetState(w http.ResponseWriter, _ *http.Request) {
	if err := h.portfolioService.ResetState(); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to reset state", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.portfolioService.Snapshot())
}
