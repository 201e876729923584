package handlers

import (
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/model"
	"github.com/papertrade/dashboard-backend/internal/service"
	"github.com/papertrade/dashboard-backend/internal/validation"
)

// ProfileHandler handles HTTP requests for the user profile.
type ProfileHandler struct {
	portfolioService *service.PortfolioService
}

// NewProfileHandler creates a new ProfileHandler with the provided service dependency.
func NewProfileHandler(portfolioService *service.PortfolioService) *ProfileHandler {
	return &ProfileHandler{
		portfolioService: portfolioService,
	}
}

// Profile handles GET requests for the current user profile.
//
// Endpoint: GET /api/profile
func (h *ProfileHandler) Profile(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Profile())
}

// Update handles PUT requests to replace the user profile.
//
// Endpoint: PUT /api/profile
// Request Body: ProfileRequest
// Response: 200 OK with the updated profile
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ProfileRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateProfile(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	h.portfolioService.UpdateProfile(model.UserProfile{
		Name:    req.Name,
		Email:   req.Email,
		Bio:     req.Bio,
		Phone:   req.Phone,
		Address: req.Address,
		Avatar:  req.Avatar,
	})

	respondJSON(w, http.StatusOK, h.portfolioService.Profile())
}
