package handlers

import (
	"net/http"

	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/api/response"
	"github.com/papertrade/dashboard-backend/internal/classifier"
	"github.com/papertrade/dashboard-backend/internal/service"
	"github.com/papertrade/dashboard-backend/internal/validation"
)

// ContactHandler handles HTTP requests for contact-form submissions.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler with the provided service dependency.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles POST requests for contact-form submissions. The inquiry is
// classified into a support category and priority, which are returned to the
// caller alongside a confirmation.
//
// Endpoint: POST /api/contact
// Request Body: ContactRequest (name, email, subject, message)
// Response: 200 OK with the classification
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 502 Bad Gateway if classification fails
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ContactRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateContact(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.contactService.SubmitInquiry(r.Context(), classifier.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, "Error classifying inquiry", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "received",
		"category": result.Category,
		"priority": result.Priority,
	})
}
