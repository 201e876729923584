package validation

import (
	"net/mail"
	"strings"

	"github.com/papertrade/dashboard-backend/internal/api/request"
)

// Message length bounds for contact inquiries.
const (
	minNameLen    = 2
	minSubjectLen = 5
	minMessageLen = 10
	maxMessageLen = 500
)

// ValidateContact validates a contact-form submission.
//
// Required fields:
//   - name: at least 2 characters
//   - email: valid address
//   - subject: at least 5 characters
//   - message: between 10 and 500 characters
func ValidateContact(req request.ContactRequest) error {
	errors := make(map[string]string)

	if len(strings.TrimSpace(req.Name)) < minNameLen {
		errors["name"] = "name must be at least 2 characters"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		errors["email"] = "please enter a valid email"
	}
	if len(strings.TrimSpace(req.Subject)) < minSubjectLen {
		errors["subject"] = "subject must be at least 5 characters"
	}
	msg := strings.TrimSpace(req.Message)
	if len(msg) < minMessageLen {
		errors["message"] = "message must be at least 10 characters"
	} else if len(msg) > maxMessageLen {
		errors["message"] = "message cannot exceed 500 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateProfile validates a profile update request.
func ValidateProfile(req request.ProfileRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		errors["email"] = "please enter a valid email"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
