package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/validation"
)

// TestValidateContact tests contact-form validation bounds.
func TestValidateContact(t *testing.T) {
	valid := request.ContactRequest{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Question about funds",
		Message: "How are fund units priced on redemption?",
	}

	t.Run("accepts a valid submission", func(t *testing.T) {
		if err := validation.ValidateContact(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects out-of-bounds fields", func(t *testing.T) {
		tests := []struct {
			name      string
			mutate    func(r *request.ContactRequest)
			wantField string
		}{
			{"short name", func(r *request.ContactRequest) { r.Name = "A" }, "name"},
			{"bad email", func(r *request.ContactRequest) { r.Email = "not-an-email" }, "email"},
			{"short subject", func(r *request.ContactRequest) { r.Subject = "Hi" }, "subject"},
			{"short message", func(r *request.ContactRequest) { r.Message = "Too short" }, "message"},
			{"long message", func(r *request.ContactRequest) { r.Message = strings.Repeat("x", 501) }, "message"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := valid
				tt.mutate(&req)

				var verr *validation.Error
				if err := validation.ValidateContact(req); !errors.As(err, &verr) {
					t.Fatalf("Expected validation.Error, got %v", err)
				} else if _, ok := verr.Fields[tt.wantField]; !ok {
					t.Errorf("Expected field error for %q, got %v", tt.wantField, verr.Fields)
				}
			})
		}
	})
}

// TestValidateProfile tests profile update validation.
func TestValidateProfile(t *testing.T) {
	if err := validation.ValidateProfile(request.ProfileRequest{Name: "Asha", Email: "asha@example.com"}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := validation.ValidateProfile(request.ProfileRequest{Name: "", Email: "bad"}); err == nil {
		t.Error("Expected error for empty name and bad email")
	}
}
