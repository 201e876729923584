// Package classifier categorizes contact-form inquiries. The primary
// implementation asks Gemini for a structured category and priority; a
// keyword fallback keeps the endpoint working without an API key.
package classifier

import "context"

// Inquiry is a submitted contact-form message.
type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Priority levels assigned to inquiries.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Classification is the result of categorizing an inquiry.
type Classification struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// Classifier assigns a category and priority to an inquiry. Implementations
// are stateless; a failure never affects ledger state.
type Classifier interface {
	Classify(ctx context.Context, inquiry Inquiry) (Classification, error)
}
