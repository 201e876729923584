package classifier_test

import (
	"context"
	"testing"

	"github.com/papertrade/dashboard-backend/internal/classifier"
)

// TestKeywordClassifier tests the offline fallback classifier.
func TestKeywordClassifier(t *testing.T) {
	c := classifier.NewKeyword()

	tests := []struct {
		name         string
		subject      string
		message      string
		wantCategory string
		wantPriority string
	}{
		{
			name:         "locked out of account",
			subject:      "Cannot log in",
			message:      "My account is locked after too many password attempts.",
			wantCategory: "Account Access",
			wantPriority: classifier.PriorityHigh,
		},
		{
			name:         "billing question",
			subject:      "Double charge",
			message:      "I was charged twice for the same deposit, please refund one.",
			wantCategory: "Billing",
			wantPriority: classifier.PriorityHigh,
		},
		{
			name:         "trading question",
			subject:      "Question about orders",
			message:      "Why did my stock order execute at a different quote?",
			wantCategory: "Trading",
			wantPriority: classifier.PriorityMedium,
		},
		{
			name:         "technical issue",
			subject:      "Dashboard problem",
			message:      "The valuation page shows an error after the last update.",
			wantCategory: "Technical Support",
			wantPriority: classifier.PriorityMedium,
		},
		{
			name:         "no keywords",
			subject:      "Great product",
			message:      "Just wanted to say the dashboard looks wonderful.",
			wantCategory: "General Feedback",
			wantPriority: classifier.PriorityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(context.Background(), classifier.Inquiry{
				Subject: tt.subject,
				Message: tt.message,
			})
			if err != nil {
				t.Fatalf("Classify() returned unexpected error: %v", err)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Expected category %q, got %q", tt.wantCategory, got.Category)
			}
			if got.Priority != tt.wantPriority {
				t.Errorf("Expected priority %q, got %q", tt.wantPriority, got.Priority)
			}
		})
	}
}

// TestNewFromEnv tests classifier selection.
func TestNewFromEnv(t *testing.T) {
	c, err := classifier.NewFromEnv(context.Background(), "", "gemini-2.0-flash")
	if err != nil {
		t.Fatalf("NewFromEnv() returned unexpected error: %v", err)
	}
	if _, ok := c.(*classifier.KeywordClassifier); !ok {
		t.Errorf("Expected keyword fallback without API key, got %T", c)
	}
}
