package classifier

import (
	"context"
	"log"
	"strings"
)

// KeywordClassifier is the offline fallback: a fixed keyword table over the
// subject and message. Used when no Gemini API key is configured.
type KeywordClassifier struct{}

// NewKeyword creates a KeywordClassifier.
func NewKeyword() *KeywordClassifier {
	return &KeywordClassifier{}
}

var keywordCategories = []struct {
	category string
	priority string
	keywords []string
}{
	{"Account Access", PriorityHigh, []string{"login", "password", "locked", "2fa", "access"}},
	{"Billing", PriorityHigh, []string{"bill", "charge", "payment", "refund", "invoice", "deposit", "withdraw"}},
	{"Trading", PriorityMedium, []string{"trade", "order", "buy", "sell", "stock", "crypto", "fund", "gold"}},
	{"Technical Support", PriorityMedium, []string{"error", "bug", "crash", "broken", "not working", "slow"}},
}

// Classify matches the inquiry against the keyword table; anything without a
// match is General Feedback at Low priority.
func (c *KeywordClassifier) Classify(_ context.Context, inquiry Inquiry) (Classification, error) {
	text := strings.ToLower(inquiry.Subject + " " + inquiry.Message)

	for _, entry := range keywordCategories {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return Classification{Category: entry.category, Priority: entry.priority}, nil
			}
		}
	}
	return Classification{Category: "General Feedback", Priority: PriorityLow}, nil
}

// NewFromEnv returns a GeminiClassifier when an API key is available and the
// keyword fallback otherwise.
func NewFromEnv(ctx context.Context, apiKey, model string) (Classifier, error) {
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, using keyword contact classifier")
		return NewKeyword(), nil
	}
	return NewGemini(ctx, apiKey, model)
}
