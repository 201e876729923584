package classifier

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const classifyPrompt = `You are an AI assistant for a financial investment platform. Your task is to analyze an incoming user inquiry from a contact form and categorize it.

Analyze the provided message details:
- From: %s <%s>
- Subject: %s
- Message: %s

Determine a category for the inquiry (e.g., Billing, Technical Support, General Feedback, Account Access, Trading) and assign a priority level of Low, Medium, or High. Account-access and money-movement problems are High priority; product questions and feedback are Low.`

// GeminiClassifier categorizes inquiries with a single structured
// GenerateContent call.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// NewGemini creates a GeminiClassifier using the given API key and model.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClassifier{client: client, model: model}, nil
}

// Classify asks the model for a category and priority, constrained to a JSON
// response schema so the output always decodes into a Classification.
func (c *GeminiClassifier) Classify(ctx context.Context, inquiry Inquiry) (Classification, error) {
	prompt := fmt.Sprintf(classifyPrompt, inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category": {
					Type:        genai.TypeString,
					Description: "The determined category of the inquiry (e.g., Billing, Technical Support, General Feedback).",
				},
				"priority": {
					Type:        genai.TypeString,
					Enum:        []string{PriorityLow, PriorityMedium, PriorityHigh},
					Description: "The assigned priority level.",
				},
			},
			Required: []string{"category", "priority"},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to generate classification: %w", err)
	}

	var result Classification
	if err := json.Unmarshal([]byte(resp.Text()), &result); err != nil {
		return Classification{}, fmt.Errorf("failed to decode classification: %w", err)
	}
	return result, nil
}
