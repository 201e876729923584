package service

import (
	"context"
	"fmt"

	"github.com/papertrade/dashboard-backend/internal/classifier"
)

// ContactService handles contact-form submissions. It is stateless: the
// inquiry is classified and the result returned to the caller; nothing is
// written to the ledger.
type ContactService struct {
	classifier classifier.Classifier
}

// NewContactService creates a ContactService with the provided classifier.
func NewContactService(c classifier.Classifier) *ContactService {
	return &ContactService{classifier: c}
}

// SubmitInquiry classifies an inquiry into a category and priority.
func (s *ContactService) SubmitInquiry(ctx context.Context, inquiry classifier.Inquiry) (classifier.Classification, error) {
	result, err := s.classifier.Classify(ctx, inquiry)
	if err != nil {
		return classifier.Classification{}, fmt.Errorf("failed to classify inquiry: %w", err)
	}
	return result, nil
}
