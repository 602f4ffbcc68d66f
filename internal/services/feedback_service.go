// Package services – FeedbackService
//
// This file implements the FeedbackService, which validates and persists
// user feedback about a document or the dashboard as a whole. Validation
// failures are reported through ErrInvalidParameter and never leave a
// partial row behind; the insert itself is a single atomic statement.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-ecli-dashboard/internal/domain"
	"github.com/tbourn/go-ecli-dashboard/internal/repo"
)

// FeedbackInput carries a feedback submission. DocumentID may be an ECLI
// identifier or domain.DashboardFeedbackID; it is deliberately not checked
// against the documents table, so feedback on not-yet-indexed documents
// succeeds. UserAgent is captured by the HTTP boundary and may be empty.
type FeedbackInput struct {
	DocumentID string
	Type       string
	Rating     int
	Comment    string
	UserAgent  string
}

// FeedbackService implements the feedback submission use-case. It is
// stateless between calls and safe for concurrent use.
type FeedbackService struct {
	// DB is the database handle used for all feedback operations.
	DB *gorm.DB
}

// Submit validates the input and persists a feedback row with SubmittedAt
// set to the current UTC time.
//
// Semantics and validation:
//   - DocumentID and Type are required, non-empty strings.
//   - Rating must lie in [1,5].
//   - Comment is optional free text.
//   - Validation failures return ErrInvalidParameter (wrapped with a
//     descriptive message) and persist nothing.
//
// Errors:
//   - ErrInvalidParameter for the validation cases above.
//   - The underlying DB error for unexpected failures.
func (s *FeedbackService) Submit(ctx context.Context, in FeedbackInput) error {
	if strings.TrimSpace(in.DocumentID) == "" {
		return fmt.Errorf("%w: document_id is required", ErrInvalidParameter)
	}
	if strings.TrimSpace(in.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidParameter)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidParameter)
	}

	fb := &domain.UserFeedback{
		DocumentID:  strings.TrimSpace(in.DocumentID),
		Type:        strings.TrimSpace(in.Type),
		Rating:      in.Rating,
		Comment:     in.Comment,
		UserAgent:   in.UserAgent,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return repo.CreateFeedback(ctx, s.DB, fb)
}
