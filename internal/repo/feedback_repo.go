// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// UserFeedback model.
//
// The repository follows a "thin" approach: it performs persistence only,
// leaving validation (rating range, required fields) to the services
// package. Feedback is append-only; rows are never updated or deleted.
//
// Functions:
//
//   - CreateFeedback(ctx, db, fb) -> error
//     Inserts a feedback row. The insert is a single statement and is
//     therefore atomic: either the full row is persisted or nothing is.
//
//   - CountFeedback(ctx, db) -> (int64, error)
//     Total number of feedback rows (used by tests and ops tooling).
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-ecli-dashboard/internal/domain"
)

// CreateFeedback inserts a feedback row. SubmittedAt and UserAgent are
// expected to be filled in by the caller (the feedback service).
//
// On success, it returns nil. On failure, it returns a DB error and no
// partial row is persisted.
func CreateFeedback(ctx context.Context, db *gorm.DB, fb *domain.UserFeedback) error {
	return db.WithContext(ctx).Create(fb).Error
}

// CountFeedback returns the total number of feedback rows.
func CountFeedback(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.UserFeedback{}).Count(&total).Error
	return total, err
}
