// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides access to the corpus_stats snapshot
// table. Snapshots are append-only: a refresher inserts a new row and
// readers take the latest one.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-ecli-dashboard/internal/domain"
)

// LatestSnapshot returns the most recently inserted corpus_stats row, or
// (nil, nil) when the table is empty. On DB error, it returns the error.
func LatestSnapshot(ctx context.Context, db *gorm.DB) (*domain.CorpusStats, error) {
	var s domain.CorpusStats
	err := db.WithContext(ctx).Order("id DESC").First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// InsertSnapshot appends a corpus_stats row. The caller is responsible for
// the row's internal consistency (bucket counts summing to the total).
func InsertSnapshot(ctx context.Context, db *gorm.DB, s *domain.CorpusStats) error {
	return db.WithContext(ctx).Create(s).Error
}
