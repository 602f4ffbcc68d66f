// Package services – StatsService
//
// This file implements the StatsService, which serves corpus-wide
// statistics: total document count, page and byte sums, and the per-court /
// per-year distributions. The service reads the latest materialized
// corpus_stats snapshot when one exists and is internally consistent, and
// otherwise recomputes the statistics live inside a single read transaction
// so that the totals and the bucket breakdowns always describe one logical
// snapshot of the store.
package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-ecli-dashboard/internal/domain"
	"github.com/tbourn/go-ecli-dashboard/internal/repo"
)

// CorpusStatsView is the served form of corpus statistics. Courts and Years
// map bucket keys (including domain.UnknownBucket) to document counts.
type CorpusStatsView struct {
	TotalDocuments int64            `json:"total_documents"`
	TotalPages     int64            `json:"total_pages"`
	TotalSizeBytes int64            `json:"total_size_bytes"`
	Courts         map[string]int64 `json:"courts"`
	Years          map[string]int64 `json:"years"`
	GeneratedAt    string           `json:"generated_at"`
}

// StatsService serves corpus statistics.
//
// When FromSnapshot is true, Corpus prefers the latest corpus_stats row and
// falls back to a live recompute when the snapshot is missing, malformed, or
// inconsistent (bucket counts not summing to the total). When false, every
// call recomputes live. Both strategies produce the same view semantics.
type StatsService struct {
	// DB is the database handle used for all statistics queries.
	DB *gorm.DB
	// FromSnapshot enables the snapshot-first read path.
	FromSnapshot bool
}

// Corpus returns the current corpus statistics. The call has no side
// effects and is idempotent against an unmodified store.
func (s *StatsService) Corpus(ctx context.Context) (*CorpusStatsView, error) {
	if s.FromSnapshot {
		if v, ok, err := s.fromSnapshot(ctx); err != nil {
			return nil, err
		} else if ok {
			return v, nil
		}
	}
	return s.Compute(ctx)
}

// fromSnapshot loads the latest snapshot row and validates it. ok is false
// when no usable snapshot exists; the caller then recomputes live.
func (s *StatsService) fromSnapshot(ctx context.Context) (*CorpusStatsView, bool, error) {
	row, err := repo.LatestSnapshot(ctx, s.DB)
	if err != nil {
		return nil, false, err
	}
	if row == nil {
		return nil, false, nil
	}

	courts, ok := row.ParseCourts()
	if !ok {
		return nil, false, nil
	}
	years, ok := row.ParseYears()
	if !ok {
		return nil, false, nil
	}
	if sumCounts(courts) != row.TotalDocuments || sumCounts(years) != row.TotalDocuments {
		// Stale or torn snapshot; recompute rather than serve it.
		return nil, false, nil
	}

	return &CorpusStatsView{
		TotalDocuments: row.TotalDocuments,
		TotalPages:     row.TotalPages,
		TotalSizeBytes: row.TotalSizeBytes,
		Courts:         courts,
		Years:          years,
		GeneratedAt:    row.GeneratedAt,
	}, true, nil
}

// Compute recomputes the statistics from the documents and document_metrics
// tables. All queries run inside one transaction so the totals and the
// bucket breakdowns cannot observe different states of a concurrently
// mutating store.
func (s *StatsService) Compute(ctx context.Context) (*CorpusStatsView, error) {
	var view CorpusStatsView
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total, err := repo.CountDocuments(ctx, tx)
		if err != nil {
			return err
		}
		pages, sizeBytes, err := repo.SumMetrics(ctx, tx)
		if err != nil {
			return err
		}
		courts, err := repo.GroupDocuments(ctx, tx, "court")
		if err != nil {
			return err
		}
		years, err := repo.GroupDocuments(ctx, tx, "year")
		if err != nil {
			return err
		}

		view = CorpusStatsView{
			TotalDocuments: total,
			TotalPages:     pages,
			TotalSizeBytes: sizeBytes,
			Courts:         toCountMap(courts),
			Years:          toCountMap(years),
			GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Materialize recomputes the statistics and appends them as a corpus_stats
// snapshot row. Used by the seeding tooling and external refreshers; the
// read path never writes.
func (s *StatsService) Materialize(ctx context.Context) (*CorpusStatsView, error) {
	view, err := s.Compute(ctx)
	if err != nil {
		return nil, err
	}

	courtsJSON, err := json.Marshal(view.Courts)
	if err != nil {
		return nil, err
	}
	yearsJSON, err := json.Marshal(view.Years)
	if err != nil {
		return nil, err
	}

	row := &domain.CorpusStats{
		TotalDocuments: view.TotalDocuments,
		TotalPages:     view.TotalPages,
		TotalSizeBytes: view.TotalSizeBytes,
		Courts:         string(courtsJSON),
		Years:          string(yearsJSON),
		GeneratedAt:    view.GeneratedAt,
	}
	if err := repo.InsertSnapshot(ctx, s.DB, row); err != nil {
		return nil, err
	}
	return view, nil
}

func toCountMap(buckets []repo.KeyCount) map[string]int64 {
	m := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		m[b.Key] = b.Count
	}
	return m
}

func sumCounts(m map[string]int64) int64 {
	var total int64
	for _, n := range m {
		total += n
	}
	return total
}
