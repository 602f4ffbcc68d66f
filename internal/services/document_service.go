// Package services – DocumentService
//
// This file implements the DocumentService, which serves the document query
// surface: grouped distributions (by court, by year), the joined metrics
// view, recent listings, filtered search, and the per-document detail view.
// The service validates caller-supplied limits and filters and applies the
// deterministic orderings the API promises; SQL composition lives in the
// repo package.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecli-dashboard/internal/domain"
	"github.com/tbourn/go-ecli-dashboard/internal/repo"
)

// Default result caps. DefaultRecentLimit and DefaultSearchLimit apply when
// the caller supplies no limit; MetricsCap bounds the scatter view payload.
const (
	DefaultRecentLimit = 10
	DefaultSearchLimit = 50
	DefaultMetricsCap  = 1000
)

// DocumentDetail is the joined view of a document and its optional metrics
// row. Metrics-dependent fields are nil (JSON null) when the document has no
// metrics; PDFMetadata is additionally nil when the stored blob is malformed.
type DocumentDetail struct {
	domain.Document
	PageCount    *int                `json:"page_count"`
	FileSize     *int64              `json:"file_size"`
	DocumentDate *string             `json:"document_date"`
	Language     *string             `json:"language"`
	Judge        *string             `json:"judge"`
	PDFMetadata  *domain.PDFMetadata `json:"pdf_metadata"`
}

// DocumentService implements the document query use-cases. It is stateless
// between calls and safe for concurrent use.
type DocumentService struct {
	// DB is the database handle used for all document queries.
	DB *gorm.DB
	// MetricsCap bounds the metrics view; zero means DefaultMetricsCap.
	MetricsCap int
}

// ByCourt returns the per-court document counts ordered by count descending,
// ties broken by court key ascending under Portuguese collation.
func (s *DocumentService) ByCourt(ctx context.Context) ([]repo.KeyCount, error) {
	buckets, err := repo.GroupDocuments(ctx, s.DB, "court")
	if err != nil {
		return nil, err
	}
	// Collators are not safe for concurrent use; build one per call.
	col := collate.New(language.Portuguese)
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return col.CompareString(buckets[i].Key, buckets[j].Key) < 0
	})
	return buckets, nil
}

// ByYear returns the per-year document counts ordered by count descending,
// ties broken by year ascending numerically. The Unknown bucket sorts after
// all numeric years.
func (s *DocumentService) ByYear(ctx context.Context) ([]repo.KeyCount, error) {
	buckets, err := repo.GroupDocuments(ctx, s.DB, "year")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return lessYearKey(buckets[i].Key, buckets[j].Key)
	})
	return buckets, nil
}

// MetricsView returns the joined scatter-plot rows for every document that
// has a metrics row, capped at MetricsCap entries.
func (s *DocumentService) MetricsView(ctx context.Context) ([]repo.MetricsRow, error) {
	limit := s.MetricsCap
	if limit <= 0 {
		limit = DefaultMetricsCap
	}
	return repo.ListMetricsRows(ctx, s.DB, limit)
}

// Recent returns up to limit documents ordered by added_date descending,
// ties by ecli_id descending. A non-positive limit is rejected with
// ErrInvalidParameter; callers resolve defaults before calling.
func (s *DocumentService) Recent(ctx context.Context, limit int) ([]repo.DocumentSummary, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer", ErrInvalidParameter)
	}
	return repo.ListRecent(ctx, s.DB, limit)
}

// Search returns up to limit documents matching every supplied filter,
// ordered like Recent. An empty filter set returns the most recent
// documents. MinPages/MaxPages must be non-negative and form a valid range.
func (s *DocumentService) Search(ctx context.Context, f repo.SearchFilter, limit int) ([]repo.DocumentSummary, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer", ErrInvalidParameter)
	}
	if f.MinPages != nil && *f.MinPages < 0 {
		return nil, fmt.Errorf("%w: min_pages must not be negative", ErrInvalidParameter)
	}
	if f.MaxPages != nil && *f.MaxPages < 0 {
		return nil, fmt.Errorf("%w: max_pages must not be negative", ErrInvalidParameter)
	}
	if f.MinPages != nil && f.MaxPages != nil && *f.MinPages > *f.MaxPages {
		return nil, fmt.Errorf("%w: min_pages exceeds max_pages", ErrInvalidParameter)
	}
	return repo.SearchDocuments(ctx, s.DB, f, limit)
}

// Detail returns the joined detail record for the document with the given
// ECLI identifier. A missing document yields ErrDocumentNotFound; a missing
// metrics row or malformed pdf_metadata blob degrades to null fields.
func (s *DocumentService) Detail(ctx context.Context, ecliID string) (*DocumentDetail, error) {
	doc, err := repo.GetDocumentByECLI(ctx, s.DB, ecliID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	detail := &DocumentDetail{Document: *doc}

	m, err := repo.GetMetricsForDocument(ctx, s.DB, doc.ID)
	if err != nil {
		return nil, err
	}
	if m != nil {
		detail.PageCount = &m.PageCount
		detail.FileSize = &m.FileSize
		detail.DocumentDate = &m.DocumentDate
		detail.Language = &m.Language
		detail.Judge = &m.Judge
		detail.PDFMetadata = m.ParsePDFMetadata()
	}
	return detail, nil
}

// lessYearKey orders year bucket keys ascending numerically, with
// non-numeric keys (the Unknown bucket) after all numeric ones.
func lessYearKey(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
