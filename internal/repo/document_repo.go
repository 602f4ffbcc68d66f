// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides query functions over the documents and
// document_metrics tables.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only query
// composition; ordering/validation rules live in the services package.
//
// Error semantics:
//   - When a document is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - CountDocuments(ctx, db) -> (int64, error)
//     Total number of document rows.
//
//   - GroupDocuments(ctx, db, column) -> []KeyCount, error
//     Group-by-and-count over "court" or "year", with NULL/empty values
//     bucketed under domain.UnknownBucket.
//
//   - SumMetrics(ctx, db) -> (pages int64, sizeBytes int64, error)
//     Corpus-wide sums over document_metrics.
//
//   - ListMetricsRows(ctx, db, limit) -> []MetricsRow, error
//     Inner-join view of documents that have a metrics row.
//
//   - ListRecent(ctx, db, limit) -> []DocumentSummary, error
//     Left-join listing ordered by added_date desc, ecli_id desc.
//
//   - SearchDocuments(ctx, db, filter, limit) -> []DocumentSummary, error
//     Conjunctive filtered listing with the same ordering as ListRecent.
//
//   - GetDocumentByECLI(ctx, db, ecliID) -> *domain.Document, error
//     Single document lookup by natural key, or ErrNotFound.
//
//   - GetMetricsForDocument(ctx, db, documentID) -> *domain.DocumentMetrics, error
//     The document's metrics row, or (nil, nil) when absent.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-ecli-dashboard/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// KeyCount is one bucket of a grouped distribution.
type KeyCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// MetricsRow is one entry of the metrics scatter view: a document joined
// with its metrics row. Only documents that have metrics appear here.
type MetricsRow struct {
	ECLIID    string `json:"ecli_id"   gorm:"column:ecli_id"`
	Court     string `json:"court"`
	Year      string `json:"year"`
	PageCount int    `json:"page_count"`
	FileSize  int64  `json:"file_size"`
}

// DocumentSummary is one entry of the recent/search listings: a document
// left-joined with its optional metrics row. PageCount and FileSize are nil
// when the document has no metrics.
type DocumentSummary struct {
	ECLIID    string `json:"ecli_id"    gorm:"column:ecli_id"`
	Court     string `json:"court"`
	Year      string `json:"year"`
	AddedDate string `json:"added_date"`
	PageCount *int   `json:"page_count"`
	FileSize  *int64 `json:"file_size"`
}

// SearchFilter carries the optional, conjunctive document search criteria.
// Zero values mean "not filtered". MinPages/MaxPages are inclusive bounds
// against page_count; supplying either excludes documents without metrics.
type SearchFilter struct {
	ECLI     string
	Court    string
	Year     string
	MinPages *int
	MaxPages *int
}

// CountDocuments returns the total number of document rows.
func CountDocuments(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Document{}).Count(&total).Error
	return total, err
}

// GroupDocuments returns the per-bucket document counts for the given
// column, which must be "court" or "year". NULL and empty values are counted
// under domain.UnknownBucket so bucket counts always sum to the total.
// Ordering is left to the caller.
func GroupDocuments(ctx context.Context, db *gorm.DB, column string) ([]KeyCount, error) {
	if column != "court" && column != "year" {
		return nil, gorm.ErrInvalidField
	}
	var out []KeyCount
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(NULLIF(TRIM(`+column+`), ''), ?) AS key, COUNT(*) AS count
		 FROM documents
		 GROUP BY key`, domain.UnknownBucket,
	).Scan(&out).Error
	return out, err
}

// SumMetrics returns the corpus-wide page and byte totals over
// document_metrics. Documents without a metrics row contribute zero.
func SumMetrics(ctx context.Context, db *gorm.DB) (pages int64, sizeBytes int64, err error) {
	var row struct {
		Pages int64
		Bytes int64
	}
	err = db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(page_count), 0) AS pages, COALESCE(SUM(file_size), 0) AS bytes
		 FROM document_metrics`,
	).Scan(&row).Error
	return row.Pages, row.Bytes, err
}

// ListMetricsRows returns the joined metrics view, capped at limit rows.
// Documents without a metrics row are excluded (inner join).
func ListMetricsRows(ctx context.Context, db *gorm.DB, limit int) ([]MetricsRow, error) {
	var out []MetricsRow
	err := db.WithContext(ctx).
		Table("documents d").
		Select("d.ecli_id, d.court, d.year, m.page_count, m.file_size").
		Joins("JOIN document_metrics m ON m.document_id = d.id").
		Order("d.ecli_id").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListRecent returns up to limit documents ordered by added_date descending,
// ties broken by ecli_id descending. Documents without metrics are included
// with nil metrics fields.
func ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]DocumentSummary, error) {
	return SearchDocuments(ctx, db, SearchFilter{}, limit)
}

// SearchDocuments returns up to limit documents matching every supplied
// filter, ordered like ListRecent. An empty filter matches everything.
func SearchDocuments(ctx context.Context, db *gorm.DB, f SearchFilter, limit int) ([]DocumentSummary, error) {
	q := db.WithContext(ctx).
		Table("documents d").
		Select("d.ecli_id, d.court, d.year, d.added_date, m.page_count, m.file_size").
		Joins("LEFT JOIN document_metrics m ON m.document_id = d.id")

	if f.ECLI != "" {
		q = q.Where("d.ecli_id LIKE ? COLLATE NOCASE", "%"+f.ECLI+"%")
	}
	if f.Court != "" {
		q = q.Where("d.court = ?", f.Court)
	}
	if f.Year != "" {
		q = q.Where("d.year = ?", f.Year)
	}
	// NULL page_count never satisfies a bound, so either bound excludes
	// documents lacking a metrics row.
	if f.MinPages != nil {
		q = q.Where("m.page_count >= ?", *f.MinPages)
	}
	if f.MaxPages != nil {
		q = q.Where("m.page_count <= ?", *f.MaxPages)
	}

	var out []DocumentSummary
	err := q.Order("d.added_date DESC, d.ecli_id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// GetDocumentByECLI fetches a single document by its natural key. If the
// record does not exist, it returns ErrNotFound. On other DB errors, the raw
// error is returned.
func GetDocumentByECLI(ctx context.Context, db *gorm.DB, ecliID string) (*domain.Document, error) {
	var d domain.Document
	err := db.WithContext(ctx).Where("ecli_id = ?", ecliID).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetMetricsForDocument fetches the metrics row for a document ID. A missing
// row is not an error: it returns (nil, nil) so callers can render metrics
// fields as null.
func GetMetricsForDocument(ctx context.Context, db *gorm.DB, documentID uint) (*domain.DocumentMetrics, error) {
	var m domain.DocumentMetrics
	err := db.WithContext(ctx).Where("document_id = ?", documentID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
