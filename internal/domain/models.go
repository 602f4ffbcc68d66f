// Package domain defines the persistence models for the ECLI metadata
// corpus: documents, their per-file metrics, materialized corpus statistics,
// and user feedback. These types are mapped with GORM and act as the shared
// schema contract between the seeding tooling and the query layer.
package domain

import (
	"encoding/json"
	"strings"
)

// UnknownBucket is the stable grouping key used for documents whose court or
// year column is NULL/empty. Aggregations must file such documents under this
// key so that per-bucket counts always sum to the total document count.
const UnknownBucket = "Unknown"

// DashboardFeedbackID is the sentinel document_id used for feedback that
// concerns the dashboard as a whole rather than a specific document.
const DashboardFeedbackID = "dashboard"

// Document represents one judicial decision in the corpus. The ECLI
// identifier is the natural key used throughout the API; the numeric ID is
// only a storage-level surrogate.
//
// Fields:
//   - ID: autoincrement surrogate primary key.
//   - ECLIID: unique textual identifier of the decision (natural key).
//   - Court / Year / CaseNumber: categorical attributes; may be empty when
//     the source document lacked them.
//   - FilePath: location of the underlying artifact; opaque to this layer.
//   - AddedDate: set once at ingestion time (RFC 3339 text, sorts lexically).
//   - LastUpdated: refreshed whenever metadata is edited.
type Document struct {
	ID          uint   `json:"id"           gorm:"primaryKey;autoIncrement"`
	ECLIID      string `json:"ecli_id"      gorm:"column:ecli_id;type:varchar(128);uniqueIndex;not null"`
	Court       string `json:"court"        gorm:"type:varchar(64);index"`
	Year        string `json:"year"         gorm:"type:varchar(8);index"`
	CaseNumber  string `json:"case_number"  gorm:"type:varchar(64)"`
	FilePath    string `json:"file_path"    gorm:"type:text"`
	AddedDate   string `json:"added_date"   gorm:"type:text;index"`
	LastUpdated string `json:"last_updated" gorm:"type:text"`
}

// TableName returns the database table name for Document.
func (Document) TableName() string { return "documents" }

// CourtBucket returns the court grouping key for the document, substituting
// UnknownBucket when the court is empty.
func (d Document) CourtBucket() string {
	if strings.TrimSpace(d.Court) == "" {
		return UnknownBucket
	}
	return d.Court
}

// YearBucket returns the year grouping key for the document, substituting
// UnknownBucket when the year is empty.
func (d Document) YearBucket() string {
	if strings.TrimSpace(d.Year) == "" {
		return UnknownBucket
	}
	return d.Year
}

// DocumentMetrics holds per-file measurements extracted from a document's
// PDF. Zero or one row exists per document; documents without a metrics row
// must still be listable with metrics fields absent.
//
// Fields:
//   - DocumentID: foreign key to documents.id; unique (one-to-one relation).
//   - PageCount / FileSize: numeric measurements used for aggregation.
//   - DocumentDate / Language / Judge: descriptive fields from the content.
//   - PDFMetadata: serialized PDFMetadata blob, deserialized only at
//     detail-read time (see ParsePDFMetadata).
//   - Document: FK association, cascade-deleted with the parent document.
type DocumentMetrics struct {
	ID           uint   `json:"id"            gorm:"primaryKey;autoIncrement"`
	DocumentID   uint   `json:"document_id"   gorm:"uniqueIndex;not null"`
	PageCount    int    `json:"page_count"`
	FileSize     int64  `json:"file_size"`
	DocumentDate string `json:"document_date" gorm:"type:text"`
	Language     string `json:"language"      gorm:"type:varchar(32)"`
	Judge        string `json:"judge"         gorm:"type:varchar(128)"`
	PDFMetadata  string `json:"-"             gorm:"column:pdf_metadata;type:text"`

	Document Document `json:"-" gorm:"foreignKey:DocumentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for DocumentMetrics.
func (DocumentMetrics) TableName() string { return "document_metrics" }

// PDFMetadata is the typed form of the pdf_metadata blob stored on a metrics
// row. All fields are optional; a missing or malformed blob degrades to a
// nil *PDFMetadata rather than an error, since PDF metadata is enrichment
// data and never required for a detail response to succeed.
type PDFMetadata struct {
	Creator      string `json:"pdf_creator,omitempty"`
	Producer     string `json:"pdf_producer,omitempty"`
	Title        string `json:"pdf_title,omitempty"`
	Author       string `json:"pdf_author,omitempty"`
	CreationDate string `json:"pdf_creation_date,omitempty"`
	ModDate      string `json:"pdf_mod_date,omitempty"`
}

// ParsePDFMetadata deserializes the pdf_metadata blob on the metrics row.
// It returns nil when the blob is empty or not valid JSON.
func (m DocumentMetrics) ParsePDFMetadata() *PDFMetadata {
	raw := strings.TrimSpace(m.PDFMetadata)
	if raw == "" {
		return nil
	}
	var pm PDFMetadata
	if err := json.Unmarshal([]byte(raw), &pm); err != nil {
		return nil
	}
	return &pm
}

// CorpusStats is a materialized snapshot of corpus-wide aggregates. Rows are
// appended by the seeding tooling (or any external refresher); the query
// layer serves the latest row when it is internally consistent and falls
// back to a live recompute otherwise.
//
// Courts and Years are JSON-serialized maps from bucket key to count.
type CorpusStats struct {
	ID             uint   `json:"id"               gorm:"primaryKey;autoIncrement"`
	TotalDocuments int64  `json:"total_documents"`
	TotalPages     int64  `json:"total_pages"`
	TotalSizeBytes int64  `json:"total_size_bytes"`
	Courts         string `json:"-"                gorm:"type:text"`
	Years          string `json:"-"                gorm:"type:text"`
	GeneratedAt    string `json:"generated_at"     gorm:"type:text"`
}

// TableName returns the database table name for CorpusStats.
func (CorpusStats) TableName() string { return "corpus_stats" }

// ParseCourts deserializes the courts map. It returns (nil, false) when the
// blob is empty or malformed.
func (s CorpusStats) ParseCourts() (map[string]int64, bool) { return parseCountMap(s.Courts) }

// ParseYears deserializes the years map. It returns (nil, false) when the
// blob is empty or malformed.
func (s CorpusStats) ParseYears() (map[string]int64, bool) { return parseCountMap(s.Years) }

func parseCountMap(raw string) (map[string]int64, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}
	var m map[string]int64
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, false
	}
	return m, true
}

// UserFeedback is an append-only record of a user's rating of a document or
// of the dashboard itself. DocumentID is a free string: it may reference an
// ECLI identifier that is not (yet) indexed, or the dashboard sentinel, and
// is intentionally not constrained by a foreign key.
//
// Fields:
//   - Type: open category string ("metadata", "ui", "performance", ...);
//     the persistence layer does not constrain it to a fixed list.
//   - Rating: integer in [1,5], validated by the feedback service.
//   - UserAgent / SubmittedAt: provenance metadata filled at write time.
type UserFeedback struct {
	ID          uint   `json:"id"           gorm:"primaryKey;autoIncrement"`
	DocumentID  string `json:"document_id"  gorm:"type:varchar(128);not null;index"`
	Type        string `json:"type"         gorm:"type:varchar(64);not null"`
	Rating      int    `json:"rating"       gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment     string `json:"comment"      gorm:"type:text"`
	UserAgent   string `json:"user_agent"   gorm:"type:text"`
	SubmittedAt string `json:"submitted_at" gorm:"type:text"`
}

// TableName returns the database table name for UserFeedback.
func (UserFeedback) TableName() string { return "user_feedback" }
