// Document HTTP handlers.
//
// This file exposes the REST endpoints for the document query surface:
//   - GET /api/recent               (recent documents)
//   - GET /api/document/{ecli_id}   (joined detail record)
//   - GET /api/search               (filtered search)
//
// Handlers are transport-thin: they parse and validate parameters, call
// application services, and translate results into HTTP responses. All
// query-layer business rules (ordering, caps, filter conjunction) live in
// the services package.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ecli-dashboard/internal/repo"
	"github.com/tbourn/go-ecli-dashboard/internal/services"
	"github.com/tbourn/go-ecli-dashboard/internal/utils"
)

//
// Service contracts (context-aware)
//

// StatsService defines the corpus statistics operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type StatsService interface {
	// Corpus returns an internally consistent corpus statistics view.
	Corpus(ctx context.Context) (*services.CorpusStatsView, error)
}

// DocumentService defines the document query operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DocumentService interface {
	// ByCourt returns per-court counts, ordered for display.
	ByCourt(ctx context.Context) ([]repo.KeyCount, error)
	// ByYear returns per-year counts, ordered for display.
	ByYear(ctx context.Context) ([]repo.KeyCount, error)
	// MetricsView returns the capped scatter view of documents with metrics.
	MetricsView(ctx context.Context) ([]repo.MetricsRow, error)
	// Recent returns the limit most recently added documents.
	Recent(ctx context.Context, limit int) ([]repo.DocumentSummary, error)
	// Search returns documents matching every supplied filter.
	Search(ctx context.Context, f repo.SearchFilter, limit int) ([]repo.DocumentSummary, error)
	// Detail returns the joined detail record for an ECLI identifier.
	Detail(ctx context.Context, ecliID string) (*services.DocumentDetail, error)
}

// FeedbackService defines the feedback submission operation consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type FeedbackService interface {
	// Submit validates and persists one feedback record.
	Submit(ctx context.Context, in services.FeedbackInput) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for statistics, documents, and feedback.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	statsSvc StatsService
	docSvc   DocumentService
	fbSvc    FeedbackService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(statsSvc StatsService, docSvc DocumentService, fbSvc FeedbackService) *Handlers {
	return &Handlers{statsSvc: statsSvc, docSvc: docSvc, fbSvc: fbSvc}
}

// GetRecent godoc
// @ID          getRecent
// @Summary     List recently added documents
// @Description Returns documents ordered by added date descending. Documents without metrics appear with null metrics fields.
// @Tags        Documents
// @Produce     json
//
// @Param       limit  query  int  false  "Maximum results (default 10, must be positive)"  example(10)
//
// @Success     200  {array}  repo.DocumentSummary
// @Failure     400  {object} handlers.ErrorResponse "Invalid limit"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /api/recent [get]
func (h *Handlers) GetRecent(c *gin.Context) {
	limit, err := utils.ParseLimit(c.Query("limit"), services.DefaultRecentLimit)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "limit must be a positive integer")
		return
	}

	docs, err := h.docSvc.Recent(c.Request.Context(), limit)
	if err != nil {
		failFromService(c, err)
		return
	}
	if docs == nil {
		docs = []repo.DocumentSummary{}
	}
	ok(c, http.StatusOK, docs)
}

// GetDocument godoc
// @ID          getDocument
// @Summary     Get document detail
// @Description Returns the joined document/metrics record including the deserialized PDF metadata sub-object. Missing metrics or a malformed pdf_metadata blob degrade to null fields.
// @Tags        Documents
// @Produce     json
//
// @Param       ecli_id  path  string  true  "ECLI identifier"  example(ECLI_PT_STJ_2024_000050)
//
// @Success     200  {object} services.DocumentDetail
// @Failure     404  {object} handlers.ErrorResponse "Document not found"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /api/document/{ecli_id} [get]
func (h *Handlers) GetDocument(c *gin.Context) {
	detail, err := h.docSvc.Detail(c.Request.Context(), c.Param("ecli_id"))
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "document not found")
			return
		}
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, detail)
}

// SearchDocuments godoc
// @ID          searchDocuments
// @Summary     Search documents
// @Description Filters are optional and conjunctive: ecli (case-insensitive substring), court (exact), year (exact), min_pages/max_pages (inclusive; excludes documents without metrics). An empty filter set returns the most recent documents.
// @Tags        Documents
// @Produce     json
//
// @Param       ecli       query  string  false  "ECLI substring"
// @Param       court      query  string  false  "Exact court"
// @Param       year       query  string  false  "Exact year"
// @Param       min_pages  query  int     false  "Minimum page count (inclusive)"
// @Param       max_pages  query  int     false  "Maximum page count (inclusive)"
// @Param       limit      query  int     false  "Maximum results (default 50)"
//
// @Success     200  {array}  repo.DocumentSummary
// @Failure     400  {object} handlers.ErrorResponse "Malformed numeric parameter"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /api/search [get]
func (h *Handlers) SearchDocuments(c *gin.Context) {
	minPages, err := utils.ParseOptionalInt(c.Query("min_pages"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "min_pages must be an integer")
		return
	}
	maxPages, err := utils.ParseOptionalInt(c.Query("max_pages"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "max_pages must be an integer")
		return
	}
	limit, err := utils.ParseLimit(c.Query("limit"), services.DefaultSearchLimit)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "limit must be a positive integer")
		return
	}

	filter := repo.SearchFilter{
		ECLI:     c.Query("ecli"),
		Court:    c.Query("court"),
		Year:     c.Query("year"),
		MinPages: minPages,
		MaxPages: maxPages,
	}

	docs, err := h.docSvc.Search(c.Request.Context(), filter, limit)
	if err != nil {
		failFromService(c, err)
		return
	}
	if docs == nil {
		docs = []repo.DocumentSummary{}
	}
	ok(c, http.StatusOK, docs)
}

// failFromService maps service-layer errors onto the HTTP taxonomy:
// ErrInvalidParameter becomes 400 with the service's message, anything else
// is a storage failure and becomes a logged 500.
func failFromService(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidParameter) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
}
