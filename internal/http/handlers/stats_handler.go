// Statistics and chart HTTP handlers.
//
// This file exposes the aggregate endpoints of the dashboard API:
//   - GET /api/stats    (corpus-wide statistics)
//   - GET /api/courts   (documents by court + bar chart spec)
//   - GET /api/years    (documents by year + line chart spec)
//   - GET /api/metrics  (page/size scatter data + chart spec)
//
// The chart-backed endpoints return {data, plot}; the plot is derived
// purely from the data array (see charts.go).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ecli-dashboard/internal/repo"
)

// GroupedResponse is the payload of the court/year distribution endpoints.
type GroupedResponse struct {
	Data []KeyCountEntry `json:"data"`
	Plot ChartSpec       `json:"plot"`
}

// KeyCountEntry is one {key,count} pair of a grouped distribution, keyed by
// the column name the endpoint grouped on.
type KeyCountEntry map[string]any

// MetricsResponse is the payload of the metrics scatter endpoint.
type MetricsResponse struct {
	Data []repo.MetricsRow `json:"data"`
	Plot ChartSpec         `json:"plot"`
}

// GetStats godoc
// @ID          getStats
// @Summary     Corpus statistics
// @Description Returns total document/page/byte counts and the per-court and per-year distributions. Served from the latest consistent snapshot or recomputed live.
// @Tags        Statistics
// @Produce     json
//
// @Success     200  {object} services.CorpusStatsView
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /api/stats [get]
func (h *Handlers) GetStats(c *gin.Context) {
	stats, err := h.statsSvc.Corpus(c.Request.Context())
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, stats)
}

// GetCourts godoc
// @ID          getCourts
// @Summary     Documents by court
// @Description Returns per-court document counts (count descending, ties by court ascending) and a bar chart spec.
// @Tags        Statistics
// @Produce     json
//
// @Success     200  {object} handlers.GroupedResponse
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /api/courts [get]
func (h *Handlers) GetCourts(c *gin.Context) {
	buckets, err := h.docSvc.ByCourt(c.Request.Context())
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, GroupedResponse{
		Data: keyCountEntries("court", buckets),
		Plot: barChart("Documents by Court", "Court", "Number of Documents", buckets),
	})
}

// GetYears godoc
// @ID          getYears
// @Summary     Documents by year
// @Description Returns per-year document counts (count descending, ties by year ascending) and a line chart spec.
// @Tags        Statistics
// @Produce     json
//
// @Success     200  {object} handlers.GroupedResponse
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /api/years [get]
func (h *Handlers) GetYears(c *gin.Context) {
	buckets, err := h.docSvc.ByYear(c.Request.Context())
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, GroupedResponse{
		Data: keyCountEntries("year", buckets),
		Plot: lineChart("Documents by Year", "Year", "Number of Documents", buckets),
	})
}

// GetMetrics godoc
// @ID          getMetrics
// @Summary     Document metrics scatter data
// @Description Returns {ecli_id, court, year, page_count, file_size} for documents that have a metrics row, capped at the configured size, plus a scatter chart spec with one series per court.
// @Tags        Statistics
// @Produce     json
//
// @Success     200  {object} handlers.MetricsResponse
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /api/metrics [get]
func (h *Handlers) GetMetrics(c *gin.Context) {
	rows, err := h.docSvc.MetricsView(c.Request.Context())
	if err != nil {
		failFromService(c, err)
		return
	}
	if rows == nil {
		rows = []repo.MetricsRow{}
	}
	ok(c, http.StatusOK, MetricsResponse{
		Data: rows,
		Plot: scatterChart("Document Metrics", "Page Count", "File Size (bytes)", rows),
	})
}

// keyCountEntries renders grouped buckets with the grouping column as the
// JSON key name, matching what the front end expects ({court,count} and
// {year,count} rather than a generic {key,count}).
func keyCountEntries(column string, buckets []repo.KeyCount) []KeyCountEntry {
	out := make([]KeyCountEntry, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, KeyCountEntry{column: b.Key, "count": b.Count})
	}
	return out
}
