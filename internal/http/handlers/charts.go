// Chart payload builders.
//
// The chart-backed endpoints (/api/courts, /api/years, /api/metrics) return
// a declarative chart description alongside the raw data array. The spec is
// derived purely from the data: it carries series values plus axis/title
// labels and no independent state, so the front end can re-derive or ignore
// it freely.
package handlers

import (
	"sort"

	"github.com/tbourn/go-ecli-dashboard/internal/repo"
)

// ChartSeries is one named series of a chart. X and Y hold parallel value
// slices; element types depend on the chart (categories, years, or numbers).
type ChartSeries struct {
	Name string `json:"name"`
	X    []any  `json:"x"`
	Y    []any  `json:"y"`
}

// ChartSpec is the declarative chart description served in the `plot` field
// of chart-backed endpoints.
type ChartSpec struct {
	ChartType string        `json:"chart_type"`
	Title     string        `json:"title"`
	XLabel    string        `json:"x_label"`
	YLabel    string        `json:"y_label"`
	Series    []ChartSeries `json:"series"`
}

// barChart builds a single-series bar chart from grouped counts.
func barChart(title, xLabel, yLabel string, buckets []repo.KeyCount) ChartSpec {
	return ChartSpec{
		ChartType: "bar",
		Title:     title,
		XLabel:    xLabel,
		YLabel:    yLabel,
		Series:    []ChartSeries{bucketSeries("documents", buckets)},
	}
}

// lineChart builds a single-series line chart from grouped counts.
func lineChart(title, xLabel, yLabel string, buckets []repo.KeyCount) ChartSpec {
	return ChartSpec{
		ChartType: "line",
		Title:     title,
		XLabel:    xLabel,
		YLabel:    yLabel,
		Series:    []ChartSeries{bucketSeries("documents", buckets)},
	}
}

// scatterChart builds a scatter chart with one series per court, plotting
// page count against file size. Series are emitted in sorted court order for
// deterministic payloads.
func scatterChart(title, xLabel, yLabel string, rows []repo.MetricsRow) ChartSpec {
	byCourt := make(map[string][]repo.MetricsRow)
	for _, r := range rows {
		byCourt[r.Court] = append(byCourt[r.Court], r)
	}
	courts := make([]string, 0, len(byCourt))
	for court := range byCourt {
		courts = append(courts, court)
	}
	sort.Strings(courts)

	series := make([]ChartSeries, 0, len(courts))
	for _, court := range courts {
		group := byCourt[court]
		s := ChartSeries{Name: court, X: make([]any, 0, len(group)), Y: make([]any, 0, len(group))}
		for _, r := range group {
			s.X = append(s.X, r.PageCount)
			s.Y = append(s.Y, r.FileSize)
		}
		series = append(series, s)
	}

	return ChartSpec{
		ChartType: "scatter",
		Title:     title,
		XLabel:    xLabel,
		YLabel:    yLabel,
		Series:    series,
	}
}

func bucketSeries(name string, buckets []repo.KeyCount) ChartSeries {
	s := ChartSeries{Name: name, X: make([]any, 0, len(buckets)), Y: make([]any, 0, len(buckets))}
	for _, b := range buckets {
		s.X = append(s.X, b.Key)
		s.Y = append(s.Y, b.Count)
	}
	return s
}
