// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sort"
	"sync"

	"github.com/YaanFzl/VisualisasiBogor/internal/geo"
	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
	"github.com/YaanFzl/VisualisasiBogor/internal/region"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the result as a self-contained HTML dashboard.
type HTMLFormatter struct {
	// Features, when set, embeds the boundary geometry so the dashboard
	// renders an interactive choropleth map. Without it only the cards and
	// the monitoring table appear.
	Features *geo.FeatureCollection
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter without map geometry.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes the dashboard to w.
func (h *HTMLFormatter) Format(res *pipeline.Result, w io.Writer) error {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(htmlTemplate))
	})

	data := buildHTMLData(res, h.Features)

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the dashboard.
type htmlData struct {
	GeneratedAt    string
	RunID          string
	TotalPotensi   string
	TotalRealisasi string
	TotalSisa      string
	Capaian        string
	CapaianColor   string
	Matched        int
	FeatureCount   int
	Rows           []htmlRow
	Unmatched      []string
	Warnings       []string
	HasMap         bool
	MapData        map[string]any
	ChartData      map[string]any
}

type htmlRow struct {
	Rank      int
	Kecamatan string
	Potensi   string
	Realisasi string
	Sisa      string
	Persen    string
	BarWidth  string
	BarColor  string
}

func buildHTMLData(res *pipeline.Result, features *geo.FeatureCollection) htmlData {
	data := htmlData{
		GeneratedAt:    res.GeneratedAt.Format("2006-01-02 15:04 UTC"),
		RunID:          res.RunID,
		TotalPotensi:   formatNumber(res.Totals.Potensi),
		TotalRealisasi: formatNumber(res.Totals.Realisasi),
		TotalSisa:      formatNumber(res.Totals.Sisa),
		Capaian:        fmt.Sprintf("%.1f%%", res.Totals.Persentase),
		CapaianColor:   region.ClassifyPercent(res.Totals.Persentase).Color(),
		Matched:        res.Summary.Matched,
		FeatureCount:   res.Summary.Total,
		Rows:           buildHTMLRows(res.Records),
		Unmatched:      res.Summary.Unmatched,
		Warnings:       res.Warnings,
	}
	data.ChartData = buildChartData(data.Rows)
	if features != nil && len(features.Features) > 0 {
		data.HasMap = true
		data.MapData = buildMapData(res, features)
	}
	return data
}

func buildHTMLRows(records []region.Record) []htmlRow {
	ranked := make([]region.Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Persentase > ranked[j].Persentase
	})

	rows := make([]htmlRow, len(ranked))
	for i, rec := range ranked {
		width := rec.Persentase
		if width > 100 {
			width = 100
		}
		if width < 0 {
			width = 0
		}
		rows[i] = htmlRow{
			Rank:      i + 1,
			Kecamatan: rec.Kecamatan,
			Potensi:   formatNumber(rec.Potensi),
			Realisasi: formatNumber(rec.Realisasi),
			Sisa:      formatNumber(rec.Sisa),
			Persen:    fmt.Sprintf("%.1f%%", rec.Persentase),
			BarWidth:  fmt.Sprintf("%.1f%%", width),
			BarColor:  rec.Bucket().Color(),
		}
	}
	return rows
}

// buildChartData produces the top-10 capaian bar chart payload.
func buildChartData(rows []htmlRow) map[string]any {
	top := rows
	if len(top) > 10 {
		top = top[:10]
	}
	labels := make([]string, len(top))
	values := make([]string, len(top))
	colors := make([]string, len(top))
	for i, r := range top {
		labels[i] = r.Kecamatan
		values[i] = r.Persen
		colors[i] = r.BarColor
	}
	return map[string]any{
		"labels": labels,
		"values": values,
		"colors": colors,
	}
}

// buildMapData bundles geometry and per-feature styling for the Leaflet
// layer. Styles are keyed by feature index so the client never re-runs the
// name matching.
func buildMapData(res *pipeline.Result, features *geo.FeatureCollection) map[string]any {
	styles := make([]map[string]any, len(res.Descriptors))
	for i, d := range res.Descriptors {
		style := map[string]any{
			"name":        d.Name,
			"matched":     d.Matched,
			"fillColor":   d.FillColor,
			"fillOpacity": d.FillOpacity,
			"color":       d.StrokeColor,
			"weight":      d.StrokeWeight,
		}
		if d.Metrics != nil {
			style["potensi"] = d.Metrics.Potensi
			style["realisasi"] = d.Metrics.Realisasi
			style["sisa"] = d.Metrics.Sisa
			style["persentase"] = d.Metrics.Persentase
			style["progressColor"] = d.ProgressColor
		}
		styles[i] = style
	}
	return map[string]any{
		"geojson": features,
		"styles":  styles,
	}
}
