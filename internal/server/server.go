// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package server exposes the latest render cycle over HTTP: the dashboard
// page, JSON and GeoJSON APIs, downloads, and operational endpoints.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/YaanFzl/VisualisasiBogor/internal/geo"
	"github.com/YaanFzl/VisualisasiBogor/internal/output"
	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
)

// Server serves the most recent render cycle. Update may be called at any
// time; handlers always read a consistent snapshot.
type Server struct {
	mu       sync.RWMutex
	result   *pipeline.Result
	features *geo.FeatureCollection
}

// New returns a Server with no result yet; handlers answer 503 until the
// first Update.
func New() *Server {
	return &Server{}
}

// Update publishes a new render cycle and refreshes the gauges.
func (s *Server) Update(res *pipeline.Result, features *geo.FeatureCollection) {
	s.mu.Lock()
	s.result = res
	s.features = features
	s.mu.Unlock()

	renderCyclesTotal.Inc()
	matchedRegions.Set(float64(res.Summary.Matched))
	droppedRowsTotal.Add(float64(res.DroppedRows))
}

// snapshot returns the current result and features, or nil before the first
// Update.
func (s *Server) snapshot() (*pipeline.Result, *geo.FeatureCollection) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.features
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", instrument("index", s.handleIndex))
	mux.Handle("/api/dashboard", instrument("dashboard", s.handleDashboard))
	mux.Handle("/api/geojson", instrument("geojson", s.handleGeoJSON))
	mux.Handle("/api/chart.png", instrument("chart", s.handleChart))
	mux.Handle("/api/export.xlsx", instrument("export", s.handleExport))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", metricsHandler())
	return mux
}

// instrument wraps a handler with request counting and duration metrics.
func instrument(name string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		requestsTotal.WithLabelValues(name).Inc()
		requestDurationMs.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	res, features := s.snapshot()
	if res == nil {
		http.Error(w, "no data loaded yet", http.StatusServiceUnavailable)
		return
	}
	f := output.NewHTMLFormatter()
	f.Features = features
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := f.Format(res, w); err != nil {
		slog.Error("render dashboard page", "err", err)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	res, _ := s.snapshot()
	if res == nil {
		http.Error(w, "no data loaded yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := output.NewJSONFormatter().Format(res, w); err != nil {
		slog.Error("encode dashboard", "err", err)
	}
}

// styledFeature is a GeoJSON feature whose properties carry the computed
// map styling, so clients can draw without re-matching names.
type styledFeature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, _ *http.Request) {
	res, features := s.snapshot()
	if res == nil {
		http.Error(w, "no data loaded yet", http.StatusServiceUnavailable)
		return
	}
	if features == nil {
		http.Error(w, "no boundary geometry loaded", http.StatusNotFound)
		return
	}

	out := struct {
		Type     string          `json:"type"`
		Features []styledFeature `json:"features"`
	}{Type: "FeatureCollection"}

	for i, feat := range features.Features {
		props := make(map[string]any, len(feat.Properties)+6)
		for k, v := range feat.Properties {
			props[k] = v
		}
		if i < len(res.Descriptors) {
			d := res.Descriptors[i]
			props["fillColor"] = d.FillColor
			props["fillOpacity"] = d.FillOpacity
			props["strokeColor"] = d.StrokeColor
			props["strokeWeight"] = d.StrokeWeight
			props["matched"] = d.Matched
			if d.Metrics != nil {
				props["potensi"] = d.Metrics.Potensi
				props["realisasi"] = d.Metrics.Realisasi
				props["sisa"] = d.Metrics.Sisa
				props["persentase"] = d.Metrics.Persentase
				props["progressColor"] = d.ProgressColor
			}
		}
		out.Features = append(out.Features, styledFeature{
			Type:       feat.Type,
			Properties: props,
			Geometry:   feat.Geometry,
		})
	}

	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("encode geojson", "err", err)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, _ *http.Request) {
	res, _ := s.snapshot()
	if res == nil {
		http.Error(w, "no data loaded yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := output.NewChartFormatter().Format(res, w); err != nil {
		slog.Error("render chart", "err", err)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	res, _ := s.snapshot()
	if res == nil {
		http.Error(w, "no data loaded yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="monitoring.xlsx"`)
	if err := output.NewExcelFormatter().Format(res, w); err != nil {
		slog.Error("export workbook", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	res, _ := s.snapshot()
	w.Header().Set("Content-Type", "application/json")
	status := map[string]any{"status": "ok", "loaded": res != nil}
	if res != nil {
		status["run_id"] = res.RunID
		status["generated_at"] = res.GeneratedAt
	}
	_ = json.NewEncoder(w).Encode(status)
}
