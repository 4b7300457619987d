// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "petadash_requests_total",
		Help: "Total HTTP requests by handler",
	}, []string{"handler"})
	requestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "petadash_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"handler"})
	renderCyclesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "petadash_render_cycles_total",
		Help: "Total completed render cycles",
	})
	matchedRegions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "petadash_matched_regions",
		Help: "Regions matched to a boundary feature in the latest cycle",
	})
	droppedRowsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "petadash_dropped_rows_total",
		Help: "Source rows dropped for unparseable values",
	})
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDurationMs)
	prometheus.MustRegister(renderCyclesTotal)
	prometheus.MustRegister(matchedRegions)
	prometheus.MustRegister(droppedRowsTotal)
}

// metricsHandler exposes the registered metrics for scraping.
func metricsHandler() http.Handler { return promhttp.Handler() }
