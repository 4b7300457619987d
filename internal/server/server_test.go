package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaanFzl/VisualisasiBogor/internal/derive"
	"github.com/YaanFzl/VisualisasiBogor/internal/geo"
	"github.com/YaanFzl/VisualisasiBogor/internal/match"
	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
	"github.com/YaanFzl/VisualisasiBogor/internal/region"
)

func testResult() *pipeline.Result {
	return &pipeline.Result{
		RunID:       "run-abc",
		GeneratedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Records: []region.Record{
			{Kecamatan: "Citeureup", Potensi: 100, Realisasi: 80, Sisa: 20, Persentase: 80, Key: "citeureup"},
		},
		Descriptors: []match.Descriptor{
			{Name: "Citeureup", Matched: true, FillColor: "#FF6B6B", FillOpacity: 0.7,
				StrokeColor: "white", StrokeWeight: 2, ProgressColor: "#28a745",
				Metrics: &region.Record{Kecamatan: "Citeureup", Potensi: 100, Realisasi: 80, Sisa: 20, Persentase: 80}},
		},
		Summary: match.Summary{Matched: 1, Total: 1},
		Totals:  derive.Totals{Potensi: 100, Realisasi: 80, Sisa: 20, Persentase: 80},
	}
}

func testServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestServer_UnavailableBeforeFirstUpdate(t *testing.T) {
	_, ts := testServer(t)

	for _, path := range []string{"/", "/api/dashboard", "/api/geojson", "/api/chart.png", "/api/export.xlsx"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
	}
}

func TestServer_Dashboard(t *testing.T) {
	s, ts := testServer(t)
	s.Update(testResult(), geo.Placeholder())

	resp, err := http.Get(ts.URL + "/api/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var env struct {
		Summary  match.Summary `json:"summary"`
		Metadata struct {
			RunID string `json:"run_id"`
		} `json:"metadata"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "run-abc", env.Metadata.RunID)
	assert.Equal(t, 1, env.Summary.Matched)
}

func TestServer_GeoJSONStyles(t *testing.T) {
	s, ts := testServer(t)

	features := &geo.FeatureCollection{
		Type: "FeatureCollection",
		Features: []geo.Feature{
			{Type: "Feature", Properties: map[string]any{"NAME_3": "Citeureup"},
				Geometry: json.RawMessage(`{"type":"Point","coordinates":[106.88,-6.48]}`)},
		},
	}
	s.Update(testResult(), features)

	resp, err := http.Get(ts.URL + "/api/geojson")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fc))
	require.Len(t, fc.Features, 1)
	props := fc.Features[0].Properties
	assert.Equal(t, "#FF6B6B", props["fillColor"])
	assert.Equal(t, true, props["matched"])
	assert.Equal(t, float64(80), props["persentase"])
	assert.Equal(t, "Citeureup", props["NAME_3"])
}

func TestServer_GeoJSONWithoutGeometry(t *testing.T) {
	s, ts := testServer(t)
	s.Update(testResult(), nil)

	resp, err := http.Get(ts.URL + "/api/geojson")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_IndexServesHTML(t *testing.T) {
	s, ts := testServer(t)
	s.Update(testResult(), geo.Placeholder())

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestServer_IndexRejectsOtherPaths(t *testing.T) {
	s, ts := testServer(t)
	s.Update(testResult(), nil)

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Health(t *testing.T) {
	s, ts := testServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["loaded"])

	s.Update(testResult(), nil)
	resp, err = http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, true, body["loaded"])
	assert.Equal(t, "run-abc", body["run_id"])
}

func TestServer_MetricsEndpoint(t *testing.T) {
	_, ts := testServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_UpdateSwapsSnapshot(t *testing.T) {
	s, ts := testServer(t)
	s.Update(testResult(), nil)

	next := testResult()
	next.RunID = "run-def"
	s.Update(next, nil)

	resp, err := http.Get(ts.URL + "/api/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	var env struct {
		Metadata struct {
			RunID string `json:"run_id"`
		} `json:"metadata"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "run-def", env.Metadata.RunID)
}
