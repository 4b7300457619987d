// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package geo reads GeoJSON-like feature collections and resolves region
// display names from their heterogeneous property schemas. Geometry is
// carried opaquely; no geospatial interpretation happens here.
package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/YaanFzl/VisualisasiBogor/internal/source"
)

// Feature is one polygon entity from the geographic source. Properties keys
// vary by source schema; Geometry is opaque and passed through untouched.
type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
}

// FeatureCollection is a GeoJSON-like collection of features.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// UnknownName is the display name for features whose properties expose none
// of the recognized region-name keys. Such features are always unmatched.
const UnknownName = "Unknown"

// nameKeys is the fixed priority order for resolving a region name from
// feature properties. NAME_3 is the GADM level-3 admin name; NAMOBJ is the
// Indonesian geospatial portal object-name key.
var nameKeys = []string{"NAME_3", "name", "NAME", "KECAMATAN", "Kecamatan", "NAMOBJ"}

// DisplayName resolves the feature's region name by checking the known
// property keys in priority order, taking the first present non-empty
// string. Unrecognized schemas resolve to UnknownName.
func DisplayName(f Feature) string {
	for _, key := range nameKeys {
		if v, ok := f.Properties[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return UnknownName
}

// Parse decodes a feature collection from r.
func Parse(r io.Reader) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}
	return &fc, nil
}

// LoadFile reads a feature collection from a local file. A missing file is
// reported as a source.UnavailableError so callers can degrade instead of
// failing the run.
func LoadFile(path string) (*FeatureCollection, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided map path
	if err != nil {
		return nil, &source.UnavailableError{Name: path, Err: err}
	}
	defer f.Close() //nolint:errcheck // read-only handle

	fc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fc, nil
}
