// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package geo

import "encoding/json"

// Placeholder returns a small built-in feature collection of rectangular
// stand-in boundaries for a few Bogor kecamatan. Used when no geographic
// source is configured, so the pipeline still produces a renderable map.
func Placeholder() *FeatureCollection {
	return &FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{
			placeholderBox("Citeureup", 106.85, -6.45, 106.92, -6.52),
			placeholderBox("Babakan Madang", 106.85, -6.52, 106.92, -6.58),
			placeholderBox("Sukamakmur", 106.92, -6.45, 106.99, -6.52),
			placeholderBox("Cibinong", 106.85, -6.58, 106.92, -6.65),
		},
	}
}

func placeholderBox(name string, west, north, east, south float64) Feature {
	ring := [][]float64{
		{west, north}, {east, north}, {east, south}, {west, south}, {west, north},
	}
	geom, _ := json.Marshal(map[string]any{
		"type":        "Polygon",
		"coordinates": [][][]float64{ring},
	})
	return Feature{
		Type:       "Feature",
		Properties: map[string]any{"NAME_3": name},
		Geometry:   geom,
	}
}
