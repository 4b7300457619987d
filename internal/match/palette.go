// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package match

// DefaultPalette is the 30-color map palette. Adjacent regions get visually
// distinct fills; the value-ranked policy indexes into it by potensi rank.
var DefaultPalette = []string{
	"#4CAF50", "#2196F3", "#FF9800", "#E91E63", "#9C27B0",
	"#FF5722", "#00BCD4", "#FFEB3B", "#795548", "#607D8B",
	"#3F51B5", "#009688", "#FFC107", "#CDDC39", "#FF4081",
	"#00ACC1", "#7CB342", "#D32F2F", "#512DA8", "#689F38",
	"#F44336", "#03A9F4", "#8BC34A", "#E65100", "#673AB7",
	"#00897B", "#6D4C41", "#5E35B1", "#1E88E5", "#43A047",
}

// Styling for features without a matching record: gray at reduced opacity,
// visually distinct from every palette color.
const (
	NoDataFill    = "#e0e0e0"
	NoDataOpacity = 0.5
)

// Styling shared by all matched features.
const (
	MatchedOpacity = 0.7
	StrokeColor    = "white"
	StrokeWeight   = 2
)
