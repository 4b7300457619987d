// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package region defines the core domain types for the dashboard engine:
// per-kecamatan records, name normalization, and achievement buckets.
package region

import (
	"regexp"
	"strings"
)

// Record is one row of the unified working table: a kecamatan with its
// potensi (target) and realisasi (achieved) values plus derived metrics.
type Record struct {
	// Kecamatan is the display name as given by the source, cleaned.
	Kecamatan string `json:"kecamatan"`

	// Potensi is the target value for the region.
	Potensi float64 `json:"potensi"`

	// Realisasi is the achieved value. Zero when the source has no
	// realization column.
	Realisasi float64 `json:"realisasi"`

	// Sisa is Potensi - Realisasi. Not clamped; negative when realization
	// exceeds potential.
	Sisa float64 `json:"sisa"`

	// Persentase is Realisasi / Potensi * 100, or 0 when Potensi is 0.
	Persentase float64 `json:"persentase"`

	// Key is the normalized join key. Never displayed.
	Key string `json:"-"`
}

// Bucket classifies a region's achievement percentage for progress coloring.
func (r Record) Bucket() Bucket {
	return ClassifyPercent(r.Persentase)
}

// Normalize reduces a region name to its canonical matching form: lowercase,
// trimmed, with all interior spaces and hyphens removed. Two names normalize
// equal iff they differ only by case, whitespace, or hyphens.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

var (
	leadingCode   = regexp.MustCompile(`^\d+\s*`)
	leadingPrefix = regexp.MustCompile(`(?i)^kecamatan\s+`)
)

// CleanName strips a leading numeric code token (e.g. "320138 Cibinong")
// and a leading "Kecamatan " prefix (case-insensitive) from a region
// identifier, then trims surrounding whitespace.
func CleanName(name string) string {
	s := strings.TrimSpace(name)
	s = leadingCode.ReplaceAllString(s, "")
	s = leadingPrefix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
