// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package region

// Bucket is the achievement classification derived from Persentase. It
// drives progress-indicator coloring only; map fill colors are assigned
// independently by the matcher.
type Bucket int

const (
	// BucketNoData means no realization at all (exactly 0%).
	BucketNoData Bucket = iota
	// BucketPoor means under 50% achieved.
	BucketPoor
	// BucketFair means 50% up to (excluding) 80% achieved.
	BucketFair
	// BucketGood means 80% or more achieved.
	BucketGood
)

// Progress-indicator colors, taken from the dashboard palette.
const (
	colorGood   = "#28a745" // green
	colorFair   = "#ffc107" // yellow
	colorPoor   = "#dc3545" // red
	colorNoData = "#e0e0e0" // gray
)

// ClassifyPercent maps an achievement percentage to its bucket. Boundaries:
// 80 is good, 50 is fair, 0 is no-data (not poor).
func ClassifyPercent(persen float64) Bucket {
	switch {
	case persen >= 80:
		return BucketGood
	case persen >= 50:
		return BucketFair
	case persen > 0:
		return BucketPoor
	default:
		return BucketNoData
	}
}

// String returns the bucket label.
func (b Bucket) String() string {
	switch b {
	case BucketGood:
		return "good"
	case BucketFair:
		return "fair"
	case BucketPoor:
		return "poor"
	default:
		return "no-data"
	}
}

// Color returns the hex progress color for the bucket.
func (b Bucket) Color() string {
	switch b {
	case BucketGood:
		return colorGood
	case BucketFair:
		return colorFair
	case BucketPoor:
		return colorPoor
	default:
		return colorNoData
	}
}
