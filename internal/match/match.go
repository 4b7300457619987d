// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package match joins geographic features to region records by normalized
// name and produces per-feature render descriptors for the map layer.
package match

import (
	"fmt"
	"math"

	"github.com/YaanFzl/VisualisasiBogor/internal/geo"
	"github.com/YaanFzl/VisualisasiBogor/internal/region"
)

// Policy selects how matched features are colored.
type Policy string

const (
	// ValueRanked maps each region's potensi into the palette by its
	// position in the dataset's potensi range. Higher values rank into
	// later palette slots.
	ValueRanked Policy = "value-ranked"

	// SequentialDistinct hands out palette colors in processing order with
	// wraparound. Intent is visual region distinction, not value ranking.
	SequentialDistinct Policy = "sequential"
)

// ParsePolicy validates a policy name from config or flags.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case ValueRanked, SequentialDistinct:
		return Policy(s), nil
	case "":
		return SequentialDistinct, nil
	default:
		return "", fmt.Errorf("unknown palette policy %q (valid: %s, %s)", s, ValueRanked, SequentialDistinct)
	}
}

// Options configures a matching run.
type Options struct {
	// Policy selects the coloring policy. Zero value means SequentialDistinct.
	Policy Policy

	// Palette overrides DefaultPalette when non-empty.
	Palette []string
}

func (o Options) palette() []string {
	if len(o.Palette) > 0 {
		return o.Palette
	}
	return DefaultPalette
}

// Descriptor is the fully resolved styling and metric payload for one
// geographic feature, consumed by the rendering layer.
type Descriptor struct {
	// Name is the resolved display name ("Unknown" when unresolvable).
	Name string `json:"name"`

	// Matched reports whether a region record was joined to this feature.
	Matched bool `json:"matched"`

	// FillColor is the hex fill for the polygon.
	FillColor string `json:"fill_color"`

	// FillOpacity is reduced for unmatched features.
	FillOpacity float64 `json:"fill_opacity"`

	// StrokeColor and StrokeWeight style the polygon outline.
	StrokeColor  string `json:"stroke_color"`
	StrokeWeight int    `json:"stroke_weight"`

	// ProgressColor is the achievement bucket color for the popup progress
	// bar. Empty when unmatched.
	ProgressColor string `json:"progress_color,omitempty"`

	// Metrics carries the joined record. Nil when unmatched.
	Metrics *region.Record `json:"metrics,omitempty"`
}

// Summary aggregates a matching run for the reconciliation banner.
type Summary struct {
	// Matched counts features joined to a record.
	Matched int `json:"matched"`

	// Total is the feature count. Matched <= Total always.
	Total int `json:"total"`

	// Unmatched lists display names without data, in input feature order.
	Unmatched []string `json:"unmatched"`
}

// Match joins each feature to at most one region record via normalized-name
// equality and assigns fill colors per the configured policy. Features run
// in input order; when several records share a normalized key the first in
// table order wins. A nil or empty collection yields a zero summary.
func Match(fc *geo.FeatureCollection, records []region.Record, opts Options) ([]Descriptor, Summary) {
	var summary Summary
	if fc == nil || len(fc.Features) == 0 {
		return nil, summary
	}
	summary.Total = len(fc.Features)

	// First record in table order wins for duplicate keys.
	byKey := make(map[string]*region.Record, len(records))
	for i := range records {
		key := records[i].Key
		if _, exists := byKey[key]; !exists {
			byKey[key] = &records[i]
		}
	}

	palette := opts.palette()
	minPot, maxPot := potensiRange(records)

	descriptors := make([]Descriptor, 0, len(fc.Features))
	for _, f := range fc.Features {
		name := geo.DisplayName(f)
		rec, ok := byKey[region.Normalize(name)]
		if !ok {
			summary.Unmatched = append(summary.Unmatched, name)
			descriptors = append(descriptors, Descriptor{
				Name:         name,
				FillColor:    NoDataFill,
				FillOpacity:  NoDataOpacity,
				StrokeColor:  StrokeColor,
				StrokeWeight: StrokeWeight,
			})
			continue
		}

		var fill string
		switch opts.Policy {
		case ValueRanked:
			fill = palette[rankIndex(rec.Potensi, minPot, maxPot, len(palette))]
		default:
			fill = palette[summary.Matched%len(palette)]
		}
		summary.Matched++

		descriptors = append(descriptors, Descriptor{
			Name:          name,
			Matched:       true,
			FillColor:     fill,
			FillOpacity:   MatchedOpacity,
			StrokeColor:   StrokeColor,
			StrokeWeight:  StrokeWeight,
			ProgressColor: rec.Bucket().Color(),
			Metrics:       rec,
		})
	}
	return descriptors, summary
}

// rankIndex maps value into [0, size-1] by its position in [min, max].
// A degenerate range (all potentials equal) always ranks to slot 0.
func rankIndex(value, min, max float64, size int) int {
	if max == min {
		return 0
	}
	ratio := (value - min) / (max - min)
	idx := int(math.Floor(ratio * float64(size-1)))
	if idx < 0 {
		return 0
	}
	if idx > size-1 {
		return size - 1
	}
	return idx
}

func potensiRange(records []region.Record) (min, max float64) {
	if len(records) == 0 {
		return 0, 0
	}
	min, max = records[0].Potensi, records[0].Potensi
	for _, r := range records[1:] {
		if r.Potensi < min {
			min = r.Potensi
		}
		if r.Potensi > max {
			max = r.Potensi
		}
	}
	return min, max
}
