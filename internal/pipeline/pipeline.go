// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package pipeline orchestrates one render cycle: merge the two-sheet form
// if present, detect column roles, derive metrics, and match features. Each
// run owns its inputs and outputs; nothing is shared across cycles.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/YaanFzl/VisualisasiBogor/internal/derive"
	"github.com/YaanFzl/VisualisasiBogor/internal/geo"
	"github.com/YaanFzl/VisualisasiBogor/internal/match"
	"github.com/YaanFzl/VisualisasiBogor/internal/merge"
	"github.com/YaanFzl/VisualisasiBogor/internal/region"
	"github.com/YaanFzl/VisualisasiBogor/internal/tabular"
)

// Input holds everything one render cycle consumes.
type Input struct {
	// Table is the unified single-table form.
	Table tabular.Table

	// Potensi and Akuisisi, when both non-nil, select the two-sheet event
	// form; Table is then ignored.
	Potensi  *tabular.Table
	Akuisisi *tabular.Table

	// Features is the geographic collection. Nil or empty yields an empty
	// render set with a zero match summary, not an error.
	Features *geo.FeatureCollection

	// Policy and Palette configure map coloring.
	Policy  match.Policy
	Palette []string
}

// Result is the full output of one render cycle, consumed by formatters
// and the HTTP layer.
type Result struct {
	// RunID uniquely identifies this render cycle in logs and output
	// metadata.
	RunID string `json:"run_id"`

	GeneratedAt time.Time `json:"generated_at"`

	// Records is the derived working table, in source order.
	Records []region.Record `json:"records"`

	// Descriptors carry per-feature styling for the map layer.
	Descriptors []match.Descriptor `json:"descriptors"`

	// Summary is the reconciliation banner data.
	Summary match.Summary `json:"summary"`

	// Totals feed the summary cards.
	Totals derive.Totals `json:"totals"`

	// Warnings lists non-fatal conditions from this run.
	Warnings []string `json:"warnings,omitempty"`

	// DroppedRows counts source rows excluded for unparseable potensi.
	DroppedRows int `json:"dropped_rows"`

	Duration time.Duration `json:"-"`
}

// Run executes one render cycle. It fails only when a required column role
// cannot be detected or when no usable rows survive derivation; every other
// condition degrades into Warnings and the match summary.
func Run(in Input) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString(), GeneratedAt: start.UTC()}

	tbl := in.Table
	if in.Potensi != nil && in.Akuisisi != nil {
		merged, err := merge.MergeEventSheets(*in.Potensi, *in.Akuisisi)
		if err != nil {
			return nil, err
		}
		slog.Debug("event sheets merged", "regions", merged.Len())
		tbl = merged
	}

	roles, err := tabular.DetectRoles(tbl.Columns)
	if err != nil {
		return nil, err
	}

	derived := derive.Derive(tbl, roles)
	if len(derived.Records) == 0 {
		return nil, fmt.Errorf("no usable rows: %d row(s) dropped for unparseable potensi", derived.Dropped)
	}
	res.Records = derived.Records
	res.DroppedRows = derived.Dropped
	res.Warnings = derived.Warnings
	res.Totals = derive.Total(derived.Records)
	for _, key := range derived.Duplicates {
		slog.Warn("duplicate region key in source data", "key", key)
	}

	res.Descriptors, res.Summary = match.Match(in.Features, derived.Records, match.Options{
		Policy:  in.Policy,
		Palette: in.Palette,
	})

	res.Duration = time.Since(start)
	slog.Info("render cycle complete",
		"run_id", res.RunID,
		"regions", len(res.Records),
		"matched", res.Summary.Matched,
		"features", res.Summary.Total,
		"dropped_rows", res.DroppedRows,
		"duration", res.Duration)
	return res, nil
}
