// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/YaanFzl/VisualisasiBogor/internal/derive"
	"github.com/YaanFzl/VisualisasiBogor/internal/match"
	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
	"github.com/YaanFzl/VisualisasiBogor/internal/region"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the result with metadata for machine consumers.
type JSONEnvelope struct {
	Records     []region.Record    `json:"records"`
	Descriptors []match.Descriptor `json:"descriptors"`
	Summary     match.Summary      `json:"summary"`
	Totals      derive.Totals      `json:"totals"`
	Metadata    JSONMetadata       `json:"metadata"`
}

// JSONMetadata describes the run that produced this envelope.
type JSONMetadata struct {
	RunID       string   `json:"run_id"`
	GeneratedAt string   `json:"generated_at"`
	DroppedRows int      `json:"dropped_rows"`
	Warnings    []string `json:"warnings,omitempty"`
}

// JSONFormatter writes the result as a JSON document.
type JSONFormatter struct {
	// Compact emits a single line instead of indented output.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

// Name returns the format name.
func (f *JSONFormatter) Name() string { return "json" }

// Format writes the result envelope to w.
func (f *JSONFormatter) Format(res *pipeline.Result, w io.Writer) error {
	envelope := JSONEnvelope{
		Records:     res.Records,
		Descriptors: res.Descriptors,
		Summary:     res.Summary,
		Totals:      res.Totals,
		Metadata: JSONMetadata{
			RunID:       res.RunID,
			GeneratedAt: res.GeneratedAt.Format("2006-01-02T15:04:05Z"),
			DroppedRows: res.DroppedRows,
			Warnings:    res.Warnings,
		},
	}

	enc := json.NewEncoder(w)
	if !f.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(envelope); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
