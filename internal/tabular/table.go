// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package tabular provides a format-agnostic table primitive, readers for
// CSV and Excel sources, and the heuristic column-role detector.
package tabular

// Table is a generic tabular dataset: ordered column labels plus rows of
// string cells. Readers produce it; the detector and deriver consume it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Cell returns the cell at (row, col), or "" when the row is ragged and has
// no such column. Readers do not pad short rows.
func (t Table) Cell(row, col int) string {
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Len returns the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }
