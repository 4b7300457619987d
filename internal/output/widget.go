// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are silently ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	bold := color.New(color.Bold)
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = padCell(bold.Sprint(col.Header), len(col.Header), widths[i], col.Align)
	}
	if err := writeLine(w, headers); err != nil {
		return err
	}

	rules := make([]string, len(t.columns))
	for i, width := range widths {
		rules[i] = strings.Repeat("-", width)
	}
	if err := writeLine(w, rules); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			display := row[i]
			if col.Color != nil {
				display = col.Color(row[i])
			}
			cells[i] = padCell(display, len(row[i]), widths[i], col.Align)
		}
		if err := writeLine(w, cells); err != nil {
			return err
		}
	}
	return nil
}

// padCell justifies display inside width columns. Padding is based on the
// raw cell length, not the ANSI-colored length.
func padCell(display string, rawLen, width int, align Alignment) string {
	n := width - rawLen
	if n < 0 {
		n = 0
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + display
	}
	return display + strings.Repeat(" ", n)
}

func writeLine(w io.Writer, cells []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
