// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package tabular

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Canonical worksheet names for the two-sheet ingestion path. One row per
// event: POTENSI lists potential units, AKUISISI lists acquired ones.
const (
	SheetPotensi  = "POTENSI"
	SheetAkuisisi = "AKUISISI"
)

// Workbook wraps an open Excel file for sheet-level reads.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook reads an Excel workbook from r.
func OpenWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error { return w.f.Close() }

// Sheets returns the worksheet names in workbook order.
func (w *Workbook) Sheets() []string { return w.f.GetSheetList() }

// FindSheet returns the actual sheet name matching want case-insensitively,
// and whether it exists.
func (w *Workbook) FindSheet(want string) (string, bool) {
	for _, name := range w.f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(name), want) {
			return name, true
		}
	}
	return "", false
}

// HasEventSheets reports whether the workbook carries the canonical
// POTENSI/AKUISISI sheet pair for the two-sheet ingestion path.
func (w *Workbook) HasEventSheets() bool {
	_, hasPot := w.FindSheet(SheetPotensi)
	_, hasAku := w.FindSheet(SheetAkuisisi)
	return hasPot && hasAku
}

// ReadSheet reads one worksheet into a Table. The first non-empty row is the
// header; header labels are trimmed and upper-cased, matching how event
// sheets are keyed downstream. Fully empty rows are dropped.
func (w *Workbook) ReadSheet(name string) (Table, error) {
	actual, ok := w.FindSheet(name)
	if !ok {
		return Table{}, fmt.Errorf("sheet %q not found (have: %s)", name, strings.Join(w.Sheets(), ", "))
	}
	raw, err := w.f.GetRows(actual)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", actual, err)
	}

	var tbl Table
	for _, rec := range raw {
		if rowEmpty(rec) {
			continue
		}
		if tbl.Columns == nil {
			cols := make([]string, len(rec))
			for i, c := range rec {
				cols[i] = strings.ToUpper(strings.TrimSpace(c))
			}
			tbl.Columns = cols
			continue
		}
		tbl.Rows = append(tbl.Rows, rec)
	}
	if tbl.Columns == nil {
		return Table{}, fmt.Errorf("sheet %q has no header row", actual)
	}
	return tbl, nil
}

// ReadFirstSheet reads the first worksheet. Fallback for workbooks without
// the canonical sheet pair.
func (w *Workbook) ReadFirstSheet() (Table, error) {
	sheets := w.Sheets()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("workbook has no sheets")
	}
	return w.ReadSheet(sheets[0])
}
