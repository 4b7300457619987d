// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
)

func init() {
	RegisterFormatter(NewExcelFormatter())
}

// ExcelFormatter writes the working table as an xlsx workbook for download.
type ExcelFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*ExcelFormatter)(nil)

// NewExcelFormatter returns an ExcelFormatter.
func NewExcelFormatter() *ExcelFormatter { return &ExcelFormatter{} }

// Name returns the format name.
func (f *ExcelFormatter) Name() string { return "xlsx" }

// Format writes one sheet of derived metrics plus a totals row.
func (f *ExcelFormatter) Format(res *pipeline.Result, w io.Writer) error {
	wb := excelize.NewFile()
	defer wb.Close()

	const sheet = "Monitoring"
	if err := wb.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Kecamatan", "Potensi", "Realisasi", "Sisa", "Persentase"}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range res.Records {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{rec.Kecamatan, rec.Potensi, rec.Realisasi, rec.Sisa, rec.Persentase}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	totalCell := fmt.Sprintf("A%d", len(res.Records)+2)
	totals := []any{"TOTAL", res.Totals.Potensi, res.Totals.Realisasi, res.Totals.Sisa, res.Totals.Persentase}
	if err := wb.SetSheetRow(sheet, totalCell, &totals); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
