// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
	"github.com/YaanFzl/VisualisasiBogor/internal/region"
)

func init() {
	RegisterFormatter(NewTableFormatter())
}

// TableFormatter renders the monitoring table and reconciliation banner for
// the terminal.
type TableFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TableFormatter)(nil)

// NewTableFormatter returns a TableFormatter.
func NewTableFormatter() *TableFormatter { return &TableFormatter{} }

// Name returns the format name.
func (f *TableFormatter) Name() string { return "table" }

// Format writes summary cards, the per-kecamatan monitoring table sorted by
// capaian descending, and the unmatched-region list.
func (f *TableFormatter) Format(res *pipeline.Result, w io.Writer) error {
	bold := color.New(color.Bold)

	if _, err := fmt.Fprintf(w, "%s\n", bold.Sprint("Potensi & Realisasi")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err := fmt.Fprintf(w, "  Total Potensi: %s   Total Realisasi: %s   Total Sisa: %s   Capaian: %.1f%%\n\n",
		formatNumber(res.Totals.Potensi),
		formatNumber(res.Totals.Realisasi),
		formatNumber(res.Totals.Sisa),
		res.Totals.Persentase)
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	tbl := NewTable(
		Column{Header: "#", Align: AlignRight},
		Column{Header: "Kecamatan"},
		Column{Header: "Potensi", Align: AlignRight},
		Column{Header: "Realisasi", Align: AlignRight},
		Column{Header: "Sisa", Align: AlignRight},
		Column{Header: "Capaian", Align: AlignRight, Color: colorCapaian},
	)

	ranked := make([]region.Record, len(res.Records))
	copy(ranked, res.Records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Persentase > ranked[j].Persentase
	})
	for i, rec := range ranked {
		tbl.AddRow(
			fmt.Sprintf("%d", i+1),
			rec.Kecamatan,
			formatNumber(rec.Potensi),
			formatNumber(rec.Realisasi),
			formatNumber(rec.Sisa),
			fmt.Sprintf("%.1f%%", rec.Persentase),
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n  Matched: %d/%d kecamatan\n", res.Summary.Matched, res.Summary.Total); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	if len(res.Summary.Unmatched) > 0 {
		if _, err := fmt.Fprintf(w, "  No data: %s\n", strings.Join(res.Summary.Unmatched, ", ")); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	for _, warning := range res.Warnings {
		if _, err := fmt.Fprintf(w, "  ! %s\n", warning); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	return nil
}

// Shared color printers for capaian cells.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
)

// colorCapaian colors a "NN.N%" cell by its achievement bucket.
func colorCapaian(val string) string {
	var persen float64
	if _, err := fmt.Sscanf(val, "%f%%", &persen); err != nil {
		return val
	}
	switch region.ClassifyPercent(persen) {
	case region.BucketGood:
		return colorGreen.Sprint(val)
	case region.BucketFair:
		return colorYellow.Sprint(val)
	case region.BucketPoor:
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// formatNumber renders a float with thousands separators, dropping the
// fraction for whole values ("33,537", "66.7").
func formatNumber(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	intPart, fracPart, _ := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}
	var parts []string
	for len(intPart) > 3 {
		parts = append([]string{intPart[len(intPart)-3:]}, parts...)
		intPart = intPart[:len(intPart)-3]
	}
	parts = append([]string{intPart}, parts...)

	out := sign + strings.Join(parts, ",")
	if fracPart != "0" {
		out += "." + fracPart
	}
	return out
}
