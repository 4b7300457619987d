// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package merge aggregates the two-sheet ingestion form (a POTENSI event
// list and an AKUISISI event list, one row per occurrence) into the
// unified per-region table the deriver expects.
package merge

import (
	"strconv"
	"strings"

	"github.com/YaanFzl/VisualisasiBogor/internal/region"
	"github.com/YaanFzl/VisualisasiBogor/internal/source"
	"github.com/YaanFzl/VisualisasiBogor/internal/tabular"
)

// Region-identifier detection for event sheets: exact canonical label
// first, then the secondary code label, then any label containing KEC.
const (
	labelKecamatan     = "KECAMATAN"
	labelKodeKecamatan = "KODE KECAMATAN"
)

// findRegionColumn locates the region-identifying column of an event sheet.
// Returns -1 when none qualifies.
func findRegionColumn(columns []string) int {
	for i, c := range columns {
		if strings.EqualFold(strings.TrimSpace(c), labelKecamatan) {
			return i
		}
	}
	for i, c := range columns {
		if strings.EqualFold(strings.TrimSpace(c), labelKodeKecamatan) {
			return i
		}
	}
	for i, c := range columns {
		if strings.Contains(strings.ToUpper(c), "KEC") {
			return i
		}
	}
	return -1
}

// findValueColumn locates a numeric potensi value column: the first label
// containing POTENSI or NILAI that is not the identifier column. Returns -1
// when the sheet has no value column and rows should be counted instead.
func findValueColumn(columns []string, regionCol int) int {
	for i, c := range columns {
		if i == regionCol {
			continue
		}
		upper := strings.ToUpper(c)
		if strings.Contains(upper, "POTENSI") || strings.Contains(upper, "NILAI") {
			return i
		}
	}
	return -1
}

// MergeEventSheets outer-joins per-region aggregates of the two event
// sheets into the canonical kecamatan/potensi/realisasi table. The potensi
// sheet sums its value column when one is detectable, otherwise counts rows;
// the akuisisi sheet always counts rows (one row = one acquired unit).
// Region identifiers are cleaned of code prefixes before joining; a missing
// side of the join fills with 0 and aggregates are truncated to integers.
func MergeEventSheets(potensi, akuisisi tabular.Table) (tabular.Table, error) {
	potCol := findRegionColumn(potensi.Columns)
	if potCol < 0 {
		return tabular.Table{}, &source.UnavailableError{
			Name: tabular.SheetPotensi,
			Err:  &tabular.MissingColumnError{Role: tabular.RoleRegion, Hints: []string{labelKecamatan, labelKodeKecamatan, "KEC"}},
		}
	}
	akuCol := findRegionColumn(akuisisi.Columns)
	if akuCol < 0 {
		return tabular.Table{}, &source.UnavailableError{
			Name: tabular.SheetAkuisisi,
			Err:  &tabular.MissingColumnError{Role: tabular.RoleRegion, Hints: []string{labelKecamatan, labelKodeKecamatan, "KEC"}},
		}
	}

	potTotals := aggregatePotensi(potensi, potCol)
	akuTotals := countRows(akuisisi, akuCol)

	// Outer join on cleaned identifier; preserve first-seen order for a
	// deterministic output table.
	names := make([]string, 0, len(potTotals.order)+len(akuTotals.order))
	seen := make(map[string]bool)
	for _, n := range potTotals.order {
		names = append(names, n)
		seen[n] = true
	}
	for _, n := range akuTotals.order {
		if !seen[n] {
			names = append(names, n)
		}
	}

	out := tabular.Table{Columns: []string{"kecamatan", "potensi", "realisasi"}}
	for _, name := range names {
		out.Rows = append(out.Rows, []string{
			name,
			strconv.Itoa(int(potTotals.values[name])),
			strconv.Itoa(int(akuTotals.values[name])),
		})
	}
	return out, nil
}

// aggregate holds per-region totals with first-seen ordering.
type aggregate struct {
	values map[string]float64
	order  []string
}

func newAggregate() aggregate {
	return aggregate{values: make(map[string]float64)}
}

func (a *aggregate) add(name string, v float64) {
	if _, ok := a.values[name]; !ok {
		a.order = append(a.order, name)
	}
	a.values[name] += v
}

// aggregatePotensi sums the value column per region when one exists, else
// counts rows. Invalid values coerce to 0 rather than dropping the row.
func aggregatePotensi(tbl tabular.Table, regionCol int) aggregate {
	agg := newAggregate()
	valueCol := findValueColumn(tbl.Columns, regionCol)
	for i := range tbl.Rows {
		name := region.CleanName(tbl.Cell(i, regionCol))
		if name == "" {
			continue
		}
		if valueCol < 0 {
			agg.add(name, 1)
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(tbl.Cell(i, valueCol)), 64)
		if err != nil {
			v = 0
		}
		agg.add(name, v)
	}
	return agg
}

// countRows counts occurrences per region, dropping empty identifiers.
func countRows(tbl tabular.Table, regionCol int) aggregate {
	agg := newAggregate()
	for i := range tbl.Rows {
		name := region.CleanName(tbl.Cell(i, regionCol))
		if name == "" {
			continue
		}
		agg.add(name, 1)
	}
	return agg
}

// HasValueColumn reports whether the potensi sheet carries a numeric value
// column, for user-facing messaging about sum-vs-count aggregation.
func HasValueColumn(columns []string) bool {
	return findValueColumn(columns, findRegionColumn(columns)) >= 0
}
