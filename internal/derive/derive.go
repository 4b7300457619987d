// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package derive turns a detected table into region records with computed
// metrics: sisa, persentase, normalized join keys, and progress buckets.
package derive

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/YaanFzl/VisualisasiBogor/internal/region"
	"github.com/YaanFzl/VisualisasiBogor/internal/tabular"
)

// Result is the derived working set plus data-quality observations.
type Result struct {
	// Records is the augmented table, in source row order.
	Records []region.Record

	// Dropped counts rows excluded because their potensi value failed
	// numeric coercion. Row-local, non-fatal.
	Dropped int

	// Duplicates lists normalized keys shared by more than one record.
	// Not an error; the matcher deterministically picks the first record,
	// but callers should surface these for data-quality diagnosis.
	Duplicates []string

	// Warnings carries non-fatal conditions worth telling the user about.
	Warnings []string
}

// Derive computes per-region metrics from a table whose column roles have
// already been detected. Rows with unparseable potensi are dropped; an
// unparseable or absent realisasi falls back to 0.
func Derive(tbl tabular.Table, roles tabular.Roles) Result {
	var res Result
	if !roles.HasRealisasi() {
		res.Warnings = append(res.Warnings, "no realization column detected; realisasi set to 0 for all regions")
	}

	seen := make(map[string]int)
	overAchieved := 0
	for i := range tbl.Rows {
		potensi, ok := coerce(tbl.Cell(i, roles.Potensi))
		if !ok {
			res.Dropped++
			continue
		}

		var realisasi float64
		if roles.HasRealisasi() {
			// Invalid realization is a fallback to 0, not a drop.
			realisasi, _ = coerce(tbl.Cell(i, roles.Realisasi))
		}

		name := region.CleanName(tbl.Cell(i, roles.Region))
		rec := region.Record{
			Kecamatan: name,
			Potensi:   potensi,
			Realisasi: realisasi,
			Sisa:      potensi - realisasi,
			Key:       region.Normalize(name),
		}
		if potensi > 0 {
			rec.Persentase = realisasi / potensi * 100
		}
		if rec.Persentase > 100 {
			overAchieved++
		}
		seen[rec.Key]++
		res.Records = append(res.Records, rec)
	}

	for key, n := range seen {
		if n > 1 && key != "" {
			res.Duplicates = append(res.Duplicates, key)
		}
	}
	sort.Strings(res.Duplicates)
	if len(res.Duplicates) > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d duplicate region key(s) in source data; first occurrence wins on the map", len(res.Duplicates)))
	}
	if overAchieved > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d region(s) report realisasi above potensi; capaian shown unclamped", overAchieved))
	}
	return res
}

// coerce parses a cell as a number. It tolerates surrounding whitespace and
// thousands separators ("33,537"); anything else unparseable reports false.
func coerce(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Totals aggregates the working set for the summary cards: sums of potensi,
// realisasi, and sisa, plus the overall capaian percentage computed from the
// sums (not the mean of per-region percentages).
type Totals struct {
	Potensi    float64 `json:"potensi"`
	Realisasi  float64 `json:"realisasi"`
	Sisa       float64 `json:"sisa"`
	Persentase float64 `json:"persentase"`
	Regions    int     `json:"regions"`
}

// Total computes summary aggregates over the derived records.
func Total(records []region.Record) Totals {
	t := Totals{Regions: len(records)}
	for _, r := range records {
		t.Potensi += r.Potensi
		t.Realisasi += r.Realisasi
		t.Sisa += r.Sisa
	}
	if t.Potensi > 0 {
		t.Persentase = t.Realisasi / t.Potensi * 100
	}
	return t
}
