// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV parses a CSV stream into a Table. The first record is the header;
// ragged records are tolerated. Fully empty rows are dropped.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("read csv: empty input")
	}
	if err != nil {
		return Table{}, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read csv row: %w", err)
		}
		if rowEmpty(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	return Table{Columns: header, Rows: rows}, nil
}

func rowEmpty(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
