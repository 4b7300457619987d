// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package tabular

import (
	"fmt"
	"strings"
)

// Role identifies what a detected column is used for.
type Role string

// Column roles, checked in this order. A column claimed by an earlier role
// is never assigned to a later one.
const (
	RoleRegion    Role = "region"
	RolePotensi   Role = "potensi"
	RoleRealisasi Role = "realisasi"
)

// Keyword hints per role. A column matches a role when its lower-cased
// label contains any keyword; the first matching column wins.
var roleKeywords = map[Role][]string{
	RoleRegion:    {"kecamatan", "kec", "wilayah", "daerah", "lokasi"},
	RolePotensi:   {"potensi", "pot", "target", "nilai"},
	RoleRealisasi: {"realisasi", "real", "capaian", "akuisisi"},
}

// MissingColumnError reports that a required role column could not be
// detected. It is fatal for the pipeline run.
type MissingColumnError struct {
	Role  Role
	Hints []string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no %s column found: expected a column label containing one of %s",
		e.Role, strings.Join(e.Hints, ", "))
}

// Roles holds the detected column indexes. Realisasi is -1 when the source
// has no realization column; all regions then default to zero realization.
type Roles struct {
	Region    int
	Potensi   int
	Realisasi int
}

// HasRealisasi reports whether a realization column was detected.
func (r Roles) HasRealisasi() bool { return r.Realisasi >= 0 }

// DetectRoles classifies columns by keyword heuristics. Region and potensi
// are required; their absence yields a MissingColumnError. Realisasi is
// optional. Roles are resolved in fixed order and a column index is never
// assigned twice: a later role skips indexes already claimed.
func DetectRoles(columns []string) (Roles, error) {
	lowered := make([]string, len(columns))
	for i, c := range columns {
		lowered[i] = strings.ToLower(c)
	}

	claimed := make(map[int]bool)
	find := func(role Role) int {
		for i, label := range lowered {
			if claimed[i] {
				continue
			}
			for _, kw := range roleKeywords[role] {
				if strings.Contains(label, kw) {
					claimed[i] = true
					return i
				}
			}
		}
		return -1
	}

	roles := Roles{Region: find(RoleRegion), Potensi: -1, Realisasi: -1}
	if roles.Region < 0 {
		return Roles{}, &MissingColumnError{Role: RoleRegion, Hints: roleKeywords[RoleRegion]}
	}
	roles.Potensi = find(RolePotensi)
	if roles.Potensi < 0 {
		return Roles{}, &MissingColumnError{Role: RolePotensi, Hints: roleKeywords[RolePotensi]}
	}
	roles.Realisasi = find(RoleRealisasi)
	return roles, nil
}
