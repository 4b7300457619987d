package tabular

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectRoles(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    Roles
	}{
		{
			name:    "canonical labels",
			columns: []string{"kecamatan", "potensi", "realisasi"},
			want:    Roles{Region: 0, Potensi: 1, Realisasi: 2},
		},
		{
			name:    "synonym labels",
			columns: []string{"Wilayah", "Target", "Capaian"},
			want:    Roles{Region: 0, Potensi: 1, Realisasi: 2},
		},
		{
			name:    "shuffled order",
			columns: []string{"nilai potensi", "nama kecamatan", "akuisisi"},
			want:    Roles{Region: 1, Potensi: 0, Realisasi: 2},
		},
		{
			name:    "no realisasi column",
			columns: []string{"daerah", "target 2025"},
			want:    Roles{Region: 0, Potensi: 1, Realisasi: -1},
		},
		{
			name:    "first match wins",
			columns: []string{"lokasi", "wilayah", "potensi", "nilai"},
			want:    Roles{Region: 0, Potensi: 2, Realisasi: -1},
		},
		{
			name:    "substring match is case-insensitive",
			columns: []string{"KODE KECAMATAN", "TOTAL POTENSI", "REALISASI AKHIR"},
			want:    Roles{Region: 0, Potensi: 1, Realisasi: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectRoles(tt.columns)
			if err != nil {
				t.Fatalf("DetectRoles(%v) error: %v", tt.columns, err)
			}
			if got != tt.want {
				t.Errorf("DetectRoles(%v) = %+v, want %+v", tt.columns, got, tt.want)
			}
		})
	}
}

func TestDetectRoles_MissingRegion(t *testing.T) {
	_, err := DetectRoles([]string{"id", "potensi", "realisasi"})
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("want MissingColumnError, got %v", err)
	}
	if mce.Role != RoleRegion {
		t.Errorf("Role = %q, want %q", mce.Role, RoleRegion)
	}
	if len(mce.Hints) == 0 {
		t.Error("Hints should carry the keyword list")
	}
}

func TestDetectRoles_MissingPotensi(t *testing.T) {
	_, err := DetectRoles([]string{"kecamatan", "jumlah", "keterangan"})
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("want MissingColumnError, got %v", err)
	}
	if mce.Role != RolePotensi {
		t.Errorf("Role = %q, want %q", mce.Role, RolePotensi)
	}
}

func TestDetectRoles_NeverClaimsSameColumnTwice(t *testing.T) {
	// "potensi real" satisfies both potensi and realisasi keywords; it must
	// go to potensi (checked earlier) and realisasi must fall through to the
	// next matching column.
	got, err := DetectRoles([]string{"kecamatan", "potensi real", "capaian"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Roles{Region: 0, Potensi: 1, Realisasi: 2}
	if got != want {
		t.Errorf("DetectRoles = %+v, want %+v", got, want)
	}

	// With no second candidate, realisasi stays undetected rather than
	// reusing the claimed column.
	got, err = DetectRoles([]string{"kecamatan", "potensi real"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HasRealisasi() {
		t.Errorf("Realisasi = %d, want unclaimed (-1)", got.Realisasi)
	}
}

func TestMissingColumnError_Message(t *testing.T) {
	err := &MissingColumnError{Role: RolePotensi, Hints: []string{"potensi", "target"}}
	msg := err.Error()
	for _, want := range []string{"potensi", "target"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should mention hint %q", msg, want)
		}
	}
}
