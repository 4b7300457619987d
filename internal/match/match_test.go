package match

import (
	"testing"

	"github.com/YaanFzl/VisualisasiBogor/internal/geo"
	"github.com/YaanFzl/VisualisasiBogor/internal/region"
)

func record(name string, potensi, realisasi float64) region.Record {
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
	return rec
}

func feature(props map[string]any) geo.Feature {
	return geo.Feature{Type: "Feature", Properties: props}
}

func collection(features ...geo.Feature) *geo.FeatureCollection {
	return &geo.FeatureCollection{Type: "FeatureCollection", Features: features}
}

func TestMatch_JoinsOnNormalizedName(t *testing.T) {
	// Scenario A: trailing whitespace in the feature name still matches.
	records := []region.Record{record("Citeureup", 100, 80)}
	fc := collection(feature(map[string]any{"NAME_3": "Citeureup "}))

	descriptors, summary := Match(fc, records, Options{})

	if summary.Matched != 1 || summary.Total != 1 {
		t.Fatalf("summary = %d/%d, want 1/1", summary.Matched, summary.Total)
	}
	d := descriptors[0]
	if !d.Matched {
		t.Fatal("feature should be matched")
	}
	if d.Metrics.Persentase != 80 {
		t.Errorf("persentase = %v, want 80", d.Metrics.Persentase)
	}
	if d.ProgressColor != region.BucketGood.Color() {
		t.Errorf("progress color = %q, want good green", d.ProgressColor)
	}
}

func TestMatch_UnmatchedGetsNoDataStyle(t *testing.T) {
	records := []region.Record{record("Cibinong", 100, 50)}
	fc := collection(
		feature(map[string]any{"NAME_3": "Cibinong"}),
		feature(map[string]any{"NAME_3": "Sukajaya"}),
	)

	descriptors, summary := Match(fc, records, Options{})

	if summary.Matched != 1 || summary.Total != 2 {
		t.Fatalf("summary = %d/%d, want 1/2", summary.Matched, summary.Total)
	}
	if len(summary.Unmatched) != 1 || summary.Unmatched[0] != "Sukajaya" {
		t.Errorf("unmatched = %v, want [Sukajaya]", summary.Unmatched)
	}

	d := descriptors[1]
	if d.Matched {
		t.Fatal("Sukajaya should be unmatched")
	}
	if d.FillColor != NoDataFill {
		t.Errorf("fill = %q, want no-data gray", d.FillColor)
	}
	if d.FillOpacity != NoDataOpacity {
		t.Errorf("opacity = %v, want reduced %v", d.FillOpacity, NoDataOpacity)
	}
	if d.Metrics != nil {
		t.Error("unmatched descriptor must not carry metrics")
	}
}

func TestMatch_UnknownSchema(t *testing.T) {
	// Scenario E: empty properties resolve to "Unknown" and stay unmatched.
	records := []region.Record{record("Cibinong", 100, 50)}
	fc := collection(feature(map[string]any{}))

	descriptors, summary := Match(fc, records, Options{})

	if descriptors[0].Name != geo.UnknownName {
		t.Errorf("name = %q, want %q", descriptors[0].Name, geo.UnknownName)
	}
	if summary.Matched != 0 {
		t.Errorf("matched = %d, want 0", summary.Matched)
	}
	if len(summary.Unmatched) != 1 || summary.Unmatched[0] != geo.UnknownName {
		t.Errorf("unmatched = %v, want [Unknown]", summary.Unmatched)
	}
}

func TestMatch_EmptyCollection(t *testing.T) {
	records := []region.Record{record("Cibinong", 100, 50)}

	for _, fc := range []*geo.FeatureCollection{nil, collection()} {
		descriptors, summary := Match(fc, records, Options{})
		if summary.Total != 0 || summary.Matched != 0 || len(descriptors) != 0 {
			t.Errorf("empty collection: summary=%+v descriptors=%d, want zeros", summary, len(descriptors))
		}
	}
}

func TestMatch_DuplicateKeysFirstWins(t *testing.T) {
	records := []region.Record{
		record("Cibinong", 100, 10),
		record("CIBINONG", 200, 20), // same normalized key, later row
	}
	fc := collection(feature(map[string]any{"NAME_3": "Cibinong"}))

	descriptors, _ := Match(fc, records, Options{})
	if descriptors[0].Metrics.Potensi != 100 {
		t.Errorf("potensi = %v, want the first table row (100)", descriptors[0].Metrics.Potensi)
	}
}

func TestMatch_SequentialDistinctCycles(t *testing.T) {
	palette := []string{"#111111", "#222222", "#333333"}
	records := []region.Record{
		record("A", 1, 0), record("B", 1, 0), record("C", 1, 0), record("D", 1, 0),
	}
	fc := collection(
		feature(map[string]any{"name": "A"}),
		feature(map[string]any{"name": "zzz"}), // unmatched, must not consume a color
		feature(map[string]any{"name": "B"}),
		feature(map[string]any{"name": "C"}),
		feature(map[string]any{"name": "D"}), // wraps around
	)

	descriptors, _ := Match(fc, records, Options{Policy: SequentialDistinct, Palette: palette})

	want := []string{"#111111", NoDataFill, "#222222", "#333333", "#111111"}
	for i, d := range descriptors {
		if d.FillColor != want[i] {
			t.Errorf("descriptor %d fill = %q, want %q", i, d.FillColor, want[i])
		}
	}
}

func TestMatch_ValueRankedPalette(t *testing.T) {
	palette := []string{"#low", "#mid", "#high"}
	records := []region.Record{
		record("Low", 0, 0),
		record("Mid", 50, 0),
		record("High", 100, 0),
	}
	fc := collection(
		feature(map[string]any{"name": "High"}),
		feature(map[string]any{"name": "Low"}),
		feature(map[string]any{"name": "Mid"}),
	)

	descriptors, _ := Match(fc, records, Options{Policy: ValueRanked, Palette: palette})

	if descriptors[0].FillColor != "#high" {
		t.Errorf("max value fill = %q, want #high", descriptors[0].FillColor)
	}
	if descriptors[1].FillColor != "#low" {
		t.Errorf("min value fill = %q, want #low", descriptors[1].FillColor)
	}
	if descriptors[2].FillColor != "#mid" {
		t.Errorf("mid value fill = %q, want #mid", descriptors[2].FillColor)
	}
}

func TestMatch_ValueRankedDegenerateRange(t *testing.T) {
	// All potentials equal: every matched feature gets palette index 0.
	palette := []string{"#first", "#second"}
	records := []region.Record{record("A", 42, 0), record("B", 42, 0)}
	fc := collection(
		feature(map[string]any{"name": "A"}),
		feature(map[string]any{"name": "B"}),
	)

	descriptors, _ := Match(fc, records, Options{Policy: ValueRanked, Palette: palette})
	for i, d := range descriptors {
		if d.FillColor != "#first" {
			t.Errorf("descriptor %d fill = %q, want palette index 0", i, d.FillColor)
		}
	}
}

func TestMatch_SummaryInvariant(t *testing.T) {
	records := []region.Record{record("Cibinong", 100, 50)}
	fc := collection(
		feature(map[string]any{"name": "Cibinong"}),
		feature(map[string]any{"name": "Parung"}),
		feature(map[string]any{}),
	)

	_, summary := Match(fc, records, Options{})
	if summary.Matched > summary.Total {
		t.Errorf("matched %d > total %d", summary.Matched, summary.Total)
	}
	if len(summary.Unmatched) != summary.Total-summary.Matched {
		t.Errorf("unmatched len %d != total-matched %d", len(summary.Unmatched), summary.Total-summary.Matched)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{"value-ranked", ValueRanked, false},
		{"sequential", SequentialDistinct, false},
		{"", SequentialDistinct, false},
		{"rainbow", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePolicy(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}
