// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
	"github.com/YaanFzl/VisualisasiBogor/internal/region"
)

func init() {
	RegisterFormatter(NewChartFormatter())
}

// chartTopN limits the bar chart to the largest regions so labels stay
// readable.
const chartTopN = 10

// ChartFormatter writes a grouped potensi/realisasi bar chart as PNG.
type ChartFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*ChartFormatter)(nil)

// NewChartFormatter returns a ChartFormatter.
func NewChartFormatter() *ChartFormatter { return &ChartFormatter{} }

// Name returns the format name.
func (f *ChartFormatter) Name() string { return "chart" }

// Format renders the top regions by potensi as side-by-side bars.
func (f *ChartFormatter) Format(res *pipeline.Result, w io.Writer) error {
	ranked := make([]region.Record, len(res.Records))
	copy(ranked, res.Records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Potensi > ranked[j].Potensi
	})
	if len(ranked) > chartTopN {
		ranked = ranked[:chartTopN]
	}

	p := plot.New()
	p.Title.Text = "Potensi vs Realisasi per Kecamatan"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Nilai"

	potensi := make(plotter.Values, len(ranked))
	realisasi := make(plotter.Values, len(ranked))
	labels := make([]string, len(ranked))
	var yMax float64
	for i, rec := range ranked {
		potensi[i] = rec.Potensi
		realisasi[i] = rec.Realisasi
		labels[i] = rec.Kecamatan
		yMax = math.Max(yMax, math.Max(rec.Potensi, rec.Realisasi))
	}

	barWidth := vg.Points(16)
	potensiBars, err := plotter.NewBarChart(potensi, barWidth)
	if err != nil {
		return fmt.Errorf("build potensi bars: %w", err)
	}
	potensiBars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	potensiBars.LineStyle.Width = vg.Length(0)
	potensiBars.Offset = -barWidth / 2

	realisasiBars, err := plotter.NewBarChart(realisasi, barWidth)
	if err != nil {
		return fmt.Errorf("build realisasi bars: %w", err)
	}
	realisasiBars.Color = color.RGBA{R: 40, G: 167, B: 69, A: 255}
	realisasiBars.LineStyle.Width = vg.Length(0)
	realisasiBars.Offset = barWidth / 2

	p.Add(potensiBars, realisasiBars)
	p.Legend.Add("Potensi", potensiBars)
	p.Legend.Add("Realisasi", realisasiBars)
	p.Legend.Top = true

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0
	p.Y.Max = yMax * 1.15

	wt, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
