// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YaanFzl/VisualisasiBogor/internal/config"
	"github.com/YaanFzl/VisualisasiBogor/internal/fetch"
	"github.com/YaanFzl/VisualisasiBogor/internal/output"
	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
)

// Render-specific flag values.
var (
	renderData    string
	renderURL     string
	renderGeoJSON string
	renderPalette string
	renderFormat  string
	renderOutput  string
)

// renderCmd runs one render cycle and writes it in the chosen format.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Run one render cycle and write the result",
	Long: `Read the configured data source once, derive per-kecamatan metrics,
match them against boundary geometry, and write the result. Formats: table
(terminal), json, html (self-contained dashboard page), chart (PNG bar
chart), xlsx (workbook download).`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderData, "data", "d", "", "local CSV or Excel source file")
	renderCmd.Flags().StringVar(&renderURL, "url", "", "remote JSON endpoint")
	renderCmd.Flags().StringVarP(&renderGeoJSON, "geojson", "g", "", "kecamatan boundary file (default: built-in placeholder)")
	renderCmd.Flags().StringVarP(&renderPalette, "palette", "p", "", "map coloring policy (sequential, value-ranked)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "table", "output format (table, json, html, chart, xlsx)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file path (default: stdout)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return &exitCodeError{code: ExitInvalidArgs, msg: err.Error()}
	}

	opts := sourceOptions{
		dataFile: renderData,
		dataURL:  renderURL,
		geoPath:  renderGeoJSON,
		palette:  renderPalette,
	}
	opts.fill(cfg.DataFile, cfg.DataURL, cfg.GeoJSON, cfg.Palette)

	ttl, err := cfg.TTL()
	if err != nil {
		return &exitCodeError{code: ExitInvalidArgs, msg: err.Error()}
	}
	client := &fetch.Client{Cache: fetch.NewMemoryCache(), TTL: ttl}

	in, err := buildInput(cmd.Context(), opts, client)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(in)
	if err != nil {
		return &exitCodeError{code: ExitNoData, msg: err.Error()}
	}

	return writeResult(res, in, renderFormat, renderOutput)
}

// writeResult formats res to the output path or stdout. The html format
// additionally embeds the boundary geometry for the map layer.
func writeResult(res *pipeline.Result, in pipeline.Input, format, outPath string) error {
	f, err := output.GetFormatter(format)
	if err != nil {
		return &exitCodeError{code: ExitInvalidArgs, msg: err.Error()}
	}
	if hf, ok := f.(*output.HTMLFormatter); ok {
		hf.Features = in.Features
	}

	w := os.Stdout
	if outPath != "" {
		w, err = os.Create(outPath) //nolint:gosec // user-provided path
		if err != nil {
			return &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("create output file: %v", err)}
		}
		defer w.Close() //nolint:errcheck // flushed by Format
	}
	return f.Format(res, w)
}
