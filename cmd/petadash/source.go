// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/YaanFzl/VisualisasiBogor/internal/fetch"
	"github.com/YaanFzl/VisualisasiBogor/internal/geo"
	"github.com/YaanFzl/VisualisasiBogor/internal/match"
	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
	"github.com/YaanFzl/VisualisasiBogor/internal/source"
	"github.com/YaanFzl/VisualisasiBogor/internal/tabular"
)

// sourceOptions is the resolved data-source selection after merging flags
// and config file values.
type sourceOptions struct {
	dataFile string
	dataURL  string
	geoPath  string
	palette  string
}

// fill backfills unset options from config file values.
func (o *sourceOptions) fill(dataFile, dataURL, geoPath, palette string) {
	if o.dataFile == "" {
		o.dataFile = dataFile
	}
	if o.dataURL == "" {
		o.dataURL = dataURL
	}
	if o.geoPath == "" {
		o.geoPath = geoPath
	}
	if o.palette == "" {
		o.palette = palette
	}
}

// buildInput loads the tabular source and boundary geometry into a pipeline
// input. The fetch client is only consulted when a URL source is selected.
func buildInput(ctx context.Context, opts sourceOptions, client *fetch.Client) (pipeline.Input, error) {
	var in pipeline.Input

	policy, err := match.ParsePolicy(opts.palette)
	if err != nil {
		return in, &exitCodeError{code: ExitInvalidArgs, msg: err.Error()}
	}
	in.Policy = policy

	switch {
	case opts.dataFile != "":
		if err := loadFileSource(opts.dataFile, &in); err != nil {
			return in, err
		}
	case opts.dataURL != "":
		tbl, err := client.FetchTable(ctx, opts.dataURL)
		if err != nil {
			var ua *source.UnavailableError
			if errors.As(err, &ua) {
				return in, &exitCodeError{code: ExitNoData, msg: err.Error()}
			}
			return in, err
		}
		in.Table = tbl
	default:
		return in, &exitCodeError{code: ExitInvalidArgs, msg: "no data source: pass --data or --url, or set one in .petadash.yaml"}
	}

	features, err := loadBoundaries(opts.geoPath)
	if err != nil {
		return in, err
	}
	in.Features = features
	return in, nil
}

// loadFileSource reads a local CSV or Excel file. An Excel workbook carrying
// both POTENSI and AKUISISI sheets selects the two-sheet event form.
func loadFileSource(path string, in *pipeline.Input) error {
	f, err := os.Open(path) //nolint:gosec // user-provided path
	if err != nil {
		return &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("open data file: %v", err)}
	}
	defer f.Close() //nolint:errcheck // read-only file

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".xlsm" {
		tbl, err := tabular.ReadCSV(f)
		if err != nil {
			return &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("read %s: %v", path, err)}
		}
		in.Table = tbl
		return nil
	}

	wb, err := tabular.OpenWorkbook(f)
	if err != nil {
		return &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("open workbook %s: %v", path, err)}
	}
	defer wb.Close() //nolint:errcheck // read-only workbook

	if wb.HasEventSheets() {
		potensi, err := wb.ReadSheet(tabular.SheetPotensi)
		if err != nil {
			return fmt.Errorf("read %s sheet: %w", tabular.SheetPotensi, err)
		}
		akuisisi, err := wb.ReadSheet(tabular.SheetAkuisisi)
		if err != nil {
			return fmt.Errorf("read %s sheet: %w", tabular.SheetAkuisisi, err)
		}
		slog.Debug("two-sheet event form detected", "file", path)
		in.Potensi = &potensi
		in.Akuisisi = &akuisisi
		return nil
	}

	tbl, err := wb.ReadFirstSheet()
	if err != nil {
		return &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("read %s: %v", path, err)}
	}
	in.Table = tbl
	return nil
}

// loadBoundaries loads boundary geometry. An absent file degrades to the
// built-in placeholder boxes so a render always has a map; a present but
// malformed file is a hard error.
func loadBoundaries(path string) (*geo.FeatureCollection, error) {
	if path == "" {
		slog.Info("no geojson configured, using placeholder boundaries")
		return geo.Placeholder(), nil
	}
	fc, err := geo.LoadFile(path)
	if err != nil {
		var ua *source.UnavailableError
		if errors.As(err, &ua) {
			slog.Warn("geojson unavailable, using placeholder boundaries", "path", path, "err", err)
			return geo.Placeholder(), nil
		}
		return nil, &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("read geojson %s: %v", path, err)}
	}
	return fc, nil
}
