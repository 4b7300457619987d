// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package config handles .petadash.yaml configuration files.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/YaanFzl/VisualisasiBogor/internal/match"
)

// FileName is the expected config file name in the working directory.
const FileName = ".petadash.yaml"

// Config represents the contents of a .petadash.yaml file. Flags override
// any value set here.
type Config struct {
	// DataFile is a local CSV or Excel source path.
	DataFile string `yaml:"data_file,omitempty"`

	// DataURL is the remote JSON source (apps-script style endpoint).
	DataURL string `yaml:"data_url,omitempty"`

	// GeoJSON is the boundary file path. Empty means the built-in
	// placeholder boundaries.
	GeoJSON string `yaml:"geojson,omitempty"`

	// Palette selects the map coloring policy: "sequential" or
	// "value-ranked".
	Palette string `yaml:"palette,omitempty"`

	// Listen is the serve address, e.g. ":8080".
	Listen string `yaml:"listen,omitempty"`

	// CacheTTL bounds staleness of cached remote fetches, as a Go
	// duration string ("5m", "90s"). Empty means the fetch default.
	CacheTTL string `yaml:"cache_ttl,omitempty"`

	// RedisAddr enables the shared Redis fetch cache when set.
	RedisAddr string `yaml:"redis_addr,omitempty"`
}

// Load reads the config file from dir. A missing file yields a zero-value
// Config and nil error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // user-provided directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	if _, err := match.ParsePolicy(c.Palette); err != nil {
		return fmt.Errorf("%s: %w", FileName, err)
	}
	if _, err := c.TTL(); err != nil {
		return err
	}
	return nil
}

// TTL parses CacheTTL. Empty means zero, which callers treat as the
// default fetch TTL.
func (c *Config) TTL() (time.Duration, error) {
	if c.CacheTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid cache_ttl %q: %w", FileName, c.CacheTTL, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: cache_ttl must not be negative", FileName)
	}
	return d, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
