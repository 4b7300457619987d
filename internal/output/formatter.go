// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package output defines the Formatter interface for writing render-cycle
// results in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
)

// Formatter writes a render-cycle result to the given writer in a specific
// format.
type Formatter interface {
	// Name returns the format name (e.g., "json", "table", "html").
	Name() string

	// Format writes the result to w.
	Format(res *pipeline.Result, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if
// not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// formatNames returns a comma-separated sorted list of registered names.
func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
