// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package source defines the shared error type for data sources that fail
// to load. A source being unavailable is recoverable: the pipeline degrades
// to a "no data" state instead of aborting.
package source

import "fmt"

// UnavailableError reports that a configured data source could not be
// loaded: a remote fetch failed or timed out, or a local file is absent.
type UnavailableError struct {
	// Name identifies the source (URL or file path).
	Name string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Name, e.Err)
}

// Unwrap supports errors.Is/As on the cause.
func (e *UnavailableError) Unwrap() error { return e.Err }
