// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

// Package fetch loads the remote tabular source: an apps-script style JSON
// endpoint returning {"status":"ok","data":[...]}. Responses are read
// through an injected TTL cache; failures degrade to "no data".
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/YaanFzl/VisualisasiBogor/internal/source"
	"github.com/YaanFzl/VisualisasiBogor/internal/tabular"
)

// DefaultTimeout bounds the blocking network wait for the remote source.
const DefaultTimeout = 10 * time.Second

// Client fetches the remote tabular source.
type Client struct {
	// HTTP is the transport. Nil means a default client with
	// DefaultTimeout.
	HTTP *http.Client

	// Cache, when non-nil, serves repeat fetches of the same URL within
	// TTL without touching the network.
	Cache Cache

	// TTL for cached responses. Zero means DefaultTTL.
	TTL time.Duration
}

// envelope is the wire shape of the remote endpoint.
type envelope struct {
	Status string            `json:"status"`
	Data   []json.RawMessage `json:"data"`
}

// FetchTable GETs url and converts the envelope's data rows into a Table.
// A transport failure, timeout, non-2xx response, or non-"ok" envelope
// status is reported as a source.UnavailableError so the caller can degrade
// rather than abort.
func (c *Client) FetchTable(ctx context.Context, url string) (tabular.Table, error) {
	body, ok := c.cached(ctx, url)
	if !ok {
		var err error
		body, err = c.get(ctx, url)
		if err != nil {
			return tabular.Table{}, err
		}
		c.store(ctx, url, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return tabular.Table{}, &source.UnavailableError{Name: url, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if env.Status != "ok" {
		return tabular.Table{}, &source.UnavailableError{Name: url, Err: fmt.Errorf("endpoint status %q", env.Status)}
	}
	return rowsToTable(env.Data)
}

func (c *Client) cached(ctx context.Context, url string) ([]byte, bool) {
	if c.Cache == nil {
		return nil, false
	}
	return c.Cache.Get(ctx, url)
}

func (c *Client) store(ctx context.Context, url string, body []byte) {
	if c.Cache == nil {
		return
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c.Cache.Set(ctx, url, body, ttl)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &source.UnavailableError{Name: url, Err: err}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &source.UnavailableError{Name: url, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // response body
	if resp.StatusCode != http.StatusOK {
		return nil, &source.UnavailableError{Name: url, Err: fmt.Errorf("http status %s", resp.Status)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &source.UnavailableError{Name: url, Err: err}
	}
	return body, nil
}

// rowsToTable flattens JSON objects into a Table. Column order follows the
// first row's key order; keys first appearing in later rows are appended in
// sorted order so detection stays deterministic.
func rowsToTable(rows []json.RawMessage) (tabular.Table, error) {
	var tbl tabular.Table
	if len(rows) == 0 {
		return tbl, nil
	}

	first, err := objectKeyOrder(rows[0])
	if err != nil {
		return tabular.Table{}, fmt.Errorf("decode data row: %w", err)
	}
	tbl.Columns = first
	known := make(map[string]bool, len(first))
	for _, k := range first {
		known[k] = true
	}

	decoded := make([]map[string]any, len(rows))
	var extra []string
	for i, raw := range rows {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return tabular.Table{}, fmt.Errorf("decode data row %d: %w", i, err)
		}
		decoded[i] = obj
		for k := range obj {
			if !known[k] {
				known[k] = true
				extra = append(extra, k)
			}
		}
	}
	sort.Strings(extra)
	tbl.Columns = append(tbl.Columns, extra...)

	for _, obj := range decoded {
		row := make([]string, len(tbl.Columns))
		for j, col := range tbl.Columns {
			row[j] = cellString(obj[col])
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

// objectKeyOrder extracts an object's key order as serialized, which
// encoding/json's map decoding would otherwise lose.
func objectKeyOrder(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("data row is not an object")
	}

	var keys []string
	depth := 0
	expectKey := true
	for dec.More() || depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch v := tok.(type) {
		case json.Delim:
			if v == '{' || v == '[' {
				depth++
			} else {
				depth--
			}
			if depth == 0 {
				expectKey = true
			}
		case string:
			if depth == 0 && expectKey {
				keys = append(keys, v)
				expectKey = false
				continue
			}
			if depth == 0 {
				expectKey = true
			}
		default:
			if depth == 0 {
				expectKey = true
			}
		}
	}
	return keys, nil
}

// cellString renders a JSON value as a table cell.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, _ := json.Marshal(val)
		return string(b)
	}
}
