package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/YaanFzl/VisualisasiBogor/internal/source"
)

func TestFetchTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","data":[
			{"kecamatan":"Citeureup","potensi":33537,"realisasi":26829},
			{"kecamatan":"Cibinong","potensi":25000,"realisasi":20000}
		]}`))
	}))
	defer srv.Close()

	c := &Client{}
	tbl, err := c.FetchTable(context.Background(), srv.URL)
	require.NoError(t, err)

	require.Equal(t, []string{"kecamatan", "potensi", "realisasi"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	require.Equal(t, "Citeureup", tbl.Cell(0, 0))
	require.Equal(t, "33537", tbl.Cell(0, 1))
}

func TestFetchTable_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","data":[]}`))
	}))
	defer srv.Close()

	c := &Client{}
	_, err := c.FetchTable(context.Background(), srv.URL)
	var ue *source.UnavailableError
	require.ErrorAs(t, err, &ue)
}

func TestFetchTable_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Client{}
	_, err := c.FetchTable(context.Background(), srv.URL)
	var ue *source.UnavailableError
	require.ErrorAs(t, err, &ue)
}

func TestFetchTable_TransportError(t *testing.T) {
	c := &Client{}
	_, err := c.FetchTable(context.Background(), "http://127.0.0.1:1/unreachable")
	var ue *source.UnavailableError
	require.ErrorAs(t, err, &ue)
}

func TestFetchTable_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","data":[]}`))
	}))
	defer srv.Close()

	c := &Client{}
	tbl, err := c.FetchTable(context.Background(), srv.URL)
	require.NoError(t, err)
	require.True(t, tbl.Empty())
}

func TestFetchTable_UsesCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"status":"ok","data":[{"kecamatan":"Parung","potensi":1}]}`))
	}))
	defer srv.Close()

	c := &Client{Cache: NewMemoryCache()}
	ctx := context.Background()

	_, err := c.FetchTable(ctx, srv.URL)
	require.NoError(t, err)
	_, err = c.FetchTable(ctx, srv.URL)
	require.NoError(t, err)

	require.Equal(t, int32(1), hits.Load(), "second fetch should be served from cache")
}

func TestFetchTable_RaggedObjects(t *testing.T) {
	// Keys missing from a row read as empty cells; keys first seen in later
	// rows are appended after the first row's order.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","data":[
			{"kecamatan":"Ciawi","potensi":100},
			{"kecamatan":"Cariu","potensi":200,"realisasi":50}
		]}`))
	}))
	defer srv.Close()

	c := &Client{}
	tbl, err := c.FetchTable(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, []string{"kecamatan", "potensi", "realisasi"}, tbl.Columns)
	require.Equal(t, "", tbl.Cell(0, 2))
	require.Equal(t, "50", tbl.Cell(1, 2))
}

func TestMemoryCache_TTL(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Unix(1000, 0)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("v"), 5*time.Minute)

	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, []byte("v"), got)

	// Still fresh just inside the window.
	now = now.Add(5*time.Minute - time.Second)
	_, ok = cache.Get(ctx, "k")
	require.True(t, ok)

	// Expired past the window.
	now = now.Add(2 * time.Second)
	_, ok = cache.Get(ctx, "k")
	require.False(t, ok)
}

func TestMemoryCache_MissingKey(t *testing.T) {
	cache := NewMemoryCache()
	_, ok := cache.Get(context.Background(), "absent")
	require.False(t, ok)
}

func TestUnavailableError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &source.UnavailableError{Name: "x", Err: cause}
	require.ErrorIs(t, err, cause)
}
