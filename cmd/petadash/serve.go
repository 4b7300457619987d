// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/YaanFzl/VisualisasiBogor/internal/config"
	"github.com/YaanFzl/VisualisasiBogor/internal/fetch"
	"github.com/YaanFzl/VisualisasiBogor/internal/pipeline"
	"github.com/YaanFzl/VisualisasiBogor/internal/server"
)

// Serve-specific flag values.
var (
	serveListen  string
	serveData    string
	serveURL     string
	serveGeoJSON string
	servePalette string
	serveRedis   string
	serveRefresh time.Duration
)

// serveCmd runs the dashboard as an HTTP service with periodic refresh.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve the dashboard page, JSON and GeoJSON APIs, downloads, and
Prometheus metrics. The data source is re-read on an interval so the map
follows the spreadsheet. Environment is loaded from .env when present;
set REDIS_ADDR (or --redis) to share the remote-fetch cache between
instances.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", `listen address (default ":8080")`)
	serveCmd.Flags().StringVarP(&serveData, "data", "d", "", "local CSV or Excel source file")
	serveCmd.Flags().StringVar(&serveURL, "url", "", "remote JSON endpoint")
	serveCmd.Flags().StringVarP(&serveGeoJSON, "geojson", "g", "", "kecamatan boundary file (default: built-in placeholder)")
	serveCmd.Flags().StringVarP(&servePalette, "palette", "p", "", "map coloring policy (sequential, value-ranked)")
	serveCmd.Flags().StringVar(&serveRedis, "redis", "", "redis address for the shared fetch cache")
	serveCmd.Flags().DurationVar(&serveRefresh, "refresh", 5*time.Minute, "source refresh interval")
}

func runServe(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load(".env")

	cfg, err := config.Load(".")
	if err != nil {
		return &exitCodeError{code: ExitInvalidArgs, msg: err.Error()}
	}

	opts := sourceOptions{
		dataFile: serveData,
		dataURL:  serveURL,
		geoPath:  serveGeoJSON,
		palette:  servePalette,
	}
	opts.fill(cfg.DataFile, cfg.DataURL, cfg.GeoJSON, cfg.Palette)

	listen := serveListen
	if listen == "" {
		listen = cfg.Listen
	}
	if listen == "" {
		listen = ":8080"
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := buildFetchClient(ctx, cfg)
	if err != nil {
		return err
	}

	srv := server.New()
	refresh := func(ctx context.Context) {
		in, err := buildInput(ctx, opts, client)
		if err != nil {
			slog.Error("load source", "err", err)
			return
		}
		res, err := pipeline.Run(in)
		if err != nil {
			slog.Error("render cycle failed", "err", err)
			return
		}
		srv.Update(res, in.Features)
	}
	refresh(ctx)

	go func() {
		ticker := time.NewTicker(serveRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh(ctx)
			}
		}
	}()

	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("shutdown", "err", err)
		}
	}()

	slog.Info("serving dashboard", "addr", listen, "refresh", serveRefresh)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildFetchClient wires the remote-fetch cache: Redis when configured and
// reachable, the in-process TTL cache otherwise.
func buildFetchClient(ctx context.Context, cfg *config.Config) (*fetch.Client, error) {
	ttl, err := cfg.TTL()
	if err != nil {
		return nil, &exitCodeError{code: ExitInvalidArgs, msg: err.Error()}
	}

	addr := serveRedis
	if addr == "" {
		addr = cfg.RedisAddr
	}
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var cache fetch.Cache = fetch.NewMemoryCache()
	if rc := fetch.OpenRedis(ctx, addr); rc != nil {
		slog.Info("using redis fetch cache", "addr", addr)
		cache = rc
	}
	return &fetch.Client{Cache: cache, TTL: ttl}, nil
}
