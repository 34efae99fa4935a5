package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/adscomb/adscomb/app/api"
	"github.com/adscomb/adscomb/app/cfg"
	"github.com/adscomb/adscomb/app/config"
	"github.com/adscomb/adscomb/app/database"
	"github.com/adscomb/adscomb/app/export"
	"github.com/adscomb/adscomb/app/scraper"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting Ads Comb", "version", appCfg.Version)

	if appCfg.Serve {
		runServer(appCfg)
		return
	}

	runScrape(appCfg)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// runScrape performs one scrape invocation: fetch, normalize, export,
// and optionally archive the run.
func runScrape(appCfg *cfg.Cfg) {
	baseURL := appCfg.BaseURL
	region := appCfg.Region
	pages := appCfg.Pages
	pause := time.Duration(appCfg.SleepMS) * time.Millisecond
	timeout := time.Duration(appCfg.TimeoutSec) * time.Second
	userAgent := appCfg.UserAgent

	if appCfg.Source != "" {
		profiles, err := config.NewLoader(appCfg.SourcesDir).LoadAll()
		if err != nil {
			slog.Error("Failed to load source profiles", "dir", appCfg.SourcesDir, "error", err)
			os.Exit(1)
		}

		profile, ok := profiles[appCfg.Source]
		if !ok {
			slog.Error("Unknown source profile", "source", appCfg.Source, "dir", appCfg.SourcesDir)
			os.Exit(1)
		}

		baseURL = profile.URL
		if profile.Settings.Region != "" {
			region = profile.Settings.Region
		}
		if profile.Settings.Pages > 0 {
			pages = profile.Settings.Pages
		}
		pause = profile.Settings.GetSleep()
		timeout = profile.Settings.GetTimeout()
		if profile.Settings.UserAgent != "" {
			userAgent = profile.Settings.UserAgent
		}

		slog.Info("Using source profile", "source", profile.Name, "url", baseURL)
	}

	if baseURL == "" {
		slog.Error("Base URL is required (set --base-url or pick a source profile via --source)")
		os.Exit(1)
	}
	if appCfg.Query == "" {
		slog.Error("Search query is required (set --query)")
		os.Exit(1)
	}

	startedAt := time.Now().UTC()

	client := scraper.NewClient(baseURL, timeout, userAgent)
	result := scraper.NewScraper(client, pause).Run(context.Background(), appCfg.Query, region, pages)

	finishedAt := time.Now().UTC()

	if len(result.Ads) == 0 {
		slog.Warn("No ads collected, skipping export")
	} else {
		destination := appCfg.Output
		if destination == "" {
			destination = filepath.Join(appCfg.OutputDir,
				fmt.Sprintf("ads_%d.%s", finishedAt.Unix(), appCfg.Format))
		}

		if err := export.Export(result.Ads, appCfg.Format, destination); err != nil {
			slog.Error("Export failed", "destination", destination, "error", err)
			os.Exit(1)
		}

		slog.Info("Export complete", "destination", destination, "format", appCfg.Format, "ads", len(result.Ads))
	}

	if appCfg.DBPath != "" {
		archiveRun(appCfg, region, pages, result, startedAt, finishedAt)
	}
}

// archiveRun stores the finished run in the SQLite archive. Failures here
// are logged but not fatal: the export has already been written.
func archiveRun(appCfg *cfg.Cfg, region string, pages int, result scraper.Result, startedAt, finishedAt time.Time) {
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open archive", "path", appCfg.DBPath, "error", err)
		return
	}
	defer db.Close()

	if _, _, err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to migrate archive", "path", appCfg.DBPath, "error", err)
		return
	}

	runRepo := database.NewRunRepository(db)
	runID, err := runRepo.CreateRun(database.Run{
		Query:          appCfg.Query,
		Region:         region,
		PagesRequested: pages,
		PagesFetched:   result.PagesFetched,
		AdCount:        len(result.Ads),
		StartedAt:      startedAt,
		FinishedAt:     finishedAt,
	})
	if err != nil {
		slog.Error("Failed to archive run", "error", err)
		return
	}

	if err := database.NewAdRepository(db).InsertAds(runID, result.Ads); err != nil {
		slog.Error("Failed to archive ads", "run_id", runID, "error", err)
		return
	}

	slog.Info("Run archived", "run_id", runID, "path", appCfg.DBPath)
}

// runServer exposes the archive over HTTP until interrupted.
func runServer(appCfg *cfg.Cfg) {
	if appCfg.DBPath == "" {
		slog.Error("Serve mode requires an archive path (set --db-path)")
		os.Exit(1)
	}

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open archive", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to migrate archive", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Archive ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	runRepo := database.NewRunRepository(db)
	adRepo := database.NewAdRepository(db)

	handler := api.NewHandler(runRepo, adRepo, appCfg.Version)
	metrics := api.NewMetrics(runRepo, adRepo)
	server := api.NewServer(handler, metrics)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server started", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
