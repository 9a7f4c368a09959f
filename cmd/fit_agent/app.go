package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-fit-scorer/internal/cache"
	"github.com/jonathan/job-fit-scorer/internal/config"
	"github.com/jonathan/job-fit-scorer/internal/db"
	"github.com/jonathan/job-fit-scorer/internal/logger"
	"github.com/jonathan/job-fit-scorer/internal/observability"
	"github.com/jonathan/job-fit-scorer/internal/pipeline"
)

// app holds the wiring shared by every subcommand
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	cache  cache.Cache
	engine *pipeline.Engine
	store  *db.DB
}

// newApp loads configuration (file, FITSCORE_* env, then flags) and builds the engine
func newApp(cmd *cobra.Command, binds ...config.Option) (*app, error) {
	flags := cmd.Flags()
	opts := append([]config.Option{
		config.BindFlag("scoring_mode", flags.Lookup("mode")),
		config.BindFlag("debug", flags.Lookup("debug")),
		config.BindFlag("log_json", flags.Lookup("log-json")),
	}, binds...)

	cfg, err := config.Load(cfgFile, opts...)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	c, err := cache.New(cmd.Context(), cache.Options{
		Backend:       cfg.CacheBackend,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		Logger:        log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	engine, err := pipeline.New(pipeline.Options{
		Mode:          cfg.ScoringMode,
		Gate:          cfg.Gate,
		Weights:       cfg.Weights,
		Cache:         c,
		CacheTTL:      cfg.CacheTTL,
		MaxConcurrent: cfg.MaxConcurrent,
		Logger:        log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring engine: %w", err)
	}

	return &app{cfg: cfg, log: log, cache: c, engine: engine}, nil
}

// db opens the database on first use
func (a *app) db(ctx context.Context) (*db.DB, error) {
	if a.store != nil {
		return a.store, nil
	}
	if a.cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url is not configured (set FITSCORE_DATABASE_URL)")
	}
	store, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if closer, ok := a.cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			a.log.Warn("failed to close cache", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

// printer returns the verbose printer, or nil when --verbose is off
func printer(cmd *cobra.Command) *observability.Printer {
	if !verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// writeJSON writes v as indented JSON to path, or to the command's stdout when path is empty
func writeJSON(cmd *cobra.Command, path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonOutput))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, append(jsonOutput, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
