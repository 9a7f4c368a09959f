package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-fit-scorer/internal/config"
	"github.com/jonathan/job-fit-scorer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing the scoring engine:

  POST /v1/score          score one resume against one job
  POST /v1/score/stream   same, streaming stage progress as server-sent events
  POST /v1/assess         compatibility gate only
  POST /v1/batch          score and rank many resumes against one job
  POST /v1/density        technical keyword density of a text
  GET  /v1/results        persisted results for a resume (requires database_url)
  GET  /health`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on (overrides config)")
	serveCmd.Flags().Int("max-concurrent", 4, "Maximum scoring requests in flight (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd,
		config.BindFlag("port", cmd.Flags().Lookup("port")),
		config.BindFlag("max_concurrent", cmd.Flags().Lookup("max-concurrent")),
	)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := server.Config{
		Port:          a.cfg.Port,
		MaxConcurrent: a.cfg.MaxConcurrent,
		Engine:        a.engine,
		Logger:        a.log,
	}
	if a.cfg.DatabaseURL != "" {
		store, err := a.db(ctx)
		if err != nil {
			return err
		}
		cfg.Store = store
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
