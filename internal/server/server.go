// Package server provides the HTTP JSON API around the job fit scoring engine.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/job-fit-scorer/internal/db"
	"github.com/jonathan/job-fit-scorer/internal/logger"
	"github.com/jonathan/job-fit-scorer/internal/pipeline"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

const maxRequestBytes = 1 << 20

// ResultStore persists accepted scoring results. *db.DB satisfies it.
type ResultStore interface {
	SaveScoringResult(ctx context.Context, job *types.JobDetails, jobID *uuid.UUID, result *types.ScoringResult) (uuid.UUID, error)
	ListScoreResults(ctx context.Context, resumeID string, limit int) ([]db.ScoreRecord, error)
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *pipeline.Engine
	store      ResultStore
	sem        *semaphore.Weighted
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port          int
	MaxConcurrent int
	Engine        *pipeline.Engine
	Store         ResultStore // optional
	Logger        *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("server requires a scoring engine")
	}
	limit := cfg.MaxConcurrent
	if limit <= 0 {
		limit = pipeline.DefaultMaxConcurrent
	}

	s := &Server{
		engine: cfg.Engine,
		store:  cfg.Store,
		sem:    semaphore.NewWeighted(int64(limit)),
		log:    logger.OrNop(cfg.Logger),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("POST /v1/score", s.withConcurrencyLimit(http.HandlerFunc(s.handleScore)))
	mux.Handle("POST /v1/score/stream", s.withConcurrencyLimit(http.HandlerFunc(s.handleScoreStream)))
	mux.Handle("POST /v1/assess", s.withConcurrencyLimit(http.HandlerFunc(s.handleAssess)))
	mux.Handle("POST /v1/batch", s.withConcurrencyLimit(http.HandlerFunc(s.handleBatch)))
	mux.HandleFunc("POST /v1/density", s.handleDensity)
	mux.HandleFunc("GET /v1/results", s.handleListResults)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the server's root handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is canceled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withConcurrencyLimit bounds the number of scoring requests in flight. Requests wait for a
// slot until their context ends.
func (s *Server) withConcurrencyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.sem.Acquire(r.Context(), 1); err != nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "server busy")
			return
		}
		defer s.sem.Release(1)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE streaming working through the recorder
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "ok",
		"policy": s.engine.Policy(),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorBody{Error: message})
}
