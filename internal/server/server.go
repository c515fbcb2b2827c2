package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nexthire/next-hire/internal/analysis"
	"github.com/nexthire/next-hire/internal/jobs"
	"github.com/nexthire/next-hire/internal/scoring"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	validate   *validator.Validate

	allowedOrigins map[string]struct{}

	extractor *analysis.Extractor
	analyzer  *analysis.Analyzer
	scorer    *scoring.Scorer
	searcher  *jobs.Searcher
	intake    *jobs.Intake
}

// Config holds server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// Dependencies are the pipeline components the handlers dispatch to. A nil
// Searcher disables the job search endpoints.
type Dependencies struct {
	Extractor *analysis.Extractor
	Analyzer  *analysis.Analyzer
	Scorer    *scoring.Scorer
	Searcher  *jobs.Searcher
	Intake    *jobs.Intake
}

// New creates a new server instance.
func New(cfg Config, deps Dependencies, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = struct{}{}
	}

	s := &Server{
		logger:         logger,
		validate:       validator.New(),
		allowedOrigins: origins,
		extractor:      deps.Extractor,
		analyzer:       deps.Analyzer,
		scorer:         deps.Scorer,
		searcher:       deps.Searcher,
		intake:         deps.Intake,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleWelcome)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/resumes/parse", s.handleParseResume)
	mux.HandleFunc("POST /api/v1/resumes/analyze-ats", s.handleAnalyzeATS)
	mux.HandleFunc("POST /api/v1/jobs/search", s.handleJobSearch)
	mux.HandleFunc("POST /api/v1/jobs/apply", s.handleApply)
	mux.HandleFunc("POST /api/v1/jobs/apply-all", s.handleApplyAll)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the routed handler stack for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening and blocks until an interrupt, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "NextHire resume analysis API",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS reflects the origin back only when it is on the allow-list.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := s.allowedOrigins[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds per-request zap logging with a correlation id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response with a machine-readable reason.
func (s *Server) errorResponse(w http.ResponseWriter, status int, reason, message string) {
	s.jsonResponse(w, status, map[string]string{
		"error":  message,
		"reason": reason,
	})
}

// pipelineError classifies err and writes the matching error response.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	status, reason := classifyError(err)
	s.logger.Error("request failed",
		zap.String("reason", reason),
		zap.Error(err))
	s.errorResponse(w, status, reason, err.Error())
}
