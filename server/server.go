// Package server provides the HTTP façade over the aggregation engine. The
// only contract the core owes it is deterministic, side-effect-free view
// computation and an empty object instead of an error when no data is
// loaded.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/promptlens/promptlens/calculations"
	"github.com/promptlens/promptlens/dataset"
	"github.com/promptlens/promptlens/fileio"
	"github.com/promptlens/promptlens/logging"
)

// Server serves the analytics API over a loaded dataset.
type Server struct {
	cfg        Config
	ds         *dataset.Dataset
	engine     *calculations.Engine
	watcher    *fileio.Watcher
	userLimit  int
	httpServer *http.Server

	mu      sync.Mutex
	started bool
}

// Config configures the server.
type Config struct {
	// Host is the address to bind to.
	Host string

	// Port is the HTTP port.
	Port int

	// Version is the application version reported by the health endpoint.
	Version string

	// ReadTimeout is the HTTP read timeout.
	ReadTimeout time.Duration

	// WriteTimeout is the HTTP write timeout.
	WriteTimeout time.Duration

	// ShutdownTimeout is the graceful shutdown timeout.
	ShutdownTimeout time.Duration

	// CORSOrigins lists the origins allowed by the CORS policy.
	CORSOrigins []string

	// UserLimit is the default per-user rollup limit.
	UserLimit int
}

// DefaultConfig returns sensible server defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            8000,
		Version:         "dev",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		CORSOrigins:     []string{"http://localhost:3000"},
		UserLimit:       calculations.DefaultUserLimit,
	}
}

// New creates a server over the loaded dataset. watcher may be nil when
// staleness tracking is disabled.
func New(cfg Config, ds *dataset.Dataset, watcher *fileio.Watcher) *Server {
	if cfg.Port == 0 {
		cfg = DefaultConfig()
	}
	if cfg.UserLimit <= 0 {
		cfg.UserLimit = calculations.DefaultUserLimit
	}

	return &Server{
		cfg:       cfg,
		ds:        ds,
		engine:    calculations.NewEngine(ds),
		watcher:   watcher,
		userLimit: cfg.UserLimit,
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("server already started")
	}
	s.started = true

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	s.mu.Unlock()

	logging.LogInfof("serving analytics API on %s (%d records loaded)", addr, s.ds.Len())
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.LogErrorf("HTTP shutdown error: %v", err)
	}

	if s.watcher != nil {
		s.watcher.Stop()
	}

	s.started = false
	logging.LogInfof("server stopped")
	return nil
}

// Handler builds the full route tree with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/overview", get(s.handleOverview))
	mux.HandleFunc("/api/users", get(s.handleUsers))
	mux.HandleFunc("/api/temporal", get(s.handleTemporal))
	mux.HandleFunc("/api/models", get(s.handleModels))
	mux.HandleFunc("/api/categories", get(s.handleCategories))
	mux.HandleFunc("/api/quality", get(s.handleQuality))
	mux.HandleFunc("/api/analyze", post(s.handleAnalyze))
	mux.HandleFunc("/api/health", get(s.handleHealth))

	return loggingMiddleware(corsMiddleware(s.cfg.CORSOrigins, mux))
}

func get(h http.HandlerFunc) http.HandlerFunc {
	return methodGate(http.MethodGet, h)
}

func post(h http.HandlerFunc) http.HandlerFunc {
	return methodGate(http.MethodPost, h)
}

func methodGate(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h(w, r)
	}
}
