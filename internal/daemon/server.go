// Package daemon serves the tracker over HTTP as JSON
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/thenoetrevino/circleback/internal/config"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
)

// Defaults for ServerConfig zero values
const (
	DefaultMaxUploadBytes  = 32 << 20
	DefaultShutdownTimeout = 5 * time.Second
)

// ServerConfig configures the HTTP daemon
type ServerConfig struct {
	Addr               string
	CORSAllowedOrigins []string
	MaxUploadBytes     int64
	ShutdownTimeout    time.Duration
	Logger             *slog.Logger // nil means slog.Default()
}

// ConfigFrom builds a ServerConfig from the application config
func ConfigFrom(cfg *config.Config) ServerConfig {
	return ServerConfig{
		Addr:               cfg.ListenAddr,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
}

// Server is the circleback HTTP daemon
type Server struct {
	cfg          ServerConfig
	svc          tracker.Service
	logger       *slog.Logger
	listener     net.Listener
	httpServer   *http.Server
	handler      http.Handler
	metrics      *Metrics
	shutdownOnce sync.Once
}

// NewServer binds cfg.Addr and prepares the router. Serving starts with Start.
func NewServer(cfg ServerConfig, svc tracker.Service) (*Server, error) {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}

	s := &Server{
		cfg:      cfg,
		svc:      svc,
		logger:   cfg.Logger,
		listener: listener,
		metrics:  NewMetrics(),
	}
	s.handler = corsHandler(s.routes(), cfg.CORSAllowedOrigins)
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// routes builds the API router
func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)
	api.HandleFunc("/ingest/default", s.handleIngestDefault).Methods(http.MethodPost)
	api.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	api.HandleFunc("/buckets/{category}", s.handleBucket).Methods(http.MethodGet)
	api.HandleFunc("/tasks", s.handleTasks).Methods(http.MethodGet)
	// keys are "<project>-<description>" and may contain slashes, so GET
	// .../comments is resolved in handleTaskGet against the loaded keys
	api.HandleFunc("/tasks/{key:.+}/comments", s.handleAddComment).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{key:.+}", s.handleTaskGet).Methods(http.MethodGet)
	api.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)

	return r
}

// Start serves until ctx is cancelled or the listener fails, then shuts down
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("daemon starting", "addr", s.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info("daemon context cancelled, shutting down")
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		} else {
			s.logger.Error("serve error", "error", err)
		}
	}

	if shutdownErr := s.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}

// Shutdown gracefully stops the server. Safe to call more than once.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.logger.Info("shutting down daemon")

		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		err = s.httpServer.Shutdown(ctx)

		// Shutdown only closes listeners Serve has seen
		if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			s.logger.Warn("error closing listener", "error", closeErr)
		}
	})
	return err
}

// Addr returns the bound address, useful when listening on port 0
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Handler returns the full HTTP handler chain (router, logging, CORS)
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the live daemon metrics
func (s *Server) Metrics() *Metrics {
	return s.metrics
}
