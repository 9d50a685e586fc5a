// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package server is the development preview server. Every request rebuilds
// the navigation from the project file so edits show up on reload.
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zimsendapi/docs/internal/build"
	"github.com/zimsendapi/docs/internal/config"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/logging"
	"github.com/zimsendapi/docs/internal/metrics"
)

// DefaultListen is the address used when Options.Listen is empty.
const DefaultListen = "127.0.0.1:8089"

const shutdownTimeout = 5 * time.Second

// BuildIDHeader carries the id of the build that produced a response.
const BuildIDHeader = "X-Build-ID"

// Options configures the server.
type Options struct {
	// ConfigPath is the project file, reloaded on every request.
	ConfigPath string
	Listen     string
	// AllowedOrigins enables CORS for a local docs site dev server.
	AllowedOrigins []string
	Logger         *logging.Logger
}

// Server serves freshly built sidebars.
type Server struct {
	opts     Options
	logger   *logging.Logger
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	router   *mux.Router
}

// New creates a server with its own metrics registry.
func New(opts Options) (*Server, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultFile
	}
	if opts.Listen == "" {
		opts.Listen = DefaultListen
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	s := &Server{
		opts:     opts,
		logger:   logger.WithComponent("server"),
		metrics:  metrics.NewMetrics(),
		registry: prometheus.NewRegistry(),
		router:   mux.NewRouter(),
	}
	if err := s.metrics.Register(s.registry); err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "register metrics")
	}
	s.RegisterRoutes(s.router)
	return s, nil
}

// RegisterRoutes registers the preview routes on router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sidebars.{format:json|yaml|ts}", s.handleSidebars).Methods("GET")
	router.HandleFunc("/sidebars/{name}", s.handleSidebar).Methods("GET")
	router.HandleFunc("/operations", s.handleOperations).Methods("GET")
	router.HandleFunc("/schema.json", s.handleSchema).Methods("GET")
	router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods("GET")
}

// Handler returns the root handler with compression and CORS applied.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	if len(s.opts.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(s.opts.AllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "HEAD", "OPTIONS"}),
			handlers.ExposedHeaders([]string{BuildIDHeader}),
		)(h)
	}
	return handlers.CompressHandler(h)
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Listen)
	if err != nil {
		return errors.Wrapf(err, errors.KindInternal, "listen on %s", s.opts.Listen)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("preview server listening", "addr", ln.Addr().String(), "config", s.opts.ConfigPath)

	select {
	case err := <-errCh:
		return errors.Wrap(err, errors.KindInternal, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, errors.KindInternal, "shutdown")
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, errors.KindInternal, "serve")
	}
	s.logger.Info("preview server stopped")
	return nil
}

// build loads the project file and runs a full build, recording metrics.
func (s *Server) build(ctx context.Context) (*build.Result, error) {
	cfg, err := config.LoadFile(s.opts.ConfigPath)
	if err != nil {
		s.metrics.ObserveBuild(nil, err)
		return nil, err
	}
	res, err := build.Run(ctx, cfg, s.logger)
	s.metrics.ObserveBuild(res, err)
	return res, err
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}

// writeBuildError reports a failed build with its kind and attributes.
func (s *Server) writeBuildError(w http.ResponseWriter, err error) {
	s.logger.Error("build failed", "error", err, "kind", errors.GetKind(err).String())
	response := map[string]interface{}{
		"error":  err.Error(),
		"kind":   errors.GetKind(err).String(),
		"status": http.StatusInternalServerError,
	}
	if attrs := errors.GetAttributes(err); len(attrs) > 0 {
		response["attributes"] = attrs
	}
	s.writeJSON(w, http.StatusInternalServerError, response)
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]interface{}{
		"error":  message,
		"status": status,
	})
}
