// Package server exposes the contrast evaluator over a small HTTP JSON API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/config"
)

// HTTP server timeouts.
const (
	httpReadTimeout  = 5 * time.Second
	httpWriteTimeout = 10 * time.Second
	httpIdleTimeout  = 60 * time.Second
)

// Server serves the contrast API.
type Server struct {
	log  hclog.Logger
	norm *colour.Normalizer
	srv  *http.Server
}

// New builds a Server from the given configuration. The normalizer carries
// any custom named colours loaded at startup.
func New(cfg config.Config, norm *colour.Normalizer, log hclog.Logger) *Server {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	s := &Server{log: log, norm: norm}

	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/api/v1/contrast", s.handleContrast).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/colour/{token}", s.handleColour).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	s.srv = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe blocks serving the API until Shutdown is called or the
// listener fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("listening", "addr", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server, letting in-flight requests finish
// until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	return s.srv.Shutdown(ctx)
}

// statusRecorder captures the status code written to a ResponseWriter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per request: method, path, status, duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
