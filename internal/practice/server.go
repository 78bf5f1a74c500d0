// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package practice serves the sample pages and canned API payloads over HTTP
// so every step can run without touching the public internet.
package practice

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Server is the local practice HTTP server.
type Server struct {
	router *chi.Mux
	server *http.Server
	addr   string
	log    logrus.FieldLogger
}

// New creates a practice server listening on addr (e.g. ":8080").
func New(addr string, log logrus.FieldLogger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	s := &Server{
		router: r,
		addr:   addr,
		log:    log,
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	s.registerRoutes()
	return s
}

// Start serves until Shutdown is called. It returns http.ErrServerClosed
// after a clean shutdown.
func (s *Server) Start() error {
	s.log.WithField("addr", s.addr).Info("starting practice server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server. Calling it before Start makes a later
// Start return http.ErrServerClosed immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down practice server")
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger logs one line per request at debug level.
func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"duration": time.Since(start).String(),
			}).Debug("served request")
		})
	}
}
