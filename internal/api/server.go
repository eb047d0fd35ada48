// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api serves the liveness endpoints that keep the hosting platform
from idling the bot, plus readiness and Prometheus metrics.

Architecture:

  - The bot itself talks to Discord over the gateway; this server is the
    only inbound HTTP surface.
  - Only this package and cmd/redherring import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/constants"
	"github.com/taibuivan/redherring/internal/platform/middleware"
	"github.com/taibuivan/redherring/internal/platform/ratelimit"
	"github.com/taibuivan/redherring/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups the endpoint handlers mounted by [NewServer].
type Handlers struct {
	// Liveness answers / and /health while the process is alive.
	Liveness http.HandlerFunc

	// Readiness answers /ready once the store (and Redis, if used) respond.
	Readiness http.HandlerFunc

	// Metrics is the Prometheus scrape handler. Nil disables /metrics.
	Metrics http.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the middleware chain. A nil
// limiter disables per-IP throttling.
func NewServer(port string, log *slog.Logger, limiter *ratelimit.Limiter, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.HTTPRequestTimeout))
	if limiter != nil {
		r.Use(middleware.RateLimit(limiter))
	}
	r.Use(middleware.PanicRecovery())
	r.Use(chimw.CleanPath)

	// # Health Endpoints
	r.Get("/", func(writer http.ResponseWriter, _ *http.Request) {
		respond.Text(writer, constants.LivenessBody)
	})
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
