// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-json-experiment/json"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/auth"
	"github.com/yus04/semantic-kernel-agent/server/event"
	"github.com/yus04/semantic-kernel-agent/server/execution"
	"github.com/yus04/semantic-kernel-agent/server/task"
)

// Server serves the agent card, the JSON-RPC endpoint, and a health probe
// over HTTP.
type Server struct {
	card     a2a.AgentCard
	executor execution.AgentExecutor
	store    task.Store

	logger    *slog.Logger
	queueSize int
	authn     auth.Authenticator

	legacy       bool
	legacyKernel capabilityResolver

	httpServer *http.Server
}

// New creates a Server for the given card, executor, and task store.
func New(card a2a.AgentCard, executor execution.AgentExecutor, store task.Store, opts ...Option) *Server {
	s := &Server{
		card:      card,
		executor:  executor,
		store:     store,
		logger:    slog.Default(),
		queueSize: event.DefaultMaxQueueSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get(a2a.AgentCardPath, s.handleAgentCard)
	r.Get("/health", s.handleHealth)

	rpc := func(r chi.Router) {
		if s.authn != nil {
			r.Use(auth.Middleware(s.authn))
		}
		r.Post("/", s.handleRPC)
	}
	r.Group(rpc)

	if s.legacy {
		s.mountLegacyRoutes(r)
	}
	return r
}

// ListenAndServe starts the HTTP server on addr and blocks until it stops.
func (s *Server) ListenAndServe(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("server listening", "addr", addr, "agent", s.card.Name)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// handleAgentCard serves the agent card on the well-known discovery path.
func (s *Server) handleAgentCard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.MarshalWrite(w, s.card); err != nil {
		s.logger.Error("write agent card failed", "error", err)
	}
}

type healthResponse struct {
	Status string `json:"status"`
	Agent  string `json:"agent"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.MarshalWrite(w, healthResponse{Status: "healthy", Agent: s.card.Name}); err != nil {
		s.logger.Error("write health response failed", "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
