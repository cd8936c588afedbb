// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"log/slog"

	"github.com/yus04/semantic-kernel-agent/auth"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger used for request and task logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAuthenticator protects the JSON-RPC endpoint with the given
// authenticator. Discovery and health stay public.
func WithAuthenticator(authn auth.Authenticator) Option {
	return func(s *Server) {
		s.authn = authn
	}
}

// WithQueueSize overrides the per-task event queue capacity.
func WithQueueSize(size int) Option {
	return func(s *Server) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithLegacyRoutes mounts the deprecated /agent/card and /agent/invoke
// REST profile backed by the given capability resolver. New integrations
// should use the well-known card and the JSON-RPC endpoint instead.
func WithLegacyRoutes(resolver capabilityResolver) Option {
	return func(s *Server) {
		s.legacy = true
		s.legacyKernel = resolver
	}
}
