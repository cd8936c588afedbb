// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth provides request authentication for the agent server: a User
// abstraction and an optional bearer-token authenticator backed by a JWK
// set.
package auth

import (
	"context"
	"net/http"
)

// User represents the caller of a request.
type User interface {
	// IsAuthenticated reports whether the user was authenticated.
	IsAuthenticated() bool

	// UserName returns the user's name. Empty for unauthenticated users.
	UserName() string
}

// UnauthenticatedUser is the null-object User for requests that carried no
// credentials. Safe to use as a zero value.
type UnauthenticatedUser struct{}

// IsAuthenticated always returns false.
func (UnauthenticatedUser) IsAuthenticated() bool { return false }

// UserName always returns an empty string.
func (UnauthenticatedUser) UserName() string { return "" }

// AuthenticatedUser is a user verified by an Authenticator.
type AuthenticatedUser struct {
	Name string
}

// IsAuthenticated always returns true.
func (AuthenticatedUser) IsAuthenticated() bool { return true }

// UserName returns the verified user name.
func (u AuthenticatedUser) UserName() string { return u.Name }

// Authenticator verifies the credentials on an inbound request.
type Authenticator interface {
	Authenticate(r *http.Request) (User, error)
}

type userContextKey struct{}

// ContextWithUser attaches the user to the context.
func ContextWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user attached to the context, or an
// UnauthenticatedUser when none is present.
func UserFromContext(ctx context.Context) User {
	if user, ok := ctx.Value(userContextKey{}).(User); ok {
		return user
	}
	return UnauthenticatedUser{}
}

// Middleware enforces authentication on every request passing through it.
// Requests that fail verification are rejected with 401; the verified user
// is attached to the request context for downstream handlers.
func Middleware(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authn.Authenticate(r)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}
