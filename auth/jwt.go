// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// JWTAuthenticator verifies bearer tokens against a JWK set.
type JWTAuthenticator struct {
	keys jwk.Set
}

var _ Authenticator = (*JWTAuthenticator)(nil)

// NewJWTAuthenticator creates an authenticator verifying against the given
// key set.
func NewJWTAuthenticator(keys jwk.Set) (*JWTAuthenticator, error) {
	if keys == nil || keys.Len() == 0 {
		return nil, fmt.Errorf("key set cannot be empty")
	}
	return &JWTAuthenticator{keys: keys}, nil
}

// NewJWTAuthenticatorFromFile creates an authenticator from a JWK set file.
func NewJWTAuthenticatorFromFile(path string) (*JWTAuthenticator, error) {
	keys, err := jwk.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JWK set %s: %w", path, err)
	}
	return NewJWTAuthenticator(keys)
}

// Authenticate verifies the Authorization bearer token, returning the user
// identified by the token's subject claim.
func (a *JWTAuthenticator) Authenticate(r *http.Request) (User, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing authorization header")
	}
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil, fmt.Errorf("authorization header is not a bearer token")
	}

	token, err := jwt.Parse([]byte(raw), jwt.WithKeySet(a.keys), jwt.WithValidate(true))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	subject, _ := token.Subject()
	return AuthenticatedUser{Name: subject}, nil
}
