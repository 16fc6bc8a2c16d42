// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware: session identity resolution,
// authorization guards, CORS and login abuse protection.
package middleware

import (
	"context"
	"net/http"

	"github.com/iesp-app/igreja-go/internal/session"
)

type contextKey string

const identityKey contextKey = "identity"

// Session decodes the session cookie on every request and stores the
// resulting identity (or nil for anonymous callers) in the request context.
// A cookie with a bad signature is treated as no cookie at all.
func Session(codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := codec.ReadCookie(r); id != nil {
				r = r.WithContext(context.WithValue(r.Context(), identityKey, id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity returns the verified caller identity, or nil for anonymous
// requests.
func GetIdentity(r *http.Request) *session.Identity {
	id, _ := r.Context().Value(identityKey).(*session.Identity)
	return id
}

// WithIdentity returns a request carrying the given identity. Test helper.
func WithIdentity(r *http.Request, id *session.Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}
