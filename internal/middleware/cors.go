// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// CORS returns middleware implementing the credentialed cross-origin policy
// for the SPA clients. allowed holds origin tokens from config: full origins
// ("https://app.example.com"), bare hosts ("localhost:5173") or wildcard
// patterns ("*.vercel.app"). Credentials require echoing the exact origin,
// never "*".
func CORS(allowed []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && OriginAllowed(origin, allowed) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")

				if r.Method == http.MethodOptions {
					h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Content-Type")
					h.Set("Access-Control-Max-Age", "86400")
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OriginAllowed reports whether origin matches any allow-list token.
func OriginAllowed(origin string, allowed []string) bool {
	host := originHost(origin)
	for _, token := range allowed {
		if token == "" {
			continue
		}
		if token == "*" || token == origin {
			return true
		}
		if strings.Contains(token, "*") {
			if wildcardMatch(host, originHost(token)) {
				return true
			}
			continue
		}
		if host == originHost(token) {
			return true
		}
	}
	return false
}

// originHost strips the scheme from an origin or token, keeping host:port.
func originHost(s string) string {
	if strings.Contains(s, "://") {
		if u, err := url.Parse(s); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return s
}

// wildcardMatch matches a host against a pattern where "*" spans one or more
// leading labels ("*.vercel.app" matches "app.vercel.app" and
// "a.b.vercel.app", not "vercel.app").
func wildcardMatch(host, pattern string) bool {
	suffix, ok := strings.CutPrefix(pattern, "*")
	if !ok {
		return host == pattern
	}
	return len(host) > len(suffix) && strings.HasSuffix(host, suffix)
}
