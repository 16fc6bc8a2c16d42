// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session implements the stateless session boundary: a signed cookie
// carrying the serialized caller identity. The cookie payload is the session;
// there is no server-side session table, so a session ends when the cookie
// expires or is cleared.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

// CookieName is the session cookie name.
const CookieName = "session"

// MaxAge is the session cookie lifetime in seconds (one year).
const MaxAge = 31536000

// Identity is the caller identity carried in the session cookie.
// Role is trusted after signature verification; it is not re-read from the
// store on each request.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Codec signs and verifies session cookie values. The value format is
// base64url(JSON identity) + "." + base64url(HMAC-SHA256(payload, secret)).
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec with the given HMAC secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes and signs an identity into a cookie value.
func (c *Codec) Encode(id Identity) (string, error) {
	raw, err := json.Marshal(id)
	if err != nil {
		return "", err
	}

	payload := base64.RawURLEncoding.EncodeToString(raw)
	sig := c.sign(payload)
	return payload + "." + sig, nil
}

// Decode verifies and deserializes a cookie value. Returns nil for an empty,
// malformed, or tampered value; it never returns an error to callers because
// an invalid cookie simply means an anonymous request.
func (c *Codec) Decode(value string) *Identity {
	payload, sig, ok := strings.Cut(value, ".")
	if !ok || payload == "" {
		return nil
	}

	expected := c.sign(payload)
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1 {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil
	}
	if id.ID == 0 {
		return nil
	}
	return &id
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SetCookie writes the session cookie for the given identity.
// Secure+SameSite=None on secure transport so the cross-origin client can
// send it; SameSite=Lax otherwise (plain-HTTP development).
func (c *Codec) SetCookie(w http.ResponseWriter, r *http.Request, id Identity) error {
	value, err := c.Encode(id)
	if err != nil {
		return err
	}
	http.SetCookie(w, cookieFor(r, value, MaxAge))
	return nil
}

// ClearCookie expires the session cookie.
func (c *Codec) ClearCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, cookieFor(r, "", 0))
}

// ReadCookie extracts and decodes the identity from the request's session
// cookie. Returns nil when absent or invalid.
func (c *Codec) ReadCookie(r *http.Request) *Identity {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	return c.Decode(cookie.Value)
}

func cookieFor(r *http.Request, value string, maxAge int) *http.Cookie {
	if maxAge == 0 {
		// net/http omits Max-Age for 0; a negative value serializes as
		// Max-Age=0, which is what expires the cookie on the client.
		maxAge = -1
	}
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	}
	if IsSecureRequest(r) {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}
	return cookie
}

// IsSecureRequest reports whether the request arrived over a secure transport,
// directly or via a TLS-terminating proxy.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	// The SPA sends its Origin; an https origin implies the deployed, TLS
	// environment (the original backend used the same heuristic).
	return strings.HasPrefix(r.Header.Get("Origin"), "https://")
}
