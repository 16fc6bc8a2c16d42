// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSession_DecodesCookie(t *testing.T) {
	codec := session.NewCodec(testSecret)

	var got *session.Identity
	handler := Session(codec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetIdentity(r)
	}))

	value, err := codec.Encode(session.Identity{ID: 7, Name: "Ana", Email: "ana@example.com", Role: model.RoleUser})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})
	handler.ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, model.RoleUser, got.Role)
}

func TestSession_TamperedCookieIsAnonymous(t *testing.T) {
	codec := session.NewCodec(testSecret)

	var got *session.Identity
	handler := Session(codec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetIdentity(r)
	}))

	value, err := codec.Encode(session.Identity{ID: 7, Role: model.RoleAdmin})
	require.NoError(t, err)
	tampered := strings.Replace(value, ".", "x.", 1)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: tampered})
	handler.ServeHTTP(httptest.NewRecorder(), r)

	assert.Nil(t, got)
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"forbidden"`)

	w = httptest.NewRecorder()
	r := WithIdentity(httptest.NewRequest(http.MethodGet, "/", nil),
		&session.Identity{ID: 1, Role: model.RoleUser})
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	w := httptest.NewRecorder()
	r := WithIdentity(httptest.NewRequest(http.MethodGet, "/", nil),
		&session.Identity{ID: 1, Role: model.RoleUser})
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r = WithIdentity(httptest.NewRequest(http.MethodGet, "/", nil),
		&session.Identity{ID: 1, Role: model.RoleAdmin})
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"https://app.igreja.com", "localhost:5173", "*.vercel.app"}

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://app.igreja.com", true},
		{"http://localhost:5173", true},
		{"https://preview-abc.vercel.app", true},
		{"https://a.b.vercel.app", true},
		{"https://vercel.app", false},
		{"https://evil.com", false},
		{"https://app.igreja.com.evil.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OriginAllowed(tt.origin, allowed), tt.origin)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS([]string{"https://app.igreja.com"})(okHandler())

	r := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	r.Header.Set("Origin", "https://app.igreja.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.igreja.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := CORS([]string{"https://app.igreja.com"})(okHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	r.Header.Set("Origin", "https://evil.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginProtection_Lockout(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       1000,
		IPBurst:           1000,
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	email := "victim@example.com"
	for i := 0; i < 2; i++ {
		locked, _ := lp.RecordFailure(email)
		assert.False(t, locked)
	}

	locked, dur := lp.RecordFailure(email)
	assert.True(t, locked)
	assert.Equal(t, time.Minute, dur)

	isLocked, remaining := lp.IsLocked(email)
	assert.True(t, isLocked)
	assert.Greater(t, remaining, time.Duration(0))

	lp.RecordSuccess(email)
	isLocked, _ = lp.IsLocked(email)
	assert.False(t, isLocked)
}

func TestLoginProtection_IPRateLimit(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit: 0.001,
		IPBurst:     2,
	})

	assert.True(t, lp.AllowIP("10.0.0.1"))
	assert.True(t, lp.AllowIP("10.0.0.1"))
	assert.False(t, lp.AllowIP("10.0.0.1"))
	assert.True(t, lp.AllowIP("10.0.0.2"), "limits are per IP")
}
