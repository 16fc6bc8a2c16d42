// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/iesp-app/igreja-go/internal/middleware"
	"github.com/iesp-app/igreja-go/internal/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type setRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// handleRegister handles POST /api/auth/register.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	// No session is issued here. The client logs in after registering.
	if _, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, nil)
}

// handleLogin handles POST /api/auth/login. Login attempts are rate limited
// per client IP and per account.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	if h.protection != nil {
		if !h.protection.AllowIP(clientIP(r)) {
			writeJSONError(w, http.StatusTooManyRequests, "too_many_attempts")
			return
		}
		if locked, _ := h.protection.IsLocked(req.Email); locked {
			writeJSONError(w, http.StatusTooManyRequests, "account_locked")
			return
		}
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if h.protection != nil {
			h.protection.RecordFailure(req.Email)
		}
		writeServiceError(w, err)
		return
	}
	if h.protection != nil {
		h.protection.RecordSuccess(req.Email)
	}

	if err := h.codec.SetCookie(w, r, service.IdentityFor(user)); err != nil {
		h.logger.Error("session cookie encode failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unknown")
		return
	}
	writeJSONSuccess(w, map[string]any{"user": userDoc(user)})
}

// handleLogout handles POST /api/auth/logout.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.codec.ClearCookie(w, r)
	writeJSONSuccess(w, nil)
}

// handleMe handles GET /api/auth/me. Anonymous callers get a null user, not
// an error: the client calls this on startup.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetIdentity(r)
	if id == nil {
		writeJSONSuccess(w, map[string]any{"user": nil})
		return
	}
	writeJSONSuccess(w, map[string]any{"user": id})
}

// handleSetRole handles POST /api/admin/set-role.
func (h *Handler) handleSetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	if err := h.auth.SetRole(r.Context(), req.Email, req.Role, middleware.GetIdentity(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, nil)
}

// clientIP extracts the caller's IP, honoring X-Forwarded-For from the
// reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
