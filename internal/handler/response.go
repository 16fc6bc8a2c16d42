// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler wires the HTTP API: request decoding, the response
// envelope and the route table.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iesp-app/igreja-go/internal/apperr"
)

// writeJSONSuccess writes the success envelope with data merged in.
func writeJSONSuccess(w http.ResponseWriter, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	_ = json.NewEncoder(w).Encode(data)
}

// writeJSONError writes the failure envelope with the given status and code.
func writeJSONError(w http.ResponseWriter, statusCode int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   code,
	})
}

// writeServiceError maps a service error onto the wire.
func writeServiceError(w http.ResponseWriter, err error) {
	code := apperr.Code(err)
	writeJSONError(w, statusFor(code), code)
}

// statusFor maps wire codes to HTTP statuses. Codes outside the taxonomy
// report as 500 unknown.
func statusFor(code string) int {
	switch code {
	case string(apperr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case string(apperr.ErrForbidden):
		return http.StatusForbidden
	case string(apperr.ErrNotFound):
		return http.StatusNotFound
	case string(apperr.ErrEmailInUse), string(apperr.ErrDateInUse):
		return http.StatusConflict
	case string(apperr.ErrDatabaseUnavailable), string(apperr.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	case string(apperr.ErrUnknown):
		return http.StatusInternalServerError
	default:
		// Validation codes, including the per-field ones.
		return http.StatusBadRequest
	}
}
