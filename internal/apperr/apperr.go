// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package apperr defines the error codes carried on the wire. Services
// return these; the HTTP layer maps them to statuses and clients switch on
// the code string.
package apperr

import "errors"

// Error is a wire-level error code.
type Error string

func (e Error) Error() string { return string(e) }

// Codes shared by several operations.
const (
	ErrMissingFields       Error = "missing_fields"
	ErrInvalidFields       Error = "invalid_fields"
	ErrEmailInUse          Error = "email_in_use"
	ErrDatabaseUnavailable Error = "database_unavailable"
	ErrInvalidCredentials  Error = "invalid_credentials"
	ErrForbidden           Error = "forbidden"
	ErrNotFound            Error = "not_found"
	ErrInvalidType         Error = "invalid_type"
	ErrMissingID           Error = "missing_id"
	ErrUnknown             Error = "unknown"
)

// Content validation codes.
const (
	ErrMissingTitle       Error = "missing_title"
	ErrInvalidStartDate   Error = "invalid_startDate"
	ErrDateInUse          Error = "date_in_use"
	ErrInvalidPriority    Error = "invalid_priority"
	ErrDeleteNotAllowed   Error = "delete_not_allowed"
	ErrInvalidCampaign    Error = "invalid_campaign"
	ErrInvalidAmount      Error = "invalid_amount"
	ErrInvalidPayment     Error = "invalid_paymentMethod"
	ErrFileTooLarge       Error = "file_too_large"
	ErrUnsupportedMedia   Error = "unsupported_media_type"
	ErrStorageUnavailable Error = "storage_unavailable"
)

// Code extracts the wire code from an error chain. Unrecognized errors map
// to "unknown".
func Code(err error) string {
	var e Error
	if errors.As(err, &e) {
		return string(e)
	}
	return string(ErrUnknown)
}
