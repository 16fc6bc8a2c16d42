// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"time"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/store"
)

// Favorite manages per-user bookmarks over articles, news, events and hymns.
type Favorite struct {
	queries *store.Queries
}

// NewFavorite returns a Favorite service backed by queries.
func NewFavorite(queries *store.Queries) *Favorite {
	return &Favorite{queries: queries}
}

// Add bookmarks the item for the caller. Adding twice is a no-op.
func (s *Favorite) Add(ctx context.Context, caller *session.Identity, contentType string, contentID int64) error {
	if caller == nil {
		return apperr.ErrForbidden
	}
	if !model.ValidFavoriteType(contentType) {
		return apperr.ErrInvalidType
	}
	if contentID <= 0 {
		return apperr.ErrMissingID
	}
	err := s.queries.AddUserFavorite(ctx, store.AddUserFavoriteParams{
		UserID:      caller.ID,
		ContentType: contentType,
		ContentID:   contentID,
		CreatedAt:   time.Now(),
	})
	// The user_id FK failing means the session outlived its user row.
	if store.IsForeignKeyViolation(err) {
		return apperr.ErrForbidden
	}
	return err
}

// Remove drops the bookmark. Removing a missing bookmark is a no-op.
func (s *Favorite) Remove(ctx context.Context, caller *session.Identity, contentType string, contentID int64) error {
	if caller == nil {
		return apperr.ErrForbidden
	}
	if !model.ValidFavoriteType(contentType) {
		return apperr.ErrInvalidType
	}
	if contentID <= 0 {
		return apperr.ErrMissingID
	}
	return s.queries.RemoveUserFavorite(ctx, caller.ID, contentType, contentID)
}

// List returns the caller's bookmarks, optionally filtered by content type.
func (s *Favorite) List(ctx context.Context, caller *session.Identity, contentType string) ([]store.UserFavorite, error) {
	if caller == nil {
		return nil, apperr.ErrForbidden
	}
	if contentType != "" && !model.ValidFavoriteType(contentType) {
		return nil, apperr.ErrInvalidType
	}
	return s.queries.ListUserFavorites(ctx, caller.ID, contentType)
}
