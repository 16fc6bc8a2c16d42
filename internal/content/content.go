// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content implements the admin content dispatcher: a registry of
// content type tags to per-type behavior, behind a single set of
// list/get/create/update/delete operations.
package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/cache"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/store"
)

// MaxListLimit caps the page size for any content listing.
const MaxListLimit = 100

// descriptor carries everything the dispatcher knows about one content type.
type descriptor struct {
	defaultLimit int64

	// deletable is false for types that only ever get replaced, never
	// removed (the daily word).
	deletable bool

	list   func(ctx context.Context, s *Service, arg store.ListParams) (any, error)
	get    func(ctx context.Context, s *Service, id int64) (any, error)
	create func(ctx context.Context, s *Service, raw json.RawMessage, caller *session.Identity) (any, error)
	update func(ctx context.Context, s *Service, id int64, raw json.RawMessage) (any, error)
	del    func(ctx context.Context, s *Service, id int64) error
}

// Service dispatches content operations by type tag.
type Service struct {
	queries  *store.Queries
	cache    cache.Cache
	cacheTTL time.Duration
	policy   *bluemonday.Policy
	logger   *slog.Logger
	registry map[string]*descriptor
	now      func() time.Time
}

// NewService builds the dispatcher. The bluemonday UGC policy sanitizes the
// HTML bodies of article, news and event content.
func NewService(queries *store.Queries, c cache.Cache, cacheTTL time.Duration, logger *slog.Logger) *Service {
	s := &Service{
		queries:  queries,
		cache:    c,
		cacheTTL: cacheTTL,
		policy:   bluemonday.UGCPolicy(),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	s.registry = map[string]*descriptor{
		model.TypeArticle:      articleDescriptor(),
		model.TypeNews:         newsDescriptor(),
		model.TypeEvent:        eventDescriptor(),
		model.TypeDailyWord:    dailyWordDescriptor(),
		model.TypePrayerReason: prayerReasonDescriptor(),
		model.TypeGallery:      galleryDescriptor(),
	}
	return s
}

// Types returns the registered content type tags.
func (s *Service) Types() []string {
	types := make([]string, 0, len(s.registry))
	for t := range s.registry {
		types = append(types, t)
	}
	return types
}

func (s *Service) descriptorFor(typ string) (*descriptor, error) {
	desc, ok := s.registry[typ]
	if !ok {
		return nil, apperr.ErrInvalidType
	}
	return desc, nil
}

// List returns a page of items for the type. The limit falls back to the
// type's default and is clamped to [1, MaxListLimit]. Results are cached
// per (type, limit, offset) and invalidated by any write to the type.
func (s *Service) List(ctx context.Context, typ string, limit, offset int64) (any, error) {
	desc, err := s.descriptorFor(typ)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = desc.defaultLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	key := listCacheKey(typ, limit, offset)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var result any
			if json.Unmarshal(data, &result) == nil {
				return result, nil
			}
		}
	}

	result, err := desc.list(ctx, s, store.ListParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", typ, err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, key, data, s.cacheTTL)
		}
	}
	return result, nil
}

// GetByID returns one item, or not_found.
func (s *Service) GetByID(ctx context.Context, typ string, id int64) (any, error) {
	desc, err := s.descriptorFor(typ)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperr.ErrMissingID
	}

	item, err := desc.get(ctx, s, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", typ, id, err)
	}
	return item, nil
}

// Create inserts a new item. Admin-only.
func (s *Service) Create(ctx context.Context, typ string, raw json.RawMessage, caller *session.Identity) (any, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	desc, err := s.descriptorFor(typ)
	if err != nil {
		return nil, err
	}

	item, err := desc.create(ctx, s, raw, caller)
	// A signed cookie can outlive its user row. The attribution FK failing
	// means the caller no longer exists.
	if store.IsForeignKeyViolation(err) {
		return nil, apperr.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, typ)
	s.logger.Info("content created", "category", model.AuditCategoryContent,
		"type", typ, "by", caller.ID)
	return item, nil
}

// Update merges the supplied fields into an existing item. Admin-only.
func (s *Service) Update(ctx context.Context, typ string, id int64, raw json.RawMessage, caller *session.Identity) (any, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	desc, err := s.descriptorFor(typ)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperr.ErrMissingID
	}

	item, err := desc.update(ctx, s, id, raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, typ)
	return item, nil
}

// Delete removes an item. Admin-only; types with deletable=false refuse.
func (s *Service) Delete(ctx context.Context, typ string, id int64, caller *session.Identity) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	desc, err := s.descriptorFor(typ)
	if err != nil {
		return err
	}
	if id <= 0 {
		return apperr.ErrMissingID
	}
	if !desc.deletable {
		return apperr.ErrDeleteNotAllowed
	}

	if err := desc.del(ctx, s, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return err
	}

	s.invalidate(ctx, typ)
	return nil
}

func requireAdmin(caller *session.Identity) error {
	if caller == nil || caller.Role != model.RoleAdmin {
		return apperr.ErrForbidden
	}
	return nil
}

func listCacheKey(typ string, limit, offset int64) string {
	return fmt.Sprintf("content:%s:%d:%d", typ, limit, offset)
}

func (s *Service) invalidate(ctx context.Context, typ string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, "content:"+typ+":"); err != nil {
		s.logger.Warn("cache invalidation failed", "type", typ, "error", err)
	}
}

func (s *Service) sanitize(html string) string {
	return s.policy.Sanitize(html)
}
