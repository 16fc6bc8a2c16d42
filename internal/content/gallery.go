// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/store"
	"github.com/iesp-app/igreja-go/internal/util"
)

// ErrSelectFileOrURL is returned verbatim when a gallery item arrives with
// neither an uploaded file nor a media URL. The clients display this string
// as-is.
const ErrSelectFileOrURL = apperr.Error("Selecione um arquivo ou informe a URL")

type galleryInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	MediaUrl    *string `json:"mediaUrl"`
	MediaType   *string `json:"mediaType"`
	EventID     *int64  `json:"eventId"`
}

// checkEventRef rejects an eventId that points at no event, keeping the
// later insert's FK failures unambiguous.
func (s *Service) checkEventRef(ctx context.Context, eventID *int64) error {
	if eventID == nil {
		return nil
	}
	if _, err := s.queries.GetEventByID(ctx, *eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrInvalidFields
		}
		return err
	}
	return nil
}

func galleryDescriptor() *descriptor {
	return &descriptor{
		defaultLimit: 50,
		deletable:    true,

		list: func(ctx context.Context, s *Service, arg store.ListParams) (any, error) {
			rows, err := s.queries.ListGalleryItems(ctx, arg)
			if err != nil {
				return nil, err
			}
			docs := make([]GalleryDoc, 0, len(rows))
			for _, r := range rows {
				docs = append(docs, galleryDoc(r))
			}
			return docs, nil
		},

		get: func(ctx context.Context, s *Service, id int64) (any, error) {
			row, err := s.queries.GetGalleryItemByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return galleryDoc(row), nil
		},

		create: func(ctx context.Context, s *Service, raw json.RawMessage, caller *session.Identity) (any, error) {
			var in galleryInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}
			if trimmed(in.Title) == "" {
				return nil, apperr.ErrMissingTitle
			}
			if !has(in.MediaUrl) {
				return nil, ErrSelectFileOrURL
			}

			mediaType := model.MediaTypeImage
			if has(in.MediaType) {
				mediaType = trimmed(in.MediaType)
				if mediaType != model.MediaTypeImage && mediaType != model.MediaTypeVideo {
					return nil, apperr.ErrInvalidFields
				}
			}
			if err := s.checkEventRef(ctx, in.EventID); err != nil {
				return nil, err
			}

			now := s.now()
			row, err := s.queries.CreateGalleryItem(ctx, store.CreateGalleryItemParams{
				Title:       trimmed(in.Title),
				Description: util.NullStringFromValue(trimmed(in.Description)),
				MediaUrl:    trimmed(in.MediaUrl),
				MediaType:   mediaType,
				EventID:     util.NullInt64FromPtr(in.EventID),
				UploadedBy:  sql.NullInt64{Int64: caller.ID, Valid: true},
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return nil, err
			}
			return galleryDoc(row), nil
		},

		update: func(ctx context.Context, s *Service, id int64, raw json.RawMessage) (any, error) {
			var in galleryInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}

			current, err := s.queries.GetGalleryItemByID(ctx, id)
			if err != nil {
				return nil, err
			}

			arg := store.UpdateGalleryItemParams{
				ID:          id,
				Title:       current.Title,
				Description: current.Description,
				MediaUrl:    current.MediaUrl,
				MediaType:   current.MediaType,
				EventID:     current.EventID,
				UpdatedAt:   s.now(),
			}
			if has(in.Title) {
				arg.Title = trimmed(in.Title)
			}
			if in.Description != nil {
				arg.Description = util.NullStringFromValue(trimmed(in.Description))
			}
			if has(in.MediaUrl) {
				arg.MediaUrl = trimmed(in.MediaUrl)
			}
			if has(in.MediaType) {
				mediaType := trimmed(in.MediaType)
				if mediaType != model.MediaTypeImage && mediaType != model.MediaTypeVideo {
					return nil, apperr.ErrInvalidFields
				}
				arg.MediaType = mediaType
			}
			if in.EventID != nil {
				if err := s.checkEventRef(ctx, in.EventID); err != nil {
					return nil, err
				}
				arg.EventID = util.NullInt64FromPtr(in.EventID)
			}

			row, err := s.queries.UpdateGalleryItem(ctx, arg)
			if err != nil {
				return nil, err
			}
			return galleryDoc(row), nil
		},

		del: func(ctx context.Context, s *Service, id int64) error {
			if _, err := s.queries.GetGalleryItemByID(ctx, id); err != nil {
				return err
			}
			return s.queries.DeleteGalleryItem(ctx, id)
		},
	}
}
