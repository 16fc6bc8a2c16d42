// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"encoding/json"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/store"
)

type prayerReasonInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

func prayerReasonDescriptor() *descriptor {
	return &descriptor{
		defaultLimit: 50,
		deletable:    true,

		list: func(ctx context.Context, s *Service, arg store.ListParams) (any, error) {
			rows, err := s.queries.ListPrayerReasons(ctx, arg)
			if err != nil {
				return nil, err
			}
			docs := make([]PrayerReasonDoc, 0, len(rows))
			for _, r := range rows {
				docs = append(docs, prayerReasonDoc(r))
			}
			return docs, nil
		},

		get: func(ctx context.Context, s *Service, id int64) (any, error) {
			row, err := s.queries.GetPrayerReasonByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return prayerReasonDoc(row), nil
		},

		create: func(ctx context.Context, s *Service, raw json.RawMessage, _ *session.Identity) (any, error) {
			var in prayerReasonInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}
			if trimmed(in.Title) == "" {
				return nil, apperr.ErrMissingTitle
			}
			if !has(in.Description) {
				return nil, apperr.ErrMissingFields
			}

			priority := model.PriorityMedium
			if has(in.Priority) {
				priority = trimmed(in.Priority)
				if !model.ValidPriority(priority) {
					return nil, apperr.ErrInvalidPriority
				}
			}

			now := s.now()
			row, err := s.queries.CreatePrayerReason(ctx, store.CreatePrayerReasonParams{
				Title:       trimmed(in.Title),
				Description: *in.Description,
				Priority:    priority,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return nil, err
			}
			return prayerReasonDoc(row), nil
		},

		update: func(ctx context.Context, s *Service, id int64, raw json.RawMessage) (any, error) {
			var in prayerReasonInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}

			current, err := s.queries.GetPrayerReasonByID(ctx, id)
			if err != nil {
				return nil, err
			}

			arg := store.UpdatePrayerReasonParams{
				ID:          id,
				Title:       current.Title,
				Description: current.Description,
				Priority:    current.Priority,
				UpdatedAt:   s.now(),
			}
			if has(in.Title) {
				arg.Title = trimmed(in.Title)
			}
			if has(in.Description) {
				arg.Description = *in.Description
			}
			if has(in.Priority) {
				priority := trimmed(in.Priority)
				if !model.ValidPriority(priority) {
					return nil, apperr.ErrInvalidPriority
				}
				arg.Priority = priority
			}

			row, err := s.queries.UpdatePrayerReason(ctx, arg)
			if err != nil {
				return nil, err
			}
			return prayerReasonDoc(row), nil
		},

		del: func(ctx context.Context, s *Service, id int64) error {
			if _, err := s.queries.GetPrayerReasonByID(ctx, id); err != nil {
				return err
			}
			return s.queries.DeletePrayerReason(ctx, id)
		},
	}
}
