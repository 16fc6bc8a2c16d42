// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/store"
	"github.com/iesp-app/igreja-go/internal/util"
)

type eventInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	ImageUrl    *string `json:"imageUrl"`
	Location    *string `json:"location"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

func eventDescriptor() *descriptor {
	return &descriptor{
		defaultLimit: 20,
		deletable:    true,

		list: func(ctx context.Context, s *Service, arg store.ListParams) (any, error) {
			rows, err := s.queries.ListEvents(ctx, arg)
			if err != nil {
				return nil, err
			}
			docs := make([]EventDoc, 0, len(rows))
			for _, r := range rows {
				docs = append(docs, eventDoc(r))
			}
			return docs, nil
		},

		get: func(ctx context.Context, s *Service, id int64) (any, error) {
			row, err := s.queries.GetEventByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return eventDoc(row), nil
		},

		create: func(ctx context.Context, s *Service, raw json.RawMessage, caller *session.Identity) (any, error) {
			var in eventInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}
			if trimmed(in.Title) == "" {
				return nil, apperr.ErrMissingTitle
			}
			if trimmed(in.Location) == "" {
				return nil, apperr.ErrMissingFields
			}
			if !has(in.StartDate) {
				return nil, apperr.ErrMissingFields
			}

			startDate, ok := parseDate(*in.StartDate)
			if !ok {
				return nil, apperr.ErrInvalidStartDate
			}

			var endDate sql.NullTime
			if has(in.EndDate) {
				t, ok := parseDate(*in.EndDate)
				if !ok {
					return nil, apperr.ErrInvalidFields
				}
				endDate = sql.NullTime{Time: t, Valid: true}
			}

			var content sql.NullString
			if has(in.Content) {
				content = util.NullStringFromValue(s.sanitize(*in.Content))
			}

			now := s.now()
			row, err := s.queries.CreateEvent(ctx, store.CreateEventParams{
				Title:       trimmed(in.Title),
				Description: util.NullStringFromValue(trimmed(in.Description)),
				Content:     content,
				ImageUrl:    util.NullStringFromValue(trimmed(in.ImageUrl)),
				Location:    util.NullStringFromValue(trimmed(in.Location)),
				StartDate:   startDate,
				EndDate:     endDate,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return nil, err
			}
			return eventDoc(row), nil
		},

		update: func(ctx context.Context, s *Service, id int64, raw json.RawMessage) (any, error) {
			var in eventInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}

			current, err := s.queries.GetEventByID(ctx, id)
			if err != nil {
				return nil, err
			}

			arg := store.UpdateEventParams{
				ID:          id,
				Title:       current.Title,
				Description: current.Description,
				Content:     current.Content,
				ImageUrl:    current.ImageUrl,
				Location:    current.Location,
				StartDate:   current.StartDate,
				EndDate:     current.EndDate,
				UpdatedAt:   s.now(),
			}
			if has(in.Title) {
				arg.Title = trimmed(in.Title)
			}
			if in.Description != nil {
				arg.Description = util.NullStringFromValue(trimmed(in.Description))
			}
			if has(in.Content) {
				arg.Content = util.NullStringFromValue(s.sanitize(*in.Content))
			}
			if in.ImageUrl != nil {
				arg.ImageUrl = util.NullStringFromValue(trimmed(in.ImageUrl))
			}
			if in.Location != nil {
				arg.Location = util.NullStringFromValue(trimmed(in.Location))
			}
			if has(in.StartDate) {
				t, ok := parseDate(*in.StartDate)
				if !ok {
					return nil, apperr.ErrInvalidStartDate
				}
				arg.StartDate = t
			}
			if has(in.EndDate) {
				t, ok := parseDate(*in.EndDate)
				if !ok {
					return nil, apperr.ErrInvalidFields
				}
				arg.EndDate = sql.NullTime{Time: t, Valid: true}
			}

			row, err := s.queries.UpdateEvent(ctx, arg)
			if err != nil {
				return nil, err
			}
			return eventDoc(row), nil
		},

		del: func(ctx context.Context, s *Service, id int64) error {
			if _, err := s.queries.GetEventByID(ctx, id); err != nil {
				return err
			}
			return s.queries.DeleteEvent(ctx, id)
		},
	}
}
