// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/store"
	"github.com/iesp-app/igreja-go/internal/util"
)

type dailyWordInput struct {
	Date      *string `json:"date"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Reference *string `json:"reference"`
}

// dailyWordDescriptor handles the one-per-day devotional. Listing returns
// the word for the current date (or null), not a page; deletion is refused
// because old words stay addressable by date.
func dailyWordDescriptor() *descriptor {
	return &descriptor{
		defaultLimit: 1,
		deletable:    false,

		list: func(ctx context.Context, s *Service, _ store.ListParams) (any, error) {
			today := s.now().Format("2006-01-02")
			row, err := s.queries.GetDailyWordByDate(ctx, today)
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return dailyWordDoc(row), nil
		},

		get: func(ctx context.Context, s *Service, id int64) (any, error) {
			row, err := s.queries.GetDailyWordByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return dailyWordDoc(row), nil
		},

		create: func(ctx context.Context, s *Service, raw json.RawMessage, _ *session.Identity) (any, error) {
			var in dailyWordInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}
			if !has(in.Date) || trimmed(in.Title) == "" || !has(in.Content) {
				return nil, apperr.ErrMissingFields
			}

			date := trimmed(in.Date)
			if !validDailyWordDate(date) {
				return nil, apperr.ErrInvalidFields
			}

			now := s.now()
			row, err := s.queries.CreateDailyWord(ctx, store.CreateDailyWordParams{
				Date:      date,
				Title:     trimmed(in.Title),
				Content:   *in.Content,
				Reference: util.NullStringFromValue(trimmed(in.Reference)),
				CreatedAt: now,
				UpdatedAt: now,
			})
			if store.IsUniqueViolation(err) {
				return nil, apperr.ErrDateInUse
			}
			if err != nil {
				return nil, err
			}
			return dailyWordDoc(row), nil
		},

		update: func(ctx context.Context, s *Service, id int64, raw json.RawMessage) (any, error) {
			var in dailyWordInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}

			current, err := s.queries.GetDailyWordByID(ctx, id)
			if err != nil {
				return nil, err
			}

			arg := store.UpdateDailyWordParams{
				ID:        id,
				Date:      current.Date,
				Title:     current.Title,
				Content:   current.Content,
				Reference: current.Reference,
				UpdatedAt: s.now(),
			}
			if has(in.Date) {
				date := trimmed(in.Date)
				if !validDailyWordDate(date) {
					return nil, apperr.ErrInvalidFields
				}
				arg.Date = date
			}
			if has(in.Title) {
				arg.Title = trimmed(in.Title)
			}
			if has(in.Content) {
				arg.Content = *in.Content
			}
			if in.Reference != nil {
				arg.Reference = util.NullStringFromValue(trimmed(in.Reference))
			}

			row, err := s.queries.UpdateDailyWord(ctx, arg)
			if store.IsUniqueViolation(err) {
				return nil, apperr.ErrDateInUse
			}
			if err != nil {
				return nil, err
			}
			return dailyWordDoc(row), nil
		},

		// del is never reached: deletable=false short-circuits in Delete.
		del: func(context.Context, *Service, int64) error {
			return apperr.ErrDeleteNotAllowed
		},
	}
}
