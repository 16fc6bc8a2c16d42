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

// articleInput covers both creates and partial updates for articles and
// news; nil pointers mean "not supplied".
type articleInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	ImageUrl    *string `json:"imageUrl"`
}

func (in *articleInput) validateCreate() error {
	if trimmed(in.Title) == "" {
		return apperr.ErrMissingTitle
	}
	if !has(in.Content) {
		return apperr.ErrMissingFields
	}
	return nil
}

func articleDescriptor() *descriptor {
	return &descriptor{
		defaultLimit: 20,
		deletable:    true,

		list: func(ctx context.Context, s *Service, arg store.ListParams) (any, error) {
			rows, err := s.queries.ListArticles(ctx, arg)
			if err != nil {
				return nil, err
			}
			docs := make([]ArticleDoc, 0, len(rows))
			for _, r := range rows {
				docs = append(docs, articleDoc(r))
			}
			return docs, nil
		},

		get: func(ctx context.Context, s *Service, id int64) (any, error) {
			row, err := s.queries.GetArticleByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return articleDoc(row), nil
		},

		create: func(ctx context.Context, s *Service, raw json.RawMessage, caller *session.Identity) (any, error) {
			var in articleInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}
			if err := in.validateCreate(); err != nil {
				return nil, err
			}

			title := trimmed(in.Title)
			now := s.now()
			row, err := s.queries.CreateArticle(ctx, store.CreateArticleParams{
				Title:       title,
				Slug:        util.Slugify(title),
				Description: util.NullStringFromValue(trimmed(in.Description)),
				Content:     s.sanitize(*in.Content),
				ImageUrl:    util.NullStringFromValue(trimmed(in.ImageUrl)),
				AuthorID:    sql.NullInt64{Int64: caller.ID, Valid: true},
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return nil, err
			}
			return articleDoc(row), nil
		},

		update: func(ctx context.Context, s *Service, id int64, raw json.RawMessage) (any, error) {
			var in articleInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}

			current, err := s.queries.GetArticleByID(ctx, id)
			if err != nil {
				return nil, err
			}

			arg := store.UpdateArticleParams{
				ID:          id,
				Title:       current.Title,
				Slug:        current.Slug,
				Description: current.Description,
				Content:     current.Content,
				ImageUrl:    current.ImageUrl,
				UpdatedAt:   s.now(),
			}
			if has(in.Title) {
				arg.Title = trimmed(in.Title)
				arg.Slug = util.Slugify(arg.Title)
			}
			if in.Description != nil {
				arg.Description = util.NullStringFromValue(trimmed(in.Description))
			}
			if has(in.Content) {
				arg.Content = s.sanitize(*in.Content)
			}
			if in.ImageUrl != nil {
				arg.ImageUrl = util.NullStringFromValue(trimmed(in.ImageUrl))
			}

			row, err := s.queries.UpdateArticle(ctx, arg)
			if err != nil {
				return nil, err
			}
			return articleDoc(row), nil
		},

		del: func(ctx context.Context, s *Service, id int64) error {
			if _, err := s.queries.GetArticleByID(ctx, id); err != nil {
				return err
			}
			return s.queries.DeleteArticle(ctx, id)
		},
	}
}

// newsDescriptor mirrors the article behavior over the news table.
func newsDescriptor() *descriptor {
	return &descriptor{
		defaultLimit: 20,
		deletable:    true,

		list: func(ctx context.Context, s *Service, arg store.ListParams) (any, error) {
			rows, err := s.queries.ListNews(ctx, arg)
			if err != nil {
				return nil, err
			}
			docs := make([]ArticleDoc, 0, len(rows))
			for _, r := range rows {
				docs = append(docs, newsDoc(r))
			}
			return docs, nil
		},

		get: func(ctx context.Context, s *Service, id int64) (any, error) {
			row, err := s.queries.GetNewsByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return newsDoc(row), nil
		},

		create: func(ctx context.Context, s *Service, raw json.RawMessage, caller *session.Identity) (any, error) {
			var in articleInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}
			if err := in.validateCreate(); err != nil {
				return nil, err
			}

			title := trimmed(in.Title)
			now := s.now()
			row, err := s.queries.CreateNews(ctx, store.CreateNewsParams{
				Title:       title,
				Slug:        util.Slugify(title),
				Description: util.NullStringFromValue(trimmed(in.Description)),
				Content:     s.sanitize(*in.Content),
				ImageUrl:    util.NullStringFromValue(trimmed(in.ImageUrl)),
				AuthorID:    sql.NullInt64{Int64: caller.ID, Valid: true},
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return nil, err
			}
			return newsDoc(row), nil
		},

		update: func(ctx context.Context, s *Service, id int64, raw json.RawMessage) (any, error) {
			var in articleInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, apperr.ErrInvalidFields
			}

			current, err := s.queries.GetNewsByID(ctx, id)
			if err != nil {
				return nil, err
			}

			arg := store.UpdateNewsParams{
				ID:          id,
				Title:       current.Title,
				Slug:        current.Slug,
				Description: current.Description,
				Content:     current.Content,
				ImageUrl:    current.ImageUrl,
				UpdatedAt:   s.now(),
			}
			if has(in.Title) {
				arg.Title = trimmed(in.Title)
				arg.Slug = util.Slugify(arg.Title)
			}
			if in.Description != nil {
				arg.Description = util.NullStringFromValue(trimmed(in.Description))
			}
			if has(in.Content) {
				arg.Content = s.sanitize(*in.Content)
			}
			if in.ImageUrl != nil {
				arg.ImageUrl = util.NullStringFromValue(trimmed(in.ImageUrl))
			}

			row, err := s.queries.UpdateNews(ctx, arg)
			if err != nil {
				return nil, err
			}
			return newsDoc(row), nil
		},

		del: func(ctx context.Context, s *Service, id int64) error {
			if _, err := s.queries.GetNewsByID(ctx, id); err != nil {
				return err
			}
			return s.queries.DeleteNews(ctx, id)
		},
	}
}
