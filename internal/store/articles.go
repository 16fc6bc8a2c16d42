// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const articleColumns = `id, title, slug, description, content, image_url,
	author_id, created_at, updated_at`

func scanArticleRow(row *sql.Row) (Article, error) {
	var a Article
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Description, &a.Content,
		&a.ImageUrl, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// ListParams is the shared paging argument for list queries.
type ListParams struct {
	Limit  int64
	Offset int64
}

// ListArticles returns articles ordered by creation time, newest first.
func (q *Queries) ListArticles(ctx context.Context, arg ListParams) ([]Article, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+articleColumns+` FROM articles
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Description,
			&a.Content, &a.ImageUrl, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// GetArticleByID fetches an article by primary key.
func (q *Queries) GetArticleByID(ctx context.Context, id int64) (Article, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	return scanArticleRow(row)
}

// CreateArticleParams holds the fields for inserting an article.
type CreateArticleParams struct {
	Title       string
	Slug        string
	Description sql.NullString
	Content     string
	ImageUrl    sql.NullString
	AuthorID    sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateArticle inserts an article row and returns it.
func (q *Queries) CreateArticle(ctx context.Context, arg CreateArticleParams) (Article, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO articles (title, slug, description, content, image_url,
			author_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+articleColumns,
		arg.Title, arg.Slug, arg.Description, arg.Content, arg.ImageUrl,
		arg.AuthorID, arg.CreatedAt, arg.UpdatedAt)
	return scanArticleRow(row)
}

// UpdateArticleParams holds the full set of mutable article fields.
type UpdateArticleParams struct {
	ID          int64
	Title       string
	Slug        string
	Description sql.NullString
	Content     string
	ImageUrl    sql.NullString
	UpdatedAt   time.Time
}

// UpdateArticle rewrites the mutable fields of an article and returns it.
func (q *Queries) UpdateArticle(ctx context.Context, arg UpdateArticleParams) (Article, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE articles SET title = ?, slug = ?, description = ?, content = ?,
			image_url = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+articleColumns,
		arg.Title, arg.Slug, arg.Description, arg.Content, arg.ImageUrl,
		arg.UpdatedAt, arg.ID)
	return scanArticleRow(row)
}

// DeleteArticle removes an article row.
func (q *Queries) DeleteArticle(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	return err
}
