// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const newsColumns = `id, title, slug, description, content, image_url,
	author_id, created_at, updated_at`

func scanNewsRow(row *sql.Row) (News, error) {
	var n News
	err := row.Scan(&n.ID, &n.Title, &n.Slug, &n.Description, &n.Content,
		&n.ImageUrl, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// ListNews returns news items ordered by creation time, newest first.
func (q *Queries) ListNews(ctx context.Context, arg ListParams) ([]News, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+newsColumns+` FROM news
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []News
	for rows.Next() {
		var n News
		if err := rows.Scan(&n.ID, &n.Title, &n.Slug, &n.Description,
			&n.Content, &n.ImageUrl, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// GetNewsByID fetches a news item by primary key.
func (q *Queries) GetNewsByID(ctx context.Context, id int64) (News, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+newsColumns+` FROM news WHERE id = ?`, id)
	return scanNewsRow(row)
}

// CreateNewsParams holds the fields for inserting a news item.
type CreateNewsParams struct {
	Title       string
	Slug        string
	Description sql.NullString
	Content     string
	ImageUrl    sql.NullString
	AuthorID    sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateNews inserts a news row and returns it.
func (q *Queries) CreateNews(ctx context.Context, arg CreateNewsParams) (News, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO news (title, slug, description, content, image_url,
			author_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+newsColumns,
		arg.Title, arg.Slug, arg.Description, arg.Content, arg.ImageUrl,
		arg.AuthorID, arg.CreatedAt, arg.UpdatedAt)
	return scanNewsRow(row)
}

// UpdateNewsParams holds the full set of mutable news fields.
type UpdateNewsParams struct {
	ID          int64
	Title       string
	Slug        string
	Description sql.NullString
	Content     string
	ImageUrl    sql.NullString
	UpdatedAt   time.Time
}

// UpdateNews rewrites the mutable fields of a news item and returns it.
func (q *Queries) UpdateNews(ctx context.Context, arg UpdateNewsParams) (News, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE news SET title = ?, slug = ?, description = ?, content = ?,
			image_url = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+newsColumns,
		arg.Title, arg.Slug, arg.Description, arg.Content, arg.ImageUrl,
		arg.UpdatedAt, arg.ID)
	return scanNewsRow(row)
}

// DeleteNews removes a news row.
func (q *Queries) DeleteNews(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM news WHERE id = ?`, id)
	return err
}
