// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const hymnColumns = `id, number, title, lyrics, author, created_at, updated_at`

func scanHymnRow(row *sql.Row) (Hymn, error) {
	var h Hymn
	err := row.Scan(&h.ID, &h.Number, &h.Title, &h.Lyrics, &h.Author,
		&h.CreatedAt, &h.UpdatedAt)
	return h, err
}

func scanHymns(rows *sql.Rows) ([]Hymn, error) {
	defer rows.Close()

	var items []Hymn
	for rows.Next() {
		var h Hymn
		if err := rows.Scan(&h.ID, &h.Number, &h.Title, &h.Lyrics, &h.Author,
			&h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

// ListHymns returns hymns ordered by hymnal number, ascending.
func (q *Queries) ListHymns(ctx context.Context, arg ListParams) ([]Hymn, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+hymnColumns+` FROM hymns
		ORDER BY number ASC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanHymns(rows)
}

// GetHymnByID fetches a hymn by primary key.
func (q *Queries) GetHymnByID(ctx context.Context, id int64) (Hymn, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+hymnColumns+` FROM hymns WHERE id = ?`, id)
	return scanHymnRow(row)
}

// SearchHymns returns hymns whose title contains the query, case-insensitive,
// ordered by hymnal number.
func (q *Queries) SearchHymns(ctx context.Context, query string) ([]Hymn, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+hymnColumns+` FROM hymns
		WHERE title LIKE '%' || ? || '%' COLLATE NOCASE
		ORDER BY number ASC LIMIT 20`, query)
	if err != nil {
		return nil, err
	}
	return scanHymns(rows)
}

// CreateHymnParams holds the fields for inserting a hymn.
type CreateHymnParams struct {
	Number    int64
	Title     string
	Lyrics    string
	Author    sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateHymn inserts a hymn row and returns it.
func (q *Queries) CreateHymn(ctx context.Context, arg CreateHymnParams) (Hymn, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO hymns (number, title, lyrics, author, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+hymnColumns,
		arg.Number, arg.Title, arg.Lyrics, arg.Author, arg.CreatedAt, arg.UpdatedAt)
	return scanHymnRow(row)
}
