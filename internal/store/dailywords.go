// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const dailyWordColumns = `id, date, title, content, reference, created_at, updated_at`

func scanDailyWordRow(row *sql.Row) (DailyWord, error) {
	var w DailyWord
	err := row.Scan(&w.ID, &w.Date, &w.Title, &w.Content, &w.Reference,
		&w.CreatedAt, &w.UpdatedAt)
	return w, err
}

// GetDailyWordByDate fetches the word for a calendar day (YYYY-MM-DD).
func (q *Queries) GetDailyWordByDate(ctx context.Context, date string) (DailyWord, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+dailyWordColumns+` FROM daily_words WHERE date = ?`, date)
	return scanDailyWordRow(row)
}

// GetDailyWordByID fetches a daily word by primary key.
func (q *Queries) GetDailyWordByID(ctx context.Context, id int64) (DailyWord, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+dailyWordColumns+` FROM daily_words WHERE id = ?`, id)
	return scanDailyWordRow(row)
}

// GetLatestDailyWord fetches the most recent word by date.
func (q *Queries) GetLatestDailyWord(ctx context.Context) (DailyWord, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+dailyWordColumns+` FROM daily_words ORDER BY date DESC LIMIT 1`)
	return scanDailyWordRow(row)
}

// CreateDailyWordParams holds the fields for inserting a daily word.
type CreateDailyWordParams struct {
	Date      string
	Title     string
	Content   string
	Reference sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateDailyWord inserts a daily word row and returns it. The date column
// carries a UNIQUE constraint: one word per calendar day.
func (q *Queries) CreateDailyWord(ctx context.Context, arg CreateDailyWordParams) (DailyWord, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO daily_words (date, title, content, reference, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+dailyWordColumns,
		arg.Date, arg.Title, arg.Content, arg.Reference, arg.CreatedAt, arg.UpdatedAt)
	return scanDailyWordRow(row)
}

// UpdateDailyWordParams holds the full set of mutable daily word fields.
type UpdateDailyWordParams struct {
	ID        int64
	Date      string
	Title     string
	Content   string
	Reference sql.NullString
	UpdatedAt time.Time
}

// UpdateDailyWord rewrites the mutable fields of a daily word and returns it.
func (q *Queries) UpdateDailyWord(ctx context.Context, arg UpdateDailyWordParams) (DailyWord, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE daily_words SET date = ?, title = ?, content = ?, reference = ?,
			updated_at = ?
		WHERE id = ?
		RETURNING `+dailyWordColumns,
		arg.Date, arg.Title, arg.Content, arg.Reference, arg.UpdatedAt, arg.ID)
	return scanDailyWordRow(row)
}
