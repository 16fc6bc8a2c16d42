// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const eventColumns = `id, title, description, content, image_url, location,
	start_date, end_date, created_at, updated_at`

func scanEventRow(row *sql.Row) (Event, error) {
	var e Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Content, &e.ImageUrl,
		&e.Location, &e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// ListEvents returns events ordered by start date, latest first.
func (q *Queries) ListEvents(ctx context.Context, arg ListParams) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+eventColumns+` FROM events
		ORDER BY start_date DESC, id DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Content,
			&e.ImageUrl, &e.Location, &e.StartDate, &e.EndDate,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// GetEventByID fetches an event by primary key.
func (q *Queries) GetEventByID(ctx context.Context, id int64) (Event, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEventRow(row)
}

// CreateEventParams holds the fields for inserting an event.
type CreateEventParams struct {
	Title       string
	Description sql.NullString
	Content     sql.NullString
	ImageUrl    sql.NullString
	Location    sql.NullString
	StartDate   time.Time
	EndDate     sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateEvent inserts an event row and returns it.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO events (title, description, content, image_url, location,
			start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+eventColumns,
		arg.Title, arg.Description, arg.Content, arg.ImageUrl, arg.Location,
		arg.StartDate, arg.EndDate, arg.CreatedAt, arg.UpdatedAt)
	return scanEventRow(row)
}

// UpdateEventParams holds the full set of mutable event fields.
type UpdateEventParams struct {
	ID          int64
	Title       string
	Description sql.NullString
	Content     sql.NullString
	ImageUrl    sql.NullString
	Location    sql.NullString
	StartDate   time.Time
	EndDate     sql.NullTime
	UpdatedAt   time.Time
}

// UpdateEvent rewrites the mutable fields of an event and returns it.
func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE events SET title = ?, description = ?, content = ?,
			image_url = ?, location = ?, start_date = ?, end_date = ?,
			updated_at = ?
		WHERE id = ?
		RETURNING `+eventColumns,
		arg.Title, arg.Description, arg.Content, arg.ImageUrl, arg.Location,
		arg.StartDate, arg.EndDate, arg.UpdatedAt, arg.ID)
	return scanEventRow(row)
}

// DeleteEvent removes an event row.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}
