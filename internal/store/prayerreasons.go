// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const prayerReasonColumns = `id, title, description, priority, created_at, updated_at`

func scanPrayerReasonRow(row *sql.Row) (PrayerReason, error) {
	var p PrayerReason
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Priority,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// ListPrayerReasons returns prayer reasons ordered by creation time, newest first.
func (q *Queries) ListPrayerReasons(ctx context.Context, arg ListParams) ([]PrayerReason, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+prayerReasonColumns+` FROM prayer_reasons
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PrayerReason
	for rows.Next() {
		var p PrayerReason
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Priority,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// GetPrayerReasonByID fetches a prayer reason by primary key.
func (q *Queries) GetPrayerReasonByID(ctx context.Context, id int64) (PrayerReason, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+prayerReasonColumns+` FROM prayer_reasons WHERE id = ?`, id)
	return scanPrayerReasonRow(row)
}

// CreatePrayerReasonParams holds the fields for inserting a prayer reason.
type CreatePrayerReasonParams struct {
	Title       string
	Description string
	Priority    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreatePrayerReason inserts a prayer reason row and returns it.
func (q *Queries) CreatePrayerReason(ctx context.Context, arg CreatePrayerReasonParams) (PrayerReason, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO prayer_reasons (title, description, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+prayerReasonColumns,
		arg.Title, arg.Description, arg.Priority, arg.CreatedAt, arg.UpdatedAt)
	return scanPrayerReasonRow(row)
}

// UpdatePrayerReasonParams holds the full set of mutable prayer reason fields.
type UpdatePrayerReasonParams struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	UpdatedAt   time.Time
}

// UpdatePrayerReason rewrites the mutable fields of a prayer reason and returns it.
func (q *Queries) UpdatePrayerReason(ctx context.Context, arg UpdatePrayerReasonParams) (PrayerReason, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE prayer_reasons SET title = ?, description = ?, priority = ?,
			updated_at = ?
		WHERE id = ?
		RETURNING `+prayerReasonColumns,
		arg.Title, arg.Description, arg.Priority, arg.UpdatedAt, arg.ID)
	return scanPrayerReasonRow(row)
}

// DeletePrayerReason removes a prayer reason row.
func (q *Queries) DeletePrayerReason(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM prayer_reasons WHERE id = ?`, id)
	return err
}
