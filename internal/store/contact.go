// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const contactColumns = `id, name, email, subject, message, status,
	created_at, updated_at`

// CreateContactSubmissionParams holds the fields of an incoming contact
// message.
type CreateContactSubmissionParams struct {
	Name      string
	Email     string
	Subject   sql.NullString
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateContactSubmission records a contact-form message and returns the
// stored row.
func (q *Queries) CreateContactSubmission(ctx context.Context, arg CreateContactSubmissionParams) (ContactSubmission, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO contact_submissions (name, email, subject, message, status,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+contactColumns,
		arg.Name, arg.Email, arg.Subject, arg.Message, arg.Status,
		arg.CreatedAt, arg.UpdatedAt)
	return scanContactSubmission(row)
}

// ListContactSubmissions returns submissions, newest first.
func (q *Queries) ListContactSubmissions(ctx context.Context, arg ListParams) ([]ContactSubmission, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+contactColumns+` FROM contact_submissions
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ContactSubmission
	for rows.Next() {
		var c ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message,
			&c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// UpdateContactSubmissionStatus moves a submission through its workflow
// states.
func (q *Queries) UpdateContactSubmissionStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE contact_submissions SET status = ?, updated_at = ? WHERE id = ?`,
		status, updatedAt, id)
	return err
}

func scanContactSubmission(row *sql.Row) (ContactSubmission, error) {
	var c ContactSubmission
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
