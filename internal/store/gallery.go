// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const galleryColumns = `id, title, description, media_url, media_type,
	event_id, uploaded_by, created_at, updated_at`

func scanGalleryRow(row *sql.Row) (GalleryItem, error) {
	var g GalleryItem
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.MediaUrl, &g.MediaType,
		&g.EventID, &g.UploadedBy, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// ListGalleryItems returns gallery items ordered by creation time, newest first.
func (q *Queries) ListGalleryItems(ctx context.Context, arg ListParams) ([]GalleryItem, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+galleryColumns+` FROM gallery_items
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GalleryItem
	for rows.Next() {
		var g GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.MediaUrl,
			&g.MediaType, &g.EventID, &g.UploadedBy, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

// ListGalleryItemsByEvent returns the gallery items attached to an event.
func (q *Queries) ListGalleryItemsByEvent(ctx context.Context, eventID int64) ([]GalleryItem, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+galleryColumns+` FROM gallery_items WHERE event_id = ?
		ORDER BY created_at DESC, id DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GalleryItem
	for rows.Next() {
		var g GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.MediaUrl,
			&g.MediaType, &g.EventID, &g.UploadedBy, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

// ListGalleryMediaUrls returns every media_url currently referenced by a
// gallery row. Used by the orphan sweep to reconcile the storage bucket.
func (q *Queries) ListGalleryMediaUrls(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT media_url FROM gallery_items`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// GetGalleryItemByID fetches a gallery item by primary key.
func (q *Queries) GetGalleryItemByID(ctx context.Context, id int64) (GalleryItem, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+galleryColumns+` FROM gallery_items WHERE id = ?`, id)
	return scanGalleryRow(row)
}

// CreateGalleryItemParams holds the fields for inserting a gallery item.
type CreateGalleryItemParams struct {
	Title       string
	Description sql.NullString
	MediaUrl    string
	MediaType   string
	EventID     sql.NullInt64
	UploadedBy  sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateGalleryItem inserts a gallery row and returns it.
func (q *Queries) CreateGalleryItem(ctx context.Context, arg CreateGalleryItemParams) (GalleryItem, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO gallery_items (title, description, media_url, media_type,
			event_id, uploaded_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+galleryColumns,
		arg.Title, arg.Description, arg.MediaUrl, arg.MediaType, arg.EventID,
		arg.UploadedBy, arg.CreatedAt, arg.UpdatedAt)
	return scanGalleryRow(row)
}

// UpdateGalleryItemParams holds the full set of mutable gallery fields.
type UpdateGalleryItemParams struct {
	ID          int64
	Title       string
	Description sql.NullString
	MediaUrl    string
	MediaType   string
	EventID     sql.NullInt64
	UpdatedAt   time.Time
}

// UpdateGalleryItem rewrites the mutable fields of a gallery item and returns it.
func (q *Queries) UpdateGalleryItem(ctx context.Context, arg UpdateGalleryItemParams) (GalleryItem, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE gallery_items SET title = ?, description = ?, media_url = ?,
			media_type = ?, event_id = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+galleryColumns,
		arg.Title, arg.Description, arg.MediaUrl, arg.MediaType, arg.EventID,
		arg.UpdatedAt, arg.ID)
	return scanGalleryRow(row)
}

// DeleteGalleryItem removes a gallery row.
func (q *Queries) DeleteGalleryItem(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = ?`, id)
	return err
}
