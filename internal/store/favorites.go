// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const favoriteColumns = `id, user_id, content_type, content_id, created_at`

// AddUserFavoriteParams identifies the item a user is bookmarking.
type AddUserFavoriteParams struct {
	UserID      int64
	ContentType string
	ContentID   int64
	CreatedAt   time.Time
}

// AddUserFavorite records a favorite. Re-adding the same item is a no-op
// thanks to the unique (user, type, id) index.
func (q *Queries) AddUserFavorite(ctx context.Context, arg AddUserFavoriteParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO user_favorites (user_id, content_type, content_id, created_at)
		VALUES (?, ?, ?, ?)`,
		arg.UserID, arg.ContentType, arg.ContentID, arg.CreatedAt)
	return err
}

// RemoveUserFavorite deletes a favorite if present.
func (q *Queries) RemoveUserFavorite(ctx context.Context, userID int64, contentType string, contentID int64) error {
	_, err := q.db.ExecContext(ctx, `
		DELETE FROM user_favorites
		WHERE user_id = ? AND content_type = ? AND content_id = ?`,
		userID, contentType, contentID)
	return err
}

// ListUserFavorites returns a user's favorites, most recent first. An empty
// contentType returns favorites of every type.
func (q *Queries) ListUserFavorites(ctx context.Context, userID int64, contentType string) ([]UserFavorite, error) {
	query := `SELECT ` + favoriteColumns + ` FROM user_favorites WHERE user_id = ?`
	args := []any{userID}
	if contentType != "" {
		query += ` AND content_type = ?`
		args = append(args, contentType)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []UserFavorite
	for rows.Next() {
		var f UserFavorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ContentType, &f.ContentID,
			&f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// IsUserFavorite reports whether the user has bookmarked the item.
func (q *Queries) IsUserFavorite(ctx context.Context, userID int64, contentType string, contentID int64) (bool, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM user_favorites
		WHERE user_id = ? AND content_type = ? AND content_id = ?`,
		userID, contentType, contentID).Scan(&n)
	return n > 0, err
}
