// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const userColumns = `id, open_id, name, email, password_hash, password_salt,
	login_method, role, created_at, updated_at, last_signed_in`

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.OpenID, &u.Name, &u.Email, &u.PasswordHash,
		&u.PasswordSalt, &u.LoginMethod, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		&u.LastSignedIn)
	return u, err
}

// CreateUserParams holds the fields for inserting a user row.
type CreateUserParams struct {
	OpenID       sql.NullString
	Name         sql.NullString
	Email        sql.NullString
	PasswordHash sql.NullString
	PasswordSalt sql.NullString
	LoginMethod  sql.NullString
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn time.Time
}

// CreateUser inserts a user row and returns it.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO users (open_id, name, email, password_hash, password_salt,
			login_method, role, created_at, updated_at, last_signed_in)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+userColumns,
		arg.OpenID, arg.Name, arg.Email, arg.PasswordHash, arg.PasswordSalt,
		arg.LoginMethod, arg.Role, arg.CreatedAt, arg.UpdatedAt, arg.LastSignedIn)
	return scanUser(row)
}

// GetUserByID fetches a user by primary key.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByEmail fetches a user by email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email)
	return scanUser(row)
}

// TouchUserSignIn updates last_signed_in and updated_at after a login.
func (q *Queries) TouchUserSignIn(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET last_signed_in = ?, updated_at = ? WHERE id = ?`,
		time.Now(), time.Now(), id)
	return err
}

// UpdateUserRoleByEmailParams holds the fields for a role change.
type UpdateUserRoleByEmailParams struct {
	Email string
	Role  string
}

// UpdateUserRoleByEmail sets the role for the user with the given email.
func (q *Queries) UpdateUserRoleByEmail(ctx context.Context, arg UpdateUserRoleByEmailParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE email = ?`,
		arg.Role, time.Now(), arg.Email)
	return err
}

// CountUsersByRole returns the number of users holding a role.
func (q *Queries) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role = ?`, role).Scan(&n)
	return n, err
}
