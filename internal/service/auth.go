// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the account, donation and favorites use cases
// on top of the store layer.
package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/auth"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/store"
	"github.com/iesp-app/igreja-go/internal/util"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// Deliberately loose: real validation happens when the address is used.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Auth handles registration, credential checks and role changes.
type Auth struct {
	queries *store.Queries
	logger  *slog.Logger
}

// NewAuth returns an Auth service backed by queries.
func NewAuth(queries *store.Queries, logger *slog.Logger) *Auth {
	return &Auth{queries: queries, logger: logger}
}

// Register creates a new user account with role user. No session is issued;
// the caller logs in separately.
func (s *Auth) Register(ctx context.Context, name, email, password string) (store.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return store.User{}, apperr.ErrMissingFields
	}
	if !emailRegex.MatchString(email) || len(password) < MinPasswordLength {
		return store.User{}, apperr.ErrInvalidFields
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return store.User{}, err
	}
	hash, err := auth.HashPassword(password, salt)
	if err != nil {
		return store.User{}, err
	}

	now := time.Now()
	user, err := s.queries.CreateUser(ctx, store.CreateUserParams{
		Name:         util.NullStringFromValue(name),
		Email:        util.NullStringFromValue(email),
		PasswordHash: util.NullStringFromValue(hash),
		PasswordSalt: util.NullStringFromValue(salt),
		LoginMethod:  util.NullStringFromValue(model.LoginMethodEmail),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return store.User{}, apperr.ErrEmailInUse
		}
		s.logger.Error("user insert failed", "error", err, "category", model.AuditCategoryAuth)
		return store.User{}, apperr.ErrDatabaseUnavailable
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", email)
	return user, nil
}

// Login verifies the credentials and returns the matching user. All failure
// modes collapse into ErrInvalidCredentials so responses do not reveal
// whether the account exists.
func (s *Auth) Login(ctx context.Context, email, password string) (store.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.User{}, apperr.ErrInvalidCredentials
		}
		return store.User{}, apperr.ErrDatabaseUnavailable
	}
	if !user.PasswordHash.Valid || !user.PasswordSalt.Valid {
		// Account created through another login method.
		return store.User{}, apperr.ErrInvalidCredentials
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash.String, user.PasswordSalt.String)
	if err != nil || !ok {
		return store.User{}, apperr.ErrInvalidCredentials
	}

	if err := s.queries.TouchUserSignIn(ctx, user.ID); err != nil {
		s.logger.Warn("sign-in timestamp update failed", "error", err, "user_id", user.ID,
			"category", model.AuditCategoryAuth)
	}
	return user, nil
}

// SetRole changes the role of the user with the given email. Only admins may
// call it.
func (s *Auth) SetRole(ctx context.Context, email, role string, caller *session.Identity) error {
	if caller == nil || caller.Role != model.RoleAdmin {
		return apperr.ErrForbidden
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return apperr.ErrMissingFields
	}
	if !model.ValidRole(role) {
		return apperr.ErrInvalidFields
	}

	if _, err := s.queries.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return apperr.ErrDatabaseUnavailable
	}
	if err := s.queries.UpdateUserRoleByEmail(ctx, store.UpdateUserRoleByEmailParams{
		Email: email,
		Role:  role,
	}); err != nil {
		return apperr.ErrDatabaseUnavailable
	}

	s.logger.Warn("role changed", "email", email, "role", role, "by", caller.ID,
		"category", model.AuditCategoryAuth)
	return nil
}

// IdentityFor builds the session identity persisted in the cookie.
func IdentityFor(user store.User) session.Identity {
	return session.Identity{
		ID:    user.ID,
		Name:  util.StringFromNull(user.Name),
		Email: util.StringFromNull(user.Email),
		Role:  user.Role,
	}
}
