// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/iesp-app/igreja-go/internal/auth"
	"github.com/iesp-app/igreja-go/internal/model"
)

// DefaultAdminEmail is the bootstrap administrator account created on first
// start when no admin exists yet.
const DefaultAdminEmail = "admin@igreja.local"

// EnsureAdmin creates the bootstrap admin account if the database has no
// admin user. Returns the generated password when a new account was created
// so it can be printed once at startup.
func (q *Queries) EnsureAdmin(ctx context.Context) (string, error) {
	n, err := q.CountUsersByRole(ctx, model.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("counting admins: %w", err)
	}
	if n > 0 {
		return "", nil
	}

	password, err := auth.NewSalt()
	if err != nil {
		return "", err
	}
	salt, err := auth.NewSalt()
	if err != nil {
		return "", err
	}
	hash, err := auth.HashPassword(password, salt)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	_, err = q.CreateUser(ctx, CreateUserParams{
		Name:         sql.NullString{String: "Administrador", Valid: true},
		Email:        sql.NullString{String: DefaultAdminEmail, Valid: true},
		PasswordHash: sql.NullString{String: hash, Valid: true},
		PasswordSalt: sql.NullString{String: salt, Valid: true},
		LoginMethod:  sql.NullString{String: model.LoginMethodEmail, Valid: true},
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	})
	if err != nil {
		return "", fmt.Errorf("creating admin: %w", err)
	}
	return password, nil
}

// SeedContent inserts a small set of sample rows for development databases.
// It is idempotent: nothing is inserted when any article already exists.
func (q *Queries) SeedContent(ctx context.Context, logger *slog.Logger) error {
	existing, err := q.ListArticles(ctx, ListParams{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()

	if _, err := q.CreateArticle(ctx, CreateArticleParams{
		Title:       "Bem-vindo",
		Slug:        "bem-vindo",
		Description: sql.NullString{String: "Primeiro artigo da comunidade.", Valid: true},
		Content:     "<p>Seja bem-vindo ao portal da nossa igreja.</p>",
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return fmt.Errorf("seeding article: %w", err)
	}

	if _, err := q.CreateDailyWord(ctx, CreateDailyWordParams{
		Date:      now.Format("2006-01-02"),
		Title:     "Palavra do Dia",
		Content:   "O Senhor é o meu pastor; nada me faltará.",
		Reference: sql.NullString{String: "Salmos 23:1", Valid: true},
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("seeding daily word: %w", err)
	}

	if _, err := q.CreateServiceSchedule(ctx, CreateServiceScheduleParams{
		DayOfWeek:   "Sunday",
		ServiceName: "Culto de Celebração",
		StartTime:   "18:00",
		EndTime:     sql.NullString{String: "20:00", Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return fmt.Errorf("seeding schedule: %w", err)
	}

	logger.Info("seeded development content")
	return nil
}
