// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/store"
	"github.com/iesp-app/igreja-go/internal/util"
)

// Community covers the contact form and the weekly service schedule.
type Community struct {
	queries *store.Queries
	logger  *slog.Logger
}

// NewCommunity returns a Community service backed by queries.
func NewCommunity(queries *store.Queries, logger *slog.Logger) *Community {
	return &Community{queries: queries, logger: logger}
}

// SubmitContact stores a contact form submission with status pending.
func (s *Community) SubmitContact(ctx context.Context, name, email, subject, message string) (store.ContactSubmission, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return store.ContactSubmission{}, apperr.ErrMissingFields
	}
	if !emailRegex.MatchString(email) {
		return store.ContactSubmission{}, apperr.ErrInvalidFields
	}

	now := time.Now()
	sub, err := s.queries.CreateContactSubmission(ctx, store.CreateContactSubmissionParams{
		Name:      name,
		Email:     email,
		Subject:   util.NullStringFromValue(subject),
		Message:   message,
		Status:    model.ContactPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return store.ContactSubmission{}, apperr.ErrDatabaseUnavailable
	}
	s.logger.Info("contact submission received", "from", email)
	return sub, nil
}

// ContactSubmissions lists submissions for admins, newest first.
func (s *Community) ContactSubmissions(ctx context.Context, caller *session.Identity, limit, offset int64) ([]store.ContactSubmission, error) {
	if caller == nil || caller.Role != model.RoleAdmin {
		return nil, apperr.ErrForbidden
	}
	if limit <= 0 {
		limit = 50
	}
	return s.queries.ListContactSubmissions(ctx, store.ListParams{Limit: limit, Offset: offset})
}

// MarkContactStatus updates a submission's handling status.
func (s *Community) MarkContactStatus(ctx context.Context, caller *session.Identity, id int64, status string) error {
	if caller == nil || caller.Role != model.RoleAdmin {
		return apperr.ErrForbidden
	}
	switch status {
	case model.ContactPending, model.ContactRead, model.ContactResponded:
	default:
		return apperr.ErrInvalidFields
	}
	return s.queries.UpdateContactSubmissionStatus(ctx, id, status, time.Now())
}

// Schedules lists the weekly service schedule in week order.
func (s *Community) Schedules(ctx context.Context) ([]store.ServiceSchedule, error) {
	return s.queries.ListServiceSchedules(ctx)
}

// AddSchedule creates a service schedule entry. Admin only.
func (s *Community) AddSchedule(ctx context.Context, caller *session.Identity, dayOfWeek, serviceName, startTime, endTime, location string) (store.ServiceSchedule, error) {
	if caller == nil || caller.Role != model.RoleAdmin {
		return store.ServiceSchedule{}, apperr.ErrForbidden
	}
	dayOfWeek = strings.TrimSpace(dayOfWeek)
	serviceName = strings.TrimSpace(serviceName)
	startTime = strings.TrimSpace(startTime)
	if dayOfWeek == "" || serviceName == "" || startTime == "" {
		return store.ServiceSchedule{}, apperr.ErrMissingFields
	}
	if !model.ValidDayOfWeek(dayOfWeek) {
		return store.ServiceSchedule{}, apperr.ErrInvalidFields
	}

	now := time.Now()
	return s.queries.CreateServiceSchedule(ctx, store.CreateServiceScheduleParams{
		DayOfWeek:   dayOfWeek,
		ServiceName: serviceName,
		StartTime:   startTime,
		EndTime:     util.NullStringFromValue(strings.TrimSpace(endTime)),
		Location:    util.NullStringFromValue(strings.TrimSpace(location)),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}
