// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs background maintenance jobs: the hourly sweep that
// removes bucket objects no gallery row references anymore.
package scheduler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/storage"
	"github.com/iesp-app/igreja-go/internal/store"
)

// DefaultOrphanGrace is how long an object may sit unreferenced before the
// sweep removes it. Uploads insert their row right after the object lands,
// so one hour leaves ample room for in-flight requests.
const DefaultOrphanGrace = time.Hour

// Scheduler owns the cron instance and the jobs it runs.
type Scheduler struct {
	queries *store.Queries
	objects storage.ObjectStore
	logger  *slog.Logger
	grace   time.Duration
	cron    *cron.Cron

	now func() time.Time
}

// New returns a Scheduler ready to Start. objects may be nil when no object
// store is configured; the sweep then never runs. A non-positive grace falls
// back to DefaultOrphanGrace.
func New(queries *store.Queries, objects storage.ObjectStore, grace time.Duration, logger *slog.Logger) *Scheduler {
	if grace <= 0 {
		grace = DefaultOrphanGrace
	}
	return &Scheduler{
		queries: queries,
		objects: objects,
		logger:  logger,
		grace:   grace,
		now:     time.Now,
	}
}

// addJob registers a cron job with timeout and error logging.
func (s *Scheduler) addJob(schedule string, timeout time.Duration, jobFunc func(context.Context) error, errMsg string) {
	_, _ = s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := jobFunc(ctx); err != nil {
			s.logger.Error(errMsg, "error", err, "category", model.AuditCategoryStorage)
		}
	})
}

// Start begins running the background jobs.
func (s *Scheduler) Start() {
	s.cron = cron.New()

	if s.objects != nil {
		// Every hour at minute 10: delete unreferenced gallery objects
		s.addJob("10 * * * *", 5*time.Minute, s.SweepOrphans, "orphan sweep failed")
	}

	s.cron.Start()
	s.logger.Debug("scheduler started")
}

// Stop stops the cron scheduler. Running jobs finish on their own.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SweepOrphans deletes gallery bucket objects older than the grace window
// that no gallery row references.
func (s *Scheduler) SweepOrphans(ctx context.Context) error {
	objects, err := s.objects.List(ctx, storage.GalleryPrefix)
	if err != nil {
		return err
	}
	if len(objects) == 0 {
		return nil
	}

	urls, err := s.queries.ListGalleryMediaUrls(ctx)
	if err != nil {
		return err
	}
	referenced := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		referenced[u] = struct{}{}
	}

	cutoff := s.now().Add(-s.grace)
	var removed int
	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}
		if s.isReferenced(obj.Key, referenced) {
			continue
		}
		if err := s.objects.Delete(ctx, obj.Key); err != nil {
			s.logger.Warn("orphan delete failed", "key", obj.Key, "error", err,
				"category", model.AuditCategoryStorage)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("orphan sweep removed objects", "count", removed,
			"category", model.AuditCategoryStorage)
	}
	return nil
}

// isReferenced reports whether any gallery row points at the object. Rows
// store the full public URL, so match both the exact URL and a key suffix to
// stay correct when the public base URL changes.
func (s *Scheduler) isReferenced(key string, referenced map[string]struct{}) bool {
	if _, ok := referenced[s.objects.PublicURL(key)]; ok {
		return true
	}
	for u := range referenced {
		if strings.HasSuffix(u, "/"+key) {
			return true
		}
	}
	return false
}
