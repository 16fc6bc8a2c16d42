// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/storage"
	"github.com/iesp-app/igreja-go/internal/store"
)

func testDB(t *testing.T) *store.Queries {
	t.Helper()

	f, err := os.CreateTemp("", "igreja-scheduler-test-*.db")
	require.NoError(t, err)
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})
	return store.New(db)
}

func TestSweepOrphans(t *testing.T) {
	queries := testDB(t)
	fake := storage.NewFake()
	ctx := context.Background()

	upload := func(key string) {
		require.NoError(t, fake.Upload(ctx, key, model.MimeTypeJPEG, strings.NewReader("img")))
	}

	// Referenced object with a row pointing at its public URL
	upload(storage.GalleryPrefix + "kept.jpg")
	now := time.Now()
	_, err := queries.CreateGalleryItem(ctx, store.CreateGalleryItemParams{
		Title:     "Batismo",
		MediaUrl:  fake.PublicURL(storage.GalleryPrefix + "kept.jpg"),
		MediaType: model.MediaTypeImage,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	// Old orphan, eligible for removal
	upload(storage.GalleryPrefix + "orphan.jpg")
	fake.SetModified(storage.GalleryPrefix+"orphan.jpg", now.Add(-2*time.Hour))

	// Fresh orphan, inside the grace window
	upload(storage.GalleryPrefix + "fresh.jpg")

	// Referenced but old: rows can outlive base URL changes, match by key suffix
	upload(storage.GalleryPrefix + "moved.jpg")
	fake.SetModified(storage.GalleryPrefix+"moved.jpg", now.Add(-3*time.Hour))
	_, err = queries.CreateGalleryItem(ctx, store.CreateGalleryItemParams{
		Title:     "Conferência",
		MediaUrl:  "https://old-cdn.example.com/" + storage.GalleryPrefix + "moved.jpg",
		MediaType: model.MediaTypeImage,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	// Make the kept object old too: referenced objects survive regardless of age
	fake.SetModified(storage.GalleryPrefix+"kept.jpg", now.Add(-2*time.Hour))

	s := New(queries, fake, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, s.SweepOrphans(ctx))

	assert.True(t, fake.Has(storage.GalleryPrefix+"kept.jpg"))
	assert.True(t, fake.Has(storage.GalleryPrefix+"fresh.jpg"))
	assert.True(t, fake.Has(storage.GalleryPrefix+"moved.jpg"))
	assert.False(t, fake.Has(storage.GalleryPrefix+"orphan.jpg"))
}

func TestSweepOrphans_EmptyBucket(t *testing.T) {
	s := New(testDB(t), storage.NewFake(), 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, s.SweepOrphans(context.Background()))
}
