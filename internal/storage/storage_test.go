// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionForMIME(t *testing.T) {
	assert.Equal(t, ".jpg", ExtensionForMIME("image/jpeg"))
	assert.Equal(t, ".mp4", ExtensionForMIME("video/mp4"))
	assert.Empty(t, ExtensionForMIME("application/pdf"))
}

func TestMIMEForKey(t *testing.T) {
	assert.Equal(t, "image/jpeg", MIMEForKey("gallery/a.JPG"))
	assert.Equal(t, "image/jpeg", MIMEForKey("gallery/a.jpeg"))
	assert.Equal(t, "video/webm", MIMEForKey("gallery/clip.webm"))
	assert.Empty(t, MIMEForKey("gallery/readme.txt"))
}

func TestTitleForKey(t *testing.T) {
	assert.Equal(t, "batismo-2026", TitleForKey("gallery/batismo-2026.jpg"))
	assert.Equal(t, "clip", TitleForKey("clip.mp4"))
}

func TestFakeStore_RoundTrip(t *testing.T) {
	f := NewFake()
	ctx := context.Background()

	require.NoError(t, f.Upload(ctx, "gallery/a.jpg", "image/jpeg", strings.NewReader("aaa")))
	require.NoError(t, f.Upload(ctx, "gallery/b.png", "image/png", strings.NewReader("bb")))
	require.NoError(t, f.Upload(ctx, "other/c.jpg", "image/jpeg", strings.NewReader("c")))

	objects, err := f.List(ctx, GalleryPrefix)
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "gallery/a.jpg", objects[0].Key)
	assert.Equal(t, int64(3), objects[0].Size)

	require.NoError(t, f.Delete(ctx, "gallery/a.jpg"))
	assert.False(t, f.Has("gallery/a.jpg"))

	require.NoError(t, f.Delete(ctx, "gallery/missing.jpg"))
}

func TestS3Store_PublicURL(t *testing.T) {
	s := &S3Store{opts: S3Options{
		Endpoint: "https://minio.local:9000",
		Bucket:   "gallery",
	}}
	assert.Equal(t, "https://minio.local:9000/gallery/gallery/a.jpg",
		s.PublicURL("gallery/a.jpg"))

	s.opts.PublicBaseURL = "https://cdn.igreja.com/"
	assert.Equal(t, "https://cdn.igreja.com/gallery/a.jpg", s.PublicURL("gallery/a.jpg"))
}
