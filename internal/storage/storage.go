// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage wraps the S3-compatible object store holding gallery
// media. MinIO and the hosted S3 clones all speak this API; the endpoint and
// credentials come from config.
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"
)

// Object describes one stored object.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStore is the contract the gallery and the orphan sweep depend on.
type ObjectStore interface {
	// Upload stores body under key with the given content type.
	Upload(ctx context.Context, key, contentType string, body io.Reader) error

	// List returns objects whose keys start with prefix.
	List(ctx context.Context, prefix string) ([]Object, error)

	// Delete removes an object. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL returns the browser-reachable URL for a key.
	PublicURL(key string) string
}

// GalleryPrefix is the key prefix for gallery uploads.
const GalleryPrefix = "gallery/"

// ExtensionForMIME maps an accepted upload MIME type to a file extension.
func ExtensionForMIME(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	}
	return ""
}

// MIMEForKey guesses a media MIME type from a stored key's extension.
// Returns "" for unrecognized extensions.
func MIMEForKey(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	}
	return ""
}

// TitleForKey derives a display title from a stored key: the file name
// without directory or extension.
func TitleForKey(key string) string {
	base := path.Base(key)
	return strings.TrimSuffix(base, path.Ext(base))
}
