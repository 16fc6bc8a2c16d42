// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/iesp-app/igreja-go/internal/content"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/storage"
)

// handleGallery handles GET /api/gallery. Rows come from the database; when
// none exist but a bucket is configured, items are synthesized from the
// objects themselves so pre-existing media still shows up.
func (h *Handler) handleGallery(w http.ResponseWriter, r *http.Request) {
	result, err := h.content.List(r.Context(), model.TypeGallery,
		queryInt64(r, "limit"), queryInt64(r, "offset"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if isEmptyList(result) && h.objects != nil {
		items, err := h.galleryFromBucket(r)
		if err != nil {
			h.logger.Warn("gallery bucket fallback failed", "error", err,
				"category", model.AuditCategoryStorage)
		} else if len(items) > 0 {
			writeJSONSuccess(w, map[string]any{"result": items})
			return
		}
	}
	writeJSONSuccess(w, map[string]any{"result": result})
}

// galleryFromBucket synthesizes gallery docs from bucket objects: ordinal
// ids, titles from file names, media types from extensions.
func (h *Handler) galleryFromBucket(r *http.Request) ([]content.GalleryDoc, error) {
	objects, err := h.objects.List(r.Context(), storage.GalleryPrefix)
	if err != nil {
		return nil, err
	}

	items := make([]content.GalleryDoc, 0, len(objects))
	for _, obj := range objects {
		mime := storage.MIMEForKey(obj.Key)
		if mime == "" {
			continue
		}
		mediaType := model.MediaTypeImage
		if strings.HasPrefix(mime, "video/") {
			mediaType = model.MediaTypeVideo
		}
		items = append(items, content.GalleryDoc{
			ID:        int64(len(items) + 1),
			Title:     storage.TitleForKey(obj.Key),
			MediaUrl:  h.objects.PublicURL(obj.Key),
			MediaType: mediaType,
			CreatedAt: obj.LastModified,
			UpdatedAt: obj.LastModified,
		})
	}
	return items, nil
}

// isEmptyList reports whether a dispatcher list result carries no items.
// Cache hits decode as []any, direct reads as typed slices.
func isEmptyList(result any) bool {
	switch v := result.(type) {
	case nil:
		return true
	case []content.GalleryDoc:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}
