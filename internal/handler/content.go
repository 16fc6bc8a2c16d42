// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/imaging"
	"github.com/iesp-app/igreja-go/internal/middleware"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/storage"
)

// acceptedUploadMIMEs are the media types gallery uploads may carry.
var acceptedUploadMIMEs = map[string]bool{
	model.MimeTypeJPEG: true,
	model.MimeTypePNG:  true,
	model.MimeTypeGIF:  true,
	model.MimeTypeWebP: true,
	model.MimeTypeMP4:  true,
	model.MimeTypeWebM: true,
}

// contentEnvelope is the JSON body shape shared by the dispatcher
// endpoints: a type tag, an id and the per-type payload under data.
// Clients that send per-type fields at the top level are also accepted.
type contentEnvelope struct {
	Type string          `json:"type"`
	ID   int64           `json:"id"`
	Data json.RawMessage `json:"data"`
}

// payload returns the per-type fields: the nested data object when present,
// otherwise the whole body.
func (e contentEnvelope) payload(raw json.RawMessage) json.RawMessage {
	if len(e.Data) > 0 && string(e.Data) != "null" {
		return e.Data
	}
	return raw
}

// handleContentList handles GET /api/content and GET /api/admin/content.
func (h *Handler) handleContentList(w http.ResponseWriter, r *http.Request) {
	typ := r.URL.Query().Get("type")
	result, err := h.content.List(r.Context(), typ, queryInt64(r, "limit"), queryInt64(r, "offset"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": result})
}

// handleContentGet handles GET /api/content/{id}.
func (h *Handler) handleContentGet(w http.ResponseWriter, r *http.Request) {
	typ := r.URL.Query().Get("type")
	item, err := h.content.GetByID(r.Context(), typ, pathID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": item})
}

// handleContentCreate handles POST /api/admin/content. Gallery rows may
// arrive as multipart with a file; everything else is JSON.
func (h *Handler) handleContentCreate(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		h.handleGalleryUpload(w, r)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	var env contentEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	typ := env.Type
	if typ == "" {
		typ = r.URL.Query().Get("type")
	}

	item, err := h.content.Create(r.Context(), typ, env.payload(raw), middleware.GetIdentity(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": item})
}

// handleContentUpdate handles PATCH /api/admin/content. The body carries the
// type, id and the fields to change.
func (h *Handler) handleContentUpdate(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	var env contentEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	if env.Type == "" {
		env.Type = r.URL.Query().Get("type")
	}
	if env.ID == 0 {
		env.ID = queryInt64(r, "id")
	}

	item, err := h.content.Update(r.Context(), env.Type, env.ID, env.payload(raw), middleware.GetIdentity(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": item})
}

// handleContentDelete handles DELETE /api/admin/content. The body carries
// {type,id}; query parameters are accepted as a fallback.
func (h *Handler) handleContentDelete(w http.ResponseWriter, r *http.Request) {
	var env contentEnvelope
	if raw, err := io.ReadAll(r.Body); err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	if env.Type == "" {
		env.Type = r.URL.Query().Get("type")
	}
	if env.ID == 0 {
		env.ID = queryInt64(r, "id")
	}
	if err := h.content.Delete(r.Context(), env.Type, env.ID, middleware.GetIdentity(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, nil)
}

// handleGalleryUpload processes a multipart gallery create: validate the
// file, normalize images, store the object, then insert the row. A failed
// insert removes the just-uploaded object so the bucket holds no orphans.
func (h *Handler) handleGalleryUpload(w http.ResponseWriter, r *http.Request) {
	if h.objects == nil {
		writeServiceError(w, apperr.ErrStorageUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		writeServiceError(w, apperr.ErrFileTooLarge)
		return
	}

	payload := map[string]any{
		"title":       r.FormValue("title"),
		"description": r.FormValue("description"),
		"mediaType":   r.FormValue("mediaType"),
	}
	if v := r.FormValue("mediaUrl"); v != "" {
		payload["mediaUrl"] = v
	}
	if eventID := r.FormValue("eventId"); eventID != "" {
		payload["eventId"] = json.Number(eventID)
	}

	var uploadedKey string
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeServiceError(w, apperr.ErrFileTooLarge)
			return
		}

		mime := imaging.DetectMimeType(data)
		if !acceptedUploadMIMEs[mime] {
			// Browsers sniff video container types better than we do.
			mime = header.Header.Get("Content-Type")
		}
		if !acceptedUploadMIMEs[mime] {
			writeServiceError(w, apperr.ErrUnsupportedMedia)
			return
		}

		if imaging.IsImage(mime) {
			processed, err := imaging.Process(data)
			if err != nil {
				writeServiceError(w, apperr.ErrUnsupportedMedia)
				return
			}
			data = processed.Data
			mime = processed.MimeType
		}

		key := storage.GalleryPrefix + uuid.NewString() + storage.ExtensionForMIME(mime)
		if err := h.objects.Upload(r.Context(), key, mime, bytes.NewReader(data)); err != nil {
			h.logger.Error("gallery upload failed", "error", err, "category", model.AuditCategoryStorage)
			writeServiceError(w, apperr.ErrStorageUnavailable)
			return
		}
		uploadedKey = key

		payload["mediaUrl"] = h.objects.PublicURL(key)
		if strings.HasPrefix(mime, "video/") {
			payload["mediaType"] = model.MediaTypeVideo
		} else {
			payload["mediaType"] = model.MediaTypeImage
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	item, err := h.content.Create(r.Context(), model.TypeGallery, raw, middleware.GetIdentity(r))
	if err != nil {
		if uploadedKey != "" {
			// The row never landed; drop the object instead of waiting for
			// the orphan sweep.
			if delErr := h.objects.Delete(context.WithoutCancel(r.Context()), uploadedKey); delErr != nil {
				h.logger.Warn("orphan cleanup failed", "key", uploadedKey, "error", delErr,
					"category", model.AuditCategoryStorage)
			}
		}
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": item})
}
