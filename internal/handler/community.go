// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/middleware"
	"github.com/iesp-app/igreja-go/internal/store"
)

// handleHymns handles GET /api/hymns?limit=&offset=&q=.
func (h *Handler) handleHymns(w http.ResponseWriter, r *http.Request) {
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		items, err := h.queries.SearchHymns(r.Context(), q)
		if err != nil {
			writeServiceError(w, apperr.ErrDatabaseUnavailable)
			return
		}
		writeJSONSuccess(w, map[string]any{"result": hymnDocs(items)})
		return
	}

	limit := queryInt64(r, "limit")
	if limit <= 0 {
		limit = 50
	}
	items, err := h.queries.ListHymns(r.Context(), store.ListParams{
		Limit:  limit,
		Offset: queryInt64(r, "offset"),
	})
	if err != nil {
		writeServiceError(w, apperr.ErrDatabaseUnavailable)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": hymnDocs(items)})
}

// handleHymn handles GET /api/hymns/{id}.
func (h *Handler) handleHymn(w http.ResponseWriter, r *http.Request) {
	hymn, err := h.queries.GetHymnByID(r.Context(), pathID(r))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeServiceError(w, apperr.ErrNotFound)
			return
		}
		writeServiceError(w, apperr.ErrDatabaseUnavailable)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": hymnDoc(hymn)})
}

// handleSchedules handles GET /api/schedules.
func (h *Handler) handleSchedules(w http.ResponseWriter, r *http.Request) {
	items, err := h.community.Schedules(r.Context())
	if err != nil {
		writeServiceError(w, apperr.ErrDatabaseUnavailable)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": scheduleDocs(items)})
}

type scheduleRequest struct {
	DayOfWeek   string `json:"dayOfWeek"`
	ServiceName string `json:"serviceName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
}

// handleScheduleCreate handles POST /api/schedules.
func (h *Handler) handleScheduleCreate(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	item, err := h.community.AddSchedule(r.Context(), middleware.GetIdentity(r),
		req.DayOfWeek, req.ServiceName, req.StartTime, req.EndTime, req.Location)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": scheduleDoc(item)})
}

// handleCampaigns handles GET /api/campaigns.
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := h.donations.Campaigns(r.Context(), queryInt64(r, "limit"), queryInt64(r, "offset"))
	if err != nil {
		writeServiceError(w, apperr.ErrDatabaseUnavailable)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": campaignDocs(items)})
}

// handleCampaign handles GET /api/campaigns/{id}.
func (h *Handler) handleCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.donations.Campaign(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": campaignDoc(campaign)})
}

type donateRequest struct {
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
}

// handleDonate handles POST /api/campaigns/{id}/donate. Donations are open
// to anonymous visitors; signed-in donors get attributed.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	var userID *int64
	if id := middleware.GetIdentity(r); id != nil {
		userID = &id.ID
	}

	donation, err := h.donations.Donate(r.Context(), pathID(r), req.Amount, req.PaymentMethod, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": donationDoc(donation)})
}

type favoriteRequest struct {
	ContentType string `json:"contentType"`
	ContentID   int64  `json:"contentId"`
}

// handleFavoriteList handles GET /api/favorites?type=.
func (h *Handler) handleFavoriteList(w http.ResponseWriter, r *http.Request) {
	items, err := h.favorites.List(r.Context(), middleware.GetIdentity(r), r.URL.Query().Get("type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": favoriteDocs(items)})
}

// handleFavoriteAdd handles POST /api/favorites.
func (h *Handler) handleFavoriteAdd(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	if err := h.favorites.Add(r.Context(), middleware.GetIdentity(r), req.ContentType, req.ContentID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, nil)
}

// handleFavoriteRemove handles DELETE /api/favorites?type=&id=.
func (h *Handler) handleFavoriteRemove(w http.ResponseWriter, r *http.Request) {
	err := h.favorites.Remove(r.Context(), middleware.GetIdentity(r),
		r.URL.Query().Get("type"), queryInt64(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, nil)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// handleContactSubmit handles POST /api/contact.
func (h *Handler) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	sub, err := h.community.SubmitContact(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": contactDoc(sub)})
}

// handleContactList handles GET /api/admin/contact.
func (h *Handler) handleContactList(w http.ResponseWriter, r *http.Request) {
	items, err := h.community.ContactSubmissions(r.Context(), middleware.GetIdentity(r),
		queryInt64(r, "limit"), queryInt64(r, "offset"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"result": contactDocs(items)})
}
