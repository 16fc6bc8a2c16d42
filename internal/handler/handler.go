// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iesp-app/igreja-go/internal/content"
	"github.com/iesp-app/igreja-go/internal/middleware"
	"github.com/iesp-app/igreja-go/internal/service"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/storage"
	"github.com/iesp-app/igreja-go/internal/store"
)

// MaxUploadSize bounds gallery file uploads.
const MaxUploadSize = 20 << 20 // 20MB

// Handler carries the services behind the HTTP API.
type Handler struct {
	db         *sql.DB
	queries    *store.Queries
	codec      *session.Codec
	auth       *service.Auth
	donations  *service.Donation
	favorites  *service.Favorite
	community  *service.Community
	content    *content.Service
	objects    storage.ObjectStore
	protection *middleware.LoginProtection
	logger     *slog.Logger
}

// Options collects the Handler's collaborators.
type Options struct {
	DB         *sql.DB
	Queries    *store.Queries
	Codec      *session.Codec
	Auth       *service.Auth
	Donations  *service.Donation
	Favorites  *service.Favorite
	Community  *service.Community
	Content    *content.Service
	Objects    storage.ObjectStore // nil when storage is not configured
	Protection *middleware.LoginProtection
	Logger     *slog.Logger
}

// New returns a Handler ready for Routes.
func New(opts Options) *Handler {
	return &Handler{
		db:         opts.DB,
		queries:    opts.Queries,
		codec:      opts.Codec,
		auth:       opts.Auth,
		donations:  opts.Donations,
		favorites:  opts.Favorites,
		community:  opts.Community,
		content:    opts.Content,
		objects:    opts.Objects,
		protection: opts.Protection,
		logger:     opts.Logger,
	}
}

// Routes builds the API route table. CORS and session middleware are
// attached by the caller around the returned router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.Post("/logout", h.handleLogout)
			r.Get("/me", h.handleMe)
		})

		r.Route("/admin", func(r chi.Router) {
			// Reads are public; the client screens share them.
			r.Get("/content", h.handleContentList)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/content", h.handleContentCreate)
				r.Patch("/content", h.handleContentUpdate)
				r.Delete("/content", h.handleContentDelete)
				r.Post("/set-role", h.handleSetRole)
				r.Get("/contact", h.handleContactList)
			})
		})

		r.Get("/content", h.handleContentList)
		r.Get("/content/{id}", h.handleContentGet)
		r.Get("/gallery", h.handleGallery)

		r.Get("/hymns", h.handleHymns)
		r.Get("/hymns/{id}", h.handleHymn)

		r.Get("/schedules", h.handleSchedules)
		r.With(middleware.RequireAdmin).Post("/schedules", h.handleScheduleCreate)

		r.Get("/campaigns", h.handleCampaigns)
		r.Get("/campaigns/{id}", h.handleCampaign)
		r.Post("/campaigns/{id}/donate", h.handleDonate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/favorites", h.handleFavoriteList)
			r.Post("/favorites", h.handleFavoriteAdd)
			r.Delete("/favorites", h.handleFavoriteRemove)
		})

		r.Post("/contact", h.handleContactSubmit)
	})

	return r
}

// handleHealth reports liveness and database reachability.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "database_unavailable")
		return
	}
	writeJSONSuccess(w, map[string]any{"status": "ok"})
}

// queryInt64 parses a query parameter as int64, with 0 for absent/invalid.
func queryInt64(r *http.Request, name string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
