// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesp-app/igreja-go/internal/cache"
	"github.com/iesp-app/igreja-go/internal/content"
	"github.com/iesp-app/igreja-go/internal/middleware"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/service"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/storage"
	"github.com/iesp-app/igreja-go/internal/store"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testServer struct {
	handler http.Handler
	codec   *session.Codec
	queries *store.Queries
	objects *storage.FakeStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	f, err := os.CreateTemp("", "igreja-handler-test-*.db")
	require.NoError(t, err)
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	c := cache.NewMemory(cache.Options{DefaultTTL: time.Minute})
	t.Cleanup(func() {
		_ = c.Close()
		_ = db.Close()
		_ = os.Remove(dbPath)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	queries := store.New(db)

	// Bootstrap admin takes id 1 on a fresh database, backing adminID.
	_, err = queries.EnsureAdmin(context.Background())
	require.NoError(t, err)

	codec := session.NewCodec(testSecret)
	fake := storage.NewFake()

	h := New(Options{
		DB:        db,
		Queries:   queries,
		Codec:     codec,
		Auth:      service.NewAuth(queries, logger),
		Donations: service.NewDonation(queries, logger),
		Favorites: service.NewFavorite(queries),
		Community: service.NewCommunity(queries, logger),
		Content:   content.NewService(queries, c, time.Minute, logger),
		Objects:   fake,
		Logger:    logger,
	})

	return &testServer{
		handler: middleware.Session(codec)(h.Routes()),
		codec:   codec,
		queries: queries,
		objects: fake,
	}
}

// do performs a request with an optional JSON body and identity cookie.
func (ts *testServer) do(t *testing.T, method, target string, body any, id *session.Identity) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id != nil {
		value, err := ts.codec.Encode(*id)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// registerUser creates an account through the API and returns its identity.
func (ts *testServer) registerUser(t *testing.T, name, email string) *session.Identity {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name": name, "email": email, "password": "segredo1",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	user, err := ts.queries.GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	return &session.Identity{ID: user.ID, Name: name, Email: email, Role: user.Role}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

var adminID = &session.Identity{ID: 1, Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Maria", "email": "maria@example.com", "password": "segredo1",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Duplicate registration conflicts
	rec = ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Maria", "email": "maria@example.com", "password": "segredo1",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email_in_use", decode(t, rec)["error"])

	rec = ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "maria@example.com", "password": "segredo1",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	logged := decode(t, rec)["user"].(map[string]any)
	assert.Equal(t, "maria@example.com", logged["email"])
	assert.NotContains(t, logged, "role", "login returns only id, name and email")
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, session.CookieName, cookies[0].Name)

	// Cookie round-trips through /me
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec2, req)
	body := decode(t, rec2)
	user := body["user"].(map[string]any)
	assert.Equal(t, "maria@example.com", user["email"])

	rec = ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "maria@example.com", "password": "errada99",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_Anonymous(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec)["user"])
}

func TestContentCreate_RequiresAdmin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/admin/content", map[string]any{
		"type": "article", "title": "x", "content": "y",
	}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	user := &session.Identity{ID: 2, Role: model.RoleUser}
	rec = ts.do(t, http.MethodPost, "/api/admin/content", map[string]any{
		"type": "article", "title": "x", "content": "y",
	}, user)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestContentLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/admin/content", map[string]any{
		"type": "article", "title": "Primeiro Artigo", "content": "<p>corpo</p>",
	}, adminID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode(t, rec)["result"].(map[string]any)
	id := int64(created["id"].(float64))
	assert.Equal(t, "primeiro-artigo", created["slug"])

	// Public read, no cookie
	rec = ts.do(t, http.MethodGet, "/api/content?type=article", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["result"].([]any), 1)

	rec = ts.do(t, http.MethodPatch, "/api/admin/content", map[string]any{
		"type": "article", "id": id, "title": "Artigo Revisado",
	}, adminID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Artigo Revisado", decode(t, rec)["result"].(map[string]any)["title"])

	rec = ts.do(t, http.MethodDelete, "/api/admin/content?type=article&id=1", nil, adminID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/content/1?type=article", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContentLifecycle_NestedData(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/admin/content", map[string]any{
		"type": "article",
		"data": map[string]any{"title": "Primeiro", "content": "<p>corpo</p>"},
	}, adminID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode(t, rec)["result"].(map[string]any)
	id := int64(created["id"].(float64))
	assert.Equal(t, "primeiro", created["slug"])

	rec = ts.do(t, http.MethodPatch, "/api/admin/content", map[string]any{
		"type": "article", "id": id,
		"data": map[string]any{"title": "Revisado"},
	}, adminID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode(t, rec)["result"].(map[string]any)
	assert.Equal(t, "Revisado", updated["title"])
	assert.Equal(t, "<p>corpo</p>", updated["content"], "fields outside data are untouched")

	// DELETE carries {type,id} in the body
	rec = ts.do(t, http.MethodDelete, "/api/admin/content", map[string]any{
		"type": "article", "id": id,
	}, adminID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/content?type=article", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["result"])
}

func TestContentList_UnknownType(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/content?type=bogus", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_type", decode(t, rec)["error"])
}

func makePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileData != nil {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (ts *testServer) doMultipart(t *testing.T, target string, body *bytes.Buffer, contentType string, id *session.Identity) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	if id != nil {
		value, err := ts.codec.Encode(*id)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestGalleryUpload(t *testing.T) {
	ts := newTestServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"type": "gallery", "title": "Batismo no Rio",
	}, "file", "batismo.png", makePNG(t))

	rec := ts.doMultipart(t, "/api/admin/content", body, contentType, adminID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decode(t, rec)["result"].(map[string]any)
	mediaURL := result["mediaUrl"].(string)
	assert.Contains(t, mediaURL, storage.GalleryPrefix)
	assert.Equal(t, model.MediaTypeImage, result["mediaType"])

	// The object landed under the gallery prefix
	objects, err := ts.objects.List(context.Background(), storage.GalleryPrefix)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.True(t, strings.HasSuffix(mediaURL, objects[0].Key))
}

func TestGalleryUpload_FailedInsertRemovesObject(t *testing.T) {
	ts := newTestServer(t)

	// Missing title fails validation after the upload
	body, contentType := multipartBody(t, map[string]string{
		"type": "gallery",
	}, "file", "x.png", makePNG(t))

	rec := ts.doMultipart(t, "/api/admin/content", body, contentType, adminID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_title", decode(t, rec)["error"])

	objects, err := ts.objects.List(context.Background(), storage.GalleryPrefix)
	require.NoError(t, err)
	assert.Empty(t, objects, "compensating delete must remove the uploaded object")
}

func TestGalleryUpload_RejectsUnknownFileType(t *testing.T) {
	ts := newTestServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"type": "gallery", "title": "x",
	}, "file", "notes.txt", []byte("plain text, not media"))

	rec := ts.doMultipart(t, "/api/admin/content", body, contentType, adminID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unsupported_media_type", decode(t, rec)["error"])
}

func TestGallery_BucketFallback(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, ts.objects.Upload(ctx, storage.GalleryPrefix+"culto-2026.jpg",
		model.MimeTypeJPEG, strings.NewReader("jpg")))

	rec := ts.do(t, http.MethodGet, "/api/gallery", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode(t, rec)["result"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "culto-2026", item["title"])
	assert.Equal(t, model.MediaTypeImage, item["mediaType"])
	assert.Equal(t, float64(1), item["id"])
}

func TestDonate(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	now := time.Now()
	campaign, err := ts.queries.CreateCampaign(ctx, store.CreateCampaignParams{
		Title:          "Missões",
		Goal:           sql.NullInt64{Int64: 100000, Valid: true},
		PaymentMethods: `["pix","credit_card"]`,
		Status:         model.CampaignActive,
		StartDate:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	require.NoError(t, err)

	rec := ts.do(t, http.MethodPost, "/api/campaigns/999/donate", map[string]any{
		"amount": 1000, "paymentMethod": "pix",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_campaign", decode(t, rec)["error"])

	rec = ts.do(t, http.MethodPost, "/api/campaigns/1/donate", map[string]any{
		"amount": 1000, "paymentMethod": "pix",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decode(t, rec)["result"].(map[string]any)
	assert.Equal(t, model.DonationPending, result["status"])
	assert.Equal(t, float64(campaign.ID), result["campaignId"])
}

func TestFavorites_RequireAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/favorites", nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	user := ts.registerUser(t, "João", "joao@example.com")
	rec = ts.do(t, http.MethodPost, "/api/favorites", map[string]any{
		"contentType": "hymn", "contentId": 12,
	}, user)
	require.Equal(t, http.StatusOK, rec.Code)

	// A signed cookie for a deleted account cannot write
	stale := &session.Identity{ID: 12345, Role: model.RoleUser}
	rec = ts.do(t, http.MethodPost, "/api/favorites", map[string]any{
		"contentType": "hymn", "contentId": 12,
	}, stale)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/favorites", nil, user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["result"].([]any), 1)

	rec = ts.do(t, http.MethodDelete, "/api/favorites?type=hymn&id=12", nil, user)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/favorites", nil, user)
	assert.Empty(t, decode(t, rec)["result"])
}

func TestContact(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name": "Maria", "email": "maria@example.com", "message": "Olá!",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Listing is admin only
	rec = ts.do(t, http.MethodGet, "/api/admin/contact", nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/admin/contact", nil, adminID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["result"].([]any), 1)
}

func TestSetRole(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Maria", "email": "maria@example.com", "password": "segredo1",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/admin/set-role", map[string]string{
		"email": "maria@example.com", "role": "admin",
	}, adminID)
	require.Equal(t, http.StatusOK, rec.Code)

	user, err := ts.queries.GetUserByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestHymns(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	now := time.Now()
	for i, title := range []string{"Castelo Forte", "Grandioso És Tu"} {
		_, err := ts.queries.CreateHymn(ctx, store.CreateHymnParams{
			Number:    int64(i + 1),
			Title:     title,
			Lyrics:    "letra",
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
	}

	rec := ts.do(t, http.MethodGet, "/api/hymns", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["result"].([]any), 2)

	rec = ts.do(t, http.MethodGet, "/api/hymns?q=castelo", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["result"].([]any), 1)

	rec = ts.do(t, http.MethodGet, "/api/hymns/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSchedules(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/schedules", map[string]string{
		"dayOfWeek": "Sunday", "serviceName": "Culto", "startTime": "19:00",
	}, adminID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodPost, "/api/schedules", map[string]string{
		"dayOfWeek": "Sunday", "serviceName": "Culto", "startTime": "19:00",
	}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/schedules", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["result"].([]any), 1)
}
