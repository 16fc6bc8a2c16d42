// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesp-app/igreja-go/internal/model"
)

// testDB creates a temporary test database with migrations applied.
func testDB(t *testing.T) *Queries {
	t.Helper()

	f, err := os.CreateTemp("", "igreja-store-test-*.db")
	require.NoError(t, err)
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})

	return New(db)
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := q.CreateUser(ctx, CreateUserParams{
		Name:         nullStr("Maria"),
		Email:        nullStr("maria@example.com"),
		PasswordHash: nullStr("hash"),
		PasswordSalt: nullStr("salt"),
		LoginMethod:  nullStr(model.LoginMethodEmail),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	})
	require.NoError(t, err)

	_, err = q.CreateUser(ctx, CreateUserParams{
		Name:         nullStr("Maria Again"),
		Email:        nullStr("maria@example.com"),
		PasswordHash: nullStr("hash2"),
		PasswordSalt: nullStr("salt2"),
		LoginMethod:  nullStr(model.LoginMethodEmail),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	})
	assert.Error(t, err, "duplicate email must violate the unique constraint")
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	q := testDB(t)

	_, err := q.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestArticleCRUD(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	created, err := q.CreateArticle(ctx, CreateArticleParams{
		Title:     "Primeiro Artigo",
		Slug:      "primeiro-artigo",
		Content:   "<p>texto</p>",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Primeiro Artigo", created.Title)

	got, err := q.GetArticleByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	updated, err := q.UpdateArticle(ctx, UpdateArticleParams{
		ID:        created.ID,
		Title:     "Artigo Revisado",
		Slug:      created.Slug,
		Content:   created.Content,
		UpdatedAt: now.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "Artigo Revisado", updated.Title)

	require.NoError(t, q.DeleteArticle(ctx, created.ID))

	_, err = q.GetArticleByID(ctx, created.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListArticles_Order(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		_, err := q.CreateArticle(ctx, CreateArticleParams{
			Title:     "Artigo",
			Slug:      "artigo",
			Content:   "x",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	items, err := q.ListArticles(ctx, ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].CreatedAt.After(items[2].CreatedAt), "newest first")

	page, err := q.ListArticles(ctx, ListParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestDailyWord_UniqueDate(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := q.CreateDailyWord(ctx, CreateDailyWordParams{
		Date:      "2026-03-01",
		Title:     "Palavra",
		Content:   "texto",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	_, err = q.CreateDailyWord(ctx, CreateDailyWordParams{
		Date:      "2026-03-01",
		Title:     "Outra",
		Content:   "texto",
		CreatedAt: now,
		UpdatedAt: now,
	})
	assert.Error(t, err, "one word per calendar day")

	got, err := q.GetDailyWordByDate(ctx, "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "Palavra", got.Title)
}

func TestFavorites_Idempotent(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        nullStr("fan@example.com"),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	})
	require.NoError(t, err)

	arg := AddUserFavoriteParams{
		UserID:      user.ID,
		ContentType: model.FavoriteArticle,
		ContentID:   42,
		CreatedAt:   now,
	}
	require.NoError(t, q.AddUserFavorite(ctx, arg))
	require.NoError(t, q.AddUserFavorite(ctx, arg))

	items, err := q.ListUserFavorites(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Len(t, items, 1, "re-adding the same favorite must not duplicate")

	ok, err := q.IsUserFavorite(ctx, user.ID, model.FavoriteArticle, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, q.RemoveUserFavorite(ctx, user.ID, model.FavoriteArticle, 42))
	ok, err = q.IsUserFavorite(ctx, user.ID, model.FavoriteArticle, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavorites_FilterByType(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        nullStr("filter@example.com"),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	})
	require.NoError(t, err)

	require.NoError(t, q.AddUserFavorite(ctx, AddUserFavoriteParams{
		UserID: user.ID, ContentType: model.FavoriteArticle, ContentID: 1, CreatedAt: now,
	}))
	require.NoError(t, q.AddUserFavorite(ctx, AddUserFavoriteParams{
		UserID: user.ID, ContentType: model.FavoriteHymn, ContentID: 7, CreatedAt: now,
	}))

	hymns, err := q.ListUserFavorites(ctx, user.ID, model.FavoriteHymn)
	require.NoError(t, err)
	require.Len(t, hymns, 1)
	assert.Equal(t, int64(7), hymns[0].ContentID)
}

func TestForeignKeysEnforced(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// The pragma rides in the DSN, so every pooled connection enforces FKs.
	for i := 0; i < 10; i++ {
		err := q.AddUserFavorite(ctx, AddUserFavoriteParams{
			UserID: 9999, ContentType: model.FavoriteArticle, ContentID: 1, CreatedAt: now,
		})
		require.Error(t, err)
		assert.True(t, IsForeignKeyViolation(err))
	}
}

func TestCampaignDonationFlow(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	c, err := q.CreateCampaign(ctx, CreateCampaignParams{
		Title:          "Reforma do Templo",
		Goal:           sql.NullInt64{Int64: 500000, Valid: true},
		PaymentMethods: model.PaymentPix,
		Status:         model.CampaignActive,
		StartDate:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	require.NoError(t, err)
	assert.Zero(t, c.Collected)

	d, err := q.CreateCampaignDonation(ctx, CreateCampaignDonationParams{
		CampaignID:    c.ID,
		Amount:        10000,
		PaymentMethod: model.PaymentPix,
		Status:        model.DonationPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)
	assert.Equal(t, c.ID, d.CampaignID)

	require.NoError(t, q.AddCampaignCollected(ctx, c.ID, 10000, now))
	got, err := q.GetCampaignByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got.Collected)

	donations, err := q.ListCampaignDonations(ctx, c.ID, ListParams{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, donations, 1)
}

func TestHymnSearch(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := q.CreateHymn(ctx, CreateHymnParams{
		Number:    15,
		Title:     "Grandioso És Tu",
		Lyrics:    "Senhor meu Deus",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	results, err := q.SearchHymns(ctx, "grandioso")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(15), results[0].Number)
}

func TestEnsureAdmin(t *testing.T) {
	q := testDB(t)
	ctx := context.Background()

	password, err := q.EnsureAdmin(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, password, "first run creates the bootstrap admin")

	again, err := q.EnsureAdmin(ctx)
	require.NoError(t, err)
	assert.Empty(t, again, "second run is a no-op")

	admin, err := q.GetUserByEmail(ctx, DefaultAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}
