// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"time"

	"github.com/iesp-app/igreja-go/internal/store"
	"github.com/iesp-app/igreja-go/internal/util"
)

// Wire representations of content rows. Field names follow the JSON shape
// the mobile and web clients already consume.

// ArticleDoc is the wire form of an article or news row.
type ArticleDoc struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Content     string    `json:"content"`
	ImageUrl    *string   `json:"imageUrl"`
	AuthorID    *int64    `json:"authorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventDoc is the wire form of an event row.
type EventDoc struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Content     *string    `json:"content"`
	ImageUrl    *string    `json:"imageUrl"`
	Location    *string    `json:"location"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// DailyWordDoc is the wire form of a daily word row.
type DailyWordDoc struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Reference *string   `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PrayerReasonDoc is the wire form of a prayer reason row.
type PrayerReasonDoc struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GalleryDoc is the wire form of a gallery row.
type GalleryDoc struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	MediaUrl    string    `json:"mediaUrl"`
	MediaType   string    `json:"mediaType"`
	EventID     *int64    `json:"eventId"`
	UploadedBy  *int64    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func articleDoc(a store.Article) ArticleDoc {
	return ArticleDoc{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Description: util.StrPtrFromNull(a.Description),
		Content:     a.Content,
		ImageUrl:    util.StrPtrFromNull(a.ImageUrl),
		AuthorID:    util.Int64PtrFromNull(a.AuthorID),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func newsDoc(n store.News) ArticleDoc {
	return ArticleDoc{
		ID:          n.ID,
		Title:       n.Title,
		Slug:        n.Slug,
		Description: util.StrPtrFromNull(n.Description),
		Content:     n.Content,
		ImageUrl:    util.StrPtrFromNull(n.ImageUrl),
		AuthorID:    util.Int64PtrFromNull(n.AuthorID),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func eventDoc(e store.Event) EventDoc {
	doc := EventDoc{
		ID:          e.ID,
		Title:       e.Title,
		Description: util.StrPtrFromNull(e.Description),
		Content:     util.StrPtrFromNull(e.Content),
		ImageUrl:    util.StrPtrFromNull(e.ImageUrl),
		Location:    util.StrPtrFromNull(e.Location),
		StartDate:   e.StartDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.EndDate.Valid {
		doc.EndDate = &e.EndDate.Time
	}
	return doc
}

func dailyWordDoc(w store.DailyWord) DailyWordDoc {
	return DailyWordDoc{
		ID:        w.ID,
		Date:      w.Date,
		Title:     w.Title,
		Content:   w.Content,
		Reference: util.StrPtrFromNull(w.Reference),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func prayerReasonDoc(p store.PrayerReason) PrayerReasonDoc {
	return PrayerReasonDoc{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Priority:    p.Priority,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func galleryDoc(g store.GalleryItem) GalleryDoc {
	return GalleryDoc{
		ID:          g.ID,
		Title:       g.Title,
		Description: util.StrPtrFromNull(g.Description),
		MediaUrl:    g.MediaUrl,
		MediaType:   g.MediaType,
		EventID:     util.Int64PtrFromNull(g.EventID),
		UploadedBy:  util.Int64PtrFromNull(g.UploadedBy),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
