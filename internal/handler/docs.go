// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"time"

	"github.com/iesp-app/igreja-go/internal/store"
	"github.com/iesp-app/igreja-go/internal/util"
)

// UserDoc is the minimal identity projection returned on login. The role
// stays in the session cookie and is read back for authorization.
type UserDoc struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func userDoc(u store.User) UserDoc {
	return UserDoc{
		ID:    u.ID,
		Name:  util.StringFromNull(u.Name),
		Email: util.StringFromNull(u.Email),
	}
}

// HymnDoc is the wire shape for a hymn.
type HymnDoc struct {
	ID     int64   `json:"id"`
	Number int64   `json:"number"`
	Title  string  `json:"title"`
	Lyrics string  `json:"lyrics"`
	Author *string `json:"author,omitempty"`
}

func hymnDoc(h store.Hymn) HymnDoc {
	return HymnDoc{
		ID:     h.ID,
		Number: h.Number,
		Title:  h.Title,
		Lyrics: h.Lyrics,
		Author: util.StrPtrFromNull(h.Author),
	}
}

func hymnDocs(items []store.Hymn) []HymnDoc {
	docs := make([]HymnDoc, 0, len(items))
	for _, h := range items {
		docs = append(docs, hymnDoc(h))
	}
	return docs
}

// ScheduleDoc is the wire shape for a weekly service schedule entry.
type ScheduleDoc struct {
	ID          int64   `json:"id"`
	DayOfWeek   string  `json:"dayOfWeek"`
	ServiceName string  `json:"serviceName"`
	StartTime   string  `json:"startTime"`
	EndTime     *string `json:"endTime,omitempty"`
	Location    *string `json:"location,omitempty"`
}

func scheduleDoc(s store.ServiceSchedule) ScheduleDoc {
	return ScheduleDoc{
		ID:          s.ID,
		DayOfWeek:   s.DayOfWeek,
		ServiceName: s.ServiceName,
		StartTime:   s.StartTime,
		EndTime:     util.StrPtrFromNull(s.EndTime),
		Location:    util.StrPtrFromNull(s.Location),
	}
}

func scheduleDocs(items []store.ServiceSchedule) []ScheduleDoc {
	docs := make([]ScheduleDoc, 0, len(items))
	for _, s := range items {
		docs = append(docs, scheduleDoc(s))
	}
	return docs
}

// CampaignDoc is the wire shape for a donation campaign. Amounts are in
// minor currency units (centavos). PaymentMethods is stored as a JSON array
// string and forwarded raw.
type CampaignDoc struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Description    *string         `json:"description,omitempty"`
	Content        *string         `json:"content,omitempty"`
	ImageUrl       *string         `json:"imageUrl,omitempty"`
	Goal           *int64          `json:"goal,omitempty"`
	Collected      int64           `json:"collected"`
	PaymentMethods json.RawMessage `json:"paymentMethods"`
	Status         string          `json:"status"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
}

func campaignDoc(c store.Campaign) CampaignDoc {
	doc := CampaignDoc{
		ID:             c.ID,
		Title:          c.Title,
		Description:    util.StrPtrFromNull(c.Description),
		Content:        util.StrPtrFromNull(c.Content),
		ImageUrl:       util.StrPtrFromNull(c.ImageUrl),
		Goal:           util.Int64PtrFromNull(c.Goal),
		Collected:      c.Collected,
		PaymentMethods: json.RawMessage(c.PaymentMethods),
		Status:         c.Status,
		StartDate:      c.StartDate,
	}
	if c.EndDate.Valid {
		doc.EndDate = &c.EndDate.Time
	}
	return doc
}

func campaignDocs(items []store.Campaign) []CampaignDoc {
	docs := make([]CampaignDoc, 0, len(items))
	for _, c := range items {
		docs = append(docs, campaignDoc(c))
	}
	return docs
}

// DonationDoc is the wire shape for a recorded donation intent.
type DonationDoc struct {
	ID            int64  `json:"id"`
	CampaignID    int64  `json:"campaignId"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Status        string `json:"status"`
}

func donationDoc(d store.CampaignDonation) DonationDoc {
	return DonationDoc{
		ID:            d.ID,
		CampaignID:    d.CampaignID,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		Status:        d.Status,
	}
}

// FavoriteDoc is the wire shape for a bookmark.
type FavoriteDoc struct {
	ID          int64     `json:"id"`
	ContentType string    `json:"contentType"`
	ContentID   int64     `json:"contentId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func favoriteDocs(items []store.UserFavorite) []FavoriteDoc {
	docs := make([]FavoriteDoc, 0, len(items))
	for _, f := range items {
		docs = append(docs, FavoriteDoc{
			ID:          f.ID,
			ContentType: f.ContentType,
			ContentID:   f.ContentID,
			CreatedAt:   f.CreatedAt,
		})
	}
	return docs
}

// ContactDoc is the wire shape for a contact form submission.
type ContactDoc struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func contactDoc(c store.ContactSubmission) ContactDoc {
	return ContactDoc{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   util.StrPtrFromNull(c.Subject),
		Message:   c.Message,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func contactDocs(items []store.ContactSubmission) []ContactDoc {
	docs := make([]ContactDoc, 0, len(items))
	for _, c := range items {
		docs = append(docs, contactDoc(c))
	}
	return docs
}
