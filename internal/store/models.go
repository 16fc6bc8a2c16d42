// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

// User is a row in the users table. Password columns are null for accounts
// created through external login.
type User struct {
	ID           int64
	OpenID       sql.NullString
	Name         sql.NullString
	Email        sql.NullString
	PasswordHash sql.NullString
	PasswordSalt sql.NullString
	LoginMethod  sql.NullString
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn time.Time
}

// Article is a row in the articles table.
type Article struct {
	ID          int64
	Title       string
	Slug        string
	Description sql.NullString
	Content     string
	ImageUrl    sql.NullString
	AuthorID    sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// News is a row in the news table.
type News struct {
	ID          int64
	Title       string
	Slug        string
	Description sql.NullString
	Content     string
	ImageUrl    sql.NullString
	AuthorID    sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Event is a row in the events table.
type Event struct {
	ID          int64
	Title       string
	Description sql.NullString
	Content     sql.NullString
	ImageUrl    sql.NullString
	Location    sql.NullString
	StartDate   time.Time
	EndDate     sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Hymn is a row in the hymns table. Number is the hymnal number, unique
// across the collection.
type Hymn struct {
	ID        int64
	Number    int64
	Title     string
	Lyrics    string
	Author    sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DailyWord is a row in the daily_words table. Date is the natural key in
// YYYY-MM-DD form: one word per calendar day.
type DailyWord struct {
	ID        int64
	Date      string
	Title     string
	Content   string
	Reference sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrayerReason is a row in the prayer_reasons table.
type PrayerReason struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceSchedule is a row in the service_schedules table.
type ServiceSchedule struct {
	ID          int64
	DayOfWeek   string
	ServiceName string
	StartTime   string
	EndTime     sql.NullString
	Location    sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GalleryItem is a row in the gallery_items table.
type GalleryItem struct {
	ID          int64
	Title       string
	Description sql.NullString
	MediaUrl    string
	MediaType   string
	EventID     sql.NullInt64
	UploadedBy  sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContactSubmission is a row in the contact_submissions table.
type ContactSubmission struct {
	ID        int64
	Name      string
	Email     string
	Subject   sql.NullString
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Campaign is a row in the campaigns table. Collected is a display-only
// aggregate maintained outside the donation flow.
type Campaign struct {
	ID             int64
	Title          string
	Description    sql.NullString
	Content        sql.NullString
	ImageUrl       sql.NullString
	Goal           sql.NullInt64
	Collected      int64
	PaymentMethods string
	Status         string
	StartDate      time.Time
	EndDate        sql.NullTime
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CampaignDonation is a row in the campaign_donations table. Amount is in
// minor currency units.
type CampaignDonation struct {
	ID            int64
	CampaignID    int64
	UserID        sql.NullInt64
	Amount        int64
	PaymentMethod string
	TransactionID sql.NullString
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserFavorite is a row in the user_favorites table.
type UserFavorite struct {
	ID          int64
	UserID      int64
	ContentType string
	ContentID   int64
	CreatedAt   time.Time
}

// AuditEvent is a row in the audit_events table.
type AuditEvent struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	Metadata  string
	CreatedAt time.Time
}
