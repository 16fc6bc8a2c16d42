// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model holds domain constants shared across packages: user roles,
// content type tags, enumerated field values and accepted MIME types.
package model

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether s is a known user role.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}

// Content type tags understood by the CRUD dispatcher.
const (
	TypeArticle      = "article"
	TypeNews         = "news"
	TypeEvent        = "event"
	TypeDailyWord    = "dailyWord"
	TypePrayerReason = "prayerReason"
	TypeGallery      = "gallery"
)

// Content types that can be favorited.
const (
	FavoriteArticle = "article"
	FavoriteNews    = "news"
	FavoriteEvent   = "event"
	FavoriteHymn    = "hymn"
)

// ValidFavoriteType reports whether s names a favoritable content type.
func ValidFavoriteType(s string) bool {
	switch s {
	case FavoriteArticle, FavoriteNews, FavoriteEvent, FavoriteHymn:
		return true
	}
	return false
}

// Prayer reason priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether s is a known prayer priority.
func ValidPriority(s string) bool {
	return s == PriorityLow || s == PriorityMedium || s == PriorityHigh
}

// Gallery media types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Donation payment methods.
const (
	PaymentPix         = "pix"
	PaymentMercadoPago = "mercadopago"
	PaymentCreditCard  = "credit_card"
)

// ValidPaymentMethod reports whether s is a known payment method.
func ValidPaymentMethod(s string) bool {
	return s == PaymentPix || s == PaymentMercadoPago || s == PaymentCreditCard
}

// Donation statuses. Only pending is ever written by this system: settlement
// happens in an external collaborator.
const (
	DonationPending   = "pending"
	DonationCompleted = "completed"
	DonationFailed    = "failed"
)

// Campaign statuses.
const (
	CampaignActive    = "active"
	CampaignInactive  = "inactive"
	CampaignCompleted = "completed"
)

// Contact submission statuses.
const (
	ContactPending   = "pending"
	ContactRead      = "read"
	ContactResponded = "responded"
)

// Login methods recorded on user rows.
const (
	LoginMethodEmail = "email"
)

// MIME types accepted for gallery uploads.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
	MimeTypeMP4  = "video/mp4"
	MimeTypeWebM = "video/webm"
)

// Audit log levels.
const (
	AuditLevelInfo    = "info"
	AuditLevelWarning = "warning"
	AuditLevelError   = "error"
)

// Audit log categories.
const (
	AuditCategoryAuth     = "auth"
	AuditCategoryContent  = "content"
	AuditCategoryDonation = "donation"
	AuditCategoryStorage  = "storage"
	AuditCategorySystem   = "system"
)

// Days of the week for service schedules, in display order.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ValidDayOfWeek reports whether s is a known day name.
func ValidDayOfWeek(s string) bool {
	for _, d := range DaysOfWeek {
		if d == s {
			return true
		}
	}
	return false
}
