// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/iesp-app/igreja-go/internal/apperr"
	"github.com/iesp-app/igreja-go/internal/model"
	"github.com/iesp-app/igreja-go/internal/store"
	"github.com/iesp-app/igreja-go/internal/util"
)

// Donation records donation intents against campaigns. Settlement happens in
// an external payment collaborator, so rows are only ever written as pending.
type Donation struct {
	queries *store.Queries
	logger  *slog.Logger
}

// NewDonation returns a Donation service backed by queries.
func NewDonation(queries *store.Queries, logger *slog.Logger) *Donation {
	return &Donation{queries: queries, logger: logger}
}

// Donate validates and records a donation intent. userID is nil for
// anonymous donors.
func (s *Donation) Donate(ctx context.Context, campaignID, amount int64, paymentMethod string, userID *int64) (store.CampaignDonation, error) {
	if _, err := s.queries.GetCampaignByID(ctx, campaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.CampaignDonation{}, apperr.ErrInvalidCampaign
		}
		return store.CampaignDonation{}, apperr.ErrDatabaseUnavailable
	}
	if amount <= 0 {
		return store.CampaignDonation{}, apperr.ErrInvalidAmount
	}
	if !model.ValidPaymentMethod(paymentMethod) {
		return store.CampaignDonation{}, apperr.ErrInvalidPayment
	}

	now := time.Now()
	donation, err := s.queries.CreateCampaignDonation(ctx, store.CreateCampaignDonationParams{
		CampaignID:    campaignID,
		UserID:        util.NullInt64FromPtr(userID),
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Status:        model.DonationPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if store.IsForeignKeyViolation(err) {
		// Attributed donor row is gone. The session outlived the user.
		return store.CampaignDonation{}, apperr.ErrForbidden
	}
	if err != nil {
		return store.CampaignDonation{}, apperr.ErrDatabaseUnavailable
	}

	s.logger.Info("donation intent recorded", "campaign_id", campaignID,
		"amount", amount, "method", paymentMethod, "category", model.AuditCategoryDonation)
	return donation, nil
}

// Campaigns lists campaigns, newest first.
func (s *Donation) Campaigns(ctx context.Context, limit, offset int64) ([]store.Campaign, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.queries.ListCampaigns(ctx, store.ListParams{Limit: limit, Offset: offset})
}

// Campaign fetches a single campaign.
func (s *Donation) Campaign(ctx context.Context, id int64) (store.Campaign, error) {
	c, err := s.queries.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Campaign{}, apperr.ErrNotFound
		}
		return store.Campaign{}, err
	}
	return c, nil
}
