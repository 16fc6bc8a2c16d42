// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const campaignColumns = `id, title, description, content, image_url, goal,
	collected, payment_methods, status, start_date, end_date,
	created_at, updated_at`

func scanCampaign(row *sql.Row) (Campaign, error) {
	var c Campaign
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Content, &c.ImageUrl,
		&c.Goal, &c.Collected, &c.PaymentMethods, &c.Status, &c.StartDate,
		&c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListCampaigns returns campaigns, newest first.
func (q *Queries) ListCampaigns(ctx context.Context, arg ListParams) ([]Campaign, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+campaignColumns+` FROM campaigns
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Campaign
	for rows.Next() {
		var c Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Content,
			&c.ImageUrl, &c.Goal, &c.Collected, &c.PaymentMethods, &c.Status,
			&c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// GetCampaignByID looks up a single campaign. Returns sql.ErrNoRows when the
// id does not exist.
func (q *Queries) GetCampaignByID(ctx context.Context, id int64) (Campaign, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id)
	return scanCampaign(row)
}

// CreateCampaignParams holds the fields for inserting a campaign.
type CreateCampaignParams struct {
	Title          string
	Description    sql.NullString
	Content        sql.NullString
	ImageUrl       sql.NullString
	Goal           sql.NullInt64
	PaymentMethods string
	Status         string
	StartDate      time.Time
	EndDate        sql.NullTime
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateCampaign inserts a campaign row and returns it.
func (q *Queries) CreateCampaign(ctx context.Context, arg CreateCampaignParams) (Campaign, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO campaigns (title, description, content, image_url, goal,
			collected, payment_methods, status, start_date, end_date,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?, ?, ?, ?, ?)
		RETURNING `+campaignColumns,
		arg.Title, arg.Description, arg.Content, arg.ImageUrl, arg.Goal,
		arg.PaymentMethods, arg.Status, arg.StartDate, arg.EndDate,
		arg.CreatedAt, arg.UpdatedAt)
	return scanCampaign(row)
}

// AddCampaignCollected bumps the display aggregate after a confirmed
// donation.
func (q *Queries) AddCampaignCollected(ctx context.Context, id int64, amount int64, updatedAt time.Time) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE campaigns SET collected = collected + ?, updated_at = ?
		WHERE id = ?`, amount, updatedAt, id)
	return err
}

const donationColumns = `id, campaign_id, user_id, amount, payment_method,
	transaction_id, status, created_at, updated_at`

// CreateCampaignDonationParams holds the fields for recording a donation.
type CreateCampaignDonationParams struct {
	CampaignID    int64
	UserID        sql.NullInt64
	Amount        int64
	PaymentMethod string
	TransactionID sql.NullString
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateCampaignDonation records a donation against a campaign and returns
// the stored row.
func (q *Queries) CreateCampaignDonation(ctx context.Context, arg CreateCampaignDonationParams) (CampaignDonation, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO campaign_donations (campaign_id, user_id, amount,
			payment_method, transaction_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+donationColumns,
		arg.CampaignID, arg.UserID, arg.Amount, arg.PaymentMethod,
		arg.TransactionID, arg.Status, arg.CreatedAt, arg.UpdatedAt)

	var d CampaignDonation
	err := row.Scan(&d.ID, &d.CampaignID, &d.UserID, &d.Amount,
		&d.PaymentMethod, &d.TransactionID, &d.Status, &d.CreatedAt,
		&d.UpdatedAt)
	return d, err
}

// ListCampaignDonations returns a campaign's donations, newest first.
func (q *Queries) ListCampaignDonations(ctx context.Context, campaignID int64, arg ListParams) ([]CampaignDonation, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+donationColumns+` FROM campaign_donations
		WHERE campaign_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, campaignID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CampaignDonation
	for rows.Next() {
		var d CampaignDonation
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.UserID, &d.Amount,
			&d.PaymentMethod, &d.TransactionID, &d.Status, &d.CreatedAt,
			&d.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
