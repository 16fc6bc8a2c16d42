// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const scheduleColumns = `id, day_of_week, service_name, start_time, end_time,
	location, created_at, updated_at`

// ListServiceSchedules returns all service schedules in week order then by
// start time.
func (q *Queries) ListServiceSchedules(ctx context.Context) ([]ServiceSchedule, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+scheduleColumns+` FROM service_schedules
		ORDER BY CASE day_of_week
			WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6
			ELSE 7 END, start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ServiceSchedule
	for rows.Next() {
		var s ServiceSchedule
		if err := rows.Scan(&s.ID, &s.DayOfWeek, &s.ServiceName, &s.StartTime,
			&s.EndTime, &s.Location, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// CreateServiceScheduleParams holds the fields for inserting a schedule entry.
type CreateServiceScheduleParams struct {
	DayOfWeek   string
	ServiceName string
	StartTime   string
	EndTime     sql.NullString
	Location    sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateServiceSchedule inserts a schedule row and returns it.
func (q *Queries) CreateServiceSchedule(ctx context.Context, arg CreateServiceScheduleParams) (ServiceSchedule, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO service_schedules (day_of_week, service_name, start_time,
			end_time, location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+scheduleColumns,
		arg.DayOfWeek, arg.ServiceName, arg.StartTime, arg.EndTime,
		arg.Location, arg.CreatedAt, arg.UpdatedAt)

	var s ServiceSchedule
	err := row.Scan(&s.ID, &s.DayOfWeek, &s.ServiceName, &s.StartTime,
		&s.EndTime, &s.Location, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
