// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/starleap/starleap-go/internal/model"
)

const eventColumns = `id, level, category, message, admin_id, metadata, created_at`

// CreateEventParams holds the fields for recording an event.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	AdminID   sql.NullInt64
	Metadata  string
	CreatedAt time.Time
}

// CreateEvent records an event in the audit log.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO events (level, category, message, admin_id, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, arg.AdminID, arg.Metadata, arg.CreatedAt)
	return err
}

// ListEventsParams holds filter and paging options for listing events.
type ListEventsParams struct {
	Level    string
	Category string
	AdminID  sql.NullInt64
	Limit    int64
	Offset   int64
}

// ListEvents returns events newest first, optionally filtered by level,
// category and admin.
func (q *Queries) ListEvents(ctx context.Context, arg ListEventsParams) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	var args []any
	if arg.Level != "" {
		query += ` AND level = ?`
		args = append(args, arg.Level)
	}
	if arg.Category != "" {
		query += ` AND category = ?`
		args = append(args, arg.Category)
	}
	if arg.AdminID.Valid {
		query += ` AND admin_id = ?`
		args = append(args, arg.AdminID.Int64)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, arg.Limit, arg.Offset)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.AdminID,
			&e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountEventsParams holds filter options for counting events.
type CountEventsParams struct {
	Level    string
	Category string
	AdminID  sql.NullInt64
}

// CountEvents returns the number of events matching the filters.
func (q *Queries) CountEvents(ctx context.Context, arg CountEventsParams) (int64, error) {
	query := `SELECT COUNT(*) FROM events WHERE 1=1`
	var args []any
	if arg.Level != "" {
		query += ` AND level = ?`
		args = append(args, arg.Level)
	}
	if arg.Category != "" {
		query += ` AND category = ?`
		args = append(args, arg.Category)
	}
	if arg.AdminID.Valid {
		query += ` AND admin_id = ?`
		args = append(args, arg.AdminID.Int64)
	}
	var n int64
	err := q.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

// PruneEvents deletes events older than the given cutoff and returns the
// number of rows removed.
func (q *Queries) PruneEvents(ctx context.Context, before time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
