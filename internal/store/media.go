// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/starleap/starleap-go/internal/model"
)

const mediaColumns = `id, file_name, file_path, file_type, size, description, created_at, updated_at`

func scanMedia(row *sql.Row) (model.Media, error) {
	var m model.Media
	err := row.Scan(&m.ID, &m.FileName, &m.FilePath, &m.FileType, &m.Size,
		&m.Description, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// CreateMediaParams holds the fields for creating a media record.
type CreateMediaParams struct {
	FileName    string
	FilePath    string
	FileType    string
	Size        int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateMedia inserts a new media record and returns it.
func (q *Queries) CreateMedia(ctx context.Context, arg CreateMediaParams) (model.Media, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO media (file_name, file_path, file_type, size, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+mediaColumns,
		arg.FileName, arg.FilePath, arg.FileType, arg.Size, arg.Description,
		arg.CreatedAt, arg.UpdatedAt)
	return scanMedia(row)
}

// GetMediaByID returns the media record with the given ID.
func (q *Queries) GetMediaByID(ctx context.Context, id int64) (model.Media, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE id = ?`, id)
	return scanMedia(row)
}

// ListMediaParams holds pagination options for listing media.
type ListMediaParams struct {
	Limit  int64
	Offset int64
}

// ListMedia returns media records, newest first.
func (q *Queries) ListMedia(ctx context.Context, arg ListMediaParams) ([]model.Media, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+mediaColumns+` FROM media ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var media []model.Media
	for rows.Next() {
		var m model.Media
		if err := rows.Scan(&m.ID, &m.FileName, &m.FilePath, &m.FileType, &m.Size,
			&m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	return media, rows.Err()
}

// CountMedia returns the total number of media records.
func (q *Queries) CountMedia(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM media`).Scan(&n)
	return n, err
}

// UpdateMediaDescription updates the freeform description of a media record.
func (q *Queries) UpdateMediaDescription(ctx context.Context, id int64, description string) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE media SET description = ?, updated_at = ? WHERE id = ?`,
		description, time.Now(), id)
	return err
}

// DeleteMedia removes a media record. The caller is responsible for removing
// the file on disk.
func (q *Queries) DeleteMedia(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?`, id)
	return err
}
