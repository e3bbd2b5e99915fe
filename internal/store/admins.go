// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/starleap/starleap-go/internal/model"
)

const adminColumns = `id, email, password_hash, name, role, is_active, created_at, updated_at, last_login_at`

func scanAdmin(row *sql.Row) (model.Admin, error) {
	var a model.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt, &a.LastLoginAt)
	return a, err
}

// CreateAdminParams holds the fields for creating an admin record.
type CreateAdminParams struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateAdmin inserts a new admin record and returns it.
// The unique index on email surfaces duplicates as a constraint error.
func (q *Queries) CreateAdmin(ctx context.Context, arg CreateAdminParams) (model.Admin, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO admins (email, password_hash, name, role, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+adminColumns,
		arg.Email, arg.PasswordHash, arg.Name, arg.Role, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	return scanAdmin(row)
}

// GetAdminByEmail returns the admin with the given email, active or not.
func (q *Queries) GetAdminByEmail(ctx context.Context, email string) (model.Admin, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = ?`, email)
	return scanAdmin(row)
}

// GetAdminByID returns the admin with the given ID, active or not.
func (q *Queries) GetAdminByID(ctx context.Context, id int64) (model.Admin, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = ?`, id)
	return scanAdmin(row)
}

// GetActiveAdminByID returns the admin with the given ID only if it is
// active. Missing and inactive records are both sql.ErrNoRows so callers
// cannot distinguish the two cases.
func (q *Queries) GetActiveAdminByID(ctx context.Context, id int64) (model.Admin, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = ? AND is_active = 1`, id)
	return scanAdmin(row)
}

// UpdateAdminPasswordParams holds the fields for a password update.
type UpdateAdminPasswordParams struct {
	PasswordHash string
	UpdatedAt    time.Time
	ID           int64
}

// UpdateAdminPassword replaces the stored password hash. It touches no other
// state; previously issued tokens remain valid until natural expiry.
func (q *Queries) UpdateAdminPassword(ctx context.Context, arg UpdateAdminPasswordParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = ?, updated_at = ? WHERE id = ?`,
		arg.PasswordHash, arg.UpdatedAt, arg.ID)
	return err
}

// UpdateAdminLastLoginParams holds the fields for a last-login update.
type UpdateAdminLastLoginParams struct {
	LastLoginAt sql.NullTime
	ID          int64
}

// UpdateAdminLastLogin records the last successful login time.
func (q *Queries) UpdateAdminLastLogin(ctx context.Context, arg UpdateAdminLastLoginParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE admins SET last_login_at = ? WHERE id = ?`,
		arg.LastLoginAt, arg.ID)
	return err
}

// SetAdminActive toggles the active flag on an admin account.
func (q *Queries) SetAdminActive(ctx context.Context, id int64, active bool) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE admins SET is_active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now(), id)
	return err
}

// ListAdmins returns all admin records ordered by creation time.
func (q *Queries) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+adminColumns+` FROM admins ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role,
			&a.IsActive, &a.CreatedAt, &a.UpdatedAt, &a.LastLoginAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}
