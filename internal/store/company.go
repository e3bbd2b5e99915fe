// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/starleap/starleap-go/internal/model"
)

// -----------------------------------------------------------------------------
// Clients
// -----------------------------------------------------------------------------

const clientColumns = `id, name, logo_url, description, sort_order, is_active, created_at, updated_at`

func scanClient(row *sql.Row) (model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.Name, &c.LogoURL, &c.Description, &c.SortOrder,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CreateClientParams holds the fields for creating a client entry.
type CreateClientParams struct {
	Name        string
	LogoURL     string
	Description sql.NullString
	SortOrder   int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateClient inserts a new client entry and returns it.
func (q *Queries) CreateClient(ctx context.Context, arg CreateClientParams) (model.Client, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO clients (name, logo_url, description, sort_order, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+clientColumns,
		arg.Name, arg.LogoURL, arg.Description, arg.SortOrder, arg.IsActive,
		arg.CreatedAt, arg.UpdatedAt)
	return scanClient(row)
}

// GetClientByID returns the client with the given ID.
func (q *Queries) GetClientByID(ctx context.Context, id int64) (model.Client, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

// ListClients returns clients ordered for display. When activeOnly is
// true, inactive entries are filtered out.
func (q *Queries) ListClients(ctx context.Context, activeOnly bool) ([]model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.LogoURL, &c.Description, &c.SortOrder,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// UpdateClientParams holds the fields for updating a client entry.
type UpdateClientParams struct {
	ID          int64
	Name        string
	LogoURL     string
	Description sql.NullString
	SortOrder   int64
	IsActive    bool
	UpdatedAt   time.Time
}

// UpdateClient updates a client entry and returns the updated row.
func (q *Queries) UpdateClient(ctx context.Context, arg UpdateClientParams) (model.Client, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE clients SET name = ?, logo_url = ?, description = ?, sort_order = ?, is_active = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+clientColumns,
		arg.Name, arg.LogoURL, arg.Description, arg.SortOrder, arg.IsActive,
		arg.UpdatedAt, arg.ID)
	return scanClient(row)
}

// DeleteClient removes a client entry.
func (q *Queries) DeleteClient(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	return err
}

// -----------------------------------------------------------------------------
// Team members
// -----------------------------------------------------------------------------

const teamMemberColumns = `id, name, position, image_url, sort_order, is_active, created_at, updated_at`

func scanTeamMember(row *sql.Row) (model.TeamMember, error) {
	var m model.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Position, &m.ImageURL, &m.SortOrder,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// CreateTeamMemberParams holds the fields for creating a team member.
type CreateTeamMemberParams struct {
	Name      string
	Position  string
	ImageURL  string
	SortOrder int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTeamMember inserts a new team member and returns it.
func (q *Queries) CreateTeamMember(ctx context.Context, arg CreateTeamMemberParams) (model.TeamMember, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO team_members (name, position, image_url, sort_order, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+teamMemberColumns,
		arg.Name, arg.Position, arg.ImageURL, arg.SortOrder, arg.IsActive,
		arg.CreatedAt, arg.UpdatedAt)
	return scanTeamMember(row)
}

// GetTeamMemberByID returns the team member with the given ID.
func (q *Queries) GetTeamMemberByID(ctx context.Context, id int64) (model.TeamMember, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+teamMemberColumns+` FROM team_members WHERE id = ?`, id)
	return scanTeamMember(row)
}

// ListTeamMembers returns team members ordered for display. When
// activeOnly is true, inactive entries are filtered out.
func (q *Queries) ListTeamMembers(ctx context.Context, activeOnly bool) ([]model.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.TeamMember
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.ImageURL, &m.SortOrder,
			&m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// UpdateTeamMemberParams holds the fields for updating a team member.
type UpdateTeamMemberParams struct {
	ID        int64
	Name      string
	Position  string
	ImageURL  string
	SortOrder int64
	IsActive  bool
	UpdatedAt time.Time
}

// UpdateTeamMember updates a team member and returns the updated row.
func (q *Queries) UpdateTeamMember(ctx context.Context, arg UpdateTeamMemberParams) (model.TeamMember, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE team_members SET name = ?, position = ?, image_url = ?, sort_order = ?, is_active = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+teamMemberColumns,
		arg.Name, arg.Position, arg.ImageURL, arg.SortOrder, arg.IsActive,
		arg.UpdatedAt, arg.ID)
	return scanTeamMember(row)
}

// DeleteTeamMember removes a team member.
func (q *Queries) DeleteTeamMember(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = ?`, id)
	return err
}
