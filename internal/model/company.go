// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Client represents a reference customer shown on the clients page.
type Client struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	LogoURL     string         `json:"logo_url"`
	Description sql.NullString `json:"description"`
	SortOrder   int64          `json:"sort_order"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TeamMember represents a person on the company team page.
type TeamMember struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	ImageURL  string    `json:"image_url"`
	SortOrder int64     `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
