// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Carousel represents a homepage carousel slide.
type Carousel struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description sql.NullString `json:"description"`
	ImageURL    string         `json:"image_url"`
	ButtonText  sql.NullString `json:"button_text"`
	ButtonLink  sql.NullString `json:"button_link"`
	SortOrder   int64          `json:"sort_order"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Category represents a product category.
type Category struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description sql.NullString `json:"description"`
	SortOrder   int64          `json:"sort_order"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Product represents a catalog product.
type Product struct {
	ID             int64           `json:"id"`
	CategoryID     sql.NullInt64   `json:"category_id"`
	Name           string          `json:"name"`
	Description    sql.NullString  `json:"description"`
	Specifications sql.NullString  `json:"specifications"`
	Price          sql.NullFloat64 `json:"price"`
	ImageURL       sql.NullString  `json:"image_url"`
	SortOrder      int64           `json:"sort_order"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// StaticPage represents an editable content page addressed by slug.
type StaticPage struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
