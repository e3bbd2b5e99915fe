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
// Carousels
// -----------------------------------------------------------------------------

const carouselColumns = `id, title, description, image_url, button_text, button_link, sort_order, is_active, created_at, updated_at`

func scanCarousel(row *sql.Row) (model.Carousel, error) {
	var c model.Carousel
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.ButtonText,
		&c.ButtonLink, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CreateCarouselParams holds the fields for creating a carousel slide.
type CreateCarouselParams struct {
	Title       string
	Description sql.NullString
	ImageURL    string
	ButtonText  sql.NullString
	ButtonLink  sql.NullString
	SortOrder   int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateCarousel inserts a new carousel slide and returns it.
func (q *Queries) CreateCarousel(ctx context.Context, arg CreateCarouselParams) (model.Carousel, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO carousels (title, description, image_url, button_text, button_link, sort_order, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+carouselColumns,
		arg.Title, arg.Description, arg.ImageURL, arg.ButtonText, arg.ButtonLink,
		arg.SortOrder, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	return scanCarousel(row)
}

// GetCarouselByID returns the carousel slide with the given ID.
func (q *Queries) GetCarouselByID(ctx context.Context, id int64) (model.Carousel, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+carouselColumns+` FROM carousels WHERE id = ?`, id)
	return scanCarousel(row)
}

// ListCarousels returns carousel slides ordered for display. When activeOnly
// is true, inactive slides are filtered out.
func (q *Queries) ListCarousels(ctx context.Context, activeOnly bool) ([]model.Carousel, error) {
	query := `SELECT ` + carouselColumns + ` FROM carousels`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carousels []model.Carousel
	for rows.Next() {
		var c model.Carousel
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.ButtonText,
			&c.ButtonLink, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		carousels = append(carousels, c)
	}
	return carousels, rows.Err()
}

// UpdateCarouselParams holds the fields for updating a carousel slide.
type UpdateCarouselParams struct {
	ID          int64
	Title       string
	Description sql.NullString
	ImageURL    string
	ButtonText  sql.NullString
	ButtonLink  sql.NullString
	SortOrder   int64
	IsActive    bool
	UpdatedAt   time.Time
}

// UpdateCarousel updates a carousel slide and returns the new row.
func (q *Queries) UpdateCarousel(ctx context.Context, arg UpdateCarouselParams) (model.Carousel, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE carousels SET title = ?, description = ?, image_url = ?, button_text = ?,
		 button_link = ?, sort_order = ?, is_active = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+carouselColumns,
		arg.Title, arg.Description, arg.ImageURL, arg.ButtonText, arg.ButtonLink,
		arg.SortOrder, arg.IsActive, arg.UpdatedAt, arg.ID)
	return scanCarousel(row)
}

// DeleteCarousel removes a carousel slide.
func (q *Queries) DeleteCarousel(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM carousels WHERE id = ?`, id)
	return err
}

// -----------------------------------------------------------------------------
// Categories
// -----------------------------------------------------------------------------

const categoryColumns = `id, name, description, sort_order, is_active, created_at, updated_at`

func scanCategory(row *sql.Row) (model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CreateCategoryParams holds the fields for creating a category.
type CreateCategoryParams struct {
	Name        string
	Description sql.NullString
	SortOrder   int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateCategory inserts a new category and returns it.
func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) (model.Category, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, description, sort_order, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING `+categoryColumns,
		arg.Name, arg.Description, arg.SortOrder, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	return scanCategory(row)
}

// GetCategoryByID returns the category with the given ID.
func (q *Queries) GetCategoryByID(ctx context.Context, id int64) (model.Category, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)
	return scanCategory(row)
}

// ListCategories returns categories ordered for display.
func (q *Queries) ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UpdateCategoryParams holds the fields for updating a category.
type UpdateCategoryParams struct {
	ID          int64
	Name        string
	Description sql.NullString
	SortOrder   int64
	IsActive    bool
	UpdatedAt   time.Time
}

// UpdateCategory updates a category and returns the new row.
func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) (model.Category, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE categories SET name = ?, description = ?, sort_order = ?, is_active = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+categoryColumns,
		arg.Name, arg.Description, arg.SortOrder, arg.IsActive, arg.UpdatedAt, arg.ID)
	return scanCategory(row)
}

// DeleteCategory removes a category. Products referencing it keep their rows
// with category_id set NULL by the foreign key.
func (q *Queries) DeleteCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	return err
}

// -----------------------------------------------------------------------------
// Products
// -----------------------------------------------------------------------------

const productColumns = `id, category_id, name, description, specifications, price, image_url, sort_order, is_active, created_at, updated_at`

func scanProduct(row *sql.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Specifications,
		&p.Price, &p.ImageURL, &p.SortOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreateProductParams holds the fields for creating a product.
type CreateProductParams struct {
	CategoryID     sql.NullInt64
	Name           string
	Description    sql.NullString
	Specifications sql.NullString
	Price          sql.NullFloat64
	ImageURL       sql.NullString
	SortOrder      int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateProduct inserts a new product and returns it.
func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (model.Product, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO products (category_id, name, description, specifications, price, image_url, sort_order, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+productColumns,
		arg.CategoryID, arg.Name, arg.Description, arg.Specifications, arg.Price,
		arg.ImageURL, arg.SortOrder, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	return scanProduct(row)
}

// GetProductByID returns the product with the given ID.
func (q *Queries) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	return scanProduct(row)
}

// ListProductsParams holds filter options for listing products.
type ListProductsParams struct {
	CategoryID sql.NullInt64
	ActiveOnly bool
}

// ListProducts returns products ordered for display, optionally filtered by
// category and active flag.
func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any
	if arg.CategoryID.Valid {
		query += ` AND category_id = ?`
		args = append(args, arg.CategoryID.Int64)
	}
	if arg.ActiveOnly {
		query += ` AND is_active = 1`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Specifications,
			&p.Price, &p.ImageURL, &p.SortOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// UpdateProductParams holds the fields for updating a product.
type UpdateProductParams struct {
	ID             int64
	CategoryID     sql.NullInt64
	Name           string
	Description    sql.NullString
	Specifications sql.NullString
	Price          sql.NullFloat64
	ImageURL       sql.NullString
	SortOrder      int64
	IsActive       bool
	UpdatedAt      time.Time
}

// UpdateProduct updates a product and returns the new row.
func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (model.Product, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE products SET category_id = ?, name = ?, description = ?, specifications = ?,
		 price = ?, image_url = ?, sort_order = ?, is_active = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+productColumns,
		arg.CategoryID, arg.Name, arg.Description, arg.Specifications, arg.Price,
		arg.ImageURL, arg.SortOrder, arg.IsActive, arg.UpdatedAt, arg.ID)
	return scanProduct(row)
}

// DeleteProduct removes a product.
func (q *Queries) DeleteProduct(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

// -----------------------------------------------------------------------------
// Static pages
// -----------------------------------------------------------------------------

const staticPageColumns = `id, slug, title, content, is_active, created_at, updated_at`

func scanStaticPage(row *sql.Row) (model.StaticPage, error) {
	var p model.StaticPage
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreateStaticPageParams holds the fields for creating a static page.
type CreateStaticPageParams struct {
	Slug      string
	Title     string
	Content   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateStaticPage inserts a new static page and returns it.
// The unique index on slug surfaces duplicates as a constraint error.
func (q *Queries) CreateStaticPage(ctx context.Context, arg CreateStaticPageParams) (model.StaticPage, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO static_pages (slug, title, content, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING `+staticPageColumns,
		arg.Slug, arg.Title, arg.Content, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	return scanStaticPage(row)
}

// GetStaticPageByID returns the static page with the given ID.
func (q *Queries) GetStaticPageByID(ctx context.Context, id int64) (model.StaticPage, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+staticPageColumns+` FROM static_pages WHERE id = ?`, id)
	return scanStaticPage(row)
}

// GetStaticPageBySlug returns the static page with the given slug.
func (q *Queries) GetStaticPageBySlug(ctx context.Context, slug string) (model.StaticPage, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+staticPageColumns+` FROM static_pages WHERE slug = ?`, slug)
	return scanStaticPage(row)
}

// ListStaticPages returns static pages ordered by title.
func (q *Queries) ListStaticPages(ctx context.Context, activeOnly bool) ([]model.StaticPage, error) {
	query := `SELECT ` + staticPageColumns + ` FROM static_pages`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY title ASC`

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []model.StaticPage
	for rows.Next() {
		var p model.StaticPage
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// UpdateStaticPageParams holds the fields for updating a static page.
type UpdateStaticPageParams struct {
	ID        int64
	Slug      string
	Title     string
	Content   string
	IsActive  bool
	UpdatedAt time.Time
}

// UpdateStaticPage updates a static page and returns the new row.
func (q *Queries) UpdateStaticPage(ctx context.Context, arg UpdateStaticPageParams) (model.StaticPage, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE static_pages SET slug = ?, title = ?, content = ?, is_active = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+staticPageColumns,
		arg.Slug, arg.Title, arg.Content, arg.IsActive, arg.UpdatedAt, arg.ID)
	return scanStaticPage(row)
}

// DeleteStaticPage removes a static page.
func (q *Queries) DeleteStaticPage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM static_pages WHERE id = ?`, id)
	return err
}

// CountStaticPagesBySlug counts pages with the given slug, used for
// uniqueness checks before insert.
func (q *Queries) CountStaticPagesBySlug(ctx context.Context, slug string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM static_pages WHERE slug = ?`, slug).Scan(&n)
	return n, err
}
