// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/starleap/starleap-go/internal/middleware"
	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/service"
	"github.com/starleap/starleap-go/internal/store"
	"github.com/starleap/starleap-go/internal/util"
)

// pageContentPolicy sanitizes static page HTML before it is stored.
var pageContentPolicy = bluemonday.UGCPolicy()

func (h *Handler) logCatalog(r *http.Request, message string, metadata map[string]any) {
	if h.events == nil {
		return
	}
	_ = h.events.LogCatalogEvent(r.Context(), model.EventLevelInfo, message,
		middleware.GetAdminIDPtr(r), metadata)
}

// -----------------------------------------------------------------------------
// Carousels
// -----------------------------------------------------------------------------

// CarouselResponse represents a carousel slide in API responses.
type CarouselResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	ButtonText  *string   `json:"button_text,omitempty"`
	ButtonLink  *string   `json:"button_link,omitempty"`
	SortOrder   int64     `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func carouselToResponse(c model.Carousel) CarouselResponse {
	return CarouselResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: util.PtrFromNullString(c.Description),
		ImageURL:    c.ImageURL,
		ButtonText:  util.PtrFromNullString(c.ButtonText),
		ButtonLink:  util.PtrFromNullString(c.ButtonLink),
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ListCarousels handles GET /carousels. Public; pass active=true to get
// only slides shown on the site.
func (h *Handler) ListCarousels(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	carousels, err := h.queries.ListCarousels(r.Context(), activeOnly)
	if err != nil {
		WriteInternalError(w, "Failed to list carousel items")
		return
	}

	responses := make([]CarouselResponse, 0, len(carousels))
	for _, c := range carousels {
		responses = append(responses, carouselToResponse(c))
	}
	WriteSuccess(w, responses, nil)
}

// GetCarousel handles GET /carousels/{id}.
func (h *Handler) GetCarousel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	carousel, ok := requireEntityByID(w, r, "carousel item", func(id int64) (model.Carousel, error) {
		return h.queries.GetCarouselByID(ctx, id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, carouselToResponse(carousel), nil)
}

// carouselForm reads the multipart fields shared by create and update.
// The image may arrive as an uploaded file under field "image" or as an
// already-stored reference in "existing_image".
func (h *Handler) carouselForm(w http.ResponseWriter, r *http.Request) (store.CreateCarouselParams, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.media.MaxSize()+1<<20)
	if err := r.ParseMultipartForm(h.media.MaxSize()); err != nil {
		WriteBadRequest(w, "Failed to parse multipart form", nil)
		return store.CreateCarouselParams{}, "", false
	}

	var imageURL string
	if file, header, err := r.FormFile("image"); err == nil {
		defer func() { _ = file.Close() }()
		stored, err := h.media.Store(file, header, "image", service.ImagePipeline())
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidFileType):
				WriteBadRequest(w, "Invalid file type", nil)
			case errors.Is(err, service.ErrFileTooLarge):
				WriteBadRequest(w, "File too large", nil)
			default:
				slog.Error("carousel image upload failed", "error", err)
				WriteInternalError(w, "Upload failed")
			}
			return store.CreateCarouselParams{}, "", false
		}
		imageURL = stored.FilePath
	} else if existing := r.FormValue("existing_image"); existing != "" {
		imageURL = existing
	}

	sortOrder, _ := strconv.ParseInt(r.FormValue("sortOrder"), 10, 64)

	return store.CreateCarouselParams{
		Title:       r.FormValue("title"),
		Description: util.NullStringFromValue(r.FormValue("description")),
		ButtonText:  util.NullStringFromValue(r.FormValue("buttonText")),
		ButtonLink:  util.NullStringFromValue(r.FormValue("buttonLink")),
		SortOrder:   sortOrder,
		IsActive:    r.FormValue("isActive") == "true",
	}, imageURL, true
}

// CreateCarousel handles POST /carousels. The image is required, either
// as an uploaded file or as an existing stored reference.
func (h *Handler) CreateCarousel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, imageURL, ok := h.carouselForm(w, r)
	if !ok {
		return
	}
	if imageURL == "" {
		WriteBadRequest(w, "Image is required", nil)
		return
	}

	now := time.Now()
	params.ImageURL = imageURL
	params.CreatedAt = now
	params.UpdatedAt = now

	carousel, err := h.queries.CreateCarousel(ctx, params)
	if err != nil {
		slog.Error("failed to create carousel item", "error", err)
		WriteInternalError(w, "Failed to create carousel item")
		return
	}

	h.logCatalog(r, "carousel item created", map[string]any{"carousel_id": carousel.ID})
	WriteCreated(w, carouselToResponse(carousel))
}

// UpdateCarousel handles PUT /carousels/{id}. A missing image keeps the
// current one; replaced images stay on disk for other references.
func (h *Handler) UpdateCarousel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, ok := requireEntityByID(w, r, "carousel item", func(id int64) (model.Carousel, error) {
		return h.queries.GetCarouselByID(ctx, id)
	})
	if !ok {
		return
	}

	params, imageURL, ok := h.carouselForm(w, r)
	if !ok {
		return
	}
	if imageURL == "" {
		imageURL = existing.ImageURL
	}

	carousel, err := h.queries.UpdateCarousel(ctx, store.UpdateCarouselParams{
		ID:          existing.ID,
		Title:       params.Title,
		Description: params.Description,
		ImageURL:    imageURL,
		ButtonText:  params.ButtonText,
		ButtonLink:  params.ButtonLink,
		SortOrder:   params.SortOrder,
		IsActive:    params.IsActive,
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		slog.Error("failed to update carousel item", "carousel_id", existing.ID, "error", err)
		WriteInternalError(w, "Failed to update carousel item")
		return
	}

	h.logCatalog(r, "carousel item updated", map[string]any{"carousel_id": carousel.ID})
	WriteSuccess(w, carouselToResponse(carousel), nil)
}

// DeleteCarousel handles DELETE /carousels/{id}. The slide's image file
// is unlinked best-effort.
func (h *Handler) DeleteCarousel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	carousel, ok := requireEntityByID(w, r, "carousel item", func(id int64) (model.Carousel, error) {
		return h.queries.GetCarouselByID(ctx, id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteCarousel(ctx, carousel.ID); err != nil {
		slog.Error("failed to delete carousel item", "carousel_id", carousel.ID, "error", err)
		WriteInternalError(w, "Failed to delete carousel item")
		return
	}
	h.media.Remove(carousel.ImageURL)

	h.logCatalog(r, "carousel item deleted", map[string]any{"carousel_id": carousel.ID})
	WriteSuccess(w, map[string]string{"message": "Carousel item deleted"}, nil)
}

// -----------------------------------------------------------------------------
// Categories
// -----------------------------------------------------------------------------

// CategoryResponse represents a product category in API responses.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	SortOrder   int64     `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func categoryToResponse(c model.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: util.PtrFromNullString(c.Description),
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CategoryRequest is the request body for creating or updating a category.
type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	SortOrder   int64   `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

// ListCategories handles GET /categories. Public; active categories only
// unless all=true is passed.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	categories, err := h.queries.ListCategories(r.Context(), activeOnly)
	if err != nil {
		WriteInternalError(w, "Failed to list categories")
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, categoryToResponse(c))
	}
	WriteSuccess(w, responses, nil)
}

// GetCategory handles GET /categories/{id}.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, ok := requireEntityByID(w, r, "category", func(id int64) (model.Category, error) {
		return h.queries.GetCategoryByID(ctx, id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, categoryToResponse(category), nil)
}

// CreateCategory handles POST /categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	now := time.Now()
	category, err := h.queries.CreateCategory(ctx, store.CreateCategoryParams{
		Name:        req.Name,
		Description: util.NullStringFromPtr(req.Description),
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		slog.Error("failed to create category", "error", err)
		WriteInternalError(w, "Failed to create category")
		return
	}

	h.logCatalog(r, "category created", map[string]any{"category_id": category.ID})
	WriteCreated(w, categoryToResponse(category))
}

// UpdateCategory handles PUT /categories/{id}.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, ok := requireEntityByID(w, r, "category", func(id int64) (model.Category, error) {
		return h.queries.GetCategoryByID(ctx, id)
	})
	if !ok {
		return
	}

	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Name == "" {
		req.Name = existing.Name
	}

	isActive := existing.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category, err := h.queries.UpdateCategory(ctx, store.UpdateCategoryParams{
		ID:          existing.ID,
		Name:        req.Name,
		Description: util.NullStringFromPtr(req.Description),
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		slog.Error("failed to update category", "category_id", existing.ID, "error", err)
		WriteInternalError(w, "Failed to update category")
		return
	}

	h.logCatalog(r, "category updated", map[string]any{"category_id": category.ID})
	WriteSuccess(w, categoryToResponse(category), nil)
}

// DeleteCategory handles DELETE /categories/{id}. Products keep their
// rows; the foreign key clears their category reference.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category, ok := requireEntityByID(w, r, "category", func(id int64) (model.Category, error) {
		return h.queries.GetCategoryByID(ctx, id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteCategory(ctx, category.ID); err != nil {
		slog.Error("failed to delete category", "category_id", category.ID, "error", err)
		WriteInternalError(w, "Failed to delete category")
		return
	}

	h.logCatalog(r, "category deleted", map[string]any{"category_id": category.ID})
	WriteSuccess(w, map[string]string{"message": "Category deleted"}, nil)
}

// -----------------------------------------------------------------------------
// Products
// -----------------------------------------------------------------------------

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID             int64     `json:"id"`
	CategoryID     *int64    `json:"category_id,omitempty"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Specifications *string   `json:"specifications,omitempty"`
	Price          *float64  `json:"price,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	SortOrder      int64     `json:"sort_order"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func productToResponse(p model.Product) ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    util.PtrFromNullString(p.Description),
		Specifications: util.PtrFromNullString(p.Specifications),
		ImageURL:       util.PtrFromNullString(p.ImageURL),
		SortOrder:      p.SortOrder,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.CategoryID.Valid {
		resp.CategoryID = &p.CategoryID.Int64
	}
	if p.Price.Valid {
		resp.Price = &p.Price.Float64
	}
	return resp
}

// ProductRequest is the request body for creating or updating a product.
// The image is an already-stored upload reference.
type ProductRequest struct {
	CategoryID     *int64   `json:"categoryId"`
	Name           string   `json:"name"`
	Description    *string  `json:"description"`
	Specifications *string  `json:"specifications"`
	Price          *float64 `json:"price"`
	ImageURL       *string  `json:"imageUrl"`
	SortOrder      int64    `json:"sortOrder"`
	IsActive       *bool    `json:"isActive"`
}

// ListProducts handles GET /products. Public; active products only
// unless all=true. Pass category={id} to filter.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := store.ListProductsParams{
		ActiveOnly: r.URL.Query().Get("all") != "true",
	}
	if s := r.URL.Query().Get("category"); s != "" {
		categoryID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			WriteBadRequest(w, "Invalid category ID", nil)
			return
		}
		params.CategoryID = sql.NullInt64{Int64: categoryID, Valid: true}
	}

	products, err := h.queries.ListProducts(r.Context(), params)
	if err != nil {
		WriteInternalError(w, "Failed to list products")
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, productToResponse(p))
	}
	WriteSuccess(w, responses, nil)
}

// GetProduct handles GET /products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	product, ok := requireEntityByID(w, r, "product", func(id int64) (model.Product, error) {
		return h.queries.GetProductByID(ctx, id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, productToResponse(product), nil)
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	now := time.Now()
	product, err := h.queries.CreateProduct(ctx, store.CreateProductParams{
		CategoryID:     util.NullInt64FromPtr(req.CategoryID),
		Name:           req.Name,
		Description:    util.NullStringFromPtr(req.Description),
		Specifications: util.NullStringFromPtr(req.Specifications),
		Price:          util.NullFloat64FromPtr(req.Price),
		ImageURL:       util.NullStringFromPtr(req.ImageURL),
		SortOrder:      req.SortOrder,
		IsActive:       req.IsActive == nil || *req.IsActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		slog.Error("failed to create product", "error", err)
		WriteInternalError(w, "Failed to create product")
		return
	}

	h.logCatalog(r, "product created", map[string]any{"product_id": product.ID})
	WriteCreated(w, productToResponse(product))
}

// UpdateProduct handles PUT /products/{id}.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, ok := requireEntityByID(w, r, "product", func(id int64) (model.Product, error) {
		return h.queries.GetProductByID(ctx, id)
	})
	if !ok {
		return
	}

	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Name == "" {
		req.Name = existing.Name
	}

	isActive := existing.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product, err := h.queries.UpdateProduct(ctx, store.UpdateProductParams{
		ID:             existing.ID,
		CategoryID:     util.NullInt64FromPtr(req.CategoryID),
		Name:           req.Name,
		Description:    util.NullStringFromPtr(req.Description),
		Specifications: util.NullStringFromPtr(req.Specifications),
		Price:          util.NullFloat64FromPtr(req.Price),
		ImageURL:       util.NullStringFromPtr(req.ImageURL),
		SortOrder:      req.SortOrder,
		IsActive:       isActive,
		UpdatedAt:      time.Now(),
	})
	if err != nil {
		slog.Error("failed to update product", "product_id", existing.ID, "error", err)
		WriteInternalError(w, "Failed to update product")
		return
	}

	h.logCatalog(r, "product updated", map[string]any{"product_id": product.ID})
	WriteSuccess(w, productToResponse(product), nil)
}

// DeleteProduct handles DELETE /products/{id}. The product's image file
// is unlinked best-effort when it points into the upload mount.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	product, ok := requireEntityByID(w, r, "product", func(id int64) (model.Product, error) {
		return h.queries.GetProductByID(ctx, id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteProduct(ctx, product.ID); err != nil {
		slog.Error("failed to delete product", "product_id", product.ID, "error", err)
		WriteInternalError(w, "Failed to delete product")
		return
	}
	if product.ImageURL.Valid {
		h.media.Remove(product.ImageURL.String)
	}

	h.logCatalog(r, "product deleted", map[string]any{"product_id": product.ID})
	WriteSuccess(w, map[string]string{"message": "Product deleted"}, nil)
}

// -----------------------------------------------------------------------------
// Static pages
// -----------------------------------------------------------------------------

// StaticPageRequest is the request body for creating or updating a
// static page. Content is sanitized before storage.
type StaticPageRequest struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive *bool  `json:"isActive"`
}

// ListStaticPages handles GET /static-pages. Public; active pages only
// unless all=true.
func (h *Handler) ListStaticPages(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	pages, err := h.queries.ListStaticPages(r.Context(), activeOnly)
	if err != nil {
		WriteInternalError(w, "Failed to list static pages")
		return
	}
	WriteSuccess(w, pages, nil)
}

// GetStaticPage handles GET /static-pages/{id}.
func (h *Handler) GetStaticPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, ok := requireEntityByID(w, r, "static page", func(id int64) (model.StaticPage, error) {
		return h.queries.GetStaticPageByID(ctx, id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, page, nil)
}

// GetStaticPageBySlug handles GET /static-pages/slug/{slug}.
func (h *Handler) GetStaticPageBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	page, err := h.queries.GetStaticPageBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Static page not found")
		} else {
			WriteInternalError(w, "Failed to retrieve static page")
		}
		return
	}
	WriteSuccess(w, page, nil)
}

// CreateStaticPage handles POST /static-pages. A missing slug is derived
// from the title.
func (h *Handler) CreateStaticPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StaticPageRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Title == "" {
		WriteValidationError(w, map[string]string{"title": "Title is required"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	} else if !util.IsValidSlug(slug) {
		WriteValidationError(w, map[string]string{"slug": "Invalid slug format"})
		return
	}

	count, err := h.queries.CountStaticPagesBySlug(ctx, slug)
	if err != nil {
		WriteInternalError(w, "Failed to check slug")
		return
	}
	if count != 0 {
		WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
		return
	}

	now := time.Now()
	page, err := h.queries.CreateStaticPage(ctx, store.CreateStaticPageParams{
		Slug:      slug,
		Title:     req.Title,
		Content:   pageContentPolicy.Sanitize(req.Content),
		IsActive:  req.IsActive == nil || *req.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("failed to create static page", "error", err)
		WriteInternalError(w, "Failed to create static page")
		return
	}

	h.logCatalog(r, "static page created", map[string]any{"page_id": page.ID, "slug": page.Slug})
	WriteCreated(w, page)
}

// UpdateStaticPage handles PUT /static-pages/{id}.
func (h *Handler) UpdateStaticPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, ok := requireEntityByID(w, r, "static page", func(id int64) (model.StaticPage, error) {
		return h.queries.GetStaticPageByID(ctx, id)
	})
	if !ok {
		return
	}

	var req StaticPageRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = existing.Slug
	} else if !util.IsValidSlug(slug) {
		WriteValidationError(w, map[string]string{"slug": "Invalid slug format"})
		return
	}
	if slug != existing.Slug {
		count, err := h.queries.CountStaticPagesBySlug(ctx, slug)
		if err != nil {
			WriteInternalError(w, "Failed to check slug")
			return
		}
		if count != 0 {
			WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
			return
		}
	}

	title := req.Title
	if title == "" {
		title = existing.Title
	}
	content := existing.Content
	if req.Content != "" {
		content = pageContentPolicy.Sanitize(req.Content)
	}
	isActive := existing.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	page, err := h.queries.UpdateStaticPage(ctx, store.UpdateStaticPageParams{
		ID:        existing.ID,
		Slug:      slug,
		Title:     title,
		Content:   content,
		IsActive:  isActive,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to update static page", "page_id", existing.ID, "error", err)
		WriteInternalError(w, "Failed to update static page")
		return
	}

	h.logCatalog(r, "static page updated", map[string]any{"page_id": page.ID, "slug": page.Slug})
	WriteSuccess(w, page, nil)
}

// DeleteStaticPage handles DELETE /static-pages/{id}.
func (h *Handler) DeleteStaticPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, ok := requireEntityByID(w, r, "static page", func(id int64) (model.StaticPage, error) {
		return h.queries.GetStaticPageByID(ctx, id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteStaticPage(ctx, page.ID); err != nil {
		slog.Error("failed to delete static page", "page_id", page.ID, "error", err)
		WriteInternalError(w, "Failed to delete static page")
		return
	}

	h.logCatalog(r, "static page deleted", map[string]any{"page_id": page.ID, "slug": page.Slug})
	WriteSuccess(w, map[string]string{"message": "Static page deleted"}, nil)
}
