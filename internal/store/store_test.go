package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/starleap/starleap-go/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "starleap-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func createTestAdmin(t *testing.T, q *Queries, email string) model.Admin {
	t.Helper()

	now := time.Now()
	admin, err := q.CreateAdmin(context.Background(), CreateAdminParams{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test Admin",
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	return admin
}

func TestCreateAdmin(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	admin, err := q.CreateAdmin(ctx, CreateAdminParams{
		Email:        "test@example.com",
		PasswordHash: "hashed-password",
		Name:         "Test Admin",
		Role:         model.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	if admin.ID == 0 {
		t.Error("admin.ID should not be 0")
	}
	if admin.Email != "test@example.com" {
		t.Errorf("Email = %q, want %q", admin.Email, "test@example.com")
	}
	if admin.Role != model.RoleSuperAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, model.RoleSuperAdmin)
	}
	if !admin.IsActive {
		t.Error("IsActive should be true")
	}
}

func TestCreateAdmin_Inactive(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	admin, err := q.CreateAdmin(ctx, CreateAdminParams{
		Email:        "inactive@example.com",
		PasswordHash: "hash",
		Name:         "Inactive Admin",
		Role:         model.RoleAdmin,
		IsActive:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if admin.IsActive {
		t.Error("IsActive should be false")
	}

	found, err := q.GetAdminByEmail(ctx, "inactive@example.com")
	if err != nil {
		t.Fatalf("GetAdminByEmail: %v", err)
	}
	if found.IsActive {
		t.Error("stored IsActive should be false")
	}
}

func TestCreateAdmin_DuplicateEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := New(db)
	createTestAdmin(t, q, "dup@example.com")

	now := time.Now()
	_, err := q.CreateAdmin(context.Background(), CreateAdminParams{
		Email:        "dup@example.com",
		PasswordHash: "hash",
		Name:         "Duplicate",
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == nil {
		t.Error("expected unique constraint error for duplicate email")
	}
}

func TestGetAdminByEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	created := createTestAdmin(t, q, "find@example.com")

	found, err := q.GetAdminByEmail(ctx, "find@example.com")
	if err != nil {
		t.Fatalf("GetAdminByEmail: %v", err)
	}

	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}
}

func TestGetAdminByEmail_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := New(db)
	_, err := q.GetAdminByEmail(context.Background(), "nonexistent@example.com")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGetActiveAdminByID_Inactive(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	created := createTestAdmin(t, q, "inactive@example.com")

	if err := q.SetAdminActive(ctx, created.ID, false); err != nil {
		t.Fatalf("SetAdminActive: %v", err)
	}

	_, err := q.GetActiveAdminByID(ctx, created.ID)
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows for inactive admin, got %v", err)
	}

	// Plain lookup still finds the row.
	found, err := q.GetAdminByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAdminByID: %v", err)
	}
	if found.IsActive {
		t.Error("IsActive should be false")
	}
}

func TestUpdateAdminPassword(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	created := createTestAdmin(t, q, "pw@example.com")

	err := q.UpdateAdminPassword(ctx, UpdateAdminPasswordParams{
		ID:           created.ID,
		PasswordHash: "new-hash",
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateAdminPassword: %v", err)
	}

	found, err := q.GetAdminByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAdminByID: %v", err)
	}
	if found.PasswordHash != "new-hash" {
		t.Errorf("PasswordHash = %q, want %q", found.PasswordHash, "new-hash")
	}
}

func TestUpdateAdminLastLogin(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	created := createTestAdmin(t, q, "login@example.com")

	loginTime := time.Now()
	err := q.UpdateAdminLastLogin(ctx, UpdateAdminLastLoginParams{
		ID:          created.ID,
		LastLoginAt: sql.NullTime{Time: loginTime, Valid: true},
	})
	if err != nil {
		t.Fatalf("UpdateAdminLastLogin: %v", err)
	}

	found, err := q.GetAdminByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAdminByID: %v", err)
	}
	if !found.LastLoginAt.Valid {
		t.Error("LastLoginAt should be valid after login")
	}
}

func TestListAdmins(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := New(db)
	for i := 0; i < 3; i++ {
		createTestAdmin(t, q, fmt.Sprintf("admin%d@example.com", i))
	}

	admins, err := q.ListAdmins(context.Background())
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 3 {
		t.Errorf("len(admins) = %d, want 3", len(admins))
	}
}

func TestSeed(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	err := Seed(ctx, db, SeedParams{
		Email:    "root@starleap.test",
		Password: "bootstrap-secret",
		Name:     "Root",
	})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	admin, err := q.GetAdminByEmail(ctx, "root@starleap.test")
	if err != nil {
		t.Fatalf("GetAdminByEmail: %v", err)
	}
	if admin.Role != model.RoleSuperAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, model.RoleSuperAdmin)
	}
	if !admin.IsActive {
		t.Error("seeded admin should be active")
	}

	// Second seed should skip without error or duplicate.
	err = Seed(ctx, db, SeedParams{
		Email:    "root@starleap.test",
		Password: "bootstrap-secret",
		Name:     "Root",
	})
	if err != nil {
		t.Fatalf("Second Seed: %v", err)
	}

	admins, err := q.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 1 {
		t.Errorf("len(admins) = %d, want 1 (seed should skip if exists)", len(admins))
	}
}

func TestSeed_Defaults(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := Seed(ctx, db, SeedParams{}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	admin, err := q.GetAdminByEmail(ctx, DefaultAdminEmail)
	if err != nil {
		t.Fatalf("GetAdminByEmail: %v", err)
	}
	if admin.Name != DefaultAdminName {
		t.Errorf("Name = %q, want %q", admin.Name, DefaultAdminName)
	}
}

// Media tests

func TestCreateMedia(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	media, err := q.CreateMedia(ctx, CreateMediaParams{
		FileName:    "image-1757000000000-123456789.png",
		FilePath:    "/uploads/image-1757000000000-123456789.png",
		FileType:    model.MimeTypePNG,
		Size:        2048,
		Description: "Hero banner",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateMedia: %v", err)
	}

	if media.ID == 0 {
		t.Error("media.ID should not be 0")
	}
	if media.FilePath != "/uploads/image-1757000000000-123456789.png" {
		t.Errorf("FilePath = %q", media.FilePath)
	}
	if media.Size != 2048 {
		t.Errorf("Size = %d, want 2048", media.Size)
	}
}

func TestListMedia_NewestFirst(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		_, err := q.CreateMedia(ctx, CreateMediaParams{
			FileName:  fmt.Sprintf("file-%d.png", i),
			FilePath:  fmt.Sprintf("/uploads/file-%d.png", i),
			FileType:  model.MimeTypePNG,
			Size:      100,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
		if err != nil {
			t.Fatalf("CreateMedia: %v", err)
		}
	}

	items, err := q.ListMedia(ctx, ListMediaParams{Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("ListMedia: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[0].FileName != "file-2.png" {
		t.Errorf("first item = %q, want newest file-2.png", items[0].FileName)
	}

	count, err := q.CountMedia(ctx)
	if err != nil {
		t.Fatalf("CountMedia: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestDeleteMedia(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	media, err := q.CreateMedia(ctx, CreateMediaParams{
		FileName:  "doomed.png",
		FilePath:  "/uploads/doomed.png",
		FileType:  model.MimeTypePNG,
		Size:      1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateMedia: %v", err)
	}

	if err := q.DeleteMedia(ctx, media.ID); err != nil {
		t.Fatalf("DeleteMedia: %v", err)
	}

	_, err = q.GetMediaByID(ctx, media.ID)
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
}

// Carousel tests

func TestCarouselCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	created, err := q.CreateCarousel(ctx, CreateCarouselParams{
		Title:      "Spring Sale",
		ImageURL:   "/uploads/image-1-2.png",
		ButtonText: sql.NullString{String: "Shop Now", Valid: true},
		ButtonLink: sql.NullString{String: "/products", Valid: true},
		SortOrder:  1,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("CreateCarousel: %v", err)
	}
	if created.ID == 0 {
		t.Error("created.ID should not be 0")
	}

	updated, err := q.UpdateCarousel(ctx, UpdateCarouselParams{
		ID:        created.ID,
		Title:     "Summer Sale",
		ImageURL:  created.ImageURL,
		SortOrder: 2,
		IsActive:  false,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateCarousel: %v", err)
	}
	if updated.Title != "Summer Sale" {
		t.Errorf("Title = %q, want %q", updated.Title, "Summer Sale")
	}
	if updated.IsActive {
		t.Error("IsActive should be false after update")
	}

	// Inactive slides drop out of the public listing.
	active, err := q.ListCarousels(ctx, true)
	if err != nil {
		t.Fatalf("ListCarousels: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("len(active) = %d, want 0", len(active))
	}

	all, err := q.ListCarousels(ctx, false)
	if err != nil {
		t.Fatalf("ListCarousels all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("len(all) = %d, want 1", len(all))
	}

	if err := q.DeleteCarousel(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCarousel: %v", err)
	}
	if _, err := q.GetCarouselByID(ctx, created.ID); err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
}

func TestListCarousels_SortOrder(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	for _, order := range []int64{3, 1, 2} {
		_, err := q.CreateCarousel(ctx, CreateCarouselParams{
			Title:     fmt.Sprintf("Slide %d", order),
			ImageURL:  "/uploads/slide.png",
			SortOrder: order,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			t.Fatalf("CreateCarousel: %v", err)
		}
	}

	slides, err := q.ListCarousels(ctx, true)
	if err != nil {
		t.Fatalf("ListCarousels: %v", err)
	}
	if len(slides) != 3 {
		t.Fatalf("len(slides) = %d, want 3", len(slides))
	}
	for i, want := range []int64{1, 2, 3} {
		if slides[i].SortOrder != want {
			t.Errorf("slides[%d].SortOrder = %d, want %d", i, slides[i].SortOrder, want)
		}
	}
}

// Category and product tests

func TestCategoryCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	created, err := q.CreateCategory(ctx, CreateCategoryParams{
		Name:      "Lighting",
		SortOrder: 1,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	updated, err := q.UpdateCategory(ctx, UpdateCategoryParams{
		ID:        created.ID,
		Name:      "LED Lighting",
		SortOrder: 1,
		IsActive:  true,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if updated.Name != "LED Lighting" {
		t.Errorf("Name = %q, want %q", updated.Name, "LED Lighting")
	}

	cats, err := q.ListCategories(ctx, true)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 1 {
		t.Errorf("len(cats) = %d, want 1", len(cats))
	}
}

func TestProductCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	cat, err := q.CreateCategory(ctx, CreateCategoryParams{
		Name:      "Panels",
		SortOrder: 0,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	created, err := q.CreateProduct(ctx, CreateProductParams{
		CategoryID: sql.NullInt64{Int64: cat.ID, Valid: true},
		Name:       "LED Panel 600",
		Price:      sql.NullFloat64{Float64: 49.99, Valid: true},
		SortOrder:  1,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if created.ID == 0 {
		t.Error("created.ID should not be 0")
	}

	// Filtered list by category
	products, err := q.ListProducts(ctx, ListProductsParams{
		CategoryID: sql.NullInt64{Int64: cat.ID, Valid: true},
		ActiveOnly: true,
	})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("len(products) = %d, want 1", len(products))
	}

	// Other category filter excludes it
	none, err := q.ListProducts(ctx, ListProductsParams{
		CategoryID: sql.NullInt64{Int64: cat.ID + 100, Valid: true},
	})
	if err != nil {
		t.Fatalf("ListProducts other: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("len(none) = %d, want 0", len(none))
	}

	updated, err := q.UpdateProduct(ctx, UpdateProductParams{
		ID:         created.ID,
		CategoryID: created.CategoryID,
		Name:       "LED Panel 1200",
		Price:      sql.NullFloat64{Float64: 89.99, Valid: true},
		SortOrder:  1,
		IsActive:   true,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "LED Panel 1200" {
		t.Errorf("Name = %q, want %q", updated.Name, "LED Panel 1200")
	}

	if err := q.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if _, err := q.GetProductByID(ctx, created.ID); err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
}

func TestDeleteCategory_DetachesProducts(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	cat, err := q.CreateCategory(ctx, CreateCategoryParams{
		Name:      "Doomed",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	prod, err := q.CreateProduct(ctx, CreateProductParams{
		CategoryID: sql.NullInt64{Int64: cat.ID, Valid: true},
		Name:       "Orphan",
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if err := q.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	found, err := q.GetProductByID(ctx, prod.ID)
	if err != nil {
		t.Fatalf("GetProductByID: %v", err)
	}
	if found.CategoryID.Valid {
		t.Error("CategoryID should be NULL after category delete")
	}
}

// Static page tests

func TestStaticPageCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	created, err := q.CreateStaticPage(ctx, CreateStaticPageParams{
		Slug:      "about-us",
		Title:     "About Us",
		Content:   "<p>Hello</p>",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateStaticPage: %v", err)
	}

	found, err := q.GetStaticPageBySlug(ctx, "about-us")
	if err != nil {
		t.Fatalf("GetStaticPageBySlug: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}

	updated, err := q.UpdateStaticPage(ctx, UpdateStaticPageParams{
		ID:        created.ID,
		Slug:      "about",
		Title:     "About",
		Content:   "<p>Updated</p>",
		IsActive:  true,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("UpdateStaticPage: %v", err)
	}
	if updated.Slug != "about" {
		t.Errorf("Slug = %q, want %q", updated.Slug, "about")
	}

	if err := q.DeleteStaticPage(ctx, created.ID); err != nil {
		t.Fatalf("DeleteStaticPage: %v", err)
	}
	if _, err := q.GetStaticPageByID(ctx, created.ID); err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
}

func TestCreateStaticPage_DuplicateSlug(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	_, err := q.CreateStaticPage(ctx, CreateStaticPageParams{
		Slug: "terms", Title: "Terms", Content: "x", IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateStaticPage: %v", err)
	}

	n, err := q.CountStaticPagesBySlug(ctx, "terms")
	if err != nil {
		t.Fatalf("CountStaticPagesBySlug: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	_, err = q.CreateStaticPage(ctx, CreateStaticPageParams{
		Slug: "terms", Title: "Terms 2", Content: "y", IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	})
	if err == nil {
		t.Error("expected unique constraint error for duplicate slug")
	}
}

// Event tests

func TestEvents(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	for i, level := range []string{model.EventLevelInfo, model.EventLevelWarning, model.EventLevelError} {
		err := q.CreateEvent(ctx, CreateEventParams{
			Level:     level,
			Category:  model.EventCategoryAuth,
			Message:   fmt.Sprintf("event %d", i),
			Metadata:  "{}",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	events, err := q.ListEvents(ctx, ListEventsParams{Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	if events[0].Message != "event 2" {
		t.Errorf("first event = %q, want newest event 2", events[0].Message)
	}

	warnings, err := q.ListEvents(ctx, ListEventsParams{
		Level: model.EventLevelWarning,
		Limit: 10,
	})
	if err != nil {
		t.Fatalf("ListEvents filtered: %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("len(warnings) = %d, want 1", len(warnings))
	}

	count, err := q.CountEvents(ctx, CountEventsParams{Category: model.EventCategoryAuth})
	if err != nil {
		t.Fatalf("CountEvents: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestPruneEvents(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now()
	for _, ts := range []time.Time{old, old, recent} {
		err := q.CreateEvent(ctx, CreateEventParams{
			Level:     model.EventLevelInfo,
			Category:  model.EventCategorySystem,
			Message:   "tick",
			Metadata:  "{}",
			CreatedAt: ts,
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	pruned, err := q.PruneEvents(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("PruneEvents: %v", err)
	}
	if pruned != 2 {
		t.Errorf("pruned = %d, want 2", pruned)
	}

	count, err := q.CountEvents(ctx, CountEventsParams{})
	if err != nil {
		t.Fatalf("CountEvents: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
