// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/starleap/starleap-go/internal/auth"
	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/store"
)

// Admin service errors. Handlers map these to response statuses.
var (
	ErrDuplicateEmail     = errors.New("admin already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrIncorrectPassword  = errors.New("incorrect old password")
)

// AdminService manages admin accounts and credential checks.
type AdminService struct {
	db     *sql.DB
	events *EventService
}

// NewAdminService creates a new AdminService.
func NewAdminService(db *sql.DB, events *EventService) *AdminService {
	return &AdminService{db: db, events: events}
}

// CreateAdminParams holds the input for creating an admin account.
type CreateAdminParams struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// Create validates the input, hashes the password, and persists a new
// active admin account.
func (s *AdminService) Create(ctx context.Context, arg CreateAdminParams) (model.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(arg.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return model.Admin{}, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if arg.Password == "" {
		return model.Admin{}, fmt.Errorf("%w: password is required", ErrValidation)
	}
	role := arg.Role
	if role == "" {
		role = model.RoleAdmin
	}
	if !model.IsValidRole(role) {
		return model.Admin{}, fmt.Errorf("%w: invalid role", ErrValidation)
	}

	queries := store.New(s.db)
	if _, err := queries.GetAdminByEmail(ctx, email); err == nil {
		return model.Admin{}, ErrDuplicateEmail
	} else if err != sql.ErrNoRows {
		return model.Admin{}, fmt.Errorf("checking for existing admin: %w", err)
	}

	passwordHash, err := auth.HashPassword(arg.Password)
	if err != nil {
		return model.Admin{}, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	admin, err := queries.CreateAdmin(ctx, store.CreateAdminParams{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         arg.Name,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.Admin{}, fmt.Errorf("creating admin: %w", err)
	}

	s.logAuth(ctx, model.EventLevelInfo, "admin account created", &admin.ID,
		map[string]any{"email": admin.Email, "role": admin.Role})

	return admin, nil
}

// Authenticate checks the credentials and returns the matching active
// admin. A wrong email and a wrong password are indistinguishable to the
// caller. The password is silently rehashed when the stored parameters
// are stale, and the last login time is recorded.
func (s *AdminService) Authenticate(ctx context.Context, email, password string) (model.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	queries := store.New(s.db)

	admin, err := queries.GetAdminByEmail(ctx, email)
	if err == sql.ErrNoRows {
		s.logAuth(ctx, model.EventLevelWarning, "login failed: unknown email", nil,
			map[string]any{"email": email})
		return model.Admin{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.Admin{}, fmt.Errorf("looking up admin: %w", err)
	}

	// The active flag is checked before the password so a disabled account
	// gets a distinct response even with wrong credentials.
	if !admin.IsActive {
		s.logAuth(ctx, model.EventLevelWarning, "login rejected: account disabled", &admin.ID, nil)
		return model.Admin{}, ErrAccountDisabled
	}

	// A malformed stored hash counts as a failed check, not a server fault.
	ok, err := auth.CheckPassword(password, admin.PasswordHash)
	if err != nil || !ok {
		s.logAuth(ctx, model.EventLevelWarning, "login failed: wrong password", &admin.ID, nil)
		return model.Admin{}, ErrInvalidCredentials
	}

	if auth.NeedsRehash(admin.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := queries.UpdateAdminPassword(ctx, store.UpdateAdminPasswordParams{
				ID:           admin.ID,
				PasswordHash: newHash,
				UpdatedAt:    time.Now(),
			}); err != nil {
				slog.Warn("failed to rehash password", "admin_id", admin.ID, "error", err)
			}
		}
	}

	now := time.Now()
	if err := queries.UpdateAdminLastLogin(ctx, store.UpdateAdminLastLoginParams{
		ID:          admin.ID,
		LastLoginAt: sql.NullTime{Time: now, Valid: true},
	}); err != nil {
		slog.Warn("failed to record last login", "admin_id", admin.ID, "error", err)
	}
	admin.LastLoginAt = sql.NullTime{Time: now, Valid: true}

	s.logAuth(ctx, model.EventLevelInfo, "admin logged in", &admin.ID, nil)

	return admin, nil
}

// UpdatePassword verifies the old password and persists a hash of the
// new one. Outstanding session tokens remain valid until expiry.
func (s *AdminService) UpdatePassword(ctx context.Context, adminID int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	queries := store.New(s.db)
	admin, err := queries.GetAdminByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("looking up admin: %w", err)
	}

	ok, err := auth.CheckPassword(oldPassword, admin.PasswordHash)
	if err != nil || !ok {
		return ErrIncorrectPassword
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := queries.UpdateAdminPassword(ctx, store.UpdateAdminPasswordParams{
		ID:           admin.ID,
		PasswordHash: passwordHash,
		UpdatedAt:    time.Now(),
	}); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	s.logAuth(ctx, model.EventLevelInfo, "admin password changed", &admin.ID, nil)

	return nil
}

func (s *AdminService) logAuth(ctx context.Context, level, message string, adminID *int64, metadata map[string]any) {
	if s.events == nil {
		return
	}
	_ = s.events.LogAuthEvent(ctx, level, message, adminID, metadata)
}
