package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/starleap/starleap-go/internal/auth"
	"github.com/starleap/starleap-go/internal/model"
)

// Default bootstrap credentials, used when no seed credentials are configured.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// SeedParams configures the bootstrap super admin.
type SeedParams struct {
	Email    string
	Password string
	Name     string
}

// Seed creates the initial super admin account if no account with the given
// email exists yet. Empty fields fall back to the defaults.
func Seed(ctx context.Context, db *sql.DB, arg SeedParams) error {
	if arg.Email == "" {
		arg.Email = DefaultAdminEmail
	}
	if arg.Password == "" {
		arg.Password = DefaultAdminPassword
	}
	if arg.Name == "" {
		arg.Name = DefaultAdminName
	}

	queries := New(db)

	_, err := queries.GetAdminByEmail(ctx, arg.Email)
	if err == nil {
		slog.Info("admin account already exists, skipping seed", "email", arg.Email)
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for admin account: %w", err)
	}

	passwordHash, err := auth.HashPassword(arg.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	admin, err := queries.CreateAdmin(ctx, CreateAdminParams{
		Email:        arg.Email,
		PasswordHash: passwordHash,
		Name:         arg.Name,
		Role:         model.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	slog.Info("created bootstrap super admin",
		"id", admin.ID,
		"email", admin.Email,
	)

	return nil
}
