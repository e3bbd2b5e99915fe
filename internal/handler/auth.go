// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starleap/starleap-go/internal/middleware"
	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/service"
)

// AdminProfile is the admin identity shape returned by auth endpoints.
type AdminProfile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthResponse is the response body for register and login.
type AuthResponse struct {
	Admin AdminProfile `json:"admin"`
	Token string       `json:"token"`
}

func adminToProfile(a model.Admin) AdminProfile {
	return AdminProfile{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Register handles POST /auth/register. It is intended for initial
// bootstrap only and issues a token for the new account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	admin, err := h.admins.Create(ctx, service.CreateAdminParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			WriteBadRequest(w, "Admin already exists", nil)
		case errors.Is(err, service.ErrValidation):
			WriteBadRequest(w, validationMessage(err), nil)
		default:
			slog.Error("failed to create admin", "error", err)
			WriteInternalError(w, "Failed to create admin")
		}
		return
	}

	token, err := h.tokens.Issue(admin.ID, admin.Role)
	if err != nil {
		slog.Error("failed to issue token", "admin_id", admin.ID, "error", err)
		WriteInternalError(w, "Failed to issue token")
		return
	}

	WriteCreated(w, AuthResponse{
		Admin: adminToProfile(admin),
		Token: token,
	})
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. Accounts under lockout are rejected
// before credentials are checked.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if h.protect != nil {
		if locked, _ := h.protect.IsAccountLocked(email); locked {
			WriteError(w, http.StatusTooManyRequests, "account_locked",
				"Too many failed login attempts. Please try again later.", nil)
			return
		}
	}

	admin, err := h.admins.Authenticate(ctx, email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			if h.protect != nil {
				h.protect.RecordFailedAttempt(email)
			}
			WriteBadRequest(w, "Invalid credentials", nil)
		case errors.Is(err, service.ErrAccountDisabled):
			WriteUnauthorized(w, "Account is disabled")
		default:
			slog.Error("login failed", "error", err)
			WriteInternalError(w, "Login failed")
		}
		return
	}

	if h.protect != nil {
		h.protect.RecordSuccessfulLogin(email)
	}

	token, err := h.tokens.Issue(admin.ID, admin.Role)
	if err != nil {
		slog.Error("failed to issue token", "admin_id", admin.ID, "error", err)
		WriteInternalError(w, "Failed to issue token")
		return
	}

	WriteSuccess(w, AuthResponse{
		Admin: adminToProfile(admin),
		Token: token,
	}, nil)
}

// Me handles GET /auth/me and returns the authenticated admin profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetAdmin(r)
	if admin == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, admin, nil)
}

// UpdatePasswordRequest is the request body for PUT /auth/update-password.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdatePassword handles PUT /auth/update-password. Tokens issued before
// the change stay valid until they expire.
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admin := middleware.GetAdmin(r)
	if admin == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	var req UpdatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if err := h.admins.UpdatePassword(ctx, admin.ID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrIncorrectPassword):
			WriteBadRequest(w, "Incorrect old password", nil)
		case errors.Is(err, service.ErrValidation):
			WriteBadRequest(w, validationMessage(err), nil)
		default:
			slog.Error("failed to update password", "admin_id", admin.ID, "error", err)
			WriteInternalError(w, "Failed to update password")
		}
		return
	}

	WriteSuccess(w, map[string]string{"message": "Password updated successfully"}, nil)
}

// validationMessage strips the sentinel prefix from a wrapped validation
// error so the response carries only the human-readable part.
func validationMessage(err error) string {
	msg := err.Error()
	if _, detail, found := strings.Cut(msg, ": "); found {
		return capitalizeFirst(detail)
	}
	return capitalizeFirst(msg)
}
