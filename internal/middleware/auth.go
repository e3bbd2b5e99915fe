// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request protection.
package middleware

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starleap/starleap-go/internal/auth"
	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/service"
	"github.com/starleap/starleap-go/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for authenticated request data.
const (
	ContextKeyAdmin ContextKey = "admin"
	ContextKeyToken ContextKey = "token"
)

// Auth gate rejection messages. The identity-resolution failure reuses
// generic token wording so a caller cannot tell a disabled account from
// a bad token.
const (
	msgTokenRequired = "Authentication token required"
	msgAuthFailed    = "Authentication failed"
	msgInvalidToken  = "Invalid or expired token"
)

// Auth creates middleware that requires a valid bearer token. The token
// is verified, then resolved to a live active admin account per request.
// On success the admin (hash stripped) and the raw token are attached to
// the request context.
func Auth(tokens *auth.TokenManager, db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeAuthError(w, msgTokenRequired)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				writeAuthError(w, msgAuthFailed)
				return
			}

			adminID, err := claims.AdminID()
			if err != nil {
				writeAuthError(w, msgAuthFailed)
				return
			}

			// Missing and deactivated accounts are indistinguishable here.
			admin, err := queries.GetActiveAdminByID(r.Context(), adminID)
			if err != nil {
				if err != sql.ErrNoRows {
					slog.Error("failed to resolve admin for token", "error", err, "admin_id", adminID)
				}
				writeAuthError(w, msgInvalidToken)
				return
			}
			admin.PasswordHash = ""

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, admin)
			ctx = context.WithValue(ctx, ContextKeyToken, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin creates middleware that rejects non-super-admin
// callers with 403. Must run after Auth. Denials are recorded in the
// event log when an event service is provided.
func RequireSuperAdmin(events *service.EventService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin := GetAdmin(r)
			if admin == nil {
				writeAuthError(w, msgTokenRequired)
				return
			}

			if !admin.IsSuperAdmin() {
				slog.Warn("access denied",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"admin_id", admin.ID,
					"role", admin.Role,
				)
				if events != nil {
					id := admin.ID
					_ = events.LogAuthEvent(r.Context(), model.EventLevelWarning,
						"access denied: super admin required", &id,
						map[string]any{"method": r.Method, "path": r.URL.Path, "role": admin.Role})
				}
				writeError(w, http.StatusForbidden, "forbidden", "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetAdmin retrieves the authenticated admin from the request context.
// Returns nil if the request did not pass the Auth gate.
func GetAdmin(r *http.Request) *model.Admin {
	admin, ok := r.Context().Value(ContextKeyAdmin).(model.Admin)
	if !ok {
		return nil
	}
	return &admin
}

// GetAdminID returns the authenticated admin's ID, or 0 if not found.
func GetAdminID(r *http.Request) int64 {
	if admin := GetAdmin(r); admin != nil {
		return admin.ID
	}
	return 0
}

// GetAdminIDPtr returns a pointer to the authenticated admin's ID, or
// nil if not found. Useful for optional admin references in event logs.
func GetAdminIDPtr(r *http.Request) *int64 {
	if admin := GetAdmin(r); admin != nil {
		id := admin.ID
		return &id
	}
	return nil
}

// GetToken returns the raw bearer token the request authenticated with.
func GetToken(r *http.Request) string {
	token, _ := r.Context().Value(ContextKeyToken).(string)
	return token
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func writeAuthError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, "unauthorized", message)
}
