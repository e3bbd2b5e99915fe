// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the REST API handlers for the catalog backend.
package handler

import (
	"database/sql"
	"net/http"

	"github.com/starleap/starleap-go/internal/auth"
	"github.com/starleap/starleap-go/internal/middleware"
	"github.com/starleap/starleap-go/internal/service"
	"github.com/starleap/starleap-go/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db      *sql.DB
	queries *store.Queries
	admins  *service.AdminService
	media   *service.MediaService
	events  *service.EventService
	tokens  *auth.TokenManager
	protect *middleware.LoginProtection
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, tokens *auth.TokenManager, media *service.MediaService, events *service.EventService, protect *middleware.LoginProtection) *Handler {
	return &Handler{
		db:      db,
		queries: store.New(db),
		admins:  service.NewAdminService(db, events),
		media:   media,
		events:  events,
		tokens:  tokens,
		protect: protect,
	}
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:  "ok",
		Version: "v1",
	}, nil)
}
