// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/store"
	"github.com/starleap/starleap-go/internal/util"
)

// -----------------------------------------------------------------------------
// Clients
// -----------------------------------------------------------------------------

// ClientResponse represents a client entry in API responses.
type ClientResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	LogoURL     string    `json:"logo_url"`
	Description *string   `json:"description,omitempty"`
	SortOrder   int64     `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func clientToResponse(c model.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		LogoURL:     c.LogoURL,
		Description: util.PtrFromNullString(c.Description),
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ClientRequest is the request body for creating or updating a client.
type ClientRequest struct {
	Name        string  `json:"name"`
	LogoURL     string  `json:"logoUrl"`
	Description *string `json:"description"`
	SortOrder   int64   `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

// ListClients handles GET /clients. Public; active entries only unless
// all=true is passed.
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	clients, err := h.queries.ListClients(r.Context(), activeOnly)
	if err != nil {
		WriteInternalError(w, "Failed to list clients")
		return
	}

	responses := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, clientToResponse(c))
	}
	WriteSuccess(w, responses, nil)
}

// GetClient handles GET /clients/{id}.
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client, ok := requireEntityByID(w, r, "client", func(id int64) (model.Client, error) {
		return h.queries.GetClientByID(ctx, id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, clientToResponse(client), nil)
}

// CreateClient handles POST /clients.
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ClientRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	details := map[string]string{}
	if req.Name == "" {
		details["name"] = "Name is required"
	}
	if req.LogoURL == "" {
		details["logoUrl"] = "Logo URL is required"
	}
	if len(details) > 0 {
		WriteValidationError(w, details)
		return
	}

	now := time.Now()
	client, err := h.queries.CreateClient(ctx, store.CreateClientParams{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		Description: util.NullStringFromPtr(req.Description),
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		slog.Error("failed to create client", "error", err)
		WriteInternalError(w, "Failed to create client")
		return
	}

	h.logCatalog(r, "client created", map[string]any{"client_id": client.ID})
	WriteCreated(w, clientToResponse(client))
}

// UpdateClient handles PUT /clients/{id}.
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, ok := requireEntityByID(w, r, "client", func(id int64) (model.Client, error) {
		return h.queries.GetClientByID(ctx, id)
	})
	if !ok {
		return
	}

	var req ClientRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Name == "" {
		req.Name = existing.Name
	}
	if req.LogoURL == "" {
		req.LogoURL = existing.LogoURL
	}

	isActive := existing.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	client, err := h.queries.UpdateClient(ctx, store.UpdateClientParams{
		ID:          existing.ID,
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		Description: util.NullStringFromPtr(req.Description),
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		slog.Error("failed to update client", "client_id", existing.ID, "error", err)
		WriteInternalError(w, "Failed to update client")
		return
	}

	h.logCatalog(r, "client updated", map[string]any{"client_id": client.ID})
	WriteSuccess(w, clientToResponse(client), nil)
}

// DeleteClient handles DELETE /clients/{id}.
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	client, ok := requireEntityByID(w, r, "client", func(id int64) (model.Client, error) {
		return h.queries.GetClientByID(ctx, id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteClient(ctx, client.ID); err != nil {
		slog.Error("failed to delete client", "client_id", client.ID, "error", err)
		WriteInternalError(w, "Failed to delete client")
		return
	}

	h.logCatalog(r, "client deleted", map[string]any{"client_id": client.ID})
	WriteSuccess(w, map[string]string{"message": "Client deleted"}, nil)
}

// -----------------------------------------------------------------------------
// Team members
// -----------------------------------------------------------------------------

// TeamMemberRequest is the request body for creating or updating a team
// member.
type TeamMemberRequest struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	ImageURL  string `json:"imageUrl"`
	SortOrder int64  `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

// ListTeamMembers handles GET /team-members. Public; active entries only
// unless all=true is passed.
func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	members, err := h.queries.ListTeamMembers(r.Context(), activeOnly)
	if err != nil {
		WriteInternalError(w, "Failed to list team members")
		return
	}
	if members == nil {
		members = []model.TeamMember{}
	}
	WriteSuccess(w, members, nil)
}

// GetTeamMember handles GET /team-members/{id}.
func (h *Handler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	member, ok := requireEntityByID(w, r, "team member", func(id int64) (model.TeamMember, error) {
		return h.queries.GetTeamMemberByID(ctx, id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, member, nil)
}

// CreateTeamMember handles POST /team-members.
func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TeamMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	details := map[string]string{}
	if req.Name == "" {
		details["name"] = "Name is required"
	}
	if req.Position == "" {
		details["position"] = "Position is required"
	}
	if req.ImageURL == "" {
		details["imageUrl"] = "Image URL is required"
	}
	if len(details) > 0 {
		WriteValidationError(w, details)
		return
	}

	now := time.Now()
	member, err := h.queries.CreateTeamMember(ctx, store.CreateTeamMemberParams{
		Name:      req.Name,
		Position:  req.Position,
		ImageURL:  req.ImageURL,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive == nil || *req.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("failed to create team member", "error", err)
		WriteInternalError(w, "Failed to create team member")
		return
	}

	h.logCatalog(r, "team member created", map[string]any{"team_member_id": member.ID})
	WriteCreated(w, member)
}

// UpdateTeamMember handles PUT /team-members/{id}.
func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, ok := requireEntityByID(w, r, "team member", func(id int64) (model.TeamMember, error) {
		return h.queries.GetTeamMemberByID(ctx, id)
	})
	if !ok {
		return
	}

	var req TeamMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Name == "" {
		req.Name = existing.Name
	}
	if req.Position == "" {
		req.Position = existing.Position
	}
	if req.ImageURL == "" {
		req.ImageURL = existing.ImageURL
	}

	isActive := existing.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	member, err := h.queries.UpdateTeamMember(ctx, store.UpdateTeamMemberParams{
		ID:        existing.ID,
		Name:      req.Name,
		Position:  req.Position,
		ImageURL:  req.ImageURL,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to update team member", "team_member_id", existing.ID, "error", err)
		WriteInternalError(w, "Failed to update team member")
		return
	}

	h.logCatalog(r, "team member updated", map[string]any{"team_member_id": member.ID})
	WriteSuccess(w, member, nil)
}

// DeleteTeamMember handles DELETE /team-members/{id}.
func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	member, ok := requireEntityByID(w, r, "team member", func(id int64) (model.TeamMember, error) {
		return h.queries.GetTeamMemberByID(ctx, id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteTeamMember(ctx, member.ID); err != nil {
		slog.Error("failed to delete team member", "team_member_id", member.ID, "error", err)
		WriteInternalError(w, "Failed to delete team member")
		return
	}

	h.logCatalog(r, "team member deleted", map[string]any{"team_member_id": member.ID})
	WriteSuccess(w, map[string]string{"message": "Team member deleted"}, nil)
}
