// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/store"
	"github.com/starleap/starleap-go/internal/util"
)

// EventResponse represents an audit log entry in API responses.
type EventResponse struct {
	ID        int64          `json:"id"`
	Level     string         `json:"level"`
	Category  string         `json:"category"`
	Message   string         `json:"message"`
	AdminID   *int64         `json:"admin_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func eventToResponse(e model.Event) EventResponse {
	resp := EventResponse{
		ID:        e.ID,
		Level:     e.Level,
		Category:  e.Category,
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
	}
	if e.AdminID.Valid {
		resp.AdminID = &e.AdminID.Int64
	}
	if e.Metadata != "" {
		// Stored metadata is JSON; an unreadable blob is simply omitted.
		var meta map[string]any
		if err := json.Unmarshal([]byte(e.Metadata), &meta); err == nil && len(meta) > 0 {
			resp.Metadata = meta
		}
	}
	return resp
}

// ListEvents handles GET /events. Super admin only; filter with
// level={info|warning|error}, category={auth|media|catalog|system} and
// admin_id.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, perPage := parsePagination(r)

	level := r.URL.Query().Get("level")
	category := r.URL.Query().Get("category")
	adminID := util.ParseNullInt64Positive(r.URL.Query().Get("admin_id"))

	events, err := h.queries.ListEvents(ctx, store.ListEventsParams{
		Level:    level,
		Category: category,
		AdminID:  adminID,
		Limit:    int64(perPage),
		Offset:   int64((page - 1) * perPage),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list events")
		return
	}

	total, err := h.queries.CountEvents(ctx, store.CountEventsParams{
		Level:    level,
		Category: category,
		AdminID:  adminID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to list events")
		return
	}

	responses := make([]EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, eventToResponse(e))
	}

	WriteSuccess(w, responses, paginationMeta(total, page, perPage))
}
