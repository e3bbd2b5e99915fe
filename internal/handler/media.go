// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/starleap/starleap-go/internal/middleware"
	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/service"
	"github.com/starleap/starleap-go/internal/store"
)

// ListMedia handles GET /media. Public, newest first.
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, perPage := parsePagination(r)

	media, err := h.queries.ListMedia(ctx, store.ListMediaParams{
		Limit:  int64(perPage),
		Offset: int64((page - 1) * perPage),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list media")
		return
	}

	total, err := h.queries.CountMedia(ctx)
	if err != nil {
		WriteInternalError(w, "Failed to list media")
		return
	}

	WriteSuccess(w, media, paginationMeta(total, page, perPage))
}

// GetMedia handles GET /media/{id}.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	media, ok := requireEntityByID(w, r, "media", func(id int64) (model.Media, error) {
		return h.queries.GetMediaByID(ctx, id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, media, nil)
}

// UploadMedia handles POST /media/upload. It accepts a multipart form
// with field "file" and an optional "description" value. Validation
// failures leave nothing on disk.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.media.MaxSize()+1<<20)
	if err := r.ParseMultipartForm(h.media.MaxSize()); err != nil {
		WriteBadRequest(w, "No file uploaded", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "No file uploaded", nil)
		return
	}
	defer func() { _ = file.Close() }()

	description := r.FormValue("description")

	media, err := h.media.Upload(ctx, file, header, "file", description, service.MediaPipeline())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFile):
			WriteBadRequest(w, "No file uploaded", nil)
		case errors.Is(err, service.ErrInvalidFileType):
			WriteBadRequest(w, "Invalid file type", nil)
		case errors.Is(err, service.ErrFileTooLarge):
			WriteError(w, http.StatusBadRequest, "bad_request", "File too large", nil)
		default:
			slog.Error("upload failed", "error", err)
			WriteInternalError(w, "Upload failed")
		}
		return
	}

	h.logMedia(r, "media uploaded", map[string]any{
		"media_id": media.ID, "file_path": media.FilePath, "size": media.Size,
	})

	WriteCreated(w, media)
}

// UpdateMediaRequest is the request body for PUT /media/{id}. Stored
// files are immutable; only the description can change.
type UpdateMediaRequest struct {
	Description string `json:"description"`
}

// UpdateMedia handles PUT /media/{id}.
func (h *Handler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	media, ok := requireEntityByID(w, r, "media", func(id int64) (model.Media, error) {
		return h.queries.GetMediaByID(ctx, id)
	})
	if !ok {
		return
	}

	var req UpdateMediaRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if err := h.queries.UpdateMediaDescription(ctx, media.ID, req.Description); err != nil {
		slog.Error("failed to update media", "media_id", media.ID, "error", err)
		WriteInternalError(w, "Failed to update media")
		return
	}

	updated, err := h.queries.GetMediaByID(ctx, media.ID)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve media")
		return
	}
	WriteSuccess(w, updated, nil)
}

// DeleteMedia handles DELETE /media/{id}. The record is removed and the
// file unlinked best-effort.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	media, ok := requireEntityByID(w, r, "media", func(id int64) (model.Media, error) {
		return h.queries.GetMediaByID(ctx, id)
	})
	if !ok {
		return
	}

	if err := h.media.Delete(ctx, media.ID); err != nil {
		slog.Error("failed to delete media", "media_id", media.ID, "error", err)
		WriteInternalError(w, "Failed to delete media")
		return
	}

	h.logMedia(r, "media deleted", map[string]any{
		"media_id": media.ID, "file_path": media.FilePath,
	})

	WriteSuccess(w, map[string]string{"message": "Media deleted"}, nil)
}

func (h *Handler) logMedia(r *http.Request, message string, metadata map[string]any) {
	if h.events == nil {
		return
	}
	_ = h.events.LogMediaEvent(r.Context(), model.EventLevelInfo, message,
		middleware.GetAdminIDPtr(r), metadata)
}
