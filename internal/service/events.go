// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic for admin identity, media
// uploads, and the audit event log.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/starleap/starleap-go/internal/model"
	"github.com/starleap/starleap-go/internal/store"
)

// EventService records audit events.
type EventService struct {
	queries *store.Queries
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{
		queries: store.New(db),
	}
}

// Log creates a new event log entry. Failures are logged but never
// surfaced to the request path that triggered them.
func (s *EventService) Log(ctx context.Context, level, category, message string, adminID *int64, metadata map[string]any) error {
	var nullAdminID sql.NullInt64
	if adminID != nil {
		nullAdminID = sql.NullInt64{Int64: *adminID, Valid: true}
	}

	metadataJSON := "{}"
	if metadata != nil {
		if jsonBytes, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:     level,
		Category:  category,
		Message:   message,
		AdminID:   nullAdminID,
		Metadata:  metadataJSON,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to record event", "error", err, "message", message)
		return err
	}

	return nil
}

// LogInfo logs an info-level event.
func (s *EventService) LogInfo(ctx context.Context, category, message string, adminID *int64, metadata map[string]any) error {
	return s.Log(ctx, model.EventLevelInfo, category, message, adminID, metadata)
}

// LogWarning logs a warning-level event.
func (s *EventService) LogWarning(ctx context.Context, category, message string, adminID *int64, metadata map[string]any) error {
	return s.Log(ctx, model.EventLevelWarning, category, message, adminID, metadata)
}

// LogError logs an error-level event.
func (s *EventService) LogError(ctx context.Context, category, message string, adminID *int64, metadata map[string]any) error {
	return s.Log(ctx, model.EventLevelError, category, message, adminID, metadata)
}

// LogAuthEvent logs an authentication-related event.
func (s *EventService) LogAuthEvent(ctx context.Context, level, message string, adminID *int64, metadata map[string]any) error {
	return s.Log(ctx, level, model.EventCategoryAuth, message, adminID, metadata)
}

// LogMediaEvent logs an upload-related event.
func (s *EventService) LogMediaEvent(ctx context.Context, level, message string, adminID *int64, metadata map[string]any) error {
	return s.Log(ctx, level, model.EventCategoryMedia, message, adminID, metadata)
}

// LogCatalogEvent logs a catalog content event.
func (s *EventService) LogCatalogEvent(ctx context.Context, level, message string, adminID *int64, metadata map[string]any) error {
	return s.Log(ctx, level, model.EventCategoryCatalog, message, adminID, metadata)
}

// DeleteOldEvents removes events older than the specified duration and
// returns the number of entries pruned.
func (s *EventService) DeleteOldEvents(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	return s.queries.PruneEvents(ctx, cutoff)
}
