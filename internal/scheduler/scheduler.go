// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/starleap/starleap-go/internal/service"
)

// Scheduler handles periodic maintenance like audit log pruning.
type Scheduler struct {
	events         *service.EventService
	eventRetention time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// New creates a new scheduler instance. A zero eventRetention disables
// the pruning job.
func New(events *service.EventService, eventRetention time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		events:         events,
		eventRetention: eventRetention,
		cron:           cron.New(),
		logger:         logger,
	}
}

// Start registers the maintenance jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	if s.eventRetention > 0 {
		// Daily, shortly after midnight
		if _, err := s.cron.AddFunc("10 0 * * *", func() {
			if err := s.pruneEvents(); err != nil {
				s.logger.Error("failed to prune events", "error", err)
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// pruneEvents removes audit events older than the retention window.
func (s *Scheduler) pruneEvents() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pruned, err := s.events.DeleteOldEvents(ctx, s.eventRetention)
	if err != nil {
		return err
	}
	if pruned > 0 {
		s.logger.Info("pruned old events", "count", pruned, "retention", s.eventRetention)
	}
	return nil
}
