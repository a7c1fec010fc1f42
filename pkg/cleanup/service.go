// Package cleanup enforces the data retention policies: expired closed
// episodes (turns cascade with them), old action log rows, stale fan-out
// events, and the memory fact decay sweep.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/stewardhq/steward/pkg/actionlog"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/memory"
)

// passTimeout bounds one full retention pass.
const passTimeout = 2 * time.Minute

// Service periodically enforces retention. Every policy is a bulk delete
// guarded by its own cutoff, so passes are idempotent and safe to run
// from multiple replicas at once. A zero interval disables the service;
// a zero retention window disables that one policy.
type Service struct {
	cfg      *config.RetentionConfig
	episodes *memory.EpisodeService
	facts    *memory.FactService
	actions  *actionlog.Service
	events   *events.EventStore

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service. Any nil collaborator
// skips its policy.
func NewService(
	cfg *config.RetentionConfig,
	episodes *memory.EpisodeService,
	facts *memory.FactService,
	actions *actionlog.Service,
	eventStore *events.EventStore,
) *Service {
	return &Service{
		cfg:      cfg,
		episodes: episodes,
		facts:    facts,
		actions:  actions,
		events:   eventStore,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	if s.cfg == nil || s.cfg.CleanupInterval <= 0 {
		slog.Info("Retention service disabled")
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"episode_retention_days", s.cfg.EpisodeRetentionDays,
		"action_log_retention_days", s.cfg.ActionLogRetentionDays,
		"event_ttl", s.cfg.EventTTL,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

// runAll executes every enabled policy once. Policies are independent:
// one failing never blocks the others.
func (s *Service) runAll(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, passTimeout)
	defer cancel()

	s.deleteExpiredEpisodes(passCtx)
	s.deleteExpiredActionLogs(passCtx)
	s.deleteExpiredEvents(passCtx)
	s.sweepDecayedFacts(passCtx)
}

func (s *Service) deleteExpiredEpisodes(ctx context.Context) {
	if s.episodes == nil || s.cfg.EpisodeRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.cfg.EpisodeRetentionDays)
	count, err := s.episodes.DeleteClosedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: episode deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired episodes", "count", count)
	}
}

func (s *Service) deleteExpiredActionLogs(ctx context.Context) {
	if s.actions == nil || s.cfg.ActionLogRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.cfg.ActionLogRetentionDays)
	count, err := s.actions.DeleteBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: action log deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired action logs", "count", count)
	}
}

func (s *Service) deleteExpiredEvents(ctx context.Context) {
	if s.events == nil || s.cfg.EventTTL <= 0 {
		return
	}
	count, err := s.events.DeleteEventsBefore(ctx, time.Now().Add(-s.cfg.EventTTL))
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up stale events", "count", count)
	}
}

func (s *Service) sweepDecayedFacts(ctx context.Context) {
	if s.facts == nil {
		return
	}
	count, err := s.facts.DecaySweep(ctx)
	if err != nil {
		slog.Error("Retention: fact decay sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned decayed facts", "count", count)
	}
}
