// Package memory implements the episodic memory manager: timed
// conversation episodes with per-episode turn logs, LLM episode
// summaries, and decay-weighted fact retrieval.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/ent/turn"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/fault"
)

const (
	// writeTimeout bounds detached store writes.
	writeTimeout = 5 * time.Second

	// summaryTimeout bounds a summary round-trip, including the LLM call.
	summaryTimeout = 45 * time.Second

	// defaultRecentTurns is the history window when the caller passes no k.
	defaultRecentTurns = 5
)

// EventPublisher publishes episode lifecycle events for the live feeds.
// Implemented by events.EventPublisher; defined as interface here to keep
// episode management decoupled from the delivery bus.
type EventPublisher interface {
	PublishEpisodeOpened(ctx context.Context, userID string, payload events.EpisodeOpenedPayload) error
	PublishEpisodeClosed(ctx context.Context, userID string, payload events.EpisodeClosedPayload) error
}

// EpisodeService manages the episode lifecycle. All writes to one
// (user_id, context_type) pair serialize on an in-process keyed mutex;
// cross-replica races are absorbed by the partial unique index on active
// episodes and by conditional close updates.
type EpisodeService struct {
	client     *ent.Client
	cfg        *config.EpisodeConfig
	summarizer *Summarizer    // nil disables episode summaries
	publisher  EventPublisher // nil disables feed events

	// episodeLocks maps "user_id:context_type" to its mutex. When an
	// episode lock and any other service lock are both needed, the
	// episode lock comes first.
	episodeLocks sync.Map
}

// NewEpisodeService creates a new episode service.
func NewEpisodeService(client *ent.Client, cfg *config.EpisodeConfig, summarizer *Summarizer, publisher EventPublisher) *EpisodeService {
	return &EpisodeService{
		client:     client,
		cfg:        cfg,
		summarizer: summarizer,
		publisher:  publisher,
	}
}

func (s *EpisodeService) lockFor(userID, contextType string) *sync.Mutex {
	muI, _ := s.episodeLocks.LoadOrStore(userID+":"+contextType, &sync.Mutex{})
	return muI.(*sync.Mutex)
}

// GetOrOpen returns the user's active episode for the context, rotating a
// stale one first. contextType defaults to chat when empty.
func (s *EpisodeService) GetOrOpen(ctx context.Context, userID, contextType string) (*ent.Episode, error) {
	if userID == "" {
		return nil, fault.Invalid("user_id is required")
	}
	if contextType == "" {
		contextType = string(episode.ContextTypeChat)
	}
	if err := episode.ContextTypeValidator(episode.ContextType(contextType)); err != nil {
		return nil, fault.Invalid(fmt.Sprintf("unknown context_type %q", contextType))
	}

	mu := s.lockFor(userID, contextType)
	mu.Lock()
	defer mu.Unlock()

	active, err := s.client.Episode.Query().
		Where(
			episode.UserIDEQ(userID),
			episode.ContextTypeEQ(episode.ContextType(contextType)),
			episode.StatusEQ(episode.StatusActive),
		).
		Only(ctx)
	switch {
	case err == nil:
		if !s.expired(active, time.Now()) {
			return active, nil
		}
		if _, err := s.closeEpisode(active, events.CloseReasonTimeout); err != nil {
			return nil, err
		}
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query active episode: %w", err)
	}

	return s.open(userID, contextType)
}

// Active returns the user's active episode for a context type without
// opening one. A missing episode returns (nil, nil).
func (s *EpisodeService) Active(ctx context.Context, userID, contextType string) (*ent.Episode, error) {
	if userID == "" {
		return nil, fault.Invalid("user_id is required")
	}
	if contextType == "" {
		contextType = string(episode.ContextTypeChat)
	}
	if err := episode.ContextTypeValidator(episode.ContextType(contextType)); err != nil {
		return nil, fault.Invalid(fmt.Sprintf("unknown context_type %q", contextType))
	}
	active, err := s.client.Episode.Query().
		Where(
			episode.UserIDEQ(userID),
			episode.ContextTypeEQ(episode.ContextType(contextType)),
			episode.StatusEQ(episode.StatusActive),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query active episode: %w", err)
	}
	return active, nil
}

// expired reports whether the episode sat idle strictly longer than its
// own timeout. The row's timeout_minutes is authoritative; config only
// seeds it at open time.
func (s *EpisodeService) expired(ep *ent.Episode, now time.Time) bool {
	timeout := time.Duration(ep.TimeoutMinutes) * time.Minute
	return now.Sub(ep.LastActivityAt) > timeout
}

func (s *EpisodeService) open(userID, contextType string) (*ent.Episode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	ep, err := s.client.Episode.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetContextType(episode.ContextType(contextType)).
		SetTimeoutMinutes(int(s.cfg.TimeoutFor(contextType) / time.Minute)).
		Save(ctx)
	if err != nil {
		// Another replica opened concurrently; the partial unique index
		// on active episodes makes the winner discoverable.
		if ent.IsConstraintError(err) {
			return s.client.Episode.Query().
				Where(
					episode.UserIDEQ(userID),
					episode.ContextTypeEQ(episode.ContextType(contextType)),
					episode.StatusEQ(episode.StatusActive),
				).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to open episode: %w", err)
	}

	slog.Info("Episode opened",
		"episode_id", ep.ID, "user_id", userID, "context_type", contextType)
	s.publishOpened(ep)
	return ep, nil
}

// AppendTurn appends one exchange and bumps the episode's activity clock.
// The turn is recorded even if the episode was closed in the meantime;
// history must not be lost to a sweeper race. The write runs against a
// detached context because the exchange already happened.
func (s *EpisodeService) AppendTurn(turnCtx context.Context, episodeID, userText, assistantText string) (*ent.Episode, error) {
	if episodeID == "" {
		return nil, fault.Invalid("episode_id is required")
	}

	ep, err := s.client.Episode.Get(turnCtx, episodeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.NotFound("episode not found")
		}
		return nil, fmt.Errorf("failed to load episode: %w", err)
	}

	mu := s.lockFor(ep.UserID, string(ep.ContextType))
	mu.Lock()
	defer mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Turn.Create().
		SetID(uuid.New().String()).
		SetEpisodeID(episodeID).
		SetUserText(userText).
		SetAssistantText(assistantText).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create turn: %w", err)
	}

	updated, err := tx.Episode.UpdateOneID(episodeID).
		AddMessageCount(1).
		SetLastActivityAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update episode activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit turn: %w", err)
	}

	if s.summarizer != nil && updated.MessageCount == s.summarizer.TriggerCount() {
		go s.summarizeInBackground(updated.ID)
	}

	return updated, nil
}

// RecentTurns returns the episode's latest turns, newest first.
func (s *EpisodeService) RecentTurns(ctx context.Context, episodeID string, k int) ([]*ent.Turn, error) {
	if episodeID == "" {
		return nil, fault.Invalid("episode_id is required")
	}
	if k <= 0 {
		k = defaultRecentTurns
	}
	turns, err := s.client.Turn.Query().
		Where(turn.EpisodeIDEQ(episodeID)).
		Order(ent.Desc(turn.FieldCreatedAt)).
		Limit(k).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent turns: %w", err)
	}
	return turns, nil
}

// Close explicitly closes an episode. Closing an already-closed episode
// is a no-op that returns it as-is.
func (s *EpisodeService) Close(ctx context.Context, episodeID string) (*ent.Episode, error) {
	if episodeID == "" {
		return nil, fault.Invalid("episode_id is required")
	}
	ep, err := s.client.Episode.Get(ctx, episodeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.NotFound("episode not found")
		}
		return nil, fmt.Errorf("failed to load episode: %w", err)
	}
	if ep.Status == episode.StatusClosed {
		return ep, nil
	}

	mu := s.lockFor(ep.UserID, string(ep.ContextType))
	mu.Lock()
	defer mu.Unlock()

	return s.closeEpisode(ep, events.CloseReasonExplicit)
}

// DeleteClosedBefore removes closed episodes whose close predates the
// cutoff. Turns go with them via the schema's cascade. Active episodes
// are never touched, no matter how old.
func (s *EpisodeService) DeleteClosedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Episode.Delete().
		Where(
			episode.StatusEQ(episode.StatusClosed),
			episode.ClosedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired episodes: %w", err)
	}
	return n, nil
}

// closeIfStale re-checks staleness under the episode lock and closes the
// episode when it still qualifies. Reports whether a close happened.
func (s *EpisodeService) closeIfStale(ctx context.Context, episodeID string) (bool, error) {
	ep, err := s.client.Episode.Get(ctx, episodeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load episode: %w", err)
	}

	mu := s.lockFor(ep.UserID, string(ep.ContextType))
	mu.Lock()
	defer mu.Unlock()

	ep, err = s.client.Episode.Get(ctx, episodeID)
	if err != nil {
		return false, fmt.Errorf("failed to reload episode: %w", err)
	}
	if ep.Status != episode.StatusActive || !s.expired(ep, time.Now()) {
		return false, nil
	}
	if _, err := s.closeEpisode(ep, events.CloseReasonTimeout); err != nil {
		return false, err
	}
	return true, nil
}

// closeEpisode marks the episode closed. The conditional update makes
// close idempotent across replicas: only the caller that flips
// active→closed summarizes and announces.
func (s *EpisodeService) closeEpisode(ep *ent.Episode, reason string) (*ent.Episode, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	n, err := s.client.Episode.Update().
		Where(episode.IDEQ(ep.ID), episode.StatusEQ(episode.StatusActive)).
		SetStatus(episode.StatusClosed).
		SetClosedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close episode: %w", err)
	}

	closed, err := s.client.Episode.Get(ctx, ep.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload closed episode: %w", err)
	}
	if n == 0 {
		// Lost the close race; the winner handles summary and events.
		return closed, nil
	}

	slog.Info("Episode closed",
		"episode_id", closed.ID, "reason", reason, "message_count", closed.MessageCount)
	go s.finishClose(closed, reason)
	return closed, nil
}

// finishClose produces the episode summary and announces the closure.
// Runs off the turn path: summarization can take an LLM round-trip.
func (s *EpisodeService) finishClose(ep *ent.Episode, reason string) {
	summarized := false
	if s.summarizer != nil && ep.MessageCount > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
		err := s.summarizer.SummarizeEpisode(ctx, ep.ID)
		cancel()
		if err != nil {
			slog.Warn("Episode summary failed", "episode_id", ep.ID, "error", err)
		} else {
			summarized = true
		}
	}
	s.publishClosed(ep, reason, summarized)
}

func (s *EpisodeService) summarizeInBackground(episodeID string) {
	ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
	defer cancel()
	if err := s.summarizer.SummarizeEpisode(ctx, episodeID); err != nil {
		slog.Warn("Episode summary failed", "episode_id", episodeID, "error", err)
	}
}

func (s *EpisodeService) publishOpened(ep *ent.Episode) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	payload := events.EpisodeOpenedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeEpisodeOpened,
			UserID:    ep.UserID,
			Timestamp: ep.StartedAt.Format(time.RFC3339Nano),
		},
		EpisodeID:   ep.ID,
		ContextType: string(ep.ContextType),
	}
	if err := s.publisher.PublishEpisodeOpened(ctx, ep.UserID, payload); err != nil {
		slog.Warn("Failed to publish episode.opened event",
			"episode_id", ep.ID, "error", err)
	}
}

func (s *EpisodeService) publishClosed(ep *ent.Episode, reason string, summarized bool) {
	if s.publisher == nil {
		return
	}
	closedAt := time.Now()
	if ep.ClosedAt != nil {
		closedAt = *ep.ClosedAt
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	payload := events.EpisodeClosedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeEpisodeClosed,
			UserID:    ep.UserID,
			Timestamp: closedAt.Format(time.RFC3339Nano),
		},
		EpisodeID:    ep.ID,
		ContextType:  string(ep.ContextType),
		Reason:       reason,
		MessageCount: ep.MessageCount,
		Summarized:   summarized,
	}
	if err := s.publisher.PublishEpisodeClosed(ctx, ep.UserID, payload); err != nil {
		slog.Warn("Failed to publish episode.closed event",
			"episode_id", ep.ID, "error", err)
	}
}
