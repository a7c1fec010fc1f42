package memory

import (
	"context"
	"log/slog"
	"time"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/episode"
)

// sweepBatch caps candidates examined per pass.
const sweepBatch = 200

// Sweeper closes episodes whose inactivity exceeded their timeout. Each
// row carries its own timeout, so the scan reads candidates oldest-first
// and re-checks every one under its episode lock before closing.
type Sweeper struct {
	client   *ent.Client
	episodes *EpisodeService
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a new episode sweeper.
func NewSweeper(client *ent.Client, episodes *EpisodeService, interval time.Duration) *Sweeper {
	return &Sweeper{client: client, episodes: episodes, interval: interval}
}

// Start launches the background sweep loop. A non-positive interval
// disables the sweeper.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	if s.interval <= 0 {
		slog.Info("Episode sweeper disabled")
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Episode sweeper started", "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Episode sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweepOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

// sweepOnce closes every active episode whose idle time exceeded its own
// timeout. Returns the number closed.
func (s *Sweeper) sweepOnce(ctx context.Context) int {
	now := time.Now()
	candidates, err := s.client.Episode.Query().
		Where(episode.StatusEQ(episode.StatusActive)).
		Order(ent.Asc(episode.FieldLastActivityAt)).
		Limit(sweepBatch).
		All(ctx)
	if err != nil {
		slog.Error("Episode sweep query failed", "error", err)
		return 0
	}

	closed := 0
	for _, ep := range candidates {
		if ctx.Err() != nil {
			return closed
		}
		if !s.episodes.expired(ep, now) {
			continue
		}
		ok, err := s.episodes.closeIfStale(ctx, ep.ID)
		if err != nil {
			slog.Error("Failed to close stale episode",
				"episode_id", ep.ID, "error", err)
			continue
		}
		if ok {
			closed++
		}
	}
	if closed > 0 {
		slog.Info("Closed stale episodes", "count", closed)
	}
	return closed
}
