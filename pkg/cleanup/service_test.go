package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/pkg/actionlog"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/memory"
	testdb "github.com/stewardhq/steward/test/database"
)

func retentionTestConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		EpisodeRetentionDays:   90,
		ActionLogRetentionDays: 180,
		EventTTL:               time.Hour,
		CleanupInterval:        time.Hour,
	}
}

func newRetentionService(client *database.Client, cfg *config.RetentionConfig) *Service {
	episodes := memory.NewEpisodeService(client.Client, &config.EpisodeConfig{}, nil, nil)
	actions := actionlog.NewService(client.Client, nil, nil)
	return NewService(cfg, episodes, nil, actions, events.NewEventStore(client.Client))
}

// seedEpisode inserts an episode directly, with turnCount turns attached.
func seedEpisode(t *testing.T, client *ent.Client, status episode.Status, closedAt time.Time, turnCount int) *ent.Episode {
	t.Helper()
	ctx := context.Background()

	create := client.Episode.Create().
		SetID(uuid.New().String()).
		SetUserID("default").
		SetContextType(episode.ContextTypeChat).
		SetStatus(status).
		SetTimeoutMinutes(30).
		SetLastActivityAt(closedAt)
	if status == episode.StatusClosed {
		create = create.SetClosedAt(closedAt)
	}
	ep, err := create.Save(ctx)
	require.NoError(t, err)

	for i := 0; i < turnCount; i++ {
		_, err := client.Turn.Create().
			SetID(uuid.New().String()).
			SetEpisodeID(ep.ID).
			SetUserText("hello").
			SetAssistantText("hi").
			Save(ctx)
		require.NoError(t, err)
	}
	return ep
}

func seedActionLog(t *testing.T, client *ent.Client, timestamp time.Time) {
	t.Helper()
	_, err := client.ActionLog.Create().
		SetID(uuid.New().String()).
		SetUserID("default").
		SetToolName("list.add").
		SetSuccess(true).
		SetTimestamp(timestamp).
		Save(context.Background())
	require.NoError(t, err)
}

func TestRunAllDeletesExpiredClosedEpisodes(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := seedEpisode(t, client.Client, episode.StatusClosed, time.Now().AddDate(0, 0, -120), 2)
	recent := seedEpisode(t, client.Client, episode.StatusClosed, time.Now().AddDate(0, 0, -1), 1)
	// Ancient but still active: retention must never touch it.
	stale := seedEpisode(t, client.Client, episode.StatusActive, time.Now().AddDate(0, 0, -200), 1)

	svc := newRetentionService(client, retentionTestConfig())
	svc.runAll(ctx)

	remaining, err := client.Episode.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, old.ID)
	assert.Contains(t, remaining, recent.ID)
	assert.Contains(t, remaining, stale.ID)

	// The expired episode's turns cascade away with it.
	turns, err := client.Turn.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, turns)
}

func TestRunAllDeletesOldActionLogs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedActionLog(t, client.Client, time.Now().AddDate(0, 0, -200))
	seedActionLog(t, client.Client, time.Now())

	svc := newRetentionService(client, retentionTestConfig())
	svc.runAll(ctx)

	count, err := client.ActionLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunAllPrunesStaleEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Seed the way the publisher writes: the BIGSERIAL id comes from the DB.
	for _, age := range []time.Duration{48 * time.Hour, 0} {
		_, err := client.DB().ExecContext(ctx,
			`INSERT INTO events (user_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)`,
			"default", "activity", []byte(`{}`), time.Now().Add(-age))
		require.NoError(t, err)
	}

	svc := newRetentionService(client, retentionTestConfig())
	svc.runAll(ctx)

	left, err := events.NewEventStore(client.Client).GetEventsSince(ctx, "activity", 0, 100)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestZeroWindowDisablesPolicy(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := seedEpisode(t, client.Client, episode.StatusClosed, time.Now().AddDate(0, 0, -120), 0)

	cfg := retentionTestConfig()
	cfg.EpisodeRetentionDays = 0
	svc := newRetentionService(client, cfg)
	svc.runAll(ctx)

	_, err := client.Episode.Get(ctx, old.ID)
	assert.NoError(t, err)
}

func TestStartDisabledOnZeroInterval(t *testing.T) {
	svc := NewService(&config.RetentionConfig{}, nil, nil, nil, nil)
	svc.Start(context.Background())
	svc.Stop()
}
