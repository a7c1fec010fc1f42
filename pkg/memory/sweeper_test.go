package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/pkg/events"
	testdb "github.com/stewardhq/steward/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepOnceClosesOnlyExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := &mockEpisodePublisher{}
	episodes := NewEpisodeService(client.Client, defaultEpisodeConfig(), nil, pub)
	sweeper := NewSweeper(client.Client, episodes, time.Minute)
	ctx := context.Background()

	stale, err := episodes.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)
	err = client.Client.Episode.UpdateOneID(stale.ID).
		SetLastActivityAt(time.Now().Add(-31 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	fresh, err := episodes.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)

	closed := sweeper.sweepOnce(ctx)
	assert.Equal(t, 1, closed)

	reloaded, err := client.Client.Episode.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusClosed, reloaded.Status)
	require.NotNil(t, reloaded.ClosedAt)

	reloaded, err = client.Client.Episode.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusActive, reloaded.Status)

	require.Eventually(t, func() bool { return pub.closedCount() == 1 },
		2*time.Second, 20*time.Millisecond)
	assert.Equal(t, events.CloseReasonTimeout, pub.lastClosed().Reason)
}

func TestSweepOnceHonorsPerEpisodeTimeout(t *testing.T) {
	client := testdb.NewTestClient(t)
	episodes := NewEpisodeService(client.Client, defaultEpisodeConfig(), nil, nil)
	sweeper := NewSweeper(client.Client, episodes, time.Minute)
	ctx := context.Background()

	// 45 minutes idle: past the 30m chat timeout, inside the 120m
	// development timeout.
	chat, err := episodes.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)
	dev, err := episodes.GetOrOpen(ctx, uuid.New().String(), "development")
	require.NoError(t, err)

	idle := time.Now().Add(-45 * time.Minute)
	for _, id := range []string{chat.ID, dev.ID} {
		err = client.Client.Episode.UpdateOneID(id).SetLastActivityAt(idle).Exec(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, sweeper.sweepOnce(ctx))

	reloaded, err := client.Client.Episode.Get(ctx, chat.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusClosed, reloaded.Status)

	reloaded, err = client.Client.Episode.Get(ctx, dev.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusActive, reloaded.Status)
}

func TestSweepOnceEmpty(t *testing.T) {
	client := testdb.NewTestClient(t)
	episodes := NewEpisodeService(client.Client, defaultEpisodeConfig(), nil, nil)
	sweeper := NewSweeper(client.Client, episodes, time.Minute)

	assert.Equal(t, 0, sweeper.sweepOnce(context.Background()))
}

func TestSweeperLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	episodes := NewEpisodeService(client.Client, defaultEpisodeConfig(), nil, nil)
	sweeper := NewSweeper(client.Client, episodes, 20*time.Millisecond)
	ctx := context.Background()

	ep, err := episodes.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)
	err = client.Client.Episode.UpdateOneID(ep.ID).
		SetLastActivityAt(time.Now().Add(-31 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	sweeper.Start(ctx)
	defer sweeper.Stop()

	require.Eventually(t, func() bool {
		reloaded, err := client.Client.Episode.Get(ctx, ep.ID)
		return err == nil && reloaded.Status == episode.StatusClosed
	}, 3*time.Second, 20*time.Millisecond)
}

func TestSweeperDisabledAndIdempotentStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	episodes := NewEpisodeService(client.Client, defaultEpisodeConfig(), nil, nil)

	disabled := NewSweeper(client.Client, episodes, 0)
	disabled.Start(context.Background())
	disabled.Stop() // never started a loop; must not hang or panic

	sweeper := NewSweeper(client.Client, episodes, time.Minute)
	sweeper.Start(context.Background())
	sweeper.Start(context.Background()) // second start is a no-op
	sweeper.Stop()
}
