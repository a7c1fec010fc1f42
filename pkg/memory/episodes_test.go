package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/fault"
	testdb "github.com/stewardhq/steward/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEpisodePublisher struct {
	mu     sync.Mutex
	opened []events.EpisodeOpenedPayload
	closed []events.EpisodeClosedPayload
}

func (m *mockEpisodePublisher) PublishEpisodeOpened(_ context.Context, _ string, p events.EpisodeOpenedPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = append(m.opened, p)
	return nil
}

func (m *mockEpisodePublisher) PublishEpisodeClosed(_ context.Context, _ string, p events.EpisodeClosedPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = append(m.closed, p)
	return nil
}

func (m *mockEpisodePublisher) openedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.opened)
}

func (m *mockEpisodePublisher) closedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.closed)
}

func (m *mockEpisodePublisher) lastClosed() events.EpisodeClosedPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed[len(m.closed)-1]
}

// defaultEpisodeConfig relies on the builtin per-context timeouts
// (chat 30m, development 120m, planning 60m, general 30m).
func defaultEpisodeConfig() *config.EpisodeConfig {
	return &config.EpisodeConfig{}
}

func newEpisodeService(t *testing.T) (*EpisodeService, *database.Client, *mockEpisodePublisher) {
	t.Helper()
	client := testdb.NewTestClient(t)
	pub := &mockEpisodePublisher{}
	svc := NewEpisodeService(client.Client, defaultEpisodeConfig(), nil, pub)
	return svc, client, pub
}

func TestGetOrOpenCreatesEpisode(t *testing.T) {
	svc, _, pub := newEpisodeService(t)
	userID := uuid.New().String()

	ep, err := svc.GetOrOpen(context.Background(), userID, "chat")
	require.NoError(t, err)
	assert.Equal(t, userID, ep.UserID)
	assert.Equal(t, episode.ContextTypeChat, ep.ContextType)
	assert.Equal(t, episode.StatusActive, ep.Status)
	assert.Equal(t, 30, ep.TimeoutMinutes)
	assert.Equal(t, 0, ep.MessageCount)
	assert.NotEmpty(t, ep.ID)

	require.Equal(t, 1, pub.openedCount())
	assert.Equal(t, events.EventTypeEpisodeOpened, pub.opened[0].Type)
	assert.Equal(t, ep.ID, pub.opened[0].EpisodeID)
}

func TestGetOrOpenReturnsSameActiveEpisode(t *testing.T) {
	svc, _, pub := newEpisodeService(t)
	userID := uuid.New().String()

	first, err := svc.GetOrOpen(context.Background(), userID, "chat")
	require.NoError(t, err)
	second, err := svc.GetOrOpen(context.Background(), userID, "chat")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, pub.openedCount())
}

func TestGetOrOpenDefaultsToChat(t *testing.T) {
	svc, _, _ := newEpisodeService(t)

	ep, err := svc.GetOrOpen(context.Background(), uuid.New().String(), "")
	require.NoError(t, err)
	assert.Equal(t, episode.ContextTypeChat, ep.ContextType)
}

func TestGetOrOpenRejectsUnknownContext(t *testing.T) {
	svc, _, _ := newEpisodeService(t)

	_, err := svc.GetOrOpen(context.Background(), uuid.New().String(), "coding")
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))

	_, err = svc.GetOrOpen(context.Background(), "", "chat")
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))
}

func TestGetOrOpenRotatesStaleEpisode(t *testing.T) {
	svc, client, pub := newEpisodeService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	old, err := svc.GetOrOpen(ctx, userID, "chat")
	require.NoError(t, err)

	// Idle one second past the 30 minute timeout.
	err = client.Client.Episode.UpdateOneID(old.ID).
		SetLastActivityAt(time.Now().Add(-30*time.Minute - time.Second)).
		Exec(ctx)
	require.NoError(t, err)

	fresh, err := svc.GetOrOpen(ctx, userID, "chat")
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, fresh.ID)
	assert.Equal(t, episode.StatusActive, fresh.Status)

	reloaded, err := client.Client.Episode.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusClosed, reloaded.Status)
	require.NotNil(t, reloaded.ClosedAt)

	assert.Equal(t, 2, pub.openedCount())
	require.Eventually(t, func() bool { return pub.closedCount() == 1 },
		2*time.Second, 20*time.Millisecond)
	assert.Equal(t, events.CloseReasonTimeout, pub.lastClosed().Reason)
	assert.Equal(t, old.ID, pub.lastClosed().EpisodeID)
}

func TestGetOrOpenKeepsEpisodeInsideTimeout(t *testing.T) {
	svc, client, _ := newEpisodeService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	ep, err := svc.GetOrOpen(ctx, userID, "chat")
	require.NoError(t, err)

	// Idle one second short of the timeout: the episode continues.
	err = client.Client.Episode.UpdateOneID(ep.ID).
		SetLastActivityAt(time.Now().Add(-30*time.Minute + time.Second)).
		Exec(ctx)
	require.NoError(t, err)

	same, err := svc.GetOrOpen(ctx, userID, "chat")
	require.NoError(t, err)
	assert.Equal(t, ep.ID, same.ID)
}

func TestGetOrOpenSeparateContexts(t *testing.T) {
	svc, _, _ := newEpisodeService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	chat, err := svc.GetOrOpen(ctx, userID, "chat")
	require.NoError(t, err)
	planning, err := svc.GetOrOpen(ctx, userID, "planning")
	require.NoError(t, err)

	assert.NotEqual(t, chat.ID, planning.ID)
	assert.Equal(t, 60, planning.TimeoutMinutes)
	assert.Equal(t, episode.StatusActive, chat.Status)
	assert.Equal(t, episode.StatusActive, planning.Status)
}

func TestGetOrOpenConcurrent(t *testing.T) {
	svc, _, pub := newEpisodeService(t)
	userID := uuid.New().String()

	var wg sync.WaitGroup
	var mu sync.Mutex
	ids := make(map[string]bool)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ep, err := svc.GetOrOpen(context.Background(), userID, "chat")
			require.NoError(t, err)
			mu.Lock()
			ids[ep.ID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 1, "concurrent opens must converge on one episode")
	assert.Equal(t, 1, pub.openedCount())
}

func TestAppendTurnBumpsActivity(t *testing.T) {
	svc, _, _ := newEpisodeService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	ep, err := svc.GetOrOpen(ctx, userID, "chat")
	require.NoError(t, err)
	before := ep.LastActivityAt

	updated, err := svc.AppendTurn(ctx, ep.ID, "add milk to my list", "Added milk.")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.MessageCount)
	assert.False(t, updated.LastActivityAt.Before(before))

	updated, err = svc.AppendTurn(ctx, ep.ID, "and eggs", "Added eggs.")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.MessageCount)

	turns, err := svc.RecentTurns(ctx, ep.ID, 5)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "and eggs", turns[0].UserText, "newest first")
	assert.Equal(t, "Added eggs.", turns[0].AssistantText)
	assert.Equal(t, "add milk to my list", turns[1].UserText)
}

func TestAppendTurnMissingEpisode(t *testing.T) {
	svc, _, _ := newEpisodeService(t)

	_, err := svc.AppendTurn(context.Background(), uuid.New().String(), "hi", "hello")
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindNotFound))

	_, err = svc.AppendTurn(context.Background(), "", "hi", "hello")
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))
}

func TestAppendTurnAfterCloseStillRecords(t *testing.T) {
	svc, client, _ := newEpisodeService(t)
	ctx := context.Background()

	ep, err := svc.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)
	_, err = svc.Close(ctx, ep.ID)
	require.NoError(t, err)

	updated, err := svc.AppendTurn(ctx, ep.ID, "one last thing", "Noted.")
	require.NoError(t, err, "a sweeper race must not lose the exchange")
	assert.Equal(t, 1, updated.MessageCount)
	assert.Equal(t, episode.StatusClosed, updated.Status, "appending must not reopen")

	turns, err := svc.RecentTurns(ctx, ep.ID, 5)
	require.NoError(t, err)
	assert.Len(t, turns, 1)
	_ = client
}

func TestAppendTurnTriggersSummaryAtThreshold(t *testing.T) {
	client := testdb.NewTestClient(t)
	completer := &mockCompleter{out: "Planned groceries for the week."}
	summarizer := NewSummarizer(client.Client, completer, &config.MemoryConfig{
		SummaryTriggerMessages: 2,
		SummaryMaxWords:        300,
	})
	svc := NewEpisodeService(client.Client, defaultEpisodeConfig(), summarizer, nil)
	ctx := context.Background()

	ep, err := svc.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)

	_, err = svc.AppendTurn(ctx, ep.ID, "what do we need", "Milk and eggs.")
	require.NoError(t, err)
	assert.Equal(t, 0, completer.callCount(), "no summary below the threshold")

	_, err = svc.AppendTurn(ctx, ep.ID, "add bread too", "Added bread.")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		reloaded, err := client.Client.Episode.Get(ctx, ep.ID)
		return err == nil && reloaded.Summary != nil
	}, 3*time.Second, 20*time.Millisecond)

	reloaded, err := client.Client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Planned groceries for the week.", *reloaded.Summary)

	// Crossing happens once; the next turn must not re-summarize.
	_, err = svc.AppendTurn(ctx, ep.ID, "anything else", "That is all.")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, completer.callCount())
}

func TestRecentTurnsNewestFirstCapped(t *testing.T) {
	svc, client, _ := newEpisodeService(t)
	ctx := context.Background()

	ep, err := svc.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		_, err := client.Client.Turn.Create().
			SetID(uuid.New().String()).
			SetEpisodeID(ep.ID).
			SetUserText(fmt.Sprintf("q%d", i)).
			SetAssistantText(fmt.Sprintf("a%d", i)).
			SetCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	turns, err := svc.RecentTurns(ctx, ep.ID, 5)
	require.NoError(t, err)
	require.Len(t, turns, 5)
	assert.Equal(t, "q6", turns[0].UserText)
	assert.Equal(t, "q2", turns[4].UserText)

	// k <= 0 falls back to the default window of five.
	turns, err = svc.RecentTurns(ctx, ep.ID, 0)
	require.NoError(t, err)
	assert.Len(t, turns, 5)

	_, err = svc.RecentTurns(ctx, "", 5)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindInvalid))
}

func TestCloseExplicit(t *testing.T) {
	svc, _, pub := newEpisodeService(t)
	ctx := context.Background()

	ep, err := svc.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)
	_, err = svc.AppendTurn(ctx, ep.ID, "bye", "Goodbye!")
	require.NoError(t, err)

	closed, err := svc.Close(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)

	require.Eventually(t, func() bool { return pub.closedCount() == 1 },
		2*time.Second, 20*time.Millisecond)
	payload := pub.lastClosed()
	assert.Equal(t, events.CloseReasonExplicit, payload.Reason)
	assert.Equal(t, 1, payload.MessageCount)
	assert.False(t, payload.Summarized, "no summarizer configured")

	// Closing again is a no-op and must not publish a second event.
	again, err := svc.Close(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, closed.ID, again.ID)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, pub.closedCount())

	_, err = svc.Close(ctx, uuid.New().String())
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindNotFound))
}

func TestCloseSummarizesAndAnnounces(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := &mockEpisodePublisher{}
	completer := &mockCompleter{out: "Planned a dinner party."}
	summarizer := NewSummarizer(client.Client, completer, &config.MemoryConfig{
		SummaryTriggerMessages: 20,
		SummaryMaxWords:        300,
	})
	svc := NewEpisodeService(client.Client, defaultEpisodeConfig(), summarizer, pub)
	ctx := context.Background()

	ep, err := svc.GetOrOpen(ctx, uuid.New().String(), "chat")
	require.NoError(t, err)
	_, err = svc.AppendTurn(ctx, ep.ID, "plan a dinner party", "Here is the plan.")
	require.NoError(t, err)

	_, err = svc.Close(ctx, ep.ID)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return pub.closedCount() == 1 },
		3*time.Second, 20*time.Millisecond)
	assert.True(t, pub.lastClosed().Summarized)

	reloaded, err := client.Client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Equal(t, "Planned a dinner party.", *reloaded.Summary)
}
