package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/ent/episode"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/llm"
	testdb "github.com/stewardhq/steward/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCompleter cans gateway completions for summarizer tests.
type mockCompleter struct {
	mu       sync.Mutex
	out      string
	err      error
	requests []llm.Request
}

func (m *mockCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	return m.out, nil
}

func (m *mockCompleter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockCompleter) lastRequest() llm.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

func summarizerConfig() *config.MemoryConfig {
	return &config.MemoryConfig{
		SummaryTriggerMessages: 20,
		SummaryMaxWords:        300,
	}
}

// seedEpisode inserts an episode with turns, bypassing the service.
func seedEpisode(t *testing.T, client *ent.Client, userID string, exchanges []string) *ent.Episode {
	t.Helper()
	ctx := context.Background()
	ep, err := client.Episode.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetContextType(episode.ContextTypeChat).
		SetTimeoutMinutes(30).
		SetMessageCount(len(exchanges)).
		Save(ctx)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i, text := range exchanges {
		_, err := client.Turn.Create().
			SetID(uuid.New().String()).
			SetEpisodeID(ep.ID).
			SetUserText(text).
			SetAssistantText(fmt.Sprintf("reply to %q", text)).
			SetCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}
	return ep
}

func TestSummarizeEpisodeStoresSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	completer := &mockCompleter{out: "Planned the week's groceries and a dentist visit."}
	s := NewSummarizer(client.Client, completer, summarizerConfig())

	ep := seedEpisode(t, client.Client, uuid.New().String(),
		[]string{"what do we need this week", "book the dentist"})

	err := s.SummarizeEpisode(context.Background(), ep.ID)
	require.NoError(t, err)

	reloaded, err := client.Client.Episode.Get(context.Background(), ep.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Equal(t, "Planned the week's groceries and a dentist visit.", *reloaded.Summary)

	require.Equal(t, 1, completer.callCount())
	req := completer.lastRequest()
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "300 words")
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
	assert.Contains(t, req.Messages[1].Content, "what do we need this week")
	assert.Contains(t, req.Messages[1].Content, "book the dentist")
}

func TestSummarizeTranscriptOldestFirst(t *testing.T) {
	client := testdb.NewTestClient(t)
	completer := &mockCompleter{out: "ok"}
	s := NewSummarizer(client.Client, completer, summarizerConfig())

	ep := seedEpisode(t, client.Client, uuid.New().String(),
		[]string{"first message", "second message", "third message"})

	require.NoError(t, s.SummarizeEpisode(context.Background(), ep.ID))

	prompt := completer.lastRequest().Messages[1].Content
	first := strings.Index(prompt, "first message")
	third := strings.Index(prompt, "third message")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, third, 0)
	assert.Less(t, first, third, "transcript reads oldest to newest")
}

func TestSummarizeEpisodeFallbackOnGatewayError(t *testing.T) {
	client := testdb.NewTestClient(t)
	completer := &mockCompleter{err: errors.New("backend down")}
	s := NewSummarizer(client.Client, completer, summarizerConfig())

	ep := seedEpisode(t, client.Client, uuid.New().String(),
		[]string{"plan my garden layout"})

	err := s.SummarizeEpisode(context.Background(), ep.ID)
	require.NoError(t, err, "gateway failure must not fail the summary path")

	reloaded, err := client.Client.Episode.Get(context.Background(), ep.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Contains(t, *reloaded.Summary, "1 exchanges in a chat context")
	assert.Contains(t, *reloaded.Summary, "plan my garden layout")
}

func TestSummarizeEpisodeEmptyCompletionFallsBack(t *testing.T) {
	client := testdb.NewTestClient(t)
	completer := &mockCompleter{out: "   "}
	s := NewSummarizer(client.Client, completer, summarizerConfig())

	ep := seedEpisode(t, client.Client, uuid.New().String(), []string{"hello there"})

	require.NoError(t, s.SummarizeEpisode(context.Background(), ep.ID))

	reloaded, err := client.Client.Episode.Get(context.Background(), ep.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Contains(t, *reloaded.Summary, "hello there")
}

func TestSummarizeEpisodeCapsWords(t *testing.T) {
	client := testdb.NewTestClient(t)
	completer := &mockCompleter{out: strings.Repeat("word ", 400)}
	cfg := summarizerConfig()
	cfg.SummaryMaxWords = 50
	s := NewSummarizer(client.Client, completer, cfg)

	ep := seedEpisode(t, client.Client, uuid.New().String(), []string{"talk a lot"})

	require.NoError(t, s.SummarizeEpisode(context.Background(), ep.ID))

	reloaded, err := client.Client.Episode.Get(context.Background(), ep.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Len(t, strings.Fields(*reloaded.Summary), 50)
}

func TestSummarizeEpisodeWithoutTurns(t *testing.T) {
	client := testdb.NewTestClient(t)
	completer := &mockCompleter{out: "should not be called"}
	s := NewSummarizer(client.Client, completer, summarizerConfig())

	ep := seedEpisode(t, client.Client, uuid.New().String(), nil)

	require.NoError(t, s.SummarizeEpisode(context.Background(), ep.ID))
	assert.Equal(t, 0, completer.callCount())

	reloaded, err := client.Client.Episode.Get(context.Background(), ep.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Summary)
}

func TestSummarizeEpisodeMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := NewSummarizer(client.Client, &mockCompleter{out: "x"}, summarizerConfig())

	err := s.SummarizeEpisode(context.Background(), uuid.New().String())
	require.Error(t, err)
}

func TestCapWords(t *testing.T) {
	assert.Equal(t, "a b c", capWords("a b c", 3))
	assert.Equal(t, "a b c", capWords("  a b c  ", 5))
	assert.Equal(t, "a b", capWords("a b c", 2))
	assert.Equal(t, "", capWords("", 10))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "exact", clip("exact", 5))
	assert.Equal(t, "lon…", clip("longer", 3))
	// Rune-aware: multibyte input must not be split mid-rune.
	assert.Equal(t, "héll…", clip("héllö wörld", 4))
}
