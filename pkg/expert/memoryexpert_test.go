package expert

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/memory"
	testdb "github.com/stewardhq/steward/test/database"
)

func newMemoryExpert(t *testing.T) *memoryExpert {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.MemoryConfig{RecallK: 5, DecayHalflifeDays: 30}
	facts := memory.NewFactService(client.Client, client.DB(), cfg)
	return &memoryExpert{facts: facts}
}

func TestMemoryCanHandle(t *testing.T) {
	e := &memoryExpert{}

	assert.Equal(t, 0.95, e.CanHandle("Remember that I prefer oat milk"))
	assert.Equal(t, 0.7, e.CanHandle("What kind of milk do I like?"))
	assert.Equal(t, 0.7, e.CanHandle("what's my favorite color"))
	assert.Equal(t, 0.0, e.CanHandle("turn on the lights"))
}

func TestMemoryStoreAndRecall(t *testing.T) {
	e := newMemoryExpert(t)
	ctx := context.Background()

	stored := e.Execute(ctx, testTurn(), "Remember that I prefer oat milk")
	require.True(t, stored.Success)
	assert.True(t, stored.CausedSideEffects)
	require.Len(t, stored.Calls, 1)
	assert.Equal(t, "memory.store", stored.Calls[0].Tool)
	assert.Contains(t, stored.Summary, "I prefer oat milk")

	recalled := e.Execute(ctx, testTurn(), "What kind of milk do I like?")
	require.True(t, recalled.Success)
	assert.False(t, recalled.CausedSideEffects)
	assert.Contains(t, recalled.Summary, "oat milk")
	require.NotEmpty(t, recalled.Artifacts)
	assert.Contains(t, recalled.Artifacts[0]["text"], "oat milk")
	assert.Equal(t, "memory.search", recalled.Calls[0].Tool)
}

func TestMemoryRecallRespectsUserIsolation(t *testing.T) {
	e := newMemoryExpert(t)
	ctx := context.Background()

	mine := testTurn()
	theirs := TurnContext{UserID: "user-2", SessionID: "session-2", RequestID: "req-2"}

	require.True(t, e.Execute(ctx, mine, "remember that I prefer oat milk").Success)

	recalled := e.Execute(ctx, theirs, "what kind of milk do I like?")
	require.True(t, recalled.Success)
	assert.Empty(t, recalled.Artifacts)
	assert.Contains(t, recalled.Summary, "don't have anything")
}

func TestMemoryStoreNothingIsInvalid(t *testing.T) {
	e := newMemoryExpert(t)

	result := e.Execute(context.Background(), testTurn(), "remember that   ")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindInvalid, result.Err)
}

func TestMemoryRecallMergesRemoteRouter(t *testing.T) {
	e := newMemoryExpert(t)
	remote := &collaborator{}
	remote.respond(`{"results":[{"text":"buys coffee beans from the roastery"}]}`)
	e.remote = serviceClient(t, "memory", remote)
	ctx := context.Background()

	require.True(t, e.Execute(ctx, testTurn(), "remember that I prefer oat milk").Success)

	recalled := e.Execute(ctx, testTurn(), "what do I like?")
	require.True(t, recalled.Success)

	require.Equal(t, 1, remote.count())
	req := remote.at(0)
	assert.Equal(t, "/api/memory/search", req.Path)
	assert.Equal(t, "user-1", req.Body["user_id"])

	assert.Contains(t, recalled.Summary, "oat milk")
	assert.Contains(t, recalled.Summary, "coffee beans")
	require.Len(t, recalled.Calls, 2)
	assert.Equal(t, "memory.search_remote", recalled.Calls[1].Tool)
}

func TestMemoryRemoteFailureIsBestEffort(t *testing.T) {
	e := newMemoryExpert(t)
	remote := &collaborator{}
	remote.fail(http.StatusServiceUnavailable)
	e.remote = serviceClient(t, "memory", remote)
	ctx := context.Background()

	require.True(t, e.Execute(ctx, testTurn(), "remember that I prefer oat milk").Success)

	recalled := e.Execute(ctx, testTurn(), "what do I like?")
	require.True(t, recalled.Success, "local results carry the turn")
	assert.Contains(t, recalled.Summary, "oat milk")
	require.Len(t, recalled.Calls, 2)
	assert.False(t, recalled.Calls[1].Success)
	assert.Equal(t, fault.KindUnavailable, recalled.Calls[1].Err)
}
