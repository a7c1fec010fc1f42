package e2e

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaction "github.com/stewardhq/steward/ent/actionlog"
	"github.com/stewardhq/steward/pkg/api"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/orchestrator"
)

func TestChatRejectsBadMessages(t *testing.T) {
	app := NewTestApp(t)

	status, envelope := app.ChatError("", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid", envelope.Error)
	assert.NotEmpty(t, envelope.RequestID)

	status, envelope = app.ChatError("", strings.Repeat("a", expert.MaxQueryBytes+1))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid", envelope.Error)
}

func TestChatRequiresSessionOutsideLocalDev(t *testing.T) {
	stub := NewAuthStub(t, map[string]AuthUser{
		"tok-alice": {UserID: "alice", Role: "user"},
	})
	app := NewTestApp(t, WithAuthStub(stub))

	status, envelope := app.ChatError("", "Hello there")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthorized", envelope.Error)

	status, _ = app.ChatError("tok-bogus", "Hello there")
	assert.Equal(t, http.StatusUnauthorized, status)

	result := app.ChatTurn("tok-alice", "Hello there")
	assert.NotEmpty(t, result.Response)
	assert.NotEmpty(t, result.EpisodeID)
}

func TestFeedbackRoundTrip(t *testing.T) {
	app := NewTestApp(t)
	result := app.ChatTurn("", "Hello there")

	five := 5.0
	var created api.FeedbackResponse
	status := app.doJSON(http.MethodPost, "/api/feedback/"+result.InteractionID, "",
		api.FeedbackRequest{Kind: "rating", Value: &five}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, created.FeedbackID)
	assert.Equal(t, result.InteractionID, created.InteractionID)
	assert.Equal(t, "rating", created.Kind)

	// Unknown interaction.
	var envelope api.ErrorResponse
	status = app.doJSON(http.MethodPost, "/api/feedback/no-such-interaction", "",
		api.FeedbackRequest{Kind: "rating", Value: &five}, &envelope)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", envelope.Error)

	// Out-of-range rating.
	nine := 9.0
	status = app.doJSON(http.MethodPost, "/api/feedback/"+result.InteractionID, "",
		api.FeedbackRequest{Kind: "rating", Value: &nine}, &envelope)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid", envelope.Error)
}

func TestChatStatusTracksEpisode(t *testing.T) {
	app := NewTestApp(t)

	var before orchestrator.StatusReport
	status := app.doJSON(http.MethodGet, "/api/chat/status", "", nil, &before)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, before.ActiveEpisode)
	assert.Contains(t, before.Enhancements.Experts, "list")
	assert.True(t, before.Enhancements.Memory)

	result := app.ChatTurn("", "Hello there")

	var after orchestrator.StatusReport
	status = app.doJSON(http.MethodGet, "/api/chat/status", "", nil, &after)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, after.ActiveEpisode)
	assert.Equal(t, result.EpisodeID, after.ActiveEpisode.ID)
	assert.Equal(t, "chat", after.ActiveEpisode.ContextType)
}

func TestAdminSurfaces(t *testing.T) {
	app := NewTestApp(t)

	var experts api.ExpertsResponse
	status := app.doJSON(http.MethodGet, "/api/experts", "", nil, &experts)
	require.Equal(t, http.StatusOK, status)
	names := make([]string, 0, len(experts.Experts))
	for _, d := range experts.Experts {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "memory")
	assert.Contains(t, names, "calendar")

	var probe expert.ProbeResult
	status = app.doJSON(http.MethodPost, "/api/experts/list/probe", "",
		api.ProbeRequest{Query: "add milk to my shopping list"}, &probe)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "list", probe.Expert)
	assert.True(t, probe.WouldExecute)
	assert.GreaterOrEqual(t, probe.Score, 0.5)

	var envelope api.ErrorResponse
	status = app.doJSON(http.MethodPost, "/api/experts/nonesuch/probe", "",
		api.ProbeRequest{Query: "anything"}, &envelope)
	assert.Equal(t, http.StatusNotFound, status)

	app.ChatTurn("", "Add milk to my shopping list")
	waitForActions(t, app, "list.add", 1)

	var actions api.ActionsResponse
	status = app.doJSON(http.MethodGet, "/api/actions/recent", "", nil, &actions)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, actions.Count)
	assert.Equal(t, "list.add", actions.Actions[0].ToolName)
}

func TestUserIsolation(t *testing.T) {
	stub := NewAuthStub(t, map[string]AuthUser{
		"tok-alice": {UserID: "alice", Role: "user"},
		"tok-bob":   {UserID: "bob", Role: "user"},
		"tok-root":  {UserID: "root", Role: "admin"},
	})
	app := NewTestApp(t, WithAuthStub(stub))

	result := app.ChatTurn("tok-alice", "Hello there")

	// Bob cannot rate Alice's interaction; the miss reads as not-found,
	// not forbidden, so interaction ids don't leak.
	five := 5.0
	var envelope api.ErrorResponse
	status := app.doJSON(http.MethodPost, "/api/feedback/"+result.InteractionID, "tok-bob",
		api.FeedbackRequest{Kind: "rating", Value: &five}, &envelope)
	assert.Equal(t, http.StatusNotFound, status)

	// Status override is admin-only.
	status = app.doJSON(http.MethodGet, "/api/chat/status?user_id=alice", "tok-bob", nil, &envelope)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "forbidden", envelope.Error)

	var report orchestrator.StatusReport
	status = app.doJSON(http.MethodGet, "/api/chat/status?user_id=alice", "tok-root", nil, &report)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, report.ActiveEpisode)
	assert.Equal(t, result.EpisodeID, report.ActiveEpisode.ID)

	// Admin surfaces reject plain users outright.
	status = app.doJSON(http.MethodGet, "/api/experts", "tok-alice", nil, &envelope)
	assert.Equal(t, http.StatusForbidden, status)
	status = app.doJSON(http.MethodGet, "/api/actions/recent", "tok-alice", nil, &envelope)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAllExpertsTimingOutStillPersistsTurn(t *testing.T) {
	app := NewTestApp(t)
	app.Collaborators.Lists.Delay(3 * time.Second)

	result := app.ChatTurn("", "Add milk to my shopping list")

	assert.True(t, result.Partial)
	assert.Empty(t, result.ExecutedExperts)
	assert.True(t, strings.HasPrefix(result.Response, "Heads up:"), "got: %q", result.Response)
	assert.NotEmpty(t, result.InteractionID)

	rows := waitForActions(t, app, "list.add", 1)
	assert.False(t, rows[0].Success)
	require.NotNil(t, rows[0].ErrorKind)
	assert.Equal(t, "timeout", *rows[0].ErrorKind)

	count, err := app.EntClient.ActionLog.Query().
		Where(entaction.SuccessEQ(true)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
