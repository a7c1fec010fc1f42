package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/events"
)

const wsTimeout = 10 * time.Second

func TestEventFeedDeliversTurnLifecycle(t *testing.T) {
	app := NewTestApp(t)

	conn := app.DialWS("", events.UserChannel(auth.DefaultUserID))
	hello := conn.Read(wsTimeout)
	require.Equal(t, "connection.established", hello["type"])
	confirmed, _ := conn.ReadUntil("subscription.confirmed", wsTimeout)
	assert.Equal(t, events.UserChannel(auth.DefaultUserID), confirmed["channel"])

	result := app.ChatTurn("", "Add milk to my shopping list")

	opened, _ := conn.ReadUntil(events.EventTypeEpisodeOpened, wsTimeout)
	assert.Equal(t, result.EpisodeID, opened["episode_id"])
	assert.Equal(t, auth.DefaultUserID, opened["user_id"])

	// The action row lands through the buffered logger, so its event may
	// arrive on either side of interaction.recorded.
	byType := map[string]map[string]interface{}{}
	deadline := time.Now().Add(wsTimeout)
	for len(byType) < 2 && time.Now().Before(deadline) {
		msg := conn.Read(time.Until(deadline))
		switch msg["type"] {
		case events.EventTypeActionLogged, events.EventTypeInteractionRecorded:
			byType[msg["type"].(string)] = msg
		}
	}

	logged := byType[events.EventTypeActionLogged]
	require.NotNil(t, logged)
	assert.Equal(t, "list.add", logged["tool_name"])
	assert.Equal(t, true, logged["success"])

	recorded := byType[events.EventTypeInteractionRecorded]
	require.NotNil(t, recorded)
	assert.Equal(t, result.InteractionID, recorded["interaction_id"])
}

func TestEventFeedCatchesUpLateSubscribers(t *testing.T) {
	app := NewTestApp(t)

	// The turn completes before anyone is connected.
	result := app.ChatTurn("", "Hello there")

	conn := app.DialWS("", events.UserChannel(auth.DefaultUserID))
	require.Equal(t, "connection.established", conn.Read(wsTimeout)["type"])

	// Subscribing replays the stored events.
	opened, _ := conn.ReadUntil(events.EventTypeEpisodeOpened, wsTimeout)
	assert.Equal(t, result.EpisodeID, opened["episode_id"])
}

func TestEventFeedRejectsForeignChannels(t *testing.T) {
	stub := NewAuthStub(t, map[string]AuthUser{
		"tok-alice": {UserID: "alice", Role: "user"},
	})
	app := NewTestApp(t, WithAuthStub(stub))

	conn := app.DialWS("tok-alice", events.UserChannel("bob"))
	require.Equal(t, "connection.established", conn.Read(wsTimeout)["type"])

	denied, _ := conn.ReadUntil("subscription.error", wsTimeout)
	assert.Equal(t, events.UserChannel("bob"), denied["channel"])

	// The caller's own channel still works.
	own := app.DialWS("tok-alice", events.UserChannel("alice"))
	require.Equal(t, "connection.established", own.Read(wsTimeout)["type"])
	confirmed, _ := own.ReadUntil("subscription.confirmed", wsTimeout)
	assert.Equal(t, events.UserChannel("alice"), confirmed["channel"])
}

func TestEventFeedFeedbackEvents(t *testing.T) {
	app := NewTestApp(t)
	result := app.ChatTurn("", "Hello there")

	conn := app.DialWS("", events.UserChannel(auth.DefaultUserID))
	require.Equal(t, "connection.established", conn.Read(wsTimeout)["type"])
	conn.ReadUntil("subscription.confirmed", wsTimeout)

	four := 4.0
	var created struct {
		FeedbackID string `json:"feedback_id"`
	}
	status := app.doJSON("POST", "/api/feedback/"+result.InteractionID, "",
		map[string]interface{}{"kind": "rating", "value": four}, &created)
	require.Equal(t, 201, status)

	recorded, _ := conn.ReadUntil(events.EventTypeFeedbackRecorded, wsTimeout)
	assert.Equal(t, created.FeedbackID, recorded["feedback_id"])
	assert.Equal(t, "rating", recorded["kind"])
	assert.Equal(t, four, recorded["value"])
}
