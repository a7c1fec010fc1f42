package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stewardhq/steward/pkg/database"
	testdb "github.com/stewardhq/steward/test/database"
	"github.com/stewardhq/steward/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedTestEnv holds all wired-up components for an integration test.
type feedTestEnv struct {
	dbClient  *database.Client
	publisher *EventPublisher
	store     *EventStore
	manager   *ConnectionManager
	listener  *NotifyListener
	server    *httptest.Server
	userID    string // Unique per test so channels don't interfere
	channel   string // user:<userID>
}

// setupFeedTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupFeedTest(t *testing.T) *feedTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	userID := uuid.New().String()
	channel := UserChannel(userID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	store := NewEventStore(dbClient.Client)
	manager := NewConnectionManager(NewCatchupAdapter(store), 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade; the test client is an admin
	// so it may join any channel, including the activity feed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn, Subscriber{UserID: "admin", Admin: true})
	}))
	t.Cleanup(func() { server.Close() })

	return &feedTestEnv{
		dbClient:  dbClient,
		publisher: publisher,
		store:     store,
		manager:   manager,
		listener:  listener,
		server:    server,
		userID:    userID,
		channel:   channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the
// connection. The connection is automatically closed on test cleanup.
func (env *feedTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the given channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *feedTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for LISTEN to complete on the NotifyListener's dedicated
	// connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// openedPayload builds an episode.opened payload for the env's user.
func (env *feedTestEnv) openedPayload(episodeID string) EpisodeOpenedPayload {
	return EpisodeOpenedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeEpisodeOpened,
			UserID:    env.userID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		EpisodeID:   episodeID,
		ContextType: "chat",
	}
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	// Publish first event (episode opened)
	err := env.publisher.PublishEpisodeOpened(ctx, env.userID, env.openedPayload("ep-1"))
	require.NoError(t, err)

	// Publish second event (action logged)
	err = env.publisher.PublishActionLogged(ctx, env.userID, ActionLoggedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeActionLogged,
			UserID:    env.userID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ActionID: "act-1",
		ToolName: "list.add",
		Success:  true,
	})
	require.NoError(t, err)

	// Query persisted events via EventStore
	events, err := env.store.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.userID, events[0].UserID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeEpisodeOpened, events[0].Payload["type"])
	assert.Equal(t, "ep-1", events[0].Payload["episode_id"])

	assert.Equal(t, EventTypeActionLogged, events[1].Payload["type"])
	assert.Equal(t, "list.add", events[1].Payload["tool_name"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t, env.channel)

	// Publish via EventPublisher
	err := env.publisher.PublishEpisodeOpened(ctx, env.userID, env.openedPayload("ep-ws-1"))
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeEpisodeOpened, msg["type"])
	assert.Equal(t, "ep-ws-1", msg["episode_id"])
	assert.Equal(t, env.userID, msg["user_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_ActivityMirrorDelivery(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	// Admin subscribes to the global activity feed
	conn := env.subscribeAndWait(t, ActivityChannel)

	err := env.publisher.PublishEpisodeOpened(ctx, env.userID, env.openedPayload("ep-act-1"))
	require.NoError(t, err)

	// The activity feed is shared; skip events published by concurrent tests.
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.True(t, time.Now().Before(deadline), "activity mirror event did not arrive")
		msg := readJSONTimeout(t, conn, 5*time.Second)
		if msg["user_id"] != env.userID {
			continue
		}
		assert.Equal(t, EventTypeEpisodeOpened, msg["type"])
		assert.Equal(t, "ep-act-1", msg["episode_id"])
		// The mirror is transient — no db_event_id on the activity channel.
		assert.Nil(t, msg["db_event_id"])
		break
	}

	// Exactly one durable row exists, under the user channel.
	events, err := env.store.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	activityRows, err := env.store.GetEventsSince(ctx, ActivityChannel, 0, 100)
	require.NoError(t, err)
	for _, evt := range activityRows {
		assert.NotEqual(t, env.userID, evt.UserID, "activity mirror must not be persisted")
	}
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishActionLogged(ctx, env.userID, ActionLoggedPayload{
			BasePayload: BasePayload{
				Type:      EventTypeActionLogged,
				UserID:    env.userID,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			},
			ActionID: uuid.New().String(),
			ToolName: fmt.Sprintf("tool.%d", i),
			Success:  true,
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.store.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeActionLogged, msg["type"])
		assert.Equal(t, fmt.Sprintf("tool.%d", i), msg["tool_name"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, fmt.Sprintf("tool.%d", i), msg["tool_name"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}

func TestIntegration_OversizePayloadTruncatedOnNotify(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, env.channel)

	// A tool name far beyond the 8000-byte NOTIFY limit. The full payload
	// is persisted, but the broadcast carries only the truncation stub.
	err := env.publisher.PublishActionLogged(ctx, env.userID, ActionLoggedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeActionLogged,
			UserID:    env.userID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ActionID: "act-big",
		ToolName: strings.Repeat("x", 9000),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeActionLogged, msg["type"])
	assert.Equal(t, env.userID, msg["user_id"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotNil(t, msg["db_event_id"])
	assert.Nil(t, msg["tool_name"], "stub must not carry the oversized field")

	// The client can recover the full event from the durable row.
	events, err := env.store.GetEventsSince(ctx, env.channel, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, strings.Repeat("x", 9000), events[0].Payload["tool_name"])
}

func TestIntegration_DeleteEventsBefore(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	require.NoError(t, env.publisher.PublishEpisodeOpened(ctx, env.userID, env.openedPayload("ep-old")))
	require.NoError(t, env.publisher.PublishEpisodeOpened(ctx, env.userID, env.openedPayload("ep-old-2")))

	// A cutoff in the future removes everything, the way the retention
	// sweeper would once rows age out.
	n, err := env.store.DeleteEventsBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 2)

	events, err := env.store.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events)
}
