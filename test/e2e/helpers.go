package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/api"
	"github.com/stewardhq/steward/pkg/orchestrator"
)

// doJSON issues one request against the app and decodes the JSON reply
// into out (when out is non-nil). token goes out as X-Session-ID when
// non-empty. The response status is returned for the caller to assert.
func (a *TestApp) doJSON(method, path, token string, body, out interface{}) int {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.BaseURL+path, reader)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Session-ID", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	if out != nil {
		require.NoError(a.t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

// ChatTurn runs one blocking chat turn as the given token (empty for
// local-dev) and requires success.
func (a *TestApp) ChatTurn(token, message string) orchestrator.TurnResult {
	a.t.Helper()
	var result orchestrator.TurnResult
	status := a.doJSON(http.MethodPost, "/api/chat", token,
		map[string]string{"message": message}, &result)
	require.Equal(a.t, http.StatusOK, status)
	return result
}

// ChatError runs one blocking chat turn expecting an error envelope, and
// returns it with the HTTP status.
func (a *TestApp) ChatError(token, message string) (int, api.ErrorResponse) {
	a.t.Helper()
	var envelope api.ErrorResponse
	status := a.doJSON(http.MethodPost, "/api/chat", token,
		map[string]string{"message": message}, &envelope)
	return status, envelope
}

// sseEvent is one decoded server-sent event from /api/chat/stream.
type sseEvent struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"` // token events
	Kind  string `json:"kind,omitempty"`  // error events

	// end events
	InteractionID   string   `json:"interaction_id,omitempty"`
	EpisodeID       string   `json:"episode_id,omitempty"`
	ExecutedExperts []string `json:"executed_experts,omitempty"`
	Partial         bool     `json:"partial,omitempty"`
}

// ChatStream runs one streaming turn and returns the decoded events.
func (a *TestApp) ChatStream(token, message string) []sseEvent {
	a.t.Helper()

	raw, err := json.Marshal(map[string]string{"message": message})
	require.NoError(a.t, err)
	req, err := http.NewRequest(http.MethodPost, a.BaseURL+"/api/chat/stream", bytes.NewReader(raw))
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-ID", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(a.t, http.StatusOK, resp.StatusCode)
	require.Equal(a.t, "text/event-stream", resp.Header.Get("Content-Type"))

	var out []sseEvent
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var evt sseEvent
		require.NoError(a.t, json.Unmarshal([]byte(line[len("data: "):]), &evt))
		out = append(out, evt)
		if evt.Type == "end" {
			break
		}
	}
	return out
}

// wsClient is a test WebSocket connection to the live event feed.
type wsClient struct {
	conn *websocket.Conn
	t    *testing.T
}

// DialWS connects to /ws/events. channels pre-subscribes via the query
// string; token authenticates via ?token= the way browser clients do.
func (a *TestApp) DialWS(token string, channels ...string) *wsClient {
	a.t.Helper()

	url := a.WSURL
	sep := "?"
	if token != "" {
		url += sep + "token=" + token
		sep = "&"
	}
	if len(channels) > 0 {
		url += sep + "channels=" + strings.Join(channels, ",")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(a.t, err)

	c := &wsClient{conn: conn, t: a.t}
	a.t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return c
}

// Read returns the next message as a generic JSON object.
func (c *wsClient) Read(timeout time.Duration) map[string]interface{} {
	c.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := c.conn.Read(ctx)
	require.NoError(c.t, err, "websocket read")

	var msg map[string]interface{}
	require.NoError(c.t, json.Unmarshal(data, &msg))
	return msg
}

// ReadUntil reads messages until one of the given type arrives, failing
// the test after the timeout. Other messages are collected and returned
// alongside the match.
func (c *wsClient) ReadUntil(msgType string, timeout time.Duration) (map[string]interface{}, []map[string]interface{}) {
	c.t.Helper()
	deadline := time.Now().Add(timeout)
	var seen []map[string]interface{}
	for time.Now().Before(deadline) {
		msg := c.Read(time.Until(deadline))
		if msg["type"] == msgType {
			return msg, seen
		}
		seen = append(seen, msg)
	}
	c.t.Fatalf("no %q message within %v (saw %d others)", msgType, timeout, len(seen))
	return nil, nil
}
