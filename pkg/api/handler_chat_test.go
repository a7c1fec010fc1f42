package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/orchestrator"
)

func TestChatHandlerRejectsMalformedBody(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.chatHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid", resp.Error)
}

func TestChatStatusOverrideRequiresAdmin(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/status?user_id=bob", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withSessionContext(c, &auth.Session{UserID: "alice", Role: "member"})

	require.NoError(t, s.chatStatusHandler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "forbidden", resp.Error)
}

func TestSSESinkWireFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	sink := newSSESink(rec)

	require.NoError(t, sink.Token("Hel"))
	require.NoError(t, sink.Token("lo"))
	require.NoError(t, sink.End(orchestrator.EndEvent{
		InteractionID:   "int-1",
		EpisodeID:       "ep-1",
		ExecutedExperts: []string{"list"},
		Partial:         false,
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))

	lines := nonEmptyLines(rec.Body.String())
	require.Len(t, lines, 3)
	assert.Equal(t, `data: {"type":"token","value":"Hel"}`, lines[0])
	assert.Equal(t, `data: {"type":"token","value":"lo"}`, lines[1])

	var end struct {
		Type            string   `json:"type"`
		InteractionID   string   `json:"interaction_id"`
		EpisodeID       string   `json:"episode_id"`
		ExecutedExperts []string `json:"executed_experts"`
		Partial         bool     `json:"partial"`
	}
	require.True(t, strings.HasPrefix(lines[2], "data: "))
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[2], "data: ")), &end))
	assert.Equal(t, "end", end.Type)
	assert.Equal(t, "int-1", end.InteractionID)
	assert.Equal(t, "ep-1", end.EpisodeID)
	assert.Equal(t, []string{"list"}, end.ExecutedExperts)
	assert.False(t, end.Partial)
}

func TestSSESinkErrorEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	sink := newSSESink(rec)

	require.NoError(t, sink.Error(fault.KindTimeout))

	lines := nonEmptyLines(rec.Body.String())
	require.Len(t, lines, 1)
	assert.Equal(t, `data: {"type":"error","kind":"timeout"}`, lines[0])
}

func nonEmptyLines(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
