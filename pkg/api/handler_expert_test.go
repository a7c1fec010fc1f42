package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/expert"
)

// stubExpert scores every query with a fixed value and never executes.
type stubExpert struct {
	name  string
	score float64
	caps  []string
}

func (s *stubExpert) Name() string             { return s.name }
func (s *stubExpert) Capabilities() []string   { return s.caps }
func (s *stubExpert) CanHandle(string) float64 { return s.score }

func (s *stubExpert) Descriptor() expert.Descriptor {
	return expert.Descriptor{Name: s.name, Capabilities: s.caps, DefaultConfidence: s.score}
}

func (s *stubExpert) Execute(context.Context, expert.TurnContext, string) *expert.ActionResult {
	return &expert.ActionResult{Success: true, Summary: "done"}
}

// adminTestServer wires a server with the local-dev validator, whose
// tokenless sessions carry the admin role, so admin routes are reachable
// without an auth service.
func adminTestServer(experts ...expert.Expert) *Server {
	cfg := &config.Config{Auth: &config.AuthConfig{LocalDevMode: true}}
	return NewServer(Deps{
		Config:     cfg,
		Validator:  auth.NewValidator(nil, cfg.Auth),
		Dispatcher: expert.NewDispatcher(experts, nil, &config.DispatcherConfig{SelectThreshold: 0.5}, nil),
	})
}

func TestListExpertsRoute(t *testing.T) {
	s := adminTestServer(
		&stubExpert{name: "reminder", score: 0.7, caps: []string{"create reminders"}},
		&stubExpert{name: "list", score: 0.9, caps: []string{"add items", "read lists"}},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/experts", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ExpertsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Experts, 2)
	assert.Equal(t, "list", resp.Experts[0].Name)
	assert.Equal(t, "reminder", resp.Experts[1].Name)
	assert.Equal(t, []string{"add items", "read lists"}, resp.Experts[0].Capabilities)
}

func TestProbeExpertRoute(t *testing.T) {
	s := adminTestServer(&stubExpert{name: "list", score: 0.9})

	body := strings.NewReader(`{"query": "add milk to my shopping list"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/experts/list/probe", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Name         string  `json:"name"`
		Score        float64 `json:"score"`
		WouldExecute bool    `json:"would_execute"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp.Name)
	assert.InDelta(t, 0.9, resp.Score, 0.001)
	assert.True(t, resp.WouldExecute)
}

func TestProbeExpertUnknown(t *testing.T) {
	s := adminTestServer(&stubExpert{name: "list", score: 0.9})

	body := strings.NewReader(`{"query": "anything"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/experts/ghost/probe", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error)
	assert.Contains(t, resp.Message, "ghost")
}

func TestProbeExpertMissingQuery(t *testing.T) {
	s := adminTestServer(&stubExpert{name: "list", score: 0.9})

	req := httptest.NewRequest(http.MethodPost, "/api/experts/list/probe", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid", resp.Error)
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	// Outside local-dev mode a tokenless request never reaches the handler.
	cfg := &config.Config{Auth: &config.AuthConfig{}}
	s := NewServer(Deps{
		Config:    cfg,
		Validator: auth.NewValidator(nil, cfg.Auth),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/experts", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unauthorized", resp.Error)
}
