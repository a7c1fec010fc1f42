package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/config"
)

func TestRecentActionsRejectsBadSince(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{LocalDevMode: true}}
	s := NewServer(Deps{
		Config:    cfg,
		Validator: auth.NewValidator(nil, cfg.Auth),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/actions/recent?since=yesterday", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid", resp.Error)
	assert.Contains(t, resp.Message, "RFC3339")
}
