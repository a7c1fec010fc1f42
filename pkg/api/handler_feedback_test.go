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
	"github.com/stewardhq/steward/pkg/config"
)

// feedbackTestServer wires only what the validation paths touch; the
// tracker stays nil because rejected requests never reach it.
func feedbackTestServer() *Server {
	cfg := &config.Config{Auth: &config.AuthConfig{LocalDevMode: true}}
	return NewServer(Deps{
		Config:    cfg,
		Validator: auth.NewValidator(nil, cfg.Auth),
	})
}

func TestFeedbackRejectsMissingKind(t *testing.T) {
	s := feedbackTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/feedback/int-1", strings.NewReader(`{"value": 1.0}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid", resp.Error)
	assert.Contains(t, resp.Message, "kind")
}

func TestFeedbackRejectsMalformedBody(t *testing.T) {
	s := feedbackTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/feedback/int-1", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid", resp.Error)
}

func TestFeedbackRejectsMissingInteractionID(t *testing.T) {
	// Calling the handler without a routed param exercises the guard the
	// router normally makes unreachable.
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback/", strings.NewReader(`{"kind": "thumbs_up"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.feedbackHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
