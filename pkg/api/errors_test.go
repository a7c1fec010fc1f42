package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/fault"
)

func TestRenderFaultEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/experts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Response().Header().Set(requestIDHeader, "req-42")

	err := renderFault(c, fault.NotFound("no expert named \"weather\""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error)
	assert.Contains(t, resp.Message, "weather")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "req-42", resp.RequestID)

	_, parseErr := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, parseErr, "timestamp must be RFC3339")
}

func TestRenderFaultHidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/experts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := renderFault(c, fault.Internal("pgx: connection refused on 10.0.0.3"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal", resp.Error)
	assert.Equal(t, "internal server error", resp.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestHTTPStatusOf(t *testing.T) {
	cases := []struct {
		kind   fault.Kind
		status int
	}{
		{fault.KindInvalid, http.StatusBadRequest},
		{fault.KindUnauthorized, http.StatusUnauthorized},
		{fault.KindForbidden, http.StatusForbidden},
		{fault.KindNotFound, http.StatusNotFound},
		{fault.KindConflict, http.StatusConflict},
		{fault.KindTimeout, http.StatusGatewayTimeout},
		{fault.KindCancelled, http.StatusRequestTimeout},
		{fault.KindCircuitOpen, http.StatusServiceUnavailable},
		{fault.KindUnavailable, http.StatusServiceUnavailable},
		{fault.KindInternal, http.StatusInternalServerError},
		{fault.KindNone, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, httpStatusOf(tc.kind), "kind %q", tc.kind)
	}
}
