package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/auth"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestRequestIDAssigned(t *testing.T) {
	e := echo.New()
	e.Use(requestIDMiddleware())

	var seen string
	e.GET("/test", func(c *echo.Context) error {
		seen = requestID(c)
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDPreserved(t *testing.T) {
	e := echo.New()
	e.Use(requestIDMiddleware())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "client-chosen-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-chosen-id", rec.Header().Get("X-Request-ID"))
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	s := &Server{}
	handler := s.adminOnly(func(c *echo.Context) error {
		return c.String(http.StatusOK, "admin stuff")
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/experts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withSessionContext(c, &auth.Session{UserID: "alice", Role: "member"})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "forbidden", resp.Error)
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	s := &Server{}
	handler := s.adminOnly(func(c *echo.Context) error {
		return c.String(http.StatusOK, "admin stuff")
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/experts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withSessionContext(c, &auth.Session{UserID: "root", Role: auth.AdminRole})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin stuff", rec.Body.String())
}
