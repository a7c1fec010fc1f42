package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestExtractToken(t *testing.T) {
	e := echo.New()

	newCtx := func(target string, headers map[string]string) *echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("session header wins", func(t *testing.T) {
		c := newCtx("/api/chat?token=query-token", map[string]string{
			"X-Session-ID":  "header-token",
			"Authorization": "Bearer bearer-token",
		})
		assert.Equal(t, "header-token", extractToken(c))
	})

	t.Run("bearer beats query", func(t *testing.T) {
		c := newCtx("/api/chat?token=query-token", map[string]string{
			"Authorization": "Bearer bearer-token",
		})
		assert.Equal(t, "bearer-token", extractToken(c))
	})

	t.Run("query fallback for websocket clients", func(t *testing.T) {
		c := newCtx("/ws/events?token=query-token", nil)
		assert.Equal(t, "query-token", extractToken(c))
	})

	t.Run("non-bearer authorization is ignored", func(t *testing.T) {
		c := newCtx("/api/chat", map[string]string{
			"Authorization": "Basic dXNlcjpwYXNz",
		})
		assert.Equal(t, "", extractToken(c))
	})

	t.Run("nothing provided", func(t *testing.T) {
		c := newCtx("/api/chat", nil)
		assert.Equal(t, "", extractToken(c))
	})
}
