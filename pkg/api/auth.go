package api

import (
	"context"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/stewardhq/steward/pkg/auth"
)

// sessionKey marks the validated session in the request context.
type sessionKey struct{}

// extractToken pulls the session token from the request.
// Priority: X-Session-ID header > Authorization: Bearer > ?token= query.
// The query fallback exists for WebSocket clients, which cannot set headers.
func extractToken(c *echo.Context) string {
	if token := c.Request().Header.Get("X-Session-ID"); token != "" {
		return token
	}
	if h := c.Request().Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return c.QueryParam("token")
}

// sessionFrom returns the session stashed by withSession. Nil when the
// route skipped session resolution.
func sessionFrom(c *echo.Context) *auth.Session {
	sess, _ := c.Request().Context().Value(sessionKey{}).(*auth.Session)
	return sess
}

// withSessionContext stores the session in the request context.
func withSessionContext(c *echo.Context, sess *auth.Session) {
	ctx := context.WithValue(c.Request().Context(), sessionKey{}, sess)
	c.SetRequest(c.Request().WithContext(ctx))
}
