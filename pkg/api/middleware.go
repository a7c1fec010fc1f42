package api

import (
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/stewardhq/steward/pkg/fault"
)

const requestIDHeader = "X-Request-ID"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requestIDMiddleware assigns every request a correlation id, echoed back
// on the response and reused in error envelopes and logs. Client-provided
// ids are kept so callers can correlate retries.
func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}

// requestID returns the correlation id assigned by requestIDMiddleware.
func requestID(c *echo.Context) string {
	return c.Response().Header().Get(requestIDHeader)
}

// withSession resolves the session token before the handler runs and
// stashes the validated session in the request context. Routes that
// degrade instead of failing (the chat turns) skip this and hand the raw
// token to the orchestrator.
func (s *Server) withSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		sess, err := s.validator.Validate(c.Request().Context(), extractToken(c))
		if err != nil {
			return renderFault(c, err)
		}
		withSessionContext(c, sess)
		return next(c)
	}
}

// adminOnly rejects non-admin sessions. Must run after withSession.
func (s *Server) adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		sess := sessionFrom(c)
		if sess == nil || !sess.IsAdmin() {
			return renderFault(c, fault.Forbidden("admin role required"))
		}
		return next(c)
	}
}
