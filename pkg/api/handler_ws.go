package api

import (
	"strings"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/fault"
)

// wsEventsHandler handles GET /ws/events.
// Authenticates before upgrading, then delegates the connection lifecycle
// to the ConnectionManager. ?channels= pre-subscribes; the manager rejects
// channels the subscriber may not read and serves last_event_id catch-up.
func (s *Server) wsEventsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return renderFault(c, fault.Unavailable("live events are not available"))
	}

	sess, err := s.validator.Validate(c.Request().Context(), extractToken(c))
	if err != nil {
		return renderFault(c, err)
	}

	sub := events.Subscriber{
		UserID: sess.UserID,
		Admin:  sess.IsAdmin(),
	}
	if raw := c.QueryParam("channels"); raw != "" {
		for _, ch := range strings.Split(raw, ",") {
			if ch = strings.TrimSpace(ch); ch != "" {
				sub.Channels = append(sub.Channels, ch)
			}
		}
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Same-origin by default; deployments behind a separate frontend
		// origin must allowlist it explicitly.
		OriginPatterns: s.cfg.Server.AllowedWSOrigins,
	})
	if err != nil {
		return err
	}

	// Blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn, sub)
	return nil
}
