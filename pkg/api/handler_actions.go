package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// defaultActionsWindow bounds the recent-actions query when ?since= is
// not given.
const defaultActionsWindow = 24 * time.Hour

// recentActionsHandler handles GET /api/actions/recent.
// Admin-only action-log feed for one user (?user_id=, defaulting to the
// caller), newest first, since the RFC3339 instant in ?since=.
func (s *Server) recentActionsHandler(c *echo.Context) error {
	sess := sessionFrom(c)

	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = sess.UserID
	}

	since := time.Now().Add(-defaultActionsWindow)
	if v := c.QueryParam("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return invalidRequest(c, "invalid since: must be RFC3339")
		}
		since = t
	}

	logs, err := s.actions.Recent(c.Request().Context(), userID, since)
	if err != nil {
		return renderFault(c, err)
	}

	return c.JSON(http.StatusOK, &ActionsResponse{
		Actions: logs,
		Count:   len(logs),
	})
}
