package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// feedbackHandler handles POST /api/feedback/:interaction_id.
// Records one explicit feedback row against the caller's own interaction;
// the tracker enforces kind/value validity and user scoping.
func (s *Server) feedbackHandler(c *echo.Context) error {
	interactionID := c.Param("interaction_id")
	if interactionID == "" {
		return invalidRequest(c, "interaction_id is required")
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, err.Error())
	}
	if req.Kind == "" {
		return invalidRequest(c, "kind is required")
	}

	sess := sessionFrom(c)
	row, err := s.tracker.RecordFeedback(c.Request().Context(),
		sess.UserID, interactionID, req.Kind, req.Value, req.Text)
	if err != nil {
		return renderFault(c, err)
	}

	return c.JSON(http.StatusCreated, &FeedbackResponse{
		FeedbackID:    row.ID,
		InteractionID: row.InteractionID,
		Kind:          string(row.Kind),
	})
}
