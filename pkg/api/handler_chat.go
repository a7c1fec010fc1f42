package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/orchestrator"
)

// chatHandler handles POST /api/chat.
// Runs one blocking turn; only pre-composition failures (validation, auth,
// episode) produce an error envelope — everything later degrades into a
// natural-language body per the orchestrator's contract.
func (s *Server) chatHandler(c *echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, err.Error())
	}

	result, err := s.orch.HandleTurn(c.Request().Context(), orchestrator.TurnRequest{
		SessionToken: extractToken(c),
		RequestID:    requestID(c),
		Message:      req.Message,
		ContextType:  req.ContextType,
		Signals:      req.Signals,
	})
	if err != nil {
		return renderFault(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// chatStreamHandler handles POST /api/chat/stream.
// Streams the turn as server-sent events: zero or more `token` events,
// then exactly one terminal sequence (`end` alone, or `error` then `end`).
// Headers go out lazily on the first event, so pre-composition failures
// still get a proper error envelope.
func (s *Server) chatStreamHandler(c *echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, err.Error())
	}

	sink := newSSESink(c.Response())
	err := s.orch.HandleTurnStream(c.Request().Context(), orchestrator.TurnRequest{
		SessionToken: extractToken(c),
		RequestID:    requestID(c),
		Message:      req.Message,
		ContextType:  req.ContextType,
		Signals:      req.Signals,
	}, sink)
	if err != nil {
		return renderFault(c, err)
	}
	return nil
}

// chatStatusHandler handles GET /api/chat/status.
// Reports the caller's active episode and live enhancements; admins may
// inspect another user via ?user_id=.
func (s *Server) chatStatusHandler(c *echo.Context) error {
	sess := sessionFrom(c)

	userID := sess.UserID
	if override := c.QueryParam("user_id"); override != "" && override != sess.UserID {
		if !sess.IsAdmin() {
			return renderFault(c, fault.Forbidden("user_id override requires the admin role"))
		}
		userID = override
	}

	report, err := s.orch.Status(c.Request().Context(), userID, c.QueryParam("context_type"))
	if err != nil {
		return renderFault(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// sseSink adapts an HTTP response into the orchestrator's stream sink.
// The SSE preamble is written on the first event, never earlier.
type sseSink struct {
	w       http.ResponseWriter
	rc      *http.ResponseController
	started bool
}

func newSSESink(w http.ResponseWriter) *sseSink {
	return &sseSink{w: w, rc: http.NewResponseController(w)}
}

// tokenEvent, errorEvent, and endEvent are the wire shapes of the three
// SSE event types.
type tokenEvent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type errorEvent struct {
	Type string `json:"type"`
	Kind string `json:"kind"`
}

type endEvent struct {
	Type string `json:"type"`
	orchestrator.EndEvent
}

func (s *sseSink) Token(text string) error {
	return s.send(tokenEvent{Type: "token", Value: text})
}

func (s *sseSink) End(e orchestrator.EndEvent) error {
	return s.send(endEvent{Type: "end", EndEvent: e})
}

func (s *sseSink) Error(kind fault.Kind) error {
	return s.send(errorEvent{Type: "error", Kind: string(kind)})
}

func (s *sseSink) send(event interface{}) error {
	if !s.started {
		h := s.w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		// Proxies must not buffer the token stream.
		h.Set("X-Accel-Buffering", "no")
		s.w.WriteHeader(http.StatusOK)
		s.started = true
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return err
	}
	return s.rc.Flush()
}
