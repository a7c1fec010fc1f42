package api

import (
	"github.com/stewardhq/steward/pkg/orchestrator"
)

// ChatRequest is the HTTP request body for POST /api/chat and
// POST /api/chat/stream.
type ChatRequest struct {
	Message     string                      `json:"message"`
	ContextType string                      `json:"context_type,omitempty"`
	Signals     *orchestrator.ClientSignals `json:"client_signals,omitempty"`
}

// FeedbackRequest is the HTTP request body for POST /api/feedback/:interaction_id.
type FeedbackRequest struct {
	Kind  string   `json:"kind"`
	Value *float64 `json:"value,omitempty"`
	Text  *string  `json:"text,omitempty"`
}

// ProbeRequest is the HTTP request body for POST /api/experts/:name/probe.
type ProbeRequest struct {
	Query string `json:"query"`
}
