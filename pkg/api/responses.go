package api

import (
	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/pkg/expert"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's health within a HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ExpertsResponse is returned by GET /api/experts.
type ExpertsResponse struct {
	Experts []expert.Descriptor `json:"experts"`
}

// ActionsResponse is returned by GET /api/actions/recent.
type ActionsResponse struct {
	Actions []*ent.ActionLog `json:"actions"`
	Count   int              `json:"count"`
}

// FeedbackResponse is returned by POST /api/feedback/:interaction_id.
type FeedbackResponse struct {
	FeedbackID    string `json:"feedback_id"`
	InteractionID string `json:"interaction_id"`
	Kind          string `json:"kind"`
}
