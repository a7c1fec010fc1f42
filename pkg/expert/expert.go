// Package expert implements the routing and execution engine behind every
// assistant turn: pattern-scored experts that each know one class of user
// intent, and the dispatcher that selects, fans out, and merges them.
package expert

import (
	"context"
	"time"

	"github.com/stewardhq/steward/pkg/fault"
)

// TurnContext identifies the turn an expert executes for. It carries no
// deadline and no mutable state; cancellation and deadlines ride the
// context.Context, and user identity is always explicit.
type TurnContext struct {
	UserID    string
	SessionID string
	Role      string
	RequestID string

	// Location is the user's timezone for relative time parsing.
	// Nil means UTC.
	Location *time.Location
}

// Loc returns the turn's timezone, defaulting to UTC.
func (tc TurnContext) Loc() *time.Location {
	if tc.Location != nil {
		return tc.Location
	}
	return time.UTC
}

// ToolCall is one downstream operation an expert performed (or attempted)
// while executing. Every call becomes exactly one action-log row.
type ToolCall struct {
	// Tool names the operation, e.g. "list.add" or "calendar.create".
	Tool string

	// Params are the operation inputs. Redacted before persistence.
	Params map[string]interface{}

	Success bool

	// Err classifies the failure when Success is false.
	Err fault.Kind
}

// ActionResult is the outcome of one expert execution.
type ActionResult struct {
	// Expert and Score are filled by the dispatcher.
	Expert string
	Score  float64

	Success bool

	// Summary is one user-facing sentence describing what happened.
	// The prompt composer quotes it verbatim.
	Summary string

	// Artifacts carry structured outputs (created rows, candidates,
	// search hits) for the composer and the API response.
	Artifacts []map[string]interface{}

	// CausedSideEffects reports whether any downstream write committed,
	// including on partially failed executions.
	CausedSideEffects bool

	// Err classifies the failure when Success is false. Empty on success.
	Err fault.Kind

	// Calls lists the downstream operations performed, in order. Experts
	// without downstream calls still record one describing the work.
	Calls []ToolCall
}

// Descriptor is the admin-facing description of a registered expert.
type Descriptor struct {
	Name              string   `json:"name"`
	Capabilities      []string `json:"capabilities"`
	DefaultConfidence float64  `json:"default_confidence"`
}

// Expert is the polymorphic contract every routing target implements.
type Expert interface {
	// Name is the stable registry key, e.g. "list".
	Name() string

	// Capabilities lists what the expert can do, for the admin surface.
	Capabilities() []string

	// Descriptor bundles name, capabilities, and the confidence the
	// expert reports when its strongest pattern matches.
	Descriptor() Descriptor

	// CanHandle scores a query in [0,1]. Pure, pattern-based, and fast:
	// repeated calls with the same query return the same score, and 0
	// means entirely out of scope.
	CanHandle(query string) float64

	// Execute performs the intent against the expert's collaborator.
	// Collaborator failures land in the result's Err, never in a panic;
	// cancellation must propagate into outbound calls.
	Execute(ctx context.Context, tc TurnContext, query string) *ActionResult
}

// failure builds an ActionResult for an execution that could not do its
// work. summary is user-facing.
func failure(kind fault.Kind, summary string, calls ...ToolCall) *ActionResult {
	return &ActionResult{
		Success: false,
		Summary: summary,
		Err:     kind,
		Calls:   calls,
	}
}

// invalid is shorthand for the missing-required-field policy: surface
// Invalid, never retry silently.
func invalid(summary string, calls ...ToolCall) *ActionResult {
	return failure(fault.KindInvalid, summary, calls...)
}
