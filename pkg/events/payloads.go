package events

// BasePayload carries the fields every published event must have.
// The WebSocket client routes incoming events by type and user_id, so
// every payload struct embeds this.
type BasePayload struct {
	Type      string `json:"type"`      // one of the EventType* constants
	UserID    string `json:"user_id"`   // owning user
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// EpisodeOpenedPayload is the payload for episode.opened events.
// Published when a turn opens a fresh episode (no active episode existed,
// or the previous one was rotated out on inactivity).
type EpisodeOpenedPayload struct {
	BasePayload
	EpisodeID   string `json:"episode_id"`
	ContextType string `json:"context_type"` // chat, development, planning, general
}

// EpisodeClosedPayload is the payload for episode.closed events.
// Published on explicit close and on inactivity rotation by the sweeper.
// The summary text is not carried here (it can exceed the NOTIFY limit);
// clients fetch it via the episode REST endpoint.
type EpisodeClosedPayload struct {
	BasePayload
	EpisodeID    string `json:"episode_id"`
	ContextType  string `json:"context_type"`
	Reason       string `json:"reason"` // explicit, timeout
	MessageCount int    `json:"message_count"`
	Summarized   bool   `json:"summarized"`
}

// ActionLoggedPayload is the payload for action.logged events.
// Published after an expert tool execution is recorded in the action log.
// Tool params are not carried here — the feed shows what ran, not with what.
type ActionLoggedPayload struct {
	BasePayload
	ActionID  string `json:"action_id"`
	ToolName  string `json:"tool_name"` // e.g. "list.add"
	Success   bool   `json:"success"`
	ErrorKind string `json:"error_kind,omitempty"` // empty on success
}

// InteractionRecordedPayload is the payload for interaction.recorded events.
// Published once per completed turn, when the satisfaction tracker stores
// the interaction row.
type InteractionRecordedPayload struct {
	BasePayload
	InteractionID  string   `json:"interaction_id"`
	EpisodeID      string   `json:"episode_id,omitempty"`
	Experts        []string `json:"experts,omitempty"` // executed experts, dispatch order
	TaskCompleted  bool     `json:"task_completed"`
	Partial        bool     `json:"partial"`
	ResponseTimeMs int      `json:"response_time_ms"`
}

// FeedbackRecordedPayload is the payload for feedback.recorded events.
// Value follows the feedback kind's native scale (rating 1-5, thumbs 1/0,
// implicit 0-1); it is nil for text-only feedback.
type FeedbackRecordedPayload struct {
	BasePayload
	FeedbackID    string   `json:"feedback_id"`
	InteractionID string   `json:"interaction_id"`
	Kind          string   `json:"kind"` // rating, thumbs, text, implicit
	Value         *float64 `json:"value,omitempty"`
}
