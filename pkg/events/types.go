// Package events provides real-time activity delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Channel model
// ════════════════════════════════════════════════════════════════
//
// Two channel families exist:
//
//   user:{user_id}  — durable per-user feed. Every event is persisted to
//                     the events table and broadcast via NOTIFY in the
//                     same transaction, so reconnecting clients can
//                     replay missed events with last_event_id catch-up.
//
//   activity        — transient global feed for the admin activity page.
//                     Events are mirrored here NOTIFY-only: the durable
//                     row already exists under the user channel, and the
//                     admin page does a REST reload on connect instead
//                     of relying on catch-up.
//
// Every published event therefore produces exactly one events-table row
// (under the user channel) and up to two NOTIFY broadcasts.
//
// Payloads carry db_event_id, injected at publish time from the inserted
// row ID. Clients track the highest db_event_id they have seen and pass
// it back as last_event_id when resubscribing after a disconnect.
//
// PostgreSQL caps NOTIFY payloads at 8000 bytes. Oversized payloads are
// replaced by a stub {type, user_id, db_event_id, truncated: true}; the
// client fetches the full event from the events table via catch-up.
package events

// Event types published on the feeds. All are persisted to the events
// table under the user channel and mirrored to the activity channel.
const (
	// Episode lifecycle
	EventTypeEpisodeOpened = "episode.opened"
	EventTypeEpisodeClosed = "episode.closed"

	// One expert tool execution was recorded in the action log.
	EventTypeActionLogged = "action.logged"

	// Satisfaction tracking
	EventTypeInteractionRecorded = "interaction.recorded"
	EventTypeFeedbackRecorded    = "feedback.recorded"
)

// Episode close reasons (used in EpisodeClosedPayload.Reason).
const (
	CloseReasonExplicit = "explicit"
	CloseReasonTimeout  = "timeout"
)

// ActivityChannel is the transient global feed. The admin activity page
// subscribes to this for a live view across all users.
const ActivityChannel = "activity"

// UserChannel returns the durable feed channel for a specific user.
// Format: "user:{user_id}"
func UserChannel(userID string) string {
	return "user:" + userID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "user:alice")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
