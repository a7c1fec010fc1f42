package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublishedPayloads_ContainUserID is a contract test between the Go
// backend and the WebSocket clients.
//
// The activity page receives every user's events on one channel and routes
// them by inspecting `user_id` in the JSON payload. ANY published payload
// MUST include a non-empty `user_id` field — otherwise the client silently
// drops it.
//
// All payload structs embed BasePayload which guarantees user_id is present.
// This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.UserID
func TestPublishedPayloads_ContainUserID(t *testing.T) {
	const testUserID = "user-contract-test"

	// Every payload type the publisher emits. If you add a new payload,
	// add it here — the test will fail if user_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "EpisodeOpenedPayload",
			payload: EpisodeOpenedPayload{
				BasePayload: BasePayload{
					Type:      EventTypeEpisodeOpened,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				EpisodeID:   "ep-1",
				ContextType: "chat",
			},
		},
		{
			name: "EpisodeClosedPayload",
			payload: EpisodeClosedPayload{
				BasePayload: BasePayload{
					Type:      EventTypeEpisodeClosed,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				EpisodeID:    "ep-1",
				ContextType:  "chat",
				Reason:       CloseReasonExplicit,
				MessageCount: 6,
			},
		},
		{
			name: "ActionLoggedPayload",
			payload: ActionLoggedPayload{
				BasePayload: BasePayload{
					Type:      EventTypeActionLogged,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				ActionID: "act-1",
				ToolName: "reminder.create",
				Success:  false,
				// unavailable, timeout, etc.
				ErrorKind: "unavailable",
			},
		},
		{
			name: "InteractionRecordedPayload",
			payload: InteractionRecordedPayload{
				BasePayload: BasePayload{
					Type:      EventTypeInteractionRecorded,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				InteractionID:  "int-1",
				EpisodeID:      "ep-1",
				Experts:        []string{"list"},
				TaskCompleted:  true,
				ResponseTimeMs: 900,
			},
		},
		{
			name: "FeedbackRecordedPayload",
			payload: FeedbackRecordedPayload{
				BasePayload: BasePayload{
					Type:      EventTypeFeedbackRecorded,
					UserID:    testUserID,
					Timestamp: "2026-01-01T00:00:00Z",
				},
				FeedbackID:    "fb-1",
				InteractionID: "int-1",
				Kind:          "thumbs",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			uid, ok := parsed["user_id"]
			assert.True(t, ok,
				"%s JSON is missing \"user_id\" field — client-side routing will silently drop this event", tt.name)
			assert.Equal(t, testUserID, uid,
				"%s user_id has wrong value", tt.name)
		})
	}
}
