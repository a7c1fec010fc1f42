package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpisodeClosedPayload_JSON(t *testing.T) {
	payload := EpisodeClosedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeEpisodeClosed,
			UserID:    "alice",
			Timestamp: "2026-08-01T12:00:00Z",
		},
		EpisodeID:    "ep-123",
		ContextType:  "development",
		Reason:       CloseReasonTimeout,
		MessageCount: 14,
		Summarized:   true,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded EpisodeClosedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeEpisodeClosed, decoded.Type)
	assert.Equal(t, "alice", decoded.UserID)
	assert.Equal(t, "ep-123", decoded.EpisodeID)
	assert.Equal(t, "development", decoded.ContextType)
	assert.Equal(t, CloseReasonTimeout, decoded.Reason)
	assert.Equal(t, 14, decoded.MessageCount)
	assert.True(t, decoded.Summarized)
	assert.Equal(t, "2026-08-01T12:00:00Z", decoded.Timestamp)
}

func TestActionLoggedPayload_JSON(t *testing.T) {
	payload := ActionLoggedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeActionLogged,
			UserID:    "alice",
			Timestamp: "2026-08-01T12:00:00Z",
		},
		ActionID:  "act-1",
		ToolName:  "list.add",
		Success:   true,
		ErrorKind: "",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ActionLoggedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeActionLogged, decoded.Type)
	assert.Equal(t, "act-1", decoded.ActionID)
	assert.Equal(t, "list.add", decoded.ToolName)
	assert.True(t, decoded.Success)
}

func TestActionLoggedPayload_ErrorKindOmittedOnSuccess(t *testing.T) {
	payload := ActionLoggedPayload{
		BasePayload: BasePayload{Type: EventTypeActionLogged, UserID: "alice"},
		ActionID:    "act-1",
		ToolName:    "list.add",
		Success:     true,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	// error_kind should be omitted from JSON due to omitempty
	assert.NotContains(t, string(data), "error_kind")
}

func TestInteractionRecordedPayload_JSON(t *testing.T) {
	payload := InteractionRecordedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeInteractionRecorded,
			UserID:    "bob",
			Timestamp: "2026-08-01T12:00:00Z",
		},
		InteractionID:  "int-1",
		EpisodeID:      "ep-9",
		Experts:        []string{"calendar", "reminder"},
		TaskCompleted:  true,
		Partial:        false,
		ResponseTimeMs: 1840,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded InteractionRecordedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeInteractionRecorded, decoded.Type)
	assert.Equal(t, "int-1", decoded.InteractionID)
	assert.Equal(t, "ep-9", decoded.EpisodeID)
	assert.Equal(t, []string{"calendar", "reminder"}, decoded.Experts)
	assert.True(t, decoded.TaskCompleted)
	assert.False(t, decoded.Partial)
	assert.Equal(t, 1840, decoded.ResponseTimeMs)
}

func TestFeedbackRecordedPayload_JSON(t *testing.T) {
	t.Run("rating feedback carries value", func(t *testing.T) {
		value := 4.0
		payload := FeedbackRecordedPayload{
			BasePayload: BasePayload{
				Type:      EventTypeFeedbackRecorded,
				UserID:    "alice",
				Timestamp: "2026-08-01T12:00:00Z",
			},
			FeedbackID:    "fb-1",
			InteractionID: "int-1",
			Kind:          "rating",
			Value:         &value,
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)

		var decoded FeedbackRecordedPayload
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, "rating", decoded.Kind)
		require.NotNil(t, decoded.Value)
		assert.Equal(t, 4.0, *decoded.Value)
	})

	t.Run("text feedback omits value", func(t *testing.T) {
		payload := FeedbackRecordedPayload{
			BasePayload:   BasePayload{Type: EventTypeFeedbackRecorded, UserID: "alice"},
			FeedbackID:    "fb-2",
			InteractionID: "int-1",
			Kind:          "text",
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.NotContains(t, string(data), `"value"`)
	})
}
