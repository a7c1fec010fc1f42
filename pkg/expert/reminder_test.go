package expert

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/fault"
)

func newReminderExpert(t *testing.T) (*reminderExpert, *collaborator) {
	t.Helper()
	stub := &collaborator{}
	return &reminderExpert{client: serviceClient(t, "reminders", stub), now: fixedNow}, stub
}

func TestReminderCanHandle(t *testing.T) {
	e, _ := newReminderExpert(t)

	assert.Equal(t, 0.9, e.CanHandle("remind me to buy bananas tomorrow"))
	assert.Equal(t, 0.85, e.CanHandle("don't let me forget the dentist"))
	assert.Equal(t, 0.8, e.CanHandle("set a reminder for the meeting"))
	assert.Equal(t, 0.0, e.CanHandle("add milk to my shopping list"))
}

func TestExtractReminderTitle(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"task then when", "remind me to buy bananas tomorrow at 9am", "buy bananas"},
		{"when then task", "remind me tomorrow at 9am to buy bananas", "buy bananas"},
		{"about form", "remind me about the dentist tomorrow", "the dentist"},
		{"pronoun resolves against list add", "Add bananas to my shopping list and remind me to buy them tomorrow at 9am", "buy bananas"},
		{"no when words", "remind me to call mom", "call mom"},
		{"dont forget", "don't let me forget to water the plants tonight", "water the plants"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractReminderTitle(tc.query))
		})
	}
}

func TestReminderCreate(t *testing.T) {
	e, stub := newReminderExpert(t)

	result := e.Execute(context.Background(), testTurn(),
		"remind me to buy bananas tomorrow at 9am")

	require.True(t, result.Success)
	require.Equal(t, 1, stub.count())
	req := stub.at(0)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/reminders", req.Path)
	assert.Equal(t, "buy bananas", req.Body["title"])
	assert.Equal(t, "user-1", req.Body["user_id"])
	assert.Equal(t, "2025-06-11", req.Body["due_date"])
	assert.Equal(t, "09:00:00", req.Body["due_time"])
	assert.NotEmpty(t, req.Body["reminder_type"])
	assert.NotEmpty(t, req.Body["priority"])

	require.Len(t, result.Calls, 1)
	assert.Equal(t, "reminder.create", result.Calls[0].Tool)
	assert.True(t, result.CausedSideEffects)
	assert.Contains(t, result.Summary, "buy bananas")
}

func TestReminderDefaultsToMorning(t *testing.T) {
	e, stub := newReminderExpert(t)

	result := e.Execute(context.Background(), testTurn(), "remind me tomorrow to stretch")

	require.True(t, result.Success)
	assert.Equal(t, "09:00:00", stub.at(0).Body["due_time"],
		"date-only reminders default to morning")
}

func TestReminderWithoutWhenIsInvalid(t *testing.T) {
	e, stub := newReminderExpert(t)

	result := e.Execute(context.Background(), testTurn(), "remind me to call mom")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindInvalid, result.Err)
	assert.Equal(t, 0, stub.count(), "nothing is written without a due date")
	assert.Contains(t, result.Summary, "call mom")
}

func TestReminderServiceDown(t *testing.T) {
	e, stub := newReminderExpert(t)
	stub.fail(http.StatusServiceUnavailable)

	result := e.Execute(context.Background(), testTurn(), "remind me tomorrow to stretch")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindUnavailable, result.Err)
	assert.False(t, result.CausedSideEffects)
	require.Len(t, result.Calls, 1)
	assert.False(t, result.Calls[0].Success)
}
