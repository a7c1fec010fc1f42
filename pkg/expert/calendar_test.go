package expert

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/fault"
)

func newCalendarExpert(t *testing.T) (*calendarExpert, *collaborator) {
	t.Helper()
	stub := &collaborator{}
	return &calendarExpert{client: serviceClient(t, "calendar", stub), now: fixedNow}, stub
}

func TestCalendarCanHandle(t *testing.T) {
	e, _ := newCalendarExpert(t)

	assert.Equal(t, 0.9, e.CanHandle("Schedule a meeting tomorrow at 2pm"))
	assert.Equal(t, 0.9, e.CanHandle("add the recital to my calendar on July 4"))
	assert.Equal(t, 0.6, e.CanHandle("do I have an appointment this week"))
	assert.Equal(t, 0.0, e.CanHandle("add milk to my shopping list"))
}

func TestCalendarCreate(t *testing.T) {
	e, stub := newCalendarExpert(t)

	result := e.Execute(context.Background(), testTurn(),
		"Schedule a dentist appointment tomorrow at 2pm")

	require.True(t, result.Success)
	require.Equal(t, 1, stub.count())
	req := stub.at(0)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/calendar/events", req.Path)
	assert.Equal(t, "dentist appointment", req.Body["title"])
	assert.Equal(t, "2025-06-11", req.Body["start_date"])
	assert.Equal(t, "14:00", req.Body["start_time"])

	require.Len(t, result.Calls, 1)
	assert.Equal(t, "calendar.create", result.Calls[0].Tool)
	assert.True(t, result.CausedSideEffects)
	assert.Contains(t, result.Summary, "dentist appointment")
}

func TestCalendarCreateDateOnly(t *testing.T) {
	e, stub := newCalendarExpert(t)

	result := e.Execute(context.Background(), testTurn(), "schedule the team offsite tomorrow")

	require.True(t, result.Success)
	body := stub.at(0).Body
	assert.Equal(t, "2025-06-11", body["start_date"])
	_, hasTime := body["start_time"]
	assert.False(t, hasTime, "no start_time without a clock expression")
}

func TestCalendarWithoutWhenIsInvalid(t *testing.T) {
	e, stub := newCalendarExpert(t)

	result := e.Execute(context.Background(), testTurn(), "schedule a haircut")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindInvalid, result.Err)
	assert.Equal(t, 0, stub.count())
}

func TestCalendarWithoutTitleIsInvalid(t *testing.T) {
	e, stub := newCalendarExpert(t)

	result := e.Execute(context.Background(), testTurn(), "my calendar is a mess")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindInvalid, result.Err)
	assert.Equal(t, 0, stub.count())
}

func TestCalendarServiceDown(t *testing.T) {
	e, stub := newCalendarExpert(t)
	stub.fail(http.StatusServiceUnavailable)

	result := e.Execute(context.Background(), testTurn(), "schedule a meeting tomorrow at 2pm")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindUnavailable, result.Err)
	assert.Contains(t, result.Summary, "calendar")
}
