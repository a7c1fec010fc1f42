package expert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/fault"
)

func TestPlanningCanHandle(t *testing.T) {
	e := &planningExpert{}

	assert.Equal(t, 0.8, e.CanHandle("help me plan a birthday party"))
	assert.Equal(t, 0.8, e.CanHandle("break down the garage cleanup"))
	assert.Equal(t, 0.5, e.CanHandle("what's the plan"))
	assert.Equal(t, 0.0, e.CanHandle("turn on the lights"))
}

func TestPlanningDecomposes(t *testing.T) {
	e := &planningExpert{}

	result := e.Execute(context.Background(), testTurn(), "help me plan a birthday party")

	require.True(t, result.Success)
	assert.False(t, result.CausedSideEffects, "planning is pure")
	require.Len(t, result.Artifacts, 5)
	assert.Equal(t, 1, result.Artifacts[0]["step"])
	assert.Contains(t, result.Summary, "birthday party")

	require.Len(t, result.Calls, 1)
	assert.Equal(t, "planning.decompose", result.Calls[0].Tool)
	assert.True(t, result.Calls[0].Success)
}

func TestPlanningWithoutGoalIsInvalid(t *testing.T) {
	e := &planningExpert{}

	result := e.Execute(context.Background(), testTurn(), "what's the plan")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindInvalid, result.Err)
}
