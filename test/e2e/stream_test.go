package e2e

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamDeliversTokensThenEnd(t *testing.T) {
	model := NewScriptedModelServer(t)
	model.Script(ModelScript{Tokens: []string{"Sure", " thing", "."}})
	app := NewTestApp(t, WithModel(model))

	evts := app.ChatStream("", "Hello there")
	require.NotEmpty(t, evts)

	var text strings.Builder
	for _, evt := range evts[:len(evts)-1] {
		require.Equal(t, "token", evt.Type)
		text.WriteString(evt.Value)
	}
	assert.Equal(t, "Sure thing.", text.String())

	end := evts[len(evts)-1]
	require.Equal(t, "end", end.Type)
	assert.NotEmpty(t, end.InteractionID)
	assert.NotEmpty(t, end.EpisodeID)
	assert.False(t, end.Partial)

	// The streamed text is what got persisted.
	require.Eventually(t, func() bool {
		row, err := app.EntClient.Interaction.Get(context.Background(), end.InteractionID)
		return err == nil && row.ResponseText == "Sure thing."
	}, 5*time.Second, 50*time.Millisecond)
}

func TestStreamModelFailureEmitsErrorAndPersistsFallback(t *testing.T) {
	model := NewScriptedModelServer(t)
	// Enough scripted failures to outlast any retry the gateway makes.
	model.Script(
		ModelScript{Status: 500}, ModelScript{Status: 500}, ModelScript{Status: 500},
		ModelScript{Status: 500}, ModelScript{Status: 500},
	)
	app := NewTestApp(t, WithModel(model))

	evts := app.ChatStream("", "Hello there")
	require.Len(t, evts, 2)
	assert.Equal(t, "error", evts[0].Type)
	assert.NotEmpty(t, evts[0].Kind)
	require.Equal(t, "end", evts[1].Type)
	assert.NotEmpty(t, evts[1].InteractionID)

	// The turn still lands with the static fallback reply.
	require.Eventually(t, func() bool {
		row, err := app.EntClient.Interaction.Get(context.Background(), evts[1].InteractionID)
		return err == nil && strings.Contains(row.ResponseText, "Sorry")
	}, 5*time.Second, 50*time.Millisecond)
}

func TestStreamIdleModelAborts(t *testing.T) {
	model := NewScriptedModelServer(t)
	model.Script(ModelScript{Tokens: []string{"Half a"}, Stall: true})
	app := NewTestApp(t, WithModel(model))

	evts := app.ChatStream("", "Hello there")
	require.GreaterOrEqual(t, len(evts), 2)

	assert.Equal(t, "token", evts[0].Type)
	assert.Equal(t, "Half a", evts[0].Value)

	sawError := false
	for _, evt := range evts {
		if evt.Type == "error" {
			sawError = true
		}
	}
	assert.True(t, sawError, "expected an error event after the stall")

	end := evts[len(evts)-1]
	require.Equal(t, "end", end.Type)
	assert.NotEmpty(t, end.InteractionID)
}
