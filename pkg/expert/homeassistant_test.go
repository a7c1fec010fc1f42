package expert

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/fault"
)

func newHomeAssistantExpert(t *testing.T) (*homeAssistantExpert, *collaborator) {
	t.Helper()
	stub := &collaborator{}
	return &homeAssistantExpert{client: serviceClient(t, "homeassistant", stub)}, stub
}

func TestHomeAssistantCanHandle(t *testing.T) {
	e, _ := newHomeAssistantExpert(t)

	assert.Equal(t, 0.9, e.CanHandle("Turn on the living room lights"))
	assert.Equal(t, 0.9, e.CanHandle("turn off the fan"))
	assert.Equal(t, 0.85, e.CanHandle("dim the bedroom lights to 40%"))
	assert.Equal(t, 0.5, e.CanHandle("the lights are too bright"))
	assert.Equal(t, 0.0, e.CanHandle("add milk to my shopping list"))
}

func TestHomeAssistantTurnOn(t *testing.T) {
	e, stub := newHomeAssistantExpert(t)

	result := e.Execute(context.Background(), testTurn(), "Turn on the living room lights")

	require.True(t, result.Success)
	require.Equal(t, 1, stub.count())
	req := stub.at(0)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/homeassistant/service", req.Path)
	assert.Equal(t, "light.turn_on", req.Body["service"])
	assert.Equal(t, "light.living_room", req.Body["entity_id"])

	assert.Contains(t, result.Summary, "Living Room")
	assert.Equal(t, "homeassistant.call", result.Calls[0].Tool)
	assert.True(t, result.CausedSideEffects)
}

func TestHomeAssistantTurnOff(t *testing.T) {
	e, stub := newHomeAssistantExpert(t)

	result := e.Execute(context.Background(), testTurn(), "turn off the kitchen lights")

	require.True(t, result.Success)
	body := stub.at(0).Body
	assert.Equal(t, "light.turn_off", body["service"])
	assert.Equal(t, "light.kitchen", body["entity_id"])
	assert.Contains(t, result.Summary, "Turned off")
}

func TestHomeAssistantDomains(t *testing.T) {
	tests := []struct {
		query      string
		service    string
		entity     string
	}{
		{"turn on the bedroom fan", "fan.turn_on", "fan.bedroom"},
		{"turn off the hallway thermostat", "climate.turn_off", "climate.hallway"},
		{"turn on the desk plug", "switch.turn_on", "switch.desk"},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			e, stub := newHomeAssistantExpert(t)
			result := e.Execute(context.Background(), testTurn(), tc.query)
			require.True(t, result.Success)
			assert.Equal(t, tc.service, stub.at(0).Body["service"])
			assert.Equal(t, tc.entity, stub.at(0).Body["entity_id"])
		})
	}
}

func TestHomeAssistantBrightness(t *testing.T) {
	e, stub := newHomeAssistantExpert(t)

	result := e.Execute(context.Background(), testTurn(), "dim the bedroom lights to 40%")

	require.True(t, result.Success)
	body := stub.at(0).Body
	assert.Equal(t, "light.turn_on", body["service"])
	assert.Equal(t, "light.bedroom", body["entity_id"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(40), data["brightness_pct"])
	assert.Contains(t, result.Summary, "40%")
}

func TestHomeAssistantAmbiguousDevice(t *testing.T) {
	e, stub := newHomeAssistantExpert(t)

	result := e.Execute(context.Background(), testTurn(), "turn on the lights")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindInvalid, result.Err)
	assert.Contains(t, result.Summary, "Ambiguous")
	assert.Equal(t, 0, stub.count(), "no call without a resolvable entity")
}

func TestHomeAssistantBridgeDown(t *testing.T) {
	e, stub := newHomeAssistantExpert(t)
	stub.fail(http.StatusServiceUnavailable)

	result := e.Execute(context.Background(), testTurn(), "turn on the living room lights")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindUnavailable, result.Err)
	assert.False(t, result.CausedSideEffects)
}
