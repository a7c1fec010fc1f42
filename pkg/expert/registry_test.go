package expert

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/outbound"
)

func TestRegisteredExperts(t *testing.T) {
	assert.Equal(t, []string{
		"birthday", "calendar", "homeassistant", "journal",
		"list", "memory", "planning", "reminder",
	}, Registered())
}

func TestBuildAllSkipsUnconfigured(t *testing.T) {
	// No collaborators and no fact store: only the pure planning expert
	// can run.
	experts, err := BuildAll(Deps{}, nil)
	require.NoError(t, err)
	require.Len(t, experts, 1)
	assert.Equal(t, "planning", experts[0].Name())
}

func TestBuildAllHonorsEnabledOverride(t *testing.T) {
	experts, err := BuildAll(Deps{}, map[string]*config.ExpertSettings{
		"planning": {Enabled: config.BoolPtr(false)},
	})
	require.NoError(t, err)
	assert.Empty(t, experts)
}

func TestBuildAllBuildsConfiguredExperts(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	})
	deps := Deps{
		Clients: map[string]*outbound.Client{
			"lists":    serviceClient(t, "lists", ok),
			"calendar": serviceClient(t, "calendar", ok),
		},
		Now: fixedNow,
	}

	experts, err := BuildAll(deps, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(experts))
	for _, e := range experts {
		names = append(names, e.Name())
	}
	// birthday rides the calendar client even without a people router.
	assert.Equal(t, []string{"birthday", "calendar", "list", "planning"}, names)
}

func TestConfidenceOverrideCapsScores(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	})
	deps := Deps{Clients: map[string]*outbound.Client{"lists": serviceClient(t, "lists", ok)}}

	experts, err := BuildAll(deps, map[string]*config.ExpertSettings{
		"list":     {DefaultConfidence: config.Float64Ptr(0.6)},
		"planning": {Enabled: config.BoolPtr(false)},
	})
	require.NoError(t, err)
	require.Len(t, experts, 1)

	list := experts[0]
	assert.Equal(t, 0.6, list.CanHandle("add milk to my shopping list"),
		"raw 0.9 score is capped at the configured ceiling")
	assert.Equal(t, 0.6, list.Descriptor().DefaultConfidence)
	assert.Equal(t, 0.0, list.CanHandle("what is the weather"),
		"out-of-scope stays zero")
}

func TestCanHandleIsPure(t *testing.T) {
	experts, err := BuildAll(Deps{}, nil)
	require.NoError(t, err)
	require.Len(t, experts, 1)

	query := "help me plan a birthday party"
	first := experts[0].CanHandle(query)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, experts[0].CanHandle(query))
	}
}
