package e2e

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/ent"
	entaction "github.com/stewardhq/steward/ent/actionlog"
	entepisode "github.com/stewardhq/steward/ent/episode"
	entinteraction "github.com/stewardhq/steward/ent/interaction"
	entfact "github.com/stewardhq/steward/ent/memoryfact"
	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/config"
)

// waitForActions polls the action log until exactly want rows exist for
// the tool. The dispatcher records rows through the buffered action
// logger, so they land shortly after the turn returns.
func waitForActions(t *testing.T, app *TestApp, tool string, want int) []*ent.ActionLog {
	t.Helper()
	var rows []*ent.ActionLog
	require.Eventually(t, func() bool {
		var err error
		rows, err = app.EntClient.ActionLog.Query().
			Where(entaction.ToolNameEQ(tool)).
			All(context.Background())
		return err == nil && len(rows) == want
	}, 5*time.Second, 50*time.Millisecond, "want %d %s action rows", want, tool)
	return rows
}

// callsTo filters a stub's recorded calls by method and path.
func callsTo(stub *StubRouter, method, path string) []StubCall {
	var out []StubCall
	for _, call := range stub.Calls() {
		if call.Method == method && call.Path == path {
			out = append(out, call)
		}
	}
	return out
}

func TestScenarioShoppingList(t *testing.T) {
	app := NewTestApp(t)

	result := app.ChatTurn("", "Add milk and eggs to my shopping list")

	assert.Equal(t, []string{"list"}, result.ExecutedExperts)
	assert.False(t, result.Partial)
	assert.NotEmpty(t, result.EpisodeID)
	assert.NotEmpty(t, result.InteractionID)
	assert.Contains(t, result.Response, "milk")
	assert.Contains(t, result.Response, "eggs")

	// Two item posts against the lists router, one per item.
	posts := callsTo(app.Collaborators.Lists, http.MethodPost, "/api/lists/shopping/items")
	require.Len(t, posts, 2)
	assert.Equal(t, "milk", posts[0].Body["text"])
	assert.Equal(t, "eggs", posts[1].Body["text"])

	// And one durable action row per item.
	rows := waitForActions(t, app, "list.add", 2)
	for _, row := range rows {
		assert.True(t, row.Success)
		assert.Equal(t, auth.DefaultUserID, row.UserID)
	}
}

func TestScenarioCompoundListAndReminder(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	app := NewTestApp(t, WithNow(func() time.Time { return now }))

	result := app.ChatTurn("",
		"Add bananas to my shopping list and remind me to buy them tomorrow at 9am")

	assert.ElementsMatch(t, []string{"list", "reminder"}, result.ExecutedExperts)
	assert.False(t, result.Partial)

	posts := callsTo(app.Collaborators.Lists, http.MethodPost, "/api/lists/shopping/items")
	require.Len(t, posts, 1)
	assert.Equal(t, "bananas", posts[0].Body["text"])

	// The reminder resolves "them" against the list phrase and lands on
	// tomorrow's date at the spoken time.
	reminders := callsTo(app.Collaborators.Reminders, http.MethodPost, "/api/reminders")
	require.Len(t, reminders, 1)
	assert.Equal(t, "buy bananas", reminders[0].Body["title"])
	assert.Equal(t, "2026-08-27", reminders[0].Body["due_date"])
	assert.Equal(t, "09:00:00", reminders[0].Body["due_time"])

	waitForActions(t, app, "list.add", 1)
	waitForActions(t, app, "reminder.create", 1)
}

func TestScenarioRememberThenRecall(t *testing.T) {
	app := NewTestApp(t)

	stored := app.ChatTurn("", "Remember that I prefer oat milk")
	assert.Equal(t, []string{"memory"}, stored.ExecutedExperts)

	fact, err := app.EntClient.MemoryFact.Query().
		Where(entfact.UserIDEQ(auth.DefaultUserID)).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "I prefer oat milk", fact.Text)

	recalled := app.ChatTurn("", "What kind of milk do I like?")
	assert.Equal(t, []string{"memory"}, recalled.ExecutedExperts)
	assert.Contains(t, recalled.Response, "oat milk")

	// The fact reached the model both as recall output and as prompt
	// context.
	assert.Contains(t, app.Model.LastPrompt(), "oat milk")
}

func TestScenarioHomeAssistant(t *testing.T) {
	app := NewTestApp(t)

	result := app.ChatTurn("", "Turn on the living room lights")

	assert.Equal(t, []string{"homeassistant"}, result.ExecutedExperts)
	assert.Contains(t, result.Response, "Living Room")

	calls := callsTo(app.Collaborators.HomeAssistant, http.MethodPost, "/api/homeassistant/service")
	require.Len(t, calls, 1)
	assert.Equal(t, "light.turn_on", calls[0].Body["service"])
	assert.Equal(t, "light.living_room", calls[0].Body["entity_id"])
}

func TestScenarioCollaboratorTimeoutDegradesTurn(t *testing.T) {
	app := NewTestApp(t)

	// Calendar answers after the per-expert deadline; the list half of the
	// compound request still completes.
	app.Collaborators.Calendar.Delay(3 * time.Second)

	result := app.ChatTurn("",
		"Schedule a dentist appointment tomorrow at 2pm and add it to my todo list")

	assert.True(t, result.Partial)
	assert.Equal(t, []string{"list"}, result.ExecutedExperts)
	assert.True(t, strings.HasPrefix(result.Response, "Heads up:"), "got: %q", result.Response)
	assert.Contains(t, result.Response, "calendar")

	// A degraded turn never counts as completed.
	row, err := app.EntClient.Interaction.Query().
		Where(entinteraction.IDEQ(result.InteractionID)).
		Only(context.Background())
	require.NoError(t, err)
	assert.False(t, row.TaskCompleted)

	posts := callsTo(app.Collaborators.Lists, http.MethodPost, "/api/lists/todo/items")
	require.Len(t, posts, 1)
	assert.Equal(t, "dentist appointment", posts[0].Body["text"])
}

func TestScenarioCircuitOpensAndFailsFast(t *testing.T) {
	app := NewTestApp(t, WithConfigTweak(func(cfg *config.Config) {
		cfg.Outbound.BreakerFailures = 1
	}))

	app.Collaborators.Calendar.RespondWith(http.StatusServiceUnavailable)

	// First failure trips the breaker.
	first := app.ChatTurn("", "Schedule a haircut tomorrow")
	assert.Empty(t, first.ExecutedExperts)
	assert.Contains(t, first.Response, "calendar")
	require.Equal(t, 1, app.Collaborators.Calendar.CallCount())

	// Second turn fails fast without touching the collaborator.
	second := app.ChatTurn("", "Schedule a haircut tomorrow")
	assert.True(t, second.Partial)
	assert.True(t, strings.HasPrefix(second.Response, "Heads up:"), "got: %q", second.Response)
	assert.Equal(t, 1, app.Collaborators.Calendar.CallCount())

	rows := waitForActions(t, app, "calendar.create", 2)
	kinds := map[string]bool{}
	for _, row := range rows {
		assert.False(t, row.Success)
		if row.ErrorKind != nil {
			kinds[*row.ErrorKind] = true
		}
	}
	assert.True(t, kinds["unavailable"])
	assert.True(t, kinds["circuit_open"])
}

func TestScenarioEpisodeRotation(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	first := app.ChatTurn("", "Hello there")

	// Wait out the detached turn write before backdating, or its activity
	// bump would undo the backdate.
	require.Eventually(t, func() bool {
		ep, err := app.EntClient.Episode.Get(ctx, first.EpisodeID)
		return err == nil && ep.MessageCount == 1
	}, 5*time.Second, 50*time.Millisecond)

	stale := time.Now().Add(-24 * time.Hour)
	err := app.EntClient.Episode.UpdateOneID(first.EpisodeID).
		SetLastActivityAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	second := app.ChatTurn("", "Hello again")
	assert.NotEqual(t, first.EpisodeID, second.EpisodeID)

	old, err := app.EntClient.Episode.Get(ctx, first.EpisodeID)
	require.NoError(t, err)
	assert.Equal(t, entepisode.StatusClosed, old.Status)
	assert.NotNil(t, old.ClosedAt)
}
