package orchestrator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/llm"
)

func promptTurn(user, assistant string) *ent.Turn {
	return &ent.Turn{UserText: user, AssistantText: assistant}
}

func promptFact(text string) *ent.MemoryFact {
	return &ent.MemoryFact{Text: text}
}

func TestComposeOrder(t *testing.T) {
	in := promptInput{
		// Newest first, as RecentTurns returns them.
		history: []*ent.Turn{
			promptTurn("second question", "second answer"),
			promptTurn("first question", "first answer"),
		},
		facts: []*ent.MemoryFact{promptFact("prefers oat milk")},
		actions: []*expert.ActionResult{
			{Expert: "list", Success: true, Summary: "Added milk to your shopping list."},
		},
		message: "anything else?",
	}

	messages := composeMessages(in, 0)

	require.Len(t, messages, 7)
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, systemPreamble, messages[0].Content)

	// History unrolls oldest to newest.
	assert.Equal(t, llm.RoleUser, messages[1].Role)
	assert.Equal(t, "first question", messages[1].Content)
	assert.Equal(t, llm.RoleAssistant, messages[2].Role)
	assert.Equal(t, "first answer", messages[2].Content)
	assert.Equal(t, "second question", messages[3].Content)
	assert.Equal(t, "second answer", messages[4].Content)

	// Facts then actions in one context block.
	assert.Equal(t, llm.RoleSystem, messages[5].Role)
	factIdx := strings.Index(messages[5].Content, "prefers oat milk")
	actionIdx := strings.Index(messages[5].Content, "Added milk")
	require.GreaterOrEqual(t, factIdx, 0)
	require.GreaterOrEqual(t, actionIdx, 0)
	assert.Less(t, factIdx, actionIdx)

	// Current message closes the transcript.
	assert.Equal(t, llm.RoleUser, messages[6].Role)
	assert.Equal(t, "anything else?", messages[6].Content)
}

func TestComposeMinimalTranscript(t *testing.T) {
	messages := composeMessages(promptInput{message: "hello"}, 0)

	require.Len(t, messages, 2)
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, llm.RoleUser, messages[1].Role)
	assert.Equal(t, "hello", messages[1].Content)
}

func TestComposeBudgetDropsOldestTurnsFirst(t *testing.T) {
	oldUser := strings.Repeat("x", 4000)
	in := promptInput{
		history: []*ent.Turn{
			promptTurn("newest question", "newest answer"),
			promptTurn(oldUser, "old answer"),
		},
		facts:   []*ent.MemoryFact{promptFact("likes tea")},
		message: "current",
	}

	budget := len(systemPreamble) + len("current") + 2000
	messages := composeMessages(in, budget)

	joined := joinContents(messages)
	assert.NotContains(t, joined, oldUser)
	assert.Contains(t, joined, "newest question")
	assert.Contains(t, joined, "likes tea", "facts survive while dropping turns suffices")
}

func TestComposeBudgetDropsFactsAfterTurns(t *testing.T) {
	bigFact := strings.Repeat("f", 3000)
	in := promptInput{
		history: []*ent.Turn{promptTurn(strings.Repeat("h", 3000), "answer")},
		facts: []*ent.MemoryFact{
			promptFact("top fact"),
			promptFact(bigFact), // lowest ranked, dropped first
		},
		message: "current",
	}

	budget := len(systemPreamble) + len("current") + len("top fact") + 100
	messages := composeMessages(in, budget)

	joined := joinContents(messages)
	assert.NotContains(t, joined, "hhhh", "all turns go before any fact")
	assert.NotContains(t, joined, bigFact)
	assert.Contains(t, joined, "top fact")
}

func TestComposeNeverDropsPreambleOrMessage(t *testing.T) {
	in := promptInput{
		history: []*ent.Turn{promptTurn("old", "older")},
		facts:   []*ent.MemoryFact{promptFact("a fact")},
		message: "the current message",
	}

	messages := composeMessages(in, 10) // far below the essentials

	require.GreaterOrEqual(t, len(messages), 2)
	assert.Equal(t, systemPreamble, messages[0].Content)
	assert.Equal(t, "the current message", messages[len(messages)-1].Content)
	joined := joinContents(messages)
	assert.NotContains(t, joined, "a fact")
	assert.NotContains(t, joined, "older")
}

func TestFormatActionsLines(t *testing.T) {
	block := formatActions([]*expert.ActionResult{
		{Expert: "list", Success: true, Summary: "Added milk to your shopping list."},
		{Expert: "calendar", Success: false, Err: fault.KindCircuitOpen,
			Summary: "I couldn't reach the calendar service."},
	})

	assert.Contains(t, block, "- [list] Added milk to your shopping list.")
	assert.Contains(t, block, "- [calendar] failed (circuit_open): I couldn't reach the calendar service.")
}

func TestFormatActionsEmpty(t *testing.T) {
	assert.Empty(t, formatActions(nil))
}

func joinContents(messages []llm.Message) string {
	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
