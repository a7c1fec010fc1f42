package orchestrator

import (
	"fmt"
	"strings"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/llm"
)

// systemPreamble is the fixed identity-and-safety header on every prompt.
// It is never truncated.
const systemPreamble = `You are Steward, a personal assistant for one household. You manage
shopping and todo lists, reminders, calendars, journals, long-term memory,
and smart-home devices. The tools for this turn have already run; their
results are listed below. Write a short, warm, direct reply that mentions
everything that was done and anything that failed. Refuse only requests
that are illegal, harmful, or violate someone's privacy; everyday
productivity and memory tasks are always safe.`

// defaultPromptBudget bounds composed prompt size when config does not.
const defaultPromptBudget = 24000

// promptInput is everything composition folds into one generation call.
type promptInput struct {
	history []*ent.Turn             // newest first, as RecentTurns returns
	facts   []*ent.MemoryFact       // rank order, best first
	actions []*expert.ActionResult  // dispatcher merge order
	message string
}

// composeMessages builds the transcript in fixed order: system preamble,
// recent turns (newest last), remembered facts, expert action summaries,
// current message. Overflow past the budget drops oldest turns first, then
// lowest-ranked facts; the preamble and the current message always
// survive.
func composeMessages(in promptInput, budget int) []llm.Message {
	if budget <= 0 {
		budget = defaultPromptBudget
	}

	actionBlock := formatActions(in.actions)
	fixed := len(systemPreamble) + len(actionBlock) + len(in.message)

	history := in.history
	facts := in.facts
	size := func() int {
		total := fixed
		for _, t := range history {
			total += len(t.UserText) + len(t.AssistantText)
		}
		for _, f := range facts {
			total += len(f.Text)
		}
		return total
	}
	for size() > budget && len(history) > 0 {
		history = history[:len(history)-1] // oldest last in newest-first order
	}
	for size() > budget && len(facts) > 0 {
		facts = facts[:len(facts)-1]
	}

	messages := make([]llm.Message, 0, 2*len(history)+3)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPreamble})

	for i := len(history) - 1; i >= 0; i-- { // oldest first, newest last
		turn := history[i]
		messages = append(messages,
			llm.Message{Role: llm.RoleUser, Content: turn.UserText},
			llm.Message{Role: llm.RoleAssistant, Content: turn.AssistantText},
		)
	}

	if contextBlock := formatContext(facts, actionBlock); contextBlock != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: contextBlock})
	}

	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: in.message})
	return messages
}

// formatContext joins the remembered-facts section and the action summary
// section into the mid-transcript system message.
func formatContext(facts []*ent.MemoryFact, actionBlock string) string {
	var sb strings.Builder
	if len(facts) > 0 {
		sb.WriteString("Things you remember about the user:\n")
		for _, f := range facts {
			fmt.Fprintf(&sb, "- %s\n", f.Text)
		}
	}
	if actionBlock != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(actionBlock)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatActions renders one line per expert result in dispatcher order.
func formatActions(results []*expert.ActionResult) string {
	if len(results) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Actions taken this turn:\n")
	for _, r := range results {
		line := r.Summary
		if line == "" {
			line = "no details"
		}
		if r.Success {
			fmt.Fprintf(&sb, "- [%s] %s\n", r.Expert, line)
		} else {
			fmt.Fprintf(&sb, "- [%s] failed (%s): %s\n", r.Expert, failureKind(r), line)
		}
	}
	return sb.String()
}

func failureKind(r *expert.ActionResult) string {
	if r.Err == fault.KindNone {
		return "error"
	}
	return string(r.Err)
}
