package expert

import (
	"context"
	"regexp"
	"strings"

	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/outbound"
)

func init() {
	Register("journal", func(deps Deps) (Expert, error) {
		client := deps.Client("journal")
		if client == nil {
			return nil, ErrNotConfigured
		}
		return &journalExpert{client: client}, nil
	})
}

// journalExpert writes entries through the journal router.
type journalExpert struct {
	client *outbound.Client
}

var (
	journalEntryRe = regexp.MustCompile(`(?i)\b(?:journal|diary)(?:\s+entry)?\s*(?::|-|,|\babout\b|\bthat\b)\s*(.+)$`)
	journalVerbRe  = regexp.MustCompile(`(?i)\b(?:write|add|make|create|start|note)\b.{0,40}\b(?:journal|diary)\b`)
	journalWordRe  = regexp.MustCompile(`(?i)\b(?:journal|diary)\b`)
	moodRe         = regexp.MustCompile(`(?i)\bfeeling\s+(\w+)\b`)
)

func (e *journalExpert) Name() string { return "journal" }

func (e *journalExpert) Capabilities() []string {
	return []string{"journal.create"}
}

func (e *journalExpert) Descriptor() Descriptor {
	return Descriptor{Name: e.Name(), Capabilities: e.Capabilities(), DefaultConfidence: 0.9}
}

func (e *journalExpert) CanHandle(query string) float64 {
	switch {
	case journalEntryRe.MatchString(query):
		return 0.9
	case journalVerbRe.MatchString(query):
		return 0.85
	case journalWordRe.MatchString(query):
		return 0.6
	default:
		return 0
	}
}

func (e *journalExpert) Execute(ctx context.Context, tc TurnContext, query string) *ActionResult {
	query = Sanitize(query)

	content := ""
	if m := journalEntryRe.FindStringSubmatch(query); m != nil {
		content = strings.TrimSpace(m[1])
	} else if journalVerbRe.MatchString(query) {
		// "write in my journal today was great" with no separator: keep
		// whatever follows the journal mention.
		if idx := journalWordRe.FindStringIndex(query); idx != nil {
			content = strings.TrimSpace(query[idx[1]:])
		}
	}
	if content == "" {
		return invalid("What should the journal entry say?")
	}

	body := map[string]interface{}{"content": content}
	params := map[string]interface{}{"content": content}
	if m := moodRe.FindStringSubmatch(query); m != nil {
		mood := strings.ToLower(m[1])
		body["mood"] = mood
		params["mood"] = mood
	}

	err := e.client.Post(ctx, "/api/journal/", body, nil)
	call := ToolCall{Tool: "journal.create", Params: params, Success: err == nil, Err: fault.KindOf(err)}
	if err != nil {
		return failure(fault.KindOf(err), "I couldn't reach the journal service.", call)
	}

	return &ActionResult{
		Success:           true,
		Summary:           "Saved a journal entry.",
		Artifacts:         []map[string]interface{}{params},
		CausedSideEffects: true,
		Calls:             []ToolCall{call},
	}
}
