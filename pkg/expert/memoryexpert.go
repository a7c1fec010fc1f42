package expert

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/outbound"
)

func init() {
	Register("memory", func(deps Deps) (Expert, error) {
		if deps.Facts == nil {
			return nil, ErrNotConfigured
		}
		// The external memory router is optional; the local fact store
		// carries the expert on its own.
		return &memoryExpert{facts: deps.Facts, remote: deps.Client("memory")}, nil
	})
}

// memoryExpert stores and recalls long-term facts. Storage is local
// (FactService); recall merges local hits with the external memory router
// when one is configured.
type memoryExpert struct {
	facts  *memory.FactService
	remote *outbound.Client
}

// memoryRecallK bounds how many facts a single turn surfaces.
const memoryRecallK = 5

var (
	rememberRe    = regexp.MustCompile(`(?i)\bremember\s+(?:that\s+)?(.*)$`)
	youRememberRe = regexp.MustCompile(`(?i)\bdo\s+you\s+remember\b`)
	recallRe      = regexp.MustCompile(`(?i)\bwhat(?:\s+kind\s+of)?\b.*\b(?:do|did|does)\s+i\b|\bdo\s+i\s+(?:like|prefer|have|need)\b|\bwhat'?s\s+my\b|\bwhat\s+is\s+my\b`)
)

func (e *memoryExpert) Name() string { return "memory" }

func (e *memoryExpert) Capabilities() []string {
	return []string{"memory.store", "memory.search"}
}

func (e *memoryExpert) Descriptor() Descriptor {
	return Descriptor{Name: e.Name(), Capabilities: e.Capabilities(), DefaultConfidence: 0.95}
}

func (e *memoryExpert) CanHandle(query string) float64 {
	switch {
	case youRememberRe.MatchString(query):
		return 0.7
	case rememberRe.MatchString(query):
		return 0.95
	case recallRe.MatchString(query):
		return 0.7
	default:
		return 0
	}
}

func (e *memoryExpert) Execute(ctx context.Context, tc TurnContext, query string) *ActionResult {
	query = Sanitize(query)

	if m := rememberRe.FindStringSubmatch(query); m != nil && !youRememberRe.MatchString(query) {
		return e.store(ctx, tc.UserID, strings.Trim(strings.TrimSpace(m[1]), ".!?"))
	}
	return e.recall(ctx, tc.UserID, query)
}

func (e *memoryExpert) store(ctx context.Context, userID, text string) *ActionResult {
	if text == "" {
		return invalid("What should I remember?")
	}

	fact, err := e.facts.Create(ctx, memory.CreateFactRequest{UserID: userID, Text: text})
	call := ToolCall{
		Tool:    "memory.store",
		Params:  map[string]interface{}{"text": text},
		Success: err == nil,
		Err:     fault.KindOf(err),
	}
	if err != nil {
		return failure(fault.KindOf(err), "I couldn't save that right now.", call)
	}

	return &ActionResult{
		Success:           true,
		Summary:           fmt.Sprintf("I'll remember that %s.", text),
		Artifacts:         []map[string]interface{}{{"fact_id": fact.ID, "text": fact.Text}},
		CausedSideEffects: true,
		Calls:             []ToolCall{call},
	}
}

func (e *memoryExpert) recall(ctx context.Context, userID, query string) *ActionResult {
	facts, err := e.facts.Search(ctx, userID, query, memoryRecallK)
	call := ToolCall{
		Tool:    "memory.search",
		Params:  map[string]interface{}{"query": query, "k": memoryRecallK},
		Success: err == nil,
		Err:     fault.KindOf(err),
	}
	if err != nil {
		return failure(fault.KindOf(err), "I couldn't search my memory right now.", call)
	}

	result := &ActionResult{Success: true, Calls: []ToolCall{call}}
	texts := make([]string, 0, len(facts))
	for _, f := range facts {
		texts = append(texts, f.Text)
		result.Artifacts = append(result.Artifacts, map[string]interface{}{
			"fact_id": f.ID,
			"text":    f.Text,
		})
	}

	// Best-effort remote search; local results stand on their own.
	if e.remote != nil {
		remote, remoteCall := e.searchRemote(ctx, userID, query)
		result.Calls = append(result.Calls, remoteCall)
		for _, text := range remote {
			if !containsFold(texts, text) {
				texts = append(texts, text)
				result.Artifacts = append(result.Artifacts, map[string]interface{}{
					"text":   text,
					"source": "memory-router",
				})
			}
		}
	}

	if len(texts) == 0 {
		result.Summary = "I don't have anything stored about that yet."
		return result
	}
	result.Summary = "Here's what I remember: " + strings.Join(texts, "; ") + "."
	return result
}

func (e *memoryExpert) searchRemote(ctx context.Context, userID, query string) ([]string, ToolCall) {
	var doc struct {
		Results []struct {
			Text string `json:"text"`
		} `json:"results"`
	}
	err := e.remote.Post(ctx, "/api/memory/search", map[string]interface{}{
		"user_id": userID,
		"query":   query,
		"k":       memoryRecallK,
	}, &doc)
	call := ToolCall{
		Tool:    "memory.search_remote",
		Params:  map[string]interface{}{"query": query, "k": memoryRecallK},
		Success: err == nil,
		Err:     fault.KindOf(err),
	}
	if err != nil {
		return nil, call
	}
	texts := make([]string, 0, len(doc.Results))
	for _, r := range doc.Results {
		if r.Text != "" {
			texts = append(texts, r.Text)
		}
	}
	return texts, call
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
