package expert

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/outbound"
)

func init() {
	Register("list", func(deps Deps) (Expert, error) {
		client := deps.Client("lists")
		if client == nil {
			return nil, ErrNotConfigured
		}
		return &listExpert{client: client}, nil
	})
}

// listExpert manages shopping and todo lists through the lists router.
type listExpert struct {
	client *outbound.Client
}

var (
	listAddRe    = regexp.MustCompile(`(?i)\b(?:add|put)\s+(.+?)\s+(?:to|on|in)\s+(?:my\s+|the\s+|our\s+)?(?:[\w-]+\s+)?list\b`)
	listRemoveRe = regexp.MustCompile(`(?i)\b(?:remove|delete|take|cross)\s+(.+?)\s+(?:from|off)\s+(?:my\s+|the\s+|our\s+)?(?:[\w-]+\s+)?list\b`)
	listShowRe   = regexp.MustCompile(`(?i)\b(?:what(?:'s|\s+is)\s+on|show\s+(?:me\s+)?|read\s+(?:me\s+)?)\s*(?:my\s+|the\s+)?(?:[\w-]+\s+)?list\b`)
	listWordRe   = regexp.MustCompile(`(?i)\b(?:shopping|grocery|groceries|todo|to-do)\s+list\b`)

	// scheduledThingRe recovers the antecedent when the list item is a
	// bare pronoun ("schedule a meeting ... and add it to my list").
	scheduledThingRe = regexp.MustCompile(`(?i)\b(?:schedule|book|plan|set\s+up)\s+(?:a\s+|an\s+|the\s+)?(.+?)(?:\s+(?:for|on|at|with|tomorrow|today|next)\b|$)`)
	pronounRe        = regexp.MustCompile(`(?i)^(?:it|them|that|this|those)$`)
)

func (e *listExpert) Name() string { return "list" }

func (e *listExpert) Capabilities() []string {
	return []string{"list.add", "list.remove", "list.show"}
}

func (e *listExpert) Descriptor() Descriptor {
	return Descriptor{Name: e.Name(), Capabilities: e.Capabilities(), DefaultConfidence: 0.9}
}

func (e *listExpert) CanHandle(query string) float64 {
	switch {
	case listAddRe.MatchString(query), listRemoveRe.MatchString(query):
		return 0.9
	case listShowRe.MatchString(query):
		return 0.8
	case listWordRe.MatchString(query):
		return 0.7
	default:
		return 0
	}
}

func (e *listExpert) Execute(ctx context.Context, tc TurnContext, query string) *ActionResult {
	query = Sanitize(query)
	listType := InferListType(query)

	if m := listAddRe.FindStringSubmatch(query); m != nil {
		return e.addItems(ctx, listType, resolveListPronoun(query, m[1]))
	}
	if m := listRemoveRe.FindStringSubmatch(query); m != nil {
		return e.removeItems(ctx, listType, m[1])
	}
	if listShowRe.MatchString(query) || listWordRe.MatchString(query) {
		return e.showList(ctx, listType)
	}
	return invalid("I couldn't tell what to change on your list.")
}

// resolveListPronoun substitutes a bare pronoun item with the thing the
// query scheduled or planned, when one is present.
func resolveListPronoun(query, phrase string) string {
	if !pronounRe.MatchString(strings.TrimSpace(phrase)) {
		return phrase
	}
	if m := scheduledThingRe.FindStringSubmatch(query); m != nil {
		return strings.TrimSpace(m[1])
	}
	return phrase
}

func (e *listExpert) addItems(ctx context.Context, listType, phrase string) *ActionResult {
	items := SplitItems(phrase)
	if len(items) == 0 {
		return invalid("I couldn't find any items to add.")
	}

	result := &ActionResult{Success: true}
	added := make([]string, 0, len(items))
	for _, raw := range items {
		text, qty := SplitQuantity(raw)
		body := map[string]interface{}{"text": text}
		params := map[string]interface{}{"list_type": listType, "text": text}
		if qty > 0 {
			body["quantity"] = qty
			params["quantity"] = qty
		}

		err := e.client.Post(ctx, fmt.Sprintf("/api/lists/%s/items", listType), body, nil)
		result.Calls = append(result.Calls, ToolCall{
			Tool:    "list.add",
			Params:  params,
			Success: err == nil,
			Err:     fault.KindOf(err),
		})
		if err != nil {
			result.Success = false
			if result.Err == fault.KindNone {
				result.Err = fault.KindOf(err)
			}
			continue
		}
		result.CausedSideEffects = true
		added = append(added, text)
		result.Artifacts = append(result.Artifacts, map[string]interface{}{
			"list_type": listType,
			"text":      text,
			"quantity":  qty,
		})
	}

	switch {
	case result.Success:
		result.Summary = fmt.Sprintf("Added %s to your %s list.", joinNatural(added), listType)
	case len(added) > 0:
		result.Summary = fmt.Sprintf("Added %s to your %s list, but some items could not be added.", joinNatural(added), listType)
	default:
		result.Summary = fmt.Sprintf("I couldn't reach your %s list.", listType)
	}
	return result
}

func (e *listExpert) removeItems(ctx context.Context, listType, phrase string) *ActionResult {
	items := SplitItems(phrase)
	if len(items) == 0 {
		return invalid("I couldn't find any items to remove.")
	}

	result := &ActionResult{Success: true}
	removed := make([]string, 0, len(items))
	for _, raw := range items {
		text, _ := SplitQuantity(raw)
		params := map[string]interface{}{"list_type": listType, "text": text}

		err := e.client.Delete(ctx, fmt.Sprintf("/api/lists/%s/items/%s", listType, Slugify(text)))
		result.Calls = append(result.Calls, ToolCall{
			Tool:    "list.remove",
			Params:  params,
			Success: err == nil,
			Err:     fault.KindOf(err),
		})
		if err != nil {
			result.Success = false
			if result.Err == fault.KindNone {
				result.Err = fault.KindOf(err)
			}
			continue
		}
		result.CausedSideEffects = true
		removed = append(removed, text)
		result.Artifacts = append(result.Artifacts, map[string]interface{}{
			"list_type": listType,
			"text":      text,
			"removed":   true,
		})
	}

	if result.Success {
		result.Summary = fmt.Sprintf("Removed %s from your %s list.", joinNatural(removed), listType)
	} else {
		result.Summary = fmt.Sprintf("I couldn't remove everything from your %s list.", listType)
	}
	return result
}

func (e *listExpert) showList(ctx context.Context, listType string) *ActionResult {
	var doc struct {
		Items []struct {
			Text     string `json:"text"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	err := e.client.Get(ctx, fmt.Sprintf("/api/lists/%s", listType), nil, &doc)
	call := ToolCall{
		Tool:    "list.show",
		Params:  map[string]interface{}{"list_type": listType},
		Success: err == nil,
		Err:     fault.KindOf(err),
	}
	if err != nil {
		return failure(fault.KindOf(err), fmt.Sprintf("I couldn't read your %s list.", listType), call)
	}

	result := &ActionResult{Success: true, Calls: []ToolCall{call}}
	if len(doc.Items) == 0 {
		result.Summary = fmt.Sprintf("Your %s list is empty.", listType)
		return result
	}
	texts := make([]string, 0, len(doc.Items))
	for _, item := range doc.Items {
		texts = append(texts, item.Text)
		result.Artifacts = append(result.Artifacts, map[string]interface{}{
			"list_type": listType,
			"text":      item.Text,
			"quantity":  item.Quantity,
		})
	}
	result.Summary = fmt.Sprintf("Your %s list has %d items: %s.", listType, len(texts), strings.Join(texts, ", "))
	return result
}

// joinNatural renders an item list the way a sentence would:
// "milk", "milk and eggs", "milk, eggs and bread".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
