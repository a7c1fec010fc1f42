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
	Register("calendar", func(deps Deps) (Expert, error) {
		client := deps.Client("calendar")
		if client == nil {
			return nil, ErrNotConfigured
		}
		return &calendarExpert{client: client, now: deps.now}, nil
	})
}

// calendarExpert creates events through the calendar router.
type calendarExpert struct {
	client *outbound.Client
	now    nowFunc
}

var (
	scheduleRe = regexp.MustCompile(`(?i)\b(?:schedule|book)\s+(?:a\s+|an\s+|the\s+)?(.+?)(?:\s+(?:for|on|at|with|from|tomorrow|today|tonight|next)\b|$)`)
	calAddRe   = regexp.MustCompile(`(?i)\b(?:add|put)\s+(.+?)\s+(?:to|on|in)\s+(?:my\s+|the\s+)?calendar\b`)
	calWordRe  = regexp.MustCompile(`(?i)\b(?:calendar|appointment|meeting)\b`)
)

func (e *calendarExpert) Name() string { return "calendar" }

func (e *calendarExpert) Capabilities() []string {
	return []string{"calendar.create"}
}

func (e *calendarExpert) Descriptor() Descriptor {
	return Descriptor{Name: e.Name(), Capabilities: e.Capabilities(), DefaultConfidence: 0.9}
}

func (e *calendarExpert) CanHandle(query string) float64 {
	switch {
	case scheduleRe.MatchString(query), calAddRe.MatchString(query):
		return 0.9
	case calWordRe.MatchString(query):
		return 0.6
	default:
		return 0
	}
}

func (e *calendarExpert) Execute(ctx context.Context, tc TurnContext, query string) *ActionResult {
	query = Sanitize(query)

	var title string
	if m := scheduleRe.FindStringSubmatch(query); m != nil {
		title = strings.TrimSpace(m[1])
	} else if m := calAddRe.FindStringSubmatch(query); m != nil {
		title = strings.TrimSpace(m[1])
	}
	if title == "" {
		return invalid("I couldn't tell what to put on your calendar.")
	}

	when, ok := FindWhen(query, e.now(), tc.Loc())
	if !ok {
		return invalid(fmt.Sprintf("When should I schedule %q?", title))
	}

	body := map[string]interface{}{
		"title":      title,
		"start_date": when.DateString(),
	}
	params := map[string]interface{}{
		"title":      title,
		"start_date": when.DateString(),
	}
	if when.HasTime {
		body["start_time"] = when.Clock()
		params["start_time"] = when.Clock()
	}

	err := e.client.Post(ctx, "/api/calendar/events", body, nil)
	call := ToolCall{Tool: "calendar.create", Params: params, Success: err == nil, Err: fault.KindOf(err)}
	if err != nil {
		return failure(fault.KindOf(err), "I couldn't reach the calendar service.", call)
	}

	summary := fmt.Sprintf("Scheduled %q for %s", title, when.DateString())
	if when.HasTime {
		summary += " at " + when.Clock()
	}
	return &ActionResult{
		Success:           true,
		Summary:           summary + ".",
		Artifacts:         []map[string]interface{}{params},
		CausedSideEffects: true,
		Calls:             []ToolCall{call},
	}
}
