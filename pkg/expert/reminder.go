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
	Register("reminder", func(deps Deps) (Expert, error) {
		client := deps.Client("reminders")
		if client == nil {
			return nil, ErrNotConfigured
		}
		return &reminderExpert{client: client, now: deps.now}, nil
	})
}

// reminderExpert creates reminders through the reminders router.
type reminderExpert struct {
	client *outbound.Client
	now    nowFunc
}

// defaultReminderTime applies when the query names a day but no clock
// time.
const defaultReminderTime = "09:00:00"

var (
	remindMeRe     = regexp.MustCompile(`(?i)\bremind\s+me\b`)
	reminderWordRe = regexp.MustCompile(`(?i)\breminder\b`)
	dontForgetRe   = regexp.MustCompile(`(?i)\bdon'?t\s+let\s+me\s+forget\b`)

	// whenPhraseRe strips schedule expressions out of the reminder tail so
	// only the task itself remains as the title.
	whenPhraseRe = regexp.MustCompile(`(?i)\b(?:day\s+after\s+tomorrow|tomorrow|today|tonight|at\s+\d{1,2}(?::\d{2})?\s*(?:am|pm)?|\d{1,2}:\d{2}\s*(?:am|pm)?|\d{1,2}\s*(?:am|pm)|in\s+the\s+(?:morning|afternoon|evening)|(?:morning|noon|midday|afternoon|evening|night|midnight))\b`)

	taskPronounRe = regexp.MustCompile(`(?i)\b(them|it)\b`)
	reminderForRe = regexp.MustCompile(`(?i)\breminder\s+(?:to|about|for)\s+(.+)$`)
)

func (e *reminderExpert) Name() string { return "reminder" }

func (e *reminderExpert) Capabilities() []string {
	return []string{"reminder.create"}
}

func (e *reminderExpert) Descriptor() Descriptor {
	return Descriptor{Name: e.Name(), Capabilities: e.Capabilities(), DefaultConfidence: 0.9}
}

func (e *reminderExpert) CanHandle(query string) float64 {
	switch {
	case remindMeRe.MatchString(query):
		return 0.9
	case dontForgetRe.MatchString(query):
		return 0.85
	case reminderWordRe.MatchString(query):
		return 0.8
	default:
		return 0
	}
}

func (e *reminderExpert) Execute(ctx context.Context, tc TurnContext, query string) *ActionResult {
	query = Sanitize(query)

	title := extractReminderTitle(query)
	if title == "" {
		return invalid("I couldn't tell what to remind you about.")
	}

	when, ok := FindWhen(query, e.now(), tc.Loc())
	if !ok {
		return invalid(fmt.Sprintf("When should I remind you to %s?", title))
	}
	dueTime := when.ClockSeconds()
	if dueTime == "" {
		dueTime = defaultReminderTime
	}

	body := map[string]interface{}{
		"title":         title,
		"user_id":       tc.UserID,
		"due_date":      when.DateString(),
		"due_time":      dueTime,
		"reminder_type": "task",
		"category":      "general",
		"priority":      "medium",
	}
	params := map[string]interface{}{
		"title":    title,
		"due_date": when.DateString(),
		"due_time": dueTime,
	}

	err := e.client.Post(ctx, "/api/reminders", body, nil)
	call := ToolCall{Tool: "reminder.create", Params: params, Success: err == nil, Err: fault.KindOf(err)}
	if err != nil {
		return failure(fault.KindOf(err), "I couldn't reach the reminder service.", call)
	}

	return &ActionResult{
		Success:           true,
		Summary:           fmt.Sprintf("I'll remind you to %s on %s at %s.", title, when.DateString(), dueTime),
		Artifacts:         []map[string]interface{}{params},
		CausedSideEffects: true,
		Calls:             []ToolCall{call},
	}
}

// extractReminderTitle isolates the task from a reminder request. The
// schedule words are stripped first so "remind me tomorrow at 9am to buy
// bananas" and "remind me to buy bananas tomorrow at 9am" both yield
// "buy bananas". A bare pronoun task is resolved against an add-to-list
// phrase elsewhere in the query, if present.
func extractReminderTitle(query string) string {
	var tail string
	if loc := remindMeRe.FindStringIndex(query); loc != nil {
		tail = query[loc[1]:]
	} else if loc := dontForgetRe.FindStringIndex(query); loc != nil {
		tail = query[loc[1]:]
	} else if m := reminderForRe.FindStringSubmatch(query); m != nil {
		tail = m[1]
	} else {
		return ""
	}

	tail = whenPhraseRe.ReplaceAllString(tail, " ")
	tail = strings.Join(strings.Fields(tail), " ")
	for _, prefix := range []string{"to ", "about ", "of ", "that "} {
		if len(tail) > len(prefix) && strings.EqualFold(tail[:len(prefix)], prefix) {
			tail = tail[len(prefix):]
			break
		}
	}
	title := strings.Trim(strings.TrimSpace(tail), ".!?,")

	if taskPronounRe.MatchString(title) {
		if m := listAddRe.FindStringSubmatch(query); m != nil {
			title = taskPronounRe.ReplaceAllString(title, strings.TrimSpace(m[1]))
		}
	}
	return title
}
