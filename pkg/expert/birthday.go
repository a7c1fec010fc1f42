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
	Register("birthday", func(deps Deps) (Expert, error) {
		people := deps.Client("people")
		calendar := deps.Client("calendar")
		if people == nil && calendar == nil {
			return nil, ErrNotConfigured
		}
		return &birthdayExpert{people: people, calendar: calendar, now: deps.now}, nil
	})
}

// birthdayExpert runs the birthday-setup flow: save the person's date and
// put the next occurrence on the calendar. Either collaborator may be
// absent; the flow does what it can with what is configured.
type birthdayExpert struct {
	people   *outbound.Client
	calendar *outbound.Client
	now      nowFunc
}

var (
	birthdayOfRe   = regexp.MustCompile(`(?i)\b([a-z][\w]*)'s\s+birthday\b`)
	birthdayForRe  = regexp.MustCompile(`(?i)\bbirthday\s+(?:for|of)\s+([a-z][\w]*)\b`)
	birthdayWordRe = regexp.MustCompile(`(?i)\bbirthday\b`)
	birthdaySetRe  = regexp.MustCompile(`(?i)\b(?:add|set|save|remember|is\s+on|is)\b`)
)

func (e *birthdayExpert) Name() string { return "birthday" }

func (e *birthdayExpert) Capabilities() []string {
	return []string{"people.birthday", "calendar.create"}
}

func (e *birthdayExpert) Descriptor() Descriptor {
	return Descriptor{Name: e.Name(), Capabilities: e.Capabilities(), DefaultConfidence: 0.85}
}

func (e *birthdayExpert) CanHandle(query string) float64 {
	if !birthdayWordRe.MatchString(query) {
		return 0
	}
	if birthdaySetRe.MatchString(query) && (birthdayOfRe.MatchString(query) || birthdayForRe.MatchString(query)) {
		return 0.85
	}
	return 0.5
}

func (e *birthdayExpert) Execute(ctx context.Context, tc TurnContext, query string) *ActionResult {
	query = Sanitize(query)

	name := ""
	if m := birthdayOfRe.FindStringSubmatch(query); m != nil {
		name = m[1]
	} else if m := birthdayForRe.FindStringSubmatch(query); m != nil {
		name = m[1]
	}
	// "birthday for March 15" captures the month, not a person.
	if _, isMonth := monthsByName[strings.ToLower(name)]; isMonth {
		name = ""
	}
	if name == "" {
		return invalid("Whose birthday should I save?")
	}
	name = TitleWords(name)

	date, ok := FindMonthDay(query, e.now(), tc.Loc())
	if !ok {
		return invalid(fmt.Sprintf("When is %s's birthday?", name))
	}

	result := &ActionResult{Success: true}

	if e.people != nil {
		err := e.people.Post(ctx, "/api/people/birthdays", map[string]interface{}{
			"name": name,
			"date": date.Format("2006-01-02"),
		}, nil)
		result.Calls = append(result.Calls, ToolCall{
			Tool:    "people.birthday",
			Params:  map[string]interface{}{"name": name, "date": date.Format("2006-01-02")},
			Success: err == nil,
			Err:     fault.KindOf(err),
		})
		if err != nil {
			result.Success = false
			result.Err = fault.KindOf(err)
		} else {
			result.CausedSideEffects = true
			result.Artifacts = append(result.Artifacts, map[string]interface{}{
				"name": name,
				"date": date.Format("2006-01-02"),
			})
		}
	}

	if e.calendar != nil {
		title := fmt.Sprintf("%s's birthday", name)
		err := e.calendar.Post(ctx, "/api/calendar/events", map[string]interface{}{
			"title":      title,
			"start_date": date.Format("2006-01-02"),
			"category":   "birthday",
		}, nil)
		result.Calls = append(result.Calls, ToolCall{
			Tool:    "calendar.create",
			Params:  map[string]interface{}{"title": title, "start_date": date.Format("2006-01-02")},
			Success: err == nil,
			Err:     fault.KindOf(err),
		})
		if err != nil {
			result.Success = false
			if result.Err == fault.KindNone {
				result.Err = fault.KindOf(err)
			}
		} else {
			result.CausedSideEffects = true
			result.Artifacts = append(result.Artifacts, map[string]interface{}{
				"title":      title,
				"start_date": date.Format("2006-01-02"),
				"category":   "birthday",
			})
		}
	}

	month := date.Format("January 2")
	switch {
	case result.Success && e.people != nil && e.calendar != nil:
		result.Summary = fmt.Sprintf("Saved %s's birthday (%s) and put it on your calendar.", name, month)
	case result.Success && e.calendar != nil:
		result.Summary = fmt.Sprintf("Put %s's birthday (%s) on your calendar.", name, month)
	case result.Success:
		result.Summary = fmt.Sprintf("Saved %s's birthday (%s).", name, month)
	case result.CausedSideEffects:
		result.Summary = fmt.Sprintf("Saved part of %s's birthday setup, but not all of it went through.", name)
	default:
		result.Summary = fmt.Sprintf("I couldn't save %s's birthday right now.", name)
	}
	return result
}
