package expert

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

func init() {
	Register("planning", func(deps Deps) (Expert, error) {
		return &planningExpert{}, nil
	})
}

// planningExpert decomposes a goal into concrete steps. Pure: no
// collaborator, no side effects.
type planningExpert struct{}

var (
	planVerbRe = regexp.MustCompile(`(?i)\b(?:help\s+me\s+plan|plan\s+(?:out\s+)?(?:my|a|an|the)|break\s+down|steps\s+(?:to|for))\s+(.+?)(?:[.!?]|$)`)
	planWordRe = regexp.MustCompile(`(?i)\b(?:plan|planning)\b`)
)

func (e *planningExpert) Name() string { return "planning" }

func (e *planningExpert) Capabilities() []string {
	return []string{"planning.decompose"}
}

func (e *planningExpert) Descriptor() Descriptor {
	return Descriptor{Name: e.Name(), Capabilities: e.Capabilities(), DefaultConfidence: 0.8}
}

func (e *planningExpert) CanHandle(query string) float64 {
	switch {
	case planVerbRe.MatchString(query):
		return 0.8
	case planWordRe.MatchString(query):
		return 0.5
	default:
		return 0
	}
}

func (e *planningExpert) Execute(ctx context.Context, tc TurnContext, query string) *ActionResult {
	query = Sanitize(query)

	goal := ""
	if m := planVerbRe.FindStringSubmatch(query); m != nil {
		goal = strings.TrimSpace(m[1])
	}
	if goal == "" {
		return invalid("What would you like to plan?")
	}

	steps := decomposeGoal(goal)
	result := &ActionResult{
		Success: true,
		Summary: fmt.Sprintf("Here's a %d-step plan for %s: %s", len(steps), goal, strings.Join(steps, " ")),
		Calls: []ToolCall{{
			Tool:    "planning.decompose",
			Params:  map[string]interface{}{"goal": goal},
			Success: true,
		}},
	}
	for i, step := range steps {
		result.Artifacts = append(result.Artifacts, map[string]interface{}{
			"step": i + 1,
			"text": step,
		})
	}
	return result
}

// decomposeGoal applies a fixed outline; the model elaborates on it in the
// composed response.
func decomposeGoal(goal string) []string {
	return []string{
		fmt.Sprintf("1) Define what done looks like for %s.", goal),
		"2) List the constraints: time, budget, and who needs to be involved.",
		"3) Break the work into milestones you can finish in one sitting.",
		"4) Put the first milestone on your calendar.",
		"5) Set a check-in reminder to review progress.",
	}
}
