package expert

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/outbound"
)

func init() {
	Register("homeassistant", func(deps Deps) (Expert, error) {
		client := deps.Client("homeassistant")
		if client == nil {
			return nil, ErrNotConfigured
		}
		return &homeAssistantExpert{client: client}, nil
	})
}

// homeAssistantExpert drives device control through the Home Assistant
// bridge.
type homeAssistantExpert struct {
	client *outbound.Client
}

var (
	haTurnRe   = regexp.MustCompile(`(?i)\bturn\s+(on|off)\s+(?:the\s+|my\s+|all\s+)?(.+?)(?:\s+(?:please|now)\b|[.!?]|$)`)
	haDimRe    = regexp.MustCompile(`(?i)\b(?:dim|set)\s+(?:the\s+|my\s+)?(.+?)\s+to\s+(\d{1,3})\s*(?:%|percent)`)
	haDeviceRe = regexp.MustCompile(`(?i)\b(?:lights?|lamps?|thermostat|fan|heating|switch(?:es)?)\b`)
)

// deviceDomains maps the noun the user said to a Home Assistant domain.
// Order matters: the first noun found in the phrase wins.
var deviceDomains = []struct {
	noun   *regexp.Regexp
	domain string
}{
	{regexp.MustCompile(`(?i)\b(?:lights?|lamps?)\b`), "light"},
	{regexp.MustCompile(`(?i)\bfans?\b`), "fan"},
	{regexp.MustCompile(`(?i)\b(?:thermostat|heating|heat|ac|air\s+conditioning)\b`), "climate"},
	{regexp.MustCompile(`(?i)\b(?:tv|television)\b`), "media_player"},
	{regexp.MustCompile(`(?i)\b(?:plugs?|outlets?|switch(?:es)?)\b`), "switch"},
}

// domainNouns phrase each domain for summaries.
var domainNouns = map[string]string{
	"light":        "lights",
	"fan":          "fan",
	"climate":      "thermostat",
	"media_player": "TV",
	"switch":       "switch",
}

func (e *homeAssistantExpert) Name() string { return "homeassistant" }

func (e *homeAssistantExpert) Capabilities() []string {
	return []string{"homeassistant.call"}
}

func (e *homeAssistantExpert) Descriptor() Descriptor {
	return Descriptor{Name: e.Name(), Capabilities: e.Capabilities(), DefaultConfidence: 0.9}
}

func (e *homeAssistantExpert) CanHandle(query string) float64 {
	switch {
	case haTurnRe.MatchString(query):
		return 0.9
	case haDimRe.MatchString(query):
		return 0.85
	case haDeviceRe.MatchString(query):
		return 0.5
	default:
		return 0
	}
}

func (e *homeAssistantExpert) Execute(ctx context.Context, tc TurnContext, query string) *ActionResult {
	query = Sanitize(query)

	if m := haDimRe.FindStringSubmatch(query); m != nil {
		pct, _ := strconv.Atoi(m[2])
		if pct > 100 {
			return invalid("Brightness must be between 0 and 100 percent.")
		}
		return e.callService(ctx, "turn_on", m[1], map[string]interface{}{"brightness_pct": pct})
	}
	if m := haTurnRe.FindStringSubmatch(query); m != nil {
		return e.callService(ctx, "turn_"+strings.ToLower(m[1]), m[2], nil)
	}
	return invalid("I couldn't tell which device to control.")
}

func (e *homeAssistantExpert) callService(ctx context.Context, action, phrase string, data map[string]interface{}) *ActionResult {
	domain, name := resolveDevice(phrase)
	if name == "" {
		return invalid(fmt.Sprintf("Ambiguous: which %s did you mean? Try naming the room, like %q.",
			domainNouns[domain], "living room "+domainNouns[domain]))
	}

	service := domain + "." + action
	entityID := domain + "." + Slugify(name)
	body := map[string]interface{}{
		"service":   service,
		"entity_id": entityID,
	}
	if len(data) > 0 {
		body["data"] = data
	}
	params := map[string]interface{}{"service": service, "entity_id": entityID}

	err := e.client.Post(ctx, "/api/homeassistant/service", body, nil)
	call := ToolCall{Tool: "homeassistant.call", Params: params, Success: err == nil, Err: fault.KindOf(err)}
	if err != nil {
		return failure(fault.KindOf(err), "I couldn't reach your home devices.", call)
	}

	verb := "Turned on"
	if action == "turn_off" {
		verb = "Turned off"
	}
	noun := domainNouns[domain]
	summary := fmt.Sprintf("%s the %s %s.", verb, TitleWords(name), noun)
	if pct, ok := data["brightness_pct"]; ok {
		summary = fmt.Sprintf("Set the %s %s to %v%%.", TitleWords(name), noun, pct)
	}
	return &ActionResult{
		Success:           true,
		Summary:           summary,
		Artifacts:         []map[string]interface{}{params},
		CausedSideEffects: true,
		Calls:             []ToolCall{call},
	}
}

// resolveDevice infers the Home Assistant domain from the device noun and
// returns the remaining words as the device name. An empty name means the
// user never said which device.
func resolveDevice(phrase string) (domain, name string) {
	domain = "switch"
	rest := phrase
	for _, d := range deviceDomains {
		if d.noun.MatchString(phrase) {
			domain = d.domain
			rest = d.noun.ReplaceAllString(phrase, " ")
			break
		}
	}
	return domain, strings.Join(strings.Fields(rest), " ")
}
