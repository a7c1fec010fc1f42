package notify

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

// fingerprints identify an alert condition across repeats. They are embedded
// in a context block on the parent message so later occurrences can find it
// and thread under it.
func breakerFingerprint(service string) string {
	return fmt.Sprintf("steward-alert:breaker:%s", service)
}

func llmExhaustedFingerprint() string {
	return "steward-alert:llm-fallback-exhausted"
}

// BuildBreakerOpenedMessage creates Block Kit blocks announcing an opened
// circuit.
func BuildBreakerOpenedMessage(service string, fingerprint string) []goslack.Block {
	text := fmt.Sprintf(":red_circle: *Circuit open: %s*\nConsecutive failures tripped the breaker; calls to %s now fail fast until the cooldown elapses.", service, service)
	return withFingerprint(sectionBlock(text), fingerprint)
}

// BuildBreakerRecoveredMessage creates Block Kit blocks announcing a closed
// circuit. Threaded under the open alert via the shared fingerprint.
func BuildBreakerRecoveredMessage(service string, fingerprint string) []goslack.Block {
	text := fmt.Sprintf(":large_green_circle: *Circuit closed: %s*\nThe half-open probe succeeded; traffic has resumed.", service)
	return withFingerprint(sectionBlock(text), fingerprint)
}

// BuildLLMExhaustedMessage creates Block Kit blocks for an exhausted LLM
// fallback chain. errText must already be redacted.
func BuildLLMExhaustedMessage(backend, errText, fingerprint string) []goslack.Block {
	text := fmt.Sprintf(":rotating_light: *LLM fallback chain exhausted*\nEvery configured backend failed; the last attempt (%s) returned:\n```%s```", backend, truncateForSlack(errText))
	return withFingerprint(sectionBlock(text), fingerprint)
}

func sectionBlock(text string) []goslack.Block {
	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// withFingerprint appends a muted context line carrying the fingerprint so
// FindMessageByFingerprint can locate this message later.
func withFingerprint(blocks []goslack.Block, fingerprint string) []goslack.Block {
	return append(blocks, goslack.NewContextBlock("",
		goslack.NewTextBlockObject(goslack.MarkdownType, fingerprint, false, false),
	))
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n... (truncated)"
}
