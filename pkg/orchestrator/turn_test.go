package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/fault"
)

func TestPartialPrefixNamesUnreachableServices(t *testing.T) {
	prefix := partialPrefix([]*expert.ActionResult{
		{Expert: "list", Success: true},
		{Expert: "calendar", Err: fault.KindCircuitOpen},
	})

	assert.Contains(t, prefix, "calendar")
	assert.NotContains(t, prefix, "list")
}

func TestPartialPrefixEmptyWhenNothingDegraded(t *testing.T) {
	assert.Empty(t, partialPrefix([]*expert.ActionResult{
		{Expert: "list", Success: true},
		{Expert: "journal", Err: fault.KindInvalid}, // user error, not degradation
	}))
	assert.Empty(t, partialPrefix(nil))
}

func TestPartialPrefixJoinsMultipleServices(t *testing.T) {
	prefix := partialPrefix([]*expert.ActionResult{
		{Expert: "calendar", Err: fault.KindTimeout},
		{Expert: "reminder", Err: fault.KindCircuitOpen},
	})

	assert.Contains(t, prefix, "calendar and reminder")
}

func TestFallbackResponseNamesSuccesses(t *testing.T) {
	got := fallbackResponse([]*expert.ActionResult{
		{Expert: "list", Success: true, Summary: "Added milk to your shopping list."},
		{Expert: "calendar", Success: false, Summary: "I couldn't reach the calendar service."},
	})

	assert.Contains(t, got, "Added milk to your shopping list")
	assert.Contains(t, got, "couldn't form a full reply")
	assert.NotContains(t, got, "calendar service")
}

func TestFallbackResponseWithNothingDone(t *testing.T) {
	got := fallbackResponse(nil)
	assert.Contains(t, got, "try again")
}

func TestNaturalJoin(t *testing.T) {
	assert.Equal(t, "", naturalJoin(nil))
	assert.Equal(t, "a", naturalJoin([]string{"a"}))
	assert.Equal(t, "a and b", naturalJoin([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", naturalJoin([]string{"a", "b", "c"}))
}
