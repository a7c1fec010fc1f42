package expert

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/fault"
)

func newJournalExpert(t *testing.T) (*journalExpert, *collaborator) {
	t.Helper()
	stub := &collaborator{}
	return &journalExpert{client: serviceClient(t, "journal", stub)}, stub
}

func TestJournalCanHandle(t *testing.T) {
	e, _ := newJournalExpert(t)

	assert.Equal(t, 0.9, e.CanHandle("journal entry: today was a good day"))
	assert.Equal(t, 0.9, e.CanHandle("write in my journal that the trip went well"))
	assert.Equal(t, 0.85, e.CanHandle("write in my journal today was great"))
	assert.Equal(t, 0.6, e.CanHandle("where is my journal"))
	assert.Equal(t, 0.0, e.CanHandle("remind me to stretch tomorrow"))
}

func TestJournalCreateWithSeparator(t *testing.T) {
	e, stub := newJournalExpert(t)

	result := e.Execute(context.Background(), testTurn(),
		"journal entry: today was a good day, feeling happy")

	require.True(t, result.Success)
	require.Equal(t, 1, stub.count())
	req := stub.at(0)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/journal/", req.Path)
	assert.Equal(t, "today was a good day, feeling happy", req.Body["content"])
	assert.Equal(t, "happy", req.Body["mood"])

	assert.Equal(t, "journal.create", result.Calls[0].Tool)
	assert.True(t, result.CausedSideEffects)
}

func TestJournalCreateAboutForm(t *testing.T) {
	e, stub := newJournalExpert(t)

	result := e.Execute(context.Background(), testTurn(),
		"add a journal entry about the hike this morning")

	require.True(t, result.Success)
	assert.Equal(t, "the hike this morning", stub.at(0).Body["content"])
	_, hasMood := stub.at(0).Body["mood"]
	assert.False(t, hasMood)
}

func TestJournalWithoutContentIsInvalid(t *testing.T) {
	e, stub := newJournalExpert(t)

	result := e.Execute(context.Background(), testTurn(), "journal")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindInvalid, result.Err)
	assert.Equal(t, 0, stub.count())
}

func TestJournalServiceDown(t *testing.T) {
	e, stub := newJournalExpert(t)
	stub.fail(http.StatusServiceUnavailable)

	result := e.Execute(context.Background(), testTurn(), "journal entry: rough day")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindUnavailable, result.Err)
	assert.False(t, result.CausedSideEffects)
}
