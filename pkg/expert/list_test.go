package expert

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/fault"
)

func newListExpert(t *testing.T) (*listExpert, *collaborator) {
	t.Helper()
	stub := &collaborator{}
	return &listExpert{client: serviceClient(t, "lists", stub)}, stub
}

func TestListCanHandle(t *testing.T) {
	e, _ := newListExpert(t)

	tests := []struct {
		query string
		want  float64
	}{
		{"Add milk and eggs to my shopping list", 0.9},
		{"remove bread from the shopping list", 0.9},
		{"what's on my shopping list", 0.8},
		{"my shopping list is getting long", 0.7},
		{"turn on the lights", 0},
		{"what's the weather", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, e.CanHandle(tc.query), "CanHandle(%q)", tc.query)
	}
}

func TestListAddTwoItems(t *testing.T) {
	e, stub := newListExpert(t)

	result := e.Execute(context.Background(), testTurn(), "Add milk and eggs to my shopping list")

	require.True(t, result.Success)
	require.Equal(t, 2, stub.count())
	first, second := stub.at(0), stub.at(1)
	assert.Equal(t, http.MethodPost, first.Method)
	assert.Equal(t, "/api/lists/shopping/items", first.Path)
	assert.Equal(t, "milk", first.Body["text"])
	assert.Equal(t, "eggs", second.Body["text"])

	require.Len(t, result.Calls, 2)
	for _, call := range result.Calls {
		assert.Equal(t, "list.add", call.Tool)
		assert.True(t, call.Success)
	}
	assert.True(t, result.CausedSideEffects)
	assert.Contains(t, result.Summary, "milk")
	assert.Contains(t, result.Summary, "eggs")
	assert.Len(t, result.Artifacts, 2)
}

func TestListAddWithQuantity(t *testing.T) {
	e, stub := newListExpert(t)

	result := e.Execute(context.Background(), testTurn(), "add 2 apples to my shopping list")

	require.True(t, result.Success)
	require.Equal(t, 1, stub.count())
	body := stub.at(0).Body
	assert.Equal(t, "apples", body["text"])
	assert.Equal(t, float64(2), body["quantity"])
}

func TestListAddResolvesPronoun(t *testing.T) {
	e, stub := newListExpert(t)

	result := e.Execute(context.Background(), testTurn(),
		"Schedule a meeting tomorrow at 2pm and add it to my list")

	require.True(t, result.Success)
	require.Equal(t, 1, stub.count())
	assert.Equal(t, "meeting", stub.at(0).Body["text"],
		"a pronoun item resolves to the scheduled thing")
}

func TestListAddTargetsTodoList(t *testing.T) {
	e, stub := newListExpert(t)

	result := e.Execute(context.Background(), testTurn(), "add file taxes to my todo list")

	require.True(t, result.Success)
	assert.Equal(t, "/api/lists/todo/items", stub.at(0).Path)
}

func TestListRemove(t *testing.T) {
	e, stub := newListExpert(t)

	result := e.Execute(context.Background(), testTurn(), "remove oat milk from my shopping list")

	require.True(t, result.Success)
	require.Equal(t, 1, stub.count())
	req := stub.at(0)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/lists/shopping/items/oat_milk", req.Path)
	assert.Equal(t, "list.remove", result.Calls[0].Tool)
	assert.True(t, result.CausedSideEffects)
}

func TestListShow(t *testing.T) {
	e, stub := newListExpert(t)
	stub.respond(`{"items":[{"text":"milk","quantity":1},{"text":"eggs","quantity":12}]}`)

	result := e.Execute(context.Background(), testTurn(), "what's on my shopping list?")

	require.True(t, result.Success)
	assert.Equal(t, http.MethodGet, stub.at(0).Method)
	assert.Equal(t, "/api/lists/shopping", stub.at(0).Path)
	assert.Contains(t, result.Summary, "2 items")
	assert.Contains(t, result.Summary, "milk")
	assert.False(t, result.CausedSideEffects)
	assert.Len(t, result.Artifacts, 2)
}

func TestListShowEmpty(t *testing.T) {
	e, stub := newListExpert(t)
	stub.respond(`{"items":[]}`)

	result := e.Execute(context.Background(), testTurn(), "show me my shopping list")

	require.True(t, result.Success)
	assert.Contains(t, result.Summary, "empty")
}

func TestListAddServiceDown(t *testing.T) {
	e, stub := newListExpert(t)
	stub.fail(http.StatusServiceUnavailable)

	result := e.Execute(context.Background(), testTurn(), "add milk to my shopping list")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindUnavailable, result.Err)
	assert.False(t, result.CausedSideEffects)
	require.Len(t, result.Calls, 1)
	assert.False(t, result.Calls[0].Success)
	assert.Equal(t, fault.KindUnavailable, result.Calls[0].Err)
}

func TestListAddPartialItemFailure(t *testing.T) {
	// First item lands, then the collaborator starts refusing. The expert
	// posts items sequentially, so a plain counter is safe here.
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"unavailable"}`))
			return
		}
		w.Write([]byte("{}"))
	})
	e := &listExpert{client: serviceClient(t, "lists", handler)}

	result := e.Execute(context.Background(), testTurn(), "add milk and eggs to my shopping list")

	require.False(t, result.Success)
	assert.True(t, result.CausedSideEffects, "the first item committed")
	assert.Equal(t, fault.KindUnavailable, result.Err)
	require.Len(t, result.Calls, 2)
	assert.True(t, result.Calls[0].Success)
	assert.False(t, result.Calls[1].Success)
	assert.Contains(t, result.Summary, "milk")
}

func TestListNothingToAdd(t *testing.T) {
	e, stub := newListExpert(t)

	result := e.Execute(context.Background(), testTurn(), "put this somewhere")

	require.False(t, result.Success)
	assert.Equal(t, fault.KindInvalid, result.Err)
	assert.Equal(t, 0, stub.count())
}
