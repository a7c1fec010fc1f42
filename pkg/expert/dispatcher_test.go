package expert

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/actionlog"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
)

// fakeExpert is a scriptable expert for dispatcher tests: fixed score,
// canned result, optional delay, panic, or refusal to honor cancellation.
type fakeExpert struct {
	name       string
	score      float64
	result     *ActionResult
	delay      time.Duration
	panics     bool
	returnsNil bool
	ignoresCtx bool

	executed int32
}

func (f *fakeExpert) Name() string             { return f.name }
func (f *fakeExpert) Capabilities() []string   { return []string{f.name + ".execute"} }
func (f *fakeExpert) CanHandle(string) float64 { return f.score }

func (f *fakeExpert) Descriptor() Descriptor {
	return Descriptor{Name: f.name, Capabilities: f.Capabilities(), DefaultConfidence: f.score}
}

func (f *fakeExpert) Execute(ctx context.Context, _ TurnContext, _ string) *ActionResult {
	atomic.AddInt32(&f.executed, 1)
	if f.panics {
		panic("scripted panic")
	}
	if f.returnsNil {
		return nil
	}
	if f.delay > 0 {
		if f.ignoresCtx {
			time.Sleep(f.delay)
		} else {
			select {
			case <-time.After(f.delay):
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return &ActionResult{Summary: "ran out of time", Err: fault.KindTimeout}
				}
				return &ActionResult{Summary: "gave up", Err: fault.KindCancelled}
			}
		}
	}
	if f.result != nil {
		out := *f.result
		return &out
	}
	return &ActionResult{Success: true, Summary: f.name + " handled it"}
}

func (f *fakeExpert) executions() int32 { return atomic.LoadInt32(&f.executed) }

// mockRecorder captures action-log entries in memory.
type mockRecorder struct {
	mu      sync.Mutex
	entries []actionlog.Entry
	fail    error
}

func (m *mockRecorder) Record(_ context.Context, e actionlog.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockRecorder) all() []actionlog.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]actionlog.Entry(nil), m.entries...)
}

func testDispatcherConfig() *config.DispatcherConfig {
	return &config.DispatcherConfig{
		SelectThreshold:    0.5,
		ExclusiveThreshold: 0.85,
		ExclusiveGap:       0.15,
		OverallDeadline:    500 * time.Millisecond,
		PerExpertDeadline:  400 * time.Millisecond,
	}
}

func TestDispatcherNoCandidates(t *testing.T) {
	low := &fakeExpert{name: "list", score: 0.2}
	rec := &mockRecorder{}
	d := NewDispatcher([]Expert{low}, rec, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "what's the weather like?")

	assert.Empty(t, out.Results)
	assert.Empty(t, out.ExecutedExperts)
	assert.False(t, out.Partial)
	assert.Zero(t, low.executions())
	assert.Empty(t, rec.all())
}

func TestDispatcherSelectThresholdBoundary(t *testing.T) {
	in := &fakeExpert{name: "list", score: 0.5}
	outOf := &fakeExpert{name: "journal", score: 0.49}
	d := NewDispatcher([]Expert{in, outOf}, nil, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "add milk")

	require.Len(t, out.Results, 1)
	assert.Equal(t, "list", out.Results[0].Expert)
	assert.Equal(t, int32(1), in.executions())
	assert.Zero(t, outOf.executions())
}

func TestDispatcherExclusiveTopDominates(t *testing.T) {
	top := &fakeExpert{name: "homeassistant", score: 0.9}
	runnerUp := &fakeExpert{name: "list", score: 0.6}
	d := NewDispatcher([]Expert{runnerUp, top}, nil, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "turn on the kitchen lights")

	require.Len(t, out.Results, 1)
	assert.Equal(t, "homeassistant", out.Results[0].Expert)
	assert.Equal(t, 0.9, out.Results[0].Score)
	assert.Equal(t, []string{"homeassistant"}, out.ExecutedExperts)
	assert.Zero(t, runnerUp.executions())
}

func TestDispatcherCloseRunnerUpForcesFanOut(t *testing.T) {
	// 0.7 is not below the 0.85-0.15 cutoff, so the top expert does not
	// get the turn to itself.
	top := &fakeExpert{name: "calendar", score: 0.9}
	runnerUp := &fakeExpert{name: "list", score: 0.7}
	d := NewDispatcher([]Expert{top, runnerUp}, nil, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "schedule a meeting and add it to my list")

	require.Len(t, out.Results, 2)
	assert.Equal(t, "calendar", out.Results[0].Expert)
	assert.Equal(t, "list", out.Results[1].Expert)
	assert.Equal(t, int32(1), top.executions())
	assert.Equal(t, int32(1), runnerUp.executions())
}

func TestDispatcherMergeOrder(t *testing.T) {
	// Equal scores break ties by name; lower scores sort after.
	bravo := &fakeExpert{name: "bravo", score: 0.8}
	alpha := &fakeExpert{name: "alpha", score: 0.8}
	charlie := &fakeExpert{name: "charlie", score: 0.6}
	d := NewDispatcher([]Expert{bravo, charlie, alpha}, nil, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "do the thing")

	require.Len(t, out.Results, 3)
	assert.Equal(t, "alpha", out.Results[0].Expert)
	assert.Equal(t, "bravo", out.Results[1].Expert)
	assert.Equal(t, "charlie", out.Results[2].Expert)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, out.ExecutedExperts)
}

func TestDispatcherPartialOnOpenCircuit(t *testing.T) {
	ok := &fakeExpert{name: "list", score: 0.8, result: &ActionResult{
		Success: true, Summary: "Added the meeting to your list.", CausedSideEffects: true,
	}}
	broken := &fakeExpert{name: "calendar", score: 0.8, result: &ActionResult{
		Summary: "I couldn't reach the calendar service.", Err: fault.KindCircuitOpen,
	}}
	d := NewDispatcher([]Expert{ok, broken}, nil, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "schedule a meeting and add it to my list")

	require.Len(t, out.Results, 2)
	assert.True(t, out.Partial)
	assert.Equal(t, []string{"list"}, out.ExecutedExperts)
	assert.Equal(t, fault.KindCircuitOpen, out.Results[0].Err)
	assert.Equal(t, "calendar", out.Results[0].Expert)
}

func TestDispatcherCancelledIsNotPartial(t *testing.T) {
	slow := &fakeExpert{name: "journal", score: 0.9, delay: 5 * time.Second}
	d := NewDispatcher([]Expert{slow}, nil, testDispatcherConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	out := d.Dispatch(ctx, testTurn(), "write a journal entry about today")

	require.Len(t, out.Results, 1)
	assert.Equal(t, fault.KindCancelled, out.Results[0].Err)
	assert.False(t, out.Partial, "user disconnects are not degraded turns")
	assert.Empty(t, out.ExecutedExperts)
}

func TestDispatcherExpertTimeoutIsPartial(t *testing.T) {
	slow := &fakeExpert{name: "reminder", score: 0.9, delay: 5 * time.Second}
	d := NewDispatcher([]Expert{slow}, nil, &config.DispatcherConfig{
		SelectThreshold:    0.5,
		ExclusiveThreshold: 0.85,
		ExclusiveGap:       0.15,
		OverallDeadline:    80 * time.Millisecond,
		PerExpertDeadline:  50 * time.Millisecond,
	}, nil)

	start := time.Now()
	out := d.Dispatch(context.Background(), testTurn(), "remind me to stretch")
	elapsed := time.Since(start)

	require.Len(t, out.Results, 1)
	assert.Equal(t, fault.KindTimeout, out.Results[0].Err)
	assert.True(t, out.Partial)
	assert.Empty(t, out.ExecutedExperts)
	assert.Less(t, elapsed, 2*time.Second, "the dispatch must return at its own deadline")
}

func TestDispatcherPanicIsolation(t *testing.T) {
	bad := &fakeExpert{name: "calendar", score: 0.8, panics: true}
	good := &fakeExpert{name: "list", score: 0.8, result: &ActionResult{
		Success: true, Summary: "Added milk to your shopping list.",
	}}
	d := NewDispatcher([]Expert{bad, good}, nil, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "schedule and add milk")

	require.Len(t, out.Results, 2)
	assert.Equal(t, "calendar", out.Results[0].Expert)
	assert.Equal(t, fault.KindInternal, out.Results[0].Err)
	assert.False(t, out.Results[0].Success)
	assert.True(t, out.Results[1].Success)
	assert.Equal(t, []string{"list"}, out.ExecutedExperts)
	assert.False(t, out.Partial, "internal faults degrade the answer, not the turn")
}

func TestDispatcherNilResultBecomesInternal(t *testing.T) {
	bad := &fakeExpert{name: "planning", score: 0.9, returnsNil: true}
	d := NewDispatcher([]Expert{bad}, nil, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "plan my week")

	require.Len(t, out.Results, 1)
	assert.Equal(t, "planning", out.Results[0].Expert)
	assert.Equal(t, fault.KindInternal, out.Results[0].Err)
}

func TestDispatcherStragglerGetsSynthesizedTimeout(t *testing.T) {
	stuck := &fakeExpert{name: "calendar", score: 0.8, delay: 5 * time.Second, ignoresCtx: true}
	prompt := &fakeExpert{name: "list", score: 0.8, result: &ActionResult{
		Success: true, Summary: "Added it.",
	}}
	d := NewDispatcher([]Expert{stuck, prompt}, nil, &config.DispatcherConfig{
		SelectThreshold:    0.5,
		ExclusiveThreshold: 0.85,
		ExclusiveGap:       0.15,
		OverallDeadline:    60 * time.Millisecond,
		PerExpertDeadline:  50 * time.Millisecond,
	}, nil)

	start := time.Now()
	out := d.Dispatch(context.Background(), testTurn(), "schedule a meeting and add it to my list")
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second, "the dispatch must not wait out the stuck expert")
	require.Len(t, out.Results, 2)
	assert.Equal(t, "calendar", out.Results[0].Expert)
	assert.Equal(t, fault.KindTimeout, out.Results[0].Err)
	assert.Contains(t, out.Results[0].Summary, "did not respond")
	assert.True(t, out.Results[1].Success)
	assert.True(t, out.Partial)
	assert.Equal(t, []string{"list"}, out.ExecutedExperts)
}

func TestDispatcherRecordsOneRowPerToolCall(t *testing.T) {
	list := &fakeExpert{name: "list", score: 0.8, result: &ActionResult{
		Success:           true,
		Summary:           "Added milk and eggs to your shopping list.",
		CausedSideEffects: true,
		Calls: []ToolCall{
			{Tool: "list.add", Params: map[string]interface{}{"text": "milk"}, Success: true},
			{Tool: "list.add", Params: map[string]interface{}{"text": "eggs"}, Success: true},
		},
	}}
	planning := &fakeExpert{name: "planning", score: 0.8, result: &ActionResult{
		Success: true, Summary: "Here's a plan.",
	}}
	rec := &mockRecorder{}
	d := NewDispatcher([]Expert{list, planning}, rec, testDispatcherConfig(), nil)

	d.Dispatch(context.Background(), testTurn(), "add milk and eggs then plan dinner")

	entries := rec.all()
	require.Len(t, entries, 3)

	assert.Equal(t, "list.add", entries[0].ToolName)
	assert.Equal(t, "milk", entries[0].ToolParams["text"])
	assert.Equal(t, "list.add", entries[1].ToolName)
	assert.Equal(t, "eggs", entries[1].ToolParams["text"])

	// Call-free experts still get one synthesized row.
	assert.Equal(t, "planning.execute", entries[2].ToolName)
	assert.True(t, entries[2].Success)

	for _, e := range entries {
		assert.Equal(t, "user-1", e.UserID)
		assert.Equal(t, "session-1", e.SessionID)
		assert.Equal(t, "req-1", e.Context["request_id"])
		assert.NotEmpty(t, e.Context["expert"])
		assert.Equal(t, 0.8, e.Context["score"])
	}
}

func TestDispatcherRecordsFailedCalls(t *testing.T) {
	broken := &fakeExpert{name: "reminder", score: 0.9, result: &ActionResult{
		Summary: "I couldn't reach the reminders service.",
		Err:     fault.KindUnavailable,
		Calls: []ToolCall{{
			Tool:    "reminder.create",
			Params:  map[string]interface{}{"title": "stretch"},
			Success: false,
			Err:     fault.KindUnavailable,
		}},
	}}
	rec := &mockRecorder{}
	d := NewDispatcher([]Expert{broken}, rec, testDispatcherConfig(), nil)

	d.Dispatch(context.Background(), testTurn(), "remind me to stretch tomorrow at 9am")

	entries := rec.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "reminder.create", entries[0].ToolName)
	assert.False(t, entries[0].Success)
	assert.Equal(t, "unavailable", entries[0].ErrorKind)
}

func TestDispatcherRecorderFailureDoesNotFailDispatch(t *testing.T) {
	ok := &fakeExpert{name: "list", score: 0.9, result: &ActionResult{
		Success: true, Summary: "Added it.",
	}}
	rec := &mockRecorder{fail: errors.New("database is down")}
	d := NewDispatcher([]Expert{ok}, rec, testDispatcherConfig(), nil)

	out := d.Dispatch(context.Background(), testTurn(), "add milk to my list")

	require.Len(t, out.Results, 1)
	assert.True(t, out.Results[0].Success)
	assert.Equal(t, []string{"list"}, out.ExecutedExperts)
}

func TestDispatcherProbe(t *testing.T) {
	d := NewDispatcher([]Expert{
		&fakeExpert{name: "list", score: 0.9},
		&fakeExpert{name: "journal", score: 0.3},
	}, nil, testDispatcherConfig(), nil)

	hit, err := d.Probe("list", "add milk to my list")
	require.NoError(t, err)
	assert.Equal(t, "list", hit.Expert)
	assert.Equal(t, 0.9, hit.Score)
	assert.True(t, hit.WouldExecute)

	miss, err := d.Probe("journal", "add milk to my list")
	require.NoError(t, err)
	assert.Equal(t, 0.3, miss.Score)
	assert.False(t, miss.WouldExecute)

	_, err = d.Probe("weather", "add milk to my list")
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestDispatcherDescriptorsSorted(t *testing.T) {
	d := NewDispatcher([]Expert{
		&fakeExpert{name: "reminder", score: 0.9},
		&fakeExpert{name: "calendar", score: 0.9},
		&fakeExpert{name: "list", score: 0.9},
	}, nil, testDispatcherConfig(), nil)

	descriptors := d.Descriptors()
	require.Len(t, descriptors, 3)
	assert.Equal(t, "calendar", descriptors[0].Name)
	assert.Equal(t, "list", descriptors[1].Name)
	assert.Equal(t, "reminder", descriptors[2].Name)
}

func TestDispatcherDefaultThresholds(t *testing.T) {
	top := &fakeExpert{name: "homeassistant", score: 0.9}
	runnerUp := &fakeExpert{name: "list", score: 0.6}
	d := NewDispatcher([]Expert{top, runnerUp}, nil, nil, nil)

	out := d.Dispatch(context.Background(), testTurn(), "turn on the lights")

	require.Len(t, out.Results, 1, "builtin thresholds still short-circuit a dominant expert")
	assert.Equal(t, "homeassistant", out.Results[0].Expert)

	probe, err := d.Probe("list", "anything")
	require.NoError(t, err)
	assert.True(t, probe.WouldExecute)
}
