package expert

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/stewardhq/steward/pkg/actionlog"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
)

// cancelGrace is how long the collector waits past the overall deadline
// for experts to honor cancellation before it synthesizes their results.
const cancelGrace = 500 * time.Millisecond

// ActionRecorder persists one action-log row per tool call. Implemented by
// actionlog.Service; an interface here so dispatcher tests run without a
// database.
type ActionRecorder interface {
	Record(ctx context.Context, e actionlog.Entry) error
}

// DispatchResult is what one turn's expert work produced.
type DispatchResult struct {
	// Results in merge order: score descending, then name ascending.
	Results []*ActionResult

	// ExecutedExperts lists the experts that succeeded, in merge order.
	ExecutedExperts []string

	// Partial is true when any expert timed out or hit an open circuit.
	Partial bool
}

// ProbeResult reports how the dispatcher would treat a query for one
// expert, without executing anything.
type ProbeResult struct {
	Expert       string  `json:"name"`
	Score        float64 `json:"score"`
	WouldExecute bool    `json:"would_execute"`
}

// Dispatcher scores, selects, and runs experts for a turn.
type Dispatcher struct {
	experts  []Expert
	recorder ActionRecorder
	cfg      *config.DispatcherConfig
	logger   *slog.Logger
}

func NewDispatcher(experts []Expert, recorder ActionRecorder, cfg *config.DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{experts: experts, recorder: recorder, cfg: cfg, logger: logger}
}

// Descriptors returns the admin-facing view of every built expert, sorted
// by name.
func (d *Dispatcher) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(d.experts))
	for _, e := range d.experts {
		out = append(out, e.Descriptor())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Probe scores a query against one expert without executing it.
func (d *Dispatcher) Probe(name, query string) (ProbeResult, error) {
	for _, e := range d.experts {
		if e.Name() == name {
			score := e.CanHandle(query)
			return ProbeResult{
				Expert:       name,
				Score:        score,
				WouldExecute: score >= d.selectThreshold(),
			}, nil
		}
	}
	return ProbeResult{}, fault.NotFound(fmt.Sprintf("no expert named %q", name))
}

// candidate pairs an expert with its score for one query.
type candidate struct {
	expert Expert
	score  float64
}

// Dispatch runs the selection algorithm for one turn: score every expert,
// keep those at or above the select threshold, short-circuit to the top
// expert when it clearly dominates, otherwise fan out in parallel under
// the overall deadline. One action-log row is written per tool call. A
// single expert's failure never fails the dispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, tc TurnContext, query string) DispatchResult {
	candidates := d.selectCandidates(query)
	if len(candidates) == 0 {
		return DispatchResult{}
	}

	run := candidates
	if d.exclusive(candidates) {
		run = candidates[:1]
	}

	results := d.execute(ctx, tc, run, query)
	d.recordAll(ctx, tc, results)

	out := DispatchResult{Results: results}
	for _, r := range results {
		if r.Success {
			out.ExecutedExperts = append(out.ExecutedExperts, r.Expert)
		}
		if r.Err == fault.KindTimeout || r.Err == fault.KindCircuitOpen {
			out.Partial = true
		}
	}
	return out
}

// selectCandidates scores all experts and returns those at or above the
// select threshold, ordered score-descending then name-ascending.
func (d *Dispatcher) selectCandidates(query string) []candidate {
	candidates := make([]candidate, 0, len(d.experts))
	for _, e := range d.experts {
		if score := e.CanHandle(query); score >= d.selectThreshold() {
			candidates = append(candidates, candidate{expert: e, score: score})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].expert.Name() < candidates[j].expert.Name()
	})
	return candidates
}

// exclusive reports whether the top candidate dominates enough to run
// alone.
func (d *Dispatcher) exclusive(candidates []candidate) bool {
	if candidates[0].score < d.exclusiveThreshold() {
		return false
	}
	if len(candidates) == 1 {
		return true
	}
	return candidates[1].score < d.exclusiveThreshold()-d.exclusiveGap()
}

// execute fans the run set out in parallel and collects results in
// candidate order. Experts that ignore cancellation past the grace window
// get a synthesized timeout result; their late result is dropped.
func (d *Dispatcher) execute(ctx context.Context, tc TurnContext, run []candidate, query string) []*ActionResult {
	overallCtx, cancel := context.WithTimeout(ctx, d.overallDeadline())
	defer cancel()

	type indexed struct {
		pos    int
		result *ActionResult
	}
	resultsCh := make(chan indexed, len(run))

	for i, c := range run {
		go func(pos int, c candidate) {
			expertCtx, cancelExpert := context.WithTimeout(overallCtx, d.perExpertDeadline())
			defer cancelExpert()

			result := d.runOne(expertCtx, c, tc, query)
			resultsCh <- indexed{pos: pos, result: result}
		}(i, c)
	}

	collected := make([]*ActionResult, len(run))
	grace := time.NewTimer(d.overallDeadline() + cancelGrace)
	defer grace.Stop()

	for range run {
		select {
		case r := <-resultsCh:
			collected[r.pos] = r.result
		case <-grace.C:
			// Stragglers past the grace window: report them timed out.
			for i, c := range run {
				if collected[i] == nil {
					d.logger.Warn("Expert did not honor cancellation",
						"expert", c.expert.Name(), "request_id", tc.RequestID)
					collected[i] = &ActionResult{
						Expert:  c.expert.Name(),
						Score:   c.score,
						Summary: fmt.Sprintf("The %s expert did not respond in time.", c.expert.Name()),
						Err:     fault.KindTimeout,
					}
				}
			}
			return collected
		}
	}
	return collected
}

// runOne executes a single expert, normalizing panics and missing results
// into internal failures.
func (d *Dispatcher) runOne(ctx context.Context, c candidate, tc TurnContext, query string) (result *ActionResult) {
	name := c.expert.Name()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Expert panicked", "expert", name, "panic", r, "request_id", tc.RequestID)
			result = &ActionResult{
				Expert:  name,
				Score:   c.score,
				Summary: fmt.Sprintf("The %s expert hit an internal error.", name),
				Err:     fault.KindInternal,
			}
		}
	}()

	result = c.expert.Execute(ctx, tc, query)
	if result == nil {
		result = &ActionResult{
			Summary: fmt.Sprintf("The %s expert returned nothing.", name),
			Err:     fault.KindInternal,
		}
	}
	result.Expert = name
	result.Score = c.score
	return result
}

// recordAll writes one action-log row per tool call. Experts that made no
// calls still get one synthesized row so every execution is durable.
func (d *Dispatcher) recordAll(ctx context.Context, tc TurnContext, results []*ActionResult) {
	if d.recorder == nil {
		return
	}
	for _, r := range results {
		calls := r.Calls
		if len(calls) == 0 {
			calls = []ToolCall{{
				Tool:    r.Expert + ".execute",
				Success: r.Success,
				Err:     r.Err,
			}}
		}
		for _, call := range calls {
			entry := actionlog.Entry{
				UserID:     tc.UserID,
				SessionID:  tc.SessionID,
				ToolName:   call.Tool,
				ToolParams: call.Params,
				Success:    call.Success,
				ErrorKind:  string(call.Err),
				Context: map[string]interface{}{
					"expert":     r.Expert,
					"score":      r.Score,
					"request_id": tc.RequestID,
				},
			}
			if err := d.recorder.Record(ctx, entry); err != nil {
				d.logger.Warn("Failed to record action log entry",
					"expert", r.Expert, "tool", call.Tool, "error", err)
			}
		}
	}
}

func (d *Dispatcher) selectThreshold() float64 {
	if d.cfg != nil && d.cfg.SelectThreshold > 0 {
		return d.cfg.SelectThreshold
	}
	return 0.5
}

func (d *Dispatcher) exclusiveThreshold() float64 {
	if d.cfg != nil && d.cfg.ExclusiveThreshold > 0 {
		return d.cfg.ExclusiveThreshold
	}
	return 0.85
}

func (d *Dispatcher) exclusiveGap() float64 {
	if d.cfg != nil && d.cfg.ExclusiveGap > 0 {
		return d.cfg.ExclusiveGap
	}
	return 0.15
}

func (d *Dispatcher) overallDeadline() time.Duration {
	if d.cfg != nil && d.cfg.OverallDeadline > 0 {
		return d.cfg.OverallDeadline
	}
	return 10 * time.Second
}

func (d *Dispatcher) perExpertDeadline() time.Duration {
	if d.cfg != nil && d.cfg.PerExpertDeadline > 0 {
		return d.cfg.PerExpertDeadline
	}
	return 8 * time.Second
}
