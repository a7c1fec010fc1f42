package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/satisfaction"
)

// maxImplicitFeedback bounds signal-derived feedback rows per turn.
const maxImplicitFeedback = 3

// turnState carries one turn through the pipeline.
type turnState struct {
	message  string
	session  *auth.Session
	tc       expert.TurnContext
	episode  *ent.Episode
	history  []*ent.Turn
	facts    []*ent.MemoryFact
	dispatch expert.DispatchResult
	signals  *ClientSignals
	started  time.Time
}

// prepare validates the message, resolves the session, and opens the
// episode. Message validation runs first so an oversize body never
// reaches the auth service.
func (o *Orchestrator) prepare(ctx context.Context, req TurnRequest) (*turnState, error) {
	started := time.Now()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fault.Invalid("message is required")
	}
	if len(message) > expert.MaxQueryBytes {
		return nil, fault.Invalid(fmt.Sprintf("message exceeds %d bytes", expert.MaxQueryBytes))
	}

	session, err := o.validator.Validate(ctx, req.SessionToken)
	if err != nil {
		return nil, err
	}

	episode, err := o.episodes.GetOrOpen(ctx, session.UserID, req.ContextType)
	if err != nil {
		return nil, err
	}

	history, err := o.episodes.RecentTurns(ctx, episode.ID, o.recentTurns())
	if err != nil {
		o.logger.Warn("Failed to load recent turns",
			"episode_id", episode.ID, "error", err)
		history = nil
	}

	return &turnState{
		message: message,
		session: session,
		tc: expert.TurnContext{
			UserID:    session.UserID,
			SessionID: req.SessionToken,
			Role:      session.Role,
			RequestID: req.RequestID,
			Location:  o.loc,
		},
		episode: episode,
		history: history,
		signals: req.Signals,
		started: started,
	}, nil
}

// gather runs expert dispatch and memory recall concurrently, both bounded
// by the dispatch deadline. Recall failure degrades to an unenriched
// prompt rather than failing the turn.
func (o *Orchestrator) gather(ctx context.Context, t *turnState) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		t.dispatch = o.dispatcher.Dispatch(ctx, t.tc, t.message)
	}()

	if o.facts != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			searchCtx, cancel := context.WithTimeout(ctx, o.searchDeadline())
			defer cancel()

			facts, err := o.facts.Search(searchCtx, t.tc.UserID, t.message, 0)
			if err != nil {
				o.logger.Warn("Memory recall failed for turn",
					"user_id", t.tc.UserID, "error", err)
				return
			}
			t.facts = facts
		}()
	}

	wg.Wait()
}

func (o *Orchestrator) promptInput(t *turnState) promptInput {
	return promptInput{
		history: t.history,
		facts:   t.facts,
		actions: t.dispatch.Results,
		message: t.message,
	}
}

// persist appends the turn, records exactly one interaction, and converts
// client signals into bounded implicit feedback. It runs on a detached
// write context so a client disconnect cannot tear stored state; failures
// here are logged, never surfaced, because the response itself is already
// decided.
func (o *Orchestrator) persist(t *turnState, response string, genErr error) *TurnResult {
	writeCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if _, err := o.episodes.AppendTurn(writeCtx, t.episode.ID, t.message, response); err != nil {
		o.logger.Error("Failed to append turn",
			"episode_id", t.episode.ID, "user_id", t.tc.UserID, "error", err)
	}

	executed := t.dispatch.ExecutedExperts
	if executed == nil {
		executed = []string{}
	}
	elapsed := int(time.Since(t.started).Milliseconds())

	rec := satisfaction.Interaction{
		UserID:          t.tc.UserID,
		RequestText:     t.message,
		ResponseText:    response,
		ResponseTimeMs:  elapsed,
		TaskCompleted:   !t.dispatch.Partial && genErr == nil,
		EpisodeID:       t.episode.ID,
		ExecutedExperts: executed,
		Partial:         t.dispatch.Partial,
	}
	if t.signals != nil {
		rec.EngagementDurationMs = t.signals.EngagementDurationMs
		rec.FollowUpIn60s = t.signals.FollowUpIn60s
	}

	var interactionID string
	row, err := o.tracker.RecordInteraction(writeCtx, rec)
	if err != nil {
		o.logger.Error("Failed to record interaction",
			"user_id", t.tc.UserID, "error", err)
	} else {
		interactionID = row.ID
		o.recordImplicitFeedback(writeCtx, t, interactionID)
	}

	return &TurnResult{
		Response:        response,
		ResponseTimeMs:  elapsed,
		InteractionID:   interactionID,
		EpisodeID:       t.episode.ID,
		ExecutedExperts: executed,
		Partial:         t.dispatch.Partial,
	}
}

// recordImplicitFeedback folds client signals into implicit feedback rows:
// a follow-up inside a minute reads as dissatisfaction, sustained
// engagement as satisfaction (a full minute scores 1.0).
func (o *Orchestrator) recordImplicitFeedback(ctx context.Context, t *turnState, interactionID string) {
	if t.signals == nil {
		return
	}

	var values []float64
	if t.signals.FollowUpIn60s != nil {
		v := 1.0
		if *t.signals.FollowUpIn60s {
			v = 0.0
		}
		values = append(values, v)
	}
	if t.signals.EngagementDurationMs != nil {
		ms := float64(*t.signals.EngagementDurationMs)
		if ms < 0 {
			ms = 0
		}
		v := ms / 60000
		if v > 1 {
			v = 1
		}
		values = append(values, v)
	}
	if len(values) > maxImplicitFeedback {
		values = values[:maxImplicitFeedback]
	}

	for i := range values {
		_, err := o.tracker.RecordFeedback(ctx, t.tc.UserID, interactionID,
			satisfaction.KindImplicit, &values[i], nil)
		if err != nil {
			o.logger.Warn("Failed to record implicit feedback",
				"interaction_id", interactionID, "error", err)
		}
	}
}

// partialPrefix is the single acknowledgment sentence prepended to the
// model response when part of the dispatch could not run.
func partialPrefix(results []*expert.ActionResult) string {
	var down []string
	for _, r := range results {
		if r.Err == fault.KindTimeout || r.Err == fault.KindCircuitOpen {
			down = append(down, r.Expert)
		}
	}
	if len(down) == 0 {
		return ""
	}
	return fmt.Sprintf("Heads up: the %s service didn't respond, so that part isn't done. ",
		naturalJoin(down))
}

// fallbackResponse is the static degrade reply when generation failed:
// name what succeeded, apologize for the rest.
func fallbackResponse(results []*expert.ActionResult) string {
	var done []string
	for _, r := range results {
		if r.Success && r.Summary != "" {
			done = append(done, strings.TrimSuffix(r.Summary, "."))
		}
	}
	if len(done) == 0 {
		return "Sorry, I couldn't put a reply together just now. Please try again in a moment."
	}
	return strings.Join(done, ". ") + ", but I couldn't form a full reply right now."
}

func naturalJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
