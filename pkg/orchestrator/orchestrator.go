// Package orchestrator runs the per-turn state machine behind the chat
// endpoints: validate, authenticate, open the episode, dispatch experts
// and recall memory in parallel, compose the prompt, generate, persist.
// Failures after composition degrade the reply instead of failing the
// turn, so the interaction record is written exactly once either way.
package orchestrator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/satisfaction"
)

// persistTimeout bounds the detached persist phase; writes in flight when
// a client disconnects still complete.
const persistTimeout = 5 * time.Second

// TurnRequest is one chat message as the transport hands it over.
type TurnRequest struct {
	// SessionToken is the raw X-Session-ID header value; empty resolves
	// to the default user only in local-dev mode.
	SessionToken string

	// RequestID is the per-request correlation ID assigned by the server
	// middleware.
	RequestID string

	Message     string
	ContextType string

	// Signals are the client's implicit satisfaction measurements for its
	// previous turn.
	Signals *ClientSignals
}

// ClientSignals carry implicit satisfaction measurements taken by the
// client. They are stored verbatim on the interaction row and folded into
// bounded implicit feedback.
type ClientSignals struct {
	FollowUpIn60s        *bool `json:"follow_up_in_60s,omitempty"`
	EngagementDurationMs *int  `json:"engagement_duration_ms,omitempty"`
}

// TurnResult is the non-streaming turn response.
type TurnResult struct {
	Response        string   `json:"response"`
	ResponseTimeMs  int      `json:"response_time"`
	InteractionID   string   `json:"interaction_id"`
	EpisodeID       string   `json:"episode_id"`
	ExecutedExperts []string `json:"executed_experts"`
	Partial         bool     `json:"partial"`
}

// StreamSink receives one turn's streamed response; the SSE handler
// implements it. Token fires once per model chunk in producer order, then
// exactly one terminal sequence: End alone, or Error followed by End.
type StreamSink interface {
	Token(text string) error
	End(e EndEvent) error
	Error(kind fault.Kind) error
}

// EndEvent closes every stream, aborted ones included.
type EndEvent struct {
	InteractionID   string   `json:"interaction_id"`
	EpisodeID       string   `json:"episode_id"`
	ExecutedExperts []string `json:"executed_experts"`
	Partial         bool     `json:"partial"`
}

// StatusReport answers GET /api/chat/status.
type StatusReport struct {
	ActiveEpisode   *EpisodeStatus `json:"active_episode"`
	EpisodeMessages int            `json:"episode_messages"`
	Enhancements    Enhancements   `json:"enhancements"`
}

// EpisodeStatus is the status view of an active episode.
type EpisodeStatus struct {
	ID             string    `json:"episode_id"`
	ContextType    string    `json:"context_type"`
	StartedAt      time.Time `json:"started_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// Enhancements reports which optional capabilities are live.
type Enhancements struct {
	Experts  []string `json:"experts"`
	Memory   bool     `json:"memory"`
	LLMReady bool     `json:"llm_ready"`
	Model    string   `json:"model,omitempty"`
}

// Deps wires the orchestrator's collaborating services.
type Deps struct {
	Validator  *auth.Validator
	Episodes   *memory.EpisodeService
	Facts      *memory.FactService // nil disables memory recall
	Dispatcher *expert.Dispatcher
	Gateway    *llm.Gateway
	Tracker    *satisfaction.Service
	Config     *config.Config
	Logger     *slog.Logger
}

// Orchestrator ties auth, episodic memory, expert dispatch, generation,
// and satisfaction tracking into single turns.
type Orchestrator struct {
	validator  *auth.Validator
	episodes   *memory.EpisodeService
	facts      *memory.FactService
	dispatcher *expert.Dispatcher
	gateway    *llm.Gateway
	tracker    *satisfaction.Service
	cfg        *config.Config
	loc        *time.Location
	logger     *slog.Logger
}

func New(deps Deps) *Orchestrator {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loc := time.UTC
	if deps.Config != nil && deps.Config.Auth != nil && deps.Config.Auth.DefaultTimezone != "" {
		parsed, err := time.LoadLocation(deps.Config.Auth.DefaultTimezone)
		if err != nil {
			logger.Warn("Unknown default timezone, using UTC",
				"timezone", deps.Config.Auth.DefaultTimezone, "error", err)
		} else {
			loc = parsed
		}
	}

	return &Orchestrator{
		validator:  deps.Validator,
		episodes:   deps.Episodes,
		facts:      deps.Facts,
		dispatcher: deps.Dispatcher,
		gateway:    deps.Gateway,
		tracker:    deps.Tracker,
		cfg:        deps.Config,
		loc:        loc,
		logger:     logger,
	}
}

// HandleTurn runs one non-streaming chat turn end to end. Errors come back
// only from the steps before composition (validation, auth, episode);
// after that the turn degrades instead of failing and always persists.
func (o *Orchestrator) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	t, err := o.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	o.gather(ctx, t)
	messages := composeMessages(o.promptInput(t), o.promptBudget())

	response, genErr := o.gateway.Complete(ctx, llm.Request{Messages: messages})
	if genErr != nil {
		o.logger.Error("Generation failed, serving fallback",
			"user_id", t.tc.UserID, "request_id", t.tc.RequestID, "error", genErr)
		response = fallbackResponse(t.dispatch.Results)
	} else if prefix := partialPrefix(t.dispatch.Results); prefix != "" {
		response = prefix + response
	}

	return o.persist(t, response, genErr), nil
}

// HandleTurnStream runs one streaming chat turn. Failures before
// composition return an error with nothing written to the sink; from then
// on the stream always finishes with an End event (preceded by Error when
// generation aborted) and the turn persists regardless.
func (o *Orchestrator) HandleTurnStream(ctx context.Context, req TurnRequest, sink StreamSink) error {
	t, err := o.prepare(ctx, req)
	if err != nil {
		return err
	}

	o.gather(ctx, t)
	messages := composeMessages(o.promptInput(t), o.promptBudget())

	llmCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var buf strings.Builder
	var genErr error

	if prefix := partialPrefix(t.dispatch.Results); prefix != "" {
		if err := sink.Token(prefix); err != nil {
			genErr = fault.Cancelled("client closed the stream")
		} else {
			buf.WriteString(prefix)
		}
	}

	if genErr == nil {
		stream, streamErr := o.gateway.Stream(llmCtx, llm.Request{Messages: messages})
		if streamErr != nil {
			genErr = streamErr
		} else {
			genErr = relay(cancel, stream, sink, &buf)
		}
	}

	response := buf.String()
	if genErr != nil {
		o.logger.Error("Stream generation failed",
			"user_id", t.tc.UserID, "request_id", t.tc.RequestID, "error", genErr)
		_ = sink.Error(fault.KindOf(genErr))
		if strings.TrimSpace(response) == "" {
			response = fallbackResponse(t.dispatch.Results)
		}
	}

	result := o.persist(t, response, genErr)

	end := EndEvent{
		InteractionID:   result.InteractionID,
		EpisodeID:       result.EpisodeID,
		ExecutedExperts: result.ExecutedExperts,
		Partial:         result.Partial,
	}
	if err := sink.End(end); err != nil {
		o.logger.Warn("Failed to deliver end event",
			"user_id", t.tc.UserID, "request_id", t.tc.RequestID, "error", err)
	}
	return nil
}

// relay copies model chunks to the sink, accumulating only the text the
// client was actually delivered. A sink write failure means the client went
// away: cancel the producer, drain it, and report the turn cancelled.
func relay(cancel context.CancelFunc, stream <-chan llm.Chunk, sink StreamSink, buf *strings.Builder) error {
	for chunk := range stream {
		if chunk.Err != nil {
			return chunk.Err
		}
		if chunk.Done {
			return nil
		}
		if err := sink.Token(chunk.Content); err != nil {
			cancel()
			for range stream {
			}
			return fault.Cancelled("client closed the stream")
		}
		buf.WriteString(chunk.Content)
	}
	return nil
}

// Status reports the user's active episode and live enhancements.
func (o *Orchestrator) Status(ctx context.Context, userID, contextType string) (*StatusReport, error) {
	report := &StatusReport{
		Enhancements: Enhancements{
			Experts:  o.expertNames(),
			Memory:   o.facts != nil,
			LLMReady: o.gateway != nil && o.gateway.Ready(),
			Model:    o.defaultModel(),
		},
	}

	ep, err := o.episodes.Active(ctx, userID, contextType)
	if err != nil {
		return nil, err
	}
	if ep != nil {
		report.ActiveEpisode = &EpisodeStatus{
			ID:             ep.ID,
			ContextType:    string(ep.ContextType),
			StartedAt:      ep.StartedAt,
			LastActivityAt: ep.LastActivityAt,
		}
		report.EpisodeMessages = ep.MessageCount
	}
	return report, nil
}

func (o *Orchestrator) expertNames() []string {
	descriptors := o.dispatcher.Descriptors()
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	return names
}

func (o *Orchestrator) promptBudget() int {
	if o.cfg != nil && o.cfg.LLM != nil && o.cfg.LLM.PromptCharBudget > 0 {
		return o.cfg.LLM.PromptCharBudget
	}
	return defaultPromptBudget
}

func (o *Orchestrator) recentTurns() int {
	if o.cfg != nil && o.cfg.Memory != nil {
		return o.cfg.Memory.RecentTurns
	}
	return 0
}

func (o *Orchestrator) searchDeadline() time.Duration {
	if o.cfg != nil && o.cfg.Dispatcher != nil && o.cfg.Dispatcher.OverallDeadline > 0 {
		return o.cfg.Dispatcher.OverallDeadline
	}
	return 10 * time.Second
}

func (o *Orchestrator) defaultModel() string {
	if o.cfg != nil && o.cfg.LLM != nil {
		return o.cfg.LLM.DefaultModel
	}
	return ""
}
