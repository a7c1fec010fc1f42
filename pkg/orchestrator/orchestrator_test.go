package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/ent"
	entfeedback "github.com/stewardhq/steward/ent/feedback"
	entinteraction "github.com/stewardhq/steward/ent/interaction"
	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/satisfaction"
	testdb "github.com/stewardhq/steward/test/database"
)

// cannedExpert scripts one expert for turn tests.
type cannedExpert struct {
	name   string
	score  float64
	result *expert.ActionResult
}

func (c *cannedExpert) Name() string             { return c.name }
func (c *cannedExpert) Capabilities() []string   { return []string{c.name + ".execute"} }
func (c *cannedExpert) CanHandle(string) float64 { return c.score }

func (c *cannedExpert) Descriptor() expert.Descriptor {
	return expert.Descriptor{Name: c.name, Capabilities: c.Capabilities(), DefaultConfidence: c.score}
}

func (c *cannedExpert) Execute(context.Context, expert.TurnContext, string) *expert.ActionResult {
	out := *c.result
	return &out
}

func successfulListExpert() *cannedExpert {
	return &cannedExpert{name: "list", score: 0.9, result: &expert.ActionResult{
		Success:           true,
		Summary:           "Added milk to your shopping list.",
		CausedSideEffects: true,
		Calls: []expert.ToolCall{{
			Tool: "list.add", Params: map[string]interface{}{"text": "milk"}, Success: true,
		}},
	}}
}

// promptCapture records the message transcripts the mock backend received.
type promptCapture struct {
	mu   sync.Mutex
	reqs [][]llm.Message
}

func (p *promptCapture) add(messages []llm.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reqs = append(p.reqs, messages)
}

func (p *promptCapture) last(t *testing.T) []llm.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.reqs)
	return p.reqs[len(p.reqs)-1]
}

func completionJSON(content string) string {
	return fmt.Sprintf(`{"model":"test-model","choices":[{"message":{"role":"assistant","content":%s},"finish_reason":"stop"}]}`,
		strconv.Quote(content))
}

func completionHandler(content string, capture *promptCapture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			var body struct {
				Messages []llm.Message `json:"messages"`
			}
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			capture.add(body.Messages)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionJSON(content))
	}
}

func streamEventJSON(content string) string {
	return fmt.Sprintf(`{"choices":[{"delta":{"content":%s}}]}`, strconv.Quote(content))
}

// sseTokens streams the given tokens and closes with [DONE].
func sseTokens(t *testing.T, tokens ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fl, ok := w.(http.Flusher)
		if !ok {
			t.Error("response writer does not support flushing")
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, tok := range tokens {
			fmt.Fprintf(w, "data: %s\n\n", streamEventJSON(tok))
			fl.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		fl.Flush()
	}
}

// sseStall streams the given tokens and then goes silent with the
// connection held open, so the idle watchdog fires.
func sseStall(t *testing.T, tokens ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fl, ok := w.(http.Flusher)
		if !ok {
			t.Error("response writer does not support flushing")
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, tok := range tokens {
			fmt.Fprintf(w, "data: %s\n\n", streamEventJSON(tok))
			fl.Flush()
		}
		<-r.Context().Done()
	}
}

func testLLMGateway(t *testing.T, handler http.HandlerFunc) (*llm.Gateway, *config.LLMConfig) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.LLMConfig{
		DefaultModel:      "test-model",
		MaxTokens:         512,
		MaxTokensCap:      4096,
		Temperature:       0.7,
		PromptCharBudget:  24000,
		CompleteTimeout:   2 * time.Second,
		FirstTokenTimeout: 500 * time.Millisecond,
		TokenIdleTimeout:  300 * time.Millisecond,
		WarmupTimeout:     time.Second,
		OOMCooldown:       100 * time.Millisecond,
		Chain:             []string{"primary"},
		Backends: map[string]*config.LLMBackendConfig{
			"primary": {Endpoint: srv.URL},
		},
	}
	gw, err := llm.NewGateway(cfg, nil)
	require.NoError(t, err)
	return gw, cfg
}

// newTestOrchestrator builds a full orchestrator on a per-test schema:
// local-dev auth, real episode/fact/satisfaction services, canned experts,
// and a mock model backend.
func newTestOrchestrator(t *testing.T, experts []expert.Expert, llmHandler http.HandlerFunc) (*Orchestrator, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	gateway, llmCfg := testLLMGateway(t, llmHandler)

	cfg := &config.Config{
		Auth: &config.AuthConfig{LocalDevMode: true},
		Dispatcher: &config.DispatcherConfig{
			SelectThreshold:    0.5,
			ExclusiveThreshold: 0.85,
			ExclusiveGap:       0.15,
			OverallDeadline:    2 * time.Second,
			PerExpertDeadline:  time.Second,
		},
		Episodes: &config.EpisodeConfig{},
		Memory:   &config.MemoryConfig{RecentTurns: 5, RecallK: 5, DecayHalflifeDays: 30},
		LLM:      llmCfg,
	}

	orch := New(Deps{
		Validator:  auth.NewValidator(nil, cfg.Auth),
		Episodes:   memory.NewEpisodeService(client.Client, cfg.Episodes, nil, nil),
		Facts:      memory.NewFactService(client.Client, client.DB(), cfg.Memory),
		Dispatcher: expert.NewDispatcher(experts, nil, cfg.Dispatcher, nil),
		Gateway:    gateway,
		Tracker:    satisfaction.NewService(client.Client, nil),
		Config:     cfg,
	})
	return orch, client
}

// recordingSink collects stream events for assertions.
type recordingSink struct {
	mu       sync.Mutex
	tokens   []string
	end      *EndEvent
	errKind  fault.Kind
	tokenErr error
}

func (s *recordingSink) Token(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokenErr != nil {
		return s.tokenErr
	}
	s.tokens = append(s.tokens, text)
	return nil
}

func (s *recordingSink) End(e EndEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.end = &e
	return nil
}

func (s *recordingSink) Error(kind fault.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errKind = kind
	return nil
}

func (s *recordingSink) text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.tokens, "")
}

func onlyInteraction(t *testing.T, client *ent.Client) *ent.Interaction {
	t.Helper()
	row, err := client.Interaction.Query().
		Where(entinteraction.UserIDEQ(auth.DefaultUserID)).
		Only(context.Background())
	require.NoError(t, err)
	return row
}

func TestHandleTurnRejectsEmptyMessage(t *testing.T) {
	o := New(Deps{})

	_, err := o.HandleTurn(context.Background(), TurnRequest{Message: "   "})

	require.Error(t, err)
	assert.Equal(t, fault.KindInvalid, fault.KindOf(err))
}

func TestHandleTurnRejectsOversizeMessage(t *testing.T) {
	o := New(Deps{})

	_, err := o.HandleTurn(context.Background(), TurnRequest{
		Message: strings.Repeat("a", expert.MaxQueryBytes+1),
	})

	require.Error(t, err)
	assert.Equal(t, fault.KindInvalid, fault.KindOf(err))
}

func TestHandleTurnRequiresSession(t *testing.T) {
	o := New(Deps{
		Validator: auth.NewValidator(nil, &config.AuthConfig{}),
	})

	_, err := o.HandleTurn(context.Background(), TurnRequest{Message: "add milk"})

	require.Error(t, err)
	assert.Equal(t, fault.KindUnauthorized, fault.KindOf(err))
}

func TestHandleTurnHappyPath(t *testing.T) {
	capture := &promptCapture{}
	orch, client := newTestOrchestrator(t,
		[]expert.Expert{successfulListExpert()},
		completionHandler("Done! Milk is on your shopping list.", capture))

	result, err := orch.HandleTurn(context.Background(), TurnRequest{
		Message:   "add milk to my shopping list",
		RequestID: "req-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Done! Milk is on your shopping list.", result.Response)
	assert.Equal(t, []string{"list"}, result.ExecutedExperts)
	assert.False(t, result.Partial)
	assert.NotEmpty(t, result.InteractionID)
	assert.NotEmpty(t, result.EpisodeID)
	assert.GreaterOrEqual(t, result.ResponseTimeMs, 0)

	// The prompt carried the expert's action summary.
	joined := joinContents(capture.last(t))
	assert.Contains(t, joined, "Added milk to your shopping list.")
	assert.Contains(t, joined, "add milk to my shopping list")

	// Exactly one interaction row, marked completed.
	row := onlyInteraction(t, client.Client)
	assert.Equal(t, result.InteractionID, row.ID)
	assert.True(t, row.TaskCompleted)
	assert.Equal(t, "Done! Milk is on your shopping list.", row.ResponseText)

	// The turn landed in the episode.
	turns, err := client.Client.Turn.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "add milk to my shopping list", turns[0].UserText)
	assert.Equal(t, result.Response, turns[0].AssistantText)
}

func TestHandleTurnCarriesHistoryAndFacts(t *testing.T) {
	capture := &promptCapture{}
	orch, client := newTestOrchestrator(t, nil,
		completionHandler("You like oat milk.", capture))

	// Seed a remembered fact for the default user.
	_, err := orch.facts.Create(context.Background(), memory.CreateFactRequest{
		UserID: auth.DefaultUserID,
		Text:   "I prefer oat milk",
	})
	require.NoError(t, err)

	_, err = orch.HandleTurn(context.Background(), TurnRequest{Message: "Good morning!"})
	require.NoError(t, err)

	_, err = orch.HandleTurn(context.Background(), TurnRequest{Message: "What milk do I prefer?"})
	require.NoError(t, err)

	joined := joinContents(capture.last(t))
	assert.Contains(t, joined, "Good morning!", "previous turn rides along as history")
	assert.Contains(t, joined, "I prefer oat milk", "recalled fact enriches the prompt")

	// Both turns share one episode.
	episodes, err := client.Client.Episode.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, 2, episodes[0].MessageCount)
}

func TestHandleTurnPartialDispatchDegrades(t *testing.T) {
	experts := []expert.Expert{
		successfulListExpert(),
		&cannedExpert{name: "calendar", score: 0.9, result: &expert.ActionResult{
			Summary: "I couldn't reach the calendar service.",
			Err:     fault.KindCircuitOpen,
		}},
	}
	orch, client := newTestOrchestrator(t, experts,
		completionHandler("Milk is on the list.", nil))

	result, err := orch.HandleTurn(context.Background(), TurnRequest{
		Message: "schedule a meeting tomorrow at 2pm and add it to my list",
	})
	require.NoError(t, err)

	assert.True(t, result.Partial)
	assert.Equal(t, []string{"list"}, result.ExecutedExperts)
	assert.True(t, strings.HasPrefix(result.Response, "Heads up:"), result.Response)
	assert.Contains(t, result.Response, "calendar")
	assert.Contains(t, result.Response, "Milk is on the list.")

	row := onlyInteraction(t, client.Client)
	assert.False(t, row.TaskCompleted)
}

func TestHandleTurnGenerateFailureFallsBack(t *testing.T) {
	failing := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"backend exploded"}}`)
	}
	orch, client := newTestOrchestrator(t,
		[]expert.Expert{successfulListExpert()}, failing)

	result, err := orch.HandleTurn(context.Background(), TurnRequest{
		Message: "add milk to my shopping list",
	})
	require.NoError(t, err, "generation failure degrades, it does not fail the turn")

	assert.Contains(t, result.Response, "Added milk to your shopping list")
	assert.Contains(t, result.Response, "couldn't form a full reply")
	assert.False(t, result.Partial)

	row := onlyInteraction(t, client.Client)
	assert.False(t, row.TaskCompleted)
	assert.Equal(t, result.Response, row.ResponseText)
}

func TestHandleTurnStream(t *testing.T) {
	orch, client := newTestOrchestrator(t,
		[]expert.Expert{successfulListExpert()},
		sseTokens(t, "Milk ", "added."))

	sink := &recordingSink{}
	err := orch.HandleTurnStream(context.Background(), TurnRequest{
		Message: "add milk to my shopping list",
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, []string{"Milk ", "added."}, sink.tokens)
	assert.Equal(t, fault.KindNone, sink.errKind)
	require.NotNil(t, sink.end)
	assert.NotEmpty(t, sink.end.InteractionID)
	assert.Equal(t, []string{"list"}, sink.end.ExecutedExperts)
	assert.False(t, sink.end.Partial)

	row := onlyInteraction(t, client.Client)
	assert.Equal(t, "Milk added.", row.ResponseText)
	assert.True(t, row.TaskCompleted)
}

func TestHandleTurnStreamAbortStillPersists(t *testing.T) {
	// Two tokens and then silence: the idle timeout aborts the stream.
	orch, client := newTestOrchestrator(t,
		[]expert.Expert{successfulListExpert()},
		sseStall(t, "Milk ", "added"))

	sink := &recordingSink{}
	err := orch.HandleTurnStream(context.Background(), TurnRequest{
		Message: "add milk to my shopping list",
	}, sink)
	require.NoError(t, err)

	assert.NotEqual(t, fault.KindNone, sink.errKind, "abort emits an error event")
	require.NotNil(t, sink.end, "end fires even after an abort")

	row := onlyInteraction(t, client.Client)
	assert.False(t, row.TaskCompleted)
	assert.Equal(t, "Milk added", row.ResponseText, "the partial text the user saw is what persists")
}

func TestHandleTurnStreamClientGone(t *testing.T) {
	orch, client := newTestOrchestrator(t,
		[]expert.Expert{successfulListExpert()},
		sseTokens(t, "Milk ", "added."))

	sink := &recordingSink{tokenErr: errors.New("connection reset")}
	err := orch.HandleTurnStream(context.Background(), TurnRequest{
		Message: "add milk to my shopping list",
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, fault.KindCancelled, sink.errKind)

	// The turn persists with the fallback text since nothing was delivered.
	row := onlyInteraction(t, client.Client)
	assert.False(t, row.TaskCompleted)
	assert.Contains(t, row.ResponseText, "Added milk to your shopping list")
}

func TestImplicitSignalsBecomeFeedback(t *testing.T) {
	orch, client := newTestOrchestrator(t,
		[]expert.Expert{successfulListExpert()},
		completionHandler("Done.", nil))

	followUp := true
	engagement := 30000
	result, err := orch.HandleTurn(context.Background(), TurnRequest{
		Message: "add milk to my shopping list",
		Signals: &ClientSignals{
			FollowUpIn60s:        &followUp,
			EngagementDurationMs: &engagement,
		},
	})
	require.NoError(t, err)

	rows, err := client.Client.Feedback.Query().
		Where(entfeedback.InteractionIDEQ(result.InteractionID)).
		Order(ent.Asc(entfeedback.FieldValue)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.Equal(t, entfeedback.KindImplicit, row.Kind)
	}
	require.NotNil(t, rows[0].Value)
	assert.Equal(t, 0.0, *rows[0].Value, "quick follow-up reads as dissatisfaction")
	require.NotNil(t, rows[1].Value)
	assert.InDelta(t, 0.5, *rows[1].Value, 0.001, "30s of engagement scores 0.5")

	// Signals also land verbatim on the interaction row.
	interaction := onlyInteraction(t, client.Client)
	require.NotNil(t, interaction.FollowUpIn60s)
	assert.True(t, *interaction.FollowUpIn60s)
	require.NotNil(t, interaction.EngagementDurationMs)
	assert.Equal(t, 30000, *interaction.EngagementDurationMs)
}

func TestStatusReflectsEpisodeAndEnhancements(t *testing.T) {
	orch, _ := newTestOrchestrator(t,
		[]expert.Expert{successfulListExpert()},
		completionHandler("Done.", nil))

	before, err := orch.Status(context.Background(), auth.DefaultUserID, "")
	require.NoError(t, err)
	assert.Nil(t, before.ActiveEpisode)
	assert.Zero(t, before.EpisodeMessages)
	assert.Equal(t, []string{"list"}, before.Enhancements.Experts)
	assert.True(t, before.Enhancements.Memory)
	assert.Equal(t, "test-model", before.Enhancements.Model)

	_, err = orch.HandleTurn(context.Background(), TurnRequest{
		Message: "add milk to my shopping list",
	})
	require.NoError(t, err)

	after, err := orch.Status(context.Background(), auth.DefaultUserID, "")
	require.NoError(t, err)
	require.NotNil(t, after.ActiveEpisode)
	assert.Equal(t, "chat", after.ActiveEpisode.ContextType)
	assert.Equal(t, 1, after.EpisodeMessages)
}

func TestHandleTurnUnknownContextType(t *testing.T) {
	orch, _ := newTestOrchestrator(t, nil, completionHandler("Done.", nil))

	_, err := orch.HandleTurn(context.Background(), TurnRequest{
		Message:     "hello",
		ContextType: "starship",
	})

	require.Error(t, err)
	assert.Equal(t, fault.KindInvalid, fault.KindOf(err))
}
