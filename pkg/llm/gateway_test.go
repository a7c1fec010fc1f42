package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
)

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		DefaultModel:      "test-model",
		MaxTokens:         512,
		MaxTokensCap:      4096,
		Temperature:       0.7,
		PromptCharBudget:  24000,
		CompleteTimeout:   2 * time.Second,
		FirstTokenTimeout: 400 * time.Millisecond,
		TokenIdleTimeout:  200 * time.Millisecond,
		WarmupTimeout:     2 * time.Second,
		OOMCooldown:       150 * time.Millisecond,
	}
}

// newTestGateway wires one test server per handler into the chain, named
// primary, fallback-1, fallback-2, ...
func newTestGateway(t *testing.T, cfg *config.LLMConfig, alerter Alerter, handlers ...http.HandlerFunc) *Gateway {
	t.Helper()
	cfg.Chain = nil
	cfg.Backends = make(map[string]*config.LLMBackendConfig)
	for i, h := range handlers {
		name := "primary"
		if i > 0 {
			name = fmt.Sprintf("fallback-%d", i)
		}
		srv := httptest.NewServer(h)
		t.Cleanup(srv.Close)
		cfg.Chain = append(cfg.Chain, name)
		cfg.Backends[name] = &config.LLMBackendConfig{Endpoint: srv.URL}
	}
	gw, err := NewGateway(cfg, alerter)
	require.NoError(t, err)
	return gw
}

func chatResponseJSON(content string) string {
	return fmt.Sprintf(`{"model":"test-model","choices":[{"message":{"role":"assistant","content":%q},"finish_reason":"stop"}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`, content)
}

func completionHandler(content string, calls *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatResponseJSON(content))
	}
}

func failingHandler(status int, body string, calls *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

// hangingHandler blocks until the client goes away or d elapses.
func hangingHandler(d time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(d):
		}
	}
}

type recordingAlerter struct {
	mu      sync.Mutex
	calls   int
	backend string
	err     error
}

func (a *recordingAlerter) LLMFallbackExhausted(_ context.Context, backend string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	a.backend = backend
	a.err = err
}

func (a *recordingAlerter) snapshot() (int, string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls, a.backend, a.err
}

func userRequest(text string) Request {
	return Request{Messages: []Message{{Role: RoleUser, Content: text}}}
}

func TestCompleteReturnsContent(t *testing.T) {
	got := make(chan chatRequest, 1)
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		var cr chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&cr))
		got <- cr
		fmt.Fprint(w, chatResponseJSON("Hello there."))
	}
	gw := newTestGateway(t, testLLMConfig(), nil, handler)

	text, err := gw.Complete(context.Background(), userRequest("hi"))
	require.NoError(t, err)
	assert.Equal(t, "Hello there.", text)

	cr := <-got
	assert.Equal(t, "test-model", cr.Model)
	assert.Equal(t, 512, cr.MaxTokens)
	assert.InDelta(t, 0.7, cr.Temperature, 0.0001)
	assert.False(t, cr.Stream)
}

func TestCompleteClampsParameters(t *testing.T) {
	got := make(chan chatRequest, 1)
	handler := func(w http.ResponseWriter, r *http.Request) {
		var cr chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&cr))
		got <- cr
		fmt.Fprint(w, chatResponseJSON("ok"))
	}
	gw := newTestGateway(t, testLLMConfig(), nil, handler)

	req := userRequest("hi")
	req.MaxTokens = 9000
	req.Temperature = 3.5
	_, err := gw.Complete(context.Background(), req)
	require.NoError(t, err)

	cr := <-got
	assert.Equal(t, 4096, cr.MaxTokens)
	assert.InDelta(t, 2.0, cr.Temperature, 0.0001)
}

func TestCompleteRejectsUnknownModel(t *testing.T) {
	var calls atomic.Int32
	gw := newTestGateway(t, testLLMConfig(), nil, completionHandler("ok", &calls))

	req := userRequest("hi")
	req.Model = "ghost-model"
	_, err := gw.Complete(context.Background(), req)
	assert.Equal(t, fault.KindInvalid, fault.KindOf(err))
	assert.Equal(t, int32(0), calls.Load())
}

func TestCompleteRejectsEmptyMessages(t *testing.T) {
	gw := newTestGateway(t, testLLMConfig(), nil, completionHandler("ok", nil))

	_, err := gw.Complete(context.Background(), Request{})
	assert.Equal(t, fault.KindInvalid, fault.KindOf(err))
}

func TestCompleteSendsBearerToken(t *testing.T) {
	t.Setenv("TEST_LLM_API_KEY", "sk-steward-test")

	auth := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
		fmt.Fprint(w, chatResponseJSON("ok"))
	}))
	t.Cleanup(srv.Close)

	cfg := testLLMConfig()
	cfg.Chain = []string{"primary"}
	cfg.Backends = map[string]*config.LLMBackendConfig{
		"primary": {Endpoint: srv.URL, APIKeyEnv: "TEST_LLM_API_KEY"},
	}
	gw, err := NewGateway(cfg, nil)
	require.NoError(t, err)

	_, err = gw.Complete(context.Background(), userRequest("hi"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-steward-test", <-auth)
}

func TestCompleteFallsBackOnServerError(t *testing.T) {
	var primaryCalls, fallbackCalls atomic.Int32
	gw := newTestGateway(t, testLLMConfig(), nil,
		failingHandler(http.StatusServiceUnavailable, "overloaded", &primaryCalls),
		completionHandler("from the fallback", &fallbackCalls),
	)

	text, err := gw.Complete(context.Background(), userRequest("hi"))
	require.NoError(t, err)
	assert.Equal(t, "from the fallback", text)
	assert.Equal(t, int32(1), primaryCalls.Load())
	assert.Equal(t, int32(1), fallbackCalls.Load())
}

func TestCompleteDoesNotFallBackOnBadRequest(t *testing.T) {
	var fallbackCalls atomic.Int32
	gw := newTestGateway(t, testLLMConfig(), nil,
		failingHandler(http.StatusBadRequest, `{"error":{"message":"bad prompt"}}`, nil),
		completionHandler("never", &fallbackCalls),
	)

	_, err := gw.Complete(context.Background(), userRequest("hi"))
	assert.Equal(t, fault.KindInvalid, fault.KindOf(err))
	assert.Contains(t, err.Error(), "bad prompt")
	assert.Equal(t, int32(0), fallbackCalls.Load())
}

func TestCompleteOOMCooldownSkipsPrimary(t *testing.T) {
	var primaryCalls, fallbackCalls atomic.Int32
	cfg := testLLMConfig()
	gw := newTestGateway(t, cfg, nil,
		failingHandler(http.StatusInternalServerError, "CUDA out of memory", &primaryCalls),
		completionHandler("fallback answer", &fallbackCalls),
	)

	text, err := gw.Complete(context.Background(), userRequest("hi"))
	require.NoError(t, err)
	assert.Equal(t, "fallback answer", text)
	assert.Equal(t, int32(1), primaryCalls.Load())

	// While the cooldown runs the primary is not even attempted.
	_, err = gw.Complete(context.Background(), userRequest("again"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), primaryCalls.Load())
	assert.Equal(t, int32(2), fallbackCalls.Load())

	time.Sleep(cfg.OOMCooldown + 50*time.Millisecond)
	_, err = gw.Complete(context.Background(), userRequest("later"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), primaryCalls.Load())
}

func TestCompleteExhaustedChainAlertsOps(t *testing.T) {
	alerter := &recordingAlerter{}
	gw := newTestGateway(t, testLLMConfig(), alerter,
		failingHandler(http.StatusServiceUnavailable, "down", nil),
		failingHandler(http.StatusServiceUnavailable, "also down", nil),
	)

	_, err := gw.Complete(context.Background(), userRequest("hi"))
	assert.Equal(t, fault.KindUnavailable, fault.KindOf(err))

	calls, backend, alertErr := alerter.snapshot()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fallback-1", backend)
	assert.Error(t, alertErr)
}

func TestCompleteTimeoutCeilingDoesNotAlert(t *testing.T) {
	alerter := &recordingAlerter{}
	cfg := testLLMConfig()
	cfg.CompleteTimeout = 50 * time.Millisecond
	gw := newTestGateway(t, cfg, alerter,
		hangingHandler(2*time.Second),
		completionHandler("never reached", nil),
	)

	_, err := gw.Complete(context.Background(), userRequest("hi"))
	assert.Equal(t, fault.KindTimeout, fault.KindOf(err))

	calls, _, _ := alerter.snapshot()
	assert.Equal(t, 0, calls)
}

func TestCompleteCancelledIsNotRetriedDownChain(t *testing.T) {
	var fallbackCalls atomic.Int32
	gw := newTestGateway(t, testLLMConfig(), nil,
		hangingHandler(2*time.Second),
		completionHandler("never", &fallbackCalls),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	_, err := gw.Complete(ctx, userRequest("hi"))
	assert.Equal(t, fault.KindCancelled, fault.KindOf(err))
	assert.Equal(t, int32(0), fallbackCalls.Load())
}

func TestNewGatewayRejectsUnknownChainEntry(t *testing.T) {
	cfg := testLLMConfig()
	cfg.Chain = []string{"ghost"}
	cfg.Backends = map[string]*config.LLMBackendConfig{}
	_, err := NewGateway(cfg, nil)
	assert.ErrorIs(t, err, config.ErrLLMBackendNotFound)
}

func TestWarmupFlipsReady(t *testing.T) {
	var primaryCalls, fallbackCalls atomic.Int32
	gw := newTestGateway(t, testLLMConfig(), nil,
		completionHandler("ready", &primaryCalls),
		completionHandler("ready", &fallbackCalls),
	)

	assert.False(t, gw.Ready())
	gw.Warmup(context.Background())
	assert.True(t, gw.Ready())
	assert.Equal(t, int32(1), primaryCalls.Load())
	assert.Equal(t, int32(1), fallbackCalls.Load())
}

func TestWarmupCapStillFlipsReady(t *testing.T) {
	cfg := testLLMConfig()
	cfg.WarmupTimeout = 50 * time.Millisecond
	gw := newTestGateway(t, cfg, nil, hangingHandler(2*time.Second))

	start := time.Now()
	gw.Warmup(context.Background())
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, gw.Ready())
}
