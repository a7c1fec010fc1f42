package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/fault"
)

func streamEventJSON(content string) string {
	return fmt.Sprintf(`{"choices":[{"delta":{"content":%s}}]}`, strconv.Quote(content))
}

// sseHandler streams the given tokens with gap between them, optionally
// ending with the [DONE] sentinel.
func sseHandler(t *testing.T, gap time.Duration, sendDone bool, calls *atomic.Int32, tokens ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		fl, ok := w.(http.Flusher)
		if !ok {
			t.Error("response writer does not support flushing")
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, tok := range tokens {
			fmt.Fprintf(w, "data: %s\n\n", streamEventJSON(tok))
			fl.Flush()
			if gap > 0 {
				select {
				case <-r.Context().Done():
					return
				case <-time.After(gap):
				}
			}
		}
		if sendDone {
			fmt.Fprint(w, "data: [DONE]\n\n")
			fl.Flush()
		}
	}
}

// drainStream reads the channel to close and folds what it saw.
func drainStream(t *testing.T, ch <-chan Chunk) (content string, done bool, err error) {
	t.Helper()
	var sb strings.Builder
	deadline := time.After(5 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return sb.String(), done, err
			}
			sb.WriteString(c.Content)
			if c.Done {
				done = true
			}
			if c.Err != nil {
				err = c.Err
			}
		case <-deadline:
			t.Fatal("stream did not finish in time")
		}
	}
}

func TestStreamDeliversTokensThenDone(t *testing.T) {
	got := make(chan chatRequest, 1)
	accept := make(chan string, 1)
	handler := func(w http.ResponseWriter, r *http.Request) {
		accept <- r.Header.Get("Accept")
		var cr chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&cr))
		got <- cr
		sseHandler(t, 0, true, nil, "Hel", "lo", " world")(w, r)
	}
	gw := newTestGateway(t, testLLMConfig(), nil, handler)

	ch, err := gw.Stream(context.Background(), userRequest("hi"))
	require.NoError(t, err)

	content, done, streamErr := drainStream(t, ch)
	assert.NoError(t, streamErr)
	assert.True(t, done)
	assert.Equal(t, "Hello world", content)

	assert.Equal(t, "text/event-stream", <-accept)
	cr := <-got
	assert.True(t, cr.Stream)
	assert.Equal(t, "test-model", cr.Model)
}

func TestStreamEndsOnEOFWithoutDone(t *testing.T) {
	gw := newTestGateway(t, testLLMConfig(), nil,
		sseHandler(t, 0, false, nil, "partial", " answer"))

	ch, err := gw.Stream(context.Background(), userRequest("hi"))
	require.NoError(t, err)

	content, done, streamErr := drainStream(t, ch)
	assert.NoError(t, streamErr)
	assert.True(t, done)
	assert.Equal(t, "partial answer", content)
}

func TestStreamFirstTokenTimeout(t *testing.T) {
	cfg := testLLMConfig()
	cfg.FirstTokenTimeout = 100 * time.Millisecond
	gw := newTestGateway(t, cfg, nil, hangingHandler(5*time.Second))

	ch, err := gw.Stream(context.Background(), userRequest("hi"))
	require.NoError(t, err)

	content, done, streamErr := drainStream(t, ch)
	assert.Equal(t, fault.KindTimeout, fault.KindOf(streamErr))
	assert.False(t, done)
	assert.Empty(t, content)
}

func TestStreamIdleTimeoutDoesNotRestart(t *testing.T) {
	var fallbackCalls atomic.Int32
	cfg := testLLMConfig()
	cfg.TokenIdleTimeout = 100 * time.Millisecond
	gw := newTestGateway(t, cfg, nil,
		sseHandler(t, 2*time.Second, true, nil, "tok", "never"),
		sseHandler(t, 0, true, &fallbackCalls, "other"),
	)

	ch, err := gw.Stream(context.Background(), userRequest("hi"))
	require.NoError(t, err)

	content, done, streamErr := drainStream(t, ch)
	assert.Equal(t, "tok", content)
	assert.False(t, done)
	assert.Equal(t, fault.KindTimeout, fault.KindOf(streamErr))

	// Tokens already reached the consumer, so the fallback is off limits.
	assert.Equal(t, int32(0), fallbackCalls.Load())
}

func TestStreamFallsBackBeforeFirstToken(t *testing.T) {
	var primaryCalls, fallbackCalls atomic.Int32
	gw := newTestGateway(t, testLLMConfig(), nil,
		failingHandler(http.StatusServiceUnavailable, "down", &primaryCalls),
		sseHandler(t, 0, true, &fallbackCalls, "saved", " by", " fallback"),
	)

	ch, err := gw.Stream(context.Background(), userRequest("hi"))
	require.NoError(t, err)

	content, done, streamErr := drainStream(t, ch)
	assert.NoError(t, streamErr)
	assert.True(t, done)
	assert.Equal(t, "saved by fallback", content)
	assert.Equal(t, int32(1), primaryCalls.Load())
	assert.Equal(t, int32(1), fallbackCalls.Load())
}

func TestStreamEmptyStreamAdvancesChain(t *testing.T) {
	gw := newTestGateway(t, testLLMConfig(), nil,
		sseHandler(t, 0, true, nil),
		sseHandler(t, 0, true, nil, "real answer"),
	)

	ch, err := gw.Stream(context.Background(), userRequest("hi"))
	require.NoError(t, err)

	content, done, streamErr := drainStream(t, ch)
	assert.NoError(t, streamErr)
	assert.True(t, done)
	assert.Equal(t, "real answer", content)
}

func TestStreamValidationFailsBeforeAnyCall(t *testing.T) {
	var calls atomic.Int32
	gw := newTestGateway(t, testLLMConfig(), nil, completionHandler("ok", &calls))

	ch, err := gw.Stream(context.Background(), Request{})
	assert.Nil(t, ch)
	assert.Equal(t, fault.KindInvalid, fault.KindOf(err))
	assert.Equal(t, int32(0), calls.Load())
}

func TestStreamClientCancelMidStream(t *testing.T) {
	endless := func(w http.ResponseWriter, r *http.Request) {
		fl := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/event-stream")
		for {
			fmt.Fprintf(w, "data: %s\n\n", streamEventJSON("tok"))
			fl.Flush()
			select {
			case <-r.Context().Done():
				return
			case <-time.After(20 * time.Millisecond):
			}
		}
	}
	gw := newTestGateway(t, testLLMConfig(), nil, endless)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := gw.Stream(ctx, userRequest("hi"))
	require.NoError(t, err)

	// Take one token, then hang up.
	first := <-ch
	assert.Equal(t, "tok", first.Content)
	cancel()

	_, done, streamErr := drainStream(t, ch)
	assert.False(t, done)
	if streamErr != nil {
		assert.Equal(t, fault.KindCancelled, fault.KindOf(streamErr))
	}
}

func TestStreamExhaustedChainAlertsOps(t *testing.T) {
	alerter := &recordingAlerter{}
	gw := newTestGateway(t, testLLMConfig(), alerter,
		failingHandler(http.StatusServiceUnavailable, "down", nil),
		failingHandler(http.StatusServiceUnavailable, "also down", nil),
	)

	ch, err := gw.Stream(context.Background(), userRequest("hi"))
	require.NoError(t, err)

	_, done, streamErr := drainStream(t, ch)
	assert.False(t, done)
	assert.Equal(t, fault.KindUnavailable, fault.KindOf(streamErr))

	calls, backend, _ := alerter.snapshot()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fallback-1", backend)
}
