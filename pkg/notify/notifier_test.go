package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/outbound"
	"github.com/stewardhq/steward/pkg/redact"
)

// mockSlackAPI fakes the two Slack endpoints the notifier uses.
type mockSlackAPI struct {
	mu      sync.Mutex
	posts   []url.Values
	history []goslack.Message
}

func (m *mockSlackAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		m.mu.Lock()
		m.posts = append(m.posts, r.PostForm)
		m.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"ok":true,"channel":"C123","ts":"%d.000100"}`, len(m.posts))
	})
	mux.HandleFunc("/conversations.history", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		messages := m.history
		m.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{"ok": true, "messages": messages}
		_ = json.NewEncoder(w).Encode(resp)
	})
	return mux
}

func (m *mockSlackAPI) postCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts)
}

func (m *mockSlackAPI) lastPost() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.posts[len(m.posts)-1]
}

func (m *mockSlackAPI) setHistory(messages ...goslack.Message) {
	m.mu.Lock()
	m.history = messages
	m.mu.Unlock()
}

func newTestNotifier(t *testing.T) (*Notifier, *mockSlackAPI) {
	t.Helper()
	api := &mockSlackAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	client := NewClientWithAPIURL("xoxb-test", "C123", srv.URL+"/")
	return NewNotifierWithClient(client, redact.New()), api
}

func TestNotifierNilReceiver(t *testing.T) {
	var n *Notifier

	// None of these may panic.
	n.BreakerOpened(context.Background(), "lists")
	n.BreakerRecovered(context.Background(), "lists")
	n.LLMFallbackExhausted(context.Background(), "primary", errors.New("boom"))
	n.BreakerHook()("lists", outbound.BreakerClosed, outbound.BreakerOpen)
}

func TestNewNotifierUnconfigured(t *testing.T) {
	redactor := redact.New()

	assert.Nil(t, NewNotifier(nil, redactor))
	assert.Nil(t, NewNotifier(&config.SlackConfig{Enabled: false}, redactor))
	assert.Nil(t, NewNotifier(&config.SlackConfig{
		Enabled: true, TokenEnv: "STEWARD_TEST_SLACK_TOKEN",
	}, redactor), "missing channel")

	t.Setenv("STEWARD_TEST_SLACK_TOKEN", "")
	assert.Nil(t, NewNotifier(&config.SlackConfig{
		Enabled: true, TokenEnv: "STEWARD_TEST_SLACK_TOKEN", Channel: "C123",
	}, redactor), "empty token env")

	t.Setenv("STEWARD_TEST_SLACK_TOKEN", "xoxb-test")
	assert.NotNil(t, NewNotifier(&config.SlackConfig{
		Enabled: true, TokenEnv: "STEWARD_TEST_SLACK_TOKEN", Channel: "C123",
	}, redactor))
}

func TestBreakerOpenedPostsParent(t *testing.T) {
	n, api := newTestNotifier(t)

	n.BreakerOpened(context.Background(), "lists")

	require.Equal(t, 1, api.postCount())
	post := api.lastPost()
	assert.Empty(t, post.Get("thread_ts"), "first occurrence is a parent message")
	assert.Contains(t, post.Get("blocks"), "Circuit open: lists")
	assert.Contains(t, post.Get("blocks"), breakerFingerprint("lists"))
}

func TestBreakerOpenedThreadsRepeat(t *testing.T) {
	n, api := newTestNotifier(t)

	api.setHistory(goslack.Message{Msg: goslack.Msg{
		Text:      breakerFingerprint("lists"),
		Timestamp: "111.222",
	}})

	n.BreakerOpened(context.Background(), "lists")

	require.Equal(t, 1, api.postCount())
	assert.Equal(t, "111.222", api.lastPost().Get("thread_ts"),
		"repeat alert threads under the first occurrence")
}

func TestBreakerRecovered(t *testing.T) {
	n, api := newTestNotifier(t)

	// Without a parent open-alert in history, recovery stays silent.
	n.BreakerRecovered(context.Background(), "lists")
	assert.Equal(t, 0, api.postCount())

	api.setHistory(goslack.Message{Msg: goslack.Msg{
		Text:      breakerFingerprint("lists"),
		Timestamp: "111.222",
	}})
	n.BreakerRecovered(context.Background(), "lists")

	require.Equal(t, 1, api.postCount())
	post := api.lastPost()
	assert.Equal(t, "111.222", post.Get("thread_ts"))
	assert.Contains(t, post.Get("blocks"), "Circuit closed: lists")
}

func TestLLMFallbackExhaustedRedactsError(t *testing.T) {
	n, api := newTestNotifier(t)

	cause := errors.New(`backend rejected api_key="sk_live_abcdef1234567890"`)
	n.LLMFallbackExhausted(context.Background(), "vllm-primary", cause)

	require.Equal(t, 1, api.postCount())
	blocks := api.lastPost().Get("blocks")
	assert.Contains(t, blocks, "LLM fallback chain exhausted")
	assert.Contains(t, blocks, "vllm-primary")
	assert.Contains(t, blocks, "__REDACTED_API_KEY__")
	assert.NotContains(t, blocks, "sk_live_abcdef1234567890")
}

func TestBreakerHookTransitions(t *testing.T) {
	n, api := newTestNotifier(t)
	hook := n.BreakerHook()

	hook("lists", outbound.BreakerClosed, outbound.BreakerOpen)
	assert.Equal(t, 1, api.postCount(), "closed->open alerts")

	hook("lists", outbound.BreakerOpen, outbound.BreakerHalfOpen)
	assert.Equal(t, 1, api.postCount(), "open->half-open is silent")

	// Recovery threads under the open alert found in history.
	api.setHistory(goslack.Message{Msg: goslack.Msg{
		Text:      breakerFingerprint("lists"),
		Timestamp: "1.000100",
	}})
	hook("lists", outbound.BreakerHalfOpen, outbound.BreakerClosed)
	assert.Equal(t, 2, api.postCount(), "half-open->closed posts recovery")
}

func TestBuildMessagesCarryFingerprint(t *testing.T) {
	blocks := BuildBreakerOpenedMessage("calendar", breakerFingerprint("calendar"))
	require.Len(t, blocks, 2)

	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Circuit open: calendar")

	contextBlock, ok := blocks[1].(*goslack.ContextBlock)
	require.True(t, ok)
	require.Len(t, contextBlock.ContextElements.Elements, 1)
	txt, ok := contextBlock.ContextElements.Elements[0].(*goslack.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "steward-alert:breaker:calendar", txt.Text)
}

func TestTruncateForSlack(t *testing.T) {
	short := "short error"
	assert.Equal(t, short, truncateForSlack(short))

	long := make([]byte, maxBlockTextLength+100)
	for i := range long {
		long[i] = 'x'
	}
	out := truncateForSlack(string(long))
	assert.Contains(t, out, "(truncated)")
	assert.Less(t, len(out), maxBlockTextLength+50)
}
