package expert

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/outbound"
)

// fixedNow pins the clock for relative time parsing: Tuesday 2025-06-10
// 14:30 UTC.
func fixedNow() time.Time {
	return time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
}

func testOutboundConfig() *config.OutboundConfig {
	return &config.OutboundConfig{
		BreakerFailures:     5,
		BreakerCooldown:     time.Second,
		RetryBase:           time.Millisecond,
		RetryMax:            5 * time.Millisecond,
		RetryAttempts:       1,
		MaxConnsPerHost:     4,
		MaxIdleConnsPerHost: 2,
	}
}

// serviceClient builds an outbound client for one collaborator against a
// test server.
func serviceClient(t *testing.T, service string, handler http.Handler) *outbound.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := testOutboundConfig()
	breaker := outbound.NewBreaker(service, cfg.BreakerFailures, cfg.BreakerCooldown, nil)
	return outbound.NewClient(service, srv.URL, 2*time.Second, cfg, breaker)
}

// capturedRequest is one call a collaborator stub received.
type capturedRequest struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// collaborator is a scripted collaborator router that records every
// request it serves.
type collaborator struct {
	mu       sync.Mutex
	requests []capturedRequest

	// status and body script the response; zero values mean 200 and {}.
	status int
	body   string
}

func (c *collaborator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if raw, err := io.ReadAll(r.Body); err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	c.mu.Lock()
	c.requests = append(c.requests, capturedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
	status, payload := c.status, c.body
	c.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	if payload == "" {
		payload = "{}"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(payload))
}

func (c *collaborator) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func (c *collaborator) at(i int) capturedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests[i]
}

func (c *collaborator) fail(status int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

func (c *collaborator) respond(body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.body = body
}

// testTurn is the TurnContext most expert tests run under.
func testTurn() TurnContext {
	return TurnContext{
		UserID:    "user-1",
		SessionID: "session-1",
		RequestID: "req-1",
	}
}
