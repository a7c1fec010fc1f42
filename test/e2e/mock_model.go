package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stewardhq/steward/pkg/llm"
)

// ModelScript is one scripted model turn. Entries are consumed in request
// order; when the script runs out, the server falls back to echoing the
// prompt's action summaries (or "Okay." when there are none), which keeps
// scenario assertions honest without hand-writing every reply.
type ModelScript struct {
	// Text is the reply content. For streaming requests it is emitted as
	// one chunk unless Tokens is set.
	Text string

	// Tokens overrides Text for streaming requests, one SSE chunk each.
	Tokens []string

	// Status, when non-zero, fails the request with this HTTP status.
	Status int

	// Stall streams any Tokens and then holds the connection open in
	// silence, so the idle watchdog fires.
	Stall bool
}

// ScriptedModelServer speaks the OpenAI-compatible completion wire the
// gateway expects, capturing every prompt it receives.
type ScriptedModelServer struct {
	srv *httptest.Server

	mu      sync.Mutex
	script  []ModelScript
	next    int
	prompts [][]llm.Message
}

// NewScriptedModelServer starts the mock model backend.
func NewScriptedModelServer(t *testing.T) *ScriptedModelServer {
	m := &ScriptedModelServer{}
	m.srv = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.srv.Close)
	return m
}

// URL returns the backend's base URL.
func (m *ScriptedModelServer) URL() string { return m.srv.URL }

// Script appends entries to the reply script.
func (m *ScriptedModelServer) Script(entries ...ModelScript) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, entries...)
}

// Prompts returns every message transcript received so far.
func (m *ScriptedModelServer) Prompts() [][]llm.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]llm.Message, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// LastPrompt returns the most recent transcript flattened to one string,
// or "" when no request arrived yet.
func (m *ScriptedModelServer) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, msg := range m.prompts[len(m.prompts)-1] {
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *ScriptedModelServer) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []llm.Message `json:"messages"`
		Stream   bool          `json:"stream"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.prompts = append(m.prompts, req.Messages)
	var entry ModelScript
	if m.next < len(m.script) {
		entry = m.script[m.next]
		m.next++
	} else {
		entry = ModelScript{Text: echoActions(req.Messages)}
	}
	m.mu.Unlock()

	if entry.Status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(entry.Status)
		fmt.Fprint(w, `{"error":{"message":"scripted failure","type":"server_error"}}`)
		return
	}

	if req.Stream {
		m.streamReply(w, r, entry)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w,
		`{"model":"test-model","choices":[{"message":{"role":"assistant","content":%s},"finish_reason":"stop"}]}`,
		strconv.Quote(entry.Text))
}

func (m *ScriptedModelServer) streamReply(w http.ResponseWriter, r *http.Request, entry ModelScript) {
	fl, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")

	tokens := entry.Tokens
	if len(tokens) == 0 && entry.Text != "" {
		tokens = []string{entry.Text}
	}
	for _, tok := range tokens {
		fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%s}}]}\n\n", strconv.Quote(tok))
		fl.Flush()
	}
	if entry.Stall {
		<-r.Context().Done()
		return
	}
	fmt.Fprint(w, "data: [DONE]\n\n")
	fl.Flush()
}

// echoActions builds a reply out of the action-summary lines in the
// prompt's context block, imitating a model that restates what the tools
// did. Lines look like "- [list] Added milk to your shopping list."
func echoActions(messages []llm.Message) string {
	var parts []string
	for _, msg := range messages {
		if msg.Role != llm.RoleSystem {
			continue
		}
		for _, line := range strings.Split(msg.Content, "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "- [") {
				continue
			}
			if end := strings.Index(line, "] "); end >= 0 {
				parts = append(parts, line[end+2:])
			}
		}
	}
	if len(parts) == 0 {
		return "Okay."
	}
	return strings.Join(parts, " ")
}
