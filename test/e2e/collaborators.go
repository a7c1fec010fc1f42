package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/outbound"
)

// StubCall is one request a collaborator stub received.
type StubCall struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// StubRouter is a scriptable downstream collaborator (lists router,
// calendar router, ...). It records every request and answers 200 with an
// empty JSON object unless told otherwise.
type StubRouter struct {
	name string
	srv  *httptest.Server

	mu         sync.Mutex
	calls      []StubCall
	failStatus int
	delay      time.Duration
	getBodies  map[string]string
}

func newStubRouter(t *testing.T, name string) *StubRouter {
	s := &StubRouter{name: name, getBodies: map[string]string{}}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *StubRouter) handle(w http.ResponseWriter, r *http.Request) {
	call := StubCall{Method: r.Method, Path: r.URL.Path}
	if r.Body != nil {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			call.Body = body
		}
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	failStatus := s.failStatus
	delay := s.delay
	getBody := s.getBodies[r.URL.Path]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if failStatus != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(failStatus)
		fmt.Fprintf(w, `{"error":"unavailable","message":"%s is down"}`, s.name)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodGet && getBody != "" {
		fmt.Fprint(w, getBody)
		return
	}
	fmt.Fprint(w, `{}`)
}

// URL returns the stub's base URL.
func (s *StubRouter) URL() string { return s.srv.URL }

// RespondWith makes every subsequent request fail with the given HTTP
// status. Zero restores normal responses.
func (s *StubRouter) RespondWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// Delay makes every subsequent request wait before responding, for
// deadline and cancellation tests.
func (s *StubRouter) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// OnGet scripts the response body for GET requests to the given path.
func (s *StubRouter) OnGet(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getBodies[path] = body
}

// Calls returns every request received so far.
func (s *StubRouter) Calls() []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StubCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns how many requests the stub has received.
func (s *StubRouter) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// CollaboratorSet runs one stub per downstream router.
type CollaboratorSet struct {
	Lists         *StubRouter
	Calendar      *StubRouter
	Reminders     *StubRouter
	Journal       *StubRouter
	HomeAssistant *StubRouter
	Memory        *StubRouter
	People        *StubRouter
}

// NewCollaboratorSet starts all collaborator stubs.
func NewCollaboratorSet(t *testing.T) *CollaboratorSet {
	return &CollaboratorSet{
		Lists:         newStubRouter(t, "lists"),
		Calendar:      newStubRouter(t, "calendar"),
		Reminders:     newStubRouter(t, "reminders"),
		Journal:       newStubRouter(t, "journal"),
		HomeAssistant: newStubRouter(t, "homeassistant"),
		Memory:        newStubRouter(t, "memory"),
		People:        newStubRouter(t, "people"),
	}
}

// ServiceURLs maps the stubs into the configuration shape.
func (c *CollaboratorSet) ServiceURLs() *config.ServiceURLs {
	return &config.ServiceURLs{
		Lists:         c.Lists.URL(),
		Calendar:      c.Calendar.URL(),
		Reminders:     c.Reminders.URL(),
		Journal:       c.Journal.URL(),
		HomeAssistant: c.HomeAssistant.URL(),
		Memory:        c.Memory.URL(),
		People:        c.People.URL(),
	}
}

// Clients builds one resilient outbound client per stub, the same wiring
// the binary performs for real collaborators.
func (c *CollaboratorSet) Clients(cfg *config.Config) map[string]*outbound.Client {
	stubs := map[string]*StubRouter{
		"lists":         c.Lists,
		"calendar":      c.Calendar,
		"reminders":     c.Reminders,
		"journal":       c.Journal,
		"homeassistant": c.HomeAssistant,
		"memory":        c.Memory,
		"people":        c.People,
	}
	clients := make(map[string]*outbound.Client, len(stubs))
	for name, stub := range stubs {
		breaker := outbound.NewBreaker(name,
			cfg.Outbound.BreakerFailures, cfg.Outbound.BreakerCooldown, nil)
		clients[name] = outbound.NewClient(name, stub.URL(), 5*time.Second, cfg.Outbound, breaker)
	}
	return clients
}

// AuthStub is a fake auth collaborator mapping session tokens to users.
type AuthStub struct {
	srv *httptest.Server

	mu    sync.Mutex
	users map[string]AuthUser
}

// AuthUser is one identity the stub will vouch for.
type AuthUser struct {
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// NewAuthStub starts the fake auth service with the given token→user map.
func NewAuthStub(t *testing.T, users map[string]AuthUser) *AuthStub {
	a := &AuthStub{users: users}
	a.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Session-Id")
		a.mu.Lock()
		user, ok := a.users[token]
		a.mu.Unlock()
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"unauthorized","message":"invalid session"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(user)
	}))
	t.Cleanup(a.srv.Close)
	return a
}

// URL returns the stub's base URL.
func (a *AuthStub) URL() string { return a.srv.URL }
