// Package e2e boots complete steward instances against real PostgreSQL
// and exercises them over HTTP, the way a client would.
package e2e

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/ent"
	"github.com/stewardhq/steward/pkg/actionlog"
	"github.com/stewardhq/steward/pkg/api"
	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/orchestrator"
	"github.com/stewardhq/steward/pkg/outbound"
	"github.com/stewardhq/steward/pkg/redact"
	"github.com/stewardhq/steward/pkg/satisfaction"
	testdb "github.com/stewardhq/steward/test/database"
)

// TestApp is one fully wired steward instance for e2e testing: real
// database, real event feed, real experts over stub collaborators, and a
// scripted model backend. Everything is reached through BaseURL.
type TestApp struct {
	Config        *config.Config
	DB            *database.Client
	EntClient     *ent.Client
	Model         *ScriptedModelServer
	Collaborators *CollaboratorSet

	Episodes *memory.EpisodeService
	Facts    *memory.FactService
	Actions  *actionlog.Service
	Tracker  *satisfaction.Service

	ConnManager *events.ConnectionManager
	Server      *api.Server

	BaseURL string
	WSURL   string

	t *testing.T
}

// testAppConfig accumulates options before the app is built.
type testAppConfig struct {
	tweaks      []func(*config.Config)
	authHandler *AuthStub
	now         func() time.Time
	model       *ScriptedModelServer
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfigTweak mutates the config after defaults are applied. May be
// given more than once.
func WithConfigTweak(f func(*config.Config)) TestAppOption {
	return func(c *testAppConfig) { c.tweaks = append(c.tweaks, f) }
}

// WithAuthStub runs a fake auth collaborator and disables local-dev mode,
// so every request must carry one of the stub's tokens.
func WithAuthStub(stub *AuthStub) TestAppOption {
	return func(c *testAppConfig) { c.authHandler = stub }
}

// WithNow pins the experts' clock for deterministic relative-time parsing
// ("tomorrow at 9am").
func WithNow(now func() time.Time) TestAppOption {
	return func(c *testAppConfig) { c.now = now }
}

// WithModel injects a pre-scripted model server.
func WithModel(m *ScriptedModelServer) TestAppOption {
	return func(c *testAppConfig) { c.model = m }
}

// NewTestApp builds and starts a steward instance. Shutdown is registered
// via t.Cleanup. The default setup runs in local-dev mode (every request
// resolves to the default admin user) with an echo-style model that
// restates the turn's action summaries.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}

	// 1. Database: one shared schema so the NOTIFY listener, the publisher,
	// and the assertions all see the same tables.
	shared := testdb.NewSharedTestDB(t)
	dbClient := shared.NewClient(t)

	// 2. Model backend and collaborator stubs.
	model := tc.model
	if model == nil {
		model = NewScriptedModelServer(t)
	}
	collaborators := NewCollaboratorSet(t)

	// 3. Configuration: builtin defaults, then test-appropriate deadlines,
	// then per-test tweaks.
	cfg := config.GetBuiltinConfig()
	cfg.Auth.LocalDevMode = tc.authHandler == nil
	cfg.Dispatcher.OverallDeadline = 5 * time.Second
	cfg.Dispatcher.PerExpertDeadline = 2 * time.Second
	cfg.Outbound.RetryBase = 10 * time.Millisecond
	cfg.Outbound.RetryMax = 50 * time.Millisecond
	cfg.LLM.CompleteTimeout = 5 * time.Second
	cfg.LLM.FirstTokenTimeout = 2 * time.Second
	cfg.LLM.TokenIdleTimeout = time.Second
	cfg.LLM.DefaultModel = "test-model"
	cfg.LLM.Chain = []string{"primary"}
	cfg.LLM.Backends = map[string]*config.LLMBackendConfig{
		"primary": {Endpoint: model.URL()},
	}
	cfg.Services = collaborators.ServiceURLs()
	for _, tweak := range tc.tweaks {
		tweak(cfg)
	}

	// 4. Event feed: durable publisher, LISTEN relay, WebSocket manager.
	publisher := events.NewEventPublisher(dbClient.DB())
	eventStore := events.NewEventStore(dbClient.Client)
	connManager := events.NewConnectionManager(events.NewCatchupAdapter(eventStore), 5*time.Second)
	listener := events.NewNotifyListener(shared.ConnString(), connManager)
	require.NoError(t, listener.Start(ctx))
	connManager.SetListener(listener)

	// 5. Model gateway. No warm-up: chat turns don't need readiness.
	gateway, err := llm.NewGateway(cfg.LLM, nil)
	require.NoError(t, err)

	// 6. Memory and action log.
	summarizer := memory.NewSummarizer(dbClient.Client, gateway, cfg.Memory)
	episodes := memory.NewEpisodeService(dbClient.Client, cfg.Episodes, summarizer, publisher)
	facts := memory.NewFactService(dbClient.Client, dbClient.DB(), cfg.Memory)
	actions := actionlog.NewService(dbClient.Client, redact.New(), publisher)
	actions.Start(ctx)

	// 7. Experts and dispatcher over the stub collaborators.
	experts, err := expert.BuildAll(expert.Deps{
		Clients: collaborators.Clients(cfg),
		Facts:   facts,
		Now:     tc.now,
	}, cfg.Experts)
	require.NoError(t, err)
	dispatcher := expert.NewDispatcher(experts, actions, cfg.Dispatcher, nil)

	// 8. Session validation: fake auth service or local-dev fallback.
	var authClient *outbound.Client
	if tc.authHandler != nil {
		cfg.Auth.ServiceURL = tc.authHandler.URL()
		breaker := outbound.NewBreaker("auth",
			cfg.Outbound.BreakerFailures, cfg.Outbound.BreakerCooldown, nil)
		authClient = outbound.NewClient("auth", cfg.Auth.ServiceURL, 5*time.Second, cfg.Outbound, breaker)
	}
	validator := auth.NewValidator(authClient, cfg.Auth)

	// 9. Orchestrator and control plane.
	tracker := satisfaction.NewService(dbClient.Client, publisher)
	orch := orchestrator.New(orchestrator.Deps{
		Validator:  validator,
		Episodes:   episodes,
		Facts:      facts,
		Dispatcher: dispatcher,
		Gateway:    gateway,
		Tracker:    tracker,
		Config:     cfg,
	})

	server := api.NewServer(api.Deps{
		Config:       cfg,
		Orchestrator: orch,
		Validator:    validator,
		Dispatcher:   dispatcher,
		Tracker:      tracker,
		Actions:      actions,
		ConnManager:  connManager,
		Gateway:      gateway,
		DB:           dbClient,
	})

	httpSrv := httptest.NewServer(server)

	app := &TestApp{
		Config:        cfg,
		DB:            dbClient,
		EntClient:     dbClient.Client,
		Model:         model,
		Collaborators: collaborators,
		Episodes:      episodes,
		Facts:         facts,
		Actions:       actions,
		Tracker:       tracker,
		ConnManager:   connManager,
		Server:        server,
		BaseURL:       httpSrv.URL,
		WSURL:         "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/ws/events",
		t:             t,
	}

	t.Cleanup(func() {
		httpSrv.Close()
		actions.Stop()
		listener.Stop(context.Background())
	})

	return app
}
