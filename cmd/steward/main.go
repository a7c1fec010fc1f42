// Steward orchestration server — one binary carrying the HTTP control
// plane, expert dispatch, episodic memory, and the live event feed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stewardhq/steward/pkg/actionlog"
	"github.com/stewardhq/steward/pkg/api"
	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/cleanup"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/notify"
	"github.com/stewardhq/steward/pkg/orchestrator"
	"github.com/stewardhq/steward/pkg/outbound"
	"github.com/stewardhq/steward/pkg/redact"
	"github.com/stewardhq/steward/pkg/satisfaction"
	"github.com/stewardhq/steward/pkg/version"
)

// Exit codes follow BSD sysexits where one applies.
const (
	exitUsage       = 64 // bad invocation
	exitConfig      = 65 // unusable configuration
	exitUnavailable = 69 // database or migrations unreachable
	exitInternal    = 70 // everything else
)

// collaboratorTimeout is the default ceiling for sibling router calls;
// individual requests may set tighter deadlines.
const collaboratorTimeout = 5 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(exitUsage)
	}
	if *showVersion {
		fmt.Println(version.Full())
		return
	}

	// Load .env from the config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting steward",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(exitConfig)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"llm_backends", stats.LLMBackends,
		"expert_overrides", stats.ExpertOverrides,
		"collaborators", stats.Services)

	// 2. Connect to the database (runs pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(exitConfig)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(exitUnavailable)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Ops notifications and redaction
	redactor := redact.New()
	notifier := notify.NewNotifier(cfg.Slack, redactor)

	// 4. Event fan-out: durable publisher, LISTEN relay, WebSocket manager
	publisher := events.NewEventPublisher(dbClient.DB())
	eventStore := events.NewEventStore(dbClient.Client)
	connManager := events.NewConnectionManager(events.NewCatchupAdapter(eventStore), 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(exitUnavailable)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Event feed initialized")

	// 5. Model gateway; warm-up runs in the background so startup never
	// blocks on model load
	gateway, err := llm.NewGateway(cfg.LLM, notifier)
	if err != nil {
		slog.Error("Failed to build LLM gateway", "error", err)
		os.Exit(exitConfig)
	}
	go gateway.Warmup(ctx)

	// 6. Memory: episodes, facts, summarization, staleness sweeper
	summarizer := memory.NewSummarizer(dbClient.Client, gateway, cfg.Memory)
	episodes := memory.NewEpisodeService(dbClient.Client, cfg.Episodes, summarizer, publisher)
	facts := memory.NewFactService(dbClient.Client, dbClient.DB(), cfg.Memory)
	sweeper := memory.NewSweeper(dbClient.Client, episodes, cfg.Episodes.SweepInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 7. Action log (buffered flusher)
	actions := actionlog.NewService(dbClient.Client, redactor, publisher)
	actions.Start(ctx)
	defer actions.Stop()

	// 8. Experts and dispatcher
	experts, err := expert.BuildAll(expert.Deps{
		Clients: collaboratorClients(cfg, notifier.BreakerHook()),
		Facts:   facts,
	}, cfg.Experts)
	if err != nil {
		slog.Error("Failed to build experts", "error", err)
		os.Exit(exitConfig)
	}
	dispatcher := expert.NewDispatcher(experts, actions, cfg.Dispatcher, nil)
	slog.Info("Experts ready", "count", len(experts))

	// 9. Session validation
	var authClient *outbound.Client
	if cfg.Auth.ServiceURL != "" {
		breaker := outbound.NewBreaker("auth",
			cfg.Outbound.BreakerFailures, cfg.Outbound.BreakerCooldown, notifier.BreakerHook())
		authClient = outbound.NewClient("auth", cfg.Auth.ServiceURL, collaboratorTimeout, cfg.Outbound, breaker)
	}
	validator := auth.NewValidator(authClient, cfg.Auth)

	// 10. Satisfaction tracker and the orchestrator itself
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

	// 11. Retention
	retention := cleanup.NewService(cfg.Retention, episodes, facts, actions, eventStore)
	retention.Start(ctx)
	defer retention.Stop()

	// 12. HTTP control plane
	httpServer := api.NewServer(api.Deps{
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

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Steward started", "addr", cfg.Server.Addr(), "experts", len(experts))

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	exitCode := 0
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		exitCode = exitInternal
	}

	// 14. Graceful shutdown: stop accepting requests, then let the
	// deferred Stop calls drain the background services
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// collaboratorClients builds one resilient outbound client per configured
// sibling router. Unconfigured collaborators are left out; BuildAll skips
// the experts that need them.
func collaboratorClients(cfg *config.Config, hook outbound.StateChangeFunc) map[string]*outbound.Client {
	urls := map[string]string{
		"lists":         cfg.Services.Lists,
		"calendar":      cfg.Services.Calendar,
		"reminders":     cfg.Services.Reminders,
		"journal":       cfg.Services.Journal,
		"homeassistant": cfg.Services.HomeAssistant,
		"memory":        cfg.Services.Memory,
		"people":        cfg.Services.People,
	}
	clients := make(map[string]*outbound.Client, len(urls))
	for name, url := range urls {
		if url == "" {
			continue
		}
		breaker := outbound.NewBreaker(name,
			cfg.Outbound.BreakerFailures, cfg.Outbound.BreakerCooldown, hook)
		clients[name] = outbound.NewClient(name, url, collaboratorTimeout, cfg.Outbound, breaker)
	}
	return clients
}
