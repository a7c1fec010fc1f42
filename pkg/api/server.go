// Package api is the HTTP control plane: chat turns (blocking and SSE),
// satisfaction feedback, the admin surfaces (experts, probes, action log),
// the WebSocket live feed, and health.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/stewardhq/steward/pkg/actionlog"
	"github.com/stewardhq/steward/pkg/auth"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/expert"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/orchestrator"
	"github.com/stewardhq/steward/pkg/satisfaction"
)

// Server is the API server: route registration plus the service handles
// the handlers call into.
type Server struct {
	echo        *echo.Echo
	httpServer  *http.Server
	cfg         *config.Config
	orch        *orchestrator.Orchestrator
	validator   *auth.Validator
	dispatcher  *expert.Dispatcher
	tracker     *satisfaction.Service
	actions     *actionlog.Service
	connManager *events.ConnectionManager
	gateway     *llm.Gateway
	db          *database.Client
	logger      *slog.Logger
}

// Deps carries everything the server needs. ConnManager may be nil when
// the live feed is disabled.
type Deps struct {
	Config       *config.Config
	Orchestrator *orchestrator.Orchestrator
	Validator    *auth.Validator
	Dispatcher   *expert.Dispatcher
	Tracker      *satisfaction.Service
	Actions      *actionlog.Service
	ConnManager  *events.ConnectionManager
	Gateway      *llm.Gateway
	DB           *database.Client
	Logger       *slog.Logger
}

// NewServer builds the server and registers all routes.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		echo:        echo.New(),
		cfg:         deps.Config,
		orch:        deps.Orchestrator,
		validator:   deps.Validator,
		dispatcher:  deps.Dispatcher,
		tracker:     deps.Tracker,
		actions:     deps.Actions,
		connManager: deps.ConnManager,
		gateway:     deps.Gateway,
		db:          deps.DB,
		logger:      logger,
	}
	s.registerRoutes()
	return s
}

// registerRoutes wires every endpoint. The chat turn routes skip the
// session middleware: the orchestrator validates the raw token itself so
// turn-level auth failures follow the turn error contract.
func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(requestIDMiddleware(), securityHeaders())

	// Chat turns.
	e.POST("/api/chat", s.chatHandler)
	e.POST("/api/chat/stream", s.chatStreamHandler)
	e.GET("/api/chat/status", s.withSession(s.chatStatusHandler))

	// Satisfaction feedback.
	e.POST("/api/feedback/:interaction_id", s.withSession(s.feedbackHandler))

	// Admin surfaces.
	e.GET("/api/experts", s.withSession(s.adminOnly(s.listExpertsHandler)))
	e.POST("/api/experts/:name/probe", s.withSession(s.adminOnly(s.probeExpertHandler)))
	e.GET("/api/actions/recent", s.withSession(s.adminOnly(s.recentActionsHandler)))

	// Live feed; authenticates inside the handler (before the upgrade).
	e.GET("/ws/events", s.wsEventsHandler)

	// Unauthenticated liveness.
	e.GET("/health", s.healthHandler)
}

// ServeHTTP makes the server mountable in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
