// Package llm routes chat completions to a chain of OpenAI-compatible
// inference backends. The first backend in the chain is the primary;
// fallbacks take over when a backend times out, is unreachable, or fails
// in an out-of-memory shape. Generation parameters are clamped to the
// configured caps before any backend sees them.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
)

// Message is one turn of a chat transcript in wire order.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request describes one generation call. Zero-valued MaxTokens and
// Temperature pick up the configured defaults; out-of-range values are
// clamped rather than rejected. Model must name a configured model when
// set; empty uses each backend's own model.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	Stop        []string
}

// Chunk is one increment of a streamed completion. A terminal chunk
// carries either Done (success) or Err (failure); the channel closes
// right after it.
type Chunk struct {
	Content string
	Err     error
	Done    bool
}

// Alerter receives ops notifications when every backend in the chain has
// failed for a single request. A nil Alerter drops alerts.
type Alerter interface {
	LLMFallbackExhausted(ctx context.Context, backend string, err error)
}

type backend struct {
	name     string
	endpoint string
	model    string
	apiKey   string
}

// Gateway fans completion requests down the configured backend chain.
// Safe for concurrent use.
type Gateway struct {
	cfg      *config.LLMConfig
	backends []*backend
	models   map[string]bool
	client   *http.Client
	alerter  Alerter
	logger   *slog.Logger

	mu            sync.Mutex
	cooldownUntil time.Time

	ready atomic.Bool
}

// NewGateway resolves the configured fallback chain into a gateway. API
// keys are read from the environment once, here.
func NewGateway(cfg *config.LLMConfig, alerter Alerter) (*Gateway, error) {
	chain, err := cfg.ChainBackends()
	if err != nil {
		return nil, fmt.Errorf("resolving llm chain: %w", err)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("llm chain is empty")
	}

	backends := make([]*backend, len(chain))
	models := make(map[string]bool)
	if cfg.DefaultModel != "" {
		models[cfg.DefaultModel] = true
	}
	for i, bc := range chain {
		model := bc.Model
		if model == "" {
			model = cfg.DefaultModel
		}
		var key string
		if bc.APIKeyEnv != "" {
			key = os.Getenv(bc.APIKeyEnv)
		}
		backends[i] = &backend{
			name:     cfg.Chain[i],
			endpoint: strings.TrimRight(bc.Endpoint, "/"),
			model:    model,
			apiKey:   key,
		}
		models[model] = true
	}

	return &Gateway{
		cfg:      cfg,
		backends: backends,
		models:   models,
		client: &http.Client{
			// No client-level timeout: streams are bounded by the
			// first-token and idle watchdogs, completions by context.
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		alerter: alerter,
		logger:  slog.With("component", "llm"),
	}, nil
}

// Complete runs one non-streaming completion through the chain and
// returns the generated text. Bounded by the configured completion
// timeout overall.
func (g *Gateway) Complete(ctx context.Context, req Request) (string, error) {
	if err := g.prepare(&req); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, g.cfg.CompleteTimeout)
	defer cancel()

	var lastErr error
	for i, b := range g.backends {
		if i == 0 && g.primaryCooling() {
			g.logger.Warn("skipping primary llm backend during OOM cooldown", "backend", b.name)
			continue
		}
		text, err := g.completeOn(ctx, b, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if i == 0 && looksOOM(err) {
			g.beginPrimaryCooldown(err)
		}
		if !shouldAdvance(err) {
			return "", err
		}
		if ctx.Err() != nil {
			// No budget left for the rest of the chain.
			return "", lastErr
		}
		g.logger.Warn("llm backend failed, advancing chain",
			"backend", b.name, "kind", string(fault.KindOf(err)), "error", err)
	}
	return "", g.exhausted(ctx, lastErr)
}

// completeOn runs one completion against a single backend.
func (g *Gateway) completeOn(ctx context.Context, b *backend, req Request) (string, error) {
	httpReq, err := b.newRequest(ctx, req, false)
	if err != nil {
		return "", fault.Wrap(fault.KindInternal, "building llm request", err)
	}

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", requestFault(ctx, b.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", requestFault(ctx, b.name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusFault(b.name, resp.StatusCode, body)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fault.Wrap(fault.KindUnavailable, b.name+" returned a malformed completion", err)
	}
	if len(cr.Choices) == 0 {
		return "", fault.Unavailable(b.name + " returned no choices")
	}

	g.logger.Debug("llm completion finished",
		"backend", b.name,
		"model", cr.Model,
		"completion_tokens", cr.Usage.CompletionTokens,
		"duration_ms", time.Since(start).Milliseconds())
	return cr.Choices[0].Message.Content, nil
}

// prepare validates the request and fills in clamped defaults in place.
func (g *Gateway) prepare(req *Request) error {
	if len(req.Messages) == 0 {
		return fault.Invalid("completion request has no messages")
	}
	if req.Model != "" && !g.models[req.Model] {
		return fault.Invalid(fmt.Sprintf("unknown model %q", req.Model))
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = g.cfg.MaxTokens
	}
	if req.MaxTokens > g.cfg.MaxTokensCap {
		req.MaxTokens = g.cfg.MaxTokensCap
	}
	switch {
	case req.Temperature == 0:
		req.Temperature = g.cfg.Temperature
	case req.Temperature < 0:
		req.Temperature = 0
	case req.Temperature > 2:
		req.Temperature = 2
	}
	return nil
}

// shouldAdvance reports whether a backend failure is worth handing to the
// next backend in the chain. Caller mistakes and cancellations are not.
func shouldAdvance(err error) bool {
	if looksOOM(err) {
		return true
	}
	switch fault.KindOf(err) {
	case fault.KindTimeout, fault.KindUnavailable:
		return true
	default:
		return false
	}
}

func (g *Gateway) beginPrimaryCooldown(err error) {
	g.mu.Lock()
	g.cooldownUntil = time.Now().Add(g.cfg.OOMCooldown)
	g.mu.Unlock()
	g.logger.Warn("primary llm backend looks out of memory, cooling down",
		"backend", g.backends[0].name,
		"cooldown", g.cfg.OOMCooldown,
		"error", err)
}

func (g *Gateway) primaryCooling() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return time.Now().Before(g.cooldownUntil)
}

// exhausted is the terminal failure for a request that ran out of
// backends. It alerts ops once per occurrence.
func (g *Gateway) exhausted(ctx context.Context, lastErr error) error {
	if lastErr == nil {
		lastErr = fault.Unavailable("no llm backend available")
	}
	last := g.backends[len(g.backends)-1].name
	g.logger.Error("llm fallback chain exhausted", "last_backend", last, "error", lastErr)
	if g.alerter != nil {
		g.alerter.LLMFallbackExhausted(context.WithoutCancel(ctx), last, lastErr)
	}
	return lastErr
}
