// Package notify delivers ops alerts to Slack: opened circuit breakers and
// exhausted LLM fallback chains. Alerts for the same condition thread under
// the first occurrence via a fingerprint embedded in the parent message.
// The notifier is nil-safe; an unconfigured deployment pays nothing.
package notify

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/outbound"
	"github.com/stewardhq/steward/pkg/redact"
)

const postTimeout = 5 * time.Second

// Notifier sends ops alerts to the configured Slack channel.
// Nil-safe: all methods are no-ops when the notifier is nil.
type Notifier struct {
	client   *Client
	redactor *redact.Redactor
	logger   *slog.Logger
}

// NewNotifier creates an ops notifier from config. Returns nil when Slack
// is disabled or the token/channel is missing, which callers treat as
// "alerts off".
func NewNotifier(cfg *config.SlackConfig, redactor *redact.Redactor) *Notifier {
	if cfg == nil || !cfg.Enabled || cfg.Channel == "" {
		return nil
	}
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		slog.Warn("Slack notifications enabled but token env is empty; alerts off",
			"token_env", cfg.TokenEnv)
		return nil
	}
	return &Notifier{
		client:   NewClient(token, cfg.Channel),
		redactor: redactor,
		logger:   slog.Default().With("component", "notify"),
	}
}

// NewNotifierWithClient creates a Notifier backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewNotifierWithClient(client *Client, redactor *redact.Redactor) *Notifier {
	return &Notifier{
		client:   client,
		redactor: redactor,
		logger:   slog.Default().With("component", "notify"),
	}
}

// BreakerOpened alerts that a service's circuit tripped open.
// Fail-open: errors are logged, never returned.
func (n *Notifier) BreakerOpened(ctx context.Context, service string) {
	if n == nil {
		return
	}
	fingerprint := breakerFingerprint(service)
	threadTS := n.findThread(ctx, fingerprint)
	blocks := BuildBreakerOpenedMessage(service, fingerprint)
	if err := n.client.PostMessage(ctx, blocks, threadTS, postTimeout); err != nil {
		n.logger.Error("Failed to send breaker-open alert",
			"service", service, "error", err)
	}
}

// BreakerRecovered alerts that a previously open circuit closed again,
// threaded under the open alert when one is found.
func (n *Notifier) BreakerRecovered(ctx context.Context, service string) {
	if n == nil {
		return
	}
	fingerprint := breakerFingerprint(service)
	threadTS := n.findThread(ctx, fingerprint)
	if threadTS == "" {
		// No parent alert within the lookback window; recovery on its own
		// is not worth a fresh top-level message.
		return
	}
	blocks := BuildBreakerRecoveredMessage(service, fingerprint)
	if err := n.client.PostMessage(ctx, blocks, threadTS, postTimeout); err != nil {
		n.logger.Error("Failed to send breaker-recovered alert",
			"service", service, "error", err)
	}
}

// LLMFallbackExhausted alerts that a request ran out of LLM backends.
// Satisfies the gateway's Alerter interface.
func (n *Notifier) LLMFallbackExhausted(ctx context.Context, backend string, cause error) {
	if n == nil {
		return
	}
	errText := "unknown error"
	if cause != nil {
		errText = cause.Error()
	}
	if n.redactor != nil {
		errText = n.redactor.String(errText)
	}

	fingerprint := llmExhaustedFingerprint()
	threadTS := n.findThread(ctx, fingerprint)
	blocks := BuildLLMExhaustedMessage(backend, errText, fingerprint)
	if err := n.client.PostMessage(ctx, blocks, threadTS, postTimeout); err != nil {
		n.logger.Error("Failed to send llm-exhausted alert",
			"backend", backend, "error", err)
	}
}

// BreakerHook adapts the notifier to the outbound breaker's state-change
// callback. The breaker already invokes the hook on its own goroutine, so
// posting synchronously here is fine. Safe on a nil notifier.
func (n *Notifier) BreakerHook() outbound.StateChangeFunc {
	return func(service string, from, to outbound.BreakerState) {
		ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
		defer cancel()
		switch {
		case to == outbound.BreakerOpen:
			n.BreakerOpened(ctx, service)
		case from == outbound.BreakerHalfOpen && to == outbound.BreakerClosed:
			n.BreakerRecovered(ctx, service)
		}
	}
}

func (n *Notifier) findThread(ctx context.Context, fingerprint string) string {
	threadTS, err := n.client.FindMessageByFingerprint(ctx, fingerprint)
	if err != nil {
		n.logger.Warn("Failed to search for alert thread",
			"fingerprint", fingerprint, "error", err)
		return ""
	}
	return threadTS
}
