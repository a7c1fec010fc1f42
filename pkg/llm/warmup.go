package llm

import (
	"context"
	"time"
)

// Warmup issues one short completion per chain backend so the first user
// turns do not pay model load time. The readiness flag flips when every
// backend answered or the overall cap elapsed, whichever comes first.
// Intended to run on its own goroutine at startup.
func (g *Gateway) Warmup(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.WarmupTimeout)
	defer cancel()

	req := Request{
		Messages:    []Message{{Role: RoleUser, Content: "Reply with the single word ready."}},
		MaxTokens:   8,
		Temperature: g.cfg.Temperature,
	}

	for _, b := range g.backends {
		if ctx.Err() != nil {
			g.logger.Warn("llm warm-up cap reached", "skipped_backend", b.name)
			continue
		}
		start := time.Now()
		if _, err := g.completeOn(ctx, b, req); err != nil {
			g.logger.Warn("llm backend warm-up failed", "backend", b.name, "error", err)
			continue
		}
		g.logger.Info("llm backend warm",
			"backend", b.name, "duration_ms", time.Since(start).Milliseconds())
	}

	g.ready.Store(true)
	g.logger.Info("llm gateway ready", "backends", len(g.backends))
}

// Ready reports whether warm-up finished. Health checks report a warming
// gateway as degraded, not down.
func (g *Gateway) Ready() bool {
	return g.ready.Load()
}
