package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/stewardhq/steward/pkg/fault"
)

const streamBufferSize = 64

// Stream runs one streaming completion through the chain. The returned
// channel is finite and single-consumer: content chunks, then exactly one
// terminal chunk (Done or Err), then close. Fallback to the next backend
// happens only before the first token reaches the consumer; a stream that
// already produced tokens is never restarted.
func (g *Gateway) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	if err := g.prepare(&req); err != nil {
		return nil, err
	}
	out := make(chan Chunk, streamBufferSize)
	go g.streamChain(ctx, req, out)
	return out, nil
}

func (g *Gateway) streamChain(ctx context.Context, req Request, out chan<- Chunk) {
	defer close(out)

	var lastErr error
	for i, b := range g.backends {
		if i == 0 && g.primaryCooling() {
			g.logger.Warn("skipping primary llm backend during OOM cooldown", "backend", b.name)
			continue
		}
		started, err := g.streamFrom(ctx, b, req, out)
		if err == nil {
			return
		}
		lastErr = err
		if i == 0 && looksOOM(err) {
			g.beginPrimaryCooldown(err)
		}
		if started || !shouldAdvance(err) || ctx.Err() != nil {
			g.finish(out, Chunk{Err: err})
			return
		}
		g.logger.Warn("llm backend failed before first token, advancing chain",
			"backend", b.name, "kind", string(fault.KindOf(err)), "error", err)
	}
	g.finish(out, Chunk{Err: g.exhausted(ctx, lastErr)})
}

// streamFrom runs one streaming attempt against a single backend. started
// reports whether any content chunk reached the consumer.
func (g *Gateway) streamFrom(ctx context.Context, b *backend, req Request, out chan<- Chunk) (bool, error) {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	httpReq, err := b.newRequest(reqCtx, req, true)
	if err != nil {
		return false, fault.Wrap(fault.KindInternal, "building llm request", err)
	}

	// The watchdog bounds backend silence: the full first-token budget up
	// front, then the shorter idle budget between chunks. Firing cancels
	// reqCtx, which force-closes the response body.
	var timedOut atomic.Bool
	watchdog := time.AfterFunc(g.cfg.FirstTokenTimeout, func() {
		timedOut.Store(true)
		cancel()
	})
	defer watchdog.Stop()

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return false, streamFault(ctx, b, err, timedOut.Load(), false)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return false, statusFault(b.name, resp.StatusCode, body)
	}

	started := false
	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		if data == "[DONE]" {
			break
		}

		var ev streamEvent
		if err := json.Unmarshal([]byte(data), &ev); err != nil {
			g.logger.Debug("skipping malformed stream chunk", "backend", b.name, "error", err)
			continue
		}
		for _, choice := range ev.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			// Consumer backpressure must not count against the backend's
			// idle budget.
			watchdog.Stop()
			if !g.emit(ctx, out, Chunk{Content: choice.Delta.Content}) {
				return started, requestFault(ctx, b.name, ctx.Err())
			}
			started = true
			watchdog.Reset(g.cfg.TokenIdleTimeout)
		}
	}
	watchdog.Stop()

	if err := sc.Err(); err != nil {
		return started, streamFault(ctx, b, err, timedOut.Load(), started)
	}
	if !started {
		return false, fault.Unavailable(b.name + " returned an empty stream")
	}

	// EOF without [DONE] still ends the answer; some backends close the
	// stream instead of sending the sentinel.
	g.logger.Debug("llm stream finished",
		"backend", b.name, "duration_ms", time.Since(start).Milliseconds())
	g.emit(ctx, out, Chunk{Done: true})
	return true, nil
}

// emit delivers a content chunk with backpressure, giving up when the
// caller's context ends.
func (g *Gateway) emit(ctx context.Context, out chan<- Chunk, c Chunk) bool {
	select {
	case out <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

// finish delivers a terminal chunk without blocking. The buffer makes the
// drop case reachable only when the consumer abandoned the channel.
func (g *Gateway) finish(out chan<- Chunk, c Chunk) {
	select {
	case out <- c:
	default:
	}
}

// streamFault classifies a failed stream read. Watchdog firings are
// timeouts even though they surface as cancellations on the wire.
func streamFault(ctx context.Context, b *backend, err error, timedOut, started bool) *fault.Error {
	switch {
	case timedOut && started:
		return fault.Wrap(fault.KindTimeout, b.name+" stalled mid-stream", err)
	case timedOut:
		return fault.Wrap(fault.KindTimeout, b.name+" produced no token in time", err)
	case ctx.Err() != nil:
		return requestFault(ctx, b.name, ctx.Err())
	default:
		return fault.Wrap(fault.KindUnavailable, b.name+" stream broke", err)
	}
}
