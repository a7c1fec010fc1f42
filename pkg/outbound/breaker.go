package outbound

import (
	"sync"
	"time"
)

// BreakerState is the circuit state of one downstream service.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half-open"
)

// StateChangeFunc observes breaker transitions (for ops notifications).
// Called outside the breaker lock.
type StateChangeFunc func(service string, from, to BreakerState)

// Breaker is a per-service circuit breaker. Consecutive failures open the
// circuit; while open, calls fail fast. After the cooldown a single probe
// request is admitted: success closes the circuit, failure reopens it for
// another cooldown.
type Breaker struct {
	service   string
	threshold int
	cooldown  time.Duration
	onChange  StateChangeFunc

	mu          sync.Mutex
	state       BreakerState
	failures    int
	openedAt    time.Time
	probeActive bool
}

// NewBreaker creates a closed breaker for the named service.
func NewBreaker(service string, threshold int, cooldown time.Duration, onChange StateChangeFunc) *Breaker {
	return &Breaker{
		service:   service,
		threshold: threshold,
		cooldown:  cooldown,
		onChange:  onChange,
		state:     BreakerClosed,
	}
}

// Allow reports whether a call may proceed. When the cooldown has elapsed
// on an open circuit, the first caller is admitted as the half-open probe
// and subsequent callers keep failing fast until the probe resolves.
func (b *Breaker) Allow() bool {
	b.mu.Lock()

	switch b.state {
	case BreakerClosed:
		b.mu.Unlock()
		return true

	case BreakerOpen:
		if time.Since(b.openedAt) < b.cooldown {
			b.mu.Unlock()
			return false
		}
		b.setStateLocked(BreakerHalfOpen)
		b.probeActive = true
		b.mu.Unlock()
		return true

	case BreakerHalfOpen:
		if b.probeActive {
			b.mu.Unlock()
			return false
		}
		b.probeActive = true
		b.mu.Unlock()
		return true

	default:
		b.mu.Unlock()
		return true
	}
}

// RecordSuccess closes the circuit and clears the failure count.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	b.failures = 0
	b.probeActive = false
	if b.state != BreakerClosed {
		b.setStateLocked(BreakerClosed)
	}
	b.mu.Unlock()
}

// RecordFailure counts a failure. In the closed state the circuit opens
// once the threshold is reached; a failed half-open probe reopens it for a
// fresh cooldown.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()

	switch b.state {
	case BreakerHalfOpen:
		b.probeActive = false
		b.openedAt = time.Now()
		b.setStateLocked(BreakerOpen)

	case BreakerClosed:
		b.failures++
		if b.failures >= b.threshold {
			b.openedAt = time.Now()
			b.setStateLocked(BreakerOpen)
		}

	case BreakerOpen:
		// Late failure from a call admitted before the circuit opened.
	}

	b.mu.Unlock()
}

// State returns the current state, accounting for an elapsed cooldown.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == BreakerOpen && time.Since(b.openedAt) >= b.cooldown {
		return BreakerHalfOpen
	}
	return b.state
}

// Reset forces the breaker closed. Used by the probe admin endpoint.
func (b *Breaker) Reset() {
	b.mu.Lock()
	b.failures = 0
	b.probeActive = false
	if b.state != BreakerClosed {
		b.setStateLocked(BreakerClosed)
	}
	b.mu.Unlock()
}

// setStateLocked transitions state and schedules the change callback.
// Caller holds b.mu; the callback runs on its own goroutine so notifiers
// can block without holding up calls.
func (b *Breaker) setStateLocked(to BreakerState) {
	from := b.state
	b.state = to
	if b.onChange != nil && from != to {
		go b.onChange(b.service, from, to)
	}
}
