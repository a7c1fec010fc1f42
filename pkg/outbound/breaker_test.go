package outbound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := NewBreaker("lists", 3, time.Minute, nil)

	assert.Equal(t, BreakerClosed, b.State())
	assert.True(t, b.Allow())

	b.RecordFailure()
	b.RecordFailure()
	assert.Equal(t, BreakerClosed, b.State())
	assert.True(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())
	assert.False(t, b.Allow())
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker("lists", 3, time.Minute, nil)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()

	assert.Equal(t, BreakerClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())
}

func TestBreakerHalfOpenAdmitsSingleProbe(t *testing.T) {
	b := NewBreaker("lists", 1, 10*time.Millisecond, nil)

	b.RecordFailure()
	require.False(t, b.Allow())

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, BreakerHalfOpen, b.State())

	// First caller gets the probe; the rest keep failing fast.
	assert.True(t, b.Allow())
	assert.False(t, b.Allow())
	assert.False(t, b.Allow())

	b.RecordSuccess()
	assert.Equal(t, BreakerClosed, b.State())
	assert.True(t, b.Allow())
}

func TestBreakerReopensOnProbeFailure(t *testing.T) {
	b := NewBreaker("lists", 1, 10*time.Millisecond, nil)

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	require.True(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())
	assert.False(t, b.Allow())

	// A fresh cooldown admits another probe.
	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.Allow())
	b.RecordSuccess()
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreakerStateChangeCallback(t *testing.T) {
	type transition struct {
		from, to BreakerState
	}
	changes := make(chan transition, 8)

	b := NewBreaker("lists", 1, 10*time.Millisecond, func(service string, from, to BreakerState) {
		assert.Equal(t, "lists", service)
		changes <- transition{from, to}
	})

	b.RecordFailure()
	assert.Equal(t, transition{BreakerClosed, BreakerOpen}, waitTransition(t, changes))

	time.Sleep(20 * time.Millisecond)
	require.True(t, b.Allow())
	assert.Equal(t, transition{BreakerOpen, BreakerHalfOpen}, waitTransition(t, changes))

	b.RecordSuccess()
	assert.Equal(t, transition{BreakerHalfOpen, BreakerClosed}, waitTransition(t, changes))
}

func waitTransition[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case tr := <-ch:
		return tr
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for breaker transition")
		panic("unreachable")
	}
}

func TestBreakerReset(t *testing.T) {
	b := NewBreaker("lists", 1, time.Minute, nil)

	b.RecordFailure()
	require.Equal(t, BreakerOpen, b.State())

	b.Reset()
	assert.Equal(t, BreakerClosed, b.State())
	assert.True(t, b.Allow())
}
