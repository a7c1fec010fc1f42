package fault

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "nil error has no kind",
			err:      nil,
			expected: KindNone,
		},
		{
			name:     "direct fault error",
			err:      Timeout("calendar router deadline"),
			expected: KindTimeout,
		},
		{
			name:     "wrapped fault error",
			err:      fmt.Errorf("dispatch: %w", CircuitOpen("reminders breaker open")),
			expected: KindCircuitOpen,
		},
		{
			name:     "doubly wrapped fault error",
			err:      fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", NotFound("episode"))),
			expected: KindNotFound,
		},
		{
			name:     "context deadline classifies as timeout",
			err:      fmt.Errorf("call: %w", context.DeadlineExceeded),
			expected: KindTimeout,
		},
		{
			name:     "context cancel classifies as cancelled",
			err:      context.Canceled,
			expected: KindCancelled,
		},
		{
			name:     "unclassified error is internal",
			err:      errors.New("boom"),
			expected: KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindUnavailable, "lists router unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unavailable")
	assert.Contains(t, err.Error(), "lists router unreachable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIs(t *testing.T) {
	assert.True(t, Is(Invalid("empty message"), KindInvalid))
	assert.False(t, Is(Invalid("empty message"), KindTimeout))
	assert.False(t, Is(nil, KindInternal))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(KindTimeout))
	assert.True(t, Retryable(KindUnavailable))
	assert.False(t, Retryable(KindInvalid))
	assert.False(t, Retryable(KindCancelled))
	assert.False(t, Retryable(KindCircuitOpen))
}
