package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stewardhq/steward/pkg/fault"
)

// Wire format for POST {endpoint}/v1/chat/completions and its SSE stream.

const maxResponseBytes = 4 << 20

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Stop        []string  `json:"stop,omitempty"`
	Stream      bool      `json:"stream,omitempty"`
}

type chatResponse struct {
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type streamEvent struct {
	Choices []streamChoice `json:"choices"`
}

type streamChoice struct {
	Delta        streamDelta `json:"delta"`
	FinishReason string      `json:"finish_reason"`
}

type streamDelta struct {
	Content string `json:"content"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// newRequest builds the HTTP request for one backend. The request model,
// when unset, falls back to the backend's configured model.
func (b *backend) newRequest(ctx context.Context, req Request, stream bool) (*http.Request, error) {
	body := chatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stop:        req.Stop,
		Stream:      stream,
	}
	if body.Model == "" {
		body.Model = b.model
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.endpoint+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}
	if b.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	}
	return httpReq, nil
}

// statusFault maps a non-200 backend response to a classified error. The
// body detail is kept in the message so OOM-shaped failures stay
// recognizable.
func statusFault(backend string, status int, body []byte) *fault.Error {
	msg := fmt.Sprintf("%s returned HTTP %d", backend, status)
	if detail := errorDetail(body); detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fault.Invalid(msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		// A rejected key is a deployment problem, not a caller mistake.
		return fault.Internal(msg)
	case status == http.StatusRequestTimeout:
		return fault.Timeout(msg)
	case status == http.StatusTooManyRequests:
		return fault.Unavailable(msg)
	case status >= 500:
		return fault.Unavailable(msg)
	default:
		return fault.Internal(msg)
	}
}

// errorDetail pulls a human-readable message out of an error body,
// preferring the OpenAI error envelope over raw text.
func errorDetail(body []byte) string {
	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

// requestFault classifies transport-level failures. ctx carries the
// caller's cancellation state, which the wrapped error may not.
func requestFault(ctx context.Context, backend string, err error) *fault.Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fault.Wrap(fault.KindTimeout, backend+" timed out", err)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return fault.Wrap(fault.KindCancelled, backend+" call cancelled", err)
	default:
		return fault.Wrap(fault.KindUnavailable, backend+" unreachable", err)
	}
}

var oomMarkers = []string{"out of memory", "oom", "cuda"}

// looksOOM sniffs error text for out-of-memory shapes. Inference servers
// report OOM inconsistently, so this is substring matching on purpose.
func looksOOM(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range oomMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
