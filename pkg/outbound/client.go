// Package outbound provides the resilient HTTP client used for every call
// to a collaborator service: per-service connection pools, deadline
// ceilings, bounded retries for idempotent requests, and circuit breaking.
package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
)

// Client calls one collaborator service. All requests share the service's
// connection pool and circuit breaker.
type Client struct {
	service        string
	baseURL        string
	defaultTimeout time.Duration
	httpClient     *http.Client
	breaker        *Breaker
	cfg            *config.OutboundConfig
	logger         *slog.Logger
}

// NewClient creates a client for a collaborator service. baseURL must be
// absolute; defaultTimeout is the per-request ceiling used when a Request
// does not carry its own.
func NewClient(service, baseURL string, defaultTimeout time.Duration, cfg *config.OutboundConfig, breaker *Breaker) *Client {
	return &Client{
		service:        service,
		baseURL:        strings.TrimRight(baseURL, "/"),
		defaultTimeout: defaultTimeout,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxConnsPerHost:     cfg.MaxConnsPerHost,
				MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		breaker: breaker,
		cfg:     cfg,
		logger:  slog.With("service", service),
	}
}

// Service returns the collaborator name this client talks to.
func (c *Client) Service() string { return c.service }

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Breaker exposes the circuit breaker for status reporting.
func (c *Client) Breaker() *Breaker { return c.breaker }

// Request describes one outbound call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header

	// Body is JSON-encoded when non-nil.
	Body any

	// Timeout overrides the client's default per-request ceiling.
	Timeout time.Duration

	// IdempotencyKey marks a mutating request as safe to retry. Sent as
	// the Idempotency-Key header.
	IdempotencyKey string
}

// Response is the decoded-enough result of a call that reached the service.
type Response struct {
	Status int
	Body   []byte
}

// DecodeJSON unmarshals the response body.
func (r *Response) DecodeJSON(v any) error {
	if len(r.Body) == 0 {
		return fault.Internal(fmt.Sprintf("empty response body (HTTP %d)", r.Status))
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fault.Wrap(fault.KindInternal, "decode response", err)
	}
	return nil
}

// Do executes the request with circuit breaking and, for idempotent
// requests, bounded exponential-backoff retries. Returned errors are
// always *fault.Error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	idempotent := req.Method == http.MethodGet || req.Method == http.MethodHead ||
		req.IdempotencyKey != ""

	var bo backoff.BackOff = &backoff.StopBackOff{}
	if idempotent {
		eb := backoff.NewExponentialBackOff()
		eb.InitialInterval = c.cfg.RetryBase
		eb.MaxInterval = c.cfg.RetryMax
		eb.Multiplier = 2.0
		eb.Reset()
		bo = backoff.WithContext(backoff.WithMaxRetries(eb, uint64(c.cfg.RetryAttempts-1)), ctx)
	}

	attempt := 0
	for {
		attempt++

		if !c.breaker.Allow() {
			return nil, fault.CircuitOpen(fmt.Sprintf("%s circuit open", c.service))
		}

		resp, err := c.attempt(ctx, req)
		c.record(resp, err)

		if err == nil {
			return resp, nil
		}

		next := backoff.Stop
		if fault.Retryable(fault.KindOf(err)) {
			next = bo.NextBackOff()
		}
		if next == backoff.Stop {
			return resp, err
		}

		c.logger.Debug("Retrying outbound request",
			"method", req.Method, "path", req.Path, "attempt", attempt, "backoff", next)
		select {
		case <-ctx.Done():
			return nil, fault.Wrap(fault.KindCancelled, "request cancelled", ctx.Err())
		case <-time.After(next):
		}
	}
}

// attempt performs a single HTTP round trip and maps the outcome to the
// fault taxonomy.
func (c *Client) attempt(ctx context.Context, req *Request) (*Response, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportFault(c.service, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 4<<20))
	if err != nil {
		return nil, transportFault(c.service, err)
	}

	resp := &Response{Status: httpResp.StatusCode, Body: body}
	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return resp, nil
	}
	return resp, statusFault(c.service, httpResp.StatusCode, body)
}

func (c *Client) build(ctx context.Context, req *Request) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fault.Wrap(fault.KindInternal, "encode request body", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fault.Wrap(fault.KindInternal, "create request", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}
	return httpReq, nil
}

// record updates the breaker. Responses from the service — including
// client errors — count as contact; only server faults, timeouts, and
// transport failures count against the circuit.
func (c *Client) record(resp *Response, err error) {
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	switch fault.KindOf(err) {
	case fault.KindTimeout, fault.KindUnavailable, fault.KindInternal:
		if resp != nil && resp.Status > 0 && resp.Status < 500 {
			c.breaker.RecordSuccess()
			return
		}
		c.breaker.RecordFailure()
	case fault.KindCancelled:
		// Caller went away; says nothing about service health.
	default:
		c.breaker.RecordSuccess()
	}
}

// Get performs a GET and decodes a JSON response into out (when non-nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return err
	}
	if out != nil {
		return resp.DecodeJSON(out)
	}
	return nil
}

// Post performs a non-retried POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, &Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// PostIdempotent performs a POST carrying an Idempotency-Key, making it
// eligible for retries.
func (c *Client) PostIdempotent(ctx context.Context, path, key string, body, out any) error {
	return c.send(ctx, &Request{Method: http.MethodPost, Path: path, Body: body, IdempotencyKey: key}, out)
}

// Put performs a non-retried PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, &Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

// Delete performs a non-retried DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.send(ctx, &Request{Method: http.MethodDelete, Path: path}, nil)
}

func (c *Client) send(ctx context.Context, req *Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out != nil {
		return resp.DecodeJSON(out)
	}
	return nil
}

// errorEnvelope is the error shape collaborator services respond with.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusFault maps a non-2xx response to the fault taxonomy, preferring
// the service's own error message when the body carries one.
func statusFault(service string, status int, body []byte) *fault.Error {
	msg := fmt.Sprintf("%s returned HTTP %d", service, status)
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			msg = envelope.Message
		} else if envelope.Error != "" {
			msg = envelope.Error
		}
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fault.Invalid(msg)
	case http.StatusUnauthorized:
		return fault.Unauthorized(msg)
	case http.StatusForbidden:
		return fault.Forbidden(msg)
	case http.StatusNotFound:
		return fault.NotFound(msg)
	case http.StatusConflict:
		return fault.Conflict(msg)
	case http.StatusRequestTimeout:
		return fault.Timeout(msg)
	case http.StatusTooManyRequests:
		return fault.Unavailable(msg)
	case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported:
		// Permanent server-side conditions; retrying cannot help.
		return fault.Internal(msg)
	default:
		if status >= 500 {
			return fault.Unavailable(msg)
		}
		return fault.Internal(msg)
	}
}

// transportFault maps connection and deadline errors.
func transportFault(service string, err error) *fault.Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fault.Wrap(fault.KindTimeout, fmt.Sprintf("%s timed out", service), err)
	case errors.Is(err, context.Canceled):
		return fault.Wrap(fault.KindCancelled, fmt.Sprintf("%s call cancelled", service), err)
	default:
		return fault.Wrap(fault.KindUnavailable, fmt.Sprintf("%s unreachable", service), err)
	}
}
