// Package fault defines the stable error taxonomy shared by every layer of
// the core. Collaborator failures, validation problems, and internal bugs
// are all classified into one of the kinds below so that experts, the
// dispatcher, the orchestrator, and the HTTP boundary agree on semantics
// without inspecting error strings.
package fault

import (
	"context"
	"errors"
	"fmt"
)

// Kind is a stable error classification. Values are wire-visible (they
// appear in API error envelopes and ActionResult payloads) and must not be
// renamed.
type Kind string

const (
	KindNone         Kind = ""
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindInvalid      Kind = "invalid"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindTimeout      Kind = "timeout"
	KindCircuitOpen  Kind = "circuit_open"
	KindCancelled    Kind = "cancelled"
	KindUnavailable  Kind = "unavailable"
	KindInternal     Kind = "internal"
)

// Error is a classified error. Message is safe to surface to API clients;
// Err carries the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error. A nil cause is allowed.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func Invalid(message string) *Error      { return New(KindInvalid, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Timeout(message string) *Error      { return New(KindTimeout, message) }
func CircuitOpen(message string) *Error  { return New(KindCircuitOpen, message) }
func Cancelled(message string) *Error    { return New(KindCancelled, message) }
func Unavailable(message string) *Error  { return New(KindUnavailable, message) }
func Internal(message string) *Error     { return New(KindInternal, message) }

// KindOf extracts the kind from an error chain. Context errors classify as
// timeout/cancelled even when produced outside this package; everything
// unclassified is internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCancelled
	}
	return KindInternal
}

// Is reports whether err classifies as the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether an error kind may be retried on an idempotent
// operation. Only timeouts and collaborator unavailability qualify.
func Retryable(kind Kind) bool {
	return kind == KindTimeout || kind == KindUnavailable
}
