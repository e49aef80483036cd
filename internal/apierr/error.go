// Package apierr defines the classified error type returned by every call to
// the Promptly API, the classifier that produces it, and the renderer that
// turns it into a user-facing message.
//
// Every failure that crosses a package boundary is an *Error, so callers
// switch on Kind instead of inspecting messages or status codes.
package apierr

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind is the taxonomy tag of a classified error.
type Kind string

const (
	KindNetwork     Kind = "network_error"
	KindTimeout     Kind = "timeout_error"
	KindAuthMissing Kind = "auth_missing"
	KindAuthInvalid Kind = "auth_invalid"
	KindNotFound    Kind = "not_found"
	KindValidation  Kind = "validation_error"
	KindRateLimited Kind = "rate_limited"
	KindServer      Kind = "server_error"
	KindUnexpected  Kind = "unexpected_error"
)

// Retryable reports whether failures of this kind are transient.
func (k Kind) Retryable() bool {
	switch k {
	case KindNetwork, KindTimeout, KindRateLimited, KindServer:
		return true
	default:
		return false
	}
}

// Error is a classified failure. It is built once at the point of failure and
// never mutated afterwards.
type Error struct {
	Kind Kind

	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	Message string

	// Code is the upstream errorCode field, when the response carried one.
	Code string

	// Details holds the upstream details field or local diagnostic data.
	Details any

	// RetryAfter is the server's requested delay before the next attempt.
	RetryAfter time.Duration

	Cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Status > 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error of the given kind with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind that keeps cause for errors.Is/As.
func Wrap(kind Kind, message string, cause error) *Error {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there
// is none.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}
