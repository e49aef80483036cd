package apierr

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// FromStatus classifies an HTTP status code. Statuses without a dedicated
// kind become KindUnexpected with the original status kept.
func FromStatus(status int, message string) *Error {
	return &Error{Kind: kindForStatus(status), Status: status, Message: message}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthInvalid
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return KindServer
	default:
		return KindUnexpected
	}
}

// Phrases are matched in order against the lowercased error message, so the
// more specific groups come first ("invalid api key" must not land in
// validation).
var messagePatterns = []struct {
	kind    Kind
	phrases []string
}{
	{KindTimeout, []string{"timeout", "timed out", "deadline exceeded"}},
	{KindNetwork, []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"broken pipe",
		"fetch failed",
		"econnrefused",
		"enotfound",
		"eof",
	}},
	{KindRateLimited, []string{"rate limit", "too many requests", "quota"}},
	{KindNotFound, []string{"not found", "does not exist", "no such prompt"}},
	{KindAuthInvalid, []string{
		"unauthorized",
		"forbidden",
		"permission denied",
		"access denied",
		"invalid api key",
		"invalid token",
	}},
	{KindValidation, []string{"validation", "invalid", "required", "malformed"}},
}

// Classify maps an arbitrary error, plus an optional HTTP status, to an
// *Error. An *Error already in the chain is returned as is. Otherwise a
// non-zero status decides the kind, then timeouts, then message phrases.
// Anything left over is KindUnexpected with status 500.
func Classify(err error, status int) *Error {
	if err == nil {
		return nil
	}

	if e, ok := As(err); ok {
		return e
	}

	msg := err.Error()

	if status > 0 {
		e := FromStatus(status, msg)
		e.Cause = err
		return e
	}

	if isTimeout(err) {
		return &Error{Kind: KindTimeout, Message: msg, Cause: err}
	}

	lower := strings.ToLower(msg)
	for _, p := range messagePatterns {
		for _, phrase := range p.phrases {
			if strings.Contains(lower, phrase) {
				return &Error{Kind: p.kind, Message: msg, Cause: err}
			}
		}
	}

	return &Error{Kind: KindUnexpected, Status: http.StatusInternalServerError, Message: msg, Cause: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
