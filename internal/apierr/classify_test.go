package apierr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	cases := []struct {
		name     string
		statuses []int
		wantKind Kind
	}{
		{name: "auth_invalid", statuses: []int{401, 403}, wantKind: KindAuthInvalid},
		{name: "not_found", statuses: []int{404}, wantKind: KindNotFound},
		{name: "rate_limited", statuses: []int{429}, wantKind: KindRateLimited},
		{name: "server_error", statuses: []int{502, 503, 504}, wantKind: KindServer},
		{name: "validation", statuses: []int{400, 422}, wantKind: KindValidation},
		{name: "unlisted_statuses", statuses: []int{402, 405, 409, 410, 418, 500, 501, 505}, wantKind: KindUnexpected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, status := range tc.statuses {
				e := FromStatus(status, "boom")
				assert.Equal(t, tc.wantKind, e.Kind, "status %d", status)
				assert.Equal(t, status, e.Status, "status %d", status)
				assert.Equal(t, "boom", e.Message)
			}
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o wait" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		status     int
		wantKind   Kind
		wantStatus int
	}{
		{name: "status_takes_precedence", err: errors.New("connection refused"), status: 404,
			wantKind: KindNotFound, wantStatus: 404},
		{name: "deadline_exceeded", err: fmt.Errorf("doing call: %w", context.DeadlineExceeded),
			wantKind: KindTimeout},
		{name: "net_timeout", err: timeoutErr{}, wantKind: KindTimeout},
		{name: "network_phrase", err: errors.New("dial tcp: lookup api: no such host"), wantKind: KindNetwork},
		{name: "rate_limit_phrase", err: errors.New("Too Many Requests, slow down"), wantKind: KindRateLimited},
		{name: "not_found_phrase", err: errors.New("prompt does not exist"), wantKind: KindNotFound},
		{name: "permission_phrase", err: errors.New("Invalid API key supplied"), wantKind: KindAuthInvalid},
		{name: "validation_phrase", err: errors.New("name is required"), wantKind: KindValidation},
		{name: "fallback_unexpected", err: errors.New("something odd"), wantKind: KindUnexpected,
			wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Classify(tc.err, tc.status)
			require.NotNil(t, e)
			assert.Equal(t, tc.wantKind, e.Kind)
			assert.Equal(t, tc.wantStatus, e.Status)
			assert.ErrorIs(t, e, tc.err)
		})
	}
}

func TestClassify_ReturnsExistingError(t *testing.T) {
	original := FromStatus(503, "upstream down")
	wrapped := fmt.Errorf("listing prompts: %w", original)

	assert.Same(t, original, Classify(wrapped, 0))
	assert.Same(t, original, Classify(wrapped, 404))
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil, 500))
}

func TestKind_Retryable(t *testing.T) {
	retryable := []Kind{KindNetwork, KindTimeout, KindRateLimited, KindServer}
	permanent := []Kind{KindAuthMissing, KindAuthInvalid, KindNotFound, KindValidation, KindUnexpected}

	for _, k := range retryable {
		assert.True(t, k.Retryable(), k)
	}
	for _, k := range permanent {
		assert.False(t, k.Retryable(), k)
	}
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "server_error (HTTP 503): maintenance", FromStatus(503, "maintenance").Error())
	assert.Equal(t, "auth_missing", New(KindAuthMissing, "").Error())
	assert.Equal(t, "network_error: dialing: refused", Wrap(KindNetwork, "dialing", errors.New("refused")).Error())
}
