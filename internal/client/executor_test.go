package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_RequestShape(t *testing.T) {
	var got *http.Request
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		writeJSON(t, w, http.StatusOK, map[string]any{"ok": true})
	})

	var out map[string]any
	err := c.Do(context.Background(), "/things", RequestOptions{
		Method:    http.MethodPost,
		Body:      map[string]string{"a": "b"},
		Headers:   map[string]string{"X-Extra": "1"},
		Operation: "things",
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/v1/things", got.URL.Path)
	assert.Equal(t, "Bearer pk_test", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(got.Header.Get("User-Agent"), "promptly-mcp/"))
	assert.Len(t, got.Header.Get("X-Request-ID"), 36)
	assert.Equal(t, "1", got.Header.Get("X-Extra"))
	assert.JSONEq(t, `{"a":"b"}`, gotBody)
	assert.Equal(t, map[string]any{"ok": true}, out)
}

func TestClient_Do_NoContentTypeWithoutBody(t *testing.T) {
	var contentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Do(context.Background(), "/x", RequestOptions{}, nil))
	assert.Empty(t, contentType)
}

func TestClient_Do_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		body        string
		retryAfter  string
		wantKind    apierr.Kind
		wantMessage string
		wantCode    string
		wantDetails any
		wantRetry   time.Duration
	}{
		{
			name:        "structured_payload",
			status:      http.StatusUnprocessableEntity,
			body:        `{"name":"ValidationError","errorCode":"E_TEMPLATE","message":"template is empty","details":{"field":"template"}}`,
			wantKind:    apierr.KindValidation,
			wantMessage: "template is empty",
			wantCode:    "E_TEMPLATE",
			wantDetails: map[string]any{"field": "template"},
		},
		{
			name:        "unparseable_body_synthesized",
			status:      http.StatusBadGateway,
			body:        "<html>upstream exploded</html>",
			wantKind:    apierr.KindServer,
			wantMessage: "Bad Gateway: <html>upstream exploded</html>",
			wantCode:    "HTTP_502",
		},
		{
			name:        "payload_without_message_synthesized",
			status:      http.StatusNotFound,
			body:        `{"name":"NotFound"}`,
			wantKind:    apierr.KindNotFound,
			wantMessage: `Not Found: {"name":"NotFound"}`,
			wantCode:    "HTTP_404",
		},
		{
			name:        "empty_body_synthesized",
			status:      http.StatusUnauthorized,
			wantKind:    apierr.KindAuthInvalid,
			wantMessage: "Unauthorized",
			wantCode:    "HTTP_401",
		},
		{
			name:        "retry_after_seconds",
			status:      http.StatusTooManyRequests,
			body:        `{"message":"slow down"}`,
			retryAfter:  "3",
			wantKind:    apierr.KindRateLimited,
			wantMessage: "slow down",
			wantRetry:   3 * time.Second,
		},
		{
			name:        "unlisted_status_kept",
			status:      http.StatusConflict,
			body:        `{"message":"already exists"}`,
			wantKind:    apierr.KindUnexpected,
			wantMessage: "already exists",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				if tc.retryAfter != "" {
					w.Header().Set("Retry-After", tc.retryAfter)
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			err := c.Do(context.Background(), "/x", RequestOptions{}, nil)
			e, ok := apierr.As(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantKind, e.Kind)
			assert.Equal(t, tc.status, e.Status)
			assert.Equal(t, tc.wantMessage, e.Message)
			assert.Equal(t, tc.wantCode, e.Code)
			assert.Equal(t, tc.wantDetails, e.Details)
			assert.Equal(t, tc.wantRetry, e.RetryAfter)
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "empty", value: "", want: 0},
		{name: "seconds", value: "120", want: 2 * time.Minute},
		{name: "zero_seconds", value: "0", want: 0},
		{name: "negative_seconds", value: "-5", want: 0},
		{name: "http_date", value: now.Add(30 * time.Second).Format(http.TimeFormat), want: 30 * time.Second},
		{name: "http_date_in_past", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseRetryAfter(tc.value, now))
		})
	}
}

func TestClient_Do_EmptySuccess(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "no_content", handler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}},
		{name: "zero_content_length", handler: func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusOK)
		}},
		{name: "whitespace_body", handler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("\n"))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, tc.handler)

			var m map[string]any
			require.NoError(t, c.Do(context.Background(), "/x", RequestOptions{}, &m))
			assert.NotNil(t, m)
			assert.Empty(t, m)

			var p domain.Prompt
			require.NoError(t, c.Do(context.Background(), "/x", RequestOptions{}, &p))
			assert.Equal(t, domain.Prompt{}, p)
		})
	}
}

func TestClient_Do_Timeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}, WithTimeout(20*time.Millisecond))

	start := time.Now()
	err := c.Do(context.Background(), "/slow", RequestOptions{}, nil)
	assert.Equal(t, apierr.KindTimeout, apierr.KindOf(err))
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_Do_PerCallTimeoutOverride(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, WithTimeout(time.Minute))

	err := c.Do(context.Background(), "/slow", RequestOptions{Timeout: 20 * time.Millisecond}, nil)
	assert.Equal(t, apierr.KindTimeout, apierr.KindOf(err))
}

func TestClient_Do_CallerCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Do(ctx, "/x", RequestOptions{}, nil)
	assert.Equal(t, apierr.KindUnexpected, apierr.KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Do_NetworkError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	})

	err := c.Do(context.Background(), "/x", RequestOptions{}, nil)
	assert.Equal(t, apierr.KindNetwork, apierr.KindOf(err))
}

func TestClient_Do_SchemaViolation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"name": "missing id"})
	})

	var p domain.Prompt
	err := c.Do(context.Background(), "/prompts/p1", RequestOptions{Operation: OpGetPrompt}, &p)

	e, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, apierr.KindUnexpected, e.Kind)
	assert.Equal(t, "unexpected response shape", e.Message)
	details, ok := e.Details.([]string)
	require.True(t, ok)
	assert.NotEmpty(t, details)
}

func TestClient_Do_Metrics(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "p1", "name": "n"})
	})

	_, err := c.GetPrompt(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.requests.WithLabelValues(OpGetPrompt, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.requests.WithLabelValues(OpGetPrompt, "server_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.retries.WithLabelValues("server_error")))
}
