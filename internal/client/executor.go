package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

const (
	maxErrorBodyBytes = 1 << 20
	maxSyntheticBody  = 512
)

// RequestOptions describe one call. The zero value is a GET with the client
// timeout.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string

	// Timeout overrides the client timeout for this call when non-zero.
	Timeout time.Duration

	// Operation names the call site in logs and metrics and selects the
	// response schema.
	Operation string
}

type errorPayload struct {
	Name      string `json:"name"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
}

// Do performs a single attempt against BaseURL + APIPrefix + endpoint and
// decodes a successful JSON body into out. Empty successful bodies leave out
// at its zero value, except *map[string]any which becomes an empty map. Every
// failure is an *apierr.Error.
func (c *Client) Do(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	if opts.Method == "" {
		opts.Method = http.MethodGet
	}
	if opts.Timeout <= 0 {
		opts.Timeout = c.timeout
	}
	if opts.Operation == "" {
		opts.Operation = "request"
	}

	start := time.Now()
	requestID := uuid.NewString()
	status, err := c.do(ctx, endpoint, opts, requestID, out)
	c.observe(ctx, opts, endpoint, requestID, status, time.Since(start), err)

	return err
}

func (c *Client) do(ctx context.Context, endpoint string, opts RequestOptions, requestID string, out any) (int, error) {
	if err := c.waitForLimiter(ctx); err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := c.newRequest(ctx, opts.Method, endpoint, opts.Body, opts.Headers, requestID)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, c.errorFromResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, classifyTransportError(err)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		setEmpty(out)
		return resp.StatusCode, nil
	}

	if err := validateResponse(opts.Operation, resp.StatusCode, data); err != nil {
		return resp.StatusCode, err
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			e := apierr.Wrap(apierr.KindUnexpected, "decoding response", err)
			e.Status = resp.StatusCode
			return resp.StatusCode, e
		}
	}

	return resp.StatusCode, nil
}

func (c *Client) waitForLimiter(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return classifyTransportError(ctx.Err())
		}
		return apierr.Wrap(apierr.KindRateLimited, "waiting for local rate limit", err)
	}
	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, endpoint string,
	body any,
	headers map[string]string,
	requestID string,
) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apierr.Wrap(apierr.KindValidation, "encoding request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.creds.BaseURL+APIPrefix+endpoint, reader)
	if err != nil {
		return nil, apierr.Wrap(apierr.KindUnexpected, "creating request", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.creds.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// errorFromResponse reads a non-2xx response. Bodies that are not the
// standard error payload get a synthetic one built from the status.
func (c *Client) errorFromResponse(resp *http.Response) *apierr.Error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
		payload = syntheticPayload(resp.StatusCode, raw)
	}

	e := apierr.FromStatus(resp.StatusCode, payload.Message)
	e.Code = payload.ErrorCode
	e.Details = payload.Details
	e.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), c.now())
	return e
}

func syntheticPayload(status int, raw []byte) errorPayload {
	text := http.StatusText(status)
	if text == "" {
		text = "HTTP status " + strconv.Itoa(status)
	}

	msg := text
	if body := strings.TrimSpace(string(raw)); body != "" {
		if len(body) > maxSyntheticBody {
			body = body[:maxSyntheticBody] + "..."
		}
		msg = text + ": " + body
	}

	return errorPayload{
		Name:      "HTTPError",
		ErrorCode: "HTTP_" + strconv.Itoa(status),
		Message:   msg,
	}
}

// parseRetryAfter accepts delta-seconds or an HTTP-date. Anything else, or a
// date in the past, yields zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}

	if t, err := http.ParseTime(value); err == nil {
		if d := t.Sub(now); d > 0 {
			return d
		}
	}

	return 0
}

func setEmpty(out any) {
	if m, ok := out.(*map[string]any); ok && m != nil {
		*m = map[string]any{}
	}
}

// classifyTransportError maps failures that happened without a response.
// Caller cancellation is not a timeout and is never retried.
func classifyTransportError(err error) *apierr.Error {
	if e, ok := apierr.As(err); ok {
		return e
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apierr.Wrap(apierr.KindTimeout, "request timed out", err)
	case errors.Is(err, context.Canceled):
		return apierr.Wrap(apierr.KindUnexpected, "request cancelled", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apierr.Wrap(apierr.KindTimeout, "request timed out", err)
	}

	return apierr.Wrap(apierr.KindNetwork, "calling promptly api", err)
}

func (c *Client) observe(
	ctx context.Context,
	opts RequestOptions,
	endpoint, requestID string,
	status int,
	elapsed time.Duration,
	err error,
) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = string(apierr.KindOf(err))
	}
	c.metrics.requests.WithLabelValues(opts.Operation, outcome).Inc()
	c.metrics.duration.WithLabelValues(opts.Operation).Observe(elapsed.Seconds())

	logger := domain.LoggerFromContext(ctx)
	attrs := []any{
		"operation", opts.Operation,
		"method", opts.Method,
		"path", pathOnly(endpoint),
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
		"request_id", requestID,
	}

	logger.DebugContext(ctx, "promptly request", attrs...)
	if err != nil {
		logger.WarnContext(ctx, "promptly request failed", append(attrs, "error", err)...)
	}
}

// pathOnly drops the query string, which may carry search terms.
func pathOnly(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}
