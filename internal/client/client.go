// Package client is the resilient HTTP client for the Promptly REST API.
//
// Every typed operation goes through WithRetry and Do, so all of them share
// one timeout, retry, logging and error classification path.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/config"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	// APIPrefix is prepended to every endpoint.
	APIPrefix = "/api/v1"

	DefaultTimeout       = 30 * time.Second
	DefaultStreamTimeout = 5 * time.Minute
)

// Client is safe for concurrent use. It holds no mutable state beyond its
// metrics and rate limiter.
type Client struct {
	creds         config.Credentials
	httpClient    *http.Client
	timeout       time.Duration
	streamTimeout time.Duration
	policy        Policy
	limiter       *rate.Limiter
	registerer    prometheus.Registerer
	metrics       *metrics
	userAgent     string
	now           func() time.Time
}

var _ datasources.PromptRepository = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the default otelhttp-instrumented client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithStreamTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.streamTimeout = d
		}
	}
}

func WithRetryPolicy(p Policy) Option {
	return func(c *Client) { c.policy = p }
}

func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.policy.MaxAttempts = n
		}
	}
}

// WithRateLimit caps outbound requests per second. Zero disables the limit.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
}

// WithRegisterer registers the client metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) { c.registerer = reg }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a client from already-resolved credentials. It fails with
// AuthMissing when the API key is empty.
func New(creds config.Credentials, opts ...Option) (*Client, error) {
	if creds.APIKey == "" {
		return nil, apierr.New(apierr.KindAuthMissing, config.EnvAPIKey+" is not set")
	}
	if creds.BaseURL == "" {
		creds.BaseURL = config.DefaultBaseURL
	}

	c := &Client{
		creds:         creds,
		timeout:       DefaultTimeout,
		streamTimeout: DefaultStreamTimeout,
		policy:        DefaultPolicy(),
		userAgent:     "promptly-mcp/" + domain.Version,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	c.metrics = newMetrics(c.registerer)

	return c, nil
}

// NewFromResolver resolves credentials and client settings once, then builds
// the client. Options passed here override the resolved settings.
func NewFromResolver(ctx context.Context, r *config.Resolver, opts ...Option) (*Client, error) {
	creds, err := r.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := r.ClientSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading client settings: %w", err)
	}

	base := []Option{
		WithTimeout(settings.Timeout),
		WithStreamTimeout(settings.StreamTimeout),
		WithMaxAttempts(settings.MaxAttempts),
		WithRateLimit(settings.RateLimit),
	}

	return New(creds, append(base, opts...)...)
}

// Credentials returns the credentials the client was built with.
func (c *Client) Credentials() config.Credentials {
	return c.creds
}

func (c *Client) projectID(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return c.creds.ProjectID
}

// retryPolicy returns the client policy with logging and metrics attached.
func (c *Client) retryPolicy(operation string) Policy {
	p := c.policy
	next := p.OnRetry
	p.OnRetry = func(ctx context.Context, attempt int, err *apierr.Error, delay time.Duration) {
		c.metrics.retries.WithLabelValues(string(err.Kind)).Inc()
		domain.LoggerFromContext(ctx).DebugContext(ctx, "retrying promptly request",
			"operation", operation,
			"attempt", attempt,
			"error_kind", string(err.Kind),
			"delay_ms", delay.Milliseconds(),
		)
		if next != nil {
			next(ctx, attempt, err, delay)
		}
	}
	return p
}
