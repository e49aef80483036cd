package client

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
)

// Policy controls how WithRetry repeats a failing operation.
type Policy struct {
	RetryableKinds []apierr.Kind

	// MaxAttempts counts the first try. Values below 1 mean a single attempt.
	MaxAttempts int

	BaseDelay time.Duration
	MaxDelay  time.Duration

	// JitterFraction spreads each delay uniformly by ± this share of itself.
	JitterFraction float64

	// OnRetry is called before each sleep.
	OnRetry func(ctx context.Context, attempt int, err *apierr.Error, delay time.Duration)

	sleep func(ctx context.Context, d time.Duration) error
	rand  func() float64
}

func DefaultPolicy() Policy {
	return Policy{
		RetryableKinds: []apierr.Kind{
			apierr.KindRateLimited,
			apierr.KindServer,
			apierr.KindTimeout,
			apierr.KindNetwork,
		},
		MaxAttempts:    3,
		BaseDelay:      200 * time.Millisecond,
		MaxDelay:       8 * time.Second,
		JitterFraction: 0.25,
	}
}

func (p Policy) retryable(kind apierr.Kind) bool {
	return slices.Contains(p.RetryableKinds, kind)
}

// Backoff returns the delay to wait after the given failed attempt (1-based).
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := float64(p.BaseDelay) * math.Pow(2, float64(attempt-1))
	if p.MaxDelay > 0 && delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}

	if p.JitterFraction > 0 {
		random := p.rand
		if random == nil {
			random = rand.Float64
		}
		delay += (random()*2 - 1) * p.JitterFraction * delay
	}

	return time.Duration(max(delay, 0))
}

func (p Policy) wait(ctx context.Context, d time.Duration) error {
	if p.sleep != nil {
		return p.sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithRetry runs op until it succeeds, fails with a kind the policy does not
// retry, or runs out of attempts. Failures come back as the last classified
// *apierr.Error, unwrapped. A Retry-After hint on the failure replaces the
// computed backoff; a hint longer than MaxDelay ends the retries and the
// failure is returned with the hint intact.
func WithRetry[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(p.MaxAttempts, 1)

	for attempt := 1; ; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}

		last := apierr.Classify(err, 0)
		if !p.retryable(last.Kind) || attempt >= attempts {
			return zero, last
		}

		delay := p.Backoff(attempt)
		if last.RetryAfter > 0 {
			if p.MaxDelay > 0 && last.RetryAfter > p.MaxDelay {
				return zero, last
			}
			delay = last.RetryAfter
		}

		if p.OnRetry != nil {
			p.OnRetry(ctx, attempt, last, delay)
		}

		if err := p.wait(ctx, delay); err != nil {
			return zero, last
		}
	}
}
