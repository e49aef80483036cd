package config

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// ClientSettings tune the outbound API client.
type ClientSettings struct {
	Timeout       time.Duration
	StreamTimeout time.Duration
	MaxAttempts   int

	// RateLimit is in requests per second. Zero means unlimited.
	RateLimit float64
}

func DefaultClientSettings() ClientSettings {
	return ClientSettings{
		Timeout:       30 * time.Second,
		StreamTimeout: 5 * time.Minute,
		MaxAttempts:   3,
	}
}

// ClientSettings reads the tuning keys, falling back to defaults for any that
// are unset.
func (r *Resolver) ClientSettings(ctx context.Context) (ClientSettings, error) {
	if err := r.load(ctx); err != nil {
		return ClientSettings{}, err
	}

	s := DefaultClientSettings()

	if v, ok := r.Lookup(ctx, EnvTimeout); ok {
		d, err := parsePositiveDuration(v)
		if err != nil {
			return s, fmt.Errorf("parsing %s: %w", EnvTimeout, err)
		}
		s.Timeout = d
	}

	if v, ok := r.Lookup(ctx, EnvStreamTimeout); ok {
		d, err := parsePositiveDuration(v)
		if err != nil {
			return s, fmt.Errorf("parsing %s: %w", EnvStreamTimeout, err)
		}
		s.StreamTimeout = d
	}

	if v, ok := r.Lookup(ctx, EnvMaxAttempts); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return s, fmt.Errorf("parsing %s: want a positive integer, got %q", EnvMaxAttempts, v)
		}
		s.MaxAttempts = n
	}

	if v, ok := r.Lookup(ctx, EnvRateLimit); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return s, fmt.Errorf("parsing %s: want a non-negative number, got %q", EnvRateLimit, v)
		}
		s.RateLimit = f
	}

	return s, nil
}

// parsePositiveDuration accepts Go durations ("45s") and bare seconds ("45").
func parsePositiveDuration(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		secs, convErr := strconv.Atoi(v)
		if convErr != nil {
			return 0, err
		}
		d = time.Duration(secs) * time.Second
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", v)
	}
	return d, nil
}
