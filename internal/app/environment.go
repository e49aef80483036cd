package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/domain"
)

// GetEnvAsString returns the variable's value, or fallback when it is unset
// or empty.
func GetEnvAsString(_ context.Context, name, fallback string) string {
	s, exists := os.LookupEnv(name)
	if !exists || strings.TrimSpace(s) == "" {
		return fallback
	}

	return strings.TrimSpace(s)
}

func parseError(ctx context.Context, name, value, want string) error {
	logger := domain.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "unable to parse environment variable as "+want,
		"variable_name", name,
		"variable_value", value,
	)
	return fmt.Errorf("unable to parse environment variable as %s [%s]: %s", want, name, value)
}

func GetEnvAsInt(ctx context.Context, name string, fallback int) (int, error) {
	s := GetEnvAsString(ctx, name, "")
	if s == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback, parseError(ctx, name, s, "integer")
	}

	return v, nil
}

func GetEnvAsFloat(ctx context.Context, name string, fallback float64) (float64, error) {
	s := GetEnvAsString(ctx, name, "")
	if s == "" {
		return fallback, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback, parseError(ctx, name, s, "number")
	}

	return v, nil
}

func GetEnvAsBoolean(ctx context.Context, name string, fallback bool) (bool, error) {
	s := GetEnvAsString(ctx, name, "")
	if s == "" {
		return fallback, nil
	}

	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return fallback, parseError(ctx, name, s, "boolean ('true'/'false')")
	}
}

func GetEnvAsDuration(ctx context.Context, name string, fallback time.Duration) (time.Duration, error) {
	s := GetEnvAsString(ctx, name, "")
	if s == "" {
		return fallback, nil
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		return fallback, parseError(ctx, name, s, "duration")
	}

	return duration, nil
}

// GetEnvAsStrings splits a comma-separated variable, dropping empty entries.
func GetEnvAsStrings(ctx context.Context, name string) []string {
	var out []string
	for _, part := range strings.Split(GetEnvAsString(ctx, name, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
