package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the process logger. Output always goes to w, which is
// stderr in both binaries since stdout carries protocol and command output.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var logLevel slog.Level
	if level != "" {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL not recognised [%s]", level)
		}
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	switch strings.ToLower(format) {
	case "", "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("LOG_FORMAT not recognised [%s]", format)
	}
}

// LoggerFromEnv builds the logger from LOG_LEVEL and LOG_FORMAT.
func LoggerFromEnv(ctx context.Context, w io.Writer) (*slog.Logger, error) {
	return NewLogger(w, GetEnvAsString(ctx, "LOG_LEVEL", "info"), GetEnvAsString(ctx, "LOG_FORMAT", "json"))
}
