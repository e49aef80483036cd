// Package main provides the entry point for the Promptly MCP server.
//
// The server lets AI agents (Claude Code, Cursor, Cline, Windsurf) list,
// edit, publish and run Promptly prompts.
//
// Configuration:
//
//	PROMPTLY_API_KEY           - API key (required; also read from .env, the global config file or the keychain)
//	PROMPTLY_BASE_URL          - Base URL of the API (default: https://api.promptly.dev)
//	PROMPTLY_MCP_TRANSPORT     - stdio (default) or http
//	PROMPTLY_MCP_OUTPUT_FORMAT - toon (default) or json
//	LOG_LEVEL, LOG_FORMAT      - logger settings; logs always go to stderr
//
// Usage with Claude Code:
//
//	claude mcp add promptly --transport stdio \
//	  --env PROMPTLY_API_KEY=pk_xxx \
//	  -- /path/to/promptly-mcp
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jbeshir/promptly-mcp/cmd/mcp/server"
	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/app"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/format"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := app.LoggerFromEnv(ctx, os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to setup logger: %v\n", err)
		os.Exit(1)
	}
	ctx = domain.ContextWithLogger(ctx, logger)

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	logger := domain.LoggerFromContext(ctx)

	shutdownTelemetry, err := app.SetupTelemetry(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "unable to setup telemetry", "error", err)
		return 1
	}
	defer func() {
		if err := shutdownTelemetry(context.WithoutCancel(ctx)); err != nil {
			logger.WarnContext(ctx, "flushing telemetry", "error", err)
		}
	}()

	components, err := app.Setup(ctx, func(repo datasources.PromptRepository, f format.Format) app.MCPServer {
		return server.NewServer(repo, f)
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to setup components", "error", err)
		if _, ok := apierr.As(err); ok {
			_, _ = fmt.Fprintln(os.Stderr, apierr.Render(err, apierr.RenderContext{}))
		}
		return 1
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	for _, c := range components {
		grp.Go(func() error {
			return c.Run(grpCtx)
		})
	}

	if err = grp.Wait(); err != nil {
		logger.ErrorContext(ctx, "shutting down due to error", "error", err)
		return 1
	}
	return 0
}
