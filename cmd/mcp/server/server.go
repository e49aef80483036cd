// Package server provides the MCP server exposing Promptly prompts, versions,
// runs and projects as tools and resources.
package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/command"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/format"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "promptly"

// Server is the MCP server for Promptly.
type Server struct {
	repo      datasources.PromptRepository
	run       *command.RunPrompt
	mcpServer *server.MCPServer
	format    format.Format
	now       func() time.Time
}

// NewServer creates a new MCP server backed by repo. Tool results are
// rendered in outputFormat.
func NewServer(repo datasources.PromptRepository, outputFormat format.Format) *Server {
	s := &Server{
		repo:   repo,
		run:    command.NewRunPrompt(repo, repo),
		format: outputFormat,
		now:    time.Now,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		domain.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// RunStdio serves MCP over stdin and stdout until ctx is cancelled or stdin
// closes.
func (s *Server) RunStdio(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "starting MCP server", "transport", "stdio", "version", domain.Version)

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	err := stdio.Listen(ctx, stdin, stdout)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// HTTPHandler serves MCP over the streamable HTTP transport. Tool handlers
// run in the request context, so the router's logger and subject carry
// through.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcpServer, server.WithEndpointPath("/mcp"))
}

func (s *Server) result(ctx context.Context, v any) (*mcp.CallToolResult, error) {
	text, err := format.Render(ctx, v, s.format, "")
	if err != nil {
		return mcp.NewToolResultError(apierr.Render(err, apierr.RenderContext{})), nil
	}
	return mcp.NewToolResultText(text), nil
}

// toolError renders err for the calling agent. The failure is reported in
// the result with isError set rather than as a protocol error.
func toolError(ctx context.Context, err error, rc apierr.RenderContext) *mcp.CallToolResult {
	domain.LoggerFromContext(ctx).WarnContext(ctx, "tool call failed",
		"operation", rc.Operation, "entity_type", rc.EntityType, "entity_id", rc.EntityID,
		"kind", apierr.Classify(err, 0).Kind, "error", err)
	return mcp.NewToolResultError(apierr.Render(err, rc))
}
