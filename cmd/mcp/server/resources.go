package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/docs"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/format"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	promptsURI      = "promptly://prompts"
	promptURIPrefix = promptsURI + "/"
	docsURIPrefix   = "promptly://docs/"
	markdownMIME    = "text/markdown"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(
		mcp.NewResource(
			promptsURI,
			"Prompts in the default project",
			mcp.WithResourceDescription("The first page of prompts in the configured project, "+
				"with names, IDs and when each was last updated."),
			mcp.WithMIMEType(markdownMIME),
		),
		s.handlePromptListResource,
	)

	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			promptURIPrefix+"{prompt_id}",
			"Individual Promptly prompt",
			mcp.WithTemplateDescription(
				"Fetch a prompt by its ID. Includes the template, model, variables, "+
					"tags and version pointers."),
			mcp.WithTemplateMIMEType(markdownMIME),
		),
		s.handlePromptResource,
	)

	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			docsURIPrefix+"{topic}",
			"Promptly documentation topic",
			mcp.WithTemplateDescription("Documentation topics: "+strings.Join(docs.Topics(), ", ")+"."),
			mcp.WithTemplateMIMEType(markdownMIME),
		),
		s.handleDocsResource,
	)
}

// renderedError carries the user-facing rendering of a failed resource read.
// The cause stays reachable through Unwrap but is not part of the message.
type renderedError struct {
	message string
	cause   error
}

func (e *renderedError) Error() string { return e.message }

func (e *renderedError) Unwrap() error { return e.cause }

func resourceError(ctx context.Context, err error, rc apierr.RenderContext) error {
	domain.LoggerFromContext(ctx).WarnContext(ctx, "resource read failed",
		"operation", rc.Operation, "entity_type", rc.EntityType, "entity_id", rc.EntityID,
		"kind", apierr.Classify(err, 0).Kind, "error", err)
	return &renderedError{message: apierr.Render(err, rc), cause: err}
}

func markdownContents(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: markdownMIME,
			Text:     text,
		},
	}
}

func (s *Server) handlePromptListResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	list, err := s.repo.ListPrompts(ctx, domain.ListPromptsParams{})
	if err != nil {
		return nil, resourceError(ctx, err, apierr.RenderContext{Operation: "list", EntityType: "prompts"})
	}

	return markdownContents(request.Params.URI, format.PromptListMarkdown(list, s.now())), nil
}

func (s *Server) handlePromptResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, promptURIPrefix) {
		return nil, fmt.Errorf("invalid prompt URI format: %s", uri)
	}

	promptID := strings.TrimPrefix(uri, promptURIPrefix)
	if promptID == "" || strings.Contains(promptID, "/") {
		return nil, fmt.Errorf("missing prompt_id in URI: %s", uri)
	}

	p, err := s.repo.GetPrompt(ctx, promptID)
	if err != nil {
		return nil, resourceError(ctx, err,
			apierr.RenderContext{Operation: "read", EntityType: "prompt", EntityID: promptID})
	}

	return markdownContents(uri, format.PromptMarkdown(p, s.now())), nil
}

func (s *Server) handleDocsResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, docsURIPrefix) {
		return nil, fmt.Errorf("invalid docs URI format: %s", uri)
	}

	topic := strings.TrimPrefix(uri, docsURIPrefix)
	text, err := docs.Get(topic)
	if err != nil {
		return nil, resourceError(ctx, err,
			apierr.RenderContext{Operation: "read", EntityType: "docs topic", EntityID: topic})
	}

	return markdownContents(uri, text), nil
}
