package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/command"
	"github.com/jbeshir/promptly-mcp/internal/docs"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_prompts",
		mcp.WithDescription("List prompts in a Promptly project, newest first. Supports text search and pagination."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("project_id",
			mcp.Description("Project to list (default: the configured PROMPTLY_PROJECT_ID)"),
		),
		mcp.WithString("search",
			mcp.Description("Only return prompts whose name or description matches this text"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
			mcp.Min(1),
		),
		mcp.WithNumber("page_size",
			mcp.Description(fmt.Sprintf("Number of prompts per page (default: %d, max: %d)",
				domain.DefaultPageSize, domain.MaxPageSize)),
			mcp.Max(domain.MaxPageSize),
			mcp.Min(1),
		),
	), s.handleListPrompts)

	s.mcpServer.AddTool(mcp.NewTool("get_prompt",
		mcp.WithDescription("Get a prompt by ID, including its template, variables and version pointers."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("prompt_id",
			mcp.Required(),
			mcp.Description("The ID of the prompt to retrieve"),
		),
	), s.handleGetPrompt)

	s.mcpServer.AddTool(mcp.NewTool("create_prompt",
		mcp.WithDescription("Create a new prompt. Variables are written in the template as {{name}}."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Prompt name, unique within the project"),
		),
		mcp.WithString("template",
			mcp.Required(),
			mcp.Description("Prompt template text"),
		),
		mcp.WithString("description",
			mcp.Description("Short description of what the prompt does"),
		),
		mcp.WithString("model",
			mcp.Description("Model the prompt targets, e.g. 'gpt-4o'"),
		),
		mcp.WithArray("variables",
			mcp.Description("Names of the template variables"),
			mcp.WithStringItems(),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags for organising prompts"),
			mcp.WithStringItems(),
		),
		mcp.WithString("project_id",
			mcp.Description("Project to create the prompt in (default: the configured PROMPTLY_PROJECT_ID)"),
		),
	), s.handleCreatePrompt)

	s.mcpServer.AddTool(mcp.NewTool("update_prompt",
		mcp.WithDescription("Update fields of an existing prompt. Only the fields given are changed; "+
			"a template change creates a new version."),
		mcp.WithString("prompt_id",
			mcp.Required(),
			mcp.Description("The ID of the prompt to update"),
		),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("template", mcp.Description("New template text")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithString("model", mcp.Description("New target model")),
	), s.handleUpdatePrompt)

	s.mcpServer.AddTool(mcp.NewTool("delete_prompt",
		mcp.WithDescription("Permanently delete a prompt and all of its versions."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("prompt_id",
			mcp.Required(),
			mcp.Description("The ID of the prompt to delete"),
		),
	), s.handleDeletePrompt)

	s.mcpServer.AddTool(mcp.NewTool("list_versions",
		mcp.WithDescription("List the versions of a prompt, newest first."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("prompt_id",
			mcp.Required(),
			mcp.Description("The ID of the prompt"),
		),
	), s.handleListVersions)

	s.mcpServer.AddTool(mcp.NewTool("publish_prompt",
		mcp.WithDescription("Publish a version of a prompt so that runs use it by default."),
		mcp.WithString("prompt_id",
			mcp.Required(),
			mcp.Description("The ID of the prompt to publish"),
		),
		mcp.WithString("version_id",
			mcp.Description("Version to publish (default: the latest version)"),
		),
		mcp.WithString("notes",
			mcp.Description("Release notes for this publication"),
		),
	), s.handlePublishPrompt)

	s.mcpServer.AddTool(mcp.NewTool("run_prompt",
		mcp.WithDescription("Run a prompt with the given variables and return the model output."),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("prompt_id",
			mcp.Required(),
			mcp.Description("The ID of the prompt to run"),
		),
		mcp.WithObject("variables",
			mcp.Description("Values for the template variables, keyed by variable name"),
		),
		mcp.WithString("version_id",
			mcp.Description("Version to run (default: the published version)"),
		),
		mcp.WithBoolean("stream",
			mcp.Description("Use the streaming endpoint, which suits long outputs (default: false)"),
		),
	), s.handleRunPrompt)

	s.mcpServer.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List the projects the API key can access."),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.handleListProjects)

	s.mcpServer.AddTool(mcp.NewTool("search_docs",
		mcp.WithDescription("Search the Promptly documentation for configuration, errors and prompt file help."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Words to search for"),
		),
	), s.handleSearchDocs)
}

func requireString(request mcp.CallToolRequest, key string) (string, error) {
	v, err := request.RequireString(key)
	if err != nil || strings.TrimSpace(v) == "" {
		return "", apierr.New(apierr.KindValidation, key+" is required")
	}
	return v, nil
}

// optionalString reports whether key was supplied as a string at all, so an
// explicit empty value can clear a field.
func optionalString(request mcp.CallToolRequest, key string) *string {
	v, ok := request.GetArguments()[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func (s *Server) handleListPrompts(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rc := apierr.RenderContext{Operation: "list", EntityType: "prompts"}

	params := domain.ListPromptsParams{
		ProjectID: request.GetString("project_id", ""),
		Search:    request.GetString("search", ""),
		Page:      request.GetInt("page", 0),
		PageSize:  request.GetInt("page_size", 0),
	}.Clamped()

	list, err := s.repo.ListPrompts(ctx, params)
	if err != nil {
		return toolError(ctx, err, rc), nil
	}

	return s.result(ctx, list)
}

func (s *Server) handleGetPrompt(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rc := apierr.RenderContext{Operation: "get", EntityType: "prompt"}

	promptID, err := requireString(request, "prompt_id")
	if err != nil {
		return toolError(ctx, err, rc), nil
	}
	rc.EntityID = promptID

	p, err := s.repo.GetPrompt(ctx, promptID)
	if err != nil {
		return toolError(ctx, err, rc), nil
	}

	return s.result(ctx, p)
}

func (s *Server) handleCreatePrompt(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rc := apierr.RenderContext{Operation: "create", EntityType: "prompt"}

	name, err := requireString(request, "name")
	if err != nil {
		return toolError(ctx, err, rc), nil
	}
	template, err := requireString(request, "template")
	if err != nil {
		return toolError(ctx, err, rc), nil
	}

	p, err := s.repo.CreatePrompt(ctx, domain.CreatePromptInput{
		Name:        name,
		Template:    template,
		Description: request.GetString("description", ""),
		Model:       request.GetString("model", ""),
		Variables:   request.GetStringSlice("variables", nil),
		Tags:        request.GetStringSlice("tags", nil),
		ProjectID:   request.GetString("project_id", ""),
	})
	if err != nil {
		return toolError(ctx, err, rc), nil
	}

	return s.result(ctx, p)
}

func (s *Server) handleUpdatePrompt(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rc := apierr.RenderContext{Operation: "update", EntityType: "prompt"}

	promptID, err := requireString(request, "prompt_id")
	if err != nil {
		return toolError(ctx, err, rc), nil
	}
	rc.EntityID = promptID

	p, err := s.repo.UpdatePrompt(ctx, promptID, domain.UpdatePromptInput{
		Name:        optionalString(request, "name"),
		Template:    optionalString(request, "template"),
		Description: optionalString(request, "description"),
		Model:       optionalString(request, "model"),
	})
	if err != nil {
		return toolError(ctx, err, rc), nil
	}

	return s.result(ctx, p)
}

func (s *Server) handleDeletePrompt(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rc := apierr.RenderContext{Operation: "delete", EntityType: "prompt"}

	promptID, err := requireString(request, "prompt_id")
	if err != nil {
		return toolError(ctx, err, rc), nil
	}
	rc.EntityID = promptID

	if err := s.repo.DeletePrompt(ctx, promptID); err != nil {
		return toolError(ctx, err, rc), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Deleted prompt %s.", promptID)), nil
}

func (s *Server) handleListVersions(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rc := apierr.RenderContext{Operation: "list versions of", EntityType: "prompt"}

	promptID, err := requireString(request, "prompt_id")
	if err != nil {
		return toolError(ctx, err, rc), nil
	}
	rc.EntityID = promptID

	versions, err := s.repo.ListVersions(ctx, promptID)
	if err != nil {
		return toolError(ctx, err, rc), nil
	}
	if len(versions) == 0 {
		return mcp.NewToolResultText("No versions found."), nil
	}

	return s.result(ctx, versions)
}

func (s *Server) handlePublishPrompt(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rc := apierr.RenderContext{Operation: "publish", EntityType: "prompt"}

	promptID, err := requireString(request, "prompt_id")
	if err != nil {
		return toolError(ctx, err, rc), nil
	}
	rc.EntityID = promptID

	v, err := s.repo.PublishPrompt(ctx, promptID, domain.PublishInput{
		VersionID: request.GetString("version_id", ""),
		Notes:     request.GetString("notes", ""),
	})
	if err != nil {
		return toolError(ctx, err, rc), nil
	}

	return s.result(ctx, v)
}

// runVariables accepts any JSON scalar per variable and sends it as text.
func runVariables(request mcp.CallToolRequest) (map[string]string, error) {
	raw, present := request.GetArguments()["variables"]
	if !present || raw == nil {
		return nil, nil
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, apierr.New(apierr.KindValidation, "variables must be an object")
	}

	vars := make(map[string]string, len(obj))
	for k, v := range obj {
		switch v := v.(type) {
		case string:
			vars[k] = v
		case float64, bool:
			vars[k] = fmt.Sprint(v)
		default:
			return nil, apierr.New(apierr.KindValidation,
				fmt.Sprintf("variable %q must be a string, number or boolean", k))
		}
	}
	return vars, nil
}

func (s *Server) handleRunPrompt(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rc := apierr.RenderContext{Operation: "run", EntityType: "prompt"}

	promptID, err := requireString(request, "prompt_id")
	if err != nil {
		return toolError(ctx, err, rc), nil
	}
	rc.EntityID = promptID

	vars, err := runVariables(request)
	if err != nil {
		return toolError(ctx, err, rc), nil
	}

	res, err := s.run.Execute(ctx, command.RunPromptRequest{
		PromptID: promptID,
		Input: domain.RunInput{
			Variables: vars,
			VersionID: request.GetString("version_id", ""),
		},
		Stream: request.GetBool("stream", false),
	})
	if err != nil {
		result := toolError(ctx, err, rc)
		if res.Output != "" {
			result.Content = append(result.Content,
				mcp.NewTextContent("Partial output before the failure:\n"+res.Output))
		}
		return result, nil
	}

	return s.result(ctx, res)
}

func (s *Server) handleListProjects(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return toolError(ctx, err, apierr.RenderContext{Operation: "list", EntityType: "projects"}), nil
	}
	if len(projects) == 0 {
		return mcp.NewToolResultText("No projects found."), nil
	}

	return s.result(ctx, projects)
}

func (s *Server) handleSearchDocs(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	query, err := requireString(request, "query")
	if err != nil {
		return toolError(ctx, err, apierr.RenderContext{Operation: "search", EntityType: "docs"}), nil
	}

	matches := docs.Search(query)
	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No documentation matches %q. Topics: %s.",
			query, strings.Join(docs.Topics(), ", "))), nil
	}

	return s.result(ctx, matches)
}
