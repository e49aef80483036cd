package server

import (
	"context"
	"iter"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/datasources/mocks"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/format"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func newTestServer(t *testing.T, outputFormat format.Format) (*Server, *mocks.MockPromptRepository) {
	repo := mocks.NewMockPromptRepository(t)
	s := NewServer(repo, outputFormat)
	s.now = func() time.Time { return testNow }
	return s, repo
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, content mcp.Content) string {
	t.Helper()
	tc, ok := content.(mcp.TextContent)
	require.True(t, ok, "content is %T", content)
	return tc.Text
}

func chunks(parts []string, endErr error) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range parts {
			if !yield(p, nil) {
				return
			}
		}
		if endErr != nil {
			yield("", endErr)
		}
	}
}

func TestNewServer_RegistersTools(t *testing.T) {
	s, _ := newTestServer(t, format.TOON)

	var names []string
	for name := range s.mcpServer.ListTools() {
		names = append(names, name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"create_prompt", "delete_prompt", "get_prompt", "list_projects", "list_prompts",
		"list_versions", "publish_prompt", "run_prompt", "search_docs", "update_prompt",
	}, names)
}

func TestToolHandlers(t *testing.T) {
	prompt := domain.Prompt{ID: "prm_1", Name: "greeting", Template: "Hello {{name}}"}

	cases := []struct {
		name         string
		tool         string
		args         map[string]any
		setup        func(repo *mocks.MockPromptRepository)
		wantError    bool
		wantContains []string
	}{
		{
			name: "list_prompts_passes_params",
			tool: "list_prompts",
			args: map[string]any{"project_id": "proj_1", "search": "greet", "page": float64(2), "page_size": float64(500)},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().ListPrompts(mock.Anything, domain.ListPromptsParams{
					ProjectID: "proj_1", Search: "greet", Page: 2, PageSize: 100,
				}).Return(domain.PromptList{Data: []domain.Prompt{prompt}}, nil)
			},
			wantContains: []string{`"id": "prm_1"`, `"name": "greeting"`},
		},
		{
			name:         "get_prompt_requires_id",
			tool:         "get_prompt",
			args:         map[string]any{},
			wantError:    true,
			wantContains: []string{"rejected as invalid", "prompt_id is required"},
		},
		{
			name: "get_prompt_not_found",
			tool: "get_prompt",
			args: map[string]any{"prompt_id": "prm_x"},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().GetPrompt(mock.Anything, "prm_x").
					Return(domain.Prompt{}, apierr.FromStatus(404, "internal detail"))
			},
			wantError:    true,
			wantContains: []string{`Prompt "prm_x" was not found.`},
		},
		{
			name: "create_prompt",
			tool: "create_prompt",
			args: map[string]any{
				"name": "greeting", "template": "Hello {{name}}",
				"variables": []any{"name"}, "tags": []any{"demo"},
			},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().CreatePrompt(mock.Anything, domain.CreatePromptInput{
					Name: "greeting", Template: "Hello {{name}}",
					Variables: []string{"name"}, Tags: []string{"demo"},
				}).Return(prompt, nil)
			},
			wantContains: []string{`"id": "prm_1"`},
		},
		{
			name:         "create_prompt_requires_template",
			tool:         "create_prompt",
			args:         map[string]any{"name": "greeting", "template": "  "},
			wantError:    true,
			wantContains: []string{"template is required"},
		},
		{
			name: "update_prompt_sends_only_given_fields",
			tool: "update_prompt",
			args: map[string]any{"prompt_id": "prm_1", "template": "New", "description": ""},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().UpdatePrompt(mock.Anything, "prm_1",
					mock.MatchedBy(func(in domain.UpdatePromptInput) bool {
						return in.Name == nil && in.Model == nil &&
							in.Template != nil && *in.Template == "New" &&
							in.Description != nil && *in.Description == ""
					})).Return(prompt, nil)
			},
			wantContains: []string{`"id": "prm_1"`},
		},
		{
			name: "delete_prompt",
			tool: "delete_prompt",
			args: map[string]any{"prompt_id": "prm_1"},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().DeletePrompt(mock.Anything, "prm_1").Return(nil)
			},
			wantContains: []string{"Deleted prompt prm_1."},
		},
		{
			name: "list_versions_empty",
			tool: "list_versions",
			args: map[string]any{"prompt_id": "prm_1"},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().ListVersions(mock.Anything, "prm_1").Return(nil, nil)
			},
			wantContains: []string{"No versions found."},
		},
		{
			name: "publish_prompt",
			tool: "publish_prompt",
			args: map[string]any{"prompt_id": "prm_1", "version_id": "ver_2", "notes": "ship it"},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().PublishPrompt(mock.Anything, "prm_1", domain.PublishInput{VersionID: "ver_2", Notes: "ship it"}).
					Return(domain.PromptVersion{ID: "ver_2", PromptID: "prm_1", Number: 2, Published: true}, nil)
			},
			wantContains: []string{`"published": true`},
		},
		{
			name: "run_prompt_stringifies_variables",
			tool: "run_prompt",
			args: map[string]any{"prompt_id": "prm_1", "variables": map[string]any{"name": "Ada", "n": float64(3), "ok": true}},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().RunPrompt(mock.Anything, "prm_1", domain.RunInput{
					Variables: map[string]string{"name": "Ada", "n": "3", "ok": "true"},
				}).Return(domain.RunResult{RunID: "run_1", Output: "Hello Ada"}, nil)
			},
			wantContains: []string{`"output": "Hello Ada"`},
		},
		{
			name:         "run_prompt_rejects_nested_variables",
			tool:         "run_prompt",
			args:         map[string]any{"prompt_id": "prm_1", "variables": map[string]any{"x": []any{1}}},
			wantError:    true,
			wantContains: []string{"variable \"x\" must be a string"},
		},
		{
			name:         "run_prompt_rejects_non_object_variables",
			tool:         "run_prompt",
			args:         map[string]any{"prompt_id": "prm_1", "variables": "name=Ada"},
			wantError:    true,
			wantContains: []string{"variables must be an object"},
		},
		{
			name: "run_prompt_streamed",
			tool: "run_prompt",
			args: map[string]any{"prompt_id": "prm_1", "stream": true},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().StreamRun(mock.Anything, "prm_1", domain.RunInput{}).
					Return(chunks([]string{"Hel", "lo"}, nil))
			},
			wantContains: []string{`"output": "Hello"`},
		},
		{
			name: "list_projects_auth_invalid",
			tool: "list_projects",
			args: map[string]any{},
			setup: func(repo *mocks.MockPromptRepository) {
				repo.EXPECT().ListProjects(mock.Anything).Return(nil, apierr.FromStatus(401, "bad key"))
			},
			wantError:    true,
			wantContains: []string{"Authentication failed while trying to list projects"},
		},
		{
			name:         "search_docs",
			tool:         "search_docs",
			args:         map[string]any{"query": "keychain"},
			wantContains: []string{`"topic": "configuration"`},
		},
		{
			name:         "search_docs_no_match",
			tool:         "search_docs",
			args:         map[string]any{"query": "zzzzzz"},
			wantContains: []string{`No documentation matches "zzzzzz"`, "quickstart"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, repo := newTestServer(t, format.JSON)
			if tc.setup != nil {
				tc.setup(repo)
			}

			tool := s.mcpServer.GetTool(tc.tool)
			require.NotNil(t, tool)

			res, err := tool.Handler(testContext(), callRequest(tc.tool, tc.args))
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tc.wantError, res.IsError)

			require.NotEmpty(t, res.Content)
			text := textOf(t, res.Content[0])
			for _, want := range tc.wantContains {
				assert.Contains(t, text, want)
			}
		})
	}
}

func TestRunPrompt_StreamFailureKeepsPartialOutput(t *testing.T) {
	s, repo := newTestServer(t, format.TOON)
	repo.EXPECT().StreamRun(mock.Anything, "prm_1", domain.RunInput{}).
		Return(chunks([]string{"Partial "}, apierr.FromStatus(503, "upstream down")))

	res, err := s.handleRunPrompt(testContext(), callRequest("run_prompt", map[string]any{"prompt_id": "prm_1", "stream": true}))
	require.NoError(t, err)

	assert.True(t, res.IsError)
	require.Len(t, res.Content, 2)
	assert.Contains(t, textOf(t, res.Content[0]), "temporarily unavailable (HTTP 503)")
	assert.Equal(t, "Partial output before the failure:\nPartial ", textOf(t, res.Content[1]))
}

func TestResult_UsesConfiguredFormat(t *testing.T) {
	s, repo := newTestServer(t, format.TOON)
	repo.EXPECT().ListProjects(mock.Anything).Return([]domain.Project{
		{ID: "proj_1", Name: "Main", CreatedAt: testNow},
		{ID: "proj_2", Name: "Side", CreatedAt: testNow},
	}, nil)

	res, err := s.handleListProjects(testContext(), callRequest("list_projects", nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t,
		"[2]{id,name,created_at}:\n  proj_1,Main,\"2026-03-10T12:00:00Z\"\n  proj_2,Side,\"2026-03-10T12:00:00Z\"",
		textOf(t, res.Content[0]))
}

func readRequest(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func TestPromptResource(t *testing.T) {
	t.Run("renders_markdown", func(t *testing.T) {
		s, repo := newTestServer(t, format.TOON)
		repo.EXPECT().GetPrompt(mock.Anything, "prm_1").Return(domain.Prompt{
			ID: "prm_1", Name: "greeting", Template: "Hello", UpdatedAt: testNow.Add(-2 * time.Hour),
		}, nil)

		contents, err := s.handlePromptResource(testContext(), readRequest("promptly://prompts/prm_1"))
		require.NoError(t, err)
		require.Len(t, contents, 1)

		text, ok := contents[0].(mcp.TextResourceContents)
		require.True(t, ok)
		assert.Equal(t, "promptly://prompts/prm_1", text.URI)
		assert.Equal(t, "text/markdown", text.MIMEType)
		assert.Contains(t, text.Text, "# greeting")
		assert.Contains(t, text.Text, "| Updated | 2 hours ago |")
	})

	t.Run("invalid_uris", func(t *testing.T) {
		s, _ := newTestServer(t, format.TOON)
		for _, uri := range []string{"article://prm_1", "promptly://prompts/", "promptly://prompts/a/b"} {
			_, err := s.handlePromptResource(testContext(), readRequest(uri))
			assert.Error(t, err, uri)
		}
	})

	t.Run("fetch_errors_are_rendered", func(t *testing.T) {
		cases := []struct {
			name        string
			upstream    *apierr.Error
			wantMessage string
			hidden      string
		}{
			{
				name:        "not_found",
				upstream:    apierr.FromStatus(404, "prompt prm_x belongs to org acme"),
				wantMessage: `Prompt "prm_x" was not found.`,
				hidden:      "acme",
			},
			{
				name:        "auth_invalid",
				upstream:    apierr.FromStatus(403, "key lacks scope prompts:read"),
				wantMessage: "invalid or lacks permission",
				hidden:      "prompts:read",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				s, repo := newTestServer(t, format.TOON)
				repo.EXPECT().GetPrompt(mock.Anything, "prm_x").Return(domain.Prompt{}, tc.upstream)

				_, err := s.handlePromptResource(testContext(), readRequest("promptly://prompts/prm_x"))
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.upstream)
				assert.Contains(t, err.Error(), tc.wantMessage)
				assert.NotContains(t, err.Error(), tc.hidden)
			})
		}
	})
}

func TestPromptListResource(t *testing.T) {
	s, repo := newTestServer(t, format.TOON)
	repo.EXPECT().ListPrompts(mock.Anything, domain.ListPromptsParams{}).Return(domain.PromptList{
		Data: []domain.Prompt{{ID: "prm_1", Name: "greeting", UpdatedAt: testNow.Add(-time.Hour)}},
	}, nil)

	contents, err := s.handlePromptListResource(testContext(), readRequest(promptsURI))
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text := contents[0].(mcp.TextResourceContents)
	assert.Contains(t, text.Text, "- **greeting** (`prm_1`), updated 1 hour ago")
}

func TestPromptListResource_ErrorRendered(t *testing.T) {
	s, repo := newTestServer(t, format.TOON)
	repo.EXPECT().ListPrompts(mock.Anything, domain.ListPromptsParams{}).
		Return(domain.PromptList{}, apierr.FromStatus(503, "maintenance"))

	_, err := s.handlePromptListResource(testContext(), readRequest(promptsURI))
	require.Error(t, err)
	assert.Equal(t, apierr.KindServer, apierr.KindOf(err))
	assert.Contains(t, err.Error(), "while trying to list prompts")
}

func TestDocsResource(t *testing.T) {
	s, _ := newTestServer(t, format.TOON)

	contents, err := s.handleDocsResource(testContext(), readRequest("promptly://docs/errors"))
	require.NoError(t, err)
	assert.Contains(t, contents[0].(mcp.TextResourceContents).Text, "# Errors")

	_, err = s.handleDocsResource(testContext(), readRequest("promptly://docs/nope"))
	require.Error(t, err)
	assert.Equal(t, apierr.KindNotFound, apierr.KindOf(err))
	assert.NotContains(t, err.Error(), "not_found")
}
