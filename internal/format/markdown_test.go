package format

import (
	"testing"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPromptMarkdown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := domain.Prompt{
		ID:          "prm_1",
		Name:        "greeting",
		Description: "Says hello",
		Template:    "Hello {{name}}\n```\ncode\n```",
		Model:       "gpt-4o",
		Variables:   []string{"name"},
		CreatedAt:   now.Add(-72 * time.Hour),
		UpdatedAt:   now.Add(-2 * time.Hour),
	}

	got := PromptMarkdown(p, now)

	assert.Contains(t, got, "# greeting\n\n> Says hello\n")
	assert.Contains(t, got, "| ID | `prm_1` |")
	assert.Contains(t, got, "| Model | gpt-4o |")
	assert.Contains(t, got, "| Variables | name |")
	assert.Contains(t, got, "| Tags | - |")
	assert.Contains(t, got, "| Created | 3 days ago |")
	assert.Contains(t, got, "| Updated | 2 hours ago |")
	assert.Contains(t, got, "````text\nHello {{name}}\n```\ncode\n```\n````")
}

func TestPromptMarkdown_ZeroTimes(t *testing.T) {
	got := PromptMarkdown(domain.Prompt{ID: "prm_1", Name: "x"}, time.Now())
	assert.Contains(t, got, "| Created | unknown |")
	assert.NotContains(t, got, "> ")
}

func TestPromptListMarkdown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "# Prompts\n\nNo prompts found.\n", PromptListMarkdown(domain.PromptList{}, now))
	})

	t.Run("with_prompts", func(t *testing.T) {
		list := domain.PromptList{
			Data: []domain.Prompt{
				{ID: "prm_1", Name: "greeting", Description: "Says hello", UpdatedAt: now.Add(-time.Hour)},
				{ID: "prm_2", Name: "farewell"},
			},
			Metadata: domain.PromptListMetadata{Page: 1, PageSize: 2, Total: 5},
		}

		got := PromptListMarkdown(list, now)
		assert.Contains(t, got, "- **greeting** (`prm_1`), updated 1 hour ago: Says hello\n")
		assert.Contains(t, got, "- **farewell** (`prm_2`), updated unknown\n")
		assert.Contains(t, got, "Showing 2 of 5 (page 1).")
	})
}
