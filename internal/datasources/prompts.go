package datasources

import (
	"context"
	"iter"

	"github.com/jbeshir/promptly-mcp/internal/domain"
)

// PromptRepository is everything the MCP server and CLI need from Promptly.
type PromptRepository interface {
	PromptLister
	PromptFetcher
	PromptCreator
	PromptUpdater
	PromptDeleter
	VersionLister
	PromptPublisher
	PromptRunner
	PromptStreamer
	ProjectLister
}

type PromptLister interface {
	ListPrompts(ctx context.Context, params domain.ListPromptsParams) (domain.PromptList, error)
}

type PromptFetcher interface {
	GetPrompt(ctx context.Context, id string) (domain.Prompt, error)
}

type PromptCreator interface {
	CreatePrompt(ctx context.Context, in domain.CreatePromptInput) (domain.Prompt, error)
}

type PromptUpdater interface {
	UpdatePrompt(ctx context.Context, id string, in domain.UpdatePromptInput) (domain.Prompt, error)
}

type PromptDeleter interface {
	DeletePrompt(ctx context.Context, id string) error
}

type VersionLister interface {
	ListVersions(ctx context.Context, promptID string) ([]domain.PromptVersion, error)
}

type PromptPublisher interface {
	PublishPrompt(ctx context.Context, promptID string, in domain.PublishInput) (domain.PromptVersion, error)
}

type PromptRunner interface {
	RunPrompt(ctx context.Context, promptID string, in domain.RunInput) (domain.RunResult, error)
}

// PromptStreamer yields run output as it is produced. The sequence may only
// be ranged over once.
type PromptStreamer interface {
	StreamRun(ctx context.Context, promptID string, in domain.RunInput) iter.Seq2[string, error]
}

type ProjectLister interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}
