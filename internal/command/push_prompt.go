package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/promptfile"
)

type PushPromptRequest struct {
	File promptfile.File

	// ProjectID applies only when the file has no ID and a prompt is created.
	ProjectID string
}

type PushPromptResult struct {
	Prompt  domain.Prompt
	Created bool
}

// PushPrompt uploads a prompt file, creating the prompt when the file has no
// ID and replacing its content otherwise.
type PushPrompt struct {
	Creator datasources.PromptCreator
	Updater datasources.PromptUpdater
}

var _ Command[PushPromptRequest, PushPromptResult] = (*PushPrompt)(nil)

func NewPushPrompt(creator datasources.PromptCreator, updater datasources.PromptUpdater) *PushPrompt {
	return &PushPrompt{Creator: creator, Updater: updater}
}

func (c *PushPrompt) Execute(ctx context.Context, req PushPromptRequest) (PushPromptResult, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.File.ID == "" {
		p, err := c.Creator.CreatePrompt(ctx, req.File.CreateInput(req.ProjectID))
		if err != nil {
			return PushPromptResult{}, fmt.Errorf("creating prompt from file: %w", err)
		}
		logger.InfoContext(ctx, "created prompt from file", "prompt_id", p.ID, "name", p.Name)
		return PushPromptResult{Prompt: p, Created: true}, nil
	}

	p, err := c.Updater.UpdatePrompt(ctx, req.File.ID, req.File.UpdateInput())
	if err != nil {
		return PushPromptResult{}, fmt.Errorf("updating prompt from file: %w", err)
	}
	logger.InfoContext(ctx, "updated prompt from file", "prompt_id", p.ID, "name", p.Name)
	return PushPromptResult{Prompt: p}, nil
}
