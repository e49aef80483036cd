package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/promptfile"
)

// PullPrompt fetches a prompt as a prompt file.
type PullPrompt struct {
	Fetcher datasources.PromptFetcher
}

var _ Command[string, promptfile.File] = (*PullPrompt)(nil)

func NewPullPrompt(fetcher datasources.PromptFetcher) *PullPrompt {
	return &PullPrompt{Fetcher: fetcher}
}

func (c *PullPrompt) Execute(ctx context.Context, promptID string) (promptfile.File, error) {
	p, err := c.Fetcher.GetPrompt(ctx, promptID)
	if err != nil {
		return promptfile.File{}, fmt.Errorf("fetching prompt: %w", err)
	}
	return promptfile.FromPrompt(p), nil
}
