package command

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

type RunPromptRequest struct {
	PromptID string
	Input    domain.RunInput

	// Stream uses the streaming endpoint. Chunks are copied to Output as
	// they arrive when it is set.
	Stream bool
	Output io.Writer
}

// RunPrompt runs a prompt either in one request or as a stream. A streamed
// run returns a RunResult holding the concatenated output.
type RunPrompt struct {
	Runner   datasources.PromptRunner
	Streamer datasources.PromptStreamer
}

var _ Command[RunPromptRequest, domain.RunResult] = (*RunPrompt)(nil)

func NewRunPrompt(runner datasources.PromptRunner, streamer datasources.PromptStreamer) *RunPrompt {
	return &RunPrompt{Runner: runner, Streamer: streamer}
}

func (c *RunPrompt) Execute(ctx context.Context, req RunPromptRequest) (domain.RunResult, error) {
	if !req.Stream {
		res, err := c.Runner.RunPrompt(ctx, req.PromptID, req.Input)
		if err != nil {
			return domain.RunResult{}, fmt.Errorf("running prompt: %w", err)
		}
		if req.Output != nil {
			if _, err := io.WriteString(req.Output, res.Output); err != nil {
				return res, fmt.Errorf("writing output: %w", err)
			}
		}
		return res, nil
	}

	start := time.Now()
	var out strings.Builder
	for chunk, err := range c.Streamer.StreamRun(ctx, req.PromptID, req.Input) {
		if err != nil {
			return c.streamResult(req, out.String(), start), fmt.Errorf("streaming prompt run: %w", err)
		}
		out.WriteString(chunk)
		if req.Output != nil {
			if _, err := io.WriteString(req.Output, chunk); err != nil {
				return c.streamResult(req, out.String(), start), fmt.Errorf("writing output: %w", err)
			}
		}
	}

	return c.streamResult(req, out.String(), start), nil
}

func (c *RunPrompt) streamResult(req RunPromptRequest, output string, start time.Time) domain.RunResult {
	return domain.RunResult{
		PromptID:   req.PromptID,
		VersionID:  req.Input.VersionID,
		Output:     output,
		DurationMS: time.Since(start).Milliseconds(),
	}
}
