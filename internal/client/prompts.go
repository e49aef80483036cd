package client

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// call runs one typed request under the client retry policy.
func call[T any](ctx context.Context, c *Client, endpoint string, opts RequestOptions) (T, error) {
	return WithRetry(ctx, c.retryPolicy(opts.Operation), func(ctx context.Context) (T, error) {
		var out T
		err := c.Do(ctx, endpoint, opts, &out)
		return out, err
	})
}

func requireID(what, id string) error {
	if id == "" {
		return apierr.New(apierr.KindValidation, what+" is required")
	}
	return nil
}

func promptPath(id, suffix string) string {
	return "/prompts/" + url.PathEscape(id) + suffix
}

func (c *Client) ListPrompts(ctx context.Context, params domain.ListPromptsParams) (domain.PromptList, error) {
	q := url.Values{}
	if projectID := c.projectID(params.ProjectID); projectID != "" {
		q.Set("project_id", projectID)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(params.PageSize))
	}

	endpoint := "/prompts"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	list, err := call[domain.PromptList](ctx, c, endpoint, RequestOptions{Operation: OpListPrompts})
	if err != nil {
		return domain.PromptList{}, fmt.Errorf("listing prompts: %w", err)
	}
	return list, nil
}

func (c *Client) GetPrompt(ctx context.Context, id string) (domain.Prompt, error) {
	if err := requireID("prompt id", id); err != nil {
		return domain.Prompt{}, err
	}

	p, err := call[domain.Prompt](ctx, c, promptPath(id, ""), RequestOptions{Operation: OpGetPrompt})
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("getting prompt %s: %w", id, err)
	}
	return p, nil
}

// CreatePrompt refuses to send a request without a name and a template.
func (c *Client) CreatePrompt(ctx context.Context, in domain.CreatePromptInput) (domain.Prompt, error) {
	if err := requireID("prompt name", in.Name); err != nil {
		return domain.Prompt{}, err
	}
	if err := requireID("prompt template", in.Template); err != nil {
		return domain.Prompt{}, err
	}
	in.ProjectID = c.projectID(in.ProjectID)

	p, err := call[domain.Prompt](ctx, c, "/prompts", RequestOptions{
		Method:    http.MethodPost,
		Body:      in,
		Operation: OpCreatePrompt,
	})
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("creating prompt: %w", err)
	}
	return p, nil
}

func (c *Client) UpdatePrompt(ctx context.Context, id string, in domain.UpdatePromptInput) (domain.Prompt, error) {
	if err := requireID("prompt id", id); err != nil {
		return domain.Prompt{}, err
	}
	if in.IsEmpty() {
		return domain.Prompt{}, apierr.New(apierr.KindValidation, "no fields to update")
	}

	p, err := call[domain.Prompt](ctx, c, promptPath(id, ""), RequestOptions{
		Method:    http.MethodPut,
		Body:      in,
		Operation: OpUpdatePrompt,
	})
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("updating prompt %s: %w", id, err)
	}
	return p, nil
}

func (c *Client) DeletePrompt(ctx context.Context, id string) error {
	if err := requireID("prompt id", id); err != nil {
		return err
	}

	_, err := call[map[string]any](ctx, c, promptPath(id, ""), RequestOptions{
		Method:    http.MethodDelete,
		Operation: OpDeletePrompt,
	})
	if err != nil {
		return fmt.Errorf("deleting prompt %s: %w", id, err)
	}
	return nil
}

func (c *Client) ListVersions(ctx context.Context, promptID string) ([]domain.PromptVersion, error) {
	if err := requireID("prompt id", promptID); err != nil {
		return nil, err
	}

	list, err := call[listEnvelope[domain.PromptVersion]](ctx, c, promptPath(promptID, "/versions"),
		RequestOptions{Operation: OpListVersions})
	if err != nil {
		return nil, fmt.Errorf("listing versions of prompt %s: %w", promptID, err)
	}
	return list.Data, nil
}

// PublishPrompt publishes in.VersionID, or the latest version when it is empty.
func (c *Client) PublishPrompt(ctx context.Context, promptID string, in domain.PublishInput) (domain.PromptVersion, error) {
	if err := requireID("prompt id", promptID); err != nil {
		return domain.PromptVersion{}, err
	}

	v, err := call[domain.PromptVersion](ctx, c, promptPath(promptID, "/publish"), RequestOptions{
		Method:    http.MethodPost,
		Body:      in,
		Operation: OpPublishPrompt,
	})
	if err != nil {
		return domain.PromptVersion{}, fmt.Errorf("publishing prompt %s: %w", promptID, err)
	}
	return v, nil
}

func (c *Client) RunPrompt(ctx context.Context, promptID string, in domain.RunInput) (domain.RunResult, error) {
	if err := requireID("prompt id", promptID); err != nil {
		return domain.RunResult{}, err
	}

	res, err := call[domain.RunResult](ctx, c, promptPath(promptID, "/run"), RequestOptions{
		Method:    http.MethodPost,
		Body:      in,
		Operation: OpRunPrompt,
	})
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("running prompt %s: %w", promptID, err)
	}
	return res, nil
}

// StreamRun runs a prompt and yields its output as it is produced.
func (c *Client) StreamRun(ctx context.Context, promptID string, in domain.RunInput) iter.Seq2[string, error] {
	if err := requireID("prompt id", promptID); err != nil {
		return func(yield func(string, error) bool) {
			yield("", err)
		}
	}
	return c.Stream(ctx, promptPath(promptID, "/run/stream"), in, OpStreamRun)
}
