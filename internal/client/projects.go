package client

import (
	"context"
	"fmt"

	"github.com/jbeshir/promptly-mcp/internal/domain"
)

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	list, err := call[listEnvelope[domain.Project]](ctx, c, "/projects", RequestOptions{Operation: OpListProjects})
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return list.Data, nil
}
