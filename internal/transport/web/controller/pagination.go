package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

const defaultPage = 1

// parseListParams reads the prompt listing query. Unlike the MCP tool, which
// clamps, an out of range page size is rejected.
func parseListParams(q url.Values) (domain.ListPromptsParams, error) {
	params := domain.ListPromptsParams{
		ProjectID: q.Get("project_id"),
		Search:    q.Get("search"),
		Page:      defaultPage,
		PageSize:  domain.DefaultPageSize,
	}

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return params, apierr.Wrap(apierr.KindValidation, "unable to parse page from query", err)
		}
		if p < 1 {
			return params, apierr.New(apierr.KindValidation, fmt.Sprintf("invalid page value [%d]", p))
		}
		params.Page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return params, apierr.Wrap(apierr.KindValidation, "unable to parse page size from query", err)
		}
		if ps < 1 || ps > domain.MaxPageSize {
			return params, apierr.New(apierr.KindValidation,
				fmt.Sprintf("page size [%d] must be between 1 and %d", ps, domain.MaxPageSize))
		}
		params.PageSize = int(ps)
	}

	return params, nil
}
