package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

type PromptsList struct {
	Lister      datasources.PromptLister
	CacheMaxAge time.Duration
}

func (c PromptsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r.URL.Query())
	if err != nil {
		writeError(w, r, err, apierr.RenderContext{})
		return
	}

	list, err := c.Lister.ListPrompts(r.Context(), params)
	if err != nil {
		writeError(w, r, err, apierr.RenderContext{Operation: "list", EntityType: "prompts"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(list); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write prompts to response", "error", err)
	}
}
