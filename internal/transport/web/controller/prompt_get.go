package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

type PromptGet struct {
	Fetcher     datasources.PromptFetcher
	CacheMaxAge time.Duration
}

func (c PromptGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["prompt_id"]

	p, err := c.Fetcher.GetPrompt(r.Context(), id)
	if err != nil {
		writeError(w, r, err, apierr.RenderContext{Operation: "get", EntityType: "prompt", EntityID: id})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(p); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write prompt to response", "error", err)
	}
}
