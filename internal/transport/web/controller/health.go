package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/promptly-mcp/internal/domain"
)

type Health struct{}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	if err := json.NewEncoder(w).Encode(healthResponse{Status: "ok", Version: domain.Version}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write health to response", "error", err)
	}
}
