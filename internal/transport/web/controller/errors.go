package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

type errorResponse struct {
	Kind    apierr.Kind `json:"kind"`
	Message string      `json:"message"`
}

// statusForError maps a classified upstream failure to the status this
// service reports. Upstream auth and server failures are gateway errors here:
// the caller did nothing wrong.
func statusForError(e *apierr.Error) int {
	switch e.Kind {
	case apierr.KindNotFound:
		return http.StatusNotFound
	case apierr.KindValidation:
		return http.StatusBadRequest
	case apierr.KindRateLimited:
		return http.StatusTooManyRequests
	case apierr.KindTimeout:
		return http.StatusGatewayTimeout
	case apierr.KindAuthMissing, apierr.KindAuthInvalid, apierr.KindServer, apierr.KindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, rc apierr.RenderContext) {
	ctx := r.Context()
	e := apierr.Classify(err, 0)
	status := statusForError(e)

	logger := domain.LoggerFromContext(ctx)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", "kind", string(e.Kind), "status", status, "error", err)
	} else {
		logger.WarnContext(ctx, "request failed", "kind", string(e.Kind), "status", status, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Kind: e.Kind, Message: apierr.Render(e, rc)}); err != nil {
		logger.ErrorContext(ctx, "unable to write error to response", "error", err)
	}
}
