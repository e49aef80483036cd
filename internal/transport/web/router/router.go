package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/transport/web/controller"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

type Config struct {
	Prompts interface {
		datasources.PromptLister
		datasources.PromptFetcher
		datasources.VersionLister
	}

	// MCP serves the streamable HTTP transport.
	MCP     http.Handler
	Metrics http.Handler

	FeedBaseURL, FeedAuthorName, FeedAuthorEmail string
	CacheMaxAge                                  time.Duration

	CORSOrigins []string

	// Validators is empty when inbound auth is disabled. When any is set,
	// the MCP, API and feed routes require an authenticated caller.
	Validators []AuthValidator

	// RateLimit is requests per second across all callers; zero disables it.
	RateLimit float64
	RateBurst int
}

func MakeRouter(cfg Config) (http.Handler, error) {
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}

	protect := func(h http.Handler) http.Handler { return h }
	if len(cfg.Validators) > 0 {
		protect = requireAuthMiddleware
	}

	r := mux.NewRouter()
	r.Use(requestLoggingMiddleware)
	r.Use(corsMiddleware(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware(limiter))
	r.Use(NewAuthMiddleware(cfg.Validators))

	r.Handle("/healthz", controller.Health{}).Methods(http.MethodGet)

	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics).Methods(http.MethodGet)
	}

	r.Handle("/mcp", protect(cfg.MCP)).
		Methods(http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/prompts", protect(controller.PromptsList{
		Lister:      cfg.Prompts,
		CacheMaxAge: cfg.CacheMaxAge,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/prompts/{prompt_id}", protect(controller.PromptGet{
		Fetcher:     cfg.Prompts,
		CacheMaxAge: cfg.CacheMaxAge,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/feeds/prompts/{prompt_id}.atom", protect(controller.PromptVersionsFeed{
		FeedBaseURL:     cfg.FeedBaseURL,
		FeedAuthorName:  cfg.FeedAuthorName,
		FeedAuthorEmail: cfg.FeedAuthorEmail,
		Fetcher:         cfg.Prompts,
		Versions:        cfg.Prompts,
		CacheMaxAge:     cfg.CacheMaxAge,
	})).Methods(http.MethodGet, http.MethodOptions)

	return otelhttp.NewHandler(r, "promptly-mcp"), nil
}
