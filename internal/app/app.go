package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/jbeshir/promptly-mcp/internal/client"
	"github.com/jbeshir/promptly-mcp/internal/config"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/format"
	"github.com/jbeshir/promptly-mcp/internal/transport/web/router"
	"github.com/jbeshir/promptly-mcp/internal/transport/web/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Component interface {
	Run(ctx context.Context) error
}

// MCPServer is the MCP server as the components see it.
type MCPServer interface {
	RunStdio(ctx context.Context, stdin io.Reader, stdout io.Writer) error
	HTTPHandler() http.Handler
}

// ServerFactory builds the MCP server over a prompt repository.
type ServerFactory func(repo datasources.PromptRepository, outputFormat format.Format) MCPServer

// StdioComponent serves MCP over the process's stdin and stdout.
type StdioComponent struct {
	Server MCPServer
	Stdin  io.Reader
	Stdout io.Writer
}

func (c *StdioComponent) Run(ctx context.Context) error {
	return c.Server.RunStdio(ctx, c.Stdin, c.Stdout)
}

func Setup(ctx context.Context, newServer ServerFactory) ([]Component, error) {
	outputFormat, err := format.ParseFormat(GetEnvAsString(ctx, "PROMPTLY_MCP_OUTPUT_FORMAT", string(format.TOON)))
	if err != nil {
		return nil, fmt.Errorf("reading PROMPTLY_MCP_OUTPUT_FORMAT: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	promptly, err := SetupClient(ctx, client.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("setting up Promptly client: %w", err)
	}

	mcpServer := newServer(promptly, outputFormat)

	switch transport := strings.ToLower(GetEnvAsString(ctx, "PROMPTLY_MCP_TRANSPORT", TransportStdio)); transport {
	case TransportStdio:
		return []Component{&StdioComponent{Server: mcpServer, Stdin: os.Stdin, Stdout: os.Stdout}}, nil
	case TransportHTTP:
		httpServer, err := setupHTTPServer(ctx, promptly, mcpServer, registry)
		if err != nil {
			return nil, fmt.Errorf("setting up HTTP transport: %w", err)
		}
		return []Component{httpServer}, nil
	default:
		return nil, fmt.Errorf("unknown transport [%s]", transport)
	}
}

// SetupClient resolves credentials from the default sources and builds the
// API client. It fails with AuthMissing before any request is made when no
// API key is configured.
func SetupClient(ctx context.Context, opts ...client.Option) (*client.Client, error) {
	resolver := config.NewResolver(config.DefaultSources())

	c, err := client.NewFromResolver(ctx, resolver, opts...)
	if err != nil {
		return nil, err
	}

	creds := c.Credentials()
	domain.LoggerFromContext(ctx).DebugContext(ctx, "resolved Promptly credentials",
		"base_url", creds.BaseURL,
		"api_key_source", string(creds.APIKeySource),
		"project_id", creds.ProjectID,
	)
	return c, nil
}

func setupHTTPServer(
	ctx context.Context,
	promptly *client.Client,
	mcpServer MCPServer,
	registry *prometheus.Registry,
) (*server.Server, error) {
	port, err := GetEnvAsInt(ctx, "PORT", 8080)
	if err != nil {
		return nil, err
	}
	cacheMaxAge, err := GetEnvAsDuration(ctx, "HTTP_CACHE_MAX_AGE", 0)
	if err != nil {
		return nil, err
	}
	rateLimit, err := GetEnvAsFloat(ctx, "PROMPTLY_MCP_RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	rateBurst, err := GetEnvAsInt(ctx, "PROMPTLY_MCP_RATE_BURST", 20)
	if err != nil {
		return nil, err
	}

	validators, err := setupAuthValidators(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth validators: %w", err)
	}
	if len(validators) == 0 {
		domain.LoggerFromContext(ctx).WarnContext(ctx,
			"no inbound auth configured; the HTTP transport is open to any caller who can reach it")
	}

	httpRouter, err := router.MakeRouter(router.Config{
		Prompts:         promptly,
		MCP:             mcpServer.HTTPHandler(),
		Metrics:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		FeedBaseURL:     GetEnvAsString(ctx, "FEED_BASE_URL", fmt.Sprintf("http://localhost:%d", port)),
		FeedAuthorName:  GetEnvAsString(ctx, "FEED_AUTHOR_NAME", "Promptly"),
		FeedAuthorEmail: GetEnvAsString(ctx, "FEED_AUTHOR_EMAIL", ""),
		CacheMaxAge:     cacheMaxAge,
		CORSOrigins:     GetEnvAsStrings(ctx, "PROMPTLY_MCP_CORS_ORIGINS"),
		Validators:      validators,
		RateLimit:       rateLimit,
		RateBurst:       rateBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	hostnames := GetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES")
	return &server.Server{
		TLSDisabled:       len(hostnames) == 0,
		TLSDisabledPort:   port,
		AutocertHostnames: hostnames,
		Router:            httpRouter,
	}, nil
}

func setupAuthValidators(ctx context.Context) ([]router.AuthValidator, error) {
	var validators []router.AuthValidator

	if token := GetEnvAsString(ctx, "PROMPTLY_MCP_AUTH_TOKEN", ""); token != "" {
		v, err := router.NewStaticTokenValidator(token)
		if err != nil {
			return nil, fmt.Errorf("creating static token validator: %w", err)
		}
		validators = append(validators, v)
	}

	auth0Domain := GetEnvAsString(ctx, "AUTH0_DOMAIN", "")
	auth0Audience := GetEnvAsString(ctx, "AUTH0_AUDIENCE", "")
	switch {
	case auth0Domain != "" && auth0Audience != "":
		v, err := router.NewAuth0Validator(auth0Domain, auth0Audience)
		if err != nil {
			return nil, fmt.Errorf("creating Auth0 validator: %w", err)
		}
		validators = append(validators, v)
	case auth0Domain != "" || auth0Audience != "":
		return nil, fmt.Errorf("AUTH0_DOMAIN and AUTH0_AUDIENCE must be set together")
	}

	return validators, nil
}
