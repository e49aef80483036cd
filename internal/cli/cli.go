// Package cli is the promptly command-line interface.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/app"
	"github.com/jbeshir/promptly-mcp/internal/client"
	"github.com/jbeshir/promptly-mcp/internal/config"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/format"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// SecretStore holds the API key saved by `auth login`.
type SecretStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
	Delete(ctx context.Context) error
}

// Deps are the CLI's collaborators. Tests replace them.
type Deps struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	NewResolver   func() *config.Resolver
	NewRepository func(ctx context.Context, r *config.Resolver, opts ...client.Option) (datasources.PromptRepository, error)
	Keychain      SecretStore

	// ReadSecret prompts for the API key without echoing it.
	ReadSecret func(prompt string) (string, error)

	Now func() time.Time
}

// DefaultDeps wires the CLI to the process streams, the real credential
// sources and the OS keychain.
func DefaultDeps() Deps {
	return Deps{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		NewResolver: func() *config.Resolver { return config.NewResolver(config.DefaultSources()) },
		NewRepository: func(ctx context.Context, r *config.Resolver, opts ...client.Option) (datasources.PromptRepository, error) {
			return client.NewFromResolver(ctx, r, opts...)
		},
		Keychain:   config.NewKeychain(),
		ReadSecret: readSecret(os.Stdin, os.Stderr),
		Now:        time.Now,
	}
}

func readSecret(in *os.File, prompt io.Writer) func(string) (string, error) {
	return func(msg string) (string, error) {
		_, _ = fmt.Fprint(prompt, msg)

		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			line, err := bufio.NewReader(in).ReadString('\n')
			if err != nil && line == "" {
				return "", fmt.Errorf("reading API key: %w", err)
			}
			return strings.TrimSpace(line), nil
		}

		secret, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading API key: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	outputFormat string
	query        string
	timeout      time.Duration
	logLevel     string
}

type cli struct {
	deps  Deps
	flags globalFlags

	resolver *config.Resolver
	repo     datasources.PromptRepository
}

// NewRootCommand builds the promptly command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	c := &cli{deps: deps}

	cmd := &cobra.Command{
		Use:   "promptly",
		Short: "Manage and run Promptly prompts",
		Long: `promptly manages prompts, versions and projects on the Promptly platform.

Run 'promptly auth login' to store an API key, or set PROMPTLY_API_KEY.
Run 'promptly docs' to list the built-in documentation topics.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	cmd.PersistentFlags().StringVar(&c.flags.outputFormat, "output-format", string(format.TOON), "Output format: toon or json")
	cmd.PersistentFlags().StringVar(&c.flags.query, "query", "", "jq expression applied to the JSON result before formatting")
	cmd.PersistentFlags().DurationVar(&c.flags.timeout, "timeout", 0, "Per-request timeout (default from PROMPTLY_TIMEOUT, else 30s)")
	cmd.PersistentFlags().StringVar(&c.flags.logLevel, "log-level", "warn", "Log level written to stderr: debug, info, warn or error")

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.AddCommand(
		c.newPromptsCmd(),
		c.newVersionsCmd(),
		c.newPublishCmd(),
		c.newRunCmd(),
		c.newProjectsCmd(),
		c.newAuthCmd(),
		c.newDocsCmd(),
		c.newVersionCmd(),
	)

	return cmd
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Deps) int {
	cmd := NewRootCommand(deps)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		PrintError(deps.Stderr, err)
		return ExitCode(err)
	}
	return ExitOK
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	logger, err := app.NewLogger(c.deps.Stderr, c.flags.logLevel, app.GetEnvAsString(ctx, "LOG_FORMAT", "text"))
	if err != nil {
		return err
	}
	cmd.SetContext(domain.ContextWithLogger(ctx, logger))

	if _, err := format.ParseFormat(c.flags.outputFormat); err != nil {
		return err
	}
	return nil
}

func (c *cli) resolverFor() *config.Resolver {
	if c.resolver == nil {
		c.resolver = c.deps.NewResolver()
	}
	return c.resolver
}

// repository builds the API client on first use, so commands that never call
// the API work without credentials.
func (c *cli) repository(ctx context.Context) (datasources.PromptRepository, error) {
	if c.repo != nil {
		return c.repo, nil
	}

	opts := []client.Option{client.WithUserAgent("promptly-cli/" + domain.Version)}
	if c.flags.timeout > 0 {
		opts = append(opts, client.WithTimeout(c.flags.timeout))
	}

	repo, err := c.deps.NewRepository(ctx, c.resolverFor(), opts...)
	if err != nil {
		return nil, err
	}
	c.repo = repo
	return repo, nil
}

// print renders v in the selected output format, after the --query filter.
func (c *cli) print(cmd *cobra.Command, v any) error {
	f, err := format.ParseFormat(c.flags.outputFormat)
	if err != nil {
		return err
	}

	out, err := format.Render(cmd.Context(), v, f, c.flags.query)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func (c *cli) printf(cmd *cobra.Command, msg string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), msg+"\n", args...)
}
