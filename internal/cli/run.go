package cli

import (
	"fmt"
	"strings"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/command"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/spf13/cobra"
)

func (c *cli) newVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Inspect prompt versions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <prompt-id>",
		Short: "List a prompt's versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			versions, err := repo.ListVersions(cmd.Context(), args[0])
			if err != nil {
				return withContext(err, "list versions of", "prompt", args[0])
			}
			return c.print(cmd, versions)
		},
	})

	return cmd
}

func (c *cli) newPublishCmd() *cobra.Command {
	var in domain.PublishInput

	cmd := &cobra.Command{
		Use:   "publish <prompt-id>",
		Short: "Publish a prompt version",
		Long:  "Publish a prompt version. Without --version the latest version is published.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			v, err := repo.PublishPrompt(cmd.Context(), args[0], in)
			if err != nil {
				return withContext(err, "publish", "prompt", args[0])
			}
			return c.print(cmd, v)
		},
	}

	cmd.Flags().StringVar(&in.VersionID, "version", "", "Version to publish")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Release notes")

	return cmd
}

// parseVars turns repeated k=v flags into run variables.
func parseVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, apierr.New(apierr.KindValidation, fmt.Sprintf("invalid --var %q, expected key=value", pair))
		}
		vars[k] = v
	}
	return vars, nil
}

func (c *cli) newRunCmd() *cobra.Command {
	var vars []string
	var versionID string
	var stream bool

	cmd := &cobra.Command{
		Use:   "run <prompt-id>",
		Short: "Run a prompt",
		Long: `Run a prompt with the given variables.

With --stream the output is written to stdout as it arrives. If the stream
fails part way, the output received so far stays on stdout and the error is
reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variables, err := parseVars(vars)
			if err != nil {
				return err
			}

			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			req := command.RunPromptRequest{
				PromptID: args[0],
				Input:    domain.RunInput{Variables: variables, VersionID: versionID},
				Stream:   stream,
			}
			if stream {
				req.Output = cmd.OutOrStdout()
			}

			res, err := command.NewRunPrompt(repo, repo).Execute(cmd.Context(), req)
			if stream && res.Output != "" && !strings.HasSuffix(res.Output, "\n") {
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			if err != nil {
				return withContext(err, "run", "prompt", args[0])
			}

			if stream {
				return nil
			}
			return c.print(cmd, res)
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Template variable as key=value (repeatable)")
	cmd.Flags().StringVar(&versionID, "version", "", "Run this version instead of the published one")
	cmd.Flags().BoolVar(&stream, "stream", false, "Stream output as it is generated")

	return cmd
}

func (c *cli) newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect projects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			projects, err := repo.ListProjects(cmd.Context())
			if err != nil {
				return withContext(err, "list", "projects", "")
			}
			return c.print(cmd, projects)
		},
	})

	return cmd
}
