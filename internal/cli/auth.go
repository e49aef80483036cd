package cli

import (
	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/config"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/format"
	"github.com/spf13/cobra"
)

func (c *cli) newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API key",
	}

	cmd.AddCommand(c.newAuthLoginCmd(), c.newAuthLogoutCmd(), c.newAuthStatusCmd())

	return cmd
}

func (c *cli) newAuthLoginCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save an API key in the system keychain",
		Long: `Save an API key in the system keychain. Without --key you are prompted for it.

Keys in PROMPTLY_API_KEY, .env or the global config file take precedence over
the keychain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if key == "" {
				var err error
				key, err = c.deps.ReadSecret("Promptly API key: ")
				if err != nil {
					return err
				}
			}
			if key == "" {
				return apierr.New(apierr.KindAuthMissing, "no API key entered")
			}

			if err := c.deps.Keychain.Set(ctx, key); err != nil {
				return err
			}
			domain.LoggerFromContext(ctx).InfoContext(ctx, "stored API key in keychain")

			c.printf(cmd, "Saved API key %s to the system keychain.", config.MaskKey(key))
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "API key to store (prompted for when omitted)")

	return cmd
}

func (c *cli) newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the API key from the system keychain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.deps.Keychain.Delete(cmd.Context()); err != nil {
				return err
			}
			c.printf(cmd, "Removed the stored API key.")
			return nil
		},
	}
}

func (c *cli) newAuthStatusCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which credentials are in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			r := c.resolverFor()

			creds, err := r.Resolve(ctx)
			if err != nil {
				return err
			}

			status := format.Object{
				{Key: "api_key", Value: config.MaskKey(creds.APIKey)},
				{Key: "api_key_source", Value: string(creds.APIKeySource)},
				{Key: "base_url", Value: creds.BaseURL},
				{Key: "base_url_source", Value: string(r.Origin(ctx, config.EnvBaseURL))},
				{Key: "project_id", Value: creds.ProjectID},
			}

			if verify {
				repo, err := c.repository(ctx)
				if err != nil {
					return err
				}
				if _, err := repo.ListProjects(ctx); err != nil {
					return withContext(err, "verify", "API key", "")
				}
				status = append(status, format.Field{Key: "verified", Value: true})
			}

			return c.print(cmd, status)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Check the key against the API")

	return cmd
}
