package cli

import (
	"fmt"
	"strings"

	"github.com/jbeshir/promptly-mcp/internal/docs"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/spf13/cobra"
)

func (c *cli) newDocsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Read the built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case search != "":
				matches := docs.Search(search)
				if len(matches) == 0 {
					c.printf(cmd, "No documentation matches %q.", search)
					return nil
				}
				return c.print(cmd, matches)
			case len(args) == 0:
				c.printf(cmd, "Topics: %s", strings.Join(docs.Topics(), ", "))
				c.printf(cmd, "Run 'promptly docs <topic>' to read one.")
				return nil
			}

			body, err := docs.Get(args[0])
			if err != nil {
				return withContext(err, "read", "docs topic", args[0])
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search all topics instead of reading one")

	return cmd
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.printf(cmd, "promptly %s", domain.Version)
			return nil
		},
	}
}
