package cli

import (
	"fmt"
	"os"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/command"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/jbeshir/promptly-mcp/internal/format"
	"github.com/jbeshir/promptly-mcp/internal/promptfile"
	"github.com/spf13/cobra"
)

func (c *cli) newPromptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prompts",
		Aliases: []string{"prompt"},
		Short:   "List, inspect and edit prompts",
	}

	cmd.AddCommand(
		c.newPromptsListCmd(),
		c.newPromptsGetCmd(),
		c.newPromptsCreateCmd(),
		c.newPromptsUpdateCmd(),
		c.newPromptsDeleteCmd(),
		c.newPromptsPushCmd(),
		c.newPromptsPullCmd(),
	)

	return cmd
}

func (c *cli) newPromptsListCmd() *cobra.Command {
	var params domain.ListPromptsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			list, err := repo.ListPrompts(cmd.Context(), params)
			if err != nil {
				return withContext(err, "list", "prompts", "")
			}
			return c.print(cmd, list)
		},
	}

	cmd.Flags().StringVar(&params.ProjectID, "project", "", "Only list prompts in this project")
	cmd.Flags().StringVar(&params.Search, "search", "", "Filter prompts by name or description")
	cmd.Flags().IntVar(&params.Page, "page", 0, "Page number, starting at 1")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "Prompts per page")

	return cmd
}

func (c *cli) newPromptsGetCmd() *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "get <prompt-id>",
		Short: "Show a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			p, err := repo.GetPrompt(cmd.Context(), args[0])
			if err != nil {
				return withContext(err, "get", "prompt", args[0])
			}

			if markdown {
				_, err = fmt.Fprint(cmd.OutOrStdout(), format.PromptMarkdown(p, c.deps.Now()))
				return err
			}
			return c.print(cmd, p)
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the prompt as Markdown")

	return cmd
}

// templateFromFlags reads --template-file when given, otherwise --template.
func templateFromFlags(template, templateFile string) (string, error) {
	if templateFile == "" {
		return template, nil
	}
	if template != "" {
		return "", apierr.New(apierr.KindValidation, "use either --template or --template-file, not both")
	}

	data, err := os.ReadFile(templateFile)
	if err != nil {
		return "", fmt.Errorf("reading template file: %w", err)
	}
	return string(data), nil
}

func (c *cli) newPromptsCreateCmd() *cobra.Command {
	var in domain.CreatePromptInput
	var templateFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			template, err := templateFromFlags(in.Template, templateFile)
			if err != nil {
				return err
			}
			in.Template = template

			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			p, err := repo.CreatePrompt(cmd.Context(), in)
			if err != nil {
				return withContext(err, "create", "prompt", "")
			}
			return c.print(cmd, p)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Prompt name (required)")
	cmd.Flags().StringVar(&in.Template, "template", "", "Template text")
	cmd.Flags().StringVar(&templateFile, "template-file", "", "Read the template from this file")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description")
	cmd.Flags().StringVar(&in.Model, "model", "", "Model the prompt targets")
	cmd.Flags().StringSliceVar(&in.Variables, "variable", nil, "Template variable name (repeatable)")
	cmd.Flags().StringSliceVar(&in.Tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&in.ProjectID, "project", "", "Project to create the prompt in")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (c *cli) newPromptsUpdateCmd() *cobra.Command {
	var name, template, templateFile, description, model string

	cmd := &cobra.Command{
		Use:   "update <prompt-id>",
		Short: "Update a prompt's fields",
		Long: `Update a prompt. Only the flags you pass are changed; pass an empty value,
such as --description "", to clear a field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.UpdatePromptInput
			flags := cmd.Flags()

			if flags.Changed("name") {
				in.Name = &name
			}
			if flags.Changed("template") || flags.Changed("template-file") {
				t, err := templateFromFlags(template, templateFile)
				if err != nil {
					return err
				}
				in.Template = &t
			}
			if flags.Changed("description") {
				in.Description = &description
			}
			if flags.Changed("model") {
				in.Model = &model
			}
			if in.IsEmpty() {
				return apierr.New(apierr.KindValidation, "nothing to update; pass at least one of --name, --template, --template-file, --description or --model")
			}

			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			p, err := repo.UpdatePrompt(cmd.Context(), args[0], in)
			if err != nil {
				return withContext(err, "update", "prompt", args[0])
			}
			return c.print(cmd, p)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&template, "template", "", "New template text")
	cmd.Flags().StringVar(&templateFile, "template-file", "", "Read the new template from this file")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&model, "model", "", "New model")

	return cmd
}

func (c *cli) newPromptsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <prompt-id>",
		Short: "Delete a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			if err := repo.DeletePrompt(cmd.Context(), args[0]); err != nil {
				return withContext(err, "delete", "prompt", args[0])
			}
			c.printf(cmd, "Deleted prompt %s.", args[0])
			return nil
		},
	}
}

func (c *cli) newPromptsPushCmd() *cobra.Command {
	var projectID string
	var saveID bool

	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Create or update a prompt from a prompt file",
		Long: `Push a Markdown prompt file with YAML front matter.

A file without an id creates a new prompt, and the new id is written back into
the file's front matter unless --save-id=false. A file with an id replaces that
prompt's content.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := promptfile.ParseFile(path)
			if err != nil {
				return withContext(apierr.Wrap(apierr.KindValidation, err.Error(), err), "read", "prompt file", path)
			}

			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			res, err := command.NewPushPrompt(repo, repo).Execute(cmd.Context(), command.PushPromptRequest{
				File:      f,
				ProjectID: projectID,
			})
			if err != nil {
				return withContext(err, "push", "prompt", f.ID)
			}

			if !res.Created {
				c.printf(cmd, "Updated prompt %s (%s).", res.Prompt.ID, res.Prompt.Name)
				return nil
			}

			c.printf(cmd, "Created prompt %s (%s).", res.Prompt.ID, res.Prompt.Name)
			if saveID {
				f.ID = res.Prompt.ID
				if err := f.WriteFile(path); err != nil {
					return fmt.Errorf("saving prompt id to %s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project for newly created prompts")
	cmd.Flags().BoolVar(&saveID, "save-id", true, "Write the new prompt's id back into the file")

	return cmd
}

func (c *cli) newPromptsPullCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pull <prompt-id>",
		Short: "Download a prompt as a prompt file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}

			f, err := command.NewPullPrompt(repo).Execute(cmd.Context(), args[0])
			if err != nil {
				return withContext(err, "pull", "prompt", args[0])
			}

			if out != "" {
				if err := f.WriteFile(out); err != nil {
					return err
				}
				c.printf(cmd, "Wrote prompt %s to %s.", f.ID, out)
				return nil
			}

			data, err := f.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")

	return cmd
}
