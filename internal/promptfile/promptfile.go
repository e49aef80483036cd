// Package promptfile reads and writes prompts stored as Markdown files with
// YAML front matter. The body below the front matter is the template.
package promptfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jbeshir/promptly-mcp/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoFrontMatter = errors.New("prompt file must start with YAML front matter (---)")
	ErrUnterminated  = errors.New("prompt file is missing the closing front matter delimiter (---)")
	ErrMissingName   = errors.New("prompt file front matter is missing required field: name")
)

type File struct {
	// ID is set once the prompt exists remotely. Pushing a file with an ID
	// updates that prompt; pushing one without creates a new prompt.
	ID          string   `yaml:"id,omitempty"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Model       string   `yaml:"model,omitempty"`
	Variables   []string `yaml:"variables,omitempty,flow"`
	Tags        []string `yaml:"tags,omitempty,flow"`

	Template string `yaml:"-"`
}

func Parse(r io.Reader) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("reading prompt file: %w", err)
	}

	fm, body, err := splitFrontMatter(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if err != nil {
		return File{}, err
	}

	var f File
	if err := yaml.Unmarshal([]byte(fm), &f); err != nil {
		return File{}, fmt.Errorf("parsing front matter YAML: %w", err)
	}
	if f.Name == "" {
		return File{}, ErrMissingName
	}
	f.Template = body

	return f, nil
}

func ParseFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("opening prompt file: %w", err)
	}
	defer func() { _ = fh.Close() }()

	f, err := Parse(fh)
	if err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

func splitFrontMatter(content string) (string, string, error) {
	trimmed := strings.TrimLeft(content, " \t\n")
	if !strings.HasPrefix(trimmed, "---\n") {
		return "", "", ErrNoFrontMatter
	}

	rest := trimmed[len("---\n"):]
	var fm, body string
	switch {
	case strings.HasPrefix(rest, "---"):
		fm, body = "", rest[len("---"):]
	default:
		idx := strings.Index(rest, "\n---")
		if idx < 0 {
			return "", "", ErrUnterminated
		}
		fm, body = rest[:idx], rest[idx+len("\n---"):]
	}

	return fm, strings.TrimSpace(body), nil
}

// Marshal renders the file with its front matter followed by the template.
func (f File) Marshal() ([]byte, error) {
	if f.Name == "" {
		return nil, ErrMissingName
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}
	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimSpace(f.Template))
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

func (f File) WriteFile(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing prompt file: %w", err)
	}
	return nil
}

func FromPrompt(p domain.Prompt) File {
	return File{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Model:       p.Model,
		Variables:   p.Variables,
		Tags:        p.Tags,
		Template:    p.Template,
	}
}

func (f File) CreateInput(projectID string) domain.CreatePromptInput {
	return domain.CreatePromptInput{
		Name:        f.Name,
		Description: f.Description,
		Template:    f.Template,
		Model:       f.Model,
		Variables:   f.Variables,
		Tags:        f.Tags,
		ProjectID:   projectID,
	}
}

// UpdateInput sends every field the file defines, so a push replaces the
// remote prompt's content with the file's.
func (f File) UpdateInput() domain.UpdatePromptInput {
	in := domain.UpdatePromptInput{
		Name:        &f.Name,
		Description: &f.Description,
		Template:    &f.Template,
		Model:       &f.Model,
	}
	if f.Variables != nil {
		in.Variables = &f.Variables
	}
	if f.Tags != nil {
		in.Tags = &f.Tags
	}
	return in
}
