package domain

import (
	"time"
)

type Prompt struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Template           string    `json:"template"`
	Model              string    `json:"model,omitempty"`
	Variables          []string  `json:"variables,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	ProjectID          string    `json:"project_id,omitempty"`
	LatestVersionID    string    `json:"latest_version_id,omitempty"`
	PublishedVersionID string    `json:"published_version_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type PromptVersion struct {
	ID        string    `json:"id"`
	PromptID  string    `json:"prompt_id"`
	Number    int       `json:"number"`
	Template  string    `json:"template"`
	Notes     string    `json:"notes,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type RunResult struct {
	RunID      string `json:"run_id"`
	PromptID   string `json:"prompt_id"`
	VersionID  string `json:"version_id,omitempty"`
	Output     string `json:"output"`
	Model      string `json:"model,omitempty"`
	Usage      Usage  `json:"usage"`
	DurationMS int64  `json:"duration_ms"`
}

type PromptListMetadata struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

type PromptList struct {
	Data     []Prompt           `json:"data"`
	Metadata PromptListMetadata `json:"metadata"`
}

// Promptly serves at most MaxPageSize prompts per page.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListPromptsParams struct {
	ProjectID      string
	Search         string
	Page, PageSize int
}

// Clamped drops negative paging values, leaving the API default, and caps
// PageSize at MaxPageSize.
func (p ListPromptsParams) Clamped() ListPromptsParams {
	p.Page = max(p.Page, 0)
	p.PageSize = min(max(p.PageSize, 0), MaxPageSize)
	return p
}

type CreatePromptInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Template    string   `json:"template"`
	Model       string   `json:"model,omitempty"`
	Variables   []string `json:"variables,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ProjectID   string   `json:"project_id,omitempty"`
}

// UpdatePromptInput only sends the fields that are set.
type UpdatePromptInput struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Template    *string   `json:"template,omitempty"`
	Model       *string   `json:"model,omitempty"`
	Variables   *[]string `json:"variables,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// IsEmpty reports whether no field is set.
func (in UpdatePromptInput) IsEmpty() bool {
	return in.Name == nil && in.Description == nil && in.Template == nil &&
		in.Model == nil && in.Variables == nil && in.Tags == nil
}

type PublishInput struct {
	VersionID string `json:"version_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type RunInput struct {
	Variables map[string]string `json:"variables,omitempty"`
	VersionID string            `json:"version_id,omitempty"`
}
