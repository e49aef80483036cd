package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

func relTime(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func fence(body string) string {
	marker := "```"
	for strings.Contains(body, marker) {
		marker += "`"
	}
	return marker + "text\n" + body + "\n" + marker
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PromptMarkdown renders a prompt with its metadata and template.
func PromptMarkdown(p domain.Prompt, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", p.Description)
	}

	b.WriteString("| Field | Value |\n|---|---|\n")
	rows := [][2]string{
		{"ID", "`" + p.ID + "`"},
		{"Model", orDash(p.Model)},
		{"Project", orDash(p.ProjectID)},
		{"Variables", orDash(strings.Join(p.Variables, ", "))},
		{"Tags", orDash(strings.Join(p.Tags, ", "))},
		{"Latest version", orDash(p.LatestVersionID)},
		{"Published version", orDash(p.PublishedVersionID)},
		{"Created", relTime(p.CreatedAt, now)},
		{"Updated", relTime(p.UpdatedAt, now)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], strings.ReplaceAll(r[1], "|", `\|`))
	}

	b.WriteString("\n## Template\n\n")
	b.WriteString(fence(p.Template))
	b.WriteString("\n")

	return b.String()
}

// PromptListMarkdown renders one bullet per prompt.
func PromptListMarkdown(list domain.PromptList, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Prompts\n\n")

	if len(list.Data) == 0 {
		b.WriteString("No prompts found.\n")
		return b.String()
	}

	for _, p := range list.Data {
		fmt.Fprintf(&b, "- **%s** (`%s`), updated %s", p.Name, p.ID, relTime(p.UpdatedAt, now))
		if p.Description != "" {
			fmt.Fprintf(&b, ": %s", p.Description)
		}
		b.WriteString("\n")
	}

	m := list.Metadata
	if m.Total > 0 {
		fmt.Fprintf(&b, "\nShowing %d of %d (page %d).\n", len(list.Data), m.Total, max(m.Page, 1))
	}

	return b.String()
}
