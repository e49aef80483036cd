// Package docs serves the embedded user documentation.
package docs

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
)

//go:embed topics/*.md
var topicFS embed.FS

// Topics lists the available topic names in alphabetical order.
func Topics() []string {
	entries, err := fs.ReadDir(topicFS, "topics")
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Get returns the Markdown for one topic.
func Get(topic string) (string, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" || strings.ContainsAny(topic, "/\\") {
		return "", apierr.New(apierr.KindValidation, "topic is required")
	}

	data, err := topicFS.ReadFile(path.Join("topics", topic+".md"))
	if err != nil {
		return "", apierr.New(apierr.KindNotFound,
			"no such topic "+topic+"; available: "+strings.Join(Topics(), ", "))
	}
	return string(data), nil
}

type Match struct {
	Topic string `json:"topic"`
	Hits  int    `json:"hits"`
	// Excerpt is the first line containing a query term.
	Excerpt string `json:"excerpt"`
}

// Search matches each whitespace-separated query term case-insensitively
// and ranks topics by total hits, then by name.
func Search(query string) []Match {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var matches []Match
	for _, topic := range Topics() {
		body, err := Get(topic)
		if err != nil {
			continue
		}

		lower := strings.ToLower(body)
		hits := 0
		for _, term := range terms {
			hits += strings.Count(lower, term)
		}
		if hits == 0 {
			continue
		}

		matches = append(matches, Match{Topic: topic, Hits: hits, Excerpt: excerpt(body, terms)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Hits != matches[j].Hits {
			return matches[i].Hits > matches[j].Hits
		}
		return matches[i].Topic < matches[j].Topic
	})
	return matches
}

func excerpt(body string, terms []string) string {
	for _, line := range strings.Split(body, "\n") {
		lower := strings.ToLower(line)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return strings.TrimSpace(line)
			}
		}
	}
	return ""
}
