package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/datasources"
	"github.com/jbeshir/promptly-mcp/internal/domain"
)

const feedExcerptLength = 280

// PromptVersionsFeed serves an Atom feed of a prompt's versions, newest
// first.
type PromptVersionsFeed struct {
	FeedBaseURL     string
	FeedAuthorName  string
	FeedAuthorEmail string
	Fetcher         datasources.PromptFetcher
	Versions        datasources.VersionLister
	CacheMaxAge     time.Duration
}

func (c PromptVersionsFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["prompt_id"]
	rc := apierr.RenderContext{Operation: "build a feed for", EntityType: "prompt", EntityID: id}

	p, err := c.Fetcher.GetPrompt(r.Context(), id)
	if err != nil {
		writeError(w, r, err, rc)
		return
	}

	versions, err := c.Versions.ListVersions(r.Context(), id)
	if err != nil {
		writeError(w, r, err, rc)
		return
	}

	feedURL := c.FeedBaseURL + "/feeds/prompts/" + url.PathEscape(id) + ".atom"
	feed := &feeds.Feed{
		Id:          feedURL,
		Title:       "Promptly: " + p.Name,
		Link:        &feeds.Link{Href: feedURL, Rel: "self"},
		Description: p.Description,
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     p.CreatedAt,
		Updated:     p.UpdatedAt,
	}

	for _, v := range versions {
		title := fmt.Sprintf("%s v%d", p.Name, v.Number)
		if v.Published {
			title += " (published)"
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          v.ID,
			IsPermaLink: "false",
			Title:       title,
			Link:        &feeds.Link{Href: feedURL + "#" + url.QueryEscape(v.ID)},
			Description: v.Notes,
			Content:     excerpt(v.Template, feedExcerptLength),
			Created:     v.CreatedAt,
		})
	}

	atom, err := feed.ToAtom()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as Atom", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/atom+xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(atom)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
