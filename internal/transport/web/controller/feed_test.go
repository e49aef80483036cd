package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/jbeshir/promptly-mcp/internal/datasources/mocks"
	"github.com/jbeshir/promptly-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPromptVersionsFeed_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	prompt := domain.Prompt{ID: "prm_1", Name: "greeting", Description: "Says hello", CreatedAt: testTime, UpdatedAt: testTime}
	versions := []domain.PromptVersion{
		{ID: "ver_2", PromptID: "prm_1", Number: 2, Template: "Hello {{name}}!", Notes: "Friendlier", Published: true, CreatedAt: testTime},
		{ID: "ver_1", PromptID: "prm_1", Number: 1, Template: "Hello", CreatedAt: testTime.Add(-time.Hour)},
	}

	newFeed := func(t *testing.T) (PromptVersionsFeed, *mocks.MockPromptFetcher, *mocks.MockVersionLister) {
		fetcher := mocks.NewMockPromptFetcher(t)
		lister := mocks.NewMockVersionLister(t)
		return PromptVersionsFeed{
			FeedBaseURL:     "https://mcp.example.com",
			FeedAuthorName:  "Promptly",
			FeedAuthorEmail: "feeds@example.com",
			Fetcher:         fetcher,
			Versions:        lister,
			CacheMaxAge:     5 * time.Minute,
		}, fetcher, lister
	}

	serve := func(c PromptVersionsFeed) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/feeds/prompts/prm_1.atom", nil)
		req = testContext()(req)
		req = mux.SetURLVars(req, map[string]string{"prompt_id": "prm_1"})
		rec := httptest.NewRecorder()
		c.ServeHTTP(rec, req)
		return rec
	}

	t.Run("renders_atom", func(t *testing.T) {
		c, fetcher, lister := newFeed(t)
		fetcher.EXPECT().GetPrompt(mock.Anything, "prm_1").Return(prompt, nil)
		lister.EXPECT().ListVersions(mock.Anything, "prm_1").Return(versions, nil)

		rec := serve(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/atom+xml", rec.Header().Get("Content-Type"))
		assert.Equal(t, "max-age=300", rec.Header().Get("Cache-Control"))

		body := rec.Body.String()
		assert.Contains(t, body, `xmlns="http://www.w3.org/2005/Atom"`)
		assert.Contains(t, body, "<title>Promptly: greeting</title>")
		assert.Contains(t, body, "<title>greeting v2 (published)</title>")
		assert.Contains(t, body, "<title>greeting v1</title>")
		assert.Contains(t, body, "https://mcp.example.com/feeds/prompts/prm_1.atom")
		assert.Equal(t, 2, strings.Count(body, "<entry>"))
	})

	t.Run("prompt_not_found", func(t *testing.T) {
		c, fetcher, _ := newFeed(t)
		fetcher.EXPECT().GetPrompt(mock.Anything, "prm_1").Return(domain.Prompt{}, apierr.FromStatus(404, "gone"))

		rec := serve(c)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("versions_error", func(t *testing.T) {
		c, fetcher, lister := newFeed(t)
		fetcher.EXPECT().GetPrompt(mock.Anything, "prm_1").Return(prompt, nil)
		lister.EXPECT().ListVersions(mock.Anything, "prm_1").Return(nil, apierr.FromStatus(503, "down"))

		rec := serve(c)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("  short \n", 10))
	assert.Equal(t, "héll…", excerpt("héllo world", 4))
}
