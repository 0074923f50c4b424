package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"content-loop/internal/config"
	"content-loop/internal/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	entries map[string][]feed.Entry
	errs    map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]feed.Entry, error) {
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	return f.entries[url], nil
}

func testCfg(feeds ...config.FeedConfig) config.IngestConfig {
	return config.IngestConfig{
		Feeds:              feeds,
		PerSource:          5,
		FetchTimeout:       "2s",
		PriorityCategories: []string{"AI"},
		Keywords:           []string{"ai", "agent", "automation"},
	}
}

func TestCollectSourceFailureIsIsolated(t *testing.T) {
	f := &fakeFetcher{
		entries: map[string][]feed.Entry{
			"http://ok": {{Title: "AI agent raises funding", Link: "http://x/1"}},
		},
		errs: map[string]error{"http://broken": errors.New("connection refused")},
	}
	g := New(f, testCfg(
		config.FeedConfig{URL: "http://broken", Source: "broken", Category: "tech"},
		config.FeedConfig{URL: "http://ok", Source: "ok", Category: "tech"},
	))

	got := g.Collect(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Source)
}

func TestCollectFiltersByKeywordAndCategory(t *testing.T) {
	f := &fakeFetcher{entries: map[string][]feed.Entry{
		"http://tech": {
			{Title: "AI agent raises funding"},
			{Title: "New cooking recipe"},
			{Title: "Enterprise automation platform launches"},
		},
		"http://ai": {
			{Title: "Completely unrelated title"}, // kept: priority category
		},
	}}
	g := New(f, testCfg(
		config.FeedConfig{URL: "http://tech", Source: "tech", Category: "tech"},
		config.FeedConfig{URL: "http://ai", Source: "ai", Category: "AI"},
	))

	got := g.Collect(context.Background())
	titles := make([]string, 0, len(got))
	for _, c := range got {
		titles = append(titles, c.Title)
	}
	assert.ElementsMatch(t, []string{
		"AI agent raises funding",
		"Enterprise automation platform launches",
		"Completely unrelated title",
	}, titles)
}

func TestCollectTruncatesAndCapsPerSource(t *testing.T) {
	long := strings.Repeat("a", 600)
	entries := make([]feed.Entry, 0, 7)
	for i := 0; i < 7; i++ {
		entries = append(entries, feed.Entry{Title: "ai item " + long, Summary: long})
	}
	f := &fakeFetcher{entries: map[string][]feed.Entry{"http://t": entries}}
	g := New(f, testCfg(config.FeedConfig{URL: "http://t", Source: "t", Category: "tech"}))

	got := g.Collect(context.Background())
	require.Len(t, got, 5) // per-source cap
	for _, c := range got {
		assert.LessOrEqual(t, len([]rune(c.Title)), 300)
		assert.LessOrEqual(t, len([]rune(c.Summary)), 500)
		assert.Zero(t, c.RelevanceScore)
	}
}

func TestCollectEmptyTitlesSkipped(t *testing.T) {
	f := &fakeFetcher{entries: map[string][]feed.Entry{
		"http://t": {{Title: "   "}, {Title: "automation wins"}},
	}}
	g := New(f, testCfg(config.FeedConfig{URL: "http://t", Source: "t", Category: "tech"}))

	got := g.Collect(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "automation wins", got[0].Title)
}
