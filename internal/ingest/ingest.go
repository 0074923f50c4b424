// Package ingest collects candidate topics from the configured feeds.
package ingest

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"content-loop/internal/config"
	"content-loop/internal/feed"
	"content-loop/internal/model"
)

const (
	maxTitleLen   = 300
	maxSummaryLen = 500
)

// Fetcher abstracts the feed client for testing.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]feed.Entry, error)
}

// Ingestor pulls entries from each configured source, filters them for
// domain relevance and normalizes them into candidates. A failing source is
// logged and skipped; it never aborts the batch.
type Ingestor struct {
	client       Fetcher
	feeds        []config.FeedConfig
	perSource    int
	fetchTimeout time.Duration
	priority     map[string]struct{}
	keywords     []string
}

func New(client Fetcher, cfg config.IngestConfig) *Ingestor {
	timeout, err := time.ParseDuration(cfg.FetchTimeout)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
	}
	perSource := cfg.PerSource
	if perSource <= 0 {
		perSource = 5
	}
	priority := make(map[string]struct{}, len(cfg.PriorityCategories))
	for _, c := range cfg.PriorityCategories {
		priority[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}
	keywords := make([]string, 0, len(cfg.Keywords))
	for _, k := range cfg.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return &Ingestor{
		client:       client,
		feeds:        cfg.Feeds,
		perSource:    perSource,
		fetchTimeout: timeout,
		priority:     priority,
		keywords:     keywords,
	}
}

// Collect fetches all sources concurrently and returns the kept candidates.
// Source order is preserved in the output so downstream tie-breaking stays
// deterministic.
func (g *Ingestor) Collect(ctx context.Context) []model.Candidate {
	const maxWorkers = 4

	results := make([][]model.Candidate, len(g.feeds))
	sem := make(chan struct{}, maxWorkers)
	done := make(chan int, len(g.feeds))
	for i := range g.feeds {
		i := i
		sem <- struct{}{}
		go func() {
			defer func() { <-sem }()
			results[i] = g.collectSource(ctx, g.feeds[i])
			done <- i
		}()
	}
	for range g.feeds {
		<-done
	}

	var out []model.Candidate
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func (g *Ingestor) collectSource(ctx context.Context, fc config.FeedConfig) []model.Candidate {
	ctx, cancel := context.WithTimeout(ctx, g.fetchTimeout)
	defer cancel()

	entries, err := g.client.Fetch(ctx, fc.URL)
	if err != nil {
		slog.Warn("ingest: source fetch failed", "source", fc.Source, "err", err)
		return nil
	}
	if len(entries) > g.perSource {
		entries = entries[:g.perSource]
	}
	out := make([]model.Candidate, 0, len(entries))
	for _, e := range entries {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			continue
		}
		if !g.keep(title, fc.Category) {
			continue
		}
		out = append(out, model.Candidate{
			Source:   fc.Source,
			Category: fc.Category,
			Title:    truncate(title, maxTitleLen),
			URL:      e.Link,
			Summary:  truncate(strings.TrimSpace(e.Summary), maxSummaryLen),
		})
	}
	slog.Info("ingest: source collected", "source", fc.Source, "kept", len(out))
	return out
}

// keep accepts a candidate when its category is a priority category or its
// title contains any domain keyword (case-insensitive).
func (g *Ingestor) keep(title, category string) bool {
	if _, ok := g.priority[strings.ToLower(strings.TrimSpace(category))]; ok {
		return true
	}
	lower := strings.ToLower(title)
	for _, kw := range g.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
