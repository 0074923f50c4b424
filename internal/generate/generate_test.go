package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"content-loop/internal/ai"
	"content-loop/internal/config"
	"content-loop/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	response string
	err      error
	lastUser string
}

func (f *fakeCompleter) Complete(_ context.Context, req ai.Request) (string, error) {
	f.lastUser = req.User
	return f.response, f.err
}

var cand = model.Candidate{
	Source:  "hackernews",
	Title:   "AI agent raises funding",
	URL:     "http://example.com/a",
	Summary: "A startup raised money.",
}

func TestSlugifyIdempotentAndBounded(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":            "hello-world",
		"  AI__agents   for SMBs ": "ai-agents-for-smbs",
		"al-ready-normal":          "al-ready-normal",
		"--weird---input--":        "weird-input",
	}
	for in, want := range cases {
		got := Slugify(in)
		assert.Equal(t, want, got, "input %q", in)
		assert.Equal(t, got, Slugify(got), "idempotence for %q", in)
	}

	long := Slugify(strings.Repeat("word ", 40))
	assert.LessOrEqual(t, len([]rune(long)), 80)
	assert.False(t, strings.HasSuffix(long, "-"))

	for _, r := range Slugify("Ünïcode & Friends 42!") {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.True(t, ok, "unexpected rune %q", r)
	}
}

func TestGenerateRequiresModel(t *testing.T) {
	g := &Generator{}
	_, err := g.Generate(context.Background(), KindArticle, cand, config.TargetConfig{Tag: "en"})
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestGenerateArticle(t *testing.T) {
	f := &fakeCompleter{response: "```json\n" + `{
		"title": "Why AI Agents Matter Now",
		"slug": "Why AI Agents Matter!",
		"description": "A look at agent funding.",
		"content": "## What happened?\n\nAgents got funded.",
		"category": "AI Agents",
		"tags": ["ai", "funding"],
		"reading_time": "5 min"
	}` + "\n```"}
	g := &Generator{LLM: f}

	item, err := g.Generate(context.Background(), KindArticle, cand, config.TargetConfig{Tag: "en", Language: "English"})
	require.NoError(t, err)
	assert.Equal(t, "why-ai-agents-matter-en", item.Slug)
	assert.Equal(t, KindArticle, item.Kind)
	assert.Contains(t, item.Body, "## What happened?")
	assert.Contains(t, item.Body, "Ready to deploy AI agents", "fixed CTA appended")
	assert.Equal(t, cand.URL, item.TrendSource)
	assert.Contains(t, f.lastUser, "TREND: AI agent raises funding")
	assert.Contains(t, f.lastUser, "NovaClaw")
}

func TestGenerateArticleDutchCTAAndSlugSuffix(t *testing.T) {
	f := &fakeCompleter{response: `{"title": "T", "slug": "ai-trends-nl", "content": "body"}`}
	g := &Generator{LLM: f}

	item, err := g.Generate(context.Background(), KindArticle, cand, config.TargetConfig{Tag: "nl", Language: "Dutch (Nederlands)"})
	require.NoError(t, err)
	assert.Equal(t, "ai-trends-nl", item.Slug, "existing suffix is not doubled")
	assert.Contains(t, item.Body, "Klaar om AI agents")
	assert.Equal(t, "AI Trends", item.Category, "absent category defaulted")
	assert.Equal(t, []string{"AI", "agents"}, item.Tags)
}

func TestGeneratePostTruncatedToMaxLength(t *testing.T) {
	f := &fakeCompleter{response: `{"content": "` + strings.Repeat("x", 300) + `", "hashtags": ["AI"], "image_prompt": "robots"}`}
	g := &Generator{LLM: f}

	item, err := g.Generate(context.Background(), KindPost, cand, config.TargetConfig{Tag: "twitter", MaxLength: 280})
	require.NoError(t, err)
	assert.Len(t, []rune(item.Body), 280)
	assert.Equal(t, "robots", item.MediaPrompt)
	assert.Equal(t, KindPost, item.Kind)
}

func TestGenerateFailuresYieldNoItem(t *testing.T) {
	cases := map[string]*fakeCompleter{
		"call error":      {err: errors.New("timeout")},
		"not json":        {response: "sorry"},
		"missing content": {response: `{"title": "only a title"}`},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			g := &Generator{LLM: f}
			item, err := g.Generate(context.Background(), KindArticle, cand, config.TargetConfig{Tag: "en"})
			assert.Error(t, err)
			assert.Nil(t, item)
		})
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	g := &Generator{LLM: &fakeCompleter{}}
	_, err := g.Generate(context.Background(), "video", cand, config.TargetConfig{})
	assert.Error(t, err)
}
