// Package generate turns a ranked candidate into finished content items.
package generate

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"content-loop/internal/ai"
	"content-loop/internal/config"
	"content-loop/internal/jsonx"
	"content-loop/internal/model"
)

// Item kinds.
const (
	KindArticle = "article"
	KindPost    = "post"
)

// ErrNoModel is returned when generation is attempted without model access.
// Generation has a hard precondition on the model; there is no fallback
// that fabricates content.
var ErrNoModel = errors.New("generate: no model available")

//go:embed prompt_article.tmpl
var articlePromptTpl string

//go:embed prompt_post.tmpl
var postPromptTpl string

var (
	articlePrompt = template.Must(template.New("article").Parse(articlePromptTpl))
	postPrompt    = template.Must(template.New("post").Parse(postPromptTpl))
)

// articleDraft is the typed shape of the model's article response.
type articleDraft struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ReadingTime string   `json:"reading_time"`
}

// postDraft is the typed shape of the model's short-form response.
type postDraft struct {
	Content     string   `json:"content"`
	Hashtags    []string `json:"hashtags"`
	ImagePrompt string   `json:"image_prompt"`
}

type promptData struct {
	Title        string
	Summary      string
	Source       string
	Target       string
	Language     string
	Style        string
	MaxLength    int
	BrandName    string
	BrandContext string
}

// Generator produces one item per candidate/target pair.
type Generator struct {
	LLM ai.Completer
}

// Generate builds one item of the given kind from a candidate for a target.
// Returns ErrNoModel when no completer is configured; any model or parse
// failure yields no item for this target without affecting others.
func (g *Generator) Generate(ctx context.Context, kind string, cand model.Candidate, target config.TargetConfig) (*model.GeneratedItem, error) {
	if g.LLM == nil {
		return nil, ErrNoModel
	}
	switch kind {
	case KindArticle:
		return g.article(ctx, cand, target)
	case KindPost:
		return g.post(ctx, cand, target)
	default:
		return nil, fmt.Errorf("generate: unknown kind %q", kind)
	}
}

func (g *Generator) article(ctx context.Context, cand model.Candidate, target config.TargetConfig) (*model.GeneratedItem, error) {
	prompt, err := render(articlePrompt, promptData{
		Title:        cand.Title,
		Summary:      cand.Summary,
		Source:       cand.Source,
		Language:     target.Language,
		BrandName:    brandName,
		BrandContext: brandContext,
	})
	if err != nil {
		return nil, err
	}
	out, err := g.LLM.Complete(ctx, ai.Request{User: prompt, MaxTokens: 4000})
	if err != nil {
		return nil, fmt.Errorf("generate: article call: %w", err)
	}
	var draft articleDraft
	if err := jsonx.Unmarshal(out, &draft); err != nil {
		return nil, fmt.Errorf("generate: article response: %w", err)
	}
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Content) == "" {
		return nil, errors.New("generate: article response missing title or content")
	}

	slug := Slugify(draft.Slug)
	if slug == "" {
		slug = Slugify(draft.Title)
	}
	// Disambiguate slugs across targets generated from the same topic.
	if target.Tag != "" && !strings.HasSuffix(slug, "-"+target.Tag) {
		slug = slug + "-" + target.Tag
	}

	item := &model.GeneratedItem{
		Target:      target.Tag,
		Kind:        KindArticle,
		Title:       draft.Title,
		Slug:        slug,
		Description: draft.Description,
		Body:        draft.Content + ctaFor(KindArticle, target.Tag),
		Category:    defaultString(draft.Category, "AI Trends"),
		Tags:        defaultTags(draft.Tags),
		ReadingTime: defaultString(draft.ReadingTime, "6 min"),
		TrendSource: cand.URL,
	}
	slog.Info("generate: article generated", "target", target.Tag, "slug", item.Slug)
	return item, nil
}

func (g *Generator) post(ctx context.Context, cand model.Candidate, target config.TargetConfig) (*model.GeneratedItem, error) {
	prompt, err := render(postPrompt, promptData{
		Title:        cand.Title,
		Summary:      cand.Summary,
		Target:       target.Tag,
		Style:        target.Style,
		MaxLength:    target.MaxLength,
		BrandContext: brandContext,
	})
	if err != nil {
		return nil, err
	}
	out, err := g.LLM.Complete(ctx, ai.Request{User: prompt, MaxTokens: 1000})
	if err != nil {
		return nil, fmt.Errorf("generate: post call: %w", err)
	}
	var draft postDraft
	if err := jsonx.Unmarshal(out, &draft); err != nil {
		return nil, fmt.Errorf("generate: post response: %w", err)
	}
	if strings.TrimSpace(draft.Content) == "" {
		return nil, errors.New("generate: post response missing content")
	}

	body := draft.Content + ctaFor(KindPost, target.Tag)
	// Hard cap for short-form targets.
	if target.MaxLength > 0 {
		if r := []rune(body); len(r) > target.MaxLength {
			body = string(r[:target.MaxLength])
		}
	}
	item := &model.GeneratedItem{
		Target:      target.Tag,
		Kind:        KindPost,
		Title:       truncateTitle(draft.Content),
		Body:        body,
		Tags:        defaultTags(draft.Hashtags),
		MediaPrompt: draft.ImagePrompt,
		TrendSource: cand.URL,
	}
	slog.Info("generate: post generated", "target", target.Tag, "chars", len(item.Body))
	return item, nil
}

func render(t *template.Template, d promptData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("generate: render prompt: %w", err)
	}
	return buf.String(), nil
}

func defaultString(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func defaultTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{"AI", "agents"}
	}
	return tags
}

// truncateTitle derives a record title from the first 100 runes of a post.
func truncateTitle(content string) string {
	r := []rune(strings.TrimSpace(content))
	if len(r) > 100 {
		r = r[:100]
	}
	if i := strings.IndexByte(string(r), '\n'); i >= 0 {
		return string(r)[:i]
	}
	return string(r)
}
