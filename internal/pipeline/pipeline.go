// Package pipeline sequences the content stages: ingest, score, generate,
// visualize, critique, schedule and persist. One invocation is one run.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"content-loop/internal/config"
	"content-loop/internal/critic"
	"content-loop/internal/generate"
	"content-loop/internal/imagegen"
	"content-loop/internal/ingest"
	"content-loop/internal/markdown"
	"content-loop/internal/model"
	"content-loop/internal/schedule"
	"content-loop/internal/score"
)

// ContentStore receives the persisted records.
type ContentStore interface {
	InsertRecord(ctx context.Context, rec model.ScheduledRecord) error
}

// AuditStore receives the run-level start/complete events.
type AuditStore interface {
	LogRun(ctx context.Context, ev model.RunEvent) error
}

// CandidateArchive stores an audit copy of the top selections.
type CandidateArchive interface {
	InsertCandidates(ctx context.Context, cands []model.Candidate) error
}

// Dedup answers whether a slug/target pair was already published.
type Dedup interface {
	SlugSeen(ctx context.Context, target, slug string) (bool, error)
	MarkSlug(ctx context.Context, target, slug string) error
}

// Deps wires all collaborators into the orchestrator. Visuals, Archive and
// Dedup are optional; the others are required.
type Deps struct {
	Ingestor  *ingest.Ingestor
	Scorer    *score.Scorer
	Generator *generate.Generator
	Visuals   imagegen.Generator
	Critic    *critic.Critic
	Content   ContentStore
	Audit     AuditStore
	Archive   CandidateArchive
	Dedup     Dedup
}

// Pipeline runs one configured content pipeline end to end.
type Pipeline struct {
	cfg  config.PipelineConfig
	deps Deps
	now  func() time.Time
}

func New(cfg config.PipelineConfig, deps Deps) *Pipeline {
	return &Pipeline{cfg: cfg, deps: deps, now: time.Now}
}

// Run executes one batch. Item and source failures are contained within
// their stage; the summary is the single source of truth for what happened.
// Exactly one start and one end audit event are emitted, also on early
// termination.
func (p *Pipeline) Run(ctx context.Context) *model.RunSummary {
	start := p.now()
	summary := &model.RunSummary{Pipeline: p.cfg.Name}
	targets := make([]string, 0, len(p.cfg.Targets))
	for _, t := range p.cfg.Targets {
		targets = append(targets, t.Tag)
	}
	p.audit(ctx, model.RunEvent{
		AgentType: p.cfg.Name,
		Action:    p.cfg.Name + "_run_start",
		Status:    "running",
		Input:     map[string]any{"targets": targets, "kind": p.cfg.Kind},
	})
	defer func() {
		summary.Duration = p.now().Sub(start)
		summary.DurationMS = summary.Duration.Milliseconds()
		status := "success"
		if summary.Err != "" {
			status = "failed"
		}
		p.audit(ctx, model.RunEvent{
			AgentType: p.cfg.Name,
			Action:    p.cfg.Name + "_run_complete",
			Status:    status,
			Input:     map[string]any{"targets": targets},
			Output: map[string]any{
				"candidates_found": summary.CandidatesFound,
				"items_generated":  summary.ItemsGenerated,
				"items_persisted":  summary.ItemsPersisted,
			},
			Err:        summary.Err,
			DurationMS: p.now().Sub(start).Milliseconds(),
		})
	}()

	slog.Info("pipeline: run starting", "pipeline", p.cfg.Name)

	// Stage 1: ingest
	cands := p.deps.Ingestor.Collect(ctx)
	summary.CandidatesFound = len(cands)
	if len(cands) == 0 {
		// Valid terminal condition: nothing to write about today.
		summary.Err = "no candidates found"
		slog.Warn("pipeline: no candidates, stopping run", "pipeline", p.cfg.Name)
		return summary
	}

	// Stage 2: score and rank
	cands = p.deps.Scorer.Rank(ctx, cands)
	top := cands
	if p.cfg.TopCandidates > 0 && len(top) > p.cfg.TopCandidates {
		top = top[:p.cfg.TopCandidates]
	}
	if p.deps.Archive != nil {
		if err := p.deps.Archive.InsertCandidates(ctx, top); err != nil {
			slog.Warn("pipeline: candidate archive failed", "err", err)
		}
	}

	// Stage 3-6: generate, visualize, critique, schedule, persist
	for _, cand := range top {
		for _, target := range p.cfg.Targets {
			item, err := p.deps.Generator.Generate(ctx, p.cfg.Kind, cand, target)
			if err != nil {
				slog.Warn("pipeline: generation failed",
					"pipeline", p.cfg.Name, "target", target.Tag, "err", err)
				continue
			}
			summary.ItemsGenerated++
			if p.persist(ctx, item, target) {
				summary.ItemsPersisted++
			}
		}
	}
	if summary.ItemsGenerated == 0 {
		summary.Err = "no items generated"
	}

	slog.Info("pipeline: run finished",
		"pipeline", p.cfg.Name,
		"candidates", summary.CandidatesFound,
		"generated", summary.ItemsGenerated,
		"persisted", summary.ItemsPersisted,
	)
	return summary
}

// persist reviews one item and writes it when the verdict clears the
// pipeline threshold. Returns true when a record was inserted.
func (p *Pipeline) persist(ctx context.Context, item *model.GeneratedItem, target config.TargetConfig) bool {
	verdict := p.deps.Critic.Review(ctx, item)
	if verdict.Score < p.cfg.ApproveThreshold {
		slog.Info("pipeline: item rejected",
			"target", item.Target, "score", verdict.Score, "feedback", verdict.Feedback)
		return false
	}

	slug := item.Slug
	if slug == "" {
		slug = generate.Slugify(item.Title)
	}
	if p.deps.Dedup != nil {
		seen, err := p.deps.Dedup.SlugSeen(ctx, item.Target, slug)
		if err != nil {
			slog.Warn("pipeline: dedup check failed", "slug", slug, "err", err)
		} else if seen {
			slog.Info("pipeline: duplicate slug, skipping", "target", item.Target, "slug", slug)
			return false
		}
	}

	var mediaURL string
	if p.deps.Visuals != nil && item.MediaPrompt != "" {
		mediaURL = p.deps.Visuals.CoverURL(ctx, item.MediaPrompt)
	}

	status := model.StatusReview
	if verdict.Approved {
		if item.Kind == generate.KindArticle {
			status = model.StatusPublished
		} else {
			status = model.StatusScheduled
		}
	}
	recType := "text"
	if mediaURL != "" {
		recType = "image"
	}

	rec := model.ScheduledRecord{
		Type:         recType,
		Target:       item.Target,
		Title:        item.Title,
		Body:         p.renderBody(item),
		MediaURL:     mediaURL,
		Status:       status,
		ScheduledFor: schedule.NextPublishTime(p.now(), target.PreferredHours),
		TrendSource:  item.TrendSource,
		Verdict:      verdict,
		Metadata: map[string]any{
			"slug":          slug,
			"description":   item.Description,
			"category":      item.Category,
			"tags":          item.Tags,
			"reading_time":  item.ReadingTime,
			"critic_score": verdict.Score,
			"generated_at": p.now().UTC().Format(time.RFC3339),
			"author":       "NovaClaw AI Team",
		},
	}
	if err := p.deps.Content.InsertRecord(ctx, rec); err != nil {
		slog.Error("pipeline: persist failed", "target", item.Target, "slug", slug, "err", err)
		return false
	}
	if p.deps.Dedup != nil {
		if err := p.deps.Dedup.MarkSlug(ctx, item.Target, slug); err != nil {
			slog.Warn("pipeline: dedup mark failed", "slug", slug, "err", err)
		}
	}
	slog.Info("pipeline: record persisted",
		"target", item.Target, "slug", slug, "status", status, "scheduled_for", rec.ScheduledFor)
	return true
}

// renderBody formats the stored body. Articles carry their metadata as YAML
// frontmatter so the publishing frontend can read it without a second
// lookup; posts are stored verbatim.
func (p *Pipeline) renderBody(item *model.GeneratedItem) string {
	if item.Kind != generate.KindArticle {
		return item.Body
	}
	out, err := markdown.Compose(markdown.Document{
		Frontmatter: map[string]any{
			"slug":         item.Slug,
			"description":  item.Description,
			"category":     item.Category,
			"tags":         item.Tags,
			"reading_time": item.ReadingTime,
			"lang":         item.Target,
		},
		Body: "# " + item.Title + "\n\n" + item.Body,
	})
	if err != nil {
		slog.Warn("pipeline: frontmatter compose failed, storing bare body", "err", err)
		return "# " + item.Title + "\n\n" + item.Body
	}
	return out
}

func (p *Pipeline) audit(ctx context.Context, ev model.RunEvent) {
	if p.deps.Audit == nil {
		return
	}
	if err := p.deps.Audit.LogRun(ctx, ev); err != nil {
		slog.Warn("pipeline: audit log failed", "action", ev.Action, "err", err)
	}
}
