package cmd

import (
	"time"

	"content-loop/internal/ai"
	"content-loop/internal/config"
	"content-loop/internal/critic"
	"content-loop/internal/feed"
	"content-loop/internal/generate"
	"content-loop/internal/imagegen"
	"content-loop/internal/ingest"
	"content-loop/internal/pipeline"
	"content-loop/internal/redisclient"
	"content-loop/internal/score"
	"content-loop/internal/store"
)

// runtime bundles the collaborators shared by every pipeline plus the
// resources to release on shutdown.
type runtime struct {
	cfg     config.Config
	llm     ai.Completer
	visuals imagegen.Generator
	content pipeline.ContentStore
	audit   pipeline.AuditStore
	archive pipeline.CandidateArchive
	dedup   pipeline.Dedup
	dry     *store.DryRun
	closers []func() error
}

// newRuntime opens the stores and builds the shared collaborators. In
// dry-run mode every store is replaced by an in-memory recorder, so no
// database or Redis is needed to rehearse a run.
func newRuntime(cfg config.Config) (*runtime, error) {
	rt := &runtime{cfg: cfg}

	if cfg.LLM.APIKey != "" {
		rt.llm = ai.NewOpenAI(ai.Config{
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			BaseURL: cfg.LLM.BaseURL,
		})
	}
	imgTimeout, err := time.ParseDuration(cfg.Image.Timeout)
	if err != nil || imgTimeout <= 0 {
		imgTimeout = 30 * time.Second
	}
	rt.visuals = imagegen.NewPollinations(imagegen.PollinationsConfig{
		BaseURL: cfg.Image.BaseURL,
		Width:   cfg.Image.Width,
		Height:  cfg.Image.Height,
		Timeout: imgTimeout,
	})

	if cfg.App.DryRun {
		rt.dry = store.NewDryRun()
		rt.content, rt.audit, rt.archive, rt.dedup = rt.dry, rt.dry, rt.dry, rt.dry
		return rt, nil
	}

	pg, err := store.Open(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, pg.Close)
	rt.content, rt.audit, rt.archive = pg, pg, pg

	rdb := redisclient.New(cfg.Redis)
	rt.closers = append(rt.closers, rdb.Close)
	rt.dedup = store.NewRedisDedup(rdb)

	return rt, nil
}

func (rt *runtime) Close() {
	for _, c := range rt.closers {
		_ = c()
	}
}

// pipelineFor assembles one configured pipeline with the shared
// collaborators.
func (rt *runtime) pipelineFor(pc config.PipelineConfig) *pipeline.Pipeline {
	fetchTimeout, err := time.ParseDuration(rt.cfg.Ingest.FetchTimeout)
	if err != nil || fetchTimeout <= 0 {
		fetchTimeout = 15 * time.Second
	}
	return pipeline.New(pc, pipeline.Deps{
		Ingestor:  ingest.New(feed.NewClient(fetchTimeout), rt.cfg.Ingest),
		Scorer:    &score.Scorer{LLM: rt.llm},
		Generator: &generate.Generator{LLM: rt.llm},
		Visuals:   rt.visuals,
		Critic:    &critic.Critic{LLM: rt.llm},
		Content:   rt.content,
		Audit:     rt.audit,
		Archive:   rt.archive,
		Dedup:     rt.dedup,
	})
}
