// Package worker runs pipelines on their configured intervals.
package worker

import (
	"context"
	"log/slog"
	"time"

	"content-loop/internal/model"
)

// Worker is a long-running unit supervised by the Manager. Start blocks
// until ctx is cancelled.
type Worker interface {
	Name() string
	Start(ctx context.Context) error
}

// Runner is the one-shot batch a PipelineWorker repeats.
type Runner interface {
	Run(ctx context.Context) *model.RunSummary
}

// PipelineWorker runs one pipeline immediately on start and then on every
// interval tick until the context is cancelled.
type PipelineWorker struct {
	name     string
	runner   Runner
	interval time.Duration
}

func NewPipelineWorker(name string, r Runner, interval time.Duration) *PipelineWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &PipelineWorker{name: name, runner: r, interval: interval}
}

func (w *PipelineWorker) Name() string { return w.name }

func (w *PipelineWorker) Start(ctx context.Context) error {
	slog.Info("worker: starting", "worker", w.name, "interval", w.interval)
	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("worker: stopping", "worker", w.name)
			return nil
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *PipelineWorker) runOnce(ctx context.Context) {
	sum := w.runner.Run(ctx)
	if sum.Err != "" {
		slog.Warn("worker: run ended with error",
			"worker", w.name, "err", sum.Err, "duration", sum.Duration)
		return
	}
	slog.Info("worker: run done",
		"worker", w.name,
		"candidates", sum.CandidatesFound,
		"generated", sum.ItemsGenerated,
		"persisted", sum.ItemsPersisted,
		"duration", sum.Duration,
	)
}
