package store

import (
	"context"
	"log/slog"

	"content-loop/internal/model"
)

// DryRun stands in for the persistent collaborators during rehearsal runs.
// Content writes are recorded in memory and reported instead of executed;
// audit events go to the log only. Nothing external is touched.
type DryRun struct {
	records []model.ScheduledRecord
}

func NewDryRun() *DryRun { return &DryRun{} }

func (d *DryRun) InsertRecord(_ context.Context, rec model.ScheduledRecord) error {
	d.records = append(d.records, rec)
	slog.Info("dry-run: would persist record",
		"target", rec.Target, "status", rec.Status, "scheduled_for", rec.ScheduledFor)
	return nil
}

func (d *DryRun) LogRun(_ context.Context, ev model.RunEvent) error {
	slog.Info("dry-run: audit event", "action", ev.Action, "status", ev.Status)
	return nil
}

func (d *DryRun) InsertCandidates(_ context.Context, cands []model.Candidate) error {
	slog.Info("dry-run: would store candidates", "count", len(cands))
	return nil
}

func (d *DryRun) SlugSeen(context.Context, string, string) (bool, error) { return false, nil }

func (d *DryRun) MarkSlug(context.Context, string, string) error { return nil }

// Records returns what would have been persisted, in insertion order.
func (d *DryRun) Records() []model.ScheduledRecord { return d.records }
