// Package store persists pipeline output: a content collection and an
// audit collection in Postgres, plus redis-backed duplicate suppression.
package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"content-loop/internal/model"
)

// Postgres writes the content and audit collections. Records are
// append-only; this pipeline never updates rows in place.
type Postgres struct {
	db *sqlx.DB
}

// Open connects to the store. A misconfigured connection here is the one
// fatal startup condition of the pipeline.
func Open(dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, fmt.Errorf("store: database dsn is required")
	}
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error { return p.db.Close() }

//go:embed schema.sql
var schemaSQL string

// Migrate applies the schema. Every statement is IF NOT EXISTS, so calling
// it on an existing database is a no-op.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("store: apply schema: %w", err)
	}
	return nil
}

// InsertRecord appends one scheduled record to the content collection.
// Everything not in a primary column travels in the metadata blob.
func (p *Postgres) InsertRecord(ctx context.Context, rec model.ScheduledRecord) error {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	meta, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("store: encode metadata: %w", err)
	}
	const q = `
		INSERT INTO content_calendar (
			id, type, platform, title, content, media_url, status,
			scheduled_for, trend_source, critic_score, critic_feedback, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = p.db.ExecContext(ctx, q,
		id,
		rec.Type,
		rec.Target,
		rec.Title,
		rec.Body,
		rec.MediaURL,
		rec.Status,
		rec.ScheduledFor,
		rec.TrendSource,
		rec.Verdict.Score,
		rec.Verdict.Feedback,
		meta,
	)
	if err != nil {
		return fmt.Errorf("store: insert record: %w", err)
	}
	return nil
}

// LogRun appends one audit event.
func (p *Postgres) LogRun(ctx context.Context, ev model.RunEvent) error {
	in, err := json.Marshal(ev.Input)
	if err != nil {
		return fmt.Errorf("store: encode input: %w", err)
	}
	out, err := json.Marshal(ev.Output)
	if err != nil {
		return fmt.Errorf("store: encode output: %w", err)
	}
	const q = `
		INSERT INTO agent_logs (id, agent_type, action, status, input, output, error, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`
	if _, err := p.db.ExecContext(ctx, q,
		uuid.NewString(), ev.AgentType, ev.Action, ev.Status, in, out, ev.Err, ev.DurationMS,
	); err != nil {
		return fmt.Errorf("store: insert audit event: %w", err)
	}
	return nil
}

// InsertCandidates stores an audit copy of the top selections. Best-effort:
// duplicates are ignored via the unique source/url pair.
func (p *Postgres) InsertCandidates(ctx context.Context, cands []model.Candidate) error {
	const q = `
		INSERT INTO trends (id, source, category, title, url, summary, relevance_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source, url) DO NOTHING`
	for _, c := range cands {
		if _, err := p.db.ExecContext(ctx, q,
			uuid.NewString(), c.Source, c.Category, c.Title, c.URL, c.Summary, c.RelevanceScore,
		); err != nil {
			return fmt.Errorf("store: insert candidate: %w", err)
		}
	}
	return nil
}
