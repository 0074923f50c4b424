package model

import "time"

// Candidate is a topic item discovered from an external feed, pre-scoring.
// Fields other than RelevanceScore are fixed at ingestion time; the scorer
// writes RelevanceScore exactly once per run.
type Candidate struct {
	Source         string  `json:"source"`
	Category       string  `json:"category"`
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Summary        string  `json:"summary"`
	RelevanceScore float64 `json:"relevance_score"`
}

// GeneratedItem is one finished piece of content produced from a single
// candidate for a single target. Immutable once created.
type GeneratedItem struct {
	Target      string   `json:"target"`   // language or platform tag, e.g. "nl", "linkedin"
	Kind        string   `json:"kind"`     // "article" or "post"
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`     // articles only
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ReadingTime string   `json:"reading_time"` // articles only, e.g. "6 min"
	MediaPrompt string   `json:"media_prompt"`
	TrendSource string   `json:"trend_source"` // URL of the source candidate
}

// CriticVerdict is the outcome of an independent review of one item.
type CriticVerdict struct {
	Approved       bool    `json:"approved"`
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	SuggestedEdits string  `json:"suggested_edits,omitempty"`
}

// Lifecycle statuses for a persisted record.
const (
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusReview    = "review"
	StatusFailed    = "failed"
)

// ScheduledRecord is the persisted unit: an item, its verdict, a publish
// time and a lifecycle status. Append-only; this pipeline never updates it.
type ScheduledRecord struct {
	ID           string        `db:"id" json:"id"`
	Type         string        `db:"type" json:"type"` // "text" or "image"
	Target       string        `db:"platform" json:"target"`
	Title        string        `db:"title" json:"title"`
	Body         string        `db:"content" json:"body"`
	MediaURL     string        `db:"media_url" json:"media_url,omitempty"`
	Status       string        `db:"status" json:"status"`
	ScheduledFor time.Time     `db:"scheduled_for" json:"scheduled_for"`
	TrendSource  string        `db:"trend_source" json:"trend_source"`
	Verdict      CriticVerdict `db:"-" json:"verdict"`
	Metadata     map[string]any `db:"-" json:"metadata,omitempty"`
}

// RunEvent is one audit record: a start-of-run or end-of-run entry written
// to the audit collection.
type RunEvent struct {
	AgentType  string         `json:"agent_type"`
	Action     string         `json:"action"`
	Status     string         `json:"status"`
	Input      map[string]any `json:"input"`
	Output     map[string]any `json:"output"`
	Err        string         `json:"error,omitempty"`
	DurationMS int64          `json:"duration_ms,omitempty"`
}

// RunSummary aggregates what one pipeline invocation did.
type RunSummary struct {
	Pipeline        string        `json:"pipeline"`
	CandidatesFound int           `json:"candidates_found"`
	ItemsGenerated  int           `json:"items_generated"`
	ItemsPersisted  int           `json:"items_persisted"`
	Duration        time.Duration `json:"-"`
	DurationMS      int64         `json:"duration_ms"`
	Err             string        `json:"error,omitempty"`
}
