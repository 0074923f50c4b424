// Package score assigns relevance scores to candidates and ranks them.
package score

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"content-loop/internal/ai"
	"content-loop/internal/jsonx"
	"content-loop/internal/model"
)

// maxScored bounds the portion of the batch sent to the model, to keep
// token cost predictable.
const maxScored = 20

// Fallback scoring: base plus a fixed step per matched keyword, capped at 1.
// Tunable constants, not invariants.
const (
	fallbackBase = 0.5
	fallbackStep = 0.1
)

var fallbackKeywords = []string{"agent", "automation", "business", "company", "enterprise", "saas", "ai"}

const rubric = `Score these AI/tech trends 0.0-1.0 for how relevant they are to a B2B
audience interested in AI agents, automation, and business AI applications.

Higher scores for:
- AI agents, automation, business use cases
- New AI models, breakthroughs, tools
- Industry trends that affect SMBs

Lower scores for:
- Pure academic/research without business relevance
- Crypto/blockchain unrelated to AI
- Gaming/entertainment AI

Trends:
%s
Return ONLY a JSON array of numbers (scores), one per trend, in order. Nothing else.`

// Scorer populates relevance scores. With a nil Completer it falls back to
// deterministic keyword scoring.
type Scorer struct {
	LLM ai.Completer
}

// Rank writes a relevance score onto every candidate and returns the list
// sorted descending by score. The sort is stable: equal scores keep their
// original relative order. The output is never shorter than the input; a
// model or parse failure only degrades ranking quality.
func (s *Scorer) Rank(ctx context.Context, cands []model.Candidate) []model.Candidate {
	if len(cands) == 0 {
		return cands
	}
	if s.LLM == nil {
		for i := range cands {
			cands[i].RelevanceScore = keywordScore(cands[i].Title)
		}
	} else {
		s.modelScore(ctx, cands)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].RelevanceScore > cands[j].RelevanceScore
	})
	return cands
}

// modelScore sends the first maxScored titles as a numbered list and assigns
// returned scores by position. Extra scores are ignored; missing ones leave
// the default 0.0. Any call or parse error leaves scores untouched.
func (s *Scorer) modelScore(ctx context.Context, cands []model.Candidate) {
	n := len(cands)
	if n > maxScored {
		n = maxScored
	}
	b := &strings.Builder{}
	for i := 0; i < n; i++ {
		fmt.Fprintf(b, "%d. %s\n", i+1, cands[i].Title)
	}
	out, err := s.LLM.Complete(ctx, ai.Request{
		User:      fmt.Sprintf(rubric, b.String()),
		MaxTokens: 300,
	})
	if err != nil {
		slog.Warn("score: model call failed, keeping default scores", "err", err)
		return
	}
	var scores []float64
	if err := jsonx.Unmarshal(out, &scores); err != nil {
		slog.Warn("score: response parse failed, keeping default scores", "err", err)
		return
	}
	for i, sc := range scores {
		if i >= n {
			break
		}
		cands[i].RelevanceScore = clamp(sc)
	}
}

func keywordScore(title string) float64 {
	lower := strings.ToLower(title)
	score := fallbackBase
	for _, kw := range fallbackKeywords {
		if strings.Contains(lower, kw) {
			score += fallbackStep
		}
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
