// Package critic independently reviews generated items for quality and
// compliance before anything is persisted.
package critic

import (
	"context"
	"fmt"
	"log/slog"

	"content-loop/internal/ai"
	"content-loop/internal/jsonx"
	"content-loop/internal/model"
)

// maxBodyRunes bounds the portion of the body sent for review.
const maxBodyRunes = 2000

const reviewPrompt = `Review this %s content for quality and compliance.

TITLE: %s
TARGET: %s
CONTENT (may be truncated):
%s

Check for:
1. Quality (engaging, professional, on-brand)
2. Accuracy (no false claims or hallucinated facts)
3. Compliance (no personal data exposure)
4. Platform/audience appropriateness
5. Language correctness and fluency

Return JSON: {"approved": true/false, "score": 0.0-1.0, "feedback": "brief feedback", "suggested_edits": "..." or null}`

// verdictPayload is the typed shape of the model's review response.
type verdictPayload struct {
	Approved       bool    `json:"approved"`
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	SuggestedEdits string  `json:"suggested_edits"`
}

// Critic reviews items via a second model instance. When the model is
// unavailable or fails, the verdict is fail-closed: unreviewed content must
// not ship, so it is routed to manual review instead.
type Critic struct {
	LLM ai.Completer
}

// Review scores one item. Never returns an error; failures collapse into
// the fail-closed verdict.
func (c *Critic) Review(ctx context.Context, item *model.GeneratedItem) model.CriticVerdict {
	if c.LLM == nil {
		return failClosed("critic unavailable - manual review required")
	}
	body := item.Body
	if r := []rune(body); len(r) > maxBodyRunes {
		body = string(r[:maxBodyRunes])
	}
	out, err := c.LLM.Complete(ctx, ai.Request{
		User:      fmt.Sprintf(reviewPrompt, item.Kind, item.Title, item.Target, body),
		MaxTokens: 500,
	})
	if err != nil {
		slog.Warn("critic: review call failed", "target", item.Target, "err", err)
		return failClosed("critic call failed - manual review required")
	}
	var v verdictPayload
	if err := jsonx.Unmarshal(out, &v); err != nil {
		slog.Warn("critic: response parse failed", "target", item.Target, "err", err)
		return failClosed("critic response unparseable - manual review required")
	}
	return model.CriticVerdict{
		Approved:       v.Approved,
		Score:          clamp(v.Score),
		Feedback:       v.Feedback,
		SuggestedEdits: v.SuggestedEdits,
	}
}

func failClosed(feedback string) model.CriticVerdict {
	return model.CriticVerdict{Approved: false, Score: 0, Feedback: feedback}
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
