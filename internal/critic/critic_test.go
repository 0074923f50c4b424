package critic

import (
	"context"
	"errors"
	"strings"
	"testing"

	"content-loop/internal/ai"
	"content-loop/internal/model"

	"github.com/stretchr/testify/assert"
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

var item = &model.GeneratedItem{
	Target: "linkedin",
	Kind:   "post",
	Title:  "AI agents are here",
	Body:   "AI agents are here and they ship value.",
}

func TestReviewApproved(t *testing.T) {
	f := &fakeCompleter{response: `The review:
{"approved": true, "score": 0.85, "feedback": "solid", "suggested_edits": null}`}
	c := &Critic{LLM: f}

	v := c.Review(context.Background(), item)
	assert.True(t, v.Approved)
	assert.Equal(t, 0.85, v.Score)
	assert.Equal(t, "solid", v.Feedback)
	assert.Contains(t, f.lastUser, "AI agents are here")
}

func TestReviewFailClosedWithoutModel(t *testing.T) {
	c := &Critic{}
	v := c.Review(context.Background(), item)
	assert.False(t, v.Approved)
	assert.Zero(t, v.Score)
	assert.Contains(t, v.Feedback, "manual review required")
}

func TestReviewFailClosedOnErrors(t *testing.T) {
	cases := map[string]*fakeCompleter{
		"call error":  {err: errors.New("timeout")},
		"parse error": {response: "I cannot review this."},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			c := &Critic{LLM: f}
			v := c.Review(context.Background(), item)
			assert.False(t, v.Approved)
			assert.Zero(t, v.Score)
			assert.Contains(t, v.Feedback, "manual review required")
		})
	}
}

func TestReviewBodyBounded(t *testing.T) {
	f := &fakeCompleter{response: `{"approved": true, "score": 0.7, "feedback": "ok"}`}
	c := &Critic{LLM: f}
	big := &model.GeneratedItem{Kind: "article", Body: strings.Repeat("a", 10000)}

	c.Review(context.Background(), big)
	assert.Less(t, len(f.lastUser), 4000)
}

func TestReviewScoreClamped(t *testing.T) {
	f := &fakeCompleter{response: `{"approved": true, "score": 3.2, "feedback": ""}`}
	c := &Critic{LLM: f}
	v := c.Review(context.Background(), item)
	assert.Equal(t, 1.0, v.Score)
}
