package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Request is a single chat-completion call: one system prompt, one user
// message, and a token budget.
type Request struct {
	System    string
	User      string
	MaxTokens int
}

// Completer is the model interface used by the scorer, generator and critic.
// Implementations return the raw text payload; callers extract structure
// from it themselves.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// OpenAIClient implements Completer using the OpenAI Chat Completions API
// (or any compatible endpoint via BaseURL).
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("ai: model must be specified")
	}
	return &OpenAIClient{client: c, model: model}
}

func (o *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	// Default timeout guard, if caller didn't set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 120*time.Second)
		defer cancel()
	}
	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	if strings.TrimSpace(req.System) != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.User})

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    msgs,
		MaxTokens:   req.MaxTokens,
		Temperature: 0.4,
	})
	if err != nil {
		slog.Error("ai: completion error", "err", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
