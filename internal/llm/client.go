// Package llm wraps the text-generation API used by the generator and the
// translator. Both expect one JSON object back per call.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Client is a single-completion text generation call.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAI talks to the real API.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAI) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Placeholder stands in when no API key is configured, so the pipeline
// stays runnable with partial configuration. Every call returns the same
// canned object and logs what it would have asked.
type Placeholder struct {
	Log *zap.SugaredLogger
}

func (p *Placeholder) Complete(ctx context.Context, system, user string) (string, error) {
	p.Log.Warnw("OPENAI_API_KEY not set, returning placeholder content",
		"promptLen", len(user))
	return `{"title":"PLACEHOLDER","subtitle":"PLACEHOLDER","description":"<p>PLACEHOLDER</p>","seoTitle":"PLACEHOLDER","seoDescription":"PLACEHOLDER"}`, nil
}

// New returns the real client when a key is configured, a Placeholder
// otherwise.
func New(apiKey, model string, log *zap.SugaredLogger) Client {
	if apiKey == "" {
		return &Placeholder{Log: log}
	}
	return NewOpenAI(apiKey, model)
}

// ExtractJSON parses a single JSON object out of a completion, tolerating a
// markdown code fence around it.
func ExtractJSON(raw string, out any) error {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("parse completion: %w (raw: %s)", err, Excerpt(raw, 160))
	}
	return nil
}

// Excerpt truncates a payload for log output.
func Excerpt(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
