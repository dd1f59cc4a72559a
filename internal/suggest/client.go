// Package suggest asks a hosted chat model for a continuation of the draft
// or a title for it. Calls never fail from the caller's point of view: any
// error turns into a fixed fallback text.
package suggest

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	// ContextRunes is how much of the end of the draft a continuation sees.
	ContextRunes = 1000
	// TitleRunes is how much of the start of the draft a title sees.
	TitleRunes = 2000

	FallbackContinuation = "The page waits, quiet and patient, for the next thought to arrive."
	FallbackTitle        = "Untitled Reverie"
)

const (
	continuePrompt = "You are a gentle writing companion. Continue the user's text in the same voice, tense and style. " +
		"Reply with the continuation only, one short paragraph, without repeating the given text."
	titlePrompt = "You name pieces of writing. Suggest one short, evocative title of at most six words for the user's text. " +
		"Reply with the title only, without quotes."
)

var errEmptyResponse = errors.New("empty completion")

// Client talks to an OpenAI compatible chat completions endpoint. A Client
// without credentials is offline and always answers with the fallbacks.
type Client struct {
	api   *openai.Client
	model string
}

func New(apiKey, baseURL, model string) *Client {
	if apiKey == "" {
		return Offline()
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

func Offline() *Client {
	return &Client{}
}

func (c *Client) Online() bool {
	return c.api != nil
}

// ContinueText returns a continuation of text, written from its last
// ContextRunes runes.
func (c *Client) ContinueText(ctx context.Context, text string) string {
	out, err := c.complete(ctx, continuePrompt, Tail(text, ContextRunes), 0.8, 200)
	if err != nil {
		slog.Warn("continuation failed", "error", err)
		return FallbackContinuation
	}
	return out
}

// SuggestTitle returns a title for content, judged from its first
// TitleRunes runes.
func (c *Client) SuggestTitle(ctx context.Context, content string) string {
	out, err := c.complete(ctx, titlePrompt, Head(content, TitleRunes), 0.7, 20)
	if err != nil {
		slog.Warn("title suggestion failed", "error", err)
		return FallbackTitle
	}
	title := strings.Trim(strings.TrimSpace(out), "\"'“”‘’")
	if title == "" {
		return FallbackTitle
	}
	return title
}

// Check sends one tiny completion to find out whether the endpoint accepts
// the key and model. An empty answer still counts as accepted.
func (c *Client) Check(ctx context.Context) error {
	_, err := c.complete(ctx, "Reply with OK.", "ping", 0, 5)
	if errors.Is(err, errEmptyResponse) {
		return nil
	}
	return err
}

func (c *Client) complete(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	if c.api == nil {
		return "", errors.New("no API key configured")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyResponse
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", errEmptyResponse
	}
	return out, nil
}

// Tail returns the last n runes of s.
func Tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// Head returns the first n runes of s.
func Head(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
