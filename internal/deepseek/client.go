// Package deepseek is a thin chat-completion client pinned to DeepSeek's
// OpenAI-compatible API.
package deepseek

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is DeepSeek's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.deepseek.com"

// Model is the chat model every call uses.
const Model = "deepseek-chat"

// Failure classes callers can test with errors.Is.
var (
	ErrAuth      = errors.New("deepseek: authentication rejected")
	ErrQuota     = errors.New("deepseek: quota exceeded")
	ErrMalformed = errors.New("deepseek: malformed response")
	ErrNetwork   = errors.New("deepseek: request failed")
)

// Client makes single-attempt completions. Retries are deliberately
// absent: callers degrade on failure instead of hammering the API.
type Client struct {
	api *openai.Client
}

func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

// NewClientWithBaseURL points the client at a different endpoint. Tests
// use it to target a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// Complete sends one user prompt and returns the model text, exactly one
// attempt. Failures map onto the package error classes; a blank
// completion counts as malformed, never as success.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrMalformed)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrMalformed)
	}
	return text, nil
}

// classify maps a transport error onto the package error classes using
// the HTTP status when one is present.
func classify(err error) error {
	if status, ok := httpStatus(err); ok {
		switch status {
		case 401, 403:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case 429:
			return fmt.Errorf("%w: %v", ErrQuota, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func httpStatus(err error) (int, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode, true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode, true
	}
	return 0, false
}
