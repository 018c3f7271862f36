package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/bryanwahyu/automaton-legal/internal/domain/ai"
)

const defaultMaxTokens = 2048

type Client struct {
	*openai.Client
	Model string
}

// NewClient talks to the OpenAI API, or any compatible endpoint when baseURL is set.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Complete issues one chat completion. It never retries.
func (c *Client) Complete(ctx context.Context, in domai.Request) (*domai.Completion, error) {
	model := in.Model
	if model == "" {
		model = c.Model
	}
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	if in.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: in.System})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: in.Prompt})

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: msgs,
	}
	maxTokens := in.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if isReasoningModel(model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		if isQuota(err) {
			return nil, fmt.Errorf("%w: %w: %v", domai.ErrCompletionService, domai.ErrQuotaExceeded, err)
		}
		return nil, fmt.Errorf("%w: failed to create chat completion: %v", domai.ErrCompletionService, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", domai.ErrCompletionService)
	}

	choice := resp.Choices[0]
	return &domai.Completion{
		Text:         choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: domai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func isReasoningModel(model string) bool {
	for _, p := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, p) {
			return true
		}
	}
	return false
}

func isQuota(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.Type == "insufficient_quota"
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
