package ai

import "context"

// Request is one prompt sent to the completion service.
type Request struct {
	Model     string
	System    string // optional generation context
	Prompt    string
	MaxTokens int // zero means provider default
}

// Usage reports token accounting when the provider returns it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the provider's answer to a Request.
type Completion struct {
	Text         string `json:"raw"`
	Model        string `json:"model,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        Usage  `json:"usage"`
}

// Completer is the generative-text capability. Implementations must not retry.
type Completer interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
}
