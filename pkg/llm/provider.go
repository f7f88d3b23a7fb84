package llm

import (
	"context"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a chat turn in a provider-agnostic format.
type Message struct {
	Role    string // RoleUser or RoleAssistant
	Content string
}

// Result is a normalized provider reply. TokensUsed is 0 when the
// provider's API reports no usage figures.
type Result struct {
	Content    string
	TokensUsed int
}

// Option allows for optional parameters like MaxTokens or a model override.
type Option func(*Options)

type Options struct {
	MaxTokens    int
	Model        string // wire model name override
	SystemPrompt string
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(o *Options) {
		o.SystemPrompt = prompt
	}
}

// Provider defines the contract for any LLM backend.
type Provider interface {
	// Chat sends the ordered history to the model and returns the reply.
	// History order must be preserved exactly as given.
	Chat(ctx context.Context, history []Message, options ...Option) (*Result, error)
}
