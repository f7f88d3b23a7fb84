package llm

import (
	"context"
)

// Dispatcher routes a chat call to the adapter registered for a provider
// tag. Lookup is by exact tag, case-sensitive.
type Dispatcher struct {
	providers map[string]Provider
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{providers: make(map[string]Provider)}
}

// Register binds an adapter to a provider tag, replacing any previous
// binding for that tag.
func (d *Dispatcher) Register(tag string, provider Provider) {
	d.providers[tag] = provider
}

// Dispatch forwards the history to the adapter registered for tag. An
// unknown tag is not an error: the caller gets a normal Result carrying
// a fixed fallback text, so the conversation keeps working when a model
// entry names a provider this build has no adapter for.
func (d *Dispatcher) Dispatch(ctx context.Context, tag string, history []Message, opts ...Option) (*Result, error) {
	provider, ok := d.providers[tag]
	if !ok {
		return &Result{Content: UnsupportedProviderFallback}, nil
	}
	return provider.Chat(ctx, history, opts...)
}
