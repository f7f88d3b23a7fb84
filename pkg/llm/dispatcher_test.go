package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply   string
	err     error
	history []Message
	options Options
}

func (s *stubProvider) Chat(ctx context.Context, history []Message, opts ...Option) (*Result, error) {
	s.history = history
	for _, opt := range opts {
		opt(&s.options)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &Result{Content: s.reply}, nil
}

func TestDispatchRoutesToRegisteredProvider(t *testing.T) {
	stub := &stubProvider{reply: "hi there"}
	d := NewDispatcher()
	d.Register("google", stub)

	history := []Message{{Role: RoleUser, Content: "hi"}}
	result, err := d.Dispatch(context.Background(), "google", history, WithModel("gemini-1.5-pro"), WithSystemPrompt("be nice"))

	require.NoError(t, err)
	assert.Equal(t, "hi there", result.Content)
	assert.Equal(t, history, stub.history)
	assert.Equal(t, "gemini-1.5-pro", stub.options.Model)
	assert.Equal(t, "be nice", stub.options.SystemPrompt)
}

func TestDispatchUnknownTagSoftDegrades(t *testing.T) {
	d := NewDispatcher()
	d.Register("google", &stubProvider{reply: "x"})

	result, err := d.Dispatch(context.Background(), "mistral", []Message{{Role: RoleUser, Content: "hi"}})

	// An unknown tag is a normal reply, never an error.
	require.NoError(t, err)
	assert.Equal(t, UnsupportedProviderFallback, result.Content)
	assert.Zero(t, result.TokensUsed)
}

func TestDispatchPropagatesProviderError(t *testing.T) {
	wantErr := errors.New("upstream down")
	d := NewDispatcher()
	d.Register("openai", &stubProvider{err: wantErr})

	result, err := d.Dispatch(context.Background(), "openai", nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, wantErr)
}

func TestRegisterReplacesBinding(t *testing.T) {
	first := &stubProvider{reply: "first"}
	second := &stubProvider{reply: "second"}

	d := NewDispatcher()
	d.Register("anthropic", first)
	d.Register("anthropic", second)

	result, err := d.Dispatch(context.Background(), "anthropic", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", result.Content)
}
