package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-chatapp-be/pkg/llm"
)

const (
	completeURL      = "https://api.anthropic.com/v1/complete"
	apiVersion       = "2023-06-01"
	defaultMaxTokens = 1000
)

// AnthropicProvider targets the legacy text completions API, which takes
// a single serialized transcript instead of structured turns. See
// BuildTranscript for the serialization rules.
type AnthropicProvider struct {
	APIKey       string
	DefaultModel string
	BaseURL      string
	Client       *http.Client
}

var _ llm.Provider = &AnthropicProvider{}

func NewAnthropicProvider(apiKey, defaultModel string) *AnthropicProvider {
	return &AnthropicProvider{
		APIKey:       apiKey,
		DefaultModel: defaultModel,
		BaseURL:      completeURL,
		Client:       &http.Client{},
	}
}

// --- Request/Response structs (Internal to this package) ---

type completeRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens_to_sample"`
}

type completeResponse struct {
	Completion string `json:"completion"`
}

// --- Interface Implementation ---

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (*llm.Result, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	model := p.DefaultModel
	if options.Model != "" {
		model = options.Model
	}
	maxTokens := defaultMaxTokens
	if options.MaxTokens > 0 {
		maxTokens = options.MaxTokens
	}

	payloadBytes, err := json.Marshal(completeRequest{
		Model:     model,
		Prompt:    BuildTranscript(history, options.SystemPrompt),
		MaxTokens: maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", p.APIKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var completeResp completeResponse
	if err := json.Unmarshal(bodyBytes, &completeResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	// The completion is passed through verbatim, even when empty; the
	// legacy completions API also reports no token usage.
	return &llm.Result{Content: completeResp.Completion}, nil
}
