package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-chatapp-be/pkg/llm"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GoogleProvider talks to the Gemini generateContent API. History is
// replayed as alternating user/model turns; the final user turn is the
// live message, same call shape the API builds from a chat session.
type GoogleProvider struct {
	APIKey       string
	DefaultModel string
	Client       *http.Client
}

var _ llm.Provider = &GoogleProvider{}

func NewGoogleProvider(apiKey, defaultModel string) *GoogleProvider {
	return &GoogleProvider{
		APIKey:       apiKey,
		DefaultModel: defaultModel,
		Client:       &http.Client{},
	}
}

// --- Request/Response structs (Internal to this package) ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiUsage struct {
	TotalTokenCount int `json:"totalTokenCount"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata *geminiUsage      `json:"usageMetadata"`
}

// --- Interface Implementation ---

func (p *GoogleProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (*llm.Result, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	// Gemini tags assistant turns as "model"
	contents := make([]geminiContent, len(history))
	for i, msg := range history {
		role := "user"
		if msg.Role == "assistant" || msg.Role == "model" {
			role = "model"
		}
		contents[i] = geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		}
	}

	reqPayload := geminiRequest{Contents: contents}
	if options.SystemPrompt != "" {
		reqPayload.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: options.SystemPrompt}},
		}
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	model := p.DefaultModel
	if options.Model != "" {
		model = options.Model
	}

	url := fmt.Sprintf("%s/%s:generateContent", baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed (check GEMINI_API_KEY configuration): %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini error (check GEMINI_API_KEY configuration): status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(bodyBytes, &geminiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	text := ""
	if len(geminiResp.Candidates) > 0 && geminiResp.Candidates[0].Content != nil {
		for _, part := range geminiResp.Candidates[0].Content.Parts {
			text += part.Text
		}
	}
	if text == "" {
		text = llm.NoResponseFallback
	}

	result := &llm.Result{Content: text}
	if geminiResp.UsageMetadata != nil {
		result.TokensUsed = geminiResp.UsageMetadata.TotalTokenCount
	}
	return result, nil
}
