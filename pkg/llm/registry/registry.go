// Package registry holds the static catalog of selectable AI models.
// Entries are compiled in, not persisted; the id is what clients send and
// ModelName is what goes on the wire to the provider.
package registry

const (
	ProviderGoogle    = "google"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type TokenCost struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

type AIModel struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Provider       string    `json:"provider"`
	MaxTokens      int       `json:"maxTokens"`
	ModelName      string    `json:"modelName"`
	TokenCostPer1K TokenCost `json:"tokenCostPer1K"`
}

var aiModels = []AIModel{
	{
		Id:             "gemini-1.5-pro",
		Name:           "gemini-1.5-pro",
		Description:    "GoogleのGemini 1.5 Pro - Googleの最先端のAIモデル",
		Provider:       ProviderGoogle,
		MaxTokens:      30000,
		ModelName:      "gemini-1.5-pro",
		TokenCostPer1K: TokenCost{Input: 0.0005, Output: 0.0015},
	},
	{
		Id:             "gemini-2.0-flash",
		Name:           "gemini-2.0-flash-001",
		Description:    "GoogleのGemini 2.0 Flash - Googleの高性能AIモデル",
		Provider:       ProviderGoogle,
		MaxTokens:      30000,
		ModelName:      "gemini-2.0-flash-001",
		TokenCostPer1K: TokenCost{Input: 0.0005, Output: 0.0015},
	},
	{
		Id:             "gemini-2.0-flash-thinking-exp-01-21",
		Name:           "gemini-2.0-flash-thinking-exp-01-21",
		Description:    "GoogleのGemini 2.0 Flash Thinking Experiment - Googleの最先端のAIモデル",
		Provider:       ProviderGoogle,
		MaxTokens:      30000,
		ModelName:      "gemini-2.0-flash-thinking-exp-01-21",
		TokenCostPer1K: TokenCost{Input: 0.0005, Output: 0.0015},
	},
	{
		Id:             "gemini-2.5-pro-preview-03-25",
		Name:           "gemini-2.5-pro-preview-03-25",
		Description:    "GoogleのGemini 2.5 Pro Preview - Googleの最先端のAIモデル",
		Provider:       ProviderGoogle,
		MaxTokens:      30000,
		ModelName:      "gemini-2.5-pro-preview-03-25",
		TokenCostPer1K: TokenCost{Input: 0.0005, Output: 0.0015},
	},
	{
		Id:             "gemini-2.5-flash-preview-04-17",
		Name:           "gemini-2.5-flash-preview-04-17",
		Description:    "GoogleのGemini 2.5 Flash Preview - Googleの最先端のAIモデル",
		Provider:       ProviderGoogle,
		MaxTokens:      30000,
		ModelName:      "gemini-2.5-flash-preview-04-17",
		TokenCostPer1K: TokenCost{Input: 0.0005, Output: 0.0015},
	},
	{
		Id:             "gpt-4o",
		Name:           "GPT-4o",
		Description:    "OpenAIのGPT-4o - 最先端のマルチモーダルAIモデル",
		Provider:       ProviderOpenAI,
		MaxTokens:      128000,
		ModelName:      "gpt-4o",
		TokenCostPer1K: TokenCost{Input: 0.005, Output: 0.015},
	},
	{
		Id:             "gpt-3.5-turbo",
		Name:           "GPT-3.5 Turbo",
		Description:    "OpenAIのGPT-3.5 Turbo - 高速で経済的なモデル",
		Provider:       ProviderOpenAI,
		MaxTokens:      16385,
		ModelName:      "gpt-3.5-turbo",
		TokenCostPer1K: TokenCost{Input: 0.0005, Output: 0.0015},
	},
	{
		Id:             "claude-3-opus",
		Name:           "Claude 3 Opus",
		Description:    "AnthropicのClaude 3 Opus - 最高性能のClaude",
		Provider:       ProviderAnthropic,
		MaxTokens:      200000,
		ModelName:      "claude-3-opus-20240229",
		TokenCostPer1K: TokenCost{Input: 0.015, Output: 0.075},
	},
	{
		Id:             "claude-3-sonnet",
		Name:           "Claude 3 Sonnet",
		Description:    "AnthropicのClaude 3 Sonnet - バランスの取れたモデル",
		Provider:       ProviderAnthropic,
		MaxTokens:      200000,
		ModelName:      "claude-3-sonnet-20240229",
		TokenCostPer1K: TokenCost{Input: 0.003, Output: 0.015},
	},
}

// Lookup returns the model with the given id, or nil.
func Lookup(id string) *AIModel {
	for i := range aiModels {
		if aiModels[i].Id == id {
			m := aiModels[i]
			return &m
		}
	}
	return nil
}

// Default returns the first catalog entry.
func Default() AIModel {
	return aiModels[0]
}

// All returns the full catalog.
func All() []AIModel {
	out := make([]AIModel, len(aiModels))
	copy(out, aiModels)
	return out
}
