package dto

import "github.com/google/uuid"

// ExchangeCompletedMessage is the in-process message published after a
// user/assistant exchange commits; the usage consumer turns it into a
// usage_logs row off the request path.
type ExchangeCompletedMessage struct {
	UserId        uuid.UUID `json:"userId"`
	ChatSessionId uuid.UUID `json:"chatSessionId"`
	ModelId       string    `json:"modelId"`
	Provider      string    `json:"provider"`
	TokensUsed    int       `json:"tokensUsed"`
}
