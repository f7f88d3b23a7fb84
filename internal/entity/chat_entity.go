package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"

	// DefaultSessionTitle is the placeholder new sessions start with. The
	// first exchange replaces it with a truncation of the user's message.
	DefaultSessionTitle = "新しい会話"
)

type ChatSession struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	Title            string
	Model            string
	PromptTemplateId *uuid.UUID
	SystemPrompt     *string
	IsArchived       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Message is append-only: created once per exchange leg, never edited.
type Message struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	TokensUsed    *int
	Metadata      map[string]interface{}
	CreatedAt     time.Time
}
