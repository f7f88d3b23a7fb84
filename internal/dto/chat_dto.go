package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	PromptTemplateId *uuid.UUID `json:"promptTemplateId"`
}

type UpdateSessionRequest struct {
	Title      *string `json:"title"`
	Model      *string `json:"model"`
	IsArchived *bool   `json:"isArchived"`
}

type ApplyTemplateRequest struct {
	// Null clears the template reference and the system prompt.
	PromptTemplateId *uuid.UUID `json:"promptTemplateId"`
}

type SendMessageRequest struct {
	Content string  `json:"content" validate:"required"`
	Model   *string `json:"model"`
}

type SessionResponse struct {
	Id               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Model            string     `json:"model"`
	PromptTemplateId *uuid.UUID `json:"promptTemplateId,omitempty"`
	SystemPrompt     *string    `json:"systemPrompt,omitempty"`
	IsArchived       bool       `json:"isArchived"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type SessionDetailResponse struct {
	SessionResponse
	Messages []MessageDTO `json:"messages"`
}

type MessageDTO struct {
	Id         uuid.UUID `json:"id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	TokensUsed *int      `json:"tokensUsed,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SendMessageResponse struct {
	Messages []MessageDTO `json:"messages"`
}
