package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Content     string  `json:"content" validate:"required"`
	IsPublic    bool    `json:"isPublic"`
}

type UpdateTemplateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Content     *string `json:"content"`
	IsPublic    *bool   `json:"isPublic"`
}

// TemplateListItem deliberately omits content: listings show metadata
// only, the full body comes from the detail endpoint.
type TemplateListItem struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	IsOwner     bool      `json:"isOwner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TemplateResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Content     string    `json:"content"`
	IsPublic    bool      `json:"isPublic"`
	IsOwner     bool      `json:"isOwner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
