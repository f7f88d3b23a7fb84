package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromptTemplate content is used verbatim as a session system prompt.
// Owner always sees it; others only when IsPublic.
type PromptTemplate struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Description *string
	Category    *string
	Content     string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
