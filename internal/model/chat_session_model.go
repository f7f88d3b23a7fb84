package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID  `gorm:"type:uuid;not null;index"` // User ownership for data isolation
	Title            string     `gorm:"type:text;not null"`
	Model            string     `gorm:"type:varchar(100);not null"`
	PromptTemplateId *uuid.UUID `gorm:"type:uuid;index"`
	SystemPrompt     *string    `gorm:"type:text"`
	IsArchived       bool       `gorm:"not null;default:false"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`

	// Deleting a session removes its messages with it.
	Messages []Message `gorm:"foreignKey:ChatSessionId;constraint:OnDelete:CASCADE"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
