package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId uuid.UUID         `gorm:"type:uuid;not null;index"`
	Role          string            `gorm:"type:varchar(50);not null"`
	Content       string            `gorm:"type:text;not null"`
	TokensUsed    *int              `gorm:""`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
