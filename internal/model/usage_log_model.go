package model

import (
	"time"

	"github.com/google/uuid"
)

type UsageLog struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	ModelId       string    `gorm:"type:varchar(100);not null"`
	Provider      string    `gorm:"type:varchar(50);not null"`
	TokensUsed    int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (UsageLog) TableName() string {
	return "usage_logs"
}
