package model

import (
	"time"

	"github.com/google/uuid"
)

type PromptTemplate struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Category    *string   `gorm:"type:varchar(100)"`
	Content     string    `gorm:"type:text;not null"`
	IsPublic    bool      `gorm:"not null;default:false;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (PromptTemplate) TableName() string {
	return "prompt_templates"
}
