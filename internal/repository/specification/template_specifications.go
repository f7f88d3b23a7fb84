package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedOrPublic matches templates the caller owns plus public ones.
type OwnedOrPublic struct {
	UserID uuid.UUID
}

func (s OwnedOrPublic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(user_id = ? OR is_public = ?)", s.UserID, true)
}

type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ?", true)
}
