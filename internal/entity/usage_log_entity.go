package entity

import (
	"time"

	"github.com/google/uuid"
)

// UsageLog records one completed exchange for cost accounting. Written
// asynchronously by the usage consumer, never on the request path.
type UsageLog struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	ChatSessionId uuid.UUID
	ModelId       string
	Provider      string
	TokensUsed    int
	CreatedAt     time.Time
}
