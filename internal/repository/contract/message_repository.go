package contract

import (
	"context"

	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/repository/specification"

	"github.com/google/uuid"
)

// MessageRepository is append-only: no update operation exists because
// messages are immutable once created.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
