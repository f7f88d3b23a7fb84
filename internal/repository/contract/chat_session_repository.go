package contract

import (
	"context"

	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ClearTemplateRefs nulls prompt_template_id on every session that
	// references the given template. Used before template deletion.
	ClearTemplateRefs(ctx context.Context, templateId uuid.UUID) error
}
