package contract

import (
	"context"

	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PromptTemplateRepository interface {
	Create(ctx context.Context, template *entity.PromptTemplate) error
	Update(ctx context.Context, template *entity.PromptTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptTemplate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
