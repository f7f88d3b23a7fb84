package contract

import (
	"context"

	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/repository/specification"
)

type UsageLogRepository interface {
	Create(ctx context.Context, log *entity.UsageLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
