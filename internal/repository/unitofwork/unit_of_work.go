package unitofwork

import (
	"context"

	"ai-chatapp-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	MessageRepository() contract.MessageRepository
	PromptTemplateRepository() contract.PromptTemplateRepository
	UsageLogRepository() contract.UsageLogRepository
}
