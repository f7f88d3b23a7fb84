package mapper

import (
	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:               s.Id,
		UserId:           s.UserId,
		Title:            s.Title,
		Model:            s.Model,
		PromptTemplateId: s.PromptTemplateId,
		SystemPrompt:     s.SystemPrompt,
		IsArchived:       s.IsArchived,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:               s.Id,
		UserId:           s.UserId,
		Title:            s.Title,
		Model:            s.Model,
		PromptTemplateId: s.PromptTemplateId,
		SystemPrompt:     s.SystemPrompt,
		IsArchived:       s.IsArchived,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	var metadata map[string]interface{}
	if msg.Metadata != nil {
		metadata = map[string]interface{}(msg.Metadata)
	}

	return &entity.Message{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		TokensUsed:    msg.TokensUsed,
		Metadata:      metadata,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	var metadata datatypes.JSONMap
	if msg.Metadata != nil {
		metadata = datatypes.JSONMap(msg.Metadata)
	}

	return &model.Message{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		TokensUsed:    msg.TokensUsed,
		Metadata:      metadata,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

// Usage Log Mappers

func (m *ChatMapper) UsageLogToModel(u *entity.UsageLog) *model.UsageLog {
	if u == nil {
		return nil
	}

	return &model.UsageLog{
		Id:            u.Id,
		UserId:        u.UserId,
		ChatSessionId: u.ChatSessionId,
		ModelId:       u.ModelId,
		Provider:      u.Provider,
		TokensUsed:    u.TokensUsed,
		CreatedAt:     u.CreatedAt,
	}
}

func (m *ChatMapper) UsageLogToEntity(u *model.UsageLog) *entity.UsageLog {
	if u == nil {
		return nil
	}

	return &entity.UsageLog{
		Id:            u.Id,
		UserId:        u.UserId,
		ChatSessionId: u.ChatSessionId,
		ModelId:       u.ModelId,
		Provider:      u.Provider,
		TokensUsed:    u.TokensUsed,
		CreatedAt:     u.CreatedAt,
	}
}
