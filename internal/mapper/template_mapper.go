package mapper

import (
	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/model"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(t *model.PromptTemplate) *entity.PromptTemplate {
	if t == nil {
		return nil
	}

	return &entity.PromptTemplate{
		Id:          t.Id,
		UserId:      t.UserId,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Content:     t.Content,
		IsPublic:    t.IsPublic,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TemplateMapper) ToModel(t *entity.PromptTemplate) *model.PromptTemplate {
	if t == nil {
		return nil
	}

	return &model.PromptTemplate{
		Id:          t.Id,
		UserId:      t.UserId,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Content:     t.Content,
		IsPublic:    t.IsPublic,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TemplateMapper) ToEntities(models []*model.PromptTemplate) []*entity.PromptTemplate {
	entities := make([]*entity.PromptTemplate, len(models))
	for i, t := range models {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
