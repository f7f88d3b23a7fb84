package service

import (
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/pkg/llm/registry"
)

type IModelService interface {
	List() []registry.AIModel
	Get(id string) (*registry.AIModel, error)
	Default() registry.AIModel
}

type modelService struct{}

func NewModelService() IModelService {
	return &modelService{}
}

func (s *modelService) List() []registry.AIModel {
	return registry.All()
}

func (s *modelService) Get(id string) (*registry.AIModel, error) {
	model := registry.Lookup(id)
	if model == nil {
		return nil, serverutils.ErrNotFound("Model not found")
	}
	return model, nil
}

func (s *modelService) Default() registry.AIModel {
	return registry.Default()
}
