package service

import (
	"context"
	"sort"
	"time"

	"ai-chatapp-be/internal/dto"
	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/internal/repository/specification"
	"ai-chatapp-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const publicTemplatesCacheKey = "templates:public"

type ITemplateService interface {
	List(ctx context.Context, userID uuid.UUID, includePublic bool) ([]dto.TemplateListItem, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	Get(ctx context.Context, userID, templateID uuid.UUID) (*dto.TemplateResponse, error)
	Update(ctx context.Context, userID, templateID uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	Delete(ctx context.Context, userID, templateID uuid.UUID) error
}

type templateService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewTemplateService(uowFactory unitofwork.RepositoryFactory) ITemplateService {
	return &templateService{
		uowFactory: uowFactory,
		// Public listings change rarely; a short TTL keeps them cheap
		// without a real invalidation protocol across instances.
		cache: gocache.New(time.Minute, 5*time.Minute),
	}
}

func templateToResponse(t *entity.PromptTemplate, callerID uuid.UUID) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Content:     t.Content,
		IsPublic:    t.IsPublic,
		IsOwner:     t.UserId == callerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func templateToListItem(t *entity.PromptTemplate, callerID uuid.UUID) dto.TemplateListItem {
	return dto.TemplateListItem{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		IsPublic:    t.IsPublic,
		IsOwner:     t.UserId == callerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// findVisibleTemplate applies the read rule: owners always see their
// templates, everyone else only public ones. Invisible and missing are
// the same 404.
func (s *templateService) findVisibleTemplate(ctx context.Context, uow unitofwork.UnitOfWork, userID, templateID uuid.UUID) (*entity.PromptTemplate, error) {
	template, err := uow.PromptTemplateRepository().FindOne(ctx,
		specification.ByID{ID: templateID},
		specification.OwnedOrPublic{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, serverutils.ErrNotFound("Template not found")
	}
	return template, nil
}

func (s *templateService) listPublic(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.PromptTemplate, error) {
	if cached, ok := s.cache.Get(publicTemplatesCacheKey); ok {
		return cached.([]*entity.PromptTemplate), nil
	}

	templates, err := uow.PromptTemplateRepository().FindAll(ctx,
		specification.PublicOnly{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	s.cache.Set(publicTemplatesCacheKey, templates, gocache.DefaultExpiration)
	return templates, nil
}

func (s *templateService) List(ctx context.Context, userID uuid.UUID, includePublic bool) ([]dto.TemplateListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	owned, err := uow.PromptTemplateRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TemplateListItem, 0, len(owned))
	seen := make(map[uuid.UUID]bool, len(owned))
	for _, t := range owned {
		out = append(out, templateToListItem(t, userID))
		seen[t.Id] = true
	}

	if includePublic {
		public, err := s.listPublic(ctx, uow)
		if err != nil {
			return nil, err
		}
		for _, t := range public {
			if !seen[t.Id] {
				out = append(out, templateToListItem(t, userID))
			}
		}
	}

	// One list ordered by recency; owned and public entries interleave
	// rather than owned-first.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})

	return out, nil
}

func (s *templateService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template := &entity.PromptTemplate{
		Id:          uuid.New(),
		UserId:      userID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Content:     req.Content,
		IsPublic:    req.IsPublic,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.PromptTemplateRepository().Create(ctx, template); err != nil {
		return nil, err
	}

	if template.IsPublic {
		s.cache.Delete(publicTemplatesCacheKey)
	}

	return templateToResponse(template, userID), nil
}

func (s *templateService) Get(ctx context.Context, userID, templateID uuid.UUID) (*dto.TemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.findVisibleTemplate(ctx, uow, userID, templateID)
	if err != nil {
		return nil, err
	}

	return templateToResponse(template, userID), nil
}

func (s *templateService) Update(ctx context.Context, userID, templateID uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.findVisibleTemplate(ctx, uow, userID, templateID)
	if err != nil {
		return nil, err
	}
	// Public templates are readable by anyone but mutable only by the
	// owner, hence 403 instead of the read-path 404.
	if template.UserId != userID {
		return nil, serverutils.ErrForbidden("Not the template owner")
	}

	changed := false
	if req.Name != nil {
		template.Name = *req.Name
		changed = true
	}
	if req.Description != nil {
		template.Description = req.Description
		changed = true
	}
	if req.Category != nil {
		template.Category = req.Category
		changed = true
	}
	if req.Content != nil {
		template.Content = *req.Content
		changed = true
	}
	if req.IsPublic != nil {
		template.IsPublic = *req.IsPublic
		changed = true
	}

	if !changed {
		return nil, serverutils.ErrNoFieldsToUpdate()
	}

	template.UpdatedAt = time.Now()
	if err := uow.PromptTemplateRepository().Update(ctx, template); err != nil {
		return nil, err
	}

	s.cache.Delete(publicTemplatesCacheKey)

	return templateToResponse(template, userID), nil
}

func (s *templateService) Delete(ctx context.Context, userID, templateID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.findVisibleTemplate(ctx, uow, userID, templateID)
	if err != nil {
		return err
	}
	if template.UserId != userID {
		return serverutils.ErrForbidden("Not the template owner")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Sessions keep working after their template disappears, they just
	// lose the reference. The system prompt they copied stays.
	if err := uow.ChatSessionRepository().ClearTemplateRefs(ctx, template.Id); err != nil {
		return err
	}
	if err := uow.PromptTemplateRepository().Delete(ctx, template.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.cache.Delete(publicTemplatesCacheKey)
	return nil
}
