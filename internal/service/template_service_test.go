package service

import (
	"context"
	"testing"
	"time"

	"ai-chatapp-be/internal/dto"
	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateAt(owner uuid.UUID, name string, public bool, updatedAt time.Time) *entity.PromptTemplate {
	return &entity.PromptTemplate{
		Id:        uuid.New(),
		UserId:    owner,
		Name:      name,
		Content:   "content of " + name,
		IsPublic:  public,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestListInterleavesOwnedAndPublicByRecency(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	base := time.Now()

	store := &memStore{templates: []*entity.PromptTemplate{
		templateAt(owner, "owned old", false, base.Add(-4*time.Hour)),
		templateAt(other, "public newest", true, base),
		templateAt(owner, "owned recent", false, base.Add(-1*time.Hour)),
		templateAt(other, "public middle", true, base.Add(-2*time.Hour)),
	}}
	svc := NewTemplateService(&memFactory{uow: &memUow{store: store}})

	items, err := svc.List(context.Background(), owner, true)
	require.NoError(t, err)
	require.Len(t, items, 4)

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	assert.Equal(t, []string{"public newest", "owned recent", "public middle", "owned old"}, names)
}

func TestListDeduplicatesOwnedPublicTemplates(t *testing.T) {
	owner := uuid.New()
	store := &memStore{templates: []*entity.PromptTemplate{
		templateAt(owner, "shared", true, time.Now()),
	}}
	svc := NewTemplateService(&memFactory{uow: &memUow{store: store}})

	items, err := svc.List(context.Background(), owner, true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsOwner)
}

func TestUpdatePublicTemplateByNonOwnerForbidden(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	template := templateAt(owner, "public one", true, time.Now())
	store := &memStore{templates: []*entity.PromptTemplate{template}}
	svc := NewTemplateService(&memFactory{uow: &memUow{store: store}})

	name := "renamed"
	res, err := svc.Update(context.Background(), intruder, template.Id, &dto.UpdateTemplateRequest{Name: &name})

	require.Error(t, err)
	assert.Nil(t, res)
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Not the template owner", apiErr.Message)
	assert.Equal(t, "public one", store.templates[0].Name)
}
