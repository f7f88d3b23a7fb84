package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ai-chatapp-be/internal/dto"
	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/pkg/logger"
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/pkg/llm"
	"ai-chatapp-be/pkg/llm/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedProvider struct {
	result *llm.Result
	err    error
	calls  int
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (*llm.Result, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func newChatServiceForTest(t *testing.T, store *memStore, provider llm.Provider) IChatService {
	t.Helper()
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "chat.log"))

	dispatcher := llm.NewDispatcher()
	if provider != nil {
		dispatcher.Register(registry.ProviderGoogle, provider)
	}

	limiter := NewUsageLimiter(nil, 0, log)
	factory := &memFactory{uow: &memUow{store: store}}
	return NewChatService(factory, dispatcher, limiter, nil, nil, log)
}

func ownedSession(userID uuid.UUID) *entity.ChatSession {
	return &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userID,
		Title:     entity.DefaultSessionTitle,
		Model:     registry.Default().Id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func modelOverride(id string) *string { return &id }

func TestSendMessageInvalidModelKeepsUserMessage(t *testing.T) {
	userID := uuid.New()
	session := ownedSession(userID)
	store := &memStore{sessions: []*entity.ChatSession{session}}
	svc := newChatServiceForTest(t, store, &scriptedProvider{result: &llm.Result{Content: "ok"}})

	res, err := svc.SendMessage(context.Background(), userID, session.Id, &dto.SendMessageRequest{
		Content: "hello",
		Model:   modelOverride("no-such-model"),
	})

	require.Error(t, err)
	assert.Nil(t, res)
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid model", apiErr.Message)

	// The user turn outlives the failed resolution.
	require.Len(t, store.messages, 1)
	assert.Equal(t, entity.MessageRoleUser, store.messages[0].Role)
	assert.Equal(t, "hello", store.messages[0].Content)
}

func TestSendMessagePersistsExchangeAndAutoTitle(t *testing.T) {
	userID := uuid.New()
	session := ownedSession(userID)
	store := &memStore{sessions: []*entity.ChatSession{session}}
	provider := &scriptedProvider{result: &llm.Result{Content: "こんにちは", TokensUsed: 42}}
	svc := newChatServiceForTest(t, store, provider)

	res, err := svc.SendMessage(context.Background(), userID, session.Id, &dto.SendMessageRequest{Content: "Hi"})

	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, entity.MessageRoleUser, res.Messages[0].Role)
	assert.Equal(t, entity.MessageRoleAssistant, res.Messages[1].Role)
	require.NotNil(t, res.Messages[1].TokensUsed)
	assert.Equal(t, 42, *res.Messages[1].TokensUsed)

	require.Len(t, store.messages, 2)
	assert.Equal(t, "Hi", store.sessions[0].Title)
}

func TestSessionOwnershipConflatedToNotFound(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	session := ownedSession(owner)
	session.Title = "secret plans"

	requireSessionNotFound := func(t *testing.T, err error) {
		t.Helper()
		var apiErr *serverutils.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, fiber.StatusNotFound, apiErr.Status)
		assert.Equal(t, "Session not found", apiErr.Message)
	}

	t.Run("read", func(t *testing.T) {
		store := &memStore{sessions: []*entity.ChatSession{session}}
		svc := newChatServiceForTest(t, store, nil)

		res, err := svc.GetSession(context.Background(), intruder, session.Id)
		requireSessionNotFound(t, err)
		assert.Nil(t, res)
	})

	t.Run("update", func(t *testing.T) {
		store := &memStore{sessions: []*entity.ChatSession{session}}
		svc := newChatServiceForTest(t, store, nil)

		title := "hijacked"
		res, err := svc.UpdateSession(context.Background(), intruder, session.Id, &dto.UpdateSessionRequest{Title: &title})
		requireSessionNotFound(t, err)
		assert.Nil(t, res)
		assert.Equal(t, "secret plans", store.sessions[0].Title)
	})

	t.Run("delete", func(t *testing.T) {
		store := &memStore{sessions: []*entity.ChatSession{session}}
		svc := newChatServiceForTest(t, store, nil)

		err := svc.DeleteSession(context.Background(), intruder, session.Id)
		requireSessionNotFound(t, err)
		assert.Len(t, store.sessions, 1)
	})

	t.Run("send message", func(t *testing.T) {
		store := &memStore{sessions: []*entity.ChatSession{session}}
		svc := newChatServiceForTest(t, store, nil)

		res, err := svc.SendMessage(context.Background(), intruder, session.Id, &dto.SendMessageRequest{Content: "hi"})
		requireSessionNotFound(t, err)
		assert.Nil(t, res)
		assert.Empty(t, store.messages)
	})
}

func TestUpdateSessionNoRecognizedFields(t *testing.T) {
	userID := uuid.New()
	session := ownedSession(userID)
	store := &memStore{sessions: []*entity.ChatSession{session}}
	svc := newChatServiceForTest(t, store, nil)

	res, err := svc.UpdateSession(context.Background(), userID, session.Id, &dto.UpdateSessionRequest{})

	require.Error(t, err)
	assert.Nil(t, res)
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "No valid fields to update", apiErr.Message)
	assert.Zero(t, store.sessionUpdates)
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "long message truncated to thirty characters",
			content: "Hello world, this is a long test message exceeding thirty chars",
			want:    "Hello world, this is a long te...",
		},
		{
			name:    "short message kept as is",
			content: "Hi",
			want:    "Hi",
		},
		{
			name:    "exactly thirty characters kept as is",
			content: strings.Repeat("a", 30),
			want:    strings.Repeat("a", 30),
		},
		{
			name:    "multibyte text counts runes not bytes",
			content: strings.Repeat("あ", 31),
			want:    strings.Repeat("あ", 30) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveTitle(tt.content))
		})
	}
}
