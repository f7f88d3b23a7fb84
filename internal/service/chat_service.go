package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-chatapp-be/internal/dto"
	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/pkg/logger"
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/internal/repository/specification"
	"ai-chatapp-be/internal/repository/unitofwork"
	"ai-chatapp-be/pkg/events"
	"ai-chatapp-be/pkg/llm"
	"ai-chatapp-be/pkg/llm/registry"
	pktNats "ai-chatapp-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const titleTruncateRunes = 30

type IChatService interface {
	ListSessions(ctx context.Context, userID uuid.UUID) ([]dto.SessionResponse, error)
	CreateSession(ctx context.Context, userID uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SessionDetailResponse, error)
	UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error
	ApplyTemplate(ctx context.Context, userID, sessionID uuid.UUID, req *dto.ApplyTemplateRequest) (*dto.SessionResponse, error)
	SendMessage(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	dispatcher     *llm.Dispatcher
	usageLimiter   IUsageLimiter
	pubSub         *gochannel.GoChannel
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	dispatcher *llm.Dispatcher,
	usageLimiter IUsageLimiter,
	pubSub *gochannel.GoChannel,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		dispatcher:     dispatcher,
		usageLimiter:   usageLimiter,
		pubSub:         pubSub,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func sessionToResponse(s *entity.ChatSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:               s.Id,
		Title:            s.Title,
		Model:            s.Model,
		PromptTemplateId: s.PromptTemplateId,
		SystemPrompt:     s.SystemPrompt,
		IsArchived:       s.IsArchived,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func messagesToDTOs(msgs []*entity.Message) []dto.MessageDTO {
	out := make([]dto.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.MessageDTO{
			Id:         m.Id,
			Role:       m.Role,
			Content:    m.Content,
			TokensUsed: m.TokensUsed,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out
}

// findOwnedSession conflates "does not exist" and "not yours" into one
// not-found error so responses never reveal whether a session id exists.
func (s *chatService) findOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userID, sessionID uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionID},
		specification.UserOwnedBy{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.ErrNotFound("Session not found")
	}
	return session, nil
}

func (s *chatService) ListSessions(ctx context.Context, userID uuid.UUID) ([]dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.NotArchived{},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, *sessionToResponse(session))
	}
	return out, nil
}

func (s *chatService) CreateSession(ctx context.Context, userID uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userID,
		Title:     entity.DefaultSessionTitle,
		Model:     registry.Default().Id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if req != nil && req.PromptTemplateId != nil {
		template, err := uow.PromptTemplateRepository().FindOne(ctx,
			specification.ByID{ID: *req.PromptTemplateId},
			specification.OwnedOrPublic{UserID: userID},
		)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, serverutils.ErrNotFound("Template not found")
		}
		content := template.Content
		session.PromptTemplateId = &template.Id
		session.SystemPrompt = &content
		session.Title = template.Name + " - " + entity.DefaultSessionTitle
	}

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return sessionToResponse(session), nil
}

func (s *chatService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionID},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	return &dto.SessionDetailResponse{
		SessionResponse: *sessionToResponse(session),
		Messages:        messagesToDTOs(messages),
	}, nil
}

func (s *chatService) UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Title != nil {
		session.Title = *req.Title
		changed = true
	}
	if req.Model != nil {
		if registry.Lookup(*req.Model) == nil {
			return nil, serverutils.ErrInvalidInput("Invalid model")
		}
		session.Model = *req.Model
		changed = true
	}
	if req.IsArchived != nil {
		session.IsArchived = *req.IsArchived
		changed = true
	}

	if !changed {
		return nil, serverutils.ErrNoFieldsToUpdate()
	}

	session.UpdatedAt = time.Now()
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return sessionToResponse(session), nil
}

func (s *chatService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteByChatSessionId(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *chatService) ApplyTemplate(ctx context.Context, userID, sessionID uuid.UUID, req *dto.ApplyTemplateRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if req.PromptTemplateId == nil {
		// Null clears both the reference and the system prompt.
		session.PromptTemplateId = nil
		session.SystemPrompt = nil
	} else {
		template, err := uow.PromptTemplateRepository().FindOne(ctx,
			specification.ByID{ID: *req.PromptTemplateId},
			specification.OwnedOrPublic{UserID: userID},
		)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, serverutils.ErrNotFound("Template not found")
		}
		content := template.Content
		session.PromptTemplateId = &template.Id
		session.SystemPrompt = &content
	}

	session.UpdatedAt = time.Now()
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return sessionToResponse(session), nil
}

func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleTruncateRunes {
		return content
	}
	return string(runes[:titleTruncateRunes]) + "..."
}

func (s *chatService) SendMessage(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.usageLimiter.CheckAndCount(ctx, userID); err != nil {
		return nil, err
	}

	// The user message commits on its own, before the model is even
	// resolved: it survives an invalid model id and a failed dispatch
	// (at-least-once for the user leg, at-most-once for the assistant
	// leg).
	userMessage := &entity.Message{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          entity.MessageRoleUser,
		Content:       req.Content,
		CreatedAt:     time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	modelID := session.Model
	if req.Model != nil && *req.Model != "" {
		modelID = *req.Model
	}
	model := registry.Lookup(modelID)
	if model == nil {
		return nil, serverutils.ErrInvalidInput("Invalid model")
	}

	history, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	llmHistory := make([]llm.Message, 0, len(history))
	for _, m := range history {
		llmHistory = append(llmHistory, llm.Message{Role: m.Role, Content: m.Content})
	}

	opts := []llm.Option{llm.WithModel(model.ModelName)}
	if session.SystemPrompt != nil && *session.SystemPrompt != "" {
		opts = append(opts, llm.WithSystemPrompt(*session.SystemPrompt))
	}

	result, err := s.dispatcher.Dispatch(ctx, model.Provider, llmHistory, opts...)
	if err != nil {
		s.logger.Error("ChatService", "Provider dispatch failed", map[string]interface{}{
			"session_id": session.Id,
			"model":      model.Id,
			"provider":   model.Provider,
			"error":      err.Error(),
		})
		msg := "Failed to generate a response"
		if model.Provider == registry.ProviderGoogle {
			msg = "Failed to generate a response. Check the GEMINI_API_KEY configuration."
		}
		return nil, serverutils.ErrProvider(msg)
	}

	assistantMessage := &entity.Message{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          entity.MessageRoleAssistant,
		Content:       result.Content,
		CreatedAt:     time.Now(),
	}
	if result.TokensUsed > 0 {
		tokens := result.TokensUsed
		assistantMessage.TokensUsed = &tokens
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	if session.Title == entity.DefaultSessionTitle && len(history) <= 2 {
		session.Title = deriveTitle(req.Content)
	}
	session.UpdatedAt = time.Now()
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishExchange(ctx, userID, session.Id, model, result.TokensUsed)

	messages := append(history, assistantMessage)
	return &dto.SendMessageResponse{Messages: messagesToDTOs(messages)}, nil
}

// publishExchange fans the completed exchange out to the usage consumer
// and the notification bus. Both are best effort, the response never
// waits on them failing.
func (s *chatService) publishExchange(ctx context.Context, userID, sessionID uuid.UUID, model *registry.AIModel, tokensUsed int) {
	if s.pubSub != nil {
		payload, err := json.Marshal(dto.ExchangeCompletedMessage{
			UserId:        userID,
			ChatSessionId: sessionID,
			ModelId:       model.Id,
			Provider:      model.Provider,
			TokensUsed:    tokensUsed,
		})
		if err == nil {
			if err := s.pubSub.Publish(ExchangeCompletedTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
				s.logger.Warn("ChatService", "Failed to publish usage message", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	if s.eventPublisher != nil {
		event := events.NewMessageExchanged(userID.String(), sessionID.String(), model.Id, tokensUsed)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("ChatService", "Failed to publish exchange event", map[string]interface{}{"error": err.Error()})
		}
	}
}
