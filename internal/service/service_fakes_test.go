package service

import (
	"context"

	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/repository/contract"
	"ai-chatapp-be/internal/repository/specification"
	"ai-chatapp-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories backing service tests. Spec filtering
// type-switches on the concrete specification structs instead of
// building SQL.

type memStore struct {
	sessions  []*entity.ChatSession
	messages  []*entity.Message
	templates []*entity.PromptTemplate
	usageLogs []*entity.UsageLog

	sessionUpdates int
}

type memUow struct {
	store   *memStore
	commits int
}

func (u *memUow) Begin(ctx context.Context) error { return nil }
func (u *memUow) Commit() error                   { u.commits++; return nil }
func (u *memUow) Rollback() error                 { return nil }

func (u *memUow) UserRepository() contract.UserRepository {
	return &memUserRepo{}
}

func (u *memUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &memSessionRepo{store: u.store}
}

func (u *memUow) MessageRepository() contract.MessageRepository {
	return &memMessageRepo{store: u.store}
}

func (u *memUow) PromptTemplateRepository() contract.PromptTemplateRepository {
	return &memTemplateRepo{store: u.store}
}

func (u *memUow) UsageLogRepository() contract.UsageLogRepository {
	return &memUsageLogRepo{store: u.store}
}

type memFactory struct {
	uow *memUow
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// Chat sessions

type memSessionRepo struct {
	store *memStore
}

func sessionMatches(s *entity.ChatSession, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.ByID:
			if s.Id != v.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId != v.UserID {
				return false
			}
		case specification.NotArchived:
			if s.IsArchived {
				return false
			}
		}
	}
	return true
}

func (r *memSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *memSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	r.store.sessionUpdates++
	for i, s := range r.store.sessions {
		if s.Id == session.Id {
			r.store.sessions[i] = session
		}
	}
	return nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.sessions[:0]
	for _, s := range r.store.sessions {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.store.sessions = kept
	return nil
}

func (r *memSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, s := range r.store.sessions {
		if sessionMatches(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var out []*entity.ChatSession
	for _, s := range r.store.sessions {
		if sessionMatches(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

func (r *memSessionRepo) ClearTemplateRefs(ctx context.Context, templateId uuid.UUID) error {
	for _, s := range r.store.sessions {
		if s.PromptTemplateId != nil && *s.PromptTemplateId == templateId {
			s.PromptTemplateId = nil
		}
	}
	return nil
}

// Messages

type memMessageRepo struct {
	store *memStore
}

func messageMatches(m *entity.Message, specs []specification.Specification) bool {
	for _, sp := range specs {
		if v, ok := sp.(specification.ByChatSessionID); ok && m.ChatSessionId != v.ChatSessionID {
			return false
		}
	}
	return true
}

func (r *memMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.store.messages = append(r.store.messages, message)
	return nil
}

func (r *memMessageRepo) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *memMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	// Insertion order doubles as created-at ascending.
	var out []*entity.Message
	for _, m := range r.store.messages {
		if messageMatches(m, specs) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

// Prompt templates

type memTemplateRepo struct {
	store *memStore
}

func templateMatches(t *entity.PromptTemplate, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.ByID:
			if t.Id != v.ID {
				return false
			}
		case specification.UserOwnedBy:
			if t.UserId != v.UserID {
				return false
			}
		case specification.OwnedOrPublic:
			if t.UserId != v.UserID && !t.IsPublic {
				return false
			}
		case specification.PublicOnly:
			if !t.IsPublic {
				return false
			}
		}
	}
	return true
}

func (r *memTemplateRepo) Create(ctx context.Context, template *entity.PromptTemplate) error {
	r.store.templates = append(r.store.templates, template)
	return nil
}

func (r *memTemplateRepo) Update(ctx context.Context, template *entity.PromptTemplate) error {
	for i, t := range r.store.templates {
		if t.Id == template.Id {
			r.store.templates[i] = template
		}
	}
	return nil
}

func (r *memTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.templates[:0]
	for _, t := range r.store.templates {
		if t.Id != id {
			kept = append(kept, t)
		}
	}
	r.store.templates = kept
	return nil
}

func (r *memTemplateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptTemplate, error) {
	for _, t := range r.store.templates {
		if templateMatches(t, specs) {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTemplateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptTemplate, error) {
	var out []*entity.PromptTemplate
	for _, t := range r.store.templates {
		if templateMatches(t, specs) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTemplateRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

// Usage logs

type memUsageLogRepo struct {
	store *memStore
}

func (r *memUsageLogRepo) Create(ctx context.Context, log *entity.UsageLog) error {
	r.store.usageLogs = append(r.store.usageLogs, log)
	return nil
}

func (r *memUsageLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageLog, error) {
	return r.store.usageLogs, nil
}

func (r *memUsageLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.usageLogs)), nil
}

// Users: the chat and template tests never touch user rows.

type memUserRepo struct{}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *memUserRepo) CreateProvider(ctx context.Context, provider *entity.UserProvider) error {
	return nil
}
func (r *memUserRepo) FindProvider(ctx context.Context, specs ...specification.Specification) (*entity.UserProvider, error) {
	return nil, nil
}
func (r *memUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	return nil
}
func (r *memUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	return nil, nil
}
func (r *memUserRepo) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error { return nil }
