package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/repository/specification"
	"ai-chatapp-be/internal/repository/unitofwork"
	"ai-chatapp-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSessionRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Usage Log Repository", func(t *testing.T) {
		count, err := uow.UsageLogRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("UsageLog count: %d", count)
	})

	t.Run("Session And Message Round Trip", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:        uuid.New(),
			Email:     "test-integration-" + uuid.New().String() + "@example.com",
			Name:      "Integration Test",
			Role:      entity.UserRoleUser,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    user.Id,
			Title:     entity.DefaultSessionTitle,
			Model:     "gemini-1.5-pro",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

		msg := &entity.Message{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Role:          entity.MessageRoleUser,
			Content:       "integration hello",
			CreatedAt:     time.Now(),
		}
		require.NoError(t, uow.MessageRepository().Create(ctx, msg))

		loaded, err := uow.MessageRepository().FindAll(ctx,
			specification.ByChatSessionID{ChatSessionID: session.Id},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "integration hello", loaded[0].Content)

		// Cleanup
		require.NoError(t, uow.MessageRepository().DeleteByChatSessionId(ctx, session.Id))
		require.NoError(t, uow.ChatSessionRepository().Delete(ctx, session.Id))
	})
}
