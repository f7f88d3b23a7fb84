package bootstrap

import (
	"context"
	"log"

	"ai-chatapp-be/internal/config"
	"ai-chatapp-be/internal/controller"
	"ai-chatapp-be/internal/handler"
	"ai-chatapp-be/internal/pkg/logger"
	"ai-chatapp-be/internal/pkg/mailer"
	"ai-chatapp-be/internal/repository/unitofwork"
	"ai-chatapp-be/internal/service"
	"ai-chatapp-be/internal/websocket"
	"ai-chatapp-be/pkg/llm"
	"ai-chatapp-be/pkg/llm/anthropic"
	"ai-chatapp-be/pkg/llm/google"
	"ai-chatapp-be/pkg/llm/openai"
	"ai-chatapp-be/pkg/llm/registry"

	pktNats "ai-chatapp-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	OAuthController    controller.IOAuthController
	ChatController     controller.IChatController
	ModelController    controller.IModelController
	TemplateController controller.ITemplateController

	// Background services (run by main)
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	// WebSockets
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. In-process event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Provider dispatcher: one adapter per configured provider tag.
	// Unknown tags degrade to the fixed fallback sentence at dispatch.
	dispatcher := llm.NewDispatcher()
	dispatcher.Register(registry.ProviderGoogle, google.NewGoogleProvider(cfg.Keys.GoogleGemini, registry.Default().ModelName))
	dispatcher.Register(registry.ProviderOpenAI, openai.NewOpenAIProvider(cfg.Keys.OpenAI, "gpt-4o"))
	dispatcher.Register(registry.ProviderAnthropic, anthropic.NewAnthropicProvider(cfg.Keys.Anthropic, "claude-3-opus-20240229"))

	// 5. Services
	usageLimiter := service.NewUsageLimiter(rdb, cfg.Chat.DailyExchangeLimit, sysLogger)
	consumerService := service.NewConsumerService(pubSub, uowFactory)

	authService := service.NewAuthService(uowFactory, cfg.Auth, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory, cfg.Auth)
	chatService := service.NewChatService(uowFactory, dispatcher, usageLimiter, pubSub, natsPub, sysLogger)
	templateService := service.NewTemplateService(uowFactory)
	modelService := service.NewModelService()

	var notifService *service.NotificationService
	if natsSub != nil {
		notifService = service.NewNotificationService(natsSub, wsHub, wsLogger)
	}

	// 6. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		OAuthController:    controller.NewOAuthController(oauthService, cfg.App),
		ChatController:     controller.NewChatController(chatService),
		ModelController:    controller.NewModelController(modelService),
		TemplateController: controller.NewTemplateController(templateService),

		ConsumerService:     consumerService,
		NotificationService: notifService,

		NotificationHandler: handler.NewNotificationHandler(wsHub, wsLogger),
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}
