package bootstrap

import (
	"context"
	"log"

	"modern-assistant-be/internal/config"
	"modern-assistant-be/internal/controller"
	"modern-assistant-be/internal/pkg/logger"
	"modern-assistant-be/internal/repository/unitofwork"
	"modern-assistant-be/internal/service"
	"modern-assistant-be/internal/websocket"
	"modern-assistant-be/pkg/assistant/enrich"
	"modern-assistant-be/pkg/connector/google"
	"modern-assistant-be/pkg/embedding"
	"modern-assistant-be/pkg/llm/factory"

	pktNats "modern-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	TaskController      controller.ITaskController
	KnowledgeController controller.IKnowledgeController
	SettingsController  controller.ISettingsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider := embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. External Data Connectors
	googleClient := google.NewClient(google.Credentials{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RefreshToken: cfg.Google.RefreshToken,
	})
	enricher := enrich.NewEnricher(googleClient, googleClient, sysLogger)

	// 5. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedTopic,
		uowFactory,
		embeddingProvider,
	)

	settingsService := service.NewSettingsService(uowFactory)
	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		enricher,
		settingsService,
		natsPub,
		sysLogger,
		cfg.Ai.MaxOutputTokens,
	)
	taskService := service.NewTaskService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, sysLogger)

	// 7. Notification Worker
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	return &Container{
		ChatController:      controller.NewChatController(chatService),
		TaskController:      controller.NewTaskController(taskService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),
		SettingsController:  controller.NewSettingsController(settingsService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
