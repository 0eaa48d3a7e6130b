package bootstrap

import (
	"context"
	"fmt"

	"ai-realestate-be/internal/config"
	"ai-realestate-be/internal/controller"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/handler"
	"ai-realestate-be/internal/pkg/idgen"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/contract"
	"ai-realestate-be/internal/repository/implementation"
	"ai-realestate-be/internal/repository/memory"
	"ai-realestate-be/internal/repository/unitofwork"
	"ai-realestate-be/internal/service"
	"ai-realestate-be/internal/websocket"
	pktNats "ai-realestate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	TopicController      controller.ITopicController
	ChatController       controller.IChatController
	ViewController       controller.IViewController
	ContentController    controller.IContentController
	OnboardingController controller.IOnboardingController
	AdminController      controller.IAdminController

	// Background Services (Exposed for main.go to run)
	TopicService        service.ITopicService
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 2. Infrastructure
	rdb := newRedisClient(cfg.App.RedisURL, sysLogger)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	store, err := newKeyValueStore(cfg, rdb, sysLogger)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, func() { _ = store.Close() })

	var (
		natsPub *pktNats.Publisher
		natsSub *pktNats.Subscriber
	)
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Container", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
			natsPub = nil
		} else {
			c.closers = append(c.closers, natsPub.Close)
		}
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Container", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
			natsSub = nil
		} else {
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	// 3. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	publisherService := service.NewPublisherService(pubSub, service.StoreChangedTopic)
	uowFactory := unitofwork.NewRepositoryFactory(store, publisherService, sysLogger)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)

	// 4. Services
	topicService := service.NewTopicService(uowFactory, sysLogger)
	chatService := service.NewChatSessionService(uowFactory, idgen.NewClock(), sysLogger)
	views := memory.NewViewRepository(cfg.Chat.ViewTTL)
	conversationService := service.NewConversationService(
		chatService,
		views,
		cfg.Chat.ReplyDelay,
		sysLogger,
	)
	contentService := service.NewContentService()
	assetService := service.NewAssetService(uowFactory, sysLogger)
	onboardingService := service.NewOnboardingService(uowFactory)

	consumerService := service.NewConsumerService(pubSub, service.StoreChangedTopic, topicService, sysLogger)

	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}
	notifService := service.NewNotificationService(pubSub, service.StoreChangedTopic, eventPublisher, natsSub, wsHub, wsLogger)

	c.TopicService = topicService
	c.ConsumerService = consumerService
	c.NotificationService = notifService
	c.WebSocketHub = wsHub
	c.NotificationHandler = handler.NewNotificationHandler(wsHub, views, wsLogger)

	// 5. Controllers
	c.TopicController = controller.NewTopicController(topicService, chatService)
	c.ChatController = controller.NewChatController(chatService, conversationService)
	c.ViewController = controller.NewViewController(conversationService)
	c.ContentController = controller.NewContentController(contentService)
	c.OnboardingController = controller.NewOnboardingController(onboardingService)
	c.AdminController = controller.NewAdminController(assetService)

	return c, nil
}

// Close releases infrastructure in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func newKeyValueStore(cfg *config.Config, rdb *redis.Client, log logger.ILogger) (contract.KeyValueStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory, "":
		log.Info("Container", "Using in-memory key-value store", nil)
		return memory.NewKeyValueStore(), nil
	case config.StoreDriverPebble:
		log.Info("Container", "Using pebble key-value store", map[string]interface{}{"path": cfg.Store.PebblePath})
		return implementation.NewPebbleKeyValueStore(cfg.Store.PebblePath)
	case config.StoreDriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("STORE_DRIVER=redis requires REDIS_URL")
		}
		log.Info("Container", "Using redis key-value store", map[string]interface{}{"prefix": cfg.Store.RedisPrefix})
		return implementation.NewRedisKeyValueStore(rdb, cfg.Store.RedisPrefix), nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
}

func newRedisClient(url string, log logger.ILogger) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Container", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Warn("Container", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
	}
	return rdb
}

// Start seeds and projects topics, then starts the background consumers.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)

	if err := c.TopicService.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed topics: %w", err)
	}
	for _, p := range entity.Products {
		if _, err := c.TopicService.ProjectPrompts(ctx, p); err != nil {
			return fmt.Errorf("project %s prompts: %w", p, err)
		}
	}

	if err := c.ConsumerService.Consume(ctx); err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	return c.NotificationService.Start(ctx)
}
