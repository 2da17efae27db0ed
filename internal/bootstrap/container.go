package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"ai-notecapture-be/internal/config"
	"ai-notecapture-be/internal/controller"
	"ai-notecapture-be/internal/handler"
	"ai-notecapture-be/internal/pkg/logger"
	"ai-notecapture-be/internal/repository/implementation"
	"ai-notecapture-be/internal/service"
	"ai-notecapture-be/internal/websocket"
	"ai-notecapture-be/pkg/clipboard"
	"ai-notecapture-be/pkg/events"
	"ai-notecapture-be/pkg/idgen"
	"ai-notecapture-be/pkg/kvstore"
	"ai-notecapture-be/pkg/llm"
	"ai-notecapture-be/pkg/llm/factory"

	pktNats "ai-notecapture-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	NotebookController  controller.INotebookController
	ContentController   controller.IContentController
	ChatController      controller.IChatController
	ClipboardController controller.IClipboardController

	// WebSockets
	EventsHandler *handler.EventsHandler
	WebSocketHub  *websocket.Hub

	Logger logger.ILogger

	clipboardService service.IClipboardService
	pubSub           *gochannel.GoChannel
	store            kvstore.Store
	natsPub          *pktNats.Publisher
	rdb              *redis.Client
}

// Option overrides a collaborator that would otherwise be built from config.
type Option func(*overrides)

type overrides struct {
	logger          logger.ILogger
	store           kvstore.Store
	llmProvider     llm.LLMProvider
	clipboardSource clipboard.Source
	ids             idgen.Generator
}

func WithLogger(log logger.ILogger) Option {
	return func(o *overrides) { o.logger = log }
}

func WithStore(store kvstore.Store) Option {
	return func(o *overrides) { o.store = store }
}

func WithLLMProvider(provider llm.LLMProvider) Option {
	return func(o *overrides) { o.llmProvider = provider }
}

func WithClipboardSource(source clipboard.Source) Option {
	return func(o *overrides) { o.clipboardSource = source }
}

func WithIDGenerator(ids idgen.Generator) Option {
	return func(o *overrides) { o.ids = ids }
}

func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	var o overrides
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Core Facades
	sysLogger := o.logger
	if sysLogger == nil {
		sysLogger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	}

	store := o.store
	if store == nil {
		var err error
		store, err = kvstore.New(ctx, kvstore.Config{
			Driver:    cfg.Store.Driver,
			DSN:       cfg.Store.DSN,
			KeyPrefix: cfg.Store.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
		}
	}
	sysLogger.Info("Bootstrap", "Store ready", map[string]interface{}{"driver": cfg.Store.Driver})

	ids := o.ids
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}

	notebookRepo := implementation.NewNotebookRepository(store, ids)
	contentRepo := implementation.NewContentRepository(store, ids)
	chatRepo := implementation.NewChatMessageRepository(store, ids)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NopLogger{},
	)

	c := &Container{
		Logger: sysLogger,
		pubSub: pubSub,
		store:  store,
	}

	publishers := []events.Publisher{events.NewWatermillPublisher(pubSub, events.TopicActivity)}
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(ctx, cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			c.natsPub = natsPub
			publishers = append(publishers, natsPub)
		}
	}
	publisherService := service.NewPublisherService(sysLogger, publishers...)

	// 3. LLM
	llmProvider := o.llmProvider
	if llmProvider == nil {
		baseURL := cfg.Ai.OllamaBaseURL
		if cfg.Ai.LLMProvider == "openai" {
			baseURL = cfg.Ai.OpenAIBaseURL
		}
		provider, err := factory.NewLLMProvider(ctx, factory.Config{
			Provider:  cfg.Ai.LLMProvider,
			Model:     cfg.Ai.LLMModel,
			BaseURL:   baseURL,
			APIKey:    cfg.APIKey(),
			Timeout:   cfg.Ai.Timeout,
			MaxTokens: cfg.Ai.MaxTokens,
		})
		if err != nil {
			c.closeInfra()
			return nil, fmt.Errorf("init LLM provider: %w", err)
		}
		llmProvider = provider
	}
	sysLogger.Info("Bootstrap", "Using LLM Provider", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	llmOptions := []llm.Option{llm.WithTemperature(cfg.Ai.Temperature)}
	if cfg.Ai.MaxTokens > 0 {
		llmOptions = append(llmOptions, llm.WithMaxTokens(cfg.Ai.MaxTokens))
	}

	// 4. Clipboard
	source := o.clipboardSource
	if source == nil {
		if cfg.Clipboard.Enabled {
			source = clipboard.NewSystemSource()
		} else {
			source = clipboard.DisabledSource{}
		}
	}
	reader := clipboard.NewReader(source, sysLogger)
	monitor := clipboard.NewMonitor(reader, cfg.Clipboard.PollInterval, sysLogger)
	c.clipboardService = service.NewClipboardService(
		reader,
		monitor,
		events.NewWatermillPublisher(pubSub, service.TopicClipboardChanged),
		cfg.Clipboard.Enabled,
		sysLogger,
	)

	// 5. Services
	notebookService := service.NewNotebookService(notebookRepo, contentRepo, chatRepo, publisherService, sysLogger)
	contentService := service.NewContentService(notebookRepo, contentRepo, reader, publisherService, sysLogger)
	chatService := service.NewChatService(notebookRepo, contentRepo, chatRepo, llmProvider, publisherService, sysLogger, llmOptions...)

	// 6. WebSocket Hub
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis, websocket relay disabled", map[string]interface{}{"error": err.Error()})
			_ = rdb.Close()
		} else {
			c.rdb = rdb
		}
	}
	wsLogger := o.logger
	if wsLogger == nil {
		wsLogger = logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	}
	c.WebSocketHub = websocket.NewHub(c.rdb, wsLogger)

	// 7. Controllers
	c.NotebookController = controller.NewNotebookController(notebookService)
	c.ContentController = controller.NewContentController(contentService)
	c.ChatController = controller.NewChatController(chatService)
	c.ClipboardController = controller.NewClipboardController(c.clipboardService)
	c.EventsHandler = handler.NewEventsHandler(c.WebSocketHub, wsLogger)

	return c, nil
}

// Start runs the background workers until ctx is cancelled.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	return c.WebSocketHub.Consume(ctx, c.pubSub, events.TopicActivity, service.TopicClipboardChanged)
}

// Shutdown stops clipboard monitoring and releases every connection.
func (c *Container) Shutdown(ctx context.Context) error {
	c.clipboardService.Close()
	err := c.closeInfra()
	_ = c.Logger.Sync()
	return err
}

func (c *Container) closeInfra() error {
	var errs []error
	if err := c.pubSub.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		if err := c.rdb.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.store.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
