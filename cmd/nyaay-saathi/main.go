package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nyaay-saathi/internal/api"
	"nyaay-saathi/internal/api/handlers"
	"nyaay-saathi/internal/legaldata"
	"nyaay-saathi/internal/repository"
	"nyaay-saathi/internal/service"
	"nyaay-saathi/pkg/auth"
	"nyaay-saathi/pkg/config"
	"nyaay-saathi/pkg/logger"
	"nyaay-saathi/pkg/postgres"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// @title Nyaay Saathi API
// @version 1.0
// @description Legal assistance backend: chat over Indian law, jargon simplification, phrase translation, legal document templates and saved chat history.

// @host localhost:5000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Nyaay Saathi service")

	ctx := context.Background()

	// Knowledge base
	qaPairs, created, err := legaldata.LoadKnowledgeBase(cfg.Storage.KnowledgeBaseFile)
	if err != nil {
		appLogger.Fatal("Failed to load knowledge base", zap.Error(err))
	}
	if created {
		appLogger.Info("Knowledge base file created", zap.String("path", cfg.Storage.KnowledgeBaseFile))
	}
	appLogger.Info("Knowledge base loaded", zap.Int("entries", len(qaPairs)))

	// User store
	var userRepo repository.UserRepository
	switch cfg.Storage.UserStore {
	case config.UserStorePostgres:
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		pgRepo := repository.NewPostgresUserRepository(db, appLogger)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			appLogger.Fatal("Failed to prepare database schema", zap.Error(err))
		}
		userRepo = pgRepo
	default:
		userRepo = repository.NewJSONUserRepository(cfg.Storage.UserDBFile, appLogger)
	}

	// Response cache
	var cache service.ResponseCache
	switch cfg.Chat.CacheBackend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			appLogger.Warn("Redis is unreachable, cache lookups will miss until it is back", zap.Error(err))
		}
		cache = service.NewRedisResponseCache(client, cfg.Chat.CacheCapacity, cfg.Redis.TTL, appLogger)
	default:
		memCache, err := service.NewMemoryResponseCache(cfg.Chat.CacheCapacity)
		if err != nil {
			appLogger.Fatal("Failed to create response cache", zap.Error(err))
		}
		cache = memCache
	}

	// Language model
	var model service.ChatModel
	switch cfg.LLM.Provider {
	case config.ProviderGigaChat:
		gigaModel, err := service.NewGigaChatModel(ctx, cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize GigaChat", zap.Error(err))
		}
		defer gigaModel.Close()
		model = gigaModel
	default:
		model = service.NewOpenAIModel(cfg.LLM, appLogger)
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Initialize services
	store, err := service.NewConversationStore(cfg.Chat.ConversationScope, cfg.Chat.MaxConversations)
	if err != nil {
		appLogger.Fatal("Failed to create conversation store", zap.Error(err))
	}

	jargonService := service.NewJargonService(legaldata.Jargon)
	translationService := service.NewTranslationService(legaldata.PhraseTables, legaldata.LegalTerms)
	chatService := service.NewChatService(
		store,
		service.NewKnowledgeService(qaPairs),
		cache,
		model,
		jargonService,
		translationService,
		cfg.Chat.ContextWindow,
		appLogger,
	)
	referenceService := service.NewReferenceService(
		legaldata.SupportedLanguages,
		legaldata.LegalCodes,
		legaldata.IPCSections,
		legaldata.NearbyResources,
	)
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	historyService := service.NewHistoryService(userRepo, appLogger)
	docService := service.NewDocumentService(legaldata.DocumentTemplates, legaldata.Timelines, appLogger)
	analysisService := service.NewAnalysisService(model, cfg.Storage.UploadDir, appLogger)

	if _, err := authService.EnsureDemoAccount(ctx); err != nil {
		appLogger.Error("Failed to create demo account", zap.Error(err))
	}

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, jargonService, translationService, appLogger)
	legalHandler := handlers.NewLegalHandler(referenceService, appLogger)
	authHandler := handlers.NewAuthHandler(authService, !cfg.Server.Debug, appLogger)
	historyHandler := handlers.NewHistoryHandler(historyService, appLogger)
	docHandler := handlers.NewDocumentHandler(docService, analysisService, appLogger)

	// Setup router
	app := api.SetupRouter(cfg, chatHandler, legalHandler, authHandler, historyHandler, docHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
