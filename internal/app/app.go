// Package app wires configuration, stores and services into a runnable
// assistant.
package app

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campusassist/campus-assist/internal/cache"
	"github.com/campusassist/campus-assist/internal/config"
	"github.com/campusassist/campus-assist/internal/repository"
	"github.com/campusassist/campus-assist/internal/service"
	"github.com/campusassist/campus-assist/internal/transport/rest"
	"github.com/campusassist/campus-assist/internal/transport/ws"
)

type App struct {
	FAQRepo          repository.FAQRepo
	DocumentRepo     repository.DocumentRepo
	ConversationRepo repository.ConversationRepo
	FeedbackRepo     repository.FeedbackRepo

	SearchCache     cache.SearchCache
	ContextCache    cache.ContextCache
	StatsCache      cache.StatsCache
	UnansweredCache cache.UnansweredCache

	ChatService *service.ChatService
	WSHub       *ws.Hub
	Router      http.Handler
}

// New builds every component from cfg. The returned app shares db and rdb;
// closing them is left to the caller.
func New(cfg *config.Config, db *mongo.Database, rdb *redis.Client, logger *zap.Logger) *App {
	a := &App{
		FAQRepo:          repository.NewFAQRepo(db),
		DocumentRepo:     repository.NewDocumentRepo(db),
		ConversationRepo: repository.NewConversationRepo(db),
		FeedbackRepo:     repository.NewFeedbackRepo(db),

		SearchCache:     cache.NewSearchCache(rdb),
		ContextCache:    cache.NewContextCache(rdb),
		StatsCache:      cache.NewStatsCache(rdb),
		UnansweredCache: cache.NewUnansweredCache(rdb),

		WSHub: ws.NewHub(logger),
	}

	translator := service.NewTranslationAdapter(
		service.NewTranslator(&cfg.Translation, logger),
		cfg.Timeouts.Translate(),
		logger,
	)
	classifier := service.NewClassifier(service.NewLanguageDetector(), translator, logger)

	retrieval := service.NewRetrievalService(
		a.FAQRepo,
		a.DocumentRepo,
		a.SearchCache,
		a.UnansweredCache,
		translator,
		RetrievalOptions(cfg),
		logger,
	)
	contexts := service.NewContextManager(a.ContextCache, ContextOptions(cfg), logger)
	tasks := service.NewTaskRunner(cfg.Context.SyncUpdates, cfg.Timeouts.Store(), logger)

	a.ChatService = service.NewChatService(
		a.ConversationRepo,
		a.FeedbackRepo,
		classifier,
		retrieval,
		contexts,
		service.NewResponseGenerator(),
		translator,
		tasks,
		cfg.Timeouts.Store(),
		logger,
	)
	a.ChatService.SetStatsCaches(a.StatsCache, a.UnansweredCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	a.ChatService.SetBroadcaster(a.WSHub)

	a.Router = rest.NewRouter(&rest.Container{
		ChatService: a.ChatService,
		WSHub:       a.WSHub,
		CORS:        cfg.CORS,
		Logger:      logger,
	})
	return a
}

// RetrievalOptions maps configuration onto the retrieval cascade.
func RetrievalOptions(cfg *config.Config) service.RetrievalOptions {
	return service.RetrievalOptions{
		ConfidenceThreshold: cfg.Retrieval.ConfidenceThreshold,
		FallbackThreshold:   cfg.Retrieval.FallbackThreshold,
		CacheTTL:            time.Duration(cfg.Retrieval.CacheTTLSeconds) * time.Second,
		CacheTimeout:        cfg.Timeouts.Cache(),
		StoreTimeout:        cfg.Timeouts.Store(),
	}
}

// ContextOptions maps configuration onto the context manager.
func ContextOptions(cfg *config.Config) service.ContextOptions {
	return service.ContextOptions{
		TTL:        time.Duration(cfg.Context.TTLSeconds) * time.Second,
		WindowSize: cfg.Context.WindowSize,
		Timeout:    cfg.Timeouts.Cache(),
	}
}
