// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	appai "github.com/grocerly/v1/internal/application/ai"
	appshopping "github.com/grocerly/v1/internal/application/shopping"
	"github.com/grocerly/v1/internal/domain/catalog"
	"github.com/grocerly/v1/internal/domain/shopping"
	"github.com/grocerly/v1/internal/infrastructure/ai/ollama"
	"github.com/grocerly/v1/internal/infrastructure/ai/openai"
	"github.com/grocerly/v1/internal/infrastructure/cache"
	"github.com/grocerly/v1/internal/infrastructure/config"
	"github.com/grocerly/v1/internal/infrastructure/http/server"
	"github.com/grocerly/v1/internal/infrastructure/monitoring"
	"github.com/grocerly/v1/internal/ports/inbound"
	"github.com/grocerly/v1/internal/ports/outbound"
	"github.com/grocerly/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CatalogModule,
	CacheModule,
	AIModule,
	MetricsModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// CatalogModule provides the validated static catalog and the optimizer
var CatalogModule = fx.Provide(
	catalog.New,
	func(cfg *config.Config, c *catalog.Catalog) *shopping.Optimizer {
		return shopping.NewOptimizer(c, shopping.ScoringWeights{
			Variety:                 cfg.Shopping.VarietyWeight,
			Utilization:             cfg.Shopping.UtilizationWeight,
			UnderUtilizationPenalty: cfg.Shopping.UnderUtilizationPenalty,
			OverTightPenalty:        cfg.Shopping.OverTightPenalty,
		})
	},
)

// CacheModule provides Redis when configured and falls back to the
// in-memory cache otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		if addr := cfg.RedisAddr(); addr != "" {
			redisCache, err := cache.NewRedisCache(cfg.Redis, addr, log)
			if err == nil {
				return redisCache
			}
			log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
		} else {
			log.Info("Redis not configured, using in-memory cache")
		}
		return cache.NewMemoryCache(cfg.Cache.MaxEntries)
	},
)

// AIModule selects the LLM provider. Provider "none" yields nil clients and
// the services degrade to canned replies and recipe-not-found responses.
var AIModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.AIService {
		switch cfg.AI.Provider {
		case "ollama":
			return ollama.NewClient(ollama.Options{
				BaseURL: cfg.AI.OllamaURL,
				Model:   cfg.AI.OllamaModel,
				Timeout: cfg.AI.RequestTimeout,
			}, log)
		case "none":
			log.Info("AI provider disabled")
			return nil
		default:
			return openai.NewClient(openai.Options{
				APIKey:      cfg.AI.APIKey,
				BaseURL:     cfg.AI.BaseURL,
				Model:       cfg.AI.Model,
				MaxTokens:   cfg.AI.MaxTokens,
				Temperature: cfg.AI.Temperature,
				Timeout:     cfg.AI.RequestTimeout,
			}, log)
		}
	},
	func(client outbound.AIService, log *zap.Logger) outbound.RecipeGenerator {
		if client == nil {
			return nil
		}
		return appai.NewIngredientGenerator(client, log)
	},
)

// MetricsModule provides Prometheus metrics
var MetricsModule = fx.Provide(
	monitoring.NewMetrics,
)

// ServiceModule provides the application services
var ServiceModule = fx.Provide(
	func(
		cfg *config.Config,
		c *catalog.Catalog,
		optimizer *shopping.Optimizer,
		generator outbound.RecipeGenerator,
		metrics *monitoring.Metrics,
		log *zap.Logger,
	) inbound.ShoppingService {
		return appshopping.NewService(c, optimizer, generator, cfg.Shopping.DefaultMaxStores, metrics, log)
	},
	func(
		cfg *config.Config,
		client outbound.AIService,
		cacheRepo outbound.CacheRepository,
		metrics *monitoring.Metrics,
		log *zap.Logger,
	) inbound.ChatService {
		if client == nil {
			client = unavailableAI{}
		}
		return appai.NewChatService(client, cacheRepo, cfg.Cache.ChatTTL, metrics, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	func(
		cfg *config.Config,
		shoppingService inbound.ShoppingService,
		chatService inbound.ChatService,
		metrics *monitoring.Metrics,
		log *zap.Logger,
	) *server.Server {
		return server.NewServer(cfg, shoppingService, chatService, metrics, log)
	},
)

// LifecycleModule ties the server to the fx lifecycle
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, srv *server.Server, cfg *config.Config, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := srv.Start(); err != nil {
						log.Error("HTTP server stopped", zap.Error(err))
					}
				}()
				log.Info("Application started",
					zap.String("name", cfg.App.Name),
					zap.String("version", cfg.App.Version),
					zap.Int("port", cfg.Server.Port))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return srv.Shutdown(ctx)
			},
		})
	},
)

// unavailableAI satisfies the chat service when no provider is configured,
// forcing the canned-reply path.
type unavailableAI struct{}

func (unavailableAI) Complete(ctx context.Context, system, user string) (string, error) {
	return "", errors.New("ai provider disabled")
}
