// Package server assembles the chi router and owns the HTTP listener
// lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/grocerly/v1/internal/infrastructure/config"
	"github.com/grocerly/v1/internal/infrastructure/http/handlers"
	"github.com/grocerly/v1/internal/infrastructure/http/middleware"
	"github.com/grocerly/v1/internal/infrastructure/monitoring"
	"github.com/grocerly/v1/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	router  *chi.Mux
	server  *http.Server
	metrics *monitoring.Metrics
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	shoppingService inbound.ShoppingService,
	chatService inbound.ChatService,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger.Named("server"),
		metrics: metrics,
	}

	api := handlers.NewAPIHandlers(shoppingService, chatService, cfg.App.Version, logger)
	mw := middleware.New(cfg, metrics, logger)
	s.router = s.setupRouter(api, mw)

	s.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRouter wires middleware and routes
func (s *Server) setupRouter(api *handlers.APIHandlers, mw *middleware.Middleware) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recover)
	r.Use(mw.Logger)
	r.Use(mw.Timeout)

	r.Get("/health", api.HealthCheck)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RateLimit)
		r.Get("/health", api.HealthCheck)
		r.Post("/shop", api.Shop)
		r.Post("/chat", api.Chat)
		r.Get("/recipes", api.ListRecipes)
		r.Get("/stores", api.ListStores)
	})

	return r
}

// Router exposes the handler for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins serving. It blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
