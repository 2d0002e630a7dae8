package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foco-sales/foco-backend/internal/cache"
	"github.com/foco-sales/foco-backend/internal/handlers"
	"github.com/foco-sales/foco-backend/internal/services"
	"github.com/foco-sales/foco-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, metricsCache *cache.MetricsCache, logger *zap.Logger, storageMode string) {
	metricsService := services.NewMetricsService(store)

	performanceHandler := handlers.NewPerformanceHandler(metricsService, metricsCache, logger)
	conversationHandler := handlers.NewConversationHandler(store, metricsCache, logger)
	salespersonHandler := handlers.NewSalespersonHandler(store, metricsCache, logger)
	healthHandler := handlers.NewHealthHandler("1.0.0", storageMode)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// Performance metrics
	api.Get("/performance", performanceHandler.GetPerformance)

	// Conversations
	conversations := api.Group("/conversations")
	conversations.Get("/", conversationHandler.List)
	conversations.Post("/", conversationHandler.Create)
	conversations.Get("/:id", conversationHandler.Get)
	conversations.Get("/:id/steps", conversationHandler.GetScriptSteps)

	// Script steps
	api.Post("/script-steps", conversationHandler.CreateScriptStep)

	// Salespeople
	salespeople := api.Group("/salespeople")
	salespeople.Get("/", salespersonHandler.List)
	salespeople.Post("/", salespersonHandler.Create)
	salespeople.Get("/:id", salespersonHandler.Get)
}
