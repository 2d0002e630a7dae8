package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foco-sales/foco-backend/internal/cache"
	"github.com/foco-sales/foco-backend/internal/services"
)

// PerformanceHandler serves the aggregated dashboard metrics
type PerformanceHandler struct {
	metrics *services.MetricsService
	cache   *cache.MetricsCache
	logger  *zap.Logger
}

// NewPerformanceHandler creates a new performance handler
func NewPerformanceHandler(metrics *services.MetricsService, metricsCache *cache.MetricsCache, logger *zap.Logger) *PerformanceHandler {
	return &PerformanceHandler{
		metrics: metrics,
		cache:   metricsCache,
		logger:  logger,
	}
}

// GetPerformance returns the overview, leaderboard rows, and the filtered
// conversation list in one payload
func (h *PerformanceHandler) GetPerformance(c *fiber.Ctx) error {
	filter, err := parsePerformanceFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if cached, ok := h.cache.Get(c.Context(), filter); ok {
		return c.JSON(cached)
	}

	metrics, err := h.metrics.ComputeMetrics(filter)
	if err != nil {
		h.logger.Error("failed to compute performance metrics", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch performance metrics",
		})
	}

	h.cache.Set(c.Context(), filter, metrics)
	return c.JSON(metrics)
}
