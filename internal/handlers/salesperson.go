package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foco-sales/foco-backend/internal/cache"
	"github.com/foco-sales/foco-backend/internal/models"
	"github.com/foco-sales/foco-backend/internal/storage"
)

// SalespersonHandler handles salesperson roster requests
type SalespersonHandler struct {
	store  storage.Store
	cache  *cache.MetricsCache
	logger *zap.Logger
}

// NewSalespersonHandler creates a new salesperson handler
func NewSalespersonHandler(store storage.Store, metricsCache *cache.MetricsCache, logger *zap.Logger) *SalespersonHandler {
	return &SalespersonHandler{
		store:  store,
		cache:  metricsCache,
		logger: logger,
	}
}

// List returns the full salesperson roster
func (h *SalespersonHandler) List(c *fiber.Ctx) error {
	people, err := h.store.GetSalespeople()
	if err != nil {
		h.logger.Error("failed to list salespeople", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch salespeople",
		})
	}
	return c.JSON(people)
}

// Get returns a single salesperson by id
func (h *SalespersonHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid salesperson ID",
		})
	}

	person, err := h.store.GetSalesperson(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Salesperson not found",
			})
		}
		h.logger.Error("failed to get salesperson", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch salesperson",
		})
	}
	return c.JSON(person)
}

// Create registers a new salesperson
func (h *SalespersonHandler) Create(c *fiber.Ctx) error {
	var data models.SalespersonCreate
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	person, err := h.store.CreateSalesperson(&data)
	if err != nil {
		if errors.Is(err, storage.ErrInvalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("failed to create salesperson", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create salesperson",
		})
	}

	// A new roster entry adds an all-zero leaderboard row
	h.cache.Invalidate(c.Context())

	return c.Status(fiber.StatusCreated).JSON(person)
}
