package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foco-sales/foco-backend/internal/cache"
	"github.com/foco-sales/foco-backend/internal/models"
	"github.com/foco-sales/foco-backend/internal/storage"
)

var validate = validator.New()

// ConversationHandler handles conversation and script-step requests
type ConversationHandler struct {
	store  storage.Store
	cache  *cache.MetricsCache
	logger *zap.Logger
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(store storage.Store, metricsCache *cache.MetricsCache, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{
		store:  store,
		cache:  metricsCache,
		logger: logger,
	}
}

// List returns conversations matching the query filters, most recent first
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	filter, err := parseConversationFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	conversations, err := h.store.GetConversations(filter)
	if err != nil {
		h.logger.Error("failed to list conversations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch conversations",
		})
	}
	return c.JSON(conversations)
}

// Get returns a single conversation by id
func (h *ConversationHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation ID",
		})
	}

	conv, err := h.store.GetConversation(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Conversation not found",
			})
		}
		h.logger.Error("failed to get conversation", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch conversation",
		})
	}
	return c.JSON(conv)
}

// Create records a new conversation
func (h *ConversationHandler) Create(c *fiber.Ctx) error {
	var data models.ConversationCreate
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

	conv, err := h.store.CreateConversation(&data)
	if err != nil {
		if errors.Is(err, storage.ErrInvalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("failed to create conversation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create conversation",
		})
	}

	// Cached metrics payloads are stale now
	h.cache.Invalidate(c.Context())

	return c.Status(fiber.StatusCreated).JSON(conv)
}

// GetScriptSteps returns the manually tracked checklist for a conversation
func (h *ConversationHandler) GetScriptSteps(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation ID",
		})
	}

	if _, err := h.store.GetConversation(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Conversation not found",
			})
		}
		h.logger.Error("failed to get conversation", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch script steps",
		})
	}

	steps, err := h.store.GetScriptSteps(id)
	if err != nil {
		h.logger.Error("failed to list script steps", zap.Int("conversationId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch script steps",
		})
	}
	return c.JSON(steps)
}

// CreateScriptStep records a checklist item against a conversation
func (h *ConversationHandler) CreateScriptStep(c *fiber.Ctx) error {
	var data models.ScriptStepCreate
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

	step, err := h.store.CreateScriptStep(&data)
	if err != nil {
		if errors.Is(err, storage.ErrInvalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("failed to create script step", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create script step",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(step)
}
