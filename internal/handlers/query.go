package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/foco-sales/foco-backend/internal/models"
)

// Query param parsers. Malformed values are rejected with an error (mapped
// to a 400 by the callers) rather than silently coerced.

func queryInt(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q is not an integer", name, raw)
	}
	return &v, nil
}

func queryBool(c *fiber.Ctx, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	switch raw {
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("invalid %s: %q is not a boolean", name, raw)
}

func queryTime(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid %s: %q is not an ISO datetime", name, raw)
}

// parsePerformanceFilter reads the filters accepted by /api/performance
func parsePerformanceFilter(c *fiber.Ctx) (*models.ConversationFilter, error) {
	filter := &models.ConversationFilter{}
	var err error

	if filter.StartDate, err = queryTime(c, "startDate"); err != nil {
		return nil, err
	}
	if filter.EndDate, err = queryTime(c, "endDate"); err != nil {
		return nil, err
	}
	if filter.SalespersonID, err = queryInt(c, "salespersonId"); err != nil {
		return nil, err
	}
	return filter, nil
}

// parseConversationFilter reads the full filter set for /api/conversations
func parseConversationFilter(c *fiber.Ctx) (*models.ConversationFilter, error) {
	filter, err := parsePerformanceFilter(c)
	if err != nil {
		return nil, err
	}

	if filter.HasSale, err = queryBool(c, "hasSale"); err != nil {
		return nil, err
	}
	if filter.MinScore, err = queryInt(c, "minScore"); err != nil {
		return nil, err
	}
	if filter.MaxScore, err = queryInt(c, "maxScore"); err != nil {
		return nil, err
	}
	return filter, nil
}
