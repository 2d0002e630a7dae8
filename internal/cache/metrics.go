package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foco-sales/foco-backend/internal/models"
)

const generationKey = "foco:metrics:gen"

// MetricsCache is an optional Redis-backed cache for performance metrics
// payloads. Entries are keyed by a generation counter plus the filter
// fingerprint; bumping the generation on every write invalidates all cached
// payloads at once. A nil *MetricsCache is valid and disables caching.
type MetricsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMetricsCache creates a metrics cache on an existing Redis client
func NewMetricsCache(client *redis.Client, ttl time.Duration) *MetricsCache {
	return &MetricsCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload for a filter, or false on any miss or
// Redis fault. Faults never fail the request; the caller just recomputes.
func (c *MetricsCache) Get(ctx context.Context, filter *models.ConversationFilter) (*models.PerformanceMetrics, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.entryKey(ctx, filter)).Bytes()
	if err != nil {
		return nil, false
	}

	var metrics models.PerformanceMetrics
	if err := json.Unmarshal(raw, &metrics); err != nil {
		return nil, false
	}
	return &metrics, true
}

// Set stores a computed payload under the current generation
func (c *MetricsCache) Set(ctx context.Context, filter *models.ConversationFilter, metrics *models.PerformanceMetrics) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(metrics)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.entryKey(ctx, filter), raw, c.ttl)
}

// Invalidate drops every cached payload by advancing the generation counter
func (c *MetricsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Incr(ctx, generationKey)
}

func (c *MetricsCache) entryKey(ctx context.Context, filter *models.ConversationFilter) string {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil {
		gen = 0
	}
	return fmt.Sprintf("foco:metrics:%d:%s", gen, filter.Key())
}
