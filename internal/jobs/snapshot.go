package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/foco-sales/foco-backend/internal/cache"
	"github.com/foco-sales/foco-backend/internal/services"
)

// SnapshotJob periodically recomputes the unfiltered performance metrics,
// logs the headline KPIs for operators, and warms the metrics cache so the
// dashboard's default view is served hot.
type SnapshotJob struct {
	metrics *services.MetricsService
	cache   *cache.MetricsCache
	logger  *zap.Logger

	interval time.Duration
	stop     chan struct{}
}

// NewSnapshotJob creates a new snapshot job scheduler
func NewSnapshotJob(metrics *services.MetricsService, metricsCache *cache.MetricsCache, logger *zap.Logger, interval time.Duration) *SnapshotJob {
	return &SnapshotJob{
		metrics:  metrics,
		cache:    metricsCache,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the snapshot loop in the background
func (j *SnapshotJob) Start() {
	j.logger.Info("starting metrics snapshot job", zap.Duration("interval", j.interval))
	go j.run()
}

// Stop halts the snapshot loop
func (j *SnapshotJob) Stop() {
	j.logger.Info("stopping metrics snapshot job")
	close(j.stop)
}

func (j *SnapshotJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stop:
			return
		case <-ticker.C:
			j.takeSnapshot()
		}
	}
}

func (j *SnapshotJob) takeSnapshot() {
	metrics, err := j.metrics.ComputeMetrics(nil)
	if err != nil {
		j.logger.Error("metrics snapshot failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	j.cache.Set(ctx, nil, metrics)

	j.logger.Info("metrics snapshot",
		zap.Int("conversations", metrics.Overview.TotalConversations),
		zap.Int("sales", metrics.Overview.TotalSales),
		zap.Float64("revenue", metrics.Overview.TotalRevenue),
		zap.Float64("conversionRate", metrics.Overview.ConversionRate),
	)
}
