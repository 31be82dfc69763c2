package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/drivingschool-api/pkg/jobs"
)

type warmQueue interface {
	Enqueue(job jobs.Job[string]) (bool, error)
}

type dashboardWarmer interface {
	Warm(ctx context.Context, date string) error
}

// DashboardRefresher schedules a rebuild of today's cached dashboard.
type DashboardRefresher struct {
	queue  warmQueue
	now    Clock
	logger *zap.Logger
}

// NewDashboardRefresher constructs a refresher over the warm-up queue.
func NewDashboardRefresher(queue warmQueue, now Clock, logger *zap.Logger) *DashboardRefresher {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardRefresher{queue: queue, now: now, logger: logger}
}

// Refresh queues a rebuild unless one for today is already waiting.
func (r *DashboardRefresher) Refresh() {
	today := r.now.today()
	queued, err := r.queue.Enqueue(jobs.Job[string]{Key: summaryKey(today), Payload: today})
	if err != nil {
		r.logger.Warn("dashboard refresh not queued", zap.String("date", today), zap.Error(err))
		return
	}
	if !queued {
		r.logger.Debug("dashboard refresh already pending", zap.String("date", today))
	}
}

// DashboardWarmWorker bridges queue jobs to DashboardService.Warm.
type DashboardWarmWorker struct {
	dashboard dashboardWarmer
	logger    *zap.Logger
}

// NewDashboardWarmWorker constructs a worker.
func NewDashboardWarmWorker(dashboard dashboardWarmer, logger *zap.Logger) *DashboardWarmWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardWarmWorker{dashboard: dashboard, logger: logger}
}

// Handle processes a queue job.
func (w *DashboardWarmWorker) Handle(ctx context.Context, job jobs.Job[string]) error {
	start := time.Now()
	if err := w.dashboard.Warm(ctx, job.Payload); err != nil {
		return err
	}
	w.logger.Debug("dashboard warmed",
		zap.String("date", job.Payload),
		zap.Int("attempt", job.Attempt),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
