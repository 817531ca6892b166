package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trip-dashboard/internal/worker"
)

const workerName = "session-sweeper"

// Sweeper - сессии, которые можно чистить по времени
type Sweeper interface {
	Sweep(now time.Time) int
}

// SweeperWorker периодически удаляет неактивные сессии дашборда
type SweeperWorker struct {
	*worker.BaseWorker
	sessions Sweeper
	interval time.Duration
	now      func() time.Time
}

// NewSweeperWorker создает новый SweeperWorker
func NewSweeperWorker(sessions Sweeper, interval time.Duration, logger *zap.Logger) *SweeperWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SweeperWorker{
		BaseWorker: worker.NewBaseWorker(workerName, logger),
		sessions:   sessions,
		interval:   interval,
		now:        time.Now,
	}
}

// Start запускает цикл очистки до Stop или отмены контекста
func (w *SweeperWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting session sweeper", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			if removed := w.sessions.Sweep(w.now()); removed > 0 {
				logger.Debug("Sweep finished", zap.Int("removed", removed))
			}
		}
	}
}
