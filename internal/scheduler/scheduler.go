package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Retryer re-enqueues errored posts that still have retry budget.
type Retryer interface {
	RetryFailed(ctx context.Context) (retried, skipped int, err error)
}

type Scheduler struct {
	retryer  Retryer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(retryer Retryer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		retryer:  retryer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("retry scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("retry scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, _, err := s.retryer.RetryFailed(sweepCtx); err != nil {
		s.logger.Error("retry sweep failed", "error", err)
	}
}
