package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/charge-recovery/internal/service/recovery"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/worker/mock.go -package=mocks

type batchRunner interface {
	RunBatch(ctx context.Context, strategy retry.Strategy) (recovery.BatchResult, error)
}

// Scheduler drives the recovery engine: one stateless batch pass per tick.
// Every pass re-derives its decisions from the store, so a missed or killed
// tick needs no compensation.
type Scheduler struct {
	service batchRunner
}

func NewScheduler(s batchRunner) *Scheduler {
	return &Scheduler{service: s}
}

func (s *Scheduler) Run(ctx context.Context, strategy retry.Strategy, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	zlog.Logger.Printf("recovery scheduler started, interval %s", interval)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("recovery scheduler stopped")
			return
		case <-ticker.C:
			result, err := s.service.RunBatch(ctx, strategy)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("batch pass failed")
				continue
			}

			zlog.Logger.Printf("batch pass complete: processed=%d sent=%d", result.Processed, result.Sent)
		}
	}
}
