package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/charge-recovery/internal/mocks/worker"
	"github.com/aliskhannn/charge-recovery/internal/service/recovery"
)

func TestScheduler_Run_TicksBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockbatchRunner(ctrl)
	s := NewScheduler(mockRunner)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockRunner.EXPECT().RunBatch(gomock.Any(), strategy).
		Return(recovery.BatchResult{Processed: 2, Sent: 1}, nil).
		MinTimes(1)

	go s.Run(ctx, strategy, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestScheduler_Run_BatchErrorKeepsTicking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockbatchRunner(ctrl)
	s := NewScheduler(mockRunner)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockRunner.EXPECT().RunBatch(gomock.Any(), strategy).
		Return(recovery.BatchResult{}, errors.New("db down")).
		MinTimes(2)

	go s.Run(ctx, strategy, 10*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestScheduler_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockbatchRunner(ctrl)
	s := NewScheduler(mockRunner)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx, retry.Strategy{}, time.Hour)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
