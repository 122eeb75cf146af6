package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TaskRunner runs post-reply work such as context updates. Tasks outlive the
// request that scheduled them but are bounded by a timeout.
type TaskRunner struct {
	inline  bool
	timeout time.Duration
	wg      sync.WaitGroup
	logger  *zap.Logger
}

// NewTaskRunner creates a runner. With inline set, Go runs the task before
// returning.
func NewTaskRunner(inline bool, timeout time.Duration, logger *zap.Logger) *TaskRunner {
	return &TaskRunner{
		inline:  inline,
		timeout: timeout,
		logger:  logger.Named("tasks"),
	}
}

// Go schedules fn. Cancelling ctx does not cancel fn.
func (r *TaskRunner) Go(ctx context.Context, name string, fn func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)
	if r.inline {
		r.run(ctx, name, fn)
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx, name, fn)
	}()
}

func (r *TaskRunner) run(ctx context.Context, name string, fn func(ctx context.Context)) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Background task panicked",
				zap.String("task", name),
				zap.Any("panic", rec))
		}
	}()
	fn(ctx)
}

// Wait blocks until every scheduled task has finished.
func (r *TaskRunner) Wait() {
	r.wg.Wait()
}
