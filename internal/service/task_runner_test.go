package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTaskRunner_OutlivesCancelledRequest(t *testing.T) {
	r := NewTaskRunner(false, time.Second, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	var ran atomic.Bool
	var ctxErr atomic.Value
	r.Go(ctx, "test", func(ctx context.Context) {
		time.Sleep(20 * time.Millisecond)
		ran.Store(true)
		if err := ctx.Err(); err != nil {
			ctxErr.Store(err)
		}
	})
	cancel()
	r.Wait()

	assert.True(t, ran.Load())
	assert.Nil(t, ctxErr.Load())
}

func TestTaskRunner_InlineRunsBeforeReturning(t *testing.T) {
	r := NewTaskRunner(true, time.Second, zap.NewNop())

	ran := false
	r.Go(context.Background(), "test", func(ctx context.Context) { ran = true })

	assert.True(t, ran)
}

func TestTaskRunner_RecoversPanics(t *testing.T) {
	r := NewTaskRunner(false, time.Second, zap.NewNop())

	r.Go(context.Background(), "boom", func(ctx context.Context) { panic("boom") })
	r.Wait()

	r = NewTaskRunner(true, time.Second, zap.NewNop())
	assert.NotPanics(t, func() {
		r.Go(context.Background(), "boom", func(ctx context.Context) { panic("boom") })
	})
}

func TestTaskRunner_TimeoutBoundsTask(t *testing.T) {
	r := NewTaskRunner(false, 10*time.Millisecond, zap.NewNop())

	var deadlineHit atomic.Bool
	r.Go(context.Background(), "slow", func(ctx context.Context) {
		<-ctx.Done()
		deadlineHit.Store(true)
	})
	r.Wait()

	assert.True(t, deadlineHit.Load())
}
