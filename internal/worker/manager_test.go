package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manara-web/internal/worker"
)

type tickWorker struct {
	*worker.BaseWorker
	ticks  atomic.Int32
	panics bool
}

func newTickWorker(panics bool) *tickWorker {
	return &tickWorker{BaseWorker: worker.NewBaseWorker("tick", zap.NewNop()), panics: panics}
}

func (w *tickWorker) Start(ctx context.Context) error {
	return w.RunEvery(ctx, 2*time.Millisecond, func(context.Context) {
		w.ticks.Add(1)
		if w.panics {
			panic("boom")
		}
	})
}

// stuckWorker ignores Stop until released.
type stuckWorker struct {
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error {
	<-w.release
	return nil
}

func (w *stuckWorker) Stop() error  { return nil }
func (w *stuckWorker) Name() string { return "stuck" }

func TestBaseWorker_RunEvery(t *testing.T) {
	w := newTickWorker(false)
	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	require.Eventually(t, func() bool {
		_, n := w.LastTick()
		return n >= 3
	}, time.Second, time.Millisecond)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
	require.NoError(t, <-done)

	last, _ := w.LastTick()
	assert.False(t, last.IsZero())
}

func TestBaseWorker_PanickingTickKeepsLooping(t *testing.T) {
	w := newTickWorker(true)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.Eventually(t, func() bool {
		return w.ticks.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWorkerManager_StopWaitsForLoops(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	w := newTickWorker(false)
	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	require.Eventually(t, func() bool {
		return w.ticks.Load() >= 1
	}, time.Second, time.Millisecond)

	require.NoError(t, m.Stop(context.Background()))
	assert.True(t, w.IsStopped())
}

func TestWorkerManager_StopHonoursDeadline(t *testing.T) {
	stuck := &stuckWorker{release: make(chan struct{})}
	defer close(stuck.release)

	m := worker.NewWorkerManager(zap.NewNop())
	m.Register(stuck)
	require.NoError(t, m.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := m.Stop(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
