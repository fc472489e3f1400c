package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// BaseWorker carries the name, logger and stop signal of a periodic worker.
// Embedders supply the tick function and call RunEvery from Start.
type BaseWorker struct {
	name   string
	logger *zap.Logger

	stopOnce sync.Once
	stopChan chan struct{}

	mu       sync.Mutex
	lastTick time.Time
	ticks    uint64
}

func NewBaseWorker(name string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:     name,
		logger:   logger.Named(name),
		stopChan: make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop signals the loop; later calls are no-ops.
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		close(w.stopChan)
	})
	return nil
}

func (w *BaseWorker) IsStopped() bool {
	select {
	case <-w.stopChan:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// LastTick reports when tick last ran and how many times it has run.
func (w *BaseWorker) LastTick() (time.Time, uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastTick, w.ticks
}

// RunEvery calls tick once per interval until Stop is called or ctx is done.
// A stop returns nil, a cancelled ctx returns ctx.Err(). A panicking tick is
// logged and the loop keeps going.
func (w *BaseWorker) RunEvery(ctx context.Context, interval time.Duration, tick func(context.Context)) error {
	w.logger.Info("Worker loop started", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			w.logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.runTick(ctx, tick)
		}
	}
}

func (w *BaseWorker) runTick(ctx context.Context, tick func(context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Worker tick panicked", zap.Any("panic", r))
		}
		w.mu.Lock()
		w.lastTick = time.Now()
		w.ticks++
		w.mu.Unlock()
	}()
	tick(ctx)
}
