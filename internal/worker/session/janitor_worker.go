package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/manara-web/internal/worker"
)

// Evictor drops idle sessions and reports how many went away.
type Evictor interface {
	EvictIdle() int
}

// JanitorWorker periodically evicts idle browser sessions and their map widgets
type JanitorWorker struct {
	*worker.BaseWorker
	sessions Evictor
	interval time.Duration
}

func NewJanitorWorker(sessions Evictor, interval time.Duration, logger *zap.Logger) *JanitorWorker {
	return &JanitorWorker{
		BaseWorker: worker.NewBaseWorker("session-janitor", logger),
		sessions:   sessions,
		interval:   interval,
	}
}

func (w *JanitorWorker) Start(ctx context.Context) error {
	return w.RunEvery(ctx, w.interval, w.sweep)
}

func (w *JanitorWorker) sweep(context.Context) {
	if evicted := w.sessions.EvictIdle(); evicted > 0 {
		w.Logger().Debug("Sweep finished", zap.Int("evicted", evicted))
	}
}
