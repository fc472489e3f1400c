package worker

import (
	"context"
)

// Worker is a background loop owned by the WorkerManager.
type Worker interface {
	// Start blocks until the worker is stopped or ctx is done.
	Start(ctx context.Context) error

	Stop() error

	Name() string
}
