package repository

import (
	"context"
	"time"

	"github.com/manara-web/internal/domain"
)

// ViewStateRepository stores the per-session UI state between requests
type ViewStateRepository interface {
	// Get returns nil, nil when nothing is stored for sessionID.
	Get(ctx context.Context, sessionID string) (*domain.ViewState, error)

	// Save stores state with a TTL.
	Save(ctx context.Context, sessionID string, state domain.ViewState, ttl time.Duration) error

	// Delete removes the stored state.
	Delete(ctx context.Context, sessionID string) error
}
