package cache

import (
	"context"
	"sync"
	"time"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/domain/repository"
)

type memoryEntry struct {
	state     domain.ViewState
	expiresAt time.Time
}

// MemoryViewStateRepository keeps view state in process; used when Redis is disabled.
type MemoryViewStateRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ repository.ViewStateRepository = (*MemoryViewStateRepository)(nil)

func NewMemoryViewStateRepository() *MemoryViewStateRepository {
	return &MemoryViewStateRepository{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *MemoryViewStateRepository) Get(_ context.Context, sessionID string) (*domain.ViewState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && r.now().After(e.expiresAt) {
		delete(r.entries, sessionID)
		return nil, nil
	}

	state := e.state
	state.Filter = state.Filter.WithCity(state.Filter.CityID)
	return &state, nil
}

func (r *MemoryViewStateRepository) Save(_ context.Context, sessionID string, state domain.ViewState, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = r.now().Add(ttl)
	}
	state.Filter = state.Filter.WithCity(state.Filter.CityID)
	r.entries[sessionID] = memoryEntry{state: state, expiresAt: expiresAt}
	return nil
}

func (r *MemoryViewStateRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)
	return nil
}
