package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/metrics"
)

// MosqueLister fetches the mosques for a filter.
type MosqueLister interface {
	ListMosques(ctx context.Context, filter domain.MosqueFilter) ([]domain.Mosque, error)
}

// Snapshot - the result of the newest applied fetch.
// Either Mosques or Err is set once Sequence > 0, never both.
type Snapshot struct {
	Filter   domain.MosqueFilter
	Mosques  []domain.Mosque
	Err      error
	Sequence uint64
	// Loading is true while a fetch newer than Sequence is in flight.
	Loading bool
}

// Loaded reports a successful fetch.
func (s Snapshot) Loaded() bool {
	return s.Sequence > 0 && s.Err == nil
}

// SearchController owns the filter of one session and reconciles the fetches it issues.
// Every fetch carries a sequence number; a response older than the newest applied one is dropped.
type SearchController struct {
	lister MosqueLister
	logger *zap.Logger

	mu       sync.Mutex
	filter   domain.MosqueFilter
	issued   uint64
	applied  uint64
	snapshot Snapshot
}

func NewSearchController(lister MosqueLister, initial domain.MosqueFilter, logger *zap.Logger) *SearchController {
	return &SearchController{
		lister:   lister,
		logger:   logger,
		filter:   initial,
		snapshot: Snapshot{Filter: initial},
	}
}

func (c *SearchController) Filter() domain.MosqueFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *SearchController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *SearchController) SetQuery(ctx context.Context, q string) Snapshot {
	return c.update(ctx, func(f domain.MosqueFilter) domain.MosqueFilter { return f.WithQuery(q) })
}

func (c *SearchController) ToggleCity(ctx context.Context, id int) Snapshot {
	return c.update(ctx, func(f domain.MosqueFilter) domain.MosqueFilter { return f.ToggleCity(id) })
}

// Clear drops query and city in one change.
func (c *SearchController) Clear(ctx context.Context) Snapshot {
	return c.update(ctx, func(f domain.MosqueFilter) domain.MosqueFilter { return f.Cleared() })
}

// Apply replaces the whole filter.
func (c *SearchController) Apply(ctx context.Context, filter domain.MosqueFilter) Snapshot {
	return c.update(ctx, func(domain.MosqueFilter) domain.MosqueFilter { return filter })
}

// Load fetches the current filter unless it is in flight or already loaded successfully.
func (c *SearchController) Load(ctx context.Context) Snapshot {
	return c.update(ctx, func(f domain.MosqueFilter) domain.MosqueFilter { return f })
}

// Reload always fetches the current filter.
func (c *SearchController) Reload(ctx context.Context) Snapshot {
	c.mu.Lock()
	filter := c.filter
	seq := c.issueLocked()
	c.mu.Unlock()

	return c.fetch(ctx, seq, filter)
}

func (c *SearchController) update(ctx context.Context, change func(domain.MosqueFilter) domain.MosqueFilter) Snapshot {
	c.mu.Lock()
	next := change(c.filter)
	if next.Equal(c.filter) && c.coveredLocked() {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
	c.filter = next
	seq := c.issueLocked()
	c.mu.Unlock()

	return c.fetch(ctx, seq, next)
}

// coveredLocked: the current filter is either in flight or loaded successfully.
func (c *SearchController) coveredLocked() bool {
	if c.issued > c.applied {
		return true
	}
	return c.snapshot.Loaded() && c.snapshot.Filter.Equal(c.filter)
}

func (c *SearchController) issueLocked() uint64 {
	c.issued++
	return c.issued
}

func (c *SearchController) fetch(ctx context.Context, seq uint64, filter domain.MosqueFilter) Snapshot {
	metrics.SearchFetchesTotal.Inc()
	mosques, err := c.lister.ListMosques(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.applied {
		metrics.SearchStaleResponsesTotal.Inc()
		c.logger.Debug("Discarding stale search response",
			zap.Uint64("sequence", seq),
			zap.Uint64("applied", c.applied))
		return c.snapshotLocked()
	}

	c.applied = seq
	if err != nil {
		c.snapshot = Snapshot{Filter: filter, Err: err, Sequence: seq}
	} else {
		if mosques == nil {
			mosques = []domain.Mosque{}
		}
		c.snapshot = Snapshot{Filter: filter, Mosques: mosques, Sequence: seq}
	}
	return c.snapshotLocked()
}

func (c *SearchController) snapshotLocked() Snapshot {
	snap := c.snapshot
	if snap.Mosques != nil {
		snap.Mosques = make([]domain.Mosque, len(c.snapshot.Mosques))
		copy(snap.Mosques, c.snapshot.Mosques)
	}
	snap.Loading = c.issued > c.applied
	return snap
}
