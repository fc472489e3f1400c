// Package mock serves the static mosque dataset used before the remote API existed.
package mock

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/pkg/metrics"
)

// MosqueRepository - in-process mosque source backed by a fixed dataset
type MosqueRepository struct {
	mosques []domain.Mosque
	logger  *zap.Logger
}

// NewMosqueRepository returns a repository over the bundled dataset.
func NewMosqueRepository(logger *zap.Logger) *MosqueRepository {
	return NewMosqueRepositoryWith(Dataset(), logger)
}

// NewMosqueRepositoryWith returns a repository over the given records.
func NewMosqueRepositoryWith(mosques []domain.Mosque, logger *zap.Logger) *MosqueRepository {
	return &MosqueRepository{
		mosques: cloneAll(mosques),
		logger:  logger,
	}
}

// FiltersServerSide - the dataset applies the filter itself
func (r *MosqueRepository) FiltersServerSide() bool {
	return true
}

func (r *MosqueRepository) FetchMosques(ctx context.Context, filter domain.MosqueFilter) ([]domain.Mosque, error) {
	started := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.ObserveUpstream("list_mosques", metrics.OutcomeError, started)
		return nil, errors.ErrFetch.WithMessage("Failed to fetch mosques: request cancelled").Wrap(err)
	}

	result := make([]domain.Mosque, 0, len(r.mosques))
	for _, m := range r.mosques {
		if filter.Matches(m) {
			result = append(result, clone(m))
		}
	}

	metrics.ObserveUpstream("list_mosques", metrics.OutcomeSuccess, started)
	r.logger.Debug("Mosques served from static dataset", zap.Int("count", len(result)))
	return result, nil
}

func (r *MosqueRepository) FetchMosqueByID(ctx context.Context, id string) (*domain.Mosque, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ErrFetch.WithMessage("Failed to fetch mosque: request cancelled").Wrap(err)
	}

	id = strings.TrimSpace(id)
	for _, m := range r.mosques {
		if m.ID == id {
			found := clone(m)
			return &found, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *MosqueRepository) Health(ctx context.Context) error {
	return ctx.Err()
}

func clone(m domain.Mosque) domain.Mosque {
	if m.Donations != nil {
		m.Donations = append([]domain.Donation(nil), m.Donations...)
	}
	return m
}

func cloneAll(in []domain.Mosque) []domain.Mosque {
	out := make([]domain.Mosque, len(in))
	for i, m := range in {
		out[i] = clone(m)
	}
	return out
}
