package repository

import (
	"context"

	"github.com/manara-web/internal/domain"
)

// MosqueRepository - read-only access to mosque records
type MosqueRepository interface {
	// FetchMosques returns the collection narrowed by filter when the source supports it.
	// Either a complete sequence or an error is returned, never both.
	FetchMosques(ctx context.Context, filter domain.MosqueFilter) ([]domain.Mosque, error)

	// FetchMosqueByID returns errors.ErrNotFound when the source reports the mosque as absent.
	FetchMosqueByID(ctx context.Context, id string) (*domain.Mosque, error)

	// Health probes the source for liveness.
	Health(ctx context.Context) error

	// FiltersServerSide reports whether FetchMosques already applies the filter.
	FiltersServerSide() bool
}
