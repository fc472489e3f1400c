package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/domain/repository"
	"github.com/manara-web/internal/pkg/errors"
)

// MosqueUseCase - read access to mosques with filtering applied exactly once
type MosqueUseCase struct {
	repo   repository.MosqueRepository
	logger *zap.Logger
}

// NewMosqueUseCase - creates a MosqueUseCase
func NewMosqueUseCase(repo repository.MosqueRepository, logger *zap.Logger) *MosqueUseCase {
	return &MosqueUseCase{
		repo:   repo,
		logger: logger,
	}
}

// ListMosques returns the mosques matching filter. Sources that cannot filter
// return the full collection, which is narrowed here.
func (uc *MosqueUseCase) ListMosques(ctx context.Context, filter domain.MosqueFilter) ([]domain.Mosque, error) {
	mosques, err := uc.repo.FetchMosques(ctx, filter)
	if err != nil {
		uc.logger.Error("Error fetching mosques", zap.Error(err))
		return nil, err
	}

	if uc.repo.FiltersServerSide() || filter.IsEmpty() {
		return mosques, nil
	}

	result := make([]domain.Mosque, 0, len(mosques))
	for _, m := range mosques {
		if filter.Matches(m) {
			result = append(result, m)
		}
	}
	return result, nil
}

// GetMosque returns one mosque; errors.ErrNotFound when the source reports it absent.
func (uc *MosqueUseCase) GetMosque(ctx context.Context, id string) (*domain.Mosque, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Mosque id is required")
	}

	mosque, err := uc.repo.FetchMosqueByID(ctx, id)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			uc.logger.Debug("Mosque not found", zap.String("id", id))
		} else {
			uc.logger.Error("Error fetching mosque", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return mosque, nil
}

// Health probes the mosque source.
func (uc *MosqueUseCase) Health(ctx context.Context) error {
	if err := uc.repo.Health(ctx); err != nil {
		uc.logger.Warn("API health check failed", zap.Error(err))
		return err
	}
	return nil
}
