package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/usecase"
)

// MockMosqueRepository is a mock of MosqueRepository
type MockMosqueRepository struct {
	mock.Mock
}

func (m *MockMosqueRepository) FetchMosques(ctx context.Context, filter domain.MosqueFilter) ([]domain.Mosque, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mosque), args.Error(1)
}

func (m *MockMosqueRepository) FetchMosqueByID(ctx context.Context, id string) (*domain.Mosque, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mosque), args.Error(1)
}

func (m *MockMosqueRepository) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMosqueRepository) FiltersServerSide() bool {
	args := m.Called()
	return args.Bool(0)
}

var fixtureMosques = []domain.Mosque{
	{ID: "1", Name: "جامع الأموي", Description: "من أقدم المساجد", City: "دمشق", Latitude: 33.5138, Longitude: 36.3069},
	{ID: "2", Name: "جامع خالد بن الوليد", Description: "مسجد تاريخي", City: "حمص", Latitude: 34.7268, Longitude: 36.7234},
	{ID: "3", Name: "الجامع الكبير", Description: "الجامع الأموي الكبير في حلب", City: "حلب", Latitude: 36.1991, Longitude: 37.1568},
}

func TestMosqueUseCase_ListMosques(t *testing.T) {
	ctx := context.Background()

	t.Run("client-side filtering narrows the full collection", func(t *testing.T) {
		repo := &MockMosqueRepository{}
		uc := usecase.NewMosqueUseCase(repo, zap.NewNop())
		filter := domain.MosqueFilter{}.ToggleCity(1)

		repo.On("FetchMosques", ctx, filter).Return(fixtureMosques, nil).Once()
		repo.On("FiltersServerSide").Return(false)

		result, err := uc.ListMosques(ctx, filter)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("query matches name and description", func(t *testing.T) {
		repo := &MockMosqueRepository{}
		uc := usecase.NewMosqueUseCase(repo, zap.NewNop())
		filter := domain.MosqueFilter{}.WithQuery("الأموي")

		repo.On("FetchMosques", ctx, filter).Return(fixtureMosques, nil).Once()
		repo.On("FiltersServerSide").Return(false)

		result, err := uc.ListMosques(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("server-side filtering is trusted", func(t *testing.T) {
		repo := &MockMosqueRepository{}
		uc := usecase.NewMosqueUseCase(repo, zap.NewNop())
		filter := domain.MosqueFilter{}.WithQuery("nothing matches locally")

		repo.On("FetchMosques", ctx, filter).Return(fixtureMosques[:1], nil).Once()
		repo.On("FiltersServerSide").Return(true)

		result, err := uc.ListMosques(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("fetch error yields no data", func(t *testing.T) {
		repo := &MockMosqueRepository{}
		uc := usecase.NewMosqueUseCase(repo, zap.NewNop())

		repo.On("FetchMosques", ctx, domain.MosqueFilter{}).
			Return(nil, errors.ErrFetch.WithMessage("Failed to fetch mosques: 500 Internal Server Error")).Once()

		result, err := uc.ListMosques(ctx, domain.MosqueFilter{})
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errors.ErrFetch))
		repo.AssertNotCalled(t, "FiltersServerSide")
	})
}

func TestMosqueUseCase_GetMosque(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := &MockMosqueRepository{}
		uc := usecase.NewMosqueUseCase(repo, zap.NewNop())
		m := fixtureMosques[0]
		repo.On("FetchMosqueByID", ctx, "1").Return(&m, nil)

		got, err := uc.GetMosque(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "جامع الأموي", got.Name)
	})

	t.Run("not found passes through", func(t *testing.T) {
		repo := &MockMosqueRepository{}
		uc := usecase.NewMosqueUseCase(repo, zap.NewNop())
		repo.On("FetchMosqueByID", ctx, "9").Return(nil, errors.ErrNotFound)

		got, err := uc.GetMosque(ctx, "9")
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	t.Run("empty id is rejected without a fetch", func(t *testing.T) {
		repo := &MockMosqueRepository{}
		uc := usecase.NewMosqueUseCase(repo, zap.NewNop())

		_, err := uc.GetMosque(ctx, "")
		assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
		repo.AssertNotCalled(t, "FetchMosqueByID", mock.Anything, mock.Anything)
	})
}

func TestMosqueUseCase_Health(t *testing.T) {
	repo := &MockMosqueRepository{}
	uc := usecase.NewMosqueUseCase(repo, zap.NewNop())
	repo.On("Health", mock.Anything).Return(errors.ErrFetch).Once()
	repo.On("Health", mock.Anything).Return(nil).Once()

	assert.Error(t, uc.Health(context.Background()))
	assert.NoError(t, uc.Health(context.Background()))
}
