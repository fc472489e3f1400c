package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manara-web/internal/domain"
)

func TestMemoryViewStateRepository(t *testing.T) {
	repo := NewMemoryViewStateRepository()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	state := domain.ViewState{
		Filter:           domain.MosqueFilter{Query: "جامع"}.ToggleCity(2),
		ViewMode:         domain.ViewMap,
		SelectedMosqueID: "2",
	}

	t.Run("miss", func(t *testing.T) {
		got, err := repo.Get(ctx, "unknown")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("round trip does not alias the city pointer", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s1", state, time.Minute))

		got, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, state.Filter.Equal(got.Filter))
		assert.Equal(t, domain.ViewMap, got.ViewMode)
		assert.Equal(t, "2", got.SelectedMosqueID)
		assert.NotSame(t, state.Filter.CityID, got.Filter.CityID)
	})

	t.Run("expired entries vanish", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		got, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s2", state, 0))
		require.NoError(t, repo.Delete(ctx, "s2"))
		got, err := repo.Get(ctx, "s2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
