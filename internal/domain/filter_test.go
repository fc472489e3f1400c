package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manara-web/internal/domain"
)

func TestMosqueFilter_ToggleCity(t *testing.T) {
	var f domain.MosqueFilter

	f = f.ToggleCity(1)
	require.NotNil(t, f.CityID)
	assert.Equal(t, 1, *f.CityID)

	t.Run("toggling the same city twice clears it", func(t *testing.T) {
		cleared := f.ToggleCity(1)
		assert.Nil(t, cleared.CityID)
	})

	t.Run("selecting another city replaces it", func(t *testing.T) {
		other := f.ToggleCity(2)
		require.NotNil(t, other.CityID)
		assert.Equal(t, 2, *other.CityID)
	})

	t.Run("toggle does not alias the previous value", func(t *testing.T) {
		assert.Equal(t, 1, *f.CityID)
	})
}

func TestMosqueFilter_Equal(t *testing.T) {
	one, otherOne := 1, 1
	two := 2

	assert.True(t, domain.MosqueFilter{}.Equal(domain.MosqueFilter{}))
	assert.True(t, domain.MosqueFilter{Query: "a", CityID: &one}.Equal(domain.MosqueFilter{Query: "a", CityID: &otherOne}))
	assert.False(t, domain.MosqueFilter{CityID: &one}.Equal(domain.MosqueFilter{CityID: &two}))
	assert.False(t, domain.MosqueFilter{CityID: &one}.Equal(domain.MosqueFilter{}))
	assert.False(t, domain.MosqueFilter{Query: "a"}.Equal(domain.MosqueFilter{Query: "b"}))
}

func TestMosqueFilter_Cleared(t *testing.T) {
	f := domain.MosqueFilter{}.WithQuery("  جامع ").ToggleCity(0)
	assert.Equal(t, "جامع", f.Query)
	assert.False(t, f.IsEmpty())
	assert.True(t, f.Cleared().IsEmpty())
}

func TestMosqueFilter_Matches(t *testing.T) {
	damascus := domain.Mosque{Name: "جامع الأموي", City: "دمشق", Description: "مسجد تاريخي"}
	aleppo := domain.Mosque{Name: "جامع النوري", City: "حلب"}

	assert.True(t, domain.MosqueFilter{}.Matches(damascus))
	assert.True(t, domain.MosqueFilter{Query: "الأموي"}.Matches(damascus))
	assert.True(t, domain.MosqueFilter{Query: "تاريخي"}.Matches(damascus))
	assert.False(t, domain.MosqueFilter{Query: "الأموي"}.Matches(aleppo))

	f := domain.MosqueFilter{}.ToggleCity(1) // دمشق
	assert.True(t, f.Matches(damascus))
	assert.False(t, f.Matches(aleppo))

	unknown := domain.MosqueFilter{}.ToggleCity(99)
	assert.False(t, unknown.Matches(damascus))
}

func TestParseViewMode(t *testing.T) {
	m, ok := domain.ParseViewMode("map")
	assert.True(t, ok)
	assert.Equal(t, domain.ViewMap, m)

	_, ok = domain.ParseViewMode("grid")
	assert.False(t, ok)
}
