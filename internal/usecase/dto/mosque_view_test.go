package dto

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manara-web/internal/domain"
)

func TestNewMosqueCard(t *testing.T) {
	long := strings.Repeat("وصف ", 40)
	card := NewMosqueCard(domain.Mosque{
		ID:             "3",
		Name:           "الجامع الكبير",
		Address:        "حلب القديمة",
		Description:    long,
		DonationsCount: 4,
	})

	assert.Equal(t, "/mosque/3", card.URL)
	assert.Equal(t, 4, card.OpenDonations)
	assert.True(t, strings.HasSuffix(card.Excerpt, "..."))
	assert.Equal(t, DescriptionExcerptLength, utf8.RuneCountInString(strings.TrimSuffix(card.Excerpt, "...")))

	short := NewMosqueCard(domain.Mosque{ID: "1", Description: "مسجد تاريخي"})
	assert.Equal(t, "مسجد تاريخي", short.Excerpt)
}

func TestMosqueURL(t *testing.T) {
	assert.Equal(t, "/mosque/42", MosqueURL("42"))
	assert.Equal(t, "/mosque/a%2Fb%3Fc", MosqueURL("a/b?c"))
	assert.Equal(t, "/mosque/%D8%AC%D8%A7%D9%85%D8%B9", MosqueURL("جامع"))
}

func TestNewDonationProgress(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		v := NewDonationProgress(domain.Donation{
			ID: "d1", Title: "ترميم القبة الذهبية", IsVerified: true,
			CurrentAmount: 150000, TotalAmount: 500000,
		})
		assert.Equal(t, "30.0", v.Percentage)
		assert.Equal(t, "30.0", v.BarWidth)
		assert.Equal(t, "150,000", v.Current)
		assert.Equal(t, "500,000", v.Total)
		assert.Equal(t, "350,000", v.Remaining)
		assert.Equal(t, BadgeVerified, v.Badge)
	})

	t.Run("over funded shows the real figures, bar stays full", func(t *testing.T) {
		v := NewDonationProgress(domain.Donation{ID: "d9", CurrentAmount: 600000, TotalAmount: 500000})
		assert.Equal(t, "120.0", v.Percentage)
		assert.Equal(t, "100.0", v.BarWidth)
		assert.Equal(t, "-100,000", v.Remaining)
		assert.Equal(t, BadgeUnverified, v.Badge)
	})

	t.Run("zero target", func(t *testing.T) {
		v := NewDonationProgress(domain.Donation{ID: "d0"})
		assert.Equal(t, "0.0", v.Percentage)
		assert.Equal(t, "0.0", v.BarWidth)
	})
}

func TestNewMosqueDetail(t *testing.T) {
	detail := NewMosqueDetail(domain.Mosque{
		ID:            "1",
		Name:          "جامع الأموي",
		Capacity:      3000,
		EstablishYear: 715,
		Donations: []domain.Donation{
			{ID: "d1", CurrentAmount: 1, TotalAmount: 2},
			{ID: "d2", CurrentAmount: 1, TotalAmount: 4},
		},
	})

	assert.Equal(t, "715", detail.EstablishYear)
	assert.NotEmpty(t, detail.Capacity)
	require.Len(t, detail.Donations, 2)
	assert.Equal(t, "50.0", detail.Donations[0].Percentage)
	assert.Equal(t, "25.0", detail.Donations[1].Percentage)

	empty := NewMosqueDetail(domain.Mosque{ID: "2"})
	assert.Empty(t, empty.Donations)
	assert.Empty(t, empty.EstablishYear)
}

func TestNewCityOptions(t *testing.T) {
	opts := NewCityOptions(domain.MosqueFilter{}.ToggleCity(2))
	require.Len(t, opts, 3)
	assert.Equal(t, "حلب", opts[0].Name)
	assert.False(t, opts[0].Selected)
	assert.True(t, opts[2].Selected)

	for _, o := range NewCityOptions(domain.MosqueFilter{}) {
		assert.False(t, o.Selected)
	}
}

func TestHomePage_Empty(t *testing.T) {
	assert.True(t, HomePage{}.Empty())
	assert.False(t, HomePage{Error: "x"}.Empty())
	assert.False(t, HomePage{Cards: []MosqueCard{{ID: "1"}}}.Empty())
	assert.True(t, HomePage{ViewMode: "map"}.IsMap())
}
