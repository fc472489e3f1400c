package dto

import (
	"math"
	"net/url"
	"strconv"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/utils"
)

// DescriptionExcerptLength - card descriptions are cut after this many characters
const DescriptionExcerptLength = 120

const (
	BadgeVerified   = "موثق"
	BadgeUnverified = "قيد المراجعة"
)

// MosqueCard - list entry and map overlay card
type MosqueCard struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Excerpt       string `json:"excerpt"`
	CoverImage    string `json:"cover_image,omitempty"`
	OpenDonations int    `json:"open_donations"`
	URL           string `json:"url"`
}

func NewMosqueCard(m domain.Mosque) MosqueCard {
	return MosqueCard{
		ID:            m.ID,
		Name:          m.Name,
		Address:       m.Address,
		Excerpt:       utils.Truncate(m.Description, DescriptionExcerptLength),
		CoverImage:    m.CoverImage,
		OpenDonations: m.DonationsCount,
		URL:           MosqueURL(m.ID),
	}
}

func NewMosqueCards(mosques []domain.Mosque) []MosqueCard {
	cards := make([]MosqueCard, 0, len(mosques))
	for _, m := range mosques {
		cards = append(cards, NewMosqueCard(m))
	}
	return cards
}

// MosqueURL is the detail page path of a mosque, with the id escaped as one segment.
func MosqueURL(id string) string {
	return "/mosque/" + url.PathEscape(id)
}

// DonationProgressView - one campaign with its progress figures already formatted
type DonationProgressView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Verified    bool   `json:"verified"`
	Badge       string `json:"badge"`
	Current     string `json:"current"`
	Total       string `json:"total"`
	Remaining   string `json:"remaining"`
	Percentage  string `json:"percentage"`
	// BarWidth is the percentage capped to [0,100] for drawing only.
	BarWidth string `json:"bar_width"`
}

func NewDonationProgress(d domain.Donation) DonationProgressView {
	pct := d.ProgressPercentage()
	badge := BadgeUnverified
	if d.IsVerified {
		badge = BadgeVerified
	}
	return DonationProgressView{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Verified:    d.IsVerified,
		Badge:       badge,
		Current:     utils.FormatAmount(d.CurrentAmount),
		Total:       utils.FormatAmount(d.TotalAmount),
		Remaining:   utils.FormatAmount(d.Remaining()),
		Percentage:  utils.FormatPercent(pct),
		BarWidth:    strconv.FormatFloat(math.Max(0, math.Min(100, pct)), 'f', 1, 64),
	}
}

func NewDonationProgressList(donations []domain.Donation) []DonationProgressView {
	views := make([]DonationProgressView, 0, len(donations))
	for _, d := range donations {
		views = append(views, NewDonationProgress(d))
	}
	return views
}

// MosqueDetail - detail page model
type MosqueDetail struct {
	ID            string
	Name          string
	Description   string
	Address       string
	City          string
	CoverImage    string
	Capacity      string
	EstablishYear string
	Donations     []DonationProgressView
	DonationCount string
}

func NewMosqueDetail(m domain.Mosque) MosqueDetail {
	detail := MosqueDetail{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Address:       m.Address,
		City:          m.City,
		CoverImage:    m.CoverImage,
		Capacity:      utils.FormatArabic(m.Capacity),
		Donations:     NewDonationProgressList(m.Donations),
		DonationCount: utils.FormatArabic(len(m.Donations)),
	}
	if m.EstablishYear > 0 {
		detail.EstablishYear = strconv.Itoa(m.EstablishYear)
	}
	return detail
}

// CityOption - one city toggle of the filter bar
type CityOption struct {
	ID       int
	Name     string
	Selected bool
}

func NewCityOptions(filter domain.MosqueFilter) []CityOption {
	cities := domain.Cities()
	opts := make([]CityOption, 0, len(cities))
	for _, c := range cities {
		opts = append(opts, CityOption{
			ID:       c.ID,
			Name:     c.Name,
			Selected: filter.CityID != nil && *filter.CityID == c.ID,
		})
	}
	return opts
}

// HomePage - home page model
type HomePage struct {
	Query      string
	Cities     []CityOption
	HasFilters bool
	ViewMode   string
	Cards      []MosqueCard
	// Error is the single user-visible message of a failed fetch; Cards is empty then.
	Error    string
	Loading  bool
	Selected *MosqueCard
}

// IsMap reports the map view.
func (p HomePage) IsMap() bool {
	return p.ViewMode == string(domain.ViewMap)
}

// Empty is true for a successful fetch without results.
func (p HomePage) Empty() bool {
	return p.Error == "" && !p.Loading && len(p.Cards) == 0
}

// ErrorPage - error page model
type ErrorPage struct {
	Title string
	Retry bool
}
