package domain

import "github.com/manara-web/internal/pkg/utils"

// Mosque - a place of worship with its location and donation campaigns.
// Values are snapshots of one upstream response and are never mutated locally.
type Mosque struct {
	ID             string     `json:"id" validate:"required"`
	Status         string     `json:"status"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Longitude      float64    `json:"longitude"`
	Latitude       float64    `json:"latitude"`
	Capacity       int        `json:"capacity" validate:"gte=0"`
	Address        string     `json:"address"`
	DonationsCount int        `json:"donations_count" validate:"gte=0"`
	City           string     `json:"city"`
	Size           string     `json:"size"`
	EstablishYear  int        `json:"establish_year"`
	CoverImage     string     `json:"cover_image,omitempty"`
	Donations      []Donation `json:"donations" validate:"dive"`
}

// Donation - a funding goal of a mosque
type Donation struct {
	ID            string  `json:"id" validate:"required"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	IsVerified    bool    `json:"is_verified"`
	CurrentAmount float64 `json:"current_amount" validate:"gte=0"`
	TotalAmount   float64 `json:"total_amount" validate:"gte=0"`
}

// Coordinate - WGS84 point
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coordinate returns the mosque location.
func (m Mosque) Coordinate() Coordinate {
	return Coordinate{Lat: m.Latitude, Lon: m.Longitude}
}

// HasValidCoordinate reports whether the mosque can be placed on a map.
func (m Mosque) HasValidCoordinate() bool {
	return utils.ValidateCoordinates(m.Latitude, m.Longitude)
}

// ProgressPercentage is 100*current/total, unclamped; 0 when the target is not positive.
func (d Donation) ProgressPercentage() float64 {
	if d.TotalAmount <= 0 {
		return 0
	}
	return 100 * d.CurrentAmount / d.TotalAmount
}

// Remaining is total-current, negative when the campaign is over-funded.
func (d Donation) Remaining() float64 {
	return d.TotalAmount - d.CurrentAmount
}
