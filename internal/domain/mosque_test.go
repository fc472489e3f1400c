package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manara-web/internal/domain"
)

func TestDonation_ProgressPercentage(t *testing.T) {
	tests := []struct {
		name     string
		donation domain.Donation
		want     float64
	}{
		{"partial", domain.Donation{CurrentAmount: 150000, TotalAmount: 500000}, 30.0},
		{"over funded is not clamped", domain.Donation{CurrentAmount: 600000, TotalAmount: 500000}, 120.0},
		{"nothing raised", domain.Donation{CurrentAmount: 0, TotalAmount: 80000}, 0},
		{"zero target", domain.Donation{CurrentAmount: 100, TotalAmount: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.donation.ProgressPercentage()
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
		})
	}
}

func TestDonation_Remaining(t *testing.T) {
	assert.Equal(t, 350000.0, domain.Donation{CurrentAmount: 150000, TotalAmount: 500000}.Remaining())
	assert.Equal(t, -100000.0, domain.Donation{CurrentAmount: 600000, TotalAmount: 500000}.Remaining())
}

func TestMosque_HasValidCoordinate(t *testing.T) {
	assert.True(t, domain.Mosque{Latitude: 33.5138, Longitude: 36.3069}.HasValidCoordinate())
	assert.False(t, domain.Mosque{Latitude: 120, Longitude: 36}.HasValidCoordinate())
}
