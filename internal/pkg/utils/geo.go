package utils

import "math"

// ValidateCoordinates - checks that lat/lon form a usable WGS84 coordinate
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
