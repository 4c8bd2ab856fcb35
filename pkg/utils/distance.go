package utils

import (
	"fmt"
	"math"
	"strconv"
)

const earthRadiusKm = 6371

// walkingFactor corrects the great-circle distance for street layouts.
const walkingFactor = 1.4

// CalculateDistance returns the approximate walking distance in kilometers
// between two coordinates.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c * walkingFactor
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// FormatDistance renders a distance for display: meters rounded to 10 m under
// one kilometer, otherwise kilometers rounded to one decimal with trailing
// zeros dropped ("13 km", not "13.0 km").
func FormatDistance(distance float64) string {
	if distance < 1 {
		meters := math.Round(distance*1000/10) * 10
		return fmt.Sprintf("%.0f m", meters)
	}
	km := math.Round(distance*10) / 10
	return strconv.FormatFloat(km, 'f', -1, 64) + " km"
}
