// Package distance computes great-circle distances between coordinates.
package distance

import (
	"math"

	"github.com/trailplan/flight-estimator/internal/core/model"
)

// earthRadiusKm is the mean Earth radius used by the pricing formula.
const earthRadiusKm = 6371

// Km returns the haversine great-circle distance between a and b, rounded to
// the nearest whole kilometer. Symmetric in its arguments; zero when a == b.
func Km(a, b model.Coordinate) int {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	latA := toRad(a.Lat)
	latB := toRad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(math.Round(earthRadiusKm * c))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
