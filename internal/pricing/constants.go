package pricing

import "github.com/trailplan/flight-estimator/internal/core/model"

// Cost per kilometer by route class, in USD.
const (
	costShortHaul  = 0.20 // < 1,500 km
	costMediumHaul = 0.14 // 1,500 - 4,000 km
	costLongHaul   = 0.11 // 4,000 - 8,000 km
	costUltraLong  = 0.09 // > 8,000 km
)

// Distance thresholds in kilometers; half-open intervals, < threshold.
const (
	thresholdShortHaul  = 1500
	thresholdMediumHaul = 4000
	thresholdLongHaul   = 8000
)

// Price bounds in USD, applied to the base cost before variance.
const (
	MinPrice = 50
	MaxPrice = 15000
)

// Variance band around the likely price.
const (
	varianceLow  = 0.75
	varianceHigh = 1.50
)

var tripTypeMultipliers = map[string]float64{
	"one-way":    1.2,
	"round-trip": 1.0,
	"multi-city": 1.15,
}

// Classify buckets a distance into its route class.
func Classify(distanceKm int) model.RouteClass {
	switch {
	case distanceKm < thresholdShortHaul:
		return model.ShortHaul
	case distanceKm < thresholdMediumHaul:
		return model.MediumHaul
	case distanceKm < thresholdLongHaul:
		return model.LongHaul
	default:
		return model.UltraLong
	}
}

// CostPerKm returns the fixed per-kilometer cost for a route class.
func CostPerKm(class model.RouteClass) float64 {
	switch class {
	case model.ShortHaul:
		return costShortHaul
	case model.MediumHaul:
		return costMediumHaul
	case model.LongHaul:
		return costLongHaul
	default:
		return costUltraLong
	}
}

// TripTypeMultiplier returns the multiplier for a trip type; unknown trip
// types are neutral.
func TripTypeMultiplier(tripType string) float64 {
	if m, ok := tripTypeMultipliers[tripType]; ok {
		return m
	}
	return 1.0
}
