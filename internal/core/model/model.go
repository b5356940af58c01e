// Package model defines core domain types shared across the service.
package model

import "fmt"

// Coordinate is a resolved location. Immutable once created.
type Coordinate struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"displayName"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f (%s)", c.Lat, c.Lon, c.DisplayName)
}

// RouteClass buckets a route by great-circle distance.
type RouteClass string

const (
	ShortHaul  RouteClass = "SHORT_HAUL"
	MediumHaul RouteClass = "MEDIUM_HAUL"
	LongHaul   RouteClass = "LONG_HAUL"
	UltraLong  RouteClass = "ULTRA_LONG"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

// LatLon is the coordinate pair nested inside result endpoints.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Endpoint is one end of an estimated route.
type Endpoint struct {
	Name        string `json:"name"`
	Coordinates LatLon `json:"coordinates"`
}

// PriceEstimate is the bounded low/likely/high band in USD.
type PriceEstimate struct {
	Low      int    `json:"low"`
	Likely   int    `json:"likely"`
	High     int    `json:"high"`
	Currency string `json:"currency"`
}

// Factors records the inputs of the pricing formula for explainability.
type Factors struct {
	RouteClass         RouteClass `json:"routeClass"`
	CostPerKm          float64    `json:"costPerKm"`
	SeasonMultiplier   float64    `json:"seasonMultiplier"`
	TripTypeMultiplier float64    `json:"tripTypeMultiplier"`
}

// EstimationResult is the caller-facing output of one estimation. Created
// fresh per request and never mutated after construction.
type EstimationResult struct {
	Origin      Endpoint      `json:"origin"`
	Destination Endpoint      `json:"destination"`
	DistanceKm  int           `json:"distance"`
	Estimate    PriceEstimate `json:"estimate"`
	Confidence  string        `json:"confidence"`
	Factors     Factors       `json:"factors"`
	TripType    string        `json:"tripType,omitempty"`
}
