// Package pricing combines distance, route class, seasonality and trip type
// into a bounded price estimate.
package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/trailplan/flight-estimator/internal/core/model"
	"github.com/trailplan/flight-estimator/internal/core/observability"
	"github.com/trailplan/flight-estimator/internal/distance"
	"github.com/trailplan/flight-estimator/internal/season"
)

// Resolver turns a free-text location into a coordinate.
type Resolver interface {
	Resolve(ctx context.Context, location string) (model.Coordinate, error)
}

// Sink receives completed estimates, e.g. for publishing to an event stream.
type Sink interface {
	Publish(ctx context.Context, res model.EstimationResult) error
}

type Engine struct {
	logger   *slog.Logger
	resolver Resolver
	seasons  *season.Table
	sink     Sink // may be nil
}

func New(logger *slog.Logger, resolver Resolver, seasons *season.Table, sink Sink) *Engine {
	return &Engine{
		logger:   logger,
		resolver: resolver,
		seasons:  seasons,
		sink:     sink,
	}
}

// Estimate prices a flight between two free-text locations. Resolution
// failures from the geo layer propagate to the caller; otherwise the result
// is always a bounded numeric estimate.
func (e *Engine) Estimate(ctx context.Context, origin, destination string, travelDate time.Time, tripType string) (model.EstimationResult, error) {
	var (
		wg         sync.WaitGroup
		oc, dc     model.Coordinate
		oErr, dErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		oc, oErr = e.resolver.Resolve(ctx, origin)
	}()
	go func() {
		defer wg.Done()
		dc, dErr = e.resolver.Resolve(ctx, destination)
	}()
	wg.Wait()
	if oErr != nil {
		return model.EstimationResult{}, oErr
	}
	if dErr != nil {
		return model.EstimationResult{}, dErr
	}

	km := distance.Km(oc, dc)

	class := Classify(km)
	costPerKm := CostPerKm(class)

	country := season.ExtractCountry(dc.DisplayName)
	seasonMult := e.seasons.Multiplier(country, travelDate)
	tripMult := TripTypeMultiplier(tripType)

	baseCost := float64(km) * costPerKm * seasonMult * tripMult
	baseCost = clamp(baseCost, MinPrice, MaxPrice)

	likely := int(math.Round(baseCost))
	// variance is applied after bounding and is deliberately not reclamped
	low := int(math.Round(float64(likely) * varianceLow))
	high := int(math.Round(float64(likely) * varianceHigh))

	confidence := model.ConfidenceMedium
	if e.seasons.Contains(country) {
		confidence = model.ConfidenceHigh
	}

	result := model.EstimationResult{
		Origin: model.Endpoint{
			Name:        oc.DisplayName,
			Coordinates: model.LatLon{Lat: oc.Lat, Lon: oc.Lon},
		},
		Destination: model.Endpoint{
			Name:        dc.DisplayName,
			Coordinates: model.LatLon{Lat: dc.Lat, Lon: dc.Lon},
		},
		DistanceKm: km,
		Estimate: model.PriceEstimate{
			Low:      low,
			Likely:   likely,
			High:     high,
			Currency: "USD",
		},
		Confidence: confidence,
		Factors: model.Factors{
			RouteClass:         class,
			CostPerKm:          costPerKm,
			SeasonMultiplier:   seasonMult,
			TripTypeMultiplier: tripMult,
		},
	}

	observability.IncEstimate(string(class))
	e.logger.Debug("estimate computed",
		"origin", oc.DisplayName,
		"destination", dc.DisplayName,
		"distance_km", km,
		"route_class", string(class),
		"likely", likely,
		"confidence", confidence)

	e.publish(ctx, result)
	return result, nil
}

// EstimateRoundTrip doubles the one-way estimate, which already carries the
// round-trip multiplier. The doubling on top of that multiplier reproduces
// the behavior the consuming application depends on.
func (e *Engine) EstimateRoundTrip(ctx context.Context, origin, destination string, departDate time.Time) (model.EstimationResult, error) {
	outbound, err := e.Estimate(ctx, origin, destination, departDate, "round-trip")
	if err != nil {
		return model.EstimationResult{}, err
	}

	outbound.Estimate = model.PriceEstimate{
		Low:      outbound.Estimate.Low * 2,
		Likely:   outbound.Estimate.Likely * 2,
		High:     outbound.Estimate.High * 2,
		Currency: "USD",
	}
	outbound.TripType = "round-trip"
	return outbound, nil
}

func (e *Engine) publish(ctx context.Context, res model.EstimationResult) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Publish(ctx, res); err != nil {
		e.logger.Warn("estimate publish failed",
			"err", fmt.Sprintf("%v", err))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
