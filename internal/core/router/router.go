package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trailplan/flight-estimator/internal/core/model"
	"github.com/trailplan/flight-estimator/internal/core/observability"
	"github.com/trailplan/flight-estimator/internal/geo"
)

// Estimator serves validated estimate requests.
type Estimator interface {
	Estimate(ctx context.Context, origin, destination string, travelDate time.Time, tripType string) (model.EstimationResult, error)
	EstimateRoundTrip(ctx context.Context, origin, destination string, departDate time.Time) (model.EstimationResult, error)
}

// EstimateQuery is the validated query-string input of GET /estimate.
type EstimateQuery struct {
	Origin      string    `validate:"required"`
	Destination string    `validate:"required"`
	Date        time.Time `validate:"required"`
	TripType    string
}

var validate = validator.New()

// HandleEstimate validates input query params and serves the estimate.
func HandleEstimate(logger *slog.Logger, est Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		q, err := ParseEstimateQuery(r)
		if err != nil {
			writeError(sw, http.StatusBadRequest, err.Error())
			observability.ObserveHTTP(r.Method, "/estimate", http.StatusBadRequest, time.Since(start).Seconds())
			return
		}

		res, err := est.Estimate(r.Context(), q.Origin, q.Destination, q.Date, q.TripType)
		if err != nil {
			status := errorStatus(err)
			logger.Warn("estimate failed",
				"origin", q.Origin, "destination", q.Destination, "status", status, "err", err)
			writeError(sw, status, err.Error())
			observability.ObserveHTTP(r.Method, "/estimate", status, time.Since(start).Seconds())
			return
		}

		writeJSON(sw, http.StatusOK, res)
		observability.ObserveHTTP(r.Method, "/estimate", sw.code, time.Since(start).Seconds())
	}
}

// HandleRoundTrip serves the convenience round-trip estimate.
func HandleRoundTrip(logger *slog.Logger, est Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		q, err := ParseEstimateQuery(r)
		if err != nil {
			writeError(sw, http.StatusBadRequest, err.Error())
			observability.ObserveHTTP(r.Method, "/estimate/round-trip", http.StatusBadRequest, time.Since(start).Seconds())
			return
		}

		res, err := est.EstimateRoundTrip(r.Context(), q.Origin, q.Destination, q.Date)
		if err != nil {
			status := errorStatus(err)
			logger.Warn("round-trip estimate failed",
				"origin", q.Origin, "destination", q.Destination, "status", status, "err", err)
			writeError(sw, status, err.Error())
			observability.ObserveHTTP(r.Method, "/estimate/round-trip", status, time.Since(start).Seconds())
			return
		}

		writeJSON(sw, http.StatusOK, res)
		observability.ObserveHTTP(r.Method, "/estimate/round-trip", sw.code, time.Since(start).Seconds())
	}
}

func ParseEstimateQuery(r *http.Request) (EstimateQuery, error) {
	origin := strings.TrimSpace(r.URL.Query().Get("origin"))
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	rawDate := strings.TrimSpace(r.URL.Query().Get("date"))
	tripType := strings.TrimSpace(r.URL.Query().Get("trip_type"))
	if tripType == "" {
		tripType = "round-trip"
	}

	var date time.Time
	if rawDate != "" {
		d, err := parseDate(rawDate)
		if err != nil {
			return EstimateQuery{}, fmt.Errorf("invalid date: %w", err)
		}
		date = d
	}

	q := EstimateQuery{
		Origin:      origin,
		Destination: destination,
		Date:        date,
		TripType:    tripType,
	}
	if err := validate.Struct(q); err != nil {
		return EstimateQuery{}, fmt.Errorf("missing required parameters (origin, destination, date): %w", err)
	}
	return q, nil
}

func parseDate(raw string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("expected YYYY-MM-DD or RFC3339")
	}
	return d, nil
}

// maps geo resolution failures to http statuses
func errorStatus(err error) int {
	var (
		nf *geo.NotFoundError
		te *geo.TimeoutError
		ne *geo.NetworkError
		ae *geo.APIError
	)
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &te):
		return http.StatusGatewayTimeout
	case errors.As(err, &ne), errors.As(err, &ae):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
