package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/trailplan/flight-estimator/internal/core/model"
	"github.com/trailplan/flight-estimator/internal/core/observability"
)

// Client queries a Nominatim-style geocoding backend: one GET per lookup,
// single best match, JSON array response.
type Client struct {
	logger    *slog.Logger
	http      *http.Client
	base      *url.URL
	userAgent string
	timeout   time.Duration
}

func NewClient(logger *slog.Logger, hc *http.Client, baseURL, userAgent string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse geocoder url: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		logger:    logger,
		http:      hc,
		base:      u,
		userAgent: userAgent,
		timeout:   timeout,
	}, nil
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves location via the external backend. Failures surface as
// the typed errors in this package; an empty result list is a NotFoundError.
func (c *Client) Geocode(ctx context.Context, location string) (model.Coordinate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := *c.base
	q := u.Query()
	q.Set("q", location)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("geocoding via backend", "location", location)

	start := time.Now()
	resp, err := c.http.Do(req)
	observability.ObserveUpstreamLatency("nominatim", time.Since(start).Seconds())
	if err != nil {
		return model.Coordinate{}, classifyTransportError(location, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Coordinate{}, &APIError{Status: resp.StatusCode}
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return model.Coordinate{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(places) == 0 {
		return model.Coordinate{}, &NotFoundError{Location: location}
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("parse lat %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("parse lon %q: %w", places[0].Lon, err)
	}

	coord := model.Coordinate{Lat: lat, Lon: lon, DisplayName: places[0].DisplayName}
	c.logger.Debug("geocode ok", "location", location, "lat", lat, "lon", lon)
	return coord, nil
}

func classifyTransportError(location string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Location: location, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TimeoutError{Location: location, Err: err}
	}
	return &NetworkError{Err: err}
}
