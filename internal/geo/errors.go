package geo

import "fmt"

// NotFoundError means no gazetteer entry matched and the external geocoder
// returned zero results. Not retriable without changing the input.
type NotFoundError struct {
	Location string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("location not found: %s", e.Location)
}

// TimeoutError means the external geocoding call exceeded its timeout budget.
type TimeoutError struct {
	Location string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("geocoding timeout for %s: %v", e.Location, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// NetworkError means the external geocoding service could not be reached.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach geocoding service: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError means the external geocoding service answered with a non-success
// status.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("geocoding API error: status %d", e.Status)
}
