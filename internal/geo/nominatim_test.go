package geo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(discardLogger(), srv.Client(), srv.URL, "estimator-test/1.0", timeout)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestGeocode_ParsesFirstResult(t *testing.T) {
	var gotQuery map[string]string
	var gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = map[string]string{
			"q":              r.URL.Query().Get("q"),
			"format":         r.URL.Query().Get("format"),
			"limit":          r.URL.Query().Get("limit"),
			"addressdetails": r.URL.Query().Get("addressdetails"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"48.8566","lon":"2.3522","display_name":"Paris, Ile-de-France, France"}]`))
	}, time.Second)

	coord, err := c.Geocode(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if coord.Lat != 48.8566 || coord.Lon != 2.3522 {
		t.Fatalf("unexpected coordinate: %+v", coord)
	}
	if coord.DisplayName != "Paris, Ile-de-France, France" {
		t.Fatalf("unexpected display name: %q", coord.DisplayName)
	}

	if gotUA != "estimator-test/1.0" {
		t.Fatalf("custom User-Agent not sent, got %q", gotUA)
	}
	want := map[string]string{"q": "Paris", "format": "json", "limit": "1", "addressdetails": "1"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Fatalf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestGeocode_EmptyResultIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}, time.Second)

	_, err := c.Geocode(context.Background(), "xyzzy nowhere")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Location != "xyzzy nowhere" {
		t.Fatalf("error should carry the input, got %q", nf.Location)
	}
}

func TestGeocode_NonSuccessStatusIsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}, time.Second)

	_, err := c.Geocode(context.Background(), "Paris")
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.Status != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", ae.Status)
	}
}

func TestGeocode_SlowBackendIsTimeoutError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}, 50*time.Millisecond)

	_, err := c.Geocode(context.Background(), "Paris")
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
}

func TestGeocode_UnreachableBackendIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close() // nothing listening anymore

	c, err := NewClient(discardLogger(), &http.Client{}, addr, "estimator-test/1.0", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.Geocode(context.Background(), "Paris")
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}
