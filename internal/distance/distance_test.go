package distance

import (
	"testing"

	"github.com/trailplan/flight-estimator/internal/core/model"
)

var (
	newYork = model.Coordinate{Lat: 40.7128, Lon: -74.0060, DisplayName: "New York, NY, United States"}
	paris   = model.Coordinate{Lat: 48.8566, Lon: 2.3522, DisplayName: "Paris, France"}
	tokyo   = model.Coordinate{Lat: 35.6762, Lon: 139.6503, DisplayName: "Tokyo, Japan"}
	sydney  = model.Coordinate{Lat: -33.8688, Lon: 151.2093, DisplayName: "Sydney, Australia"}
)

func TestKm_NewYorkToParis(t *testing.T) {
	got := Km(newYork, paris)
	if got < 5836 || got > 5838 {
		t.Fatalf("NY-Paris = %d km, want 5837±1", got)
	}
}

func TestKm_Symmetric(t *testing.T) {
	pairs := [][2]model.Coordinate{
		{newYork, paris},
		{paris, tokyo},
		{tokyo, sydney},
		{sydney, newYork},
	}
	for _, p := range pairs {
		ab := Km(p[0], p[1])
		ba := Km(p[1], p[0])
		if ab != ba {
			t.Fatalf("asymmetric: %s->%s = %d, reverse = %d", p[0], p[1], ab, ba)
		}
	}
}

func TestKm_ZeroForIdenticalPoints(t *testing.T) {
	if got := Km(paris, paris); got != 0 {
		t.Fatalf("same point distance = %d, want 0", got)
	}
}

func TestKm_NonNegative(t *testing.T) {
	coords := []model.Coordinate{
		newYork, paris, tokyo, sydney,
		{Lat: 90, Lon: 0}, {Lat: -90, Lon: 0}, {Lat: 0, Lon: 180}, {Lat: 0, Lon: -180},
	}
	for _, a := range coords {
		for _, b := range coords {
			if d := Km(a, b); d < 0 {
				t.Fatalf("negative distance %d for %s -> %s", d, a, b)
			}
		}
	}
}

func TestKm_Antipodes(t *testing.T) {
	a := model.Coordinate{Lat: 0, Lon: 0}
	b := model.Coordinate{Lat: 0, Lon: 180}
	// half the Earth circumference at R=6371: pi*6371 ≈ 20015
	got := Km(a, b)
	if got < 20014 || got > 20016 {
		t.Fatalf("antipodal distance = %d km, want 20015±1", got)
	}
}
