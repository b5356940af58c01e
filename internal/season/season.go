// Package season maps destination countries and travel months to seasonal
// price multipliers.
package season

import (
	"strings"
	"time"
)

// DefaultMultiplier applies when the destination country is not in the table.
const DefaultMultiplier = 1.0

type Multipliers struct {
	Peak     float64
	Shoulder float64
	Off      float64
}

type Entry struct {
	Peak        []int // calendar months, 1-12
	Shoulder    []int
	Off         []int
	Multipliers Multipliers
}

// Table is static reference data: loaded once, read-only thereafter.
type Table struct {
	entries map[string]Entry
}

// NewTable returns the bundled per-country calendar table.
func NewTable() *Table {
	return &Table{entries: entries}
}

// Contains reports whether country has an entry.
func (t *Table) Contains(country string) bool {
	_, ok := t.entries[country]
	return ok
}

// Season returns "peak", "shoulder" or "off" for the given country and month.
// Shoulder is the fallback when the month appears in none of the lists.
func (t *Table) Season(country string, month int) string {
	e, ok := t.entries[country]
	if !ok {
		return "shoulder"
	}
	if contains(e.Peak, month) {
		return "peak"
	}
	if contains(e.Shoulder, month) {
		return "shoulder"
	}
	if contains(e.Off, month) {
		return "off"
	}
	return "shoulder"
}

// Multiplier returns the seasonal price multiplier for travelling to country
// on travelDate. Never fails; an unknown country yields DefaultMultiplier.
func (t *Table) Multiplier(country string, travelDate time.Time) float64 {
	e, ok := t.entries[country]
	if !ok {
		return DefaultMultiplier
	}
	switch t.Season(country, int(travelDate.Month())) {
	case "peak":
		return e.Multipliers.Peak
	case "off":
		return e.Multipliers.Off
	default:
		return e.Multipliers.Shoulder
	}
}

// ExtractCountry derives a country name from a free-text display label by
// taking the part after the last comma, or the whole string when there is
// none. A heuristic, not an address parser.
func ExtractCountry(location string) string {
	parts := strings.Split(location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

func contains(months []int, m int) bool {
	for _, x := range months {
		if x == m {
			return true
		}
	}
	return false
}
