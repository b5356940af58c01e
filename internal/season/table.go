package season

// Per-country travel seasons. Months absent from all three lists fall back
// to shoulder pricing.

func mk(peak, shoulder, off []int, pk, sh, of float64) Entry {
	return Entry{
		Peak:        peak,
		Shoulder:    shoulder,
		Off:         off,
		Multipliers: Multipliers{Peak: pk, Shoulder: sh, Off: of},
	}
}

var (
	northSummer   = []int{6, 7, 8}
	northShoulder = []int{4, 5, 9, 10}
	northOff      = []int{1, 2, 3, 11, 12}

	southSummer   = []int{12, 1, 2}
	southShoulder = []int{3, 4, 10, 11}
	southOff      = []int{5, 6, 7, 8, 9}

	winterSun         = []int{11, 12, 1, 2, 3}
	winterSunShoulder = []int{4, 10}
	winterSunOff      = []int{5, 6, 7, 8, 9}
)

var entries = map[string]Entry{
	// Europe
	"France":         mk(northSummer, northShoulder, northOff, 1.35, 1.10, 0.85),
	"Italy":          mk(northSummer, northShoulder, northOff, 1.35, 1.10, 0.85),
	"Spain":          mk(northSummer, northShoulder, northOff, 1.30, 1.10, 0.85),
	"United Kingdom": mk(northSummer, northShoulder, northOff, 1.30, 1.10, 0.85),
	"Germany":        mk(northSummer, northShoulder, northOff, 1.25, 1.10, 0.85),
	"Greece":         mk([]int{6, 7, 8, 9}, []int{4, 5, 10}, []int{1, 2, 3, 11, 12}, 1.40, 1.10, 0.80),
	"Portugal":       mk(northSummer, northShoulder, northOff, 1.30, 1.10, 0.85),
	"Netherlands":    mk([]int{4, 5, 6, 7, 8}, []int{3, 9, 10}, []int{1, 2, 11, 12}, 1.25, 1.10, 0.85),
	"Switzerland":    mk([]int{6, 7, 8, 12, 1, 2}, []int{5, 9}, []int{3, 4, 10, 11}, 1.35, 1.10, 0.90),
	"Austria":        mk([]int{6, 7, 8, 12, 1, 2}, []int{5, 9}, []int{3, 4, 10, 11}, 1.30, 1.10, 0.90),
	"Iceland":        mk(northSummer, northShoulder, northOff, 1.40, 1.15, 0.80),
	"Norway":         mk(northSummer, northShoulder, northOff, 1.35, 1.10, 0.85),
	"Sweden":         mk(northSummer, northShoulder, northOff, 1.30, 1.10, 0.85),
	"Denmark":        mk(northSummer, northShoulder, northOff, 1.30, 1.10, 0.85),
	"Finland":        mk([]int{6, 7, 8, 12}, []int{4, 5, 9, 10}, []int{1, 2, 3, 11}, 1.30, 1.10, 0.85),
	"Poland":         mk(northSummer, northShoulder, northOff, 1.25, 1.05, 0.85),
	"Czech Republic": mk(northSummer, northShoulder, northOff, 1.25, 1.05, 0.85),
	"Croatia":        mk([]int{6, 7, 8}, []int{5, 9}, []int{1, 2, 3, 4, 10, 11, 12}, 1.40, 1.10, 0.80),
	"Ireland":        mk(northSummer, northShoulder, northOff, 1.30, 1.10, 0.85),
	"Russia":         mk(northSummer, northShoulder, northOff, 1.25, 1.05, 0.85),

	// Americas
	"United States": mk(northSummer, northShoulder, northOff, 1.30, 1.10, 0.85),
	"Canada":        mk(northSummer, northShoulder, northOff, 1.30, 1.10, 0.85),
	"Mexico":        mk(winterSun, winterSunShoulder, winterSunOff, 1.30, 1.10, 0.85),
	"Brazil":        mk(southSummer, southShoulder, southOff, 1.35, 1.10, 0.85),
	"Argentina":     mk(southSummer, southShoulder, southOff, 1.30, 1.10, 0.85),
	"Peru":          mk([]int{6, 7, 8}, []int{4, 5, 9, 10}, []int{1, 2, 3, 11, 12}, 1.30, 1.10, 0.85),
	"Chile":         mk(southSummer, southShoulder, southOff, 1.30, 1.10, 0.85),

	// Asia-Pacific
	"Japan":        mk([]int{3, 4, 10, 11}, []int{5, 9, 12}, []int{1, 2, 6, 7, 8}, 1.40, 1.15, 0.85),
	"South Korea":  mk([]int{4, 5, 10}, []int{3, 6, 9, 11}, []int{1, 2, 7, 8, 12}, 1.30, 1.10, 0.85),
	"China":        mk([]int{4, 5, 9, 10}, []int{3, 6, 11}, []int{1, 2, 7, 8, 12}, 1.25, 1.10, 0.85),
	"Thailand":     mk(winterSun, winterSunShoulder, winterSunOff, 1.35, 1.10, 0.80),
	"Vietnam":      mk([]int{12, 1, 2, 3}, []int{4, 10, 11}, []int{5, 6, 7, 8, 9}, 1.30, 1.10, 0.85),
	"Cambodia":     mk(winterSun, winterSunShoulder, winterSunOff, 1.30, 1.10, 0.80),
	"Philippines":  mk([]int{12, 1, 2, 3, 4}, []int{5, 11}, []int{6, 7, 8, 9, 10}, 1.30, 1.10, 0.80),
	"Indonesia":    mk([]int{6, 7, 8}, []int{5, 9, 10}, []int{1, 2, 3, 4, 11, 12}, 1.30, 1.10, 0.85),
	"Malaysia":     mk([]int{6, 7, 8, 12}, []int{1, 2, 5}, []int{3, 4, 9, 10, 11}, 1.25, 1.05, 0.85),
	"Singapore":    mk([]int{6, 7, 12}, []int{1, 2, 5, 8, 11}, []int{3, 4, 9, 10}, 1.25, 1.05, 0.90),
	"India":        mk([]int{11, 12, 1, 2}, []int{3, 10}, []int{4, 5, 6, 7, 8, 9}, 1.30, 1.10, 0.80),
	"Maldives":     mk(winterSun, winterSunShoulder, winterSunOff, 1.45, 1.15, 0.80),
	"Hong Kong":    mk([]int{10, 11, 12}, []int{1, 2, 3, 4}, []int{5, 6, 7, 8, 9}, 1.25, 1.10, 0.85),
	"Taiwan":       mk([]int{10, 11, 12, 3, 4}, []int{1, 2, 5}, []int{6, 7, 8, 9}, 1.25, 1.10, 0.85),
	"Australia":    mk(southSummer, southShoulder, southOff, 1.35, 1.10, 0.85),
	"New Zealand":  mk(southSummer, southShoulder, southOff, 1.35, 1.10, 0.85),

	// Middle East & Africa
	"Turkey":               mk([]int{6, 7, 8}, []int{4, 5, 9, 10}, []int{1, 2, 3, 11, 12}, 1.30, 1.10, 0.85),
	"United Arab Emirates": mk(winterSun, winterSunShoulder, winterSunOff, 1.35, 1.10, 0.80),
	"Egypt":                mk([]int{10, 11, 12, 1, 2, 3}, []int{4, 9}, []int{5, 6, 7, 8}, 1.30, 1.10, 0.80),
	"Morocco":              mk([]int{3, 4, 5, 9, 10}, []int{2, 11}, []int{1, 6, 7, 8, 12}, 1.25, 1.10, 0.85),
	"Israel":               mk([]int{4, 5, 9, 10}, []int{3, 6, 11}, []int{1, 2, 7, 8, 12}, 1.25, 1.10, 0.85),
	"South Africa":         mk(southSummer, southShoulder, southOff, 1.30, 1.10, 0.85),
}
