// Package gazetteer bundles pre-resolved coordinates for well-known country
// names (with common aliases) and frequently requested cities. Lookup is an
// exact string match against the raw input; no normalization is applied.
package gazetteer

import "github.com/trailplan/flight-estimator/internal/core/model"

// Lookup returns the bundled coordinate for location, if any.
func Lookup(location string) (model.Coordinate, bool) {
	coord, ok := entries[location]
	return coord, ok
}

// Size returns the number of bundled entries.
func Size() int { return len(entries) }

var entries = map[string]model.Coordinate{
	// countries covered by the seasonality table
	"France":               {Lat: 46.2276, Lon: 2.2137, DisplayName: "France"},
	"Italy":                {Lat: 41.8719, Lon: 12.5674, DisplayName: "Italy"},
	"Spain":                {Lat: 40.4637, Lon: -3.7492, DisplayName: "Spain"},
	"United Kingdom":       {Lat: 55.3781, Lon: -3.4360, DisplayName: "United Kingdom"},
	"UK":                   {Lat: 55.3781, Lon: -3.4360, DisplayName: "United Kingdom"},
	"Germany":              {Lat: 51.1657, Lon: 10.4515, DisplayName: "Germany"},
	"Greece":               {Lat: 39.0742, Lon: 21.8243, DisplayName: "Greece"},
	"Japan":                {Lat: 36.2048, Lon: 138.2529, DisplayName: "Japan"},
	"Thailand":             {Lat: 15.8700, Lon: 100.9925, DisplayName: "Thailand"},
	"United States":        {Lat: 37.0902, Lon: -95.7129, DisplayName: "United States"},
	"USA":                  {Lat: 37.0902, Lon: -95.7129, DisplayName: "United States"},
	"Australia":            {Lat: -25.2744, Lon: 133.7751, DisplayName: "Australia"},
	"Mexico":               {Lat: 23.6345, Lon: -102.5528, DisplayName: "Mexico"},
	"Turkey":               {Lat: 38.9637, Lon: 35.2433, DisplayName: "Turkey"},
	"Portugal":             {Lat: 39.3999, Lon: -8.2245, DisplayName: "Portugal"},
	"Netherlands":          {Lat: 52.1326, Lon: 5.2913, DisplayName: "Netherlands"},
	"Switzerland":          {Lat: 46.8182, Lon: 8.2275, DisplayName: "Switzerland"},
	"Austria":              {Lat: 47.5162, Lon: 14.5501, DisplayName: "Austria"},
	"Canada":               {Lat: 56.1304, Lon: -106.3468, DisplayName: "Canada"},
	"Singapore":            {Lat: 1.3521, Lon: 103.8198, DisplayName: "Singapore"},
	"South Korea":          {Lat: 35.9078, Lon: 127.7669, DisplayName: "South Korea"},
	"Indonesia":            {Lat: -0.7893, Lon: 113.9213, DisplayName: "Indonesia"},
	"Malaysia":             {Lat: 4.2105, Lon: 101.9758, DisplayName: "Malaysia"},
	"India":                {Lat: 20.5937, Lon: 78.9629, DisplayName: "India"},
	"United Arab Emirates": {Lat: 23.4241, Lon: 53.8478, DisplayName: "United Arab Emirates"},
	"UAE":                  {Lat: 23.4241, Lon: 53.8478, DisplayName: "United Arab Emirates"},
	"Egypt":                {Lat: 26.8206, Lon: 30.8025, DisplayName: "Egypt"},
	"Morocco":              {Lat: 31.7917, Lon: -7.0926, DisplayName: "Morocco"},
	"Brazil":               {Lat: -14.2350, Lon: -51.9253, DisplayName: "Brazil"},
	"Argentina":            {Lat: -38.4161, Lon: -63.6167, DisplayName: "Argentina"},
	"Peru":                 {Lat: -9.1900, Lon: -75.0152, DisplayName: "Peru"},
	"Chile":                {Lat: -35.6751, Lon: -71.5430, DisplayName: "Chile"},
	"New Zealand":          {Lat: -40.9006, Lon: 174.8860, DisplayName: "New Zealand"},
	"South Africa":         {Lat: -30.5595, Lon: 22.9375, DisplayName: "South Africa"},
	"China":                {Lat: 35.8617, Lon: 104.1954, DisplayName: "China"},
	"Vietnam":              {Lat: 14.0583, Lon: 108.2772, DisplayName: "Vietnam"},
	"Philippines":          {Lat: 12.8797, Lon: 121.7740, DisplayName: "Philippines"},
	"Cambodia":             {Lat: 12.5657, Lon: 104.9910, DisplayName: "Cambodia"},
	"Iceland":              {Lat: 64.9631, Lon: -19.0208, DisplayName: "Iceland"},
	"Norway":               {Lat: 60.4720, Lon: 8.4689, DisplayName: "Norway"},
	"Sweden":               {Lat: 60.1282, Lon: 18.6435, DisplayName: "Sweden"},
	"Denmark":              {Lat: 56.2639, Lon: 9.5018, DisplayName: "Denmark"},
	"Finland":              {Lat: 61.9241, Lon: 25.7482, DisplayName: "Finland"},
	"Poland":               {Lat: 51.9194, Lon: 19.1451, DisplayName: "Poland"},
	"Czech Republic":       {Lat: 49.8175, Lon: 15.4730, DisplayName: "Czech Republic"},
	"Croatia":              {Lat: 45.1000, Lon: 15.2000, DisplayName: "Croatia"},
	"Ireland":              {Lat: 53.4129, Lon: -8.2439, DisplayName: "Ireland"},
	"Israel":               {Lat: 31.0461, Lon: 34.8516, DisplayName: "Israel"},
	"Hong Kong":            {Lat: 22.3193, Lon: 114.1694, DisplayName: "Hong Kong"},
	"Taiwan":               {Lat: 23.6978, Lon: 120.9605, DisplayName: "Taiwan"},
	"Russia":               {Lat: 61.5240, Lon: 105.3188, DisplayName: "Russia"},
	"Maldives":             {Lat: 3.2028, Lon: 73.2207, DisplayName: "Maldives"},

	// frequently requested cities
	"New York, USA":          {Lat: 40.7128, Lon: -74.0060, DisplayName: "New York, NY, United States"},
	"Los Angeles, USA":       {Lat: 34.0522, Lon: -118.2437, DisplayName: "Los Angeles, CA, United States"},
	"San Francisco, USA":     {Lat: 37.7749, Lon: -122.4194, DisplayName: "San Francisco, CA, United States"},
	"Paris, France":          {Lat: 48.8566, Lon: 2.3522, DisplayName: "Paris, France"},
	"London, UK":             {Lat: 51.5074, Lon: -0.1278, DisplayName: "London, United Kingdom"},
	"Rome, Italy":            {Lat: 41.9028, Lon: 12.4964, DisplayName: "Rome, Italy"},
	"Tokyo, Japan":           {Lat: 35.6762, Lon: 139.6503, DisplayName: "Tokyo, Japan"},
	"Dubai, UAE":             {Lat: 25.2048, Lon: 55.2708, DisplayName: "Dubai, United Arab Emirates"},
	"Mumbai, India":          {Lat: 19.0760, Lon: 72.8777, DisplayName: "Mumbai, India"},
	"Delhi, India":           {Lat: 28.7041, Lon: 77.1025, DisplayName: "Delhi, India"},
	"Sydney, Australia":      {Lat: -33.8688, Lon: 151.2093, DisplayName: "Sydney, Australia"},
	"Bangkok, Thailand":      {Lat: 13.7563, Lon: 100.5018, DisplayName: "Bangkok, Thailand"},
}
