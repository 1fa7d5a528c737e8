package weather

// GeocodingLimit is the number of candidates requested from the provider.
const GeocodingLimit = 5

// NormalizeGeocodingResults maps provider candidates one to one, keeping
// provider order and truncating to GeocodingLimit.
func NormalizeGeocodingResults(items []GeocodingPayload) []GeocodingResult {
	n := min(len(items), GeocodingLimit)
	results := make([]GeocodingResult, 0, n)
	for _, it := range items[:n] {
		results = append(results, GeocodingResult{
			Name:    it.Name,
			Lat:     it.Lat,
			Lon:     it.Lon,
			Country: it.Country,
			State:   it.State,
		})
	}
	return results
}
