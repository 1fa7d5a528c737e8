package weather

import "context"

// Provider abstracts the upstream weather/geocoding API. Implementations make
// exactly one HTTP call per method and return the decoded payload, a
// *ConfigurationError when no credential is set, or an *UpstreamError.
type Provider interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (CurrentPayload, error)
	FetchForecast(ctx context.Context, lat, lon float64) (ForecastPayload, error)
	FetchAirPollution(ctx context.Context, lat, lon float64) (AirPollutionPayload, error)
	Geocode(ctx context.Context, query string, limit int) ([]GeocodingPayload, error)
}
