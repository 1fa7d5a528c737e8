package weather

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Service fetches provider payloads and normalizes them. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	provider Provider
	logger   *zap.Logger
	dayZone  *time.Location
	now      func() time.Time
}

// NewService creates a new Service. dayZone is the timezone used to group
// forecast entries into calendar days; nil means time.Local.
func NewService(provider Provider, logger *zap.Logger, dayZone *time.Location) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dayZone == nil {
		dayZone = time.Local
	}
	return &Service{
		provider: provider,
		logger:   logger.Named("weather"),
		dayZone:  dayZone,
		now:      time.Now,
	}
}

// Current returns current conditions for the coordinates.
func (s *Service) Current(ctx context.Context, lat, lon float64) (CurrentConditions, error) {
	payload, err := s.provider.FetchCurrent(ctx, lat, lon)
	if err != nil {
		s.logFailure("current", err, zap.Float64("lat", lat), zap.Float64("lon", lon))
		return CurrentConditions{}, err
	}
	return NormalizeCurrentConditions(payload, lat, lon, s.now()), nil
}

// Forecast returns the hourly and daily forecast for the coordinates.
func (s *Service) Forecast(ctx context.Context, lat, lon float64) (Forecast, error) {
	payload, err := s.provider.FetchForecast(ctx, lat, lon)
	if err != nil {
		s.logFailure("forecast", err, zap.Float64("lat", lat), zap.Float64("lon", lon))
		return Forecast{}, err
	}
	f := NormalizeForecast(payload, s.dayZone)
	s.logger.Debug("forecast normalized",
		zap.Int("entries", len(payload.List)),
		zap.Int("hourly", len(f.Hourly)),
		zap.Int("daily", len(f.Daily)),
	)
	return f, nil
}

// AirQuality returns the air-quality reading for the coordinates.
func (s *Service) AirQuality(ctx context.Context, lat, lon float64) (AirQuality, error) {
	payload, err := s.provider.FetchAirPollution(ctx, lat, lon)
	if err != nil {
		s.logFailure("air-quality", err, zap.Float64("lat", lat), zap.Float64("lon", lon))
		return AirQuality{}, err
	}
	return NormalizeAirQuality(payload), nil
}

// Search resolves a free-text place name to at most GeocodingLimit candidates.
func (s *Service) Search(ctx context.Context, query string) ([]GeocodingResult, error) {
	payload, err := s.provider.Geocode(ctx, query, GeocodingLimit)
	if err != nil {
		s.logFailure("search", err, zap.String("query", query))
		return nil, err
	}
	return NormalizeGeocodingResults(payload), nil
}

func (s *Service) logFailure(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	if IsConfigurationError(err) {
		s.logger.Error("provider credential missing", fields...)
		return
	}
	s.logger.Error("provider call failed", fields...)
}
