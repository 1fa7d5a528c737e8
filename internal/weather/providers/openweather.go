package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultOpenWeatherBaseURL is the public OpenWeatherMap API root.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org"

// OpenWeatherProvider implements weather.Provider against OpenWeatherMap.
type OpenWeatherProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ weather.Provider = (*OpenWeatherProvider)(nil)

// NewOpenWeatherProvider creates a client for the given API root. An empty
// baseURL uses DefaultOpenWeatherBaseURL. The client's Timeout bounds each call.
func NewOpenWeatherProvider(client *http.Client, baseURL, apiKey string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	return &OpenWeatherProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, lat, lon float64) (weather.CurrentPayload, error) {
	var payload weather.CurrentPayload
	err := p.get(ctx, "current", "/data/2.5/weather", coordinates(lat, lon, true), &payload)
	return payload, err
}

func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, lat, lon float64) (weather.ForecastPayload, error) {
	var payload weather.ForecastPayload
	err := p.get(ctx, "forecast", "/data/2.5/forecast", coordinates(lat, lon, true), &payload)
	return payload, err
}

// FetchAirPollution has no units parameter; concentrations are always μg/m³.
func (p *OpenWeatherProvider) FetchAirPollution(ctx context.Context, lat, lon float64) (weather.AirPollutionPayload, error) {
	var payload weather.AirPollutionPayload
	err := p.get(ctx, "air-quality", "/data/2.5/air_pollution", coordinates(lat, lon, false), &payload)
	return payload, err
}

func (p *OpenWeatherProvider) Geocode(ctx context.Context, query string, limit int) ([]weather.GeocodingPayload, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", strconv.Itoa(limit))

	var payload []weather.GeocodingPayload
	err := p.get(ctx, "search", "/geo/1.0/direct", values, &payload)
	return payload, err
}

// get checks the credential on every call, then performs the request.
func (p *OpenWeatherProvider) get(ctx context.Context, endpoint, path string, values url.Values, target any) error {
	if p.apiKey == "" {
		return &weather.ConfigurationError{Setting: "OPENWEATHER_API_KEY"}
	}

	buildRequest := func() (*http.Request, error) {
		values.Set("appid", p.apiKey)
		u := p.baseURL + path + "?" + values.Encode()
		return http.NewRequest(http.MethodGet, u, nil)
	}

	return doJSON(ctx, p.client, endpoint, buildRequest, target)
}

func coordinates(lat, lon float64, metric bool) url.Values {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	if metric {
		values.Set("units", "metric")
	}
	return values
}
