package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/i474232898/weather-lookup/internal/weather"
)

type AppConfig struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	LogLevel  string
	LogFormat string // "json" or "console"

	// ForecastZone decides which calendar day a forecast step belongs to.
	ForecastZone *time.Location
}

// fileConfig is the optional TOML file named by WEATHER_CONFIG_FILE.
type fileConfig struct {
	Server struct {
		Port             string `toml:"port"`
		ReadTimeoutSecs  int    `toml:"read_timeout_seconds"`
		WriteTimeoutSecs int    `toml:"write_timeout_seconds"`
	} `toml:"server"`
	Provider struct {
		APIKey      string `toml:"api_key"`
		BaseURL     string `toml:"base_url"`
		TimeoutSecs int    `toml:"timeout_seconds"`
	} `toml:"provider"`
	Logging struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"logging"`
	Forecast struct {
		Timezone string `toml:"timezone"`
	} `toml:"forecast"`
}

// Load reads configuration from the optional TOML file and the environment,
// environment winning. A missing API key is a *weather.ConfigurationError.
func Load() (*AppConfig, error) {
	var fc fileConfig
	if path := os.Getenv("WEATHER_CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = firstNonEmpty(
		os.Getenv("OPENWEATHER_API_KEY"),
		os.Getenv("VITE_OPENWEATHER_API_KEY"),
		fc.Provider.APIKey,
	)
	if cfg.OpenWeatherAPIKey == "" {
		return nil, &weather.ConfigurationError{Setting: "OPENWEATHER_API_KEY"}
	}

	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", fc.Provider.BaseURL)

	timeout, err := getenvDuration("HTTP_TIMEOUT", seconds(fc.Provider.TimeoutSecs, 10*time.Second))
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive")
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", firstNonEmpty(fc.Server.Port, "8080"))
	cfg.ReadTimeout = seconds(fc.Server.ReadTimeoutSecs, 10*time.Second)
	cfg.WriteTimeout = seconds(fc.Server.WriteTimeoutSecs, 10*time.Second)

	cfg.LogLevel = strings.ToLower(getenvDefault("LOG_LEVEL", firstNonEmpty(fc.Logging.Level, "info")))
	cfg.LogFormat = strings.ToLower(getenvDefault("LOG_FORMAT", firstNonEmpty(fc.Logging.Format, "json")))
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or console", cfg.LogFormat)
	}

	zoneName := getenvDefault("FORECAST_TIMEZONE", firstNonEmpty(fc.Forecast.Timezone, "Local"))
	zone, err := time.LoadLocation(zoneName)
	if err != nil {
		return nil, fmt.Errorf("invalid FORECAST_TIMEZONE: %w", err)
	}
	cfg.ForecastZone = zone

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	// Bare integers are seconds.
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return time.Duration(n) * time.Second, nil
}

func seconds(n int, def time.Duration) time.Duration {
	if n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
